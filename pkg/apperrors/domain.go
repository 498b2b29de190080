package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidWebhookSignature - подпись входящего события не прошла проверку.
// Отклоняем сразу, без побочных эффектов и без ретраев с нашей стороны.
func ErrInvalidWebhookSignature(err error) *AppError {
	return Wrap(err, CodeInvalidSignature, "webhook", "Invalid webhook signature", http.StatusBadRequest)
}

// ErrSelfMatch - менти пытается отправить запрос самому себе.
var ErrSelfMatch = New(
	CodeInvalidOperation,
	"match",
	"Mentor and mentee must be different users",
	http.StatusBadRequest,
)

// ErrNotMentorCapable - запрошенный профиль не может выступать ментором.
var ErrNotMentorCapable = New(
	CodeInvalidOperation,
	"match",
	"Requested profile is not a mentor",
	http.StatusBadRequest,
)

// ErrMatchNotFound - запись о менторстве не найдена.
var ErrMatchNotFound = New(
	CodeNotFound,
	"match",
	"Match not found",
	http.StatusNotFound,
)

// ErrProfileNotFound - профиль не найден.
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)
