package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims - полезная нагрузка сессионного токена identity provider.
// Sub несет userID провайдера; email и name дублируются в токене,
// чтобы provisioning мог работать без дополнительного запроса.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

// Init задает секрет проверки подписи токенов.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
