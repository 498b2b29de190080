package handlers

import (
	"net/http"

	"mentorlink_backend/internal/middleware"
	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/services"
	"mentorlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	*BaseHandler
	matchService services.MatchService
}

func NewMatchHandler(base *BaseHandler, matchService services.MatchService) *MatchHandler {
	return &MatchHandler{
		BaseHandler:  base,
		matchService: matchService,
	}
}

func (h *MatchHandler) RegisterRoutes(r *gin.RouterGroup) {
	matches := r.Group("/matches")
	matches.Use(middleware.AuthMiddleware())
	{
		matches.POST("", h.RequestMatch)
		matches.GET("", h.ListMatches)
		matches.PATCH("/:matchId/status", h.UpdateStatus)
	}
}

// RequestMatch создает запрос менторства от текущего пользователя.
// Менти - всегда аутентифицированный пользователь, подменить его через
// тело запроса нельзя.
func (h *MatchHandler) RequestMatch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	match, err := h.matchService.RequestMatch(c.Request.Context(), h.GetDB(c), userID, req.MentorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	matches, err := h.matchService.RefreshMatches(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}

func (h *MatchHandler) UpdateStatus(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	matchID := c.Param("matchId")

	var req dto.UpdateMatchStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	match, err := h.matchService.UpdateStatus(c.Request.Context(), h.GetDB(c), matchID, models.MatchStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}
