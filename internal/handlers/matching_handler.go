package handlers

import (
	"net/http"

	"mentorlink_backend/internal/middleware"
	"mentorlink_backend/internal/services"
	"mentorlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(r *gin.RouterGroup) {
	matching := r.Group("/matching")
	matching.Use(middleware.AuthMiddleware())
	{
		matching.GET("/mentors", h.FindMentors)
		matching.GET("/compatibility", h.GetCompatibility)
	}
}

// FindMentors возвращает менторов, ранжированных по score относительно
// профиля текущего пользователя. Нулевой score не исключает кандидата.
func (h *MatchingHandler) FindMentors(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	limit := ParseQueryInt(c, "limit", 0)
	if limit < 0 || limit > 100 {
		limit = 0
	}

	matches, err := h.matchingService.FindMentorsForUser(c.Request.Context(), h.GetDB(c), userID, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mentors": matches,
		"total":   len(matches),
	})
}

func (h *MatchingHandler) GetCompatibility(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	mentorID := c.Query("mentor_id")
	if mentorID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("mentor_id is required"))
		return
	}

	result, err := h.matchingService.Compatibility(c.Request.Context(), h.GetDB(c), userID, mentorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
