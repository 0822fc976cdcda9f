package analysis

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/shared/server/middleware"
	"beauty-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
	rg.GET("/analyses/:id/recommendations", h.recommendations)
	rg.GET("/recommendations", h.recommend)
}

type analyzeRequest struct {
	Image string `json:"image"`
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Image == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "image is required", nil)
		return
	}

	outcome, err := h.Svc.Analyze(c.Request.Context(), userID, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrAnalysisFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "analysis_failed",
				"No face detected in the image. Please upload a clear photo showing a face.", nil)
		case errors.Is(err, ErrUpstreamUnavailable):
			respond.Error(c, http.StatusBadGateway, "upstream_unavailable", "Analysis failed. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Analysis failed. Please try again.", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, outcome)
}

func (h *Handler) list(c *gin.Context) {
	if guestOnly(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	limit := parseBoundedQuery(c, "limit", 20, 0, 50)
	offset := parseBoundedQuery(c, "offset", 0, 0, 1<<30)

	analyses, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.JSON(c, http.StatusOK, analyses)
}

func (h *Handler) get(c *gin.Context) {
	if guestOnly(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, a)
}

func (h *Handler) recommendations(c *gin.Context) {
	if guestOnly(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	matches, err := h.Svc.RecommendForAnalysis(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute recommendations", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, matches)
}

func (h *Handler) recommend(c *gin.Context) {
	set, err := h.Svc.Recommend(c.Request.Context(), c.Query("skinTone"), c.Query("undertone"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute recommendations", nil)
		return
	}
	respond.JSON(c, http.StatusOK, set)
}

func guestOnly(c *gin.Context) bool {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			return true
		}
	}
	return false
}

func parseBoundedQuery(c *gin.Context, name string, fallback, min, max int) int {
	value := fallback
	if v := c.Query(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			value = parsed
		}
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}
