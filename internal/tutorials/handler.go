package tutorials

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the resolver and verifier.
type Handler struct {
	Resolver *Resolver
	Verifier *Verifier
}

// NewHandler constructs a Handler.
func NewHandler(resolver *Resolver, verifier *Verifier) *Handler {
	return &Handler{Resolver: resolver, Verifier: verifier}
}

// RegisterRoutes attaches tutorial routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tutorials", h.resolve)
	rg.POST("/tutorials/verify", h.verify)
}

func (h *Handler) resolve(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	if category == "" {
		category = "foundation"
	}
	embedURL := h.Resolver.Resolve(category, c.Query("skinTone"), c.Query("undertone"))
	respond.JSON(c, http.StatusOK, gin.H{
		"category": category,
		"embedUrl": embedURL,
	})
}

type verifyRequest struct {
	URL      string `json:"url"`
	Category string `json:"category"`
}

func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "url is required", nil)
		return
	}
	if req.Category == "" {
		req.Category = "foundation"
	}

	result, err := h.Verifier.Verify(c.Request.Context(), req.URL, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidURL):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid YouTube URL format", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to verify video", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}
