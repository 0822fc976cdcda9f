package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the catalog repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.list)
	rg.GET("/products/:id", h.get)
	rg.GET("/products/category/:category", h.listByCategory)
}

func (h *Handler) list(c *gin.Context) {
	products, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list products", nil)
		return
	}
	respond.JSON(c, http.StatusOK, products)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid product id", nil)
		return
	}

	product, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "product not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch product", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, product)
}

func (h *Handler) listByCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "category is required", nil)
		return
	}

	products, err := h.Repo.ListByCategory(c.Request.Context(), category)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list products", nil)
		return
	}
	respond.JSON(c, http.StatusOK, products)
}
