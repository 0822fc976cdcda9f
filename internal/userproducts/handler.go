package userproducts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the saved-products repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches saved-product routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/products", h.list)
	rg.POST("/users/products", h.add)
	rg.POST("/users/products/:id/favorite", h.toggleFavorite)
	rg.DELETE("/users/products/:id", h.remove)
}

type addRequest struct {
	ProductID int64 `json:"productId"`
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := requireLogin(c)
	if !ok {
		return
	}

	items, err := h.Repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list saved products", nil)
		return
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) add(c *gin.Context) {
	userID, ok := requireLogin(c)
	if !ok {
		return
	}

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "productId is required", nil)
		return
	}

	item, err := h.Repo.Add(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			respond.Error(c, http.StatusNotFound, "not_found", "product not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save product", nil)
		return
	}
	respond.Created(c, item)
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	userID, ok := requireLogin(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid product id", nil)
		return
	}

	item, err := h.Repo.ToggleFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			respond.Error(c, http.StatusNotFound, "not_found", "product not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update favorite", nil)
		return
	}
	respond.JSON(c, http.StatusOK, item)
}

func (h *Handler) remove(c *gin.Context) {
	userID, ok := requireLogin(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid product id", nil)
		return
	}

	if err := h.Repo.Remove(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "saved product not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to remove saved product", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func requireLogin(c *gin.Context) (string, bool) {
	userID := c.GetString("userId")
	if guest, ok := c.Get("isGuest"); ok {
		if g, isBool := guest.(bool); isBool && g {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage saved products", nil)
			return "", false
		}
	}
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage saved products", nil)
		return "", false
	}
	return userID, true
}
