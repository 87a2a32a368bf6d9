package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"freshmart/internal/store"
)

/* =========================
   REQUEST DTOs
========================= */

type addToCartRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	VariantIndex *int   `json:"variantIndex" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
}

type updateQuantityRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	VariantIndex *int   `json:"variantIndex" binding:"required"`
	Quantity     *int   `json:"quantity" binding:"required"`
}

type toggleCartRequest struct {
	Open *bool `json:"open" binding:"required"`
}

type searchRequest struct {
	Query *string `json:"query" binding:"required"`
}

/* =========================
   CART
========================= */

// GET /cart
func GetCart(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := m.Cart()
		c.JSON(http.StatusOK, gin.H{
			"items":  items,
			"total":  store.CartTotal(items),
			"count":  store.CartCount(items),
			"isOpen": m.CartOpen(),
		})
	}
}

// POST /cart/items
func AddToCart(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		switch err := m.AddToCart(req.ProductID, *req.VariantIndex, req.Quantity); err {
		case nil:
		case store.ErrProductNotFound:
			respondWithError(c, http.StatusNotFound, route, err.Error())
			return
		default:
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		items := m.Cart()
		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": store.CartTotal(items),
		})
	}
}

// PUT /cart/items
func UpdateCartItem(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items"
		defer handlePanic(c, route)

		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		m.UpdateQuantity(req.ProductID, *req.VariantIndex, *req.Quantity)

		items := m.Cart()
		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": store.CartTotal(items),
		})
	}
}

// DELETE /cart/items/:productId/:variantIndex
func RemoveCartItem(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:productId/:variantIndex"
		defer handlePanic(c, route)

		variantIndex, err := strconv.Atoi(c.Param("variantIndex"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid variant index")
			return
		}

		m.RemoveFromCart(c.Param("productId"), variantIndex)
		c.JSON(http.StatusOK, gin.H{"items": m.Cart()})
	}
}

// DELETE /cart
func ClearCart(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.ClearCart()
		c.JSON(http.StatusOK, gin.H{"items": []struct{}{}})
	}
}

// PUT /cart/drawer
func ToggleCartDrawer(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		m.ToggleCart(*req.Open)
		c.JSON(http.StatusOK, gin.H{"isOpen": m.CartOpen()})
	}
}

// PUT /search
func SetSearchQuery(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		m.SetSearchQuery(*req.Query)
		c.JSON(http.StatusOK, gin.H{"query": m.SearchQuery()})
	}
}
