package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freshmart/internal/models"
	"freshmart/internal/store"
)

/* =======================
   GET (ADMIN) – LIST
======================= */

// GET /admin/api/products — unfiltered catalog with mandatory pagination.
func GetAllProducts(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/products"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		products := m.Products()
		c.JSON(http.StatusOK, gin.H{
			"data": paginate(products, page, limit),
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": len(products),
			},
		})
	}
}

/* =======================
   CREATE
======================= */

// POST /admin/api/products — prepends to the catalog. A missing id gets a
// generated one.
func CreateProduct(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"
		defer handlePanic(c, route)

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			respondValidationError(c, err)
			return
		}

		if strings.TrimSpace(product.Name) == "" {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}
		if strings.TrimSpace(product.ID) == "" {
			product.ID = uuid.NewString()
		}

		if err := m.AddProduct(product); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		logger.Info().Str("route", route).Str("productId", product.ID).Msg("product created")
		c.JSON(http.StatusCreated, product)
	}
}

/* =======================
   UPDATE
======================= */

// PUT /admin/api/products/:id — replaces the matching entry; an unknown id is
// silently ignored, matching the state manager's contract.
func UpdateProduct(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		defer handlePanic(c, route)

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			respondValidationError(c, err)
			return
		}
		product.ID = c.Param("id")

		if err := m.UpdateProduct(product); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/* =======================
   DELETE
======================= */

// DELETE /admin/api/products/:id — no cascade: cart lines and placed orders
// keep their frozen copies.
func DeleteProduct(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/products/:id"
		defer handlePanic(c, route)

		id := c.Param("id")
		m.DeleteProduct(id)

		logger.Info().Str("route", route).Str("productId", id).Msg("product deleted")
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
