package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"freshmart/internal/catalog"
	"freshmart/internal/store"
)

/*
GET /products
- filtering is read-side: search + category + price range + sort, computed
  fresh on every request from the current catalog
- pagination is optional: applied only when page AND limit are both present
*/
func GetProducts(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		search := strings.TrimSpace(c.Query("search"))
		if search == "" {
			// Fall back to the stored storefront search query.
			search = m.SearchQuery()
		}

		filter := store.Filter{
			Query: search,
			Sort:  strings.TrimSpace(c.Query("sort")),
		}
		if raw := strings.TrimSpace(c.Query("category")); raw != "" {
			filter.Categories = strings.Split(raw, ",")
		}
		if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid minPrice")
				return
			}
			filter.MinPrice = v
		}
		if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid maxPrice")
				return
			}
			filter.MaxPrice = v
		}

		products := store.FilterProducts(m.Products(), filter)

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"data": paginate(products, page, limit),
				"pagination": gin.H{
					"page":  page,
					"limit": limit,
					"total": len(products),
				},
			})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProduct(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		product, ok := m.Product(c.Param("id"))
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /categories
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Categories())
	}
}
