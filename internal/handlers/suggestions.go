package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"freshmart/internal/suggest"
)

type recipeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
}

// POST /suggestions/recipe
//
// Always answers 200 with a display-ready string: the suggestion client
// degrades to fixed fallbacks on its own.
func SuggestRecipe(client *suggest.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /suggestions/recipe"
		defer handlePanic(c, route)

		var req recipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		suggestion := client.RecipeSuggestion(c.Request.Context(), req.Ingredients)
		c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
	}
}

// GET /suggestions/tip?product=Name
func SuggestTip(client *suggest.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /suggestions/tip"
		defer handlePanic(c, route)

		product := strings.TrimSpace(c.Query("product"))
		if product == "" {
			respondWithError(c, http.StatusBadRequest, route, "product query param required")
			return
		}

		tip := client.CookingTip(c.Request.Context(), product)
		c.JSON(http.StatusOK, gin.H{"tip": tip})
	}
}
