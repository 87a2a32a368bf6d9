package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"freshmart/internal/models"
	"freshmart/internal/store"
)

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// POST /auth/login
//
// Identity selection, not authentication: no password is checked. The
// response token carries the admin capability as a role claim so the UI and
// the admin routes gate consistently.
func Login(m *store.Manager, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"
		defer handlePanic(c, route)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user := m.Login(req.Email, req.Name)

		accessToken, err := issueSessionToken(user, jwtSecret, accessTTL)
		if err != nil {
			logger.Error().Err(err).Str("route", route).Msg("token generation failed")
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"accessToken": accessToken,
			"user":        user,
		})
	}
}

// POST /auth/logout
func Logout(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// GET /auth/me
func GetMe(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /auth/me"
		defer handlePanic(c, route)

		user, ok := m.CurrentUser()
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "no active session")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func issueSessionToken(user models.User, secret string, ttl time.Duration) (string, error) {
	role := "customer"
	if user.IsAdmin {
		role = "admin"
	}
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"role":  role,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
