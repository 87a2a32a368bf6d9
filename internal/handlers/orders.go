package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshmart/internal/store"
)

type createOrderRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Address       string `json:"address"`
}

/* =========================
   CREATE ORDER
========================= */

// POST /orders
//
// The total is computed inside the state manager from the cart snapshot at
// call time; the request never carries prices. Placing an order with an empty
// cart is rejected here even though the manager would tolerate it — the
// degenerate zero-total order is a state-manager contract, not something we
// want reachable over HTTP.
func CreateOrder(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if len(m.Cart()) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "cart is empty")
			return
		}

		order, err := m.PlaceOrder(req.PaymentMethod, req.Address)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID,
			"order":   order,
		})
	}
}

/* =========================
   GET ORDERS
========================= */

// GET /orders — history, newest first.
func GetOrders(m *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Orders())
	}
}
