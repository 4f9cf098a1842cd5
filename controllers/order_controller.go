package controllers

import (
	"net/http"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/logger"
	"github.com/sakshik2023/food-rush/middleware"
	"github.com/sakshik2023/food-rush/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// PlaceOrder checks out the caller's cart into a new order.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var body struct {
		DeliveryAddress string `json:"deliveryAddress"`
		PaymentMethod   string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	p := middleware.CurrentPrincipal(c)
	order, err := oc.orders.Checkout(c.Request.Context(), p.ID, body.DeliveryAddress, body.PaymentMethod)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	logger.Log.Info("order placed",
		zap.String("request_id", logger.RequestID(c)),
		zap.String("order_id", order.ID.Hex()),
		zap.String("user_id", p.ID.Hex()),
		zap.Float64("total", order.TotalAmount),
	)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "data": order})
}

// GetMyOrders returns the caller's orders, newest first.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	orders, err := oc.orders.ListForUser(c.Request.Context(), p.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": orders})
}
