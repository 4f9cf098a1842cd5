package controllers

import (
	"net/http"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func (oc *OrderController) GetOrdersAdmin(c *gin.Context) {
	orders, err := oc.orders.ListAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": orders})
}

func (oc *OrderController) GetOrderByIDAdmin(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), orderID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": order})
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := oc.orders.SetStatus(c.Request.Context(), orderID, body.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	logger.Log.Info("order status updated",
		zap.String("order_id", order.ID.Hex()),
		zap.String("status", order.Status),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "data": order})
}
