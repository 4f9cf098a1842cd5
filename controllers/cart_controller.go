package controllers

import (
	"net/http"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/middleware"
	"github.com/sakshik2023/food-rush/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

func (cc *CartController) GetCart(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	view, err := cc.carts.Get(c.Request.Context(), p.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": view})
}

// AddToCart applies a quantity delta. A missing or zero quantity defaults
// to +1; a negative quantity reduces the line item and removes it when it
// reaches zero.
func (cc *CartController) AddToCart(c *gin.Context) {
	var body struct {
		FoodID   string `json:"foodId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	foodID, err := primitive.ObjectIDFromHex(body.FoodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid foodId"})
		return
	}

	p := middleware.CurrentPrincipal(c)
	view, err := cc.carts.AddOrAdjust(c.Request.Context(), p.ID, foodID, body.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": view})
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	foodID, err := primitive.ObjectIDFromHex(c.Param("foodId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid foodId"})
		return
	}

	p := middleware.CurrentPrincipal(c)
	view, err := cc.carts.Remove(c.Request.Context(), p.ID, foodID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "data": view})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	if err := cc.carts.Clear(c.Request.Context(), p.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
