package controllers

import (
	"net/http"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/models"
	"github.com/sakshik2023/food-rush/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantController struct {
	restaurants *repository.RestaurantRepository
}

func NewRestaurantController(restaurants *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{restaurants: restaurants}
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Image       string `json:"image"`
		Description string `json:"description"`
		Address     string `json:"address"`
		IsActive    *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	restaurant := models.Restaurant{
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
		Address:     body.Address,
		IsActive:    isActive,
	}
	if err := rc.restaurants.Create(c.Request.Context(), &restaurant); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "data": restaurant})
}

func (rc *RestaurantController) GetRestaurants(c *gin.Context) {
	restaurants, err := rc.restaurants.List(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": restaurants})
}

func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	restaurant, err := rc.restaurants.GetByID(c.Request.Context(), restaurantID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if restaurant == nil {
		apperrors.Respond(c, apperrors.NotFound("restaurant not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": restaurant})
}

func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	var body struct {
		Name        *string `json:"name"`
		Image       *string `json:"image"`
		Description *string `json:"description"`
		Address     *string `json:"address"`
		IsActive    *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields := bson.M{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Image != nil {
		fields["image"] = *body.Image
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.Address != nil {
		fields["address"] = *body.Address
	}
	if body.IsActive != nil {
		fields["isActive"] = *body.IsActive
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	restaurant, err := rc.restaurants.Update(c.Request.Context(), restaurantID, fields)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if restaurant == nil {
		apperrors.Respond(c, apperrors.NotFound("restaurant not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "data": restaurant})
}

func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	deleted, err := rc.restaurants.Delete(c.Request.Context(), restaurantID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if !deleted {
		apperrors.Respond(c, apperrors.NotFound("restaurant not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant removed"})
}
