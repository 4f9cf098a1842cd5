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

type FoodController struct {
	foods       *repository.FoodRepository
	restaurants *repository.RestaurantRepository
}

func NewFoodController(foods *repository.FoodRepository, restaurants *repository.RestaurantRepository) *FoodController {
	return &FoodController{foods: foods, restaurants: restaurants}
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	var body struct {
		Name        string  `json:"name" binding:"required"`
		Image       string  `json:"image"`
		Price       float64 `json:"price" binding:"required,gte=0"`
		Category    string  `json:"category"`
		IsAvailable *bool   `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	restaurant, err := fc.restaurants.GetByID(c.Request.Context(), restaurantID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if restaurant == nil {
		apperrors.Respond(c, apperrors.NotFound("restaurant not found"))
		return
	}

	isAvailable := true
	if body.IsAvailable != nil {
		isAvailable = *body.IsAvailable
	}

	food := models.Food{
		RestaurantID: restaurantID,
		Name:         body.Name,
		Image:        body.Image,
		Price:        body.Price,
		Category:     body.Category,
		IsAvailable:  isAvailable,
	}
	if err := fc.foods.Create(c.Request.Context(), &food); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item created", "data": food})
}

// GetAllFoods lists the whole menu across restaurants, for global search.
func (fc *FoodController) GetAllFoods(c *gin.Context) {
	foods, err := fc.foods.ListAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": foods})
}

func (fc *FoodController) GetFoodsByRestaurant(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	foods, err := fc.foods.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": foods})
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	foodID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	var body struct {
		Name        *string  `json:"name"`
		Image       *string  `json:"image"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		IsAvailable *bool    `json:"isAvailable"`
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
	if body.Price != nil {
		if *body.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		fields["price"] = *body.Price
	}
	if body.Category != nil {
		fields["category"] = *body.Category
	}
	if body.IsAvailable != nil {
		fields["isAvailable"] = *body.IsAvailable
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	food, err := fc.foods.Update(c.Request.Context(), foodID, fields)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if food == nil {
		apperrors.Respond(c, apperrors.NotFound("food item not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated", "data": food})
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	foodID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	deleted, err := fc.foods.Delete(c.Request.Context(), foodID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if !deleted {
		apperrors.Respond(c, apperrors.NotFound("food item not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item removed"})
}
