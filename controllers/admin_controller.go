package controllers

import (
	"net/http"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/middleware"
	"github.com/sakshik2023/food-rush/models"
	"github.com/sakshik2023/food-rush/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminController struct {
	users *repository.UserRepository
}

func NewAdminController(users *repository.UserRepository) *AdminController {
	return &AdminController{users: users}
}

func (ac *AdminController) GetAllUsers(c *gin.Context) {
	users, err := ac.users.List(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": users})
}

func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	// An admin demoting themselves would lock them out of this very panel.
	p := middleware.CurrentPrincipal(c)
	if p.ID == userID {
		apperrors.Respond(c, apperrors.Validation("you cannot change your own role"))
		return
	}

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !models.IsValidRole(body.Role) {
		apperrors.Respond(c, apperrors.Validation("invalid role"))
		return
	}

	user, err := ac.users.UpdateRole(c.Request.Context(), userID, body.Role)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if user == nil {
		apperrors.Respond(c, apperrors.NotFound("user not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated",
		"data": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
