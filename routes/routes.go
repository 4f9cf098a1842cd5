package routes

import (
	"github.com/sakshik2023/food-rush/controllers"
	"github.com/sakshik2023/food-rush/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Auth        *controllers.AuthController
	Cart        *controllers.CartController
	Order       *controllers.OrderController
	Restaurant  *controllers.RestaurantController
	Food        *controllers.FoodController
	Admin       *controllers.AdminController
	JWTSecret   []byte
	RedisClient *redis.Client
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	authRequired := middleware.AuthMiddleware(h.JWTSecret, h.RedisClient)
	adminOnly := middleware.AdminMiddleware()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", h.Restaurant.GetRestaurants)
			restaurants.GET("/:id", h.Restaurant.GetRestaurantByID)
			restaurants.POST("", authRequired, adminOnly, h.Restaurant.CreateRestaurant)
			restaurants.PUT("/:id", authRequired, adminOnly, h.Restaurant.UpdateRestaurant)
			restaurants.DELETE("/:id", authRequired, adminOnly, h.Restaurant.DeleteRestaurant)
		}

		foods := api.Group("/foods")
		{
			foods.GET("", h.Food.GetAllFoods)
			foods.GET("/restaurant/:restaurantId", h.Food.GetFoodsByRestaurant)
			foods.POST("/restaurant/:restaurantId", authRequired, adminOnly, h.Food.CreateFood)
			foods.PUT("/:id", authRequired, adminOnly, h.Food.UpdateFood)
			foods.DELETE("/:id", authRequired, adminOnly, h.Food.DeleteFood)
		}

		cart := api.Group("/cart", authRequired)
		{
			cart.GET("", h.Cart.GetCart)
			cart.POST("/add", h.Cart.AddToCart)
			cart.DELETE("/clear", h.Cart.ClearCart)
			cart.DELETE("/remove/:foodId", h.Cart.RemoveFromCart)
		}

		orders := api.Group("/orders", authRequired)
		{
			orders.POST("", h.Order.PlaceOrder)
			orders.GET("/user", h.Order.GetMyOrders)

			orders.GET("/admin", adminOnly, h.Order.GetOrdersAdmin)
			orders.GET("/admin/:id", adminOnly, h.Order.GetOrderByIDAdmin)
			orders.PUT("/:id/status", adminOnly, h.Order.UpdateOrderStatus)
		}

		admin := api.Group("/admin", authRequired, adminOnly)
		{
			admin.GET("/users", h.Admin.GetAllUsers)
			admin.PATCH("/users/:id/role", h.Admin.UpdateUserRole)
		}
	}
}
