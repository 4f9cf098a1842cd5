package main

import (
	"github.com/sakshik2023/food-rush/config"
	"github.com/sakshik2023/food-rush/controllers"
	"github.com/sakshik2023/food-rush/database"
	"github.com/sakshik2023/food-rush/logger"
	"github.com/sakshik2023/food-rush/repository"
	"github.com/sakshik2023/food-rush/routes"
	"github.com/sakshik2023/food-rush/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	logger.Initialize(config.GetEnv("APP_ENV", "development"))
	defer logger.Log.Sync()

	database.ConnectMongo()
	database.InitCollections()
	database.EnsureIndexes()

	rdb := database.NewRedisClient(config.GetEnv("REDIS_URL", "redis://localhost:6379/0"))
	jwtSecret := []byte(config.GetEnv("JWT_SECRET", ""))
	if len(jwtSecret) == 0 {
		logger.Log.Fatal("JWT_SECRET not set in environment variables")
	}

	userRepo := repository.NewUserRepository(database.UserCollection)
	restaurantRepo := repository.NewRestaurantRepository(database.RestaurantCollection)
	foodRepo := repository.NewFoodRepository(database.FoodCollection)
	cartRepo := repository.NewCartRepository(database.CartCollection)
	orderRepo := repository.NewOrderRepository(database.Client, database.OrderCollection, database.CartCollection)

	cartService := services.NewCartService(cartRepo, foodRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, foodRepo, userRepo)

	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger())
	r.SetTrustedProxies(nil)

	routes.RegisterRoutes(r, routes.Handlers{
		Auth:        controllers.NewAuthController(userRepo, rdb, jwtSecret),
		Cart:        controllers.NewCartController(cartService),
		Order:       controllers.NewOrderController(orderService),
		Restaurant:  controllers.NewRestaurantController(restaurantRepo),
		Food:        controllers.NewFoodController(foodRepo, restaurantRepo),
		Admin:       controllers.NewAdminController(userRepo),
		JWTSecret:   jwtSecret,
		RedisClient: rdb,
	})

	port := config.GetEnv("PORT", "8080")
	logger.Log.Info("Server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("Server failed", zap.Error(err))
	}
}
