package middleware

import (
	"net/http"
	"strings"

	"github.com/sakshik2023/food-rush/logger"
	"github.com/sakshik2023/food-rush/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const principalKey = "principal"

// BlacklistPrefix namespaces revoked-token keys in Redis.
const BlacklistPrefix = "blacklist:"

// AuthMiddleware validates the bearer token, rejects blacklisted tokens and
// stores the resolved Principal on the context.
func AuthMiddleware(jwtSecret []byte, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		exists, err := rdb.Exists(c.Request.Context(), BlacklistPrefix+tokenString).Result()
		if err != nil {
			// A revoked token must stay revoked even when Redis is down.
			logger.Log.Warn("token blacklist check failed",
				zap.String("request_id", logger.RequestID(c)),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to verify token"})
			return
		}
		if exists > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, _ := claims["userId"].(string)
		role, _ := claims["role"].(string)
		objID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(principalKey, models.Principal{ID: objID, Role: role})
		c.Next()
	}
}

// AdminMiddleware allows only principals with the admin role through.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := c.Get(principalKey)
		if !ok || !p.(models.Principal).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: admin only"})
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated principal set by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) models.Principal {
	return c.MustGet(principalKey).(models.Principal)
}
