package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"matchdb-jobs-service/config"
	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/internal/domain"
)

// AuthMiddleware validates the bearer token and loads identity claims into
// the gin context. The token carries userId, email, userType and plan; there
// is no local user table to consult.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		userID, _ := claims["userId"].(string)
		email, _ := claims["email"].(string)
		userType, _ := claims["userType"].(string)
		plan, _ := claims["plan"].(string)
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}
		if plan == "" {
			plan = domain.PlanFree
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserType), userType)
		c.Set(string(domain.KeyUserPlan), plan)

		c.Next()
	}
}

// RequireVendor gates handlers to vendor (or admin) identities.
func RequireVendor() gin.HandlerFunc {
	return requireUserType(domain.UserTypeVendor)
}

// RequireCandidate gates handlers to candidate (or admin) identities.
func RequireCandidate() gin.HandlerFunc {
	return requireUserType(domain.UserTypeCandidate)
}

func requireUserType(want string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString(string(domain.KeyUserType))
		if userType != want && userType != domain.UserTypeAdmin {
			response.Error(c, http.StatusForbidden, want+" access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
