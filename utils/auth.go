// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Generate JWT secret key (run once initially)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Generate JWT token carrying the user id and role
func GenerateToken(userID, role string) (string, error) {
	expiryHours := 24 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// Auth middleware
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			// Fall back to the session cookie set on login
			if cookie, err := c.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization required"})
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("userId", claims["sub"])
			c.Set("role", claims["role"])
		} else {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Next()
	}
}

// RequireRole blocks requests whose token does not carry the given role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("role")
		if !exists || got != role {
			c.AbortWithStatusJSON(403, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
