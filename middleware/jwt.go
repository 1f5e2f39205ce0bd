package middleware

import (
	"fmt"
	"strings"
	"time"

	"greenstech/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a signed admin token carrying id, email and username
func GenerateJWT(adminID uint, email, username string) (string, error) {
	claims := jwt.MapClaims{
		"id":       adminID,
		"email":    email,
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// AdminJWT is a middleware that guards admin routes. It checks for a valid
// bearer token and requires the id and email claims to be present.
func AdminJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Access denied. No token provided.",
		})
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid or expired token.",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil || claims["email"] == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid admin token.",
		})
	}

	adminID, ok := claims["id"].(float64) // numeric JWT claims decode as float64
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid admin token.",
		})
	}

	email, ok := claims["email"].(string)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid admin token.",
		})
	}

	c.Locals("adminId", uint(adminID))
	c.Locals("adminEmail", email)
	if username, ok := claims["username"].(string); ok {
		c.Locals("adminUsername", username)
	}

	return c.Next()
}
