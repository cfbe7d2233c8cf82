package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ExtractUserID returns the user_id UUID from the JWT claims the auth
// middleware stored in Locals.
func ExtractUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("missing token claims")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("invalid token payload")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id in token")
	}
	return userID, nil
}
