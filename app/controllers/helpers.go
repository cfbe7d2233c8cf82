package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func isAdminCaller(c *fiber.Ctx) bool {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return false
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return isAdmin
}
