package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// Capability is the access level an operation requires.
type Capability int

const (
	CapPublic Capability = iota
	CapAuthenticated
	CapAdmin
)

// actionCapabilities is the single authoritative table mapping
// (resource, action) to the required capability. Every route must have an
// entry; an unknown pair is denied outright.
var actionCapabilities = map[string]Capability{
	"auth:signup": CapPublic,
	"auth:signin": CapPublic,

	"verification:send":  CapAuthenticated,
	"verification:check": CapAuthenticated,

	"users:profile":        CapAuthenticated,
	"users:list":           CapAdmin,
	"users:retrieve":       CapAdmin,
	"users:update":         CapAuthenticated,
	"users:updateLocation": CapAuthenticated,
	"users:updateRole":     CapAuthenticated,
	"users:addCredits":     CapAdmin,
	"users:uploadPicture":  CapAuthenticated,
	"users:delete":         CapAuthenticated,

	"departments:list":   CapPublic,
	"departments:create": CapAdmin,
	"departments:delete": CapAdmin,
	"regions:list":       CapPublic,
	"regions:create":     CapAdmin,
	"regions:delete":     CapAdmin,
	"districts:list":     CapPublic,
	"districts:create":   CapAdmin,
	"districts:delete":   CapAdmin,

	"supplies:list":   CapPublic,
	"supplies:create": CapAdmin,
	"supplies:update": CapAdmin,
	"supplies:delete": CapAdmin,

	"publications:list":   CapPublic,
	"publications:filter": CapPublic,
	"publications:mine":   CapAuthenticated,
	"publications:create": CapAuthenticated,
	"publications:update": CapAuthenticated,
	"publications:delete": CapAuthenticated,

	"orders:list":   CapPublic,
	"orders:filter": CapPublic,
	"orders:mine":   CapAuthenticated,
	"orders:create": CapAuthenticated,
	"orders:update": CapAuthenticated,
	"orders:delete": CapAuthenticated,

	"advertisements:create":   CapAuthenticated,
	"advertisements:mine":     CapAuthenticated,
	"advertisements:retrieve": CapAuthenticated,
	"advertisements:update":   CapAuthenticated,
	"advertisements:delete":   CapAuthenticated,
	"advertisements:feed":     CapAuthenticated,
}

// Permit is the single authorization gate. It resolves the capability for the
// (resource, action) pair and, when authentication is required, parses the
// bearer token and stores its claims in Locals for the handlers.
func Permit(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		capability, ok := actionCapabilities[resource+":"+action]
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Operation not permitted",
			})
		}

		if capability == CapPublic {
			return c.Next()
		}

		claims, err := bearerClaims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("user", claims)

		if capability == CapAdmin {
			if isAdmin, _ := claims["is_admin"].(bool); !isAdmin {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Admin access required",
				})
			}
		}
		return c.Next()
	}
}
