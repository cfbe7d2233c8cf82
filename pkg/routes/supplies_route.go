package routes

import (
	"github.com/agromercado/agromercado-backend/app/controllers"
	"github.com/agromercado/agromercado-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterSupplyRoutes(app *fiber.App) {
	app.Get("/supplies", middleware.Permit("supplies", "list"), controllers.ListSupplies)
	app.Post("/supplies", middleware.Permit("supplies", "create"), controllers.CreateSupply)
	app.Put("/supplies/:id", middleware.Permit("supplies", "update"), controllers.UpdateSupply)
	app.Delete("/supplies/:id", middleware.Permit("supplies", "delete"), controllers.DeleteSupply)
}
