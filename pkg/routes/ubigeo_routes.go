package routes

import (
	"github.com/agromercado/agromercado-backend/app/controllers"
	"github.com/agromercado/agromercado-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterUbigeoRoutes(app *fiber.App) {
	app.Get("/departments", middleware.Permit("departments", "list"), controllers.ListDepartments)
	app.Post("/departments", middleware.Permit("departments", "create"), controllers.CreateDepartment)
	app.Delete("/departments/:id", middleware.Permit("departments", "delete"), controllers.DeleteDepartment)

	app.Get("/regions", middleware.Permit("regions", "list"), controllers.ListRegions)
	app.Post("/regions", middleware.Permit("regions", "create"), controllers.CreateRegion)
	app.Delete("/regions/:id", middleware.Permit("regions", "delete"), controllers.DeleteRegion)

	app.Get("/districts", middleware.Permit("districts", "list"), controllers.ListDistricts)
	app.Post("/districts", middleware.Permit("districts", "create"), controllers.CreateDistrict)
	app.Delete("/districts/:id", middleware.Permit("districts", "delete"), controllers.DeleteDistrict)
}
