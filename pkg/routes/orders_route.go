package routes

import (
	"github.com/agromercado/agromercado-backend/app/controllers"
	"github.com/agromercado/agromercado-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterOrderRoutes(app *fiber.App) {
	app.Get("/orders", middleware.Permit("orders", "list"), controllers.ListOrders)
	app.Get("/orders/filter", middleware.Permit("orders", "filter"), controllers.FilterOrders)
	app.Get("/orders/mine", middleware.Permit("orders", "mine"), controllers.MyOrders)
	app.Post("/orders", middleware.Permit("orders", "create"), controllers.CreateOrder)
	app.Put("/orders/:id", middleware.Permit("orders", "update"), controllers.UpdateOrder)
	app.Delete("/orders/:id", middleware.Permit("orders", "delete"), controllers.DeleteOrder)
}
