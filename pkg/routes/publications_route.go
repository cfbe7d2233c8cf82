package routes

import (
	"github.com/agromercado/agromercado-backend/app/controllers"
	"github.com/agromercado/agromercado-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterPublicationRoutes(app *fiber.App) {
	app.Get("/publications", middleware.Permit("publications", "list"), controllers.ListPublishes)
	app.Get("/publications/filter", middleware.Permit("publications", "filter"), controllers.FilterPublishes)
	app.Get("/publications/mine", middleware.Permit("publications", "mine"), controllers.MyPublishes)
	app.Post("/publications", middleware.Permit("publications", "create"), controllers.CreatePublish)
	app.Put("/publications/:id", middleware.Permit("publications", "update"), controllers.UpdatePublish)
	app.Delete("/publications/:id", middleware.Permit("publications", "delete"), controllers.DeletePublish)
}
