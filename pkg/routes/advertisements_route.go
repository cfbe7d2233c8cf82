package routes

import (
	"github.com/agromercado/agromercado-backend/app/controllers"
	"github.com/agromercado/agromercado-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterAdvertisementRoutes(app *fiber.App) {
	app.Get("/advertisements/feed", middleware.Permit("advertisements", "feed"), controllers.AdvertisementFeed)
	app.Get("/advertisements/mine", middleware.Permit("advertisements", "mine"), controllers.MyAdvertisements)
	app.Get("/advertisements/:id", middleware.Permit("advertisements", "retrieve"), controllers.GetAdvertisement)
	app.Post("/advertisements", middleware.Permit("advertisements", "create"), controllers.CreateAdvertisement)
	app.Put("/advertisements/:id", middleware.Permit("advertisements", "update"), controllers.UpdateAdvertisement)
	app.Delete("/advertisements/:id", middleware.Permit("advertisements", "delete"), controllers.DeleteAdvertisement)
}
