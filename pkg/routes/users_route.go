package routes

import (
	"time"

	"github.com/agromercado/agromercado-backend/app/controllers"
	"github.com/agromercado/agromercado-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterUserRoutes(app *fiber.App) {
	// Public routes
	app.Post("/signup", middleware.RateLimit("signup", 10, time.Minute), middleware.Permit("auth", "signup"), controllers.UserSignUp)
	app.Post("/signin", middleware.RateLimit("signin", 10, time.Minute), middleware.Permit("auth", "signin"), controllers.UserSignIn)

	// SMS verification; sends are throttled hard because each one costs money
	app.Get("/verify", middleware.RateLimit("verify", 3, time.Minute), middleware.Permit("verification", "send"), controllers.SendVerificationCode)
	app.Post("/verify", middleware.Permit("verification", "check"), controllers.CheckVerificationCode)

	user := app.Group("/user")
	user.Get("/profile", middleware.Permit("users", "profile"), controllers.UserProfile)
	user.Put("/profile", middleware.Permit("users", "update"), controllers.UpdateProfile)
	user.Put("/location", middleware.Permit("users", "updateLocation"), controllers.UpdateLocation)
	user.Put("/role", middleware.Permit("users", "updateRole"), controllers.UpdateRole)
	user.Post("/picture", middleware.Permit("users", "uploadPicture"), controllers.UploadProfilePicture)
	user.Delete("/", middleware.Permit("users", "delete"), controllers.DeleteOwnUser)

	// Admin
	app.Get("/users", middleware.Permit("users", "list"), controllers.ListUsers)
	app.Get("/users/:id", middleware.Permit("users", "retrieve"), controllers.GetUser)
	app.Post("/users/credits", middleware.Permit("users", "addCredits"), controllers.AddCredits)
}
