package controllers

import (
	"strconv"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/agromercado/agromercado-backend/app/queries"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/agromercado/agromercado-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// CreateAdvertisement opens a credit-funded ad slot for an advertiser.
func CreateAdvertisement(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role == nil || *user.Role != utils.RoleAdvertiser {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only advertisers can create advertisements"})
	}

	req := &models.AdvertisementRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	adQueries := queries.AdvertisementQueries{DB: database.DB}
	ad, err := adQueries.CreateAdvertisement(userID, req)
	if err != nil {
		if err == queries.ErrInsufficientCredits {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(ad)
}

func MyAdvertisements(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	adQueries := queries.AdvertisementQueries{DB: database.DB}
	ads, err := adQueries.ListAdvertisementsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(ads)
}

func GetAdvertisement(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advertisement id"})
	}

	adQueries := queries.AdvertisementQueries{DB: database.DB}
	ad, err := adQueries.GetAdvertisementByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(ad)
}

func UpdateAdvertisement(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advertisement id"})
	}

	adQueries := queries.AdvertisementQueries{DB: database.DB}
	ad, err := adQueries.GetAdvertisementByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if ad.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the owner of this advertisement"})
	}

	req := &models.UpdateAdvertisementRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := adQueries.UpdateAdvertisement(id, req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Advertisement updated"})
}

func DeleteAdvertisement(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advertisement id"})
	}

	adQueries := queries.AdvertisementQueries{DB: database.DB}
	ad, err := adQueries.GetAdvertisementByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if ad.UserID != userID && !isAdminCaller(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the owner of this advertisement"})
	}

	if err := adQueries.DeleteAdvertisement(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Advertisement deleted"})
}

// AdvertisementFeed serves active ads targeted at the caller's location.
// Serving an ad consumes one of its credits.
func AdvertisementFeed(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	placement := c.Query("placement", "publications")
	if placement != "publications" && placement != "orders" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid placement parameter"})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	adQueries := queries.AdvertisementQueries{DB: database.DB}
	ads, err := adQueries.FeedForUser(user, placement == "publications")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(ads)
}
