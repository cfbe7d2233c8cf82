package controllers

import (
	"strconv"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/agromercado/agromercado-backend/app/queries"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/agromercado/agromercado-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

func CreatePublish(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if !user.IsVerified {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account must be verified to publish"})
	}

	req := &models.PublishRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	publish := &models.Publish{
		UserID:      userID,
		SupplyID:    req.Supplies,
		WeightUnit:  req.WeightUnit,
		UnitPrice:   req.UnitPrice,
		AreaUnit:    req.AreaUnit,
		Area:        req.Area,
		HarvestDate: req.HarvestDate,
		SowingDate:  req.SowingDate,
		PictureURLs: pq.StringArray(req.PictureURLs),
		IsSold:      false,
	}

	publishQueries := queries.PublishQueries{DB: database.DB}
	if err := publishQueries.CreatePublish(publish); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(publish)
}

func ListPublishes(c *fiber.Ctx) error {
	publishQueries := queries.PublishQueries{DB: database.DB}
	publishes, err := publishQueries.ListPublishes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(publishes)
}

// FilterPublishes answers the faceted feed query. Every parameter is an
// optional conjunctive constraint; malformed values answer 400.
func FilterPublishes(c *fiber.Ctx) error {
	filter, err := models.ParseFeedFilter(c.Queries())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	publishQueries := queries.PublishQueries{DB: database.DB}
	publishes, err := publishQueries.FilterPublishes(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(publishes)
}

func MyPublishes(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	publishQueries := queries.PublishQueries{DB: database.DB}
	publishes, err := publishQueries.ListPublishesByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(publishes)
}

func UpdatePublish(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid publication id"})
	}

	publishQueries := queries.PublishQueries{DB: database.DB}
	publish, err := publishQueries.GetPublishByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if publish.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the owner of this publication"})
	}

	req := &models.UpdatePublishRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := publishQueries.UpdatePublish(id, req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Publication updated"})
}

func DeletePublish(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid publication id"})
	}

	publishQueries := queries.PublishQueries{DB: database.DB}
	publish, err := publishQueries.GetPublishByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if publish.UserID != userID && !isAdminCaller(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the owner of this publication"})
	}

	if err := publishQueries.DeletePublish(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Publication deleted"})
}
