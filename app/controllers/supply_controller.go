package controllers

import (
	"strconv"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/agromercado/agromercado-backend/app/queries"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/gofiber/fiber/v2"
)

func ListSupplies(c *fiber.Ctx) error {
	supplyQueries := queries.SupplyQueries{DB: database.DB}
	supplies, err := supplyQueries.ListSupplies()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(supplies)
}

func CreateSupply(c *fiber.Ctx) error {
	req := &models.SupplyRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplyQueries := queries.SupplyQueries{DB: database.DB}
	supply, err := supplyQueries.CreateSupply(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(supply)
}

func UpdateSupply(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supply id"})
	}

	req := &models.SupplyRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplyQueries := queries.SupplyQueries{DB: database.DB}
	if err := supplyQueries.UpdateSupply(id, req); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Supply updated"})
}

func DeleteSupply(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supply id"})
	}

	supplyQueries := queries.SupplyQueries{DB: database.DB}
	if err := supplyQueries.DeleteSupply(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Supply deleted"})
}
