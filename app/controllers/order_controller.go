package controllers

import (
	"strconv"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/agromercado/agromercado-backend/app/queries"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/agromercado/agromercado-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateOrder(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account must be verified to place orders"})
	}

	req := &models.OrderRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order := &models.Order{
		UserID:             userID,
		SupplyID:           req.Supplies,
		WeightUnit:         req.WeightUnit,
		UnitPrice:          req.UnitPrice,
		AreaUnit:           req.AreaUnit,
		Area:               req.Area,
		DesiredHarvestDate: req.DesiredHarvestDate,
		DesiredSowingDate:  req.DesiredSowingDate,
		IsSolved:           false,
	}

	orderQueries := queries.OrderQueries{DB: database.DB}
	if err := orderQueries.CreateOrder(order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func ListOrders(c *fiber.Ctx) error {
	orderQueries := queries.OrderQueries{DB: database.DB}
	orders, err := orderQueries.ListOrders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

// FilterOrders mirrors the publication facets over the order feed.
func FilterOrders(c *fiber.Ctx) error {
	filter, err := models.ParseFeedFilter(c.Queries())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	orderQueries := queries.OrderQueries{DB: database.DB}
	orders, err := orderQueries.FilterOrders(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func MyOrders(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	orderQueries := queries.OrderQueries{DB: database.DB}
	orders, err := orderQueries.ListOrdersByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func UpdateOrder(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	orderQueries := queries.OrderQueries{DB: database.DB}
	order, err := orderQueries.GetOrderByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if order.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the owner of this order"})
	}

	req := &models.UpdateOrderRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := orderQueries.UpdateOrder(id, req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Order updated"})
}

func DeleteOrder(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	orderQueries := queries.OrderQueries{DB: database.DB}
	order, err := orderQueries.GetOrderByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if order.UserID != userID && !isAdminCaller(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the owner of this order"})
	}

	if err := orderQueries.DeleteOrder(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Order deleted"})
}
