package controllers

import (
	"fmt"
	"strconv"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/agromercado/agromercado-backend/app/queries"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/gofiber/fiber/v2"
)

// parentIDParam parses an optional parent-ID query parameter for the
// cascading lookups. Absent, empty and "0" all mean "no restriction".
func parentIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return v, nil
}

func ListDepartments(c *fiber.Ctx) error {
	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	departments, err := ubigeoQueries.ListDepartments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(departments)
}

func CreateDepartment(c *fiber.Ctx) error {
	req := &models.DepartmentRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	department, err := ubigeoQueries.CreateDepartment(req.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(department)
}

func DeleteDepartment(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid department id"})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	if err := ubigeoQueries.DeleteDepartment(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Department deleted"})
}

// ListRegions returns regions, optionally restricted to one department for
// the cascading dropdowns.
func ListRegions(c *fiber.Ctx) error {
	departmentID, err := parentIDParam(c, "department")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	regions, err := ubigeoQueries.ListRegions(departmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(regions)
}

func CreateRegion(c *fiber.Ctx) error {
	req := &models.RegionRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	region, err := ubigeoQueries.CreateRegion(req.Department, req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(region)
}

func DeleteRegion(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid region id"})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	if err := ubigeoQueries.DeleteRegion(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Region deleted"})
}

// ListDistricts returns districts, optionally restricted to one region.
func ListDistricts(c *fiber.Ctx) error {
	regionID, err := parentIDParam(c, "region")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	districts, err := ubigeoQueries.ListDistricts(regionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(districts)
}

func CreateDistrict(c *fiber.Ctx) error {
	req := &models.DistrictRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	district, err := ubigeoQueries.CreateDistrict(req.Region, req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(district)
}

func DeleteDistrict(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid district id"})
	}

	ubigeoQueries := queries.UbigeoQueries{DB: database.DB}
	if err := ubigeoQueries.DeleteDistrict(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "District deleted"})
}
