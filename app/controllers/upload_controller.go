package controllers

import (
	"github.com/agromercado/agromercado-backend/app/queries"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/agromercado/agromercado-backend/pkg/storage"
	"github.com/agromercado/agromercado-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// Store is the object store for uploaded files, set at startup.
var Store storage.Store

const maxUploadBytes = 5 << 20 // 5 MiB

const maxFilenameRunes = 10

// UploadProfilePicture stores the uploaded picture and saves its URL on the
// caller's record. Oversized files answer 413 without touching the record.
func UploadProfilePicture(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file field"})
	}

	if fileHeader.Size > maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "File exceeds the 5 MiB limit",
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	name := []rune(fileHeader.Filename)
	if len(name) > maxFilenameRunes {
		name = name[:maxFilenameRunes]
	}
	key := user.PhoneNumber + "_" + string(name)

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unable to read file"})
	}
	defer f.Close()

	fileURL, err := Store.Save(key, f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unable to store file"})
	}
	fileURL = storage.StripQuery(fileURL)

	if err := userQueries.UpdateProfilePictureURL(user.ID, fileURL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile picture updated",
		"fileUrl": fileURL,
	})
}
