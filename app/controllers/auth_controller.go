package controllers

import (
	"os"
	"strconv"
	"time"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/agromercado/agromercado-backend/app/queries"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/agromercado/agromercado-backend/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

func UserSignUp(c *fiber.Ctx) error {
	signUp := &models.SignUp{}
	if err := c.BodyParser(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var role *string
	if signUp.Role != "" {
		if !utils.IsValidRole(signUp.Role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid user role",
			})
		}
		role = &signUp.Role
	}

	userQueries := queries.UserQueries{DB: database.DB}
	if _, err := userQueries.GetUserByPhone(signUp.PhoneNumber); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Phone number already registered",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		ID:           uuid.New(),
		PhoneNumber:  signUp.PhoneNumber,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     true,
		IsAdmin:      false,
		IsVerified:   false,
		RegisteredAt: time.Now(),
	}

	if err := userQueries.CreateUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered. Verify your phone number to activate the account",
		"user": fiber.Map{
			"id":           user.ID,
			"phone_number": user.PhoneNumber,
			"role":         user.Role,
		},
	})
}

func UserSignIn(c *fiber.Ctx) error {
	signIn := &models.SignIn{}
	if err := c.BodyParser(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByPhone(signIn.PhoneNumber)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid phone number or password",
		})
	}

	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Account is disabled",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(signIn.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid phone number or password",
		})
	}

	accessMinutes := 60
	if env := os.Getenv("ACCESS_TOKEN_MINUTES"); env != "" {
		if iv, err := strconv.Atoi(env); err == nil && iv > 0 {
			accessMinutes = iv
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "JWT secret not set"})
	}

	claims := jwt.MapClaims{
		"user_id":      user.ID.String(),
		"phone_number": user.PhoneNumber,
		"is_admin":     user.IsAdmin,
		"exp":          time.Now().Add(time.Duration(accessMinutes) * time.Minute).Unix(),
	}
	if user.Role != nil {
		claims["role"] = *user.Role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Sign in successful",
		"access_token": tokenString,
		"expires_in":   accessMinutes * 60,
		"user": fiber.Map{
			"id":           user.ID,
			"phone_number": user.PhoneNumber,
			"role":         user.Role,
			"is_verified":  user.IsVerified,
		},
	})
}
