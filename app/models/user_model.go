package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `json:"id" db:"uid"`
	PhoneNumber       string    `json:"phone_number"`
	Email             *string   `json:"email,omitempty"`
	FirstName         *string   `json:"first_name,omitempty"`
	LastName          *string   `json:"last_name,omitempty"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
	NumberOfCredits   int       `json:"number_of_credits"`
	RUC               *string   `json:"ruc,omitempty"`
	DNI               *string   `json:"dni,omitempty"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	DistrictID        *int64    `json:"district,omitempty"`
	Role              *string   `json:"role,omitempty"`
	PasswordHash      string    `json:"-"`
	IsActive          bool      `json:"is_active"`
	IsAdmin           bool      `json:"is_admin"`
	IsVerified        bool      `json:"is_verified"`
	RegisteredAt      time.Time `json:"registered_at"`
}

type UpdateLocationRequest struct {
	District int64    `json:"district" validate:"required,gt=0"`
	Lat      *float64 `json:"lat" validate:"required"`
	Lon      *float64 `json:"lon" validate:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type UpdateProfileRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,lte=255"`
	FirstName *string `json:"first_name" validate:"omitempty,lte=30"`
	LastName  *string `json:"last_name" validate:"omitempty,lte=30"`
	RUC       *string `json:"ruc" validate:"omitempty,len=11"`
	DNI       *string `json:"dni" validate:"omitempty,len=8"`
}

type AddCreditsRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Amount int       `json:"amount" validate:"required,gt=0"`
}
