package models

import (
	"time"

	"github.com/google/uuid"
)

type Advertisement struct {
	ID                   int64      `json:"id"`
	UserID               uuid.UUID  `json:"user"`
	RemainingCredits     int        `json:"remaining_credits"`
	OriginalCredits      *int       `json:"original_credits,omitempty"`
	RegionID             *int64     `json:"region,omitempty"`
	DepartmentID         *int64     `json:"department,omitempty"`
	DistrictID           *int64     `json:"district,omitempty"`
	ForOrders            bool       `json:"for_orders"`
	ForPublications      bool       `json:"for_publications"`
	PictureURL           *string    `json:"picture_url,omitempty"`
	URL                  *string    `json:"url,omitempty"`
	Name                 string     `json:"name"`
	BeginningSowingDate  *time.Time `json:"beginning_sowing_date,omitempty"`
	EndingSowingDate     *time.Time `json:"ending_sowing_date,omitempty"`
	BeginningHarvestDate *time.Time `json:"beginning_harvest_date,omitempty"`
	EndingHarvestDate    *time.Time `json:"ending_harvest_date,omitempty"`
	Supplies             []int64    `json:"supplies,omitempty"`
}

type AdvertisementRequest struct {
	OriginalCredits      int        `json:"original_credits" validate:"required,gt=0"`
	Region               *int64     `json:"region"`
	Department           *int64     `json:"department"`
	District             *int64     `json:"district"`
	ForOrders            *bool      `json:"for_orders"`
	ForPublications      *bool      `json:"for_publications"`
	PictureURL           *string    `json:"picture_url" validate:"omitempty,url"`
	URL                  *string    `json:"url" validate:"omitempty,url"`
	Name                 string     `json:"name" validate:"required,lte=100"`
	BeginningSowingDate  *time.Time `json:"beginning_sowing_date"`
	EndingSowingDate     *time.Time `json:"ending_sowing_date"`
	BeginningHarvestDate *time.Time `json:"beginning_harvest_date"`
	EndingHarvestDate    *time.Time `json:"ending_harvest_date"`
	Supplies             []int64    `json:"supplies" validate:"dive,gt=0"`
}

type UpdateAdvertisementRequest struct {
	Region               *int64     `json:"region"`
	Department           *int64     `json:"department"`
	District             *int64     `json:"district"`
	ForOrders            *bool      `json:"for_orders"`
	ForPublications      *bool      `json:"for_publications"`
	PictureURL           *string    `json:"picture_url" validate:"omitempty,url"`
	URL                  *string    `json:"url" validate:"omitempty,url"`
	Name                 *string    `json:"name" validate:"omitempty,lte=100"`
	BeginningSowingDate  *time.Time `json:"beginning_sowing_date"`
	EndingSowingDate     *time.Time `json:"ending_sowing_date"`
	BeginningHarvestDate *time.Time `json:"beginning_harvest_date"`
	EndingHarvestDate    *time.Time `json:"ending_harvest_date"`
	Supplies             []int64    `json:"supplies" validate:"omitempty,dive,gt=0"`
}
