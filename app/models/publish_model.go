package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	WeightUnitKilogram = "kg"
	WeightUnitTon      = "ton"

	AreaUnitHectare     = "hm2"
	AreaUnitSquareMeter = "m2"
)

type Publish struct {
	ID          int64            `json:"id"`
	UserID      uuid.UUID        `json:"user"`
	SupplyID    int64            `json:"supplies"`
	WeightUnit  string           `json:"weight_unit"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	AreaUnit    string           `json:"area_unit"`
	Area        float64          `json:"area"`
	HarvestDate time.Time        `json:"harvest_date"`
	SowingDate  time.Time        `json:"sowing_date"`
	PictureURLs pq.StringArray   `json:"picture_urls"`
	IsSold      bool             `json:"is_sold"`
}

type PublishRequest struct {
	Supplies    int64            `json:"supplies" validate:"required,gt=0"`
	WeightUnit  string           `json:"weight_unit" validate:"required,oneof=kg ton"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	AreaUnit    string           `json:"area_unit" validate:"required,oneof=hm2 m2"`
	Area        float64          `json:"area" validate:"required,gt=0"`
	HarvestDate time.Time        `json:"harvest_date" validate:"required"`
	SowingDate  time.Time        `json:"sowing_date" validate:"required"`
	PictureURLs []string         `json:"picture_urls" validate:"dive,url"`
}

type UpdatePublishRequest struct {
	WeightUnit  *string          `json:"weight_unit" validate:"omitempty,oneof=kg ton"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	AreaUnit    *string          `json:"area_unit" validate:"omitempty,oneof=hm2 m2"`
	Area        *float64         `json:"area" validate:"omitempty,gt=0"`
	HarvestDate *time.Time       `json:"harvest_date"`
	SowingDate  *time.Time       `json:"sowing_date"`
	PictureURLs []string         `json:"picture_urls" validate:"omitempty,dive,url"`
	IsSold      *bool            `json:"is_sold"`
}
