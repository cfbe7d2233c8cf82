package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 int64           `json:"id"`
	UserID             uuid.UUID       `json:"user"`
	SupplyID           int64           `json:"supplies"`
	WeightUnit         string          `json:"weight_unit"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	AreaUnit           string          `json:"area_unit"`
	Area               float64         `json:"area"`
	DesiredHarvestDate time.Time       `json:"desired_harvest_date"`
	DesiredSowingDate  time.Time       `json:"desired_sowing_date"`
	IsSolved           bool            `json:"is_solved"`
}

type OrderRequest struct {
	Supplies           int64           `json:"supplies" validate:"required,gt=0"`
	WeightUnit         string          `json:"weight_unit" validate:"required,oneof=kg ton"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	AreaUnit           string          `json:"area_unit" validate:"required,oneof=hm2 m2"`
	Area               float64         `json:"area" validate:"required,gt=0"`
	DesiredHarvestDate time.Time       `json:"desired_harvest_date" validate:"required"`
	DesiredSowingDate  time.Time       `json:"desired_sowing_date" validate:"required"`
}

type UpdateOrderRequest struct {
	WeightUnit         *string          `json:"weight_unit" validate:"omitempty,oneof=kg ton"`
	UnitPrice          *decimal.Decimal `json:"unit_price"`
	AreaUnit           *string          `json:"area_unit" validate:"omitempty,oneof=hm2 m2"`
	Area               *float64         `json:"area" validate:"omitempty,gt=0"`
	DesiredHarvestDate *time.Time       `json:"desired_harvest_date"`
	DesiredSowingDate  *time.Time       `json:"desired_sowing_date"`
	IsSolved           *bool            `json:"is_solved"`
}
