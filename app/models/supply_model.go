package models

type Supply struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DaysForHarvest int    `json:"days_for_harvest"`
}

type SupplyRequest struct {
	Name           string `json:"name" validate:"required,lte=50"`
	DaysForHarvest int    `json:"days_for_harvest" validate:"gte=0"`
}
