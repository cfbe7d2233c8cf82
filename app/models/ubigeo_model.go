package models

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Region struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"department"`
	Name         string `json:"name"`
}

type District struct {
	ID           int64  `json:"id"`
	RegionID     int64  `json:"region"`
	DepartmentID int64  `json:"department"`
	Name         string `json:"name"`
}

type DepartmentRequest struct {
	Name string `json:"name" validate:"required,lte=35"`
}

type RegionRequest struct {
	Department int64  `json:"department" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,lte=35"`
}

// DistrictRequest carries no department: it is always derived from the
// region so the containment invariant cannot be violated by a client.
type DistrictRequest struct {
	Region int64  `json:"region" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,lte=50"`
}
