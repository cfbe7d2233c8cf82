package models

type SignUp struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Password    string `json:"password" validate:"required,gte=8,lte=255"`
	Role        string `json:"role,omitempty"`
}

type SignIn struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Password    string `json:"password" validate:"required,lte=255"`
}

type VerifyCode struct {
	Code string `json:"code" validate:"required,numeric,gte=4,lte=10"`
}
