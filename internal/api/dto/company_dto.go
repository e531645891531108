package dto

// CompanyRegisterRequest payload for company registration.
type CompanyRegisterRequest struct {
	CompanyName string `json:"companyName" form:"companyName" validate:"required"`
}

// CompanyUpdateRequest payload for company updates. All fields optional;
// empty fields keep their stored value.
type CompanyUpdateRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Website     string `json:"website" form:"website"`
	Location    string `json:"location" form:"location"`
}
