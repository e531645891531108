package dto

// JobPostRequest payload for posting a job. Requirements is a
// comma-separated list.
type JobPostRequest struct {
	Title        string  `json:"title" form:"title" validate:"required"`
	Description  string  `json:"description" form:"description" validate:"required"`
	Requirements string  `json:"requirements" form:"requirements" validate:"required"`
	Salary       float64 `json:"salary" form:"salary" validate:"gte=0"`
	Location     string  `json:"location" form:"location" validate:"required"`
	JobType      string  `json:"jobtype" form:"jobtype" validate:"required"`
	Experience   string  `json:"experience" form:"experience" validate:"required"`
	Position     int     `json:"position" form:"position" validate:"required,gte=1"`
	CompanyID    string  `json:"companyId" form:"companyId" validate:"required"`
}
