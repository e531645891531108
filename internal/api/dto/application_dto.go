package dto

// ApplicationStatusRequest payload for status updates. Status casing is
// normalized on write.
type ApplicationStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,application_status"`
}
