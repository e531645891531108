package domain

import "time"

// Job is a posting created by an admin user. It references its company and
// creator by identifier; applications referencing the job are looked up at
// read time rather than stored on the job itself.
type Job struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          float64   `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobtype"`
	ExperienceLevel string    `json:"experienceLevel"`
	Position        int       `json:"position"`
	CompanyID       string    `json:"company"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
