package domain

import "time"

// UserRole gates which operations a user may perform.
type UserRole string

const (
	RoleSeeker UserRole = "seeker"
	RoleAdmin  UserRole = "admin"
)

// ParseUserRole normalizes and validates a role string.
func ParseUserRole(raw string) (UserRole, bool) {
	switch UserRole(raw) {
	case RoleSeeker, RoleAdmin:
		return UserRole(raw), true
	default:
		return "", false
	}
}

// MaxProfileSkills caps the number of skills a profile may list.
const MaxProfileSkills = 10

// Profile holds the mutable profile section of a user document. The resume
// and photo fields are opaque URLs produced by the object storage layer.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	ResumeURL          string   `json:"resume"`
	ResumeOriginalName string   `json:"resumeOriginalName"`
	PhotoURL           string   `json:"profilePhoto"`
}

// User is the domain model for registered accounts, both seekers and admins.
type User struct {
	ID           string    `json:"_id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
