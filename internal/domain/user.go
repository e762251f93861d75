package domain

import "strings"

// Role of an authenticated user
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleAesthetician Role = "aesthetician"
	RoleClient       Role = "client"
)

// User is the profile of the authenticated caller
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Role      Role
}

// DisplayName follows the dashboards' convention:
// aesthetician "Dr. First Last", admin "First Last (admin)", client "First Last"
func (u *User) DisplayName() string {
	name := joinName(u.FirstName, u.LastName)
	switch u.Role {
	case RoleAesthetician:
		return "Dr. " + name
	case RoleAdmin:
		return name + " (admin)"
	default:
		return name
	}
}

// HasRole reports whether the user has one of roles
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Service is a salon service offered for booking
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	ImageURL        string
	IsActive        bool
}

// Aesthetician is a staff member clients can book with
type Aesthetician struct {
	ID        int64
	FirstName string
	LastName  string
}

// FullName returns "First Last"
func (a *Aesthetician) FullName() string {
	return joinName(a.FirstName, a.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
