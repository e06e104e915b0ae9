package models

import "strings"

// Role represents user roles in the system
type Role string

const (
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// ThemeName is the user's UI theme preference.
type ThemeName string

const (
	ThemeDark      ThemeName = "dark"
	ThemeLight     ThemeName = "light"
	ThemeChristmas ThemeName = "christmas"
	ThemeSummer    ThemeName = "summer"
	ThemeAutumn    ThemeName = "autumn"
	ThemeEaster    ThemeName = "easter"
	ThemeSpring    ThemeName = "spring"
	ThemeLogistics ThemeName = "logistics"
	ThemeWorkshop  ThemeName = "workshop"
	ThemeHirefleet ThemeName = "hirefleet"
)

// User represents a user in the system
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Sector       Sector    `json:"sector"`
	Role         Role      `json:"role"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Theme        ThemeName `json:"theme"`
}

// FirstName returns the first whitespace-delimited token of the display
// name. Mentions resolve against this.
func (u *User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleUser, RoleSupervisor, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsValidTheme checks if a theme name is one of the known themes.
func IsValidTheme(theme ThemeName) bool {
	switch theme {
	case ThemeDark, ThemeLight, ThemeChristmas, ThemeSummer, ThemeAutumn,
		ThemeEaster, ThemeSpring, ThemeLogistics, ThemeWorkshop, ThemeHirefleet:
		return true
	default:
		return false
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest represents an admin creating a new user account.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Sector   Sector `json:"sector"`
	Phone    string `json:"phone"`
}

// Claims represents JWT claims
type Claims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Sector Sector `json:"sector"`
	Exp    int64  `json:"exp"`
}
