package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/fleet-demand-ops/internal/models"
)

func TestNewService(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 24*time.Hour, service.tokenExp)
}

func TestService_HashPassword(t *testing.T) {
	service, _ := NewService()

	password := "testpassword123"
	hash, err := service.HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestService_CheckPassword(t *testing.T) {
	service, _ := NewService()

	password := "testpassword123"
	hash, _ := service.HashPassword(password)

	// Test correct password
	assert.True(t, service.CheckPassword(password, hash))

	// Test incorrect password
	assert.False(t, service.CheckPassword("wrongpassword", hash))
}

func TestService_CheckSupervisorPassword(t *testing.T) {
	service, _ := NewService()

	// Default passphrase when the environment does not set one
	assert.True(t, service.CheckSupervisorPassword("admin"))
	assert.False(t, service.CheckSupervisorPassword("letmein"))
	assert.False(t, service.CheckSupervisorPassword(""))
}

func TestService_GenerateToken(t *testing.T) {
	service, _ := NewService()

	user := &models.User{
		ID:     42,
		Name:   "Victor Junger",
		Role:   models.RoleUser,
		Sector: models.SectorHirefleet,
	}

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := NewService()

	user := &models.User{
		ID:     42,
		Name:   "Victor Junger",
		Role:   models.RoleUser,
		Sector: models.SectorHirefleet,
	}

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Victor Junger", claims.Name)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, models.SectorHirefleet, claims.Sector)

	// Bearer prefix is tolerated
	claims, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service, _ := NewService()

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service, _ := NewService()

	tests := []struct {
		name    string
		header  string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc123", false},
		{"missing header", "", true},
		{"wrong scheme", "Basic abc123", true},
		{"empty token", "Bearer ", true},
		{"no space", "Bearerabc123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ValidatePassword(t *testing.T) {
	service, _ := NewService()

	assert.NoError(t, service.ValidatePassword("password"))
	assert.Error(t, service.ValidatePassword("abc"))
}

func TestService_ValidateEmail(t *testing.T) {
	service, _ := NewService()

	assert.NoError(t, service.ValidateEmail("victor.junger@4th-d.co.uk"))
	assert.Error(t, service.ValidateEmail("not-an-email"))
	assert.Error(t, service.ValidateEmail("missing@dot"))
}
