package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/medibook-platform/internal/simulate"
)

func newTestService() *Service {
	return NewService(simulate.None())
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantID   string
		wantErr  error
	}{
		{"patient account", "rahul@example.com", "password123", "patient1", nil},
		{"doctor account", "rajesh@example.com", "doctor123", "doctor1", nil},
		{"wrong password", "rahul@example.com", "doctor123", "", ErrInvalidCredentials},
		{"unknown email", "nobody@example.com", "password123", "", ErrInvalidCredentials},
		{"empty credentials", "", "", "", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestLoginReturnsProfile(t *testing.T) {
	svc := newTestService()

	user, err := svc.Login(context.Background(), "rahul@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", user.Name)
	assert.Equal(t, RolePatient, user.Role)
	assert.Equal(t, "+91 9876543210", user.Phone)
}

func TestRegisterDoesNotPersist(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Anita Desai",
		Email:    "anita@example.com",
		Password: "secret",
		Role:     RolePatient,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Anita Desai", user.Name)

	// Registration only echoes the profile; the account is not stored.
	_, err = svc.Login(ctx, "anita@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterAssignsUniqueIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := &RegisterRequest{Name: "A", Email: "a@example.com", Role: RolePatient}
	first, err := svc.Register(ctx, req)
	require.NoError(t, err)
	second, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
