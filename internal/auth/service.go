package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medibook/medibook-platform/internal/simulate"
)

// Simulated delays of the auth backend.
const (
	loginDelay    = 800 * time.Millisecond
	registerDelay = 1000 * time.Millisecond
)

type account struct {
	password string
	user     User
}

// Service is a stub authentication layer over two fixed demo accounts.
// There are no sessions, tokens or password hashes; a login either matches
// an account exactly or fails.
type Service struct {
	sleeper  simulate.Sleeper
	accounts []account
}

// NewService creates the auth stub with the demo accounts.
func NewService(sleeper simulate.Sleeper) *Service {
	return &Service{
		sleeper: sleeper,
		accounts: []account{
			{
				password: "password123",
				user: User{
					ID:      "patient1",
					Name:    "Rahul Sharma",
					Email:   "rahul@example.com",
					Role:    RolePatient,
					Phone:   "+91 9876543210",
					Address: "123 MG Road, Bangalore, Karnataka 560001",
				},
			},
			{
				password: "doctor123",
				user: User{
					ID:      "doctor1",
					Name:    "Dr. Rajesh Kumar",
					Email:   "rajesh@example.com",
					Role:    RoleDoctor,
					Phone:   "+91 9876543211",
					Address: "Apollo Hospital, New Delhi",
				},
			},
		},
	}
}

// Login matches credentials against the demo accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if err := s.sleeper.Sleep(ctx, loginDelay); err != nil {
		return nil, err
	}
	for _, acct := range s.accounts {
		if acct.user.Email == email && acct.password == password {
			user := acct.user
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Register fabricates an account ID and echoes the profile back. The
// account is not stored, so a later login with the same credentials fails.
// Known limitation of the demo backend.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	if err := s.sleeper.Sleep(ctx, registerDelay); err != nil {
		return nil, err
	}
	return &User{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Phone:   req.Phone,
		Address: req.Address,
	}, nil
}
