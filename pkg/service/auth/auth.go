// Package auth issues and validates the JWT tokens guarding the API. Users
// are a fixed demo directory; there is no registration flow.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diegorozoc/million/pkg/config"
	"github.com/diegorozoc/million/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthorized is returned for unknown identities and wrong passwords alike.
var ErrUnauthorized = errors.New("invalid credentials")

// Role gates what an authenticated user may do.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// User is an entry in the demo directory.
type User struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  Role

	hashedPassword string
}

// Service authenticates users and signs tokens.
type Service struct {
	cfg    *config.Jwt
	users  map[string]*User
	logger *slog.Logger
}

// New builds the auth service over the demo user directory. Passwords are
// hashed once at startup.
func New(cfg *config.Jwt, logger *slog.Logger) (*Service, error) {
	s := &Service{cfg: cfg, users: make(map[string]*User), logger: logger}
	seed := []struct {
		email, name, password string
		role                  Role
	}{
		{"admin@million.com", "Admin", "Admin123!", RoleAdmin},
		{"manager@million.com", "Manager", "Manager123!", RoleManager},
		{"user@million.com", "User", "User123!", RoleUser},
	}
	for _, u := range seed {
		hash, err := utils.HashPassword(u.password)
		if err != nil {
			return nil, fmt.Errorf("seeding demo users: %w", err)
		}
		s.users[u.email] = &User{
			ID:             uuid.New(),
			Email:          u.email,
			Name:           u.name,
			Role:           u.role,
			hashedPassword: hash,
		}
	}
	return s, nil
}

// Login checks the credentials and returns the matching user. Unknown emails
// still burn a hash comparison so both failure paths take similar time.
func (s *Service) Login(_ context.Context, email, password string) (*User, error) {
	log := s.logger.With("context", "Login", "email", email)

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Warn("login failed", "error", ErrUnauthorized)
		return nil, ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, u.hashedPassword) {
		log.Warn("login failed", "error", ErrUnauthorized)
		return nil, ErrUnauthorized
	}
	log.Info("login successful", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// GenerateToken signs a JWT for the user carrying their id, email and role.
func (s *Service) GenerateToken(_ context.Context, u *User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["role"] = string(u.Role)
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("token signing failed", "user_id", u.ID, "error", err)
		return "", err
	}
	return signed, nil
}

// CurrentUserID extracts the authenticated user's id from a verified token.
func CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

// RoleFromToken extracts the role claim from a verified token.
func RoleFromToken(token *jwt.Token) (Role, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthorized
	}
	raw, ok := claims["role"].(string)
	if !ok {
		return "", ErrUnauthorized
	}
	return Role(raw), nil
}
