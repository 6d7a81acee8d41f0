// Package services – AuthService
//
// Login and password management. The flow mirrors the product behavior: an
// unknown id (or a known id without a credential) routes into the
// password-set flow bound to that id; a known id with a wrong password is
// rejected without revealing whether the id exists. Password hashes are
// bcrypt with per-call salts, so verification always re-derives.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/repo"
)

// AuthService owns credential checks and the password-set flow.
type AuthService struct {
	DB *gorm.DB
}

// Login verifies the credential for id.
//
// Returns:
//   - nil: the password matched; the caller establishes the session.
//   - ErrNeedsPasswordSetup: id is unknown or has no credential yet; the
//     caller routes to the password-set flow bound to id.
//   - ErrInvalidCredentials: wrong password.
func (s *AuthService) Login(ctx context.Context, id, password string) error {
	id, password = strings.TrimSpace(id), strings.TrimSpace(password)
	if id == "" || password == "" {
		return Validation("Both fields are required.")
	}

	emp, err := repo.GetEmployee(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNeedsPasswordSetup
	}
	if err != nil {
		return err
	}
	if emp.PasswordHash == nil || *emp.PasswordHash == "" {
		return ErrNeedsPasswordSetup
	}
	if !auth.CheckPassword(password, *emp.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}

// SetPassword validates the two password fields and stores a fresh hash,
// creating the employee row with defaults when needed.
func (s *AuthService) SetPassword(ctx context.Context, id, password, confirm string) error {
	if strings.TrimSpace(id) == "" {
		return Validation("Employee ID is required.")
	}
	if password != confirm {
		return Validation("Passwords do not match.")
	}
	if len(password) < auth.MinPasswordLen {
		return Validation("Password must be at least 4 characters.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return repo.SetPassword(ctx, s.DB, id, hash)
}
