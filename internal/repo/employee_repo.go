// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Employee
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an employee is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - GetEmployee(ctx, db, id) -> *domain.Employee, error
//     Fetches a single employee row, or ErrNotFound if missing.
//
//   - EnsureEmployee(ctx, db, id) -> *domain.Employee, error
//     Returns the existing row, creating one with dashboard defaults when
//     the id is seen for the first time.
//
//   - UpdateProfile(ctx, db, id, p) -> error
//     Merge-updates the editable profile columns. LeavesTaken and
//     PasswordHash are never part of the update set, so repeated saves
//     preserve both.
//
//   - SetPassword(ctx, db, id, hash) -> error
//     Stores a credential hash, creating the employee row with defaults if
//     it does not exist yet.
package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// Defaults applied when an employee row is created implicitly (first
// dashboard visit or first password set).
const (
	defaultName         = "Employee %s"
	defaultAge          = 30
	defaultIncome       = 50000
	defaultSatisfaction = 3
	defaultInvolvement  = 3
	defaultOverTime     = "No"
)

// ProfileUpdate carries the editable profile columns for UpdateProfile.
// LeavesTaken and PasswordHash are deliberately absent: the merge update
// must never clobber them.
type ProfileUpdate struct {
	Name         string
	Age          int
	Income       int
	Satisfaction int
	OverTime     string
	Involvement  int
	Feedback     string
}

// GetEmployee fetches a single employee by id, or ErrNotFound if missing.
func GetEmployee(ctx context.Context, db *gorm.DB, id string) (*domain.Employee, error) {
	var e domain.Employee
	if err := db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// EnsureEmployee returns the employee row for id, creating it with the
// dashboard defaults when no row exists yet. The created row has no
// credential hash.
func EnsureEmployee(ctx context.Context, db *gorm.DB, id string) (*domain.Employee, error) {
	e, err := GetEmployee(ctx, db, id)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	created := &domain.Employee{
		ID:           id,
		Name:         fmt.Sprintf(defaultName, id),
		Age:          defaultAge,
		Income:       defaultIncome,
		Satisfaction: defaultSatisfaction,
		OverTime:     defaultOverTime,
		Involvement:  defaultInvolvement,
	}
	if err := db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateProfile merge-updates the editable profile columns for id. The
// update set is restricted to the profile fields, so LeavesTaken and
// PasswordHash survive every save. Returns ErrNotFound when the employee
// does not exist.
func UpdateProfile(ctx context.Context, db *gorm.DB, id string, p ProfileUpdate) error {
	res := db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":         p.Name,
			"age":          p.Age,
			"income":       p.Income,
			"satisfaction": p.Satisfaction,
			"over_time":    p.OverTime,
			"involvement":  p.Involvement,
			"feedback":     p.Feedback,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPassword stores the credential hash for id. When the employee row does
// not exist yet it is created with the dashboard defaults, mirroring the
// first-login flow.
func SetPassword(ctx context.Context, db *gorm.DB, id, hash string) error {
	if _, err := EnsureEmployee(ctx, db, id); err != nil {
		return err
	}
	return db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}
