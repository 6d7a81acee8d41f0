// Package repo – job application repository. Applications are append-only.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
)

// CreateApplication inserts a new job application row.
func CreateApplication(ctx context.Context, db *gorm.DB, name, designation string, experience int, role string) (*domain.Application, error) {
	a := &domain.Application{
		Name:        name,
		Designation: designation,
		Experience:  experience,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}
