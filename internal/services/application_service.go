// Package services – ApplicationService
//
// Handles applicant submissions: field validation against the fixed role
// enumeration, the append-only insert, and the spreadsheet mirror row.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/repo"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/xlsx"
)

// ApplicationService owns job-application submission.
type ApplicationService struct {
	DB     *gorm.DB
	Mirror xlsx.Mirror

	// MirrorErr is invoked with mirror failures; the submit never fails on
	// the mirror.
	MirrorErr func(error)
}

// ApplicationForm carries the applicant portal form fields.
type ApplicationForm struct {
	Name        string
	Designation string
	Experience  int
	Role        string
}

// Submit validates and persists one application, then mirrors it.
func (s *ApplicationService) Submit(ctx context.Context, form ApplicationForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Designation = strings.TrimSpace(form.Designation)
	if form.Name == "" || form.Designation == "" || form.Role == "" {
		return Validation("All fields are required.")
	}
	if form.Experience < 0 {
		return Validation("Experience must not be negative.")
	}
	if !domain.ValidJobRole(form.Role) {
		return Validation("Please choose a role from the list.")
	}

	if _, err := repo.CreateApplication(ctx, s.DB, form.Name, form.Designation, form.Experience, form.Role); err != nil {
		return err
	}

	if s.Mirror != nil {
		if merr := s.Mirror.AppendApplicant(xlsx.ApplicantRow{
			Name:        form.Name,
			Designation: form.Designation,
			Experience:  form.Experience,
			Role:        form.Role,
			TS:          time.Now().UTC(),
		}); merr != nil && s.MirrorErr != nil {
			s.MirrorErr(merr)
		}
	}
	return nil
}
