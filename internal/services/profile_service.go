// Package services – ProfileService
//
// This file implements the ProfileService, which owns the employee profile
// lifecycle: the dashboard read path (creating the row with defaults on
// first visit), the save path (merge-update, spreadsheet mirroring, and the
// prediction run), and assembly of the typed view the dashboard template
// renders. The spreadsheet mirror is best-effort: failures are logged by the
// caller and never fail the save.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/features"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/repo"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/xlsx"
)

// Predictor is the inference capability ProfileService depends on. The
// fitted ml.Pipeline satisfies it.
type Predictor interface {
	Predict(vec [features.Dim]float64) ml.Prediction
}

// ProfileService coordinates profile reads, saves, and predictions.
type ProfileService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Pipeline produces the two predictions on every save.
	Pipeline Predictor
	// Mirror receives a spreadsheet row per save; may be nil to disable.
	Mirror xlsx.Mirror

	// MirrorErr is invoked with mirror failures so the transport layer can
	// log them; the save itself never fails on the mirror.
	MirrorErr func(error)
}

// ProfileForm carries the validated profile-save fields.
type ProfileForm struct {
	Name         string
	Age          int
	Income       int
	Satisfaction int
	OverTime     string
	Involvement  int
	Feedback     string
}

// Dashboard returns the employee row for id, creating it with defaults on
// first visit.
func (s *ProfileService) Dashboard(ctx context.Context, id string) (*domain.Employee, error) {
	return repo.EnsureEmployee(ctx, s.DB, id)
}

// Save validates the form, merge-updates the profile, mirrors the row to the
// spreadsheet, and returns fresh predictions for the saved fields.
func (s *ProfileService) Save(ctx context.Context, id string, form ProfileForm) (ml.Prediction, error) {
	var zero ml.Prediction

	if form.Satisfaction < 1 || form.Satisfaction > 4 {
		return zero, Validation("Job satisfaction must be between 1 and 4.")
	}
	if form.Involvement < 1 || form.Involvement > 4 {
		return zero, Validation("Job involvement must be between 1 and 4.")
	}
	if form.OverTime != "Yes" && form.OverTime != "No" {
		return zero, Validation("Overtime must be Yes or No.")
	}
	if form.Age <= 0 || form.Income <= 0 {
		return zero, Validation("Age and income must be positive numbers.")
	}

	err := repo.UpdateProfile(ctx, s.DB, id, repo.ProfileUpdate{
		Name:         form.Name,
		Age:          form.Age,
		Income:       form.Income,
		Satisfaction: form.Satisfaction,
		OverTime:     form.OverTime,
		Involvement:  form.Involvement,
		Feedback:     form.Feedback,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return zero, ErrEmployeeNotFound
	}
	if err != nil {
		return zero, err
	}

	// The leave counter is never part of the form; read it back for the
	// mirror row.
	emp, err := repo.GetEmployee(ctx, s.DB, id)
	if err != nil {
		return zero, err
	}

	if s.Mirror != nil {
		if merr := s.Mirror.AppendEmployee(xlsx.EmployeeRow{
			EmpID:       id,
			Name:        form.Name,
			Age:         form.Age,
			Income:      form.Income,
			Sat:         form.Satisfaction,
			OverTime:    form.OverTime,
			Involve:     form.Involvement,
			Feedback:    form.Feedback,
			LeavesTaken: emp.LeavesTaken,
			TS:          time.Now().UTC(),
		}); merr != nil && s.MirrorErr != nil {
			s.MirrorErr(merr)
		}
	}

	vec := features.ProfileInput{
		Age:             form.Age,
		MonthlyIncome:   form.Income,
		JobSatisfaction: form.Satisfaction,
		JobInvolvement:  form.Involvement,
		OverTime:        form.OverTime,
		Feedback:        form.Feedback,
	}.Vector()

	return s.Pipeline.Predict(vec), nil
}

// Get returns the employee row without creating it.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := repo.GetEmployee(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrEmployeeNotFound
	}
	return emp, err
}
