// Package repo – task repository.
//
// Functions:
//
//   - CreateTask(ctx, db, employeeID, description) -> *domain.Task, error
//     Inserts a new task with status Pending and UTC timestamp.
//
//   - ListTasks(ctx, db, employeeID) -> []domain.Task, error
//     Returns all tasks for an employee, ordered by creation time ascending.
//
//   - CompleteTask(ctx, db, employeeID, description) -> (int64, error)
//     Marks matching Pending tasks as Done; returns the number of rows
//     updated. The status filter makes the call idempotent: completing an
//     already-Done task updates nothing and is not an error.
//
//   - TaskStats(ctx, db, employeeID) -> (done, pending int64, err error)
//     Returns counts used by the completion chart.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
)

// CreateTask inserts a new Pending task owned by employeeID.
func CreateTask(ctx context.Context, db *gorm.DB, employeeID, description string) (*domain.Task, error) {
	t := &domain.Task{
		EmployeeID:  employeeID,
		Description: description,
		Status:      domain.TaskPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ListTasks returns all tasks for employeeID in creation order (oldest first),
// matching the order the dashboard displays them in.
func ListTasks(ctx context.Context, db *gorm.DB, employeeID string) ([]domain.Task, error) {
	var out []domain.Task
	err := db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at asc, id asc").
		Find(&out).Error
	return out, err
}

// CompleteTask transitions Pending tasks matching (employeeID, description)
// to Done. Duplicate descriptions all transition in one statement. Returns
// the number of rows updated; zero is not an error so the operation stays
// idempotent.
func CompleteTask(ctx context.Context, db *gorm.DB, employeeID, description string) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("employee_id = ? AND description = ? AND status = ?", employeeID, description, domain.TaskPending).
		Update("status", domain.TaskDone)
	return res.RowsAffected, res.Error
}

// TaskStats returns the Done and Pending counts for employeeID.
func TaskStats(ctx context.Context, db *gorm.DB, employeeID string) (done, pending int64, err error) {
	q := db.WithContext(ctx).Model(&domain.Task{}).Where("employee_id = ?", employeeID)
	if err = q.Session(&gorm.Session{}).Where("status = ?", domain.TaskDone).Count(&done).Error; err != nil {
		return 0, 0, err
	}
	if err = q.Session(&gorm.Session{}).Where("status = ?", domain.TaskPending).Count(&pending).Error; err != nil {
		return 0, 0, err
	}
	return done, pending, nil
}
