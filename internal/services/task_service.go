// Package services – TaskService
//
// Task rules are small: descriptions must be non-blank, new tasks start
// Pending, and completion is a one-way transition matched by exact
// description text. Completing an already-Done task is a no-op, which makes
// the operation idempotent.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/repo"
)

// TaskView is the typed row the dashboard template renders.
type TaskView struct {
	Description string
	Status      string
	Done        bool
}

// TaskList is the task panel state: rows plus the completion split.
type TaskList struct {
	Tasks   []TaskView
	Done    int64
	Pending int64
}

// TaskService owns task creation, completion, and listing.
type TaskService struct {
	DB *gorm.DB
}

// Add creates a new Pending task for the employee.
func (s *TaskService) Add(ctx context.Context, employeeID, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return Validation("Task description must not be empty.")
	}
	_, err := repo.CreateTask(ctx, s.DB, employeeID, description)
	return err
}

// Complete marks matching Pending tasks Done. Unknown descriptions and
// already-Done tasks are not errors.
func (s *TaskService) Complete(ctx context.Context, employeeID, description string) error {
	_, err := repo.CompleteTask(ctx, s.DB, employeeID, strings.TrimSpace(description))
	return err
}

// List returns the task panel state for the employee.
func (s *TaskService) List(ctx context.Context, employeeID string) (TaskList, error) {
	tasks, err := repo.ListTasks(ctx, s.DB, employeeID)
	if err != nil {
		return TaskList{}, err
	}
	out := TaskList{Tasks: make([]TaskView, 0, len(tasks))}
	for _, t := range tasks {
		done := t.Status == domain.TaskDone
		if done {
			out.Done++
		} else {
			out.Pending++
		}
		out.Tasks = append(out.Tasks, TaskView{
			Description: t.Description,
			Status:      t.Status,
			Done:        done,
		})
	}
	return out, nil
}
