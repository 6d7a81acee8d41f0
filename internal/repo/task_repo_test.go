package repo

import (
	"context"
	"testing"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
)

func TestCreateAndListTasks_Order(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, d := range []string{"first", "second", "third"} {
		if _, err := CreateTask(ctx, db, "E100", d); err != nil {
			t.Fatalf("CreateTask(%q): %v", d, err)
		}
	}
	// Another employee's task must not leak in.
	if _, err := CreateTask(ctx, db, "E200", "other"); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	tasks, err := ListTasks(ctx, db, "E100")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, want := range []string{"first", "second", "third"} {
		if tasks[i].Description != want || tasks[i].Status != domain.TaskPending {
			t.Fatalf("task %d = %+v; want %q Pending", i, tasks[i], want)
		}
	}
}

func TestCompleteTask_IdempotentAndScoped(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateTask(ctx, db, "E100", "ship report"); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := CreateTask(ctx, db, "E200", "ship report"); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	n, err := CompleteTask(ctx, db, "E100", "ship report")
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row updated, got %d", n)
	}

	// Completing again is a no-op, not an error.
	n, err = CompleteTask(ctx, db, "E100", "ship report")
	if err != nil || n != 0 {
		t.Fatalf("second completion: n=%d err=%v; want 0, nil", n, err)
	}

	// The other employee's identically-named task is untouched.
	others, _ := ListTasks(ctx, db, "E200")
	if len(others) != 1 || others[0].Status != domain.TaskPending {
		t.Fatalf("foreign task affected: %+v", others)
	}
}

func TestCompleteTask_DuplicateDescriptionsAllTransition(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := CreateTask(ctx, db, "E100", "call vendor"); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	n, err := CompleteTask(ctx, db, "E100", "call vendor")
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected both duplicates to transition, got %d", n)
	}

	done, pending, err := TaskStats(ctx, db, "E100")
	if err != nil {
		t.Fatalf("TaskStats: %v", err)
	}
	if done != 2 || pending != 0 {
		t.Fatalf("stats = (%d done, %d pending); want (2, 0)", done, pending)
	}
}

func TestTaskStats_Counts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	done, pending, err := TaskStats(ctx, db, "E100")
	if err != nil || done != 0 || pending != 0 {
		t.Fatalf("empty stats = (%d, %d, %v); want (0, 0, nil)", done, pending, err)
	}

	_, _ = CreateTask(ctx, db, "E100", "a")
	_, _ = CreateTask(ctx, db, "E100", "b")
	_, _ = CreateTask(ctx, db, "E100", "c")
	if _, err := CompleteTask(ctx, db, "E100", "b"); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	done, pending, err = TaskStats(ctx, db, "E100")
	if err != nil {
		t.Fatalf("TaskStats: %v", err)
	}
	if done != 1 || pending != 2 {
		t.Fatalf("stats = (%d done, %d pending); want (1, 2)", done, pending)
	}
}
