package services

import (
	"context"
	"testing"
)

func TestTaskService_Add_Validation(t *testing.T) {
	svc := &TaskService{DB: newServiceDB(t)}
	for _, desc := range []string{"", "   ", "\t\n"} {
		err := svc.Add(context.Background(), "E100", desc)
		if !IsValidation(err) {
			t.Fatalf("Add(%q): expected validation error, got %v", desc, err)
		}
		if err.Error() != "Task description must not be empty." {
			t.Fatalf("message = %q", err.Error())
		}
	}
}

func TestTaskService_AddCompleteList(t *testing.T) {
	svc := &TaskService{DB: newServiceDB(t)}
	ctx := context.Background()

	if err := svc.Add(ctx, "E100", "  review budget  "); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Add(ctx, "E100", "write summary"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := svc.List(ctx, "E100")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Tasks) != 2 || list.Pending != 2 || list.Done != 0 {
		t.Fatalf("unexpected list: %+v", list)
	}
	// The description is stored trimmed.
	if list.Tasks[0].Description != "review budget" {
		t.Fatalf("description not trimmed: %q", list.Tasks[0].Description)
	}

	if err := svc.Complete(ctx, "E100", "review budget"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	list, _ = svc.List(ctx, "E100")
	if list.Done != 1 || list.Pending != 1 {
		t.Fatalf("split after completion: %+v", list)
	}
	if !list.Tasks[0].Done || list.Tasks[1].Done {
		t.Fatalf("Done flags wrong: %+v", list.Tasks)
	}
}

func TestTaskService_Complete_UnknownIsNoOp(t *testing.T) {
	svc := &TaskService{DB: newServiceDB(t)}
	if err := svc.Complete(context.Background(), "E100", "never created"); err != nil {
		t.Fatalf("completing an unknown task must not error: %v", err)
	}
}

func TestTaskService_List_EmptyIsNotNil(t *testing.T) {
	svc := &TaskService{DB: newServiceDB(t)}
	list, err := svc.List(context.Background(), "E100")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Tasks == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(list.Tasks) != 0 || list.Done != 0 || list.Pending != 0 {
		t.Fatalf("unexpected state: %+v", list)
	}
}
