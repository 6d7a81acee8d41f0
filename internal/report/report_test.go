package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
)

func sampleData() Data {
	return Data{
		EmployeeID: "E100",
		Profile: domain.Employee{
			ID: "E100", Name: "ananya rao", Age: 29, Income: 80000,
			Satisfaction: 3, OverTime: "No", Involvement: 4,
			Feedback: "happy with the team",
		},
		Results: &ml.Prediction{
			AttritionLabel: "No", AttritionProb: 0.21,
			PromotionLabel: "Yes", PromotionProb: 0.63,
		},
		Tasks: []domain.Task{
			{EmployeeID: "E100", Description: "review budget", Status: domain.TaskDone},
			{EmployeeID: "E100", Description: "write summary", Status: domain.TaskPending},
		},
	}
}

func TestRender_FullReport(t *testing.T) {
	out, err := Render(sampleData())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF (starts %q)", out[:min(8, len(out))])
	}
	// Two gauges and the pie chart make the full document noticeably larger
	// than a bare text page.
	if len(out) < 5000 {
		t.Fatalf("document suspiciously small: %d bytes", len(out))
	}
}

func TestRender_WithoutResultsOrTasks(t *testing.T) {
	d := sampleData()
	d.Results = nil
	d.Tasks = nil
	out, err := Render(d)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRender_LongTaskListAndFeedback(t *testing.T) {
	d := sampleData()
	d.Profile.Feedback = string(bytes.Repeat([]byte("x"), 500))
	d.Tasks = nil
	for i := 0; i < 25; i++ {
		d.Tasks = append(d.Tasks, domain.Task{
			EmployeeID: "E100", Description: "task", Status: domain.TaskPending,
		})
	}
	if _, err := Render(d); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if got := Filename("E100", now); got != "HR_Report_E100_20260830.pdf" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate(short) = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcde..." {
		t.Fatalf("truncate clipped = %q", got)
	}
	// Rune-aware: multibyte input must not be cut mid-character.
	if got := truncate("ααααα", 3); got != "ααα..." {
		t.Fatalf("truncate runes = %q", got)
	}
}
