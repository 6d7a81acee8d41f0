package chatbot

import (
	"strings"
	"testing"
)

func TestEmployeeReply_Greeting(t *testing.T) {
	got := EmployeeReply("Ananya", 0, "  Hello there ")
	if !strings.Contains(got, "Ananya") {
		t.Fatalf("greeting should address the employee by name, got %q", got)
	}
}

func TestEmployeeReply_LeaveBalance(t *testing.T) {
	got := EmployeeReply("Ravi", 12, "how many leaves do I have left?")
	if !strings.Contains(got, "12") || !strings.Contains(got, "18") || !strings.Contains(got, "30") {
		t.Fatalf("leave reply should show used/remaining/total, got %q", got)
	}
}

func TestEmployeeReply_TriggerPriority(t *testing.T) {
	// Greeting rules are checked first even when later triggers also match.
	got := EmployeeReply("Mira", 3, "hi, question about my leave")
	if !strings.Contains(got, "Mira") {
		t.Fatalf("greeting should win over the leave rule, got %q", got)
	}
}

func TestEmployeeReply_CannedTopics(t *testing.T) {
	cases := map[string]string{
		"when is my salary credited": "credited on the 1st",
		"any update on my promotion": "performance and tenure",
		"where do I see my tasks":    "Task Tracker",
		"need the pdf report":        "Download Full PDF Report",
	}
	for msg, want := range cases {
		if got := EmployeeReply("X", 0, msg); !strings.Contains(got, want) {
			t.Fatalf("EmployeeReply(%q) = %q; want substring %q", msg, got, want)
		}
	}
}

func TestEmployeeReply_Fallback(t *testing.T) {
	got := EmployeeReply("X", 0, "what's the wifi password")
	if got != "Ask about leaves, salary, tasks, or reports." {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestApplicantReply_Menu(t *testing.T) {
	if got := ApplicantReply("tell me about job roles"); !strings.Contains(got, "Software Engineer") {
		t.Fatalf("job roles reply should list roles, got %q", got)
	}
	if got := ApplicantReply("current vacancies?"); !strings.Contains(got, "Openings") {
		t.Fatalf("vacancy reply unexpected: %q", got)
	}
	if got := ApplicantReply("any guidelines"); !strings.Contains(got, "30 days leave") {
		t.Fatalf("guidelines reply unexpected: %q", got)
	}
	if got := ApplicantReply("hello?"); got != "Choose: Job roles, Vacancies, Guidelines." {
		t.Fatalf("unexpected fallback: %q", got)
	}
}
