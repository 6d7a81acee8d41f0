// Package chatbot implements the two rule-based responders: one for logged-in
// employees and one for applicants. Both are pure functions over lower-cased
// input substrings; the first matching rule wins and a fixed fallback applies
// when nothing matches. Responders hold no state; conversation persistence
// happens in the caller.
package chatbot

import (
	"fmt"
	"strings"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
)

// LeaveAllowance is the annual leave budget the employee responder reports
// against.
const LeaveAllowance = 30

// rule maps trigger substrings to a canned reply. Triggers are matched
// against the lower-cased trimmed input, in order.
type rule struct {
	triggers []string
	reply    func() string
}

// EmployeeReply answers an employee message. The reply may reference the
// employee's name and leave counter; everything else is canned.
func EmployeeReply(name string, leavesTaken int, message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	rules := []rule{
		{[]string{"hi", "hello", "hey"}, func() string {
			return fmt.Sprintf("Hello %s. How may I assist you today?", name)
		}},
		{[]string{"leave"}, func() string {
			return fmt.Sprintf("You have used %d leaves. Remaining: %d out of %d.",
				leavesTaken, LeaveAllowance-leavesTaken, LeaveAllowance)
		}},
		{[]string{"salary", "pay"}, func() string {
			return "Salary is credited on the 1st of every month. Check HR portal for payslip."
		}},
		{[]string{"promotion"}, func() string {
			return "Promotions are based on performance and tenure."
		}},
		{[]string{"task"}, func() string {
			return "Manage tasks in the Task Tracker section."
		}},
		{[]string{"report"}, func() string {
			return "Click 'Download Full PDF Report' after predictions."
		}},
	}

	for _, r := range rules {
		for _, t := range r.triggers {
			if strings.Contains(msg, t) {
				return r.reply()
			}
		}
	}
	return "Ask about leaves, salary, tasks, or reports."
}

// ApplicantReply answers an applicant message with the fixed menu of roles,
// vacancies, and guidelines.
func ApplicantReply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case strings.Contains(msg, "job"):
		return "Available Roles:\n• " + strings.Join(domain.JobRoles, "\n• ")
	case strings.Contains(msg, "vacanc"):
		return "Openings: 3+ roles."
	case strings.Contains(msg, "guide"):
		return "Guidelines:\n• 30 days leave\n• Hybrid work"
	default:
		return "Choose: Job roles, Vacancies, Guidelines."
	}
}

// Greeting is the first bot message shown on an empty applicant transcript.
const Greeting = "Hello! Welcome to HR Service Chatbot."
