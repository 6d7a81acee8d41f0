// Package handlers exposes the browser-facing endpoints of the HR dashboard.
//
// Handlers are transport-thin: they resolve the session, parse form fields,
// call application services, and translate results into redirects with flash
// messages or rendered templates. Every POST follows the
// post-redirect-get pattern so a browser refresh never resubmits a form.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/http/middleware"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/services"
)

//
// Service contracts (context-aware)
//

// ProfileService defines the profile operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProfileService interface {
	// Dashboard returns the profile for id, creating it with defaults on
	// first visit.
	Dashboard(ctx context.Context, id string) (*domain.Employee, error)
	// Save validates and persists a profile and returns fresh predictions.
	Save(ctx context.Context, id string, form services.ProfileForm) (ml.Prediction, error)
	// Get returns the profile without creating it.
	Get(ctx context.Context, id string) (*domain.Employee, error)
}

// TaskService defines the task-tracker operations consumed by HTTP handlers.
type TaskService interface {
	Add(ctx context.Context, employeeID, description string) error
	Complete(ctx context.Context, employeeID, description string) error
	List(ctx context.Context, employeeID string) (services.TaskList, error)
}

// ChatService defines the chatbot operations consumed by HTTP handlers.
type ChatService interface {
	EmployeeTurn(ctx context.Context, employeeID, message string) error
	ApplicantTurn(ctx context.Context, ownerID, message string) error
	History(ctx context.Context, ownerID string) ([]services.ChatMessageView, error)
}

// AuthService defines the credential operations consumed by HTTP handlers.
type AuthService interface {
	Login(ctx context.Context, id, password string) error
	SetPassword(ctx context.Context, id, password, confirm string) error
}

// ApplicationService defines the job-application operations consumed by
// HTTP handlers.
type ApplicationService interface {
	Submit(ctx context.Context, form services.ApplicationForm) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the dashboard. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	profileSvc ProfileService
	taskSvc    TaskService
	chatSvc    ChatService
	authSvc    AuthService
	appSvc     ApplicationService
}

// New constructs a Handlers instance bound to the given services.
func New(profileSvc ProfileService, taskSvc TaskService, chatSvc ChatService, authSvc AuthService, appSvc ApplicationService) *Handlers {
	return &Handlers{
		profileSvc: profileSvc,
		taskSvc:    taskSvc,
		chatSvc:    chatSvc,
		authSvc:    authSvc,
		appSvc:     appSvc,
	}
}

// currentEmployee resolves the authenticated employee id from the session.
// Applicant sessions share the cookie but are not employees; their synthetic
// ids never unlock employee pages.
//
// When no employee is logged in, the caller is redirected to the login page
// with a flash and false is returned; the handler must stop.
func (h *Handlers) currentEmployee(c *gin.Context) (string, bool) {
	id, ok := auth.CurrentEmployee(c)
	if !ok || strings.HasPrefix(id, "applicant_") {
		flashAndRedirect(c, "/employee_login_page", "Please log in first.")
		return "", false
	}
	// Tag the request so access logs carry the employee id.
	c.Set(middleware.EmployeeIDKey, id)
	return id, true
}

// formInt parses a numeric form field, falling back to def for blank or
// malformed input. Services validate ranges; the fallback only has to make
// bad input fail validation rather than the parse.
func formInt(c *gin.Context, field string, def int) int {
	if n, err := strconv.Atoi(c.PostForm(field)); err == nil {
		return n
	}
	return def
}

// flashAndRedirect queues a one-shot message and issues a 303 redirect.
// A broken session store must not turn a form submit into a hard failure,
// so flash errors are swallowed; the redirect still happens.
func flashAndRedirect(c *gin.Context, location, msg string) {
	if msg != "" {
		_ = auth.Flash(c, msg)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// redirect issues a plain 303 redirect without touching the flash queue.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// takeFlash pops the pending flash message and derives the Bootstrap alert
// class for it. Messages are success-green unless they read like a problem.
func takeFlash(c *gin.Context) (msg, class string) {
	msg, ok := auth.TakeFlash(c)
	if !ok {
		return "", ""
	}
	return msg, flashClass(msg)
}

// flashClass maps a flash message to a Bootstrap contextual class.
func flashClass(msg string) string {
	lower := strings.ToLower(msg)
	for _, marker := range []string{"invalid", "failed", "must", "required", "not found", "wrong", "error", "log in", "start with"} {
		if strings.Contains(lower, marker) {
			return "danger"
		}
	}
	return "success"
}

// serviceFailure logs err against the request and sends the user back to
// location with a generic flash. Validation errors surface their own text.
func serviceFailure(c *gin.Context, err error, location, generic string) {
	if services.IsValidation(err) {
		flashAndRedirect(c, location, err.Error())
		return
	}
	middleware.LoggerFrom(c).Error().Err(err).Msg("service call failed")
	flashAndRedirect(c, location, generic)
}
