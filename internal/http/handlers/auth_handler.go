// Authentication (POST) handlers: login, recovery, and first-login
// password setup.
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/http/middleware"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/services"
)

// EmployeeLogin verifies credentials and opens an employee session.
//
// First-time visitors (unknown id, or known id without a stored password)
// are routed into the set-password flow instead of being rejected; the
// workforce is onboarded lazily, so any employee id that shows up here is
// treated as a new account.
//
// POST /employee_login
func (h *Handlers) EmployeeLogin(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("emp_id"))
	password := c.PostForm("password")

	err := h.authSvc.Login(c.Request.Context(), id, password)
	switch {
	case err == nil:
		if serr := auth.Authenticate(c, id); serr != nil {
			middleware.LoggerFrom(c).Error().Err(serr).Msg("session save")
			flashAndRedirect(c, "/employee_login_page", "Login failed. Try again.")
			return
		}
		c.Set(middleware.EmployeeIDKey, id)
		redirect(c, "/employee/dashboard")

	case errors.Is(err, services.ErrNeedsPasswordSetup):
		_ = auth.BindPending(c, id)
		flashAndRedirect(c, "/set_password_page", "First login detected. Please set your password.")

	case errors.Is(err, services.ErrInvalidCredentials):
		flashAndRedirect(c, "/employee_login_page", "Invalid Employee ID or Password.")

	default:
		serviceFailure(c, err, "/employee_login_page", "Login failed. Try again.")
	}
}

// RecoverPassword binds the recovery flow to an employee id and forwards to
// the set-password form. No identity proof is required; this is an internal
// tool behind the company network.
//
// POST /recover_password
func (h *Handlers) RecoverPassword(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("emp_id"))
	if id == "" {
		flashAndRedirect(c, "/forgot_password", "Employee ID is required.")
		return
	}
	if err := auth.BindPending(c, id); err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("session save")
		flashAndRedirect(c, "/forgot_password", "Recovery failed. Try again.")
		return
	}
	redirect(c, "/set_password_page")
}

// SetPassword stores a new password hash and logs the employee in.
//
// The employee id comes from the form (the page embeds it) with the
// session-bound pending id as fallback, so a stale tab still works.
//
// POST /set_password
func (h *Handlers) SetPassword(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("emp_id"))
	if id == "" {
		id, _ = auth.Pending(c)
	}

	err := h.authSvc.SetPassword(c.Request.Context(), id, c.PostForm("password"), c.PostForm("confirm"))
	if err != nil {
		serviceFailure(c, err, "/set_password_page", "Could not set password. Try again.")
		return
	}

	if serr := auth.Authenticate(c, id); serr != nil {
		middleware.LoggerFrom(c).Error().Err(serr).Msg("session save")
		flashAndRedirect(c, "/employee_login_page", "Password set. Please log in.")
		return
	}
	c.Set(middleware.EmployeeIDKey, id)
	flashAndRedirect(c, "/employee/dashboard", "Password set successfully. Welcome!")
}
