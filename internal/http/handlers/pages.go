// Page (GET) handlers.
//
// These render the server-side templates. The welcome page doubles as the
// logout target: every link back to "/" drops the session, which also gives
// applicant visitors a fresh transcript the next time they enter the portal.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/chatbot"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/http/middleware"
)

// Welcome renders the landing page and clears any session state.
//
// GET /
func (h *Handlers) Welcome(c *gin.Context) {
	_ = auth.Logout(c)
	c.HTML(http.StatusOK, "welcome.html.tmpl", gin.H{})
}

// LoginPage renders the employee login form.
//
// GET /employee_login_page
func (h *Handlers) LoginPage(c *gin.Context) {
	msg, class := takeFlash(c)
	c.HTML(http.StatusOK, "login.html.tmpl", gin.H{
		"Flash":      msg,
		"FlashClass": class,
	})
}

// ForgotPasswordPage renders the password-recovery form.
//
// GET /forgot_password
func (h *Handlers) ForgotPasswordPage(c *gin.Context) {
	msg, class := takeFlash(c)
	c.HTML(http.StatusOK, "forgot_password.html.tmpl", gin.H{
		"Flash":      msg,
		"FlashClass": class,
	})
}

// SetPasswordPage renders the set-password form for the employee bound to
// the recovery flow. Visitors who skipped the recovery step are sent back.
//
// GET /set_password_page
func (h *Handlers) SetPasswordPage(c *gin.Context) {
	id, ok := auth.Pending(c)
	if !ok {
		flashAndRedirect(c, "/forgot_password", "Start with your Employee ID.")
		return
	}
	msg, class := takeFlash(c)
	c.HTML(http.StatusOK, "set_password.html.tmpl", gin.H{
		"EmployeeID": id,
		"Flash":      msg,
		"FlashClass": class,
	})
}

// ApplicantEntry starts a fresh applicant visit: it mints a new synthetic
// session id (so every entry from the welcome page begins with an empty
// transcript) and forwards to the portal.
//
// GET /applicant
func (h *Handlers) ApplicantEntry(c *gin.Context) {
	if _, err := auth.NewApplicantSession(c); err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("applicant session")
	}
	redirect(c, "/applicant/portal")
}

// ApplicantPortal renders the applicant page: application form, the job-role
// list, and the applicant chat transcript. Direct visits without a session
// get one minted, so the page never depends on arriving via /applicant.
//
// GET /applicant/portal
func (h *Handlers) ApplicantPortal(c *gin.Context) {
	ownerID, err := auth.EnsureApplicantSession(c)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("applicant session")
	}

	chat, err := h.chatSvc.History(c.Request.Context(), ownerID)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("applicant history")
		chat = nil
	}

	msg, class := takeFlash(c)
	c.HTML(http.StatusOK, "applicant.html.tmpl", gin.H{
		"Flash":      msg,
		"FlashClass": class,
		"JobRoles":   domain.JobRoles,
		"Chat":       chat,
		"Greeting":   chatbot.Greeting,
	})
}
