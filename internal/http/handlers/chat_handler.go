// Chatbot handlers for both audiences.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/http/middleware"
)

// Chat handles one employee chat turn and returns to the dashboard, where
// the refreshed transcript is rendered.
//
// POST /chat
func (h *Handlers) Chat(c *gin.Context) {
	id, ok := h.currentEmployee(c)
	if !ok {
		return
	}

	if err := h.chatSvc.EmployeeTurn(c.Request.Context(), id, c.PostForm("message")); err != nil {
		serviceFailure(c, err, "/employee/dashboard", "The chatbot is unavailable right now.")
		return
	}
	redirect(c, "/employee/dashboard")
}

// ApplicantChat handles one applicant chat turn and returns to the portal.
//
// POST /applicant_chat
func (h *Handlers) ApplicantChat(c *gin.Context) {
	ownerID, err := auth.EnsureApplicantSession(c)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("applicant session")
		redirect(c, "/applicant/portal")
		return
	}

	if err := h.chatSvc.ApplicantTurn(c.Request.Context(), ownerID, c.PostForm("message")); err != nil {
		serviceFailure(c, err, "/applicant/portal", "The chatbot is unavailable right now.")
		return
	}
	redirect(c, "/applicant/portal")
}
