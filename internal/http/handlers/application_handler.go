// Job application handler.
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/services"
)

// SubmitApplication records a job application and mirrors it to the
// workbook. The applicant keeps their session so the portal transcript
// survives the redirect.
//
// POST /submit_application
func (h *Handlers) SubmitApplication(c *gin.Context) {
	_, _ = auth.EnsureApplicantSession(c)

	form := services.ApplicationForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Designation: strings.TrimSpace(c.PostForm("designation")),
		Experience:  formInt(c, "experience", -1),
		Role:        strings.TrimSpace(c.PostForm("role")),
	}

	if err := h.appSvc.Submit(c.Request.Context(), form); err != nil {
		serviceFailure(c, err, "/applicant/portal", "Submitting the application failed. Try again.")
		return
	}
	flashAndRedirect(c, "/applicant/portal", "Application submitted successfully!")
}
