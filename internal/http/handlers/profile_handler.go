// Dashboard and profile handlers.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/http/middleware"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/services"
)

// Dashboard renders the main employee page: profile form, session-scoped
// prediction results, task tracker, and chat transcript. The profile row is
// created with defaults on the first visit.
//
// GET /employee/dashboard
func (h *Handlers) Dashboard(c *gin.Context) {
	id, ok := h.currentEmployee(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	emp, err := h.profileSvc.Dashboard(ctx, id)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("dashboard profile")
		flashAndRedirect(c, "/", "Something went wrong. Please log in again.")
		return
	}

	tasks, err := h.taskSvc.List(ctx, id)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("dashboard tasks")
		tasks = services.TaskList{}
	}

	chat, err := h.chatSvc.History(ctx, id)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("dashboard chat")
		chat = nil
	}

	data := gin.H{
		"EmployeeID": id,
		"Profile":    emp,
		"Tasks":      tasks,
		"Chat":       chat,
	}
	if msg, class := takeFlash(c); msg != "" {
		data["Flash"], data["FlashClass"] = msg, class
	}
	if res, ok := auth.LastPrediction(c); ok {
		data["Results"] = &res
		data["AttritionClass"] = strings.ToLower(ml.RiskBand(res.AttritionProb))
		data["PromotionClass"] = strings.ToLower(ml.RiskBand(res.PromotionProb))
		data["AttritionPct"] = res.AttritionProb * 100
		data["PromotionPct"] = res.PromotionProb * 100
	}

	c.HTML(http.StatusOK, "dashboard.html.tmpl", data)
}

// SaveProfile persists the submitted profile, mirrors it to the workbook,
// runs both predictions, and stashes the result in the session for the next
// dashboard render.
//
// POST /save_profile
func (h *Handlers) SaveProfile(c *gin.Context) {
	id, ok := h.currentEmployee(c)
	if !ok {
		return
	}

	form := services.ProfileForm{
		Name:         strings.TrimSpace(c.PostForm("name")),
		Age:          formInt(c, "age", 0),
		Income:       formInt(c, "income", 0),
		Satisfaction: formInt(c, "sat", 0),
		OverTime:     c.PostForm("overtime"),
		Involvement:  formInt(c, "involve", 0),
		Feedback:     strings.TrimSpace(c.PostForm("feedback")),
	}

	pred, err := h.profileSvc.Save(c.Request.Context(), id, form)
	if err != nil {
		serviceFailure(c, err, "/employee/dashboard", "Saving the profile failed. Try again.")
		return
	}

	if serr := auth.StashPrediction(c, pred); serr != nil {
		middleware.LoggerFrom(c).Error().Err(serr).Msg("session save")
	}
	flashAndRedirect(c, "/employee/dashboard", "Profile saved. Predictions updated.")
}
