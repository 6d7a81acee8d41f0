// PDF report handler.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/report"
)

// DownloadPDF assembles the employee's current state (profile, last
// prediction of this session, tasks) into a PDF and streams it as an
// attachment. A missing prediction is fine; the report simply omits the
// gauges.
//
// POST /download_pdf
func (h *Handlers) DownloadPDF(c *gin.Context) {
	id, ok := h.currentEmployee(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	emp, err := h.profileSvc.Get(ctx, id)
	if err != nil {
		serviceFailure(c, err, "/employee/dashboard", "Save your profile before downloading a report.")
		return
	}

	var results *ml.Prediction
	if res, ok := auth.LastPrediction(c); ok {
		results = &res
	}

	// The renderer only inspects description and status.
	list, err := h.taskSvc.List(ctx, id)
	if err != nil {
		serviceFailure(c, err, "/employee/dashboard", "Report generation failed. Try again.")
		return
	}
	tasks := make([]domain.Task, 0, len(list.Tasks))
	for _, t := range list.Tasks {
		tasks = append(tasks, domain.Task{
			EmployeeID:  id,
			Description: t.Description,
			Status:      t.Status,
		})
	}

	pdf, err := report.Render(report.Data{
		EmployeeID: id,
		Profile:    *emp,
		Results:    results,
		Tasks:      tasks,
	})
	if err != nil {
		serviceFailure(c, err, "/employee/dashboard", "Report generation failed. Try again.")
		return
	}

	filename := report.Filename(id, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
