// Task tracker handlers.
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AddTask appends a pending task for the logged-in employee.
//
// POST /add_task
func (h *Handlers) AddTask(c *gin.Context) {
	id, ok := h.currentEmployee(c)
	if !ok {
		return
	}

	description := strings.TrimSpace(c.PostForm("task"))
	if err := h.taskSvc.Add(c.Request.Context(), id, description); err != nil {
		serviceFailure(c, err, "/employee/dashboard", "Adding the task failed. Try again.")
		return
	}
	flashAndRedirect(c, "/employee/dashboard", "Task added.")
}

// CompleteTask marks the oldest matching pending task as done. Completing a
// task that is already done (double submit, stale tab) is a quiet no-op.
//
// POST /complete_task
func (h *Handlers) CompleteTask(c *gin.Context) {
	id, ok := h.currentEmployee(c)
	if !ok {
		return
	}

	description := strings.TrimSpace(c.PostForm("task"))
	if err := h.taskSvc.Complete(c.Request.Context(), id, description); err != nil {
		serviceFailure(c, err, "/employee/dashboard", "Completing the task failed. Try again.")
		return
	}
	redirect(c, "/employee/dashboard")
}
