// Package auth – browser session state.
//
// Sessions are cookie-backed (gin-contrib/sessions) and carry four kinds of
// state:
//
//   - the authenticated employee id,
//   - a pending employee id bound to the password-set flow,
//   - the last prediction result (ephemeral, overwritten per profile save,
//     gone when the session ends),
//   - one-shot flash messages consumed on the next page render.
//
// Applicant visitors get a synthetic owner id ("applicant_<unix-nano>") in
// the same cookie, keeping transcript ownership ids globally unique across
// real employees and applicant sessions.
package auth

import (
	"encoding/gob"
	"fmt"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
)

// SessionName is the cookie name used by the session store.
const SessionName = "hr_session"

const (
	keyEmployeeID = "emp_id"
	keyPendingID  = "pending_emp_id"
	keyPrediction = "results"
	keyFlash      = "flash"
)

func init() {
	// Prediction results are stored in the session cookie between the
	// profile save and the next dashboard render.
	gob.Register(ml.Prediction{})
}

// Authenticate clears any prior session state and establishes an
// authenticated session scoped to the employee id.
func Authenticate(c *gin.Context, employeeID string) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(keyEmployeeID, employeeID)
	return s.Save()
}

// CurrentEmployee returns the authenticated employee id, if any.
func CurrentEmployee(c *gin.Context) (string, bool) {
	if v, ok := sessions.Default(c).Get(keyEmployeeID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// Logout drops the whole session.
func Logout(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// BindPending records the employee id the password-set flow is bound to for
// the remainder of the browser session.
func BindPending(c *gin.Context, employeeID string) error {
	s := sessions.Default(c)
	s.Set(keyPendingID, employeeID)
	return s.Save()
}

// Pending returns the employee id bound to the password-set flow, if any.
func Pending(c *gin.Context) (string, bool) {
	if v, ok := sessions.Default(c).Get(keyPendingID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// StashPrediction stores the latest prediction result in the session,
// overwriting any previous one.
func StashPrediction(c *gin.Context, p ml.Prediction) error {
	s := sessions.Default(c)
	s.Set(keyPrediction, p)
	return s.Save()
}

// LastPrediction returns the session-scoped prediction result, if present.
func LastPrediction(c *gin.Context) (ml.Prediction, bool) {
	if v, ok := sessions.Default(c).Get(keyPrediction).(ml.Prediction); ok {
		return v, true
	}
	return ml.Prediction{}, false
}

// Flash queues a one-shot message for the next page render.
func Flash(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg)
	return s.Save()
}

// TakeFlash pops the oldest queued flash message, if any.
func TakeFlash(c *gin.Context) (string, bool) {
	s := sessions.Default(c)
	fl := s.Flashes()
	if len(fl) == 0 {
		return "", false
	}
	_ = s.Save() // persist the consumption
	if msg, ok := fl[0].(string); ok {
		return msg, true
	}
	return "", false
}

// NewApplicantSession mints a fresh synthetic applicant owner id and binds
// it to the browser session, replacing whatever was there. The id shares the
// employee-id namespace, so uniqueness matters: unix nanoseconds keep
// collisions out of reach for a single process.
func NewApplicantSession(c *gin.Context) (string, error) {
	s := sessions.Default(c)
	s.Clear()
	id := fmt.Sprintf("applicant_%d", time.Now().UnixNano())
	s.Set(keyEmployeeID, id)
	return id, s.Save()
}

// EnsureApplicantSession returns the current applicant owner id, minting a
// fresh one when the visitor has none yet (direct portal visits).
func EnsureApplicantSession(c *gin.Context) (string, error) {
	s := sessions.Default(c)
	if v, ok := s.Get(keyEmployeeID).(string); ok && v != "" {
		return v, nil
	}
	return NewApplicantSession(c)
}
