package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/save_profile", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestFormInt(t *testing.T) {
	c := formContext(t, url.Values{
		"age":        {"34"},
		"income":     {"-500"},
		"sat":        {"high"},
		"experience": {""},
	})

	if got := formInt(c, "age", 0); got != 34 {
		t.Fatalf("age = %d; want 34", got)
	}
	// Negative values parse; range checks belong to the services.
	if got := formInt(c, "income", 0); got != -500 {
		t.Fatalf("income = %d; want -500", got)
	}
	// Garbage, blank, and absent fields all take the fallback.
	if got := formInt(c, "sat", 2); got != 2 {
		t.Fatalf("sat = %d; want fallback 2", got)
	}
	if got := formInt(c, "experience", -1); got != -1 {
		t.Fatalf("experience = %d; want fallback -1", got)
	}
	if got := formInt(c, "missing", 7); got != 7 {
		t.Fatalf("missing = %d; want fallback 7", got)
	}
}

func TestFlashClass(t *testing.T) {
	dangers := []string{
		"Invalid credentials. Try again.",
		"Saving the profile failed. Try again.",
		"Job satisfaction must be between 1 and 4.",
		"Both fields are required.",
		"Please log in first.",
		"Start with your Employee ID.",
	}
	for _, msg := range dangers {
		if got := flashClass(msg); got != "danger" {
			t.Fatalf("flashClass(%q) = %q; want danger", msg, got)
		}
	}

	successes := []string{
		"Profile saved. Predictions updated.",
		"Task added.",
		"Application submitted successfully!",
	}
	for _, msg := range successes {
		if got := flashClass(msg); got != "success" {
			t.Fatalf("flashClass(%q) = %q; want success", msg, got)
		}
	}
}
