// Package report composes the downloadable PDF summary: a header, the
// profile fields, both predictions with gauge images, and the task list with
// a completion chart. Image failures are swallowed so the document always
// carries the text content, and if even the full document cannot be
// produced, a minimal text-only fallback is returned instead of an error
// reaching the request.
package report

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
)

// Layout constants.
const (
	maxTasksListed = 10
	maxFeedbackLen = 100 // runes, then ellipsis
	gaugeWidthMM   = 60
	gaugeHeightMM  = 45
	taskPieSizeMM  = 70
)

// Data is everything the renderer needs for one report.
type Data struct {
	EmployeeID string
	Profile    domain.Employee
	Results    *ml.Prediction // nil when no prediction was made this session
	Tasks      []domain.Task
}

// Filename returns the attachment name for a report generated now.
func Filename(employeeID string, now time.Time) string {
	return fmt.Sprintf("HR_Report_%s_%s.pdf", employeeID, now.Format("20060102"))
}

var titleCaser = cases.Title(language.English)

// Render produces the PDF bytes. It never fails on image problems; if the
// full document cannot be generated it degrades to a text-only fallback, and
// only when even that fails is an error returned.
func Render(d Data) ([]byte, error) {
	out, err := renderFull(d)
	if err == nil {
		return out, nil
	}
	return renderFallback(d)
}

func renderFull(d Data) ([]byte, error) {
	pdf := newDoc()
	pdf.AddPage()

	// Employee info
	pdf.SetFont("Arial", "B", 14)
	cell(pdf, 10, "Employee Report")
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	cell(pdf, 8, "Employee Information")
	pdf.SetFont("Arial", "", 11)
	cell(pdf, 7, "ID: "+d.EmployeeID)
	cell(pdf, 7, "Name: "+titleCaser.String(d.Profile.Name))
	cell(pdf, 7, fmt.Sprintf("Age: %d", d.Profile.Age))
	cell(pdf, 7, fmt.Sprintf("Monthly Income: INR %d", d.Profile.Income))
	cell(pdf, 7, fmt.Sprintf("Job Satisfaction: %d/4", d.Profile.Satisfaction))
	cell(pdf, 7, "Overtime: "+d.Profile.OverTime)
	cell(pdf, 7, fmt.Sprintf("Job Involvement: %d/4", d.Profile.Involvement))
	cell(pdf, 7, "Feedback: "+truncate(d.Profile.Feedback, maxFeedbackLen))
	pdf.Ln(5)

	// Predictions
	pdf.SetFont("Arial", "B", 12)
	cell(pdf, 8, "Predictions")
	pdf.SetFont("Arial", "", 11)
	if d.Results != nil {
		r := d.Results
		pdf.CellFormat(90, 8, fmt.Sprintf("Attrition: %s (%.1f%%) - %s",
			r.AttritionLabel, r.AttritionProb*100, ml.RiskBand(r.AttritionProb)), "", 0, "L", false, 0, "")
		embedGauge(pdf, r.AttritionProb)
		pdf.Ln(50)

		pdf.CellFormat(90, 8, fmt.Sprintf("Promotion: %s (%.1f%%)",
			r.PromotionLabel, r.PromotionProb*100), "", 0, "L", false, 0, "")
		embedGauge(pdf, r.PromotionProb)
		pdf.Ln(50)
	} else {
		cell(pdf, 8, "No predictions for this session.")
		pdf.Ln(3)
	}

	// Tasks
	if len(d.Tasks) > 0 {
		pdf.SetFont("Arial", "B", 12)
		cell(pdf, 8, "Task Tracker")
		done, pending := taskCounts(d.Tasks)
		embedTaskPie(pdf, done, pending)
		pdf.SetFont("Arial", "", 10)
		for i, t := range d.Tasks {
			if i == maxTasksListed {
				cell(pdf, 6, fmt.Sprintf("... and %d more", len(d.Tasks)-maxTasksListed))
				break
			}
			cell(pdf, 6, fmt.Sprintf("- %s [%s]", t.Description, t.Status))
		}
	} else {
		cell(pdf, 8, "No tasks recorded.")
	}

	return output(pdf)
}

// renderFallback emits the minimal text-only document used when full
// rendering fails for any reason.
func renderFallback(d Data) ([]byte, error) {
	pdf := newDoc()
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	cell(pdf, 10, "PDF generation failed. Showing text only.")
	cell(pdf, 10, "Employee: "+d.Profile.Name)
	if d.Results != nil {
		cell(pdf, 10, fmt.Sprintf("Attrition: %s (%.1f%%)",
			d.Results.AttritionLabel, d.Results.AttritionProb*100))
	}
	return output(pdf)
}

func newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, "HR Insight Report", "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	return pdf
}

// embedGauge renders and places a gauge image; on any failure the image is
// simply skipped.
func embedGauge(pdf *fpdf.Fpdf, value float64) {
	img, err := gaugePNG(value)
	if err != nil {
		return
	}
	embedPNG(pdf, img, fmt.Sprintf("gauge_%p_%f", pdf, value), gaugeWidthMM, gaugeHeightMM)
}

func embedTaskPie(pdf *fpdf.Fpdf, done, pending int) {
	img, err := taskPiePNG(done, pending)
	if err != nil {
		return
	}
	embedPNG(pdf, img, fmt.Sprintf("pie_%p", pdf), taskPieSizeMM, taskPieSizeMM)
	pdf.Ln(float64(taskPieSizeMM) + 5)
}

func embedPNG(pdf *fpdf.Fpdf, data []byte, name string, w, h float64) {
	// A broken image must not abort the report: validate before handing the
	// bytes to fpdf, whose error state is sticky.
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), w, h, true, opts, 0, "")
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(pdf *fpdf.Fpdf, h float64, text string) {
	pdf.CellFormat(0, h, text, "", 1, "L", false, 0, "")
}

func taskCounts(tasks []domain.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Status == domain.TaskDone {
			done++
		} else {
			pending++
		}
	}
	return
}

// truncate clips s to max runes, appending an ellipsis marker when clipped.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
