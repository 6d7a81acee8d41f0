// Package features assembles the fixed-order numeric feature vector consumed
// by the prediction pipeline. Assembly is by named field, never by positional
// form parsing: the order of the 14 features is defined exactly once in
// Names, and Vector fills each slot from the corresponding struct field. A
// mismatch between Names and Vector is a silent-corruption risk, so both are
// covered by tests that pin the order.
package features

import "github.com/Neha-N8242/HR-Insight-Dashboard/internal/sentiment"

// Dim is the length of the feature vector the fitted pipeline expects.
const Dim = 14

// Names lists the 14 features in the exact order the pipeline was fitted
// with. Do not reorder.
var Names = [Dim]string{
	"Age", "MonthlyIncome", "JobSatisfaction", "JobInvolvement",
	"YearsAtCompany", "YearsInCurrentRole", "YearsWithCurrManager",
	"TotalWorkingYears", "DistanceFromHome", "WorkLifeBalance",
	"EnvironmentSatisfaction", "FeedbackSentiment",
	"OverTime_Yes", "OverTime_No",
}

// Defaults for fields the profile form never supplies, plus fallbacks for the
// ones it does. Age/income here are the pipeline defaults; the dashboard row
// defaults (age 30, income 50000) live in the repo layer.
const (
	DefaultAge                     = 37
	DefaultMonthlyIncome           = 6500
	DefaultJobSatisfaction         = 3
	DefaultJobInvolvement          = 3
	DefaultYearsAtCompany          = 6
	DefaultYearsInCurrentRole      = 4
	DefaultYearsWithCurrManager    = 4
	DefaultTotalWorkingYears       = 11
	DefaultDistanceFromHome        = 9
	DefaultWorkLifeBalance         = 3
	DefaultEnvironmentSatisfaction = 3
	DefaultOverTime                = "No"
)

// ProfileInput is the sparse set of user-supplied fields. Zero values mean
// "not supplied" and are filled from the default table. OverTime accepts
// "Yes"/"No"; anything else falls back to the default.
type ProfileInput struct {
	Age                     int
	MonthlyIncome           int
	JobSatisfaction         int
	JobInvolvement          int
	OverTime                string
	Feedback                string
	YearsAtCompany          int
	YearsInCurrentRole      int
	YearsWithCurrManager    int
	TotalWorkingYears       int
	DistanceFromHome        int
	WorkLifeBalance         int
	EnvironmentSatisfaction int
}

// withDefaults returns a copy of p with every unsupplied field filled from
// the default table.
func (p ProfileInput) withDefaults() ProfileInput {
	fill := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&p.Age, DefaultAge)
	fill(&p.MonthlyIncome, DefaultMonthlyIncome)
	fill(&p.JobSatisfaction, DefaultJobSatisfaction)
	fill(&p.JobInvolvement, DefaultJobInvolvement)
	fill(&p.YearsAtCompany, DefaultYearsAtCompany)
	fill(&p.YearsInCurrentRole, DefaultYearsInCurrentRole)
	fill(&p.YearsWithCurrManager, DefaultYearsWithCurrManager)
	fill(&p.TotalWorkingYears, DefaultTotalWorkingYears)
	fill(&p.DistanceFromHome, DefaultDistanceFromHome)
	fill(&p.WorkLifeBalance, DefaultWorkLifeBalance)
	fill(&p.EnvironmentSatisfaction, DefaultEnvironmentSatisfaction)
	if p.OverTime != "Yes" && p.OverTime != "No" {
		p.OverTime = DefaultOverTime
	}
	return p
}

// Vector assembles the 14-entry feature vector in the order given by Names.
// Feedback sentiment is derived from the free-text feedback (empty → 0), and
// the overtime flags are a mutually exclusive one-hot pair.
func (p ProfileInput) Vector() [Dim]float64 {
	f := p.withDefaults()

	var overtimeYes, overtimeNo float64
	if f.OverTime == "Yes" {
		overtimeYes = 1
	} else {
		overtimeNo = 1
	}

	return [Dim]float64{
		float64(f.Age),
		float64(f.MonthlyIncome),
		float64(f.JobSatisfaction),
		float64(f.JobInvolvement),
		float64(f.YearsAtCompany),
		float64(f.YearsInCurrentRole),
		float64(f.YearsWithCurrManager),
		float64(f.TotalWorkingYears),
		float64(f.DistanceFromHome),
		float64(f.WorkLifeBalance),
		float64(f.EnvironmentSatisfaction),
		sentiment.Polarity(f.Feedback),
		overtimeYes,
		overtimeNo,
	}
}
