package features

import "testing"

func TestNames_PinnedOrder(t *testing.T) {
	want := [Dim]string{
		"Age", "MonthlyIncome", "JobSatisfaction", "JobInvolvement",
		"YearsAtCompany", "YearsInCurrentRole", "YearsWithCurrManager",
		"TotalWorkingYears", "DistanceFromHome", "WorkLifeBalance",
		"EnvironmentSatisfaction", "FeedbackSentiment",
		"OverTime_Yes", "OverTime_No",
	}
	if Names != want {
		t.Fatalf("feature order changed:\ngot  %v\nwant %v", Names, want)
	}
}

func TestVector_SuppliedFieldsLandInTheirSlots(t *testing.T) {
	v := ProfileInput{
		Age:             45,
		MonthlyIncome:   12000,
		JobSatisfaction: 2,
		JobInvolvement:  4,
		OverTime:        "Yes",
	}.Vector()

	if v[0] != 45 || v[1] != 12000 || v[2] != 2 || v[3] != 4 {
		t.Fatalf("supplied fields misplaced: %v", v)
	}
	// unsupplied fields fall back to the default table
	if v[4] != DefaultYearsAtCompany || v[7] != DefaultTotalWorkingYears {
		t.Fatalf("defaults not applied: %v", v)
	}
}

func TestVector_OvertimeOneHot(t *testing.T) {
	yes := ProfileInput{OverTime: "Yes"}.Vector()
	if yes[12] != 1 || yes[13] != 0 {
		t.Fatalf("OverTime=Yes one-hot wrong: yes=%v no=%v", yes[12], yes[13])
	}
	no := ProfileInput{OverTime: "No"}.Vector()
	if no[12] != 0 || no[13] != 1 {
		t.Fatalf("OverTime=No one-hot wrong: yes=%v no=%v", no[12], no[13])
	}
	// invalid values fall back to the default ("No")
	odd := ProfileInput{OverTime: "sometimes"}.Vector()
	if odd[12] != 0 || odd[13] != 1 {
		t.Fatalf("invalid overtime should default to No: yes=%v no=%v", odd[12], odd[13])
	}
	// exactly one flag is ever set
	for _, v := range [][14]float64{yes, no, odd} {
		if v[12]+v[13] != 1 {
			t.Fatalf("one-hot pair not mutually exclusive: %v", v)
		}
	}
}

func TestVector_FeedbackSentimentSlot(t *testing.T) {
	neutral := ProfileInput{}.Vector()
	if neutral[11] != 0 {
		t.Fatalf("empty feedback should be neutral, got %v", neutral[11])
	}
	pos := ProfileInput{Feedback: "great team, very happy"}.Vector()
	if pos[11] <= 0 {
		t.Fatalf("positive feedback should score > 0, got %v", pos[11])
	}
	neg := ProfileInput{Feedback: "toxic and stressful environment"}.Vector()
	if neg[11] >= 0 {
		t.Fatalf("negative feedback should score < 0, got %v", neg[11])
	}
}

func TestWithDefaults_FillsEveryZeroField(t *testing.T) {
	got := ProfileInput{}.withDefaults()
	want := ProfileInput{
		Age:                     DefaultAge,
		MonthlyIncome:           DefaultMonthlyIncome,
		JobSatisfaction:         DefaultJobSatisfaction,
		JobInvolvement:          DefaultJobInvolvement,
		OverTime:                DefaultOverTime,
		YearsAtCompany:          DefaultYearsAtCompany,
		YearsInCurrentRole:      DefaultYearsInCurrentRole,
		YearsWithCurrManager:    DefaultYearsWithCurrManager,
		TotalWorkingYears:       DefaultTotalWorkingYears,
		DistanceFromHome:        DefaultDistanceFromHome,
		WorkLifeBalance:         DefaultWorkLifeBalance,
		EnvironmentSatisfaction: DefaultEnvironmentSatisfaction,
	}
	if got != want {
		t.Fatalf("withDefaults mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}
