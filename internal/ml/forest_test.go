package ml

import (
	"math/rand"
	"testing"
)

func TestFitForest_InvalidData(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := fitForest(nil, nil, rng); err == nil {
		t.Fatalf("expected error on empty data")
	}
	if _, err := fitForest([][]float64{{1}}, []int{0, 1}, rng); err == nil {
		t.Fatalf("expected error on length mismatch")
	}
}

func TestForest_SeparatesSimpleRule(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Label is 1 iff the first feature exceeds 0; the rest is noise.
	x := make([][]float64, 400)
	y := make([]int, 400)
	for i := range x {
		row := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		x[i] = row
		if row[0] > 0 {
			y[i] = 1
		}
	}

	f, err := fitForest(x, y, rng)
	if err != nil {
		t.Fatalf("fitForest: %v", err)
	}

	if p := f.predictProb([]float64{2, 0, 0}); p < 0.8 {
		t.Fatalf("clear positive scored %v", p)
	}
	if p := f.predictProb([]float64{-2, 0, 0}); p > 0.2 {
		t.Fatalf("clear negative scored %v", p)
	}
}

func TestForest_PureLabelsYieldConstantProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	x := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}

	f, err := fitForest(x, []int{1, 1, 1, 1}, rng)
	if err != nil {
		t.Fatalf("fitForest: %v", err)
	}
	if p := f.predictProb([]float64{2, 3}); p != 1 {
		t.Fatalf("all-positive training should predict 1, got %v", p)
	}

	f, err = fitForest(x, []int{0, 0, 0, 0}, rng)
	if err != nil {
		t.Fatalf("fitForest: %v", err)
	}
	if p := f.predictProb([]float64{2, 3}); p != 0 {
		t.Fatalf("all-negative training should predict 0, got %v", p)
	}
}

func TestSyntheticDataset_ShapeAndLabels(t *testing.T) {
	d := syntheticDataset(rand.New(rand.NewSource(datasetSeed)))
	if len(d.x) != datasetSize || len(d.attrition) != datasetSize || len(d.promotion) != datasetSize {
		t.Fatalf("dataset shape wrong: %d rows", len(d.x))
	}
	for i, row := range d.x {
		sat, income, twy := row[2], row[1], row[7]
		wantAttr := 0
		if sat <= 2 && income < 6000 {
			wantAttr = 1
		}
		wantPromo := 0
		if sat >= 3 && twy > 5 {
			wantPromo = 1
		}
		if d.attrition[i] != wantAttr || d.promotion[i] != wantPromo {
			t.Fatalf("row %d labels (%d, %d); want (%d, %d)",
				i, d.attrition[i], d.promotion[i], wantAttr, wantPromo)
		}
	}
	// Both classes must actually occur, or the forests learn nothing.
	sum := func(ys []int) (n int) {
		for _, v := range ys {
			n += v
		}
		return
	}
	if a := sum(d.attrition); a == 0 || a == datasetSize {
		t.Fatalf("attrition labels degenerate: %d positives", a)
	}
	if p := sum(d.promotion); p == 0 || p == datasetSize {
		t.Fatalf("promotion labels degenerate: %d positives", p)
	}
}
