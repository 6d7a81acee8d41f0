// Package ml implements the in-memory prediction pipeline: a synthetic
// training-set generator, z-score standardization, a principal-component
// projection to 10 dimensions, and two random-forest classifiers (attrition
// and promotion). The pipeline is fitted once at process start and is
// read-only afterwards, so it is safe to share across concurrent requests.
//
// The training data is synthetic by design: labels are deterministic
// functions of the generated features, not real outcomes. The data generator
// is seeded, but tree construction draws from its own stream, so fitted
// forests differ from run to run. Nothing is persisted across restarts.
package ml

import (
	"math/rand"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/features"
)

// Training-set shape and generator seed.
const (
	datasetSize = 1000
	datasetSeed = 42
)

// dataset holds a generated training set: one row per synthetic employee,
// with binary labels for both classification targets.
type dataset struct {
	x         [][]float64 // datasetSize × features.Dim
	attrition []int
	promotion []int
}

// syntheticDataset generates datasetSize rows with independent per-feature
// distributions and derives both labels by fixed rules:
//
//	attrition = satisfaction ≤ 2 AND income < 6000
//	promotion = satisfaction ≥ 3 AND totalWorkingYears > 5
func syntheticDataset(rng *rand.Rand) dataset {
	d := dataset{
		x:         make([][]float64, datasetSize),
		attrition: make([]int, datasetSize),
		promotion: make([]int, datasetSize),
	}

	for i := 0; i < datasetSize; i++ {
		age := 18 + rng.Intn(47)             // [18, 65)
		income := 3000 + rng.Intn(17000)     // [3000, 20000)
		satisfaction := 1 + rng.Intn(4)      // [1, 5)
		involvement := 1 + rng.Intn(4)       // [1, 5)
		yearsAtCompany := rng.Intn(40)       // [0, 40)
		yearsInRole := rng.Intn(18)          // [0, 18)
		yearsWithManager := rng.Intn(17)     // [0, 17)
		totalWorkingYears := rng.Intn(40)    // [0, 40)
		distance := 1 + rng.Intn(29)         // [1, 30)
		workLifeBalance := 1 + rng.Intn(4)   // [1, 5)
		envSatisfaction := 1 + rng.Intn(4)   // [1, 5)
		sentimentScore := rng.Float64()*2 - 1 // [-1, 1)

		var overtimeYes, overtimeNo float64
		if rng.Intn(2) == 1 {
			overtimeYes = 1
		} else {
			overtimeNo = 1
		}

		// Order must match features.Names.
		d.x[i] = []float64{
			float64(age), float64(income), float64(satisfaction), float64(involvement),
			float64(yearsAtCompany), float64(yearsInRole), float64(yearsWithManager),
			float64(totalWorkingYears), float64(distance), float64(workLifeBalance),
			float64(envSatisfaction), sentimentScore, overtimeYes, overtimeNo,
		}

		if satisfaction <= 2 && income < 6000 {
			d.attrition[i] = 1
		}
		if satisfaction >= 3 && totalWorkingYears > 5 {
			d.promotion[i] = 1
		}
	}

	if len(d.x) > 0 && len(d.x[0]) != features.Dim {
		panic("ml: synthetic row width does not match feature dimension")
	}
	return d
}
