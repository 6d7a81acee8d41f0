// Package ml – fitted pipeline and startup bootstrapper.
package ml

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/features"
)

// Prediction is the result of one pipeline inference: label/probability
// pairs for both classifiers. Probabilities are rounded to 3 decimals and
// the label is "Yes" iff the probability is ≥ 0.5.
type Prediction struct {
	AttritionLabel string  `json:"attrition"`
	AttritionProb  float64 `json:"attrition_prob"`
	PromotionLabel string  `json:"promotion"`
	PromotionProb  float64 `json:"promotion_prob"`
}

// RiskBand buckets an attrition probability for display: "High" above 0.7,
// "Medium" above 0.4, "Low" otherwise.
func RiskBand(prob float64) string {
	switch {
	case prob > 0.7:
		return "High"
	case prob > 0.4:
		return "Medium"
	default:
		return "Low"
	}
}

// Pipeline holds the transforms and classifiers fitted by Train. It is
// stateless per request and safe for concurrent use: nothing mutates it
// after fitting.
type Pipeline struct {
	scaler    *scaler
	proj      *projection
	attrition *forest
	promotion *forest
}

// Train fits the full pipeline from a fresh synthetic dataset. It is meant
// to run exactly once at process start; the caller treats an error as fatal.
// The data generator is seeded, but tree construction consumes the same
// stream, so two processes can still end up with different forests.
func Train() (*Pipeline, error) {
	rng := rand.New(rand.NewSource(datasetSeed))
	d := syntheticDataset(rng)

	sc, err := fitScaler(d.x)
	if err != nil {
		return nil, fmt.Errorf("fit scaler: %w", err)
	}
	scaled := sc.transformAll(d.x)

	proj, err := fitProjection(scaled)
	if err != nil {
		return nil, fmt.Errorf("fit projection: %w", err)
	}
	projected := proj.transformAll(scaled)

	attr, err := fitForest(projected, d.attrition, rng)
	if err != nil {
		return nil, fmt.Errorf("fit attrition classifier: %w", err)
	}
	promo, err := fitForest(projected, d.promotion, rng)
	if err != nil {
		return nil, fmt.Errorf("fit promotion classifier: %w", err)
	}

	return &Pipeline{scaler: sc, proj: proj, attrition: attr, promotion: promo}, nil
}

// Predict runs one feature vector through standardization, projection, and
// both classifiers.
func (p *Pipeline) Predict(vec [features.Dim]float64) Prediction {
	scaled := p.scaler.transform(vec[:])
	projected := p.proj.transform(scaled)

	attrProb := round3(p.attrition.predictProb(projected))
	promoProb := round3(p.promotion.predictProb(projected))

	return Prediction{
		AttritionLabel: yesNo(attrProb),
		AttritionProb:  attrProb,
		PromotionLabel: yesNo(promoProb),
		PromotionProb:  promoProb,
	}
}

// yesNo maps a probability to its label at the default 0.5 threshold.
func yesNo(prob float64) string {
	if prob >= 0.5 {
		return "Yes"
	}
	return "No"
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
