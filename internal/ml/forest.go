// Package ml – random-forest classifier.
//
// The forest is a bagged ensemble of binary CART trees. Each tree is grown
// on a bootstrap sample of the training rows; at every split a random subset
// of features is considered and, per candidate feature, thresholds are drawn
// from observed values (extremely-randomized style). This keeps fitting
// cheap and is sufficient for the synthetic rule-derived labels the
// bootstrapper trains on. Probabilities are the mean positive fraction of
// the leaves a sample falls into, mirroring vote-share semantics.
package ml

import (
	"errors"
	"math"
	"math/rand"
)

// Fixed hyperparameters used by the bootstrapper.
const (
	forestTrees       = 100
	forestMaxDepth    = 10
	forestMinSplit    = 4
	thresholdsPerFeat = 8
)

type treeNode struct {
	leaf      bool
	prob      float64 // positive-class fraction at this leaf
	feature   int
	threshold float64
	left      *treeNode // feature value < threshold
	right     *treeNode
}

// forest is a fitted ensemble. Read-only after fitForest returns.
type forest struct {
	trees []*treeNode
	mtry  int
}

// fitForest grows forestTrees trees over x/y. y must contain only 0 and 1.
func fitForest(x [][]float64, y []int, rng *rand.Rand) (*forest, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, errors.New("ml: invalid training data for forest")
	}
	dims := len(x[0])
	f := &forest{
		trees: make([]*treeNode, forestTrees),
		mtry:  int(math.Max(1, math.Round(math.Sqrt(float64(dims))))),
	}
	for t := 0; t < forestTrees; t++ {
		idx := make([]int, len(x))
		for i := range idx {
			idx[i] = rng.Intn(len(x))
		}
		f.trees[t] = growTree(x, y, idx, 0, f.mtry, rng)
	}
	return f, nil
}

// predictProb returns the positive-class probability for one row.
func (f *forest) predictProb(row []float64) float64 {
	var sum float64
	for _, t := range f.trees {
		sum += t.classify(row)
	}
	return sum / float64(len(f.trees))
}

func (n *treeNode) classify(row []float64) float64 {
	for !n.leaf {
		if row[n.feature] < n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.prob
}

// growTree builds one CART node over the rows selected by idx.
func growTree(x [][]float64, y []int, idx []int, depth, mtry int, rng *rand.Rand) *treeNode {
	pos := 0
	for _, i := range idx {
		pos += y[i]
	}
	prob := float64(pos) / float64(len(idx))

	if depth >= forestMaxDepth || len(idx) < forestMinSplit || pos == 0 || pos == len(idx) {
		return &treeNode{leaf: true, prob: prob}
	}

	feature, threshold, ok := bestSplit(x, y, idx, mtry, rng)
	if !ok {
		return &treeNode{leaf: true, prob: prob}
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] < threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, prob: prob}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(x, y, left, depth+1, mtry, rng),
		right:     growTree(x, y, right, depth+1, mtry, rng),
	}
}

// bestSplit scans mtry random features with randomized thresholds and returns
// the split minimizing weighted Gini impurity.
func bestSplit(x [][]float64, y []int, idx []int, mtry int, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	dims := len(x[0])
	bestGini := math.Inf(1)

	for m := 0; m < mtry; m++ {
		feat := rng.Intn(dims)
		for c := 0; c < thresholdsPerFeat; c++ {
			// Threshold between two randomly observed values.
			a := x[idx[rng.Intn(len(idx))]][feat]
			b := x[idx[rng.Intn(len(idx))]][feat]
			if a == b {
				continue
			}
			thr := (a + b) / 2

			var nL, posL, nR, posR int
			for _, i := range idx {
				if x[i][feat] < thr {
					nL++
					posL += y[i]
				} else {
					nR++
					posR += y[i]
				}
			}
			if nL == 0 || nR == 0 {
				continue
			}
			g := weightedGini(nL, posL, nR, posR)
			if g < bestGini {
				bestGini, feature, threshold, ok = g, feat, thr, true
			}
		}
	}
	return feature, threshold, ok
}

func weightedGini(nL, posL, nR, posR int) float64 {
	gini := func(n, pos int) float64 {
		p := float64(pos) / float64(n)
		return 2 * p * (1 - p)
	}
	total := float64(nL + nR)
	return float64(nL)/total*gini(nL, posL) + float64(nR)/total*gini(nR, posR)
}
