// Package sampling recommends survey sample sizes from a confidence level,
// an expected proportion and a margin of error.
package sampling

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when an estimator input is outside its
// natural range.
var ErrInvalidParameter = errors.New("invalid sample size parameter")

// Formula identifies which closed-form equation produced a result.
type Formula string

const (
	FormulaFinite   Formula = "finite"
	FormulaInfinite Formula = "infinite"
)

// ConfidenceLevel pairs a confidence percentage with its two-sided standard
// normal critical value.
type ConfidenceLevel struct {
	Percent int     `json:"percent" doc:"Confidence percentage"`
	Z       float64 `json:"z" doc:"Critical value"`
}

// ConfidenceLevels are the only critical values the estimator accepts.
var ConfidenceLevels = []ConfidenceLevel{
	{Percent: 90, Z: 1.645},
	{Percent: 95, Z: 1.96},
	{Percent: 99, Z: 2.576},
}

// DefaultInputs is the calculator's initial state: 95% confidence, maximum
// variability and a 5% margin of error.
var DefaultInputs = Inputs{Z: 1.96, P: 0.5, E: 0.05}

// LevelForZ returns the confidence level whose critical value is z.
func LevelForZ(z float64) (ConfidenceLevel, bool) {
	for _, l := range ConfidenceLevels {
		if math.Abs(l.Z-z) < 1e-9 {
			return l, true
		}
	}
	return ConfidenceLevel{}, false
}

// Inputs are the estimator parameters. A Population of zero or less means the
// population is unknown or unbounded.
type Inputs struct {
	Z          float64
	P          float64
	E          float64
	Population int
}

// Result is a recommended sample size.
type Result struct {
	Size    int     `json:"size" doc:"Recommended sample size, rounded up"`
	Formula Formula `json:"formula" enum:"finite,infinite" doc:"Formula used"`
	Raw     float64 `json:"raw" doc:"Unrounded formula value"`
}

// Validate reports the first parameter outside its range.
func (in Inputs) Validate() error {
	if _, ok := LevelForZ(in.Z); !ok {
		return fmt.Errorf("%w: z %v is not one of 1.645, 1.96, 2.576", ErrInvalidParameter, in.Z)
	}
	if math.IsNaN(in.P) || in.P < 0 || in.P > 1 {
		return fmt.Errorf("%w: proportion %v is outside [0, 1]", ErrInvalidParameter, in.P)
	}
	if math.IsNaN(in.E) || in.E <= 0 || in.E > 1 {
		return fmt.Errorf("%w: margin of error %v is outside (0, 1]", ErrInvalidParameter, in.E)
	}
	return nil
}

// Estimate returns the sample size for in. With a known population the
// finite-population formula
//
//	n = N·z²·p·q / (e²·(N−1) + z²·p·q)
//
// is used, otherwise n = z²·p·q / e². The result is rounded up and is never
// below 1.
func Estimate(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	q := 1 - in.P
	z2pq := in.Z * in.Z * in.P * q
	e2 := in.E * in.E

	var res Result
	switch {
	case in.Population > 0:
		res.Formula = FormulaFinite
		// p of 0 or 1 with N = 1 would divide zero by zero.
		if z2pq > 0 {
			n := float64(in.Population)
			res.Raw = (n * z2pq) / (e2*(n-1) + z2pq)
		}
	default:
		res.Formula = FormulaInfinite
		res.Raw = z2pq / e2
	}

	res.Size = int(math.Ceil(res.Raw))
	if res.Size < 1 {
		res.Size = 1
	}
	return res, nil
}
