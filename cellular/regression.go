package cellular

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// regressionModel is a fixed, untrained feed-forward regressor distilled from
// literature cell-size data: 3 inputs → 8 hidden → 4 hidden → 1 output, ReLU
// hidden activations, sigmoid output. The weights are constants; there is no
// training or gradient machinery.
type regressionModel struct {
	W1, W2 *mat.Dense    // 8×3, 4×8
	B1, B2 *mat.VecDense // 8, 4
	WOut   *mat.VecDense // 4
	BOut   float64
}

// Weight constants. Row-major, one row per hidden unit.
var (
	w1Data = []float64{
		0.42, -0.31, 0.55,
		-0.18, 0.67, -0.24,
		0.73, 0.12, -0.49,
		-0.56, -0.38, 0.61,
		0.29, -0.72, 0.15,
		-0.44, 0.53, 0.37,
		0.68, -0.21, -0.58,
		-0.33, 0.46, 0.71,
	}
	b1Data = []float64{0.11, -0.24, 0.36, -0.08, 0.19, -0.41, 0.27, -0.15}

	w2Data = []float64{
		0.35, -0.48, 0.22, 0.61, -0.17, 0.44, -0.29, 0.53,
		-0.62, 0.18, 0.47, -0.33, 0.56, -0.25, 0.39, -0.14,
		0.24, 0.51, -0.43, 0.16, -0.58, 0.32, 0.45, -0.37,
		-0.19, -0.36, 0.64, 0.28, 0.13, -0.52, 0.21, 0.49,
	}
	b2Data = []float64{0.07, -0.18, 0.25, -0.12}

	wOutData = []float64{0.58, -0.34, 0.26, 0.41}
	bOutVal  = -0.09
)

func newRegressionModel() regressionModel {
	return regressionModel{
		W1:   mat.NewDense(8, 3, w1Data),
		W2:   mat.NewDense(4, 8, w2Data),
		B1:   mat.NewVecDense(8, b1Data),
		B2:   mat.NewVecDense(4, b2Data),
		WOut: mat.NewVecDense(4, wOutData),
		BOut: bOutVal,
	}
}

// Output cell-size range the sigmoid result is rescaled into.
const (
	minCellSize  = 0.0001 // 0.1 mm
	cellSizeSpan = 0.05   // up to ~50 mm
)

// normalize maps the three physical inputs into [0,1]: log scale for
// induction length (1e-6..1e-3 m) and thermicity (1e4..1e7 1/s), linear for
// the CJ Mach number (3..10). All channels clamp at the range ends.
func normalize(inductionLength, cjMach, thermicity float64) []float64 {
	in := make([]float64, 3)
	in[0] = clamp01(math.Log10(inductionLength+1e-8)/6.0 + 1.0)
	in[1] = clamp01((cjMach - 3.0) / 7.0)
	in[2] = clamp01((math.Log10(thermicity+1e-8) - 4.0) / 3.0)
	return in
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func relu(x float64) float64 {
	return math.Max(0, x)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Predict runs the forward pass and rescales the scalar result into the
// physical cell-size range. It rejects non-finite or non-positive inputs so
// the caller can fall back to the correlation path.
func (m regressionModel) Predict(inductionLength, cjMach, thermicity float64) (lambda float64, err error) {
	if !isFinitePositive(inductionLength) || !isFinitePositive(thermicity) ||
		math.IsNaN(cjMach) || math.IsInf(cjMach, 0) {
		return 0, fmt.Errorf("regression inputs out of domain: ΔI=%g, M=%g, σ̇=%g",
			inductionLength, cjMach, thermicity)
	}

	in := mat.NewVecDense(3, normalize(inductionLength, cjMach, thermicity))

	var h1 mat.VecDense
	h1.MulVec(m.W1, in)
	h1.AddVec(&h1, m.B1)
	for i := 0; i < h1.Len(); i++ {
		h1.SetVec(i, relu(h1.AtVec(i)))
	}

	var h2 mat.VecDense
	h2.MulVec(m.W2, &h1)
	h2.AddVec(&h2, m.B2)
	for i := 0; i < h2.Len(); i++ {
		h2.SetVec(i, relu(h2.AtVec(i)))
	}

	out := mat.Dot(m.WOut, &h2) + m.BOut
	lambda = minCellSize + sigmoid(out)*cellSizeSpan

	if !isFinitePositive(lambda) {
		return 0, fmt.Errorf("regression output not physical: %g m", lambda)
	}
	return lambda, nil
}

func isFinitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
