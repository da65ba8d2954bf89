package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// DefaultEps is the perturbation NumericalDiff uses when eps <= 0.
const DefaultEps = 1e-4

// NumericalDiff approximates the derivative of f at x with central
// differences: (f(x+eps) - f(x-eps)) / (2*eps). It is a diagnostic for
// cross-checking analytic Backward implementations, not part of the graph
// engine; the perturbed evaluations run on fresh leaf Variables and leave x
// untouched.
func NumericalDiff(f func(*Variable) *Variable, x *Variable, eps float64) *tensor.RawTensor {
	if eps <= 0 {
		eps = DefaultEps
	}
	data := x.mustData("NumericalDiff")
	y0 := f(NewVariable(tensor.AddScalar(data, -eps)))
	y1 := f(NewVariable(tensor.AddScalar(data, eps)))
	diff := tensor.Sub(y1.mustData("NumericalDiff"), y0.mustData("NumericalDiff"))
	return tensor.MulScalar(diff, 1/(2*eps))
}
