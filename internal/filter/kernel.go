package filter

import "math"

// GaussianKernel generates a 1D Gaussian kernel with 2*halfWidth+1 taps
// sampled at integer offsets -halfWidth..halfWidth.
// The kernel is normalized so all values sum to 1.0.
//
// For halfWidth <= 0 or sigma <= 0, returns a single-element kernel [1.0]
// (identity).
func GaussianKernel(halfWidth int, sigma float64) []float64 {
	if halfWidth <= 0 || sigma <= 0 || math.IsNaN(sigma) {
		return []float64{1.0}
	}

	size := halfWidth*2 + 1
	kernel := make([]float64, size)

	// G(x) = exp(-x²/(2σ²)) / (σ√(2π))
	a := 1 / (math.Sqrt(2*math.Pi) * sigma)
	b := -1 / (2 * sigma * sigma)
	sum := 0.0

	for i := 0; i < size; i++ {
		x := float64(i - halfWidth)
		val := a * math.Exp(b*x*x)
		kernel[i] = val
		sum += val
	}

	// Normalize so kernel sums to 1.0
	if sum > 0 {
		for i := range kernel {
			kernel[i] /= sum
		}
	}

	return kernel
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}
