package testutil

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields []float64{start}.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// VisibleGrid returns n wavelengths in meters spanning 400 nm to 800 nm.
func VisibleGrid(n int) []float64 {
	return Linspace(400e-9, 800e-9, n)
}
