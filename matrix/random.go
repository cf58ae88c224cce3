// SPDX-License-Identifier: MIT

package matrix

import "lukechampine.com/frand"

// float53 is 2^53: the number of evenly spaced float64 values in [0, 1).
const float53 = 1 << 53

// RandomFill overwrites every element of m with a uniform value in [0, 1).
// A nil rng draws from the global frand generator; pass frand.NewCustom with a
// fixed seed for reproducible fixtures.
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols).
func RandomFill[T Float](m *Matrix[T], rng *frand.RNG) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("RandomFill", err)
	}
	draw := frand.Uint64n
	if rng != nil {
		draw = rng.Uint64n
	}
	data := m.store.Data()
	for i := range data {
		data[i] = T(float64(draw(float53)) / float53)
	}

	return nil
}
