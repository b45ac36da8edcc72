package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// Values are compared to 12 significant digits.
const tolerance = 1e-12

func assertClose(t *testing.T, expected, actual float64, name string) bool {
	t.Helper()
	if scalar.EqualWithinAbsOrRel(expected, actual, tolerance, tolerance) {
		return true
	}
	return assert.Failf(t, "values differ beyond tolerance", "%s: expected %v, got %v", name, expected, actual)
}
