package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cortenio/symcalc/numeric"
)

func TestLi2KnownValues(t *testing.T) {
	assert.InDelta(t, math.Pi*math.Pi/6, numeric.Li2(1), 1e-9)
	assert.InDelta(t, 0.0, numeric.Li2(0), 1e-9)
	assert.InDelta(t, -math.Pi*math.Pi/12, numeric.Li2(-1), 1e-9)
}

func TestLi2ReflectionIdentityAgreesAcrossBranches(t *testing.T) {
	// Li2(x) for x in (1/2, 1) and its reflection Li2(1-x) must satisfy
	// Li2(x) + Li2(1-x) = pi^2/6 - log(x)log(1-x).
	for _, x := range []float64{0.6, 0.75, 0.9} {
		lhs := numeric.Li2(x) + numeric.Li2(1-x)
		rhs := math.Pi*math.Pi/6 - math.Log(x)*math.Log(1-x)
		assert.InDelta(t, rhs, lhs, 1e-8, "x=%v", x)
	}
}

func TestLi2NegativeReflection(t *testing.T) {
	for _, x := range []float64{-2, -5, -10} {
		lhs := numeric.Li2(x) + numeric.Li2(1/x)
		l := math.Log(-x)
		rhs := -math.Pi*math.Pi/6 - 0.5*l*l
		assert.InDelta(t, rhs, lhs, 1e-7, "x=%v", x)
	}
}

func TestSppEvenDecomposition(t *testing.T) {
	for _, x := range []float64{0.3, 1.0, 2.5} {
		lhs := numeric.Spp(-x)
		rhs := numeric.Spp(x) - x*x/2 + math.Pi*math.Pi/6
		assert.InDelta(t, rhs, lhs, 1e-7, "x=%v", x)
	}
}

func TestSppAtZero(t *testing.T) {
	assert.InDelta(t, math.Pi*math.Pi/12, numeric.Spp(0), 1e-9)
}
