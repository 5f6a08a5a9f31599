package symcalc

import (
	"math"

	"github.com/cortenio/symcalc/numeric"
)

// evalUnaryNumeric computes the IEEE double result of applying k to x,
// delegating every elementary function to math (spec.md's "required from
// a math library with IEEE semantics") and the two non-stdlib
// transcendentals to the numeric subpackage. Used both for constant
// folding at construction time and for leaf evaluation in Evaluate.
func evalUnaryNumeric(k kind, x float64) float64 {
	switch k {
	case kindAbs:
		return math.Abs(x)
	case kindSgn:
		return Sign(x)
	case kindSqrt:
		return math.Sqrt(x)
	case kindCbrt:
		return math.Cbrt(x)
	case kindExp:
		return math.Exp(x)
	case kindExpm1:
		return math.Expm1(x)
	case kindLog:
		return math.Log(x)
	case kindLog1p:
		return math.Log1p(x)
	case kindSin:
		return math.Sin(x)
	case kindCos:
		return math.Cos(x)
	case kindTan:
		return math.Tan(x)
	case kindSec:
		return 1 / math.Cos(x)
	case kindAsin:
		return math.Asin(x)
	case kindAcos:
		return math.Acos(x)
	case kindAtan:
		return math.Atan(x)
	case kindSinh:
		return math.Sinh(x)
	case kindCosh:
		return math.Cosh(x)
	case kindTanh:
		return math.Tanh(x)
	case kindSech:
		return 1 / math.Cosh(x)
	case kindAsinh:
		return math.Asinh(x)
	case kindAcosh:
		return math.Acosh(x)
	case kindAtanh:
		return math.Atanh(x)
	case kindErf:
		return math.Erf(x)
	case kindErfc:
		return math.Erfc(x)
	case kindInvert:
		return 1 / x
	case kindNegate:
		return -x
	case kindSquare:
		return x * x
	case kindSoftpp:
		return numeric.Spp(x)
	case kindSpence:
		return numeric.Li2(x)
	case kindXconic:
		return math.Sqrt(x*x - 1)
	case kindYconic:
		return math.Sqrt(x*x + 1)
	case kindZconic:
		return math.Sqrt(1 - x*x)
	default:
		return math.NaN()
	}
}
