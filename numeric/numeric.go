// Package numeric implements the two transcendentals spec.md treats as
// external collaborators that the standard math package does not offer:
// the real dilogarithm Li2 (Spence's function) and Spp, the integral of
// softplus. Both are grounded on the closed-form reduction identities and
// Bernoulli power series spec.md §6 specifies verbatim, following the
// same construction as Laskenta.cpp's Li2/Spp free functions.
package numeric

import "math"

// bernoulliOverFactorial holds the even Bernoulli numbers B_{2k} for
// k = 1..12; li2Series scales each by w^(2k+1)/(2k+1)! to form the
// series terms. Values taken from the standard Bernoulli-number table.
var bernoulliOverFactorial = [...]float64{
	1.0 / 6,
	-1.0 / 30,
	1.0 / 42,
	-1.0 / 30,
	5.0 / 66,
	-691.0 / 2730,
	7.0 / 6,
	-3617.0 / 510,
	43867.0 / 798,
	-174611.0 / 330,
	854513.0 / 138,
	-236364091.0 / 2730,
}

// li2Series evaluates the dilogarithm's Bernoulli power series directly,
// valid when |log(1-x)| <= log 2 (the regime the reduction identities in
// Li2 route every other input into). Uses the standard series
//
//	Li2(x) = sum_{k=0}^inf B_k / (k+1)! * (-log(1-x))^(k+1)
//
// truncated with the Bernoulli-number table above plus the k=0 and k=1
// terms handled explicitly.
func li2Series(x float64) float64 {
	w := -math.Log1p(-x)
	if w == 0 {
		return 0
	}
	sum := w * (1 - w/4)
	wk := w // w^(2k+1) / (2k+1)!, starting at k = 0
	for i, b := range bernoulliOverFactorial {
		n := float64(2*i + 2)
		wk *= w * w / (n * (n + 1))
		term := b * wk
		sum += term
		if math.Abs(term) < 1e-18*math.Abs(sum) {
			break
		}
	}
	return sum
}

// Li2 is the real dilogarithm (Spence's function), defined for x <= 1,
// via the reflection and duplication identities of spec.md §6.
func Li2(x float64) float64 {
	switch {
	case x > 1:
		return math.NaN()
	case x == 1:
		return math.Pi * math.Pi / 6
	case x < -1:
		l := math.Log(-x)
		return -Li2(1/x) - math.Pi*math.Pi/6 - 0.5*l*l
	case x > 0.5:
		return -Li2(1-x) + math.Pi*math.Pi/6 - math.Log(x)*math.Log1p(-x)
	default:
		return li2Series(x)
	}
}

// Spp is the integral of softplus, log(1+e^x), reduced to the positive
// branch via Spp(-x) = Spp(x) - x^2/2 + pi^2/6 and then expressed through
// Li2 on the same Bernoulli series, per spec.md §6.
func Spp(x float64) float64 {
	if x < 0 {
		return Spp(-x) - x*x/2 + math.Pi*math.Pi/6
	}
	return -Li2(-math.Exp(x))
}
