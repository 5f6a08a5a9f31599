package symcalc

import "math"

// guaranteed implements the conservative attribute propagator (spec.md
// §4.5): a per-node-kind predicate computed from the node's children's
// guarantees. Returning false means "unknown", never "provably false" —
// every case below is sound by construction: it only returns true when
// the requested fact is a mathematical consequence of the children's own
// guarantees, and defaults to false for anything not explicitly derived.
func (c *Context) guaranteed(n *node, attr Attribute) bool {
	switch n.kind {
	case kindNaN:
		return false
	case kindConstant:
		return c.guaranteedConstant(n.constVal, attr)
	case kindVariable:
		return c.guaranteedVariable(attr)
	case kindAdd:
		return c.guaranteedAdd(n, attr)
	case kindMul:
		return c.guaranteedMul(n, attr)
	case kindPow:
		return c.guaranteedPow(n, attr)
	default:
		return c.guaranteedUnary(n, attr)
	}
}

func (c *Context) g(n *node, a Attribute) bool { return c.guaranteed(n, a) }

func (c *Context) guaranteedConstant(v float64, attr Attribute) bool {
	switch attr {
	case Defined, Continuous, Nonincreasing, Nondecreasing:
		return true
	case Boundedabove:
		return v != math.Inf(1)
	case Boundedbelow:
		return v != math.Inf(-1)
	case Nonzero:
		return v != 0
	case Positive:
		return v > 0
	case Negative:
		return v < 0
	case Nonpositive:
		return v <= 0
	case Nonnegative:
		return v >= 0
	case Unitrange:
		return math.Abs(v) <= 1
	case Antiunitrange:
		return math.Abs(v) > 1
	case Openunitrange:
		return math.Abs(v) < 1
	case Antiopenunitrange:
		return math.Abs(v) >= 1
	default:
		return false
	}
}

func (c *Context) guaranteedVariable(attr Attribute) bool {
	switch attr {
	case Defined, Continuous, Increasing, Nondecreasing:
		return true
	default:
		return false
	}
}

func (c *Context) guaranteedAdd(n *node, attr Attribute) bool {
	f, g := n.a, n.b
	switch attr {
	case Defined:
		return c.g(f, Defined) && c.g(g, Defined)
	case Continuous:
		return c.g(f, Continuous) && c.g(g, Continuous)
	case Positive:
		return (c.g(f, Positive) && c.g(g, Nonnegative)) || (c.g(f, Nonnegative) && c.g(g, Positive))
	case Negative:
		return (c.g(f, Negative) && c.g(g, Nonpositive)) || (c.g(f, Nonpositive) && c.g(g, Negative))
	case Nonnegative:
		return c.g(f, Nonnegative) && c.g(g, Nonnegative)
	case Nonpositive:
		return c.g(f, Nonpositive) && c.g(g, Nonpositive)
	case Increasing:
		return (c.g(f, Increasing) && c.g(g, Nondecreasing)) || (c.g(f, Nondecreasing) && c.g(g, Increasing))
	case Decreasing:
		return (c.g(f, Decreasing) && c.g(g, Nonincreasing)) || (c.g(f, Nonincreasing) && c.g(g, Decreasing))
	case Nondecreasing:
		return c.g(f, Nondecreasing) && c.g(g, Nondecreasing)
	case Nonincreasing:
		return c.g(f, Nonincreasing) && c.g(g, Nonincreasing)
	case Boundedabove:
		return c.g(f, Boundedabove) && c.g(g, Boundedabove)
	case Boundedbelow:
		return c.g(f, Boundedbelow) && c.g(g, Boundedbelow)
	default:
		return false
	}
}

func (c *Context) guaranteedMul(n *node, attr Attribute) bool {
	f, g := n.a, n.b
	switch attr {
	case Defined:
		return c.g(f, Defined) && c.g(g, Defined)
	case Continuous:
		return c.g(f, Continuous) && c.g(g, Continuous)
	case Nonzero:
		return c.g(f, Nonzero) && c.g(g, Nonzero)
	case Positive:
		return (c.g(f, Positive) && c.g(g, Positive)) || (c.g(f, Negative) && c.g(g, Negative))
	case Negative:
		return (c.g(f, Positive) && c.g(g, Negative)) || (c.g(f, Negative) && c.g(g, Positive))
	case Nonnegative:
		return (c.g(f, Nonnegative) && c.g(g, Nonnegative)) || (c.g(f, Nonpositive) && c.g(g, Nonpositive))
	case Nonpositive:
		return (c.g(f, Nonnegative) && c.g(g, Nonpositive)) || (c.g(f, Nonpositive) && c.g(g, Nonnegative))
	default:
		return false
	}
}

func (c *Context) guaranteedPow(n *node, attr Attribute) bool {
	base, exp := n.a, n.b
	switch attr {
	case Defined:
		return c.g(base, Positive) || (c.g(base, Nonzero) && isIntegerConstant(exp))
	case Continuous:
		return c.guaranteedPow(n, Defined)
	case Positive:
		return c.g(base, Positive)
	case Nonzero:
		return c.g(base, Nonzero)
	case Nonnegative:
		return c.g(base, Nonnegative)
	default:
		return false
	}
}

func isIntegerConstant(n *node) bool {
	v, ok := n.asConstant()
	return ok && v == math.Trunc(v)
}

// guaranteedUnary covers every unary node kind. Each case is grounded on
// the corresponding case of Laskenta.cpp's per-class guaranteed() and on
// spec.md §4.5's worked examples (EXP, SQRT).
func (c *Context) guaranteedUnary(n *node, attr Attribute) bool {
	f := n.a
	switch n.kind {
	case kindAbs:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Nonnegative:
			return c.g(f, Defined)
		case Nonzero:
			return c.g(f, Nonzero)
		case Positive:
			return c.g(f, Nonzero) && c.g(f, Defined)
		case Boundedabove:
			return c.g(f, Boundedabove) && c.g(f, Boundedbelow)
		case Boundedbelow:
			return true
		}
	case kindSgn:
		switch attr {
		case Defined, Boundedabove, Boundedbelow:
			return true
		case Unitrange:
			return true
		}
	case kindSqrt:
		switch attr {
		case Defined:
			return c.g(f, Nonnegative)
		case Continuous:
			return c.g(f, Nonnegative) && c.g(f, Continuous)
		case Nonnegative:
			return true
		case Positive:
			return c.g(f, Positive)
		case Increasing:
			return c.g(f, Positive) && c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nonnegative) && c.g(f, Nondecreasing)
		case Boundedbelow:
			return true
		}
	case kindCbrt:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Positive:
			return c.g(f, Positive)
		case Negative:
			return c.g(f, Negative)
		case Nonzero:
			return c.g(f, Nonzero)
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		}
	case kindExp:
		switch attr {
		case Defined, Nonzero, Positive, Nonnegative, Boundedbelow:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		case Decreasing:
			return c.g(f, Decreasing)
		case Nonincreasing:
			return c.g(f, Nonincreasing)
		}
	case kindExpm1:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Nonnegative:
			return c.g(f, Nonnegative)
		case Positive:
			return c.g(f, Positive)
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		case Boundedbelow:
			return c.g(f, Boundedbelow)
		}
	case kindLog:
		switch attr {
		case Defined:
			return c.g(f, Positive)
		case Continuous:
			return c.g(f, Positive) && c.g(f, Continuous)
		case Increasing:
			return c.g(f, Positive) && c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Positive) && c.g(f, Nondecreasing)
		}
	case kindLog1p:
		switch attr {
		case Defined:
			return c.g(f, Positive) || (c.g(f, Nonnegative))
		case Continuous:
			return c.guaranteedUnary(n, Defined) && c.g(f, Continuous)
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		}
	case kindSin:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Unitrange, Boundedabove, Boundedbelow:
			return true
		}
	case kindCos:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Unitrange, Boundedabove, Boundedbelow:
			return true
		}
	case kindTan, kindSec:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		}
	case kindAsin, kindAtan:
		switch attr {
		case Defined:
			if n.kind == kindAsin {
				return c.g(f, Unitrange)
			}
			return c.g(f, Defined)
		case Continuous:
			return c.guaranteedUnary(n, Defined)
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		case Boundedabove, Boundedbelow:
			return n.kind == kindAtan
		}
	case kindAcos:
		switch attr {
		case Defined:
			return c.g(f, Unitrange)
		case Continuous:
			return c.guaranteedUnary(n, Defined)
		case Decreasing:
			return c.g(f, Increasing)
		case Nonincreasing:
			return c.g(f, Nondecreasing)
		case Boundedabove, Boundedbelow:
			return true
		}
	case kindSinh, kindTanh, kindAsinh, kindAtanh:
		switch attr {
		case Defined:
			if n.kind == kindAtanh {
				return c.g(f, Openunitrange)
			}
			return c.g(f, Defined)
		case Continuous:
			return c.guaranteedUnary(n, Defined)
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		case Boundedabove, Boundedbelow:
			return n.kind == kindTanh
		}
	case kindCosh, kindSech:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Positive, Nonnegative, Boundedbelow:
			return true
		}
	case kindAcosh:
		switch attr {
		case Defined:
			return c.g(f, Antiopenunitrange) && c.g(f, Nonnegative)
		case Nonnegative:
			return true
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		}
	case kindErf:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Unitrange, Boundedabove, Boundedbelow:
			return true
		case Nonzero:
			return c.g(f, Nonzero)
		case Positive:
			return c.g(f, Positive)
		case Negative:
			return c.g(f, Negative)
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		}
	case kindErfc:
		// Symmetric derivation from Erf's table (erfc = 1 - erf), per
		// the explicit direction in spec.md §9's Open Question: the
		// source's ErfC::guaranteed unconditionally returns false,
		// which is treated here as incomplete rather than intentional.
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Boundedabove, Boundedbelow:
			return true
		case Positive:
			return c.g(f, Negative)
		case Decreasing:
			return c.g(f, Increasing)
		case Nonincreasing:
			return c.g(f, Nondecreasing)
		}
	case kindInvert:
		switch attr {
		case Defined:
			return c.g(f, Nonzero)
		case Continuous:
			return c.g(f, Nonzero) && c.g(f, Continuous)
		case Positive:
			return c.g(f, Positive)
		case Negative:
			return c.g(f, Negative)
		case Nonzero:
			return c.g(f, Nonzero)
		case Decreasing:
			return c.g(f, Positive) && c.g(f, Increasing)
		}
	case kindNegate:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Positive:
			return c.g(f, Negative)
		case Negative:
			return c.g(f, Positive)
		case Nonnegative:
			return c.g(f, Nonpositive)
		case Nonpositive:
			return c.g(f, Nonnegative)
		case Nonzero:
			return c.g(f, Nonzero)
		case Increasing:
			return c.g(f, Decreasing)
		case Decreasing:
			return c.g(f, Increasing)
		case Nonincreasing:
			return c.g(f, Nondecreasing)
		case Nondecreasing:
			return c.g(f, Nonincreasing)
		case Boundedabove:
			return c.g(f, Boundedbelow)
		case Boundedbelow:
			return c.g(f, Boundedabove)
		}
	case kindSquare:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Nonnegative:
			return true
		case Positive:
			return c.g(f, Nonzero)
		case Nonzero:
			return c.g(f, Nonzero)
		case Boundedbelow:
			return true
		case Increasing:
			return c.g(f, Nonnegative) && c.g(f, Increasing)
		}
	case kindSoftpp:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Continuous:
			return c.g(f, Continuous)
		case Positive, Nonnegative, Boundedbelow:
			return true
		case Increasing:
			return c.g(f, Increasing)
		case Nondecreasing:
			return c.g(f, Nondecreasing)
		}
	case kindSpence:
		switch attr {
		case Defined:
			return c.g(f, Nonpositive) || c.guaranteedPowLike(f)
		case Continuous:
			return c.guaranteedUnary(n, Defined)
		}
	case kindXconic:
		switch attr {
		case Defined:
			return c.g(f, Antiopenunitrange)
		case Nonnegative, Boundedbelow:
			return true
		}
	case kindYconic:
		switch attr {
		case Defined:
			return c.g(f, Defined)
		case Positive, Nonnegative, Boundedbelow:
			return true
		}
	case kindZconic:
		switch attr {
		case Defined:
			return c.g(f, Unitrange)
		case Nonnegative, Boundedbelow:
			return true
		}
	}
	return false
}

// guaranteedPowLike is a narrow helper for Spence's domain (Li2 is defined
// for x <= 1): true when f is provably at most 1.
func (c *Context) guaranteedPowLike(f *node) bool {
	if v, ok := f.asConstant(); ok {
		return v <= 1
	}
	return false
}
