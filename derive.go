package symcalc

import "math"

// erfDerivConst is the literal 1/sqrt(atan 1) = 2/sqrt(pi) spec.md §4.3
// gives for D(erf f).
var erfDerivConst = 1 / math.Sqrt(math.Atan(1))

// derive returns the derivative of n with respect to v, expressed
// entirely through the algebra so every rewrite still applies to the
// result. The derivative is memoised per (node, variable) and gated on
// the Context's dirty-level epoch: spec.md §3/§9 describe a single-slot
// cache reset by a purge that recurses through the cached subtree on
// every epoch boundary; this generalises it to a map keyed by variable
// id (since one shared node may be differentiated against many
// variables) that is lazily invalidated by an epoch stamp instead of an
// eager recursive purge — same observable contract (Derive(E,v) called
// twice inside one epoch returns the same handle; a variable write
// invalidates it), simpler to express without mutating a whole subtree
// eagerly.
func (c *Context) derive(n *node, v *varCell) *node {
	if n.derivEpoch != c.dirtyLevel {
		n.derivCache = nil
		n.derivEpoch = c.dirtyLevel
	}
	if n.derivCache == nil {
		n.derivCache = make(map[uint64]*node)
	}
	if d, ok := n.derivCache[v.id]; ok {
		return d
	}
	d := c.deriveKind(n, v)
	n.derivCache[v.id] = d
	return d
}

func (c *Context) deriveKind(n *node, v *varCell) *node {
	switch n.kind {
	case kindNaN:
		return c.nanNode
	case kindConstant:
		return c.constant(0)
	case kindVariable:
		if n.v == v {
			return c.constant(1)
		}
		return c.constant(0)
	case kindAdd:
		return c.Add(c.derive(n.a, v), c.derive(n.b, v))
	case kindMul:
		f, g := n.a, n.b
		fp, gp := c.derive(f, v), c.derive(g, v)
		return c.Add(c.Mul(fp, g), c.Mul(gp, f))
	case kindPow:
		base, exp := n.a, n.b
		fp, gp := c.derive(base, v), c.derive(exp, v)
		term1 := c.Mul(c.Mul(fp, exp), c.Pow(base, c.Add(exp, c.constant(-1))))
		term2 := c.Mul(c.Mul(gp, n), c.Log(base))
		return c.Add(term1, term2)
	default:
		return c.deriveUnary(n, v)
	}
}

func (c *Context) deriveUnary(n *node, v *varCell) *node {
	f := n.a
	fp := c.derive(f, v)
	switch n.kind {
	case kindAbs:
		return c.Mul(fp, c.Sgn(f))
	case kindSgn:
		return c.constant(0)
	case kindSqrt:
		return c.Mul(fp, c.Invert(c.Mul(c.constant(2), n)))
	case kindCbrt:
		return c.Mul(fp, c.Invert(c.Mul(c.constant(3), c.Square(n))))
	case kindExp:
		return c.Mul(fp, n)
	case kindExpm1:
		return c.Mul(fp, c.Exp(f))
	case kindLog:
		return c.Mul(fp, c.Invert(f))
	case kindLog1p:
		return c.Mul(fp, c.Invert(c.Add(c.constant(1), f)))
	case kindSin:
		return c.Mul(fp, c.Cos(f))
	case kindCos:
		return c.Negate(c.Mul(fp, c.Sin(f)))
	case kindTan:
		return c.Mul(fp, c.Square(c.Sec(f)))
	case kindSec:
		return c.Mul(fp, c.Mul(c.Tan(f), n))
	case kindAsin:
		return c.Mul(fp, c.Invert(c.Zconic(f)))
	case kindAcos:
		return c.Negate(c.Mul(fp, c.Invert(c.Zconic(f))))
	case kindAtan:
		return c.Mul(fp, c.Invert(c.Square(c.Yconic(f))))
	case kindSinh:
		return c.Mul(fp, c.Cosh(f))
	case kindCosh:
		return c.Mul(fp, c.Sinh(f))
	case kindTanh:
		return c.Mul(fp, c.Square(c.Sech(f)))
	case kindSech:
		return c.Negate(c.Mul(fp, c.Mul(n, c.Tanh(f))))
	case kindAsinh:
		return c.Mul(fp, c.Invert(c.Yconic(f)))
	case kindAcosh:
		return c.Mul(fp, c.Invert(c.Xconic(f)))
	case kindAtanh:
		return c.Mul(fp, c.Invert(c.Square(c.Zconic(f))))
	case kindErf:
		return c.Mul(c.Mul(fp, c.Exp(c.Negate(c.Square(f)))), c.constant(erfDerivConst))
	case kindErfc:
		return c.Negate(c.Mul(c.Mul(fp, c.Exp(c.Negate(c.Square(f)))), c.constant(erfDerivConst)))
	case kindInvert:
		return c.Negate(c.Mul(fp, c.Invert(c.Square(f))))
	case kindNegate:
		return c.Negate(fp)
	case kindSquare:
		return c.Mul(c.constant(2), c.Mul(f, fp))
	case kindSoftpp:
		return c.Mul(fp, c.Log(c.Add(c.constant(1), c.Exp(f))))
	case kindSpence:
		return c.Mul(fp, c.Mul(c.Log(c.Add(c.constant(1), c.Negate(f))), c.Invert(c.Negate(f))))
	case kindXconic:
		return c.Mul(f, c.Mul(fp, c.Invert(n)))
	case kindYconic:
		return c.Mul(f, c.Mul(fp, c.Invert(n)))
	case kindZconic:
		return c.Negate(c.Mul(f, c.Mul(fp, c.Invert(n))))
	default:
		return c.nanNode
	}
}
