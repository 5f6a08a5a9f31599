package symcalc

import "math"

// evaluate computes n's value under the Context's current variable
// bindings, memoising at every node (spec.md §4.4): a node's cached
// value is reused whenever its evalEpoch still matches dirtyLevel, so
// evaluating one expression pre-populates shared subexpressions for
// every other expression that references them — the stated reason for
// hash-consing in the first place.
func (c *Context) evaluate(n *node) float64 {
	if n.evalEpoch == c.dirtyLevel {
		return n.evalVal
	}
	var v float64
	switch n.kind {
	case kindNaN:
		v = math.NaN()
	case kindConstant:
		v = n.constVal
	case kindVariable:
		v = n.v.value
	case kindAdd:
		v = c.evaluate(n.a) + c.evaluate(n.b)
	case kindMul:
		// The MUL zero short-circuit (spec.md §4.4): if the left
		// operand is exactly 0, the right is never evaluated and the
		// result is 0 even if the right would otherwise yield NaN or
		// Inf. This lets callers prune undefined DAG branches at
		// runtime by gating them behind a variable set to 0.
		lv := c.evaluate(n.a)
		if lv == 0 {
			v = 0
		} else {
			rv := c.evaluate(n.b)
			if rv == 0 {
				v = 0
			} else {
				v = lv * rv
			}
		}
	case kindPow:
		v = math.Pow(c.evaluate(n.a), c.evaluate(n.b))
	default:
		v = evalUnaryNumeric(n.kind, c.evaluate(n.a))
	}
	n.evalVal = v
	n.evalEpoch = c.dirtyLevel
	return v
}
