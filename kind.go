package symcalc

// kind is the closed tag set identifying a node's operator or leaf
// category. Node behaviour (rewriting, differentiation, attributes,
// printing) dispatches on kind rather than through virtual methods, the
// idiomatic replacement for the source's polymorphic node hierarchy.
type kind uint8

const (
	kindNaN kind = iota
	kindConstant
	kindVariable

	kindAbs
	kindSgn
	kindSqrt
	kindCbrt
	kindExp
	kindExpm1
	kindLog
	kindLog1p
	kindSin
	kindCos
	kindTan
	kindSec
	kindAsin
	kindAcos
	kindAtan
	kindSinh
	kindCosh
	kindTanh
	kindSech
	kindAsinh
	kindAcosh
	kindAtanh
	kindErf
	kindErfc
	kindInvert
	kindNegate
	kindSquare
	kindSoftpp
	kindSpence
	kindXconic
	kindYconic
	kindZconic

	kindAdd
	kindMul
	kindPow
)

func (k kind) isUnary() bool {
	return k >= kindAbs && k <= kindZconic
}

func (k kind) isBinary() bool {
	return k == kindAdd || k == kindMul || k == kindPow
}

func (k kind) isLeaf() bool {
	return k == kindNaN || k == kindConstant || k == kindVariable
}

// easyInvert reports whether wrapping a node of this kind in one more
// Invert is a free structural rewrite (per Laskenta.cpp's easyInvert).
// The Mul algebra's `invert(a)*invert(b) -> invert(a*b)` rule matches on
// kindInvert directly and does not call it.
func (k kind) easyInvert(n *node) bool {
	switch k {
	case kindConstant:
		return n.constVal != 0
	case kindInvert:
		return true
	case kindNegate:
		return n.a.easyNegate()
	default:
		return false
	}
}

// easyNegate is the Negate analogue of easyInvert.
func (k kind) easyNegate(n *node) bool {
	switch k {
	case kindConstant, kindNegate:
		return true
	case kindInvert:
		return n.a.easyInvert()
	default:
		return false
	}
}

func (n *node) easyInvert() bool { return n.kind.easyInvert(n) }
func (n *node) easyNegate() bool { return n.kind.easyNegate(n) }

func (k kind) String() string {
	switch k {
	case kindNaN:
		return "NaN"
	case kindConstant:
		return "constant"
	case kindVariable:
		return "variable"
	case kindAbs:
		return "abs"
	case kindSgn:
		return "sgn"
	case kindSqrt:
		return "sqrt"
	case kindCbrt:
		return "cbrt"
	case kindExp:
		return "exp"
	case kindExpm1:
		return "expm1"
	case kindLog:
		return "log"
	case kindLog1p:
		return "log1p"
	case kindSin:
		return "sin"
	case kindCos:
		return "cos"
	case kindTan:
		return "tan"
	case kindSec:
		return "sec"
	case kindAsin:
		return "asin"
	case kindAcos:
		return "acos"
	case kindAtan:
		return "atan"
	case kindSinh:
		return "sinh"
	case kindCosh:
		return "cosh"
	case kindTanh:
		return "tanh"
	case kindSech:
		return "sech"
	case kindAsinh:
		return "asinh"
	case kindAcosh:
		return "acosh"
	case kindAtanh:
		return "atanh"
	case kindErf:
		return "erf"
	case kindErfc:
		return "erfc"
	case kindInvert:
		return "invert"
	case kindNegate:
		return "negate"
	case kindSquare:
		return "square"
	case kindSoftpp:
		return "softpp"
	case kindSpence:
		return "spence"
	case kindXconic:
		return "xconic"
	case kindYconic:
		return "yconic"
	case kindZconic:
		return "zconic"
	case kindAdd:
		return "add"
	case kindMul:
		return "mul"
	case kindPow:
		return "pow"
	default:
		return "unknown"
	}
}
