// Package mcptool exposes the symcalc engine as a small set of
// JSON-in/JSON-out tool calls, in the shape an agent framework's MCP
// client expects: one request envelope naming a tool and its
// parameters, one response envelope carrying either a result or an
// error.
package mcptool

import (
	"fmt"

	calc "github.com/cortenio/symcalc"
)

// ToolRequest names the tool to invoke and its parameters.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries a tool call's outcome. On failure only Error is
// set. On success evaluate and derive set Result and String, guaranteed
// sets Result, and simplify and schema set only String.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// exprNode is the wire form of a scalar expression tree. A VARIABLE
// leaf carries the value it should hold for this call, since each
// request evaluates against a fresh Context (spec.md's Context is not
// otherwise addressable from outside a single process).
type exprNode struct {
	Type  string    `json:"type"`
	Value float64   `json:"value,omitempty"`
	Name  string    `json:"name,omitempty"`
	Op    string    `json:"op,omitempty"`
	A     *exprNode `json:"a,omitempty"`
	B     *exprNode `json:"b,omitempty"`
}

var unaryOps = map[string]func(calc.Expression) calc.Expression{
	"abs": calc.Abs, "sgn": calc.Sgn, "sqrt": calc.Sqrt, "cbrt": calc.Cbrt,
	"exp": calc.Exp, "expm1": calc.Expm1, "log": calc.Log, "log1p": calc.Log1p,
	"sin": calc.Sin, "cos": calc.Cos, "tan": calc.Tan, "sec": calc.Sec,
	"asin": calc.Asin, "acos": calc.Acos, "atan": calc.Atan,
	"sinh": calc.Sinh, "cosh": calc.Cosh, "tanh": calc.Tanh, "sech": calc.Sech,
	"asinh": calc.Asinh, "acosh": calc.Acosh, "atanh": calc.Atanh,
	"erf": calc.Erf, "erfc": calc.Erfc, "square": calc.Square,
	"li2": calc.Li2, "spp": calc.Spp, "neg": calc.Neg,
}

// buildExpr recursively lowers the wire tree into an Expression in ctx,
// recording each named variable it instantiates so callers can later
// differentiate with respect to it by name.
func buildExpr(ctx *calc.Context, n *exprNode, vars map[string]calc.Variable) (calc.Expression, error) {
	if n == nil {
		return calc.Expression{}, fmt.Errorf("mcptool: nil expression node")
	}
	switch n.Type {
	case "const":
		return ctx.ConstExpr(n.Value), nil
	case "var":
		if n.Name == "" {
			return calc.Expression{}, fmt.Errorf("mcptool: variable node missing name")
		}
		v, ok := vars[n.Name]
		if !ok {
			v = ctx.NewVariable(n.Name, n.Value)
			vars[n.Name] = v
		}
		return v.Expr(), nil
	case "add", "mul", "pow":
		a, err := buildExpr(ctx, n.A, vars)
		if err != nil {
			return calc.Expression{}, err
		}
		b, err := buildExpr(ctx, n.B, vars)
		if err != nil {
			return calc.Expression{}, err
		}
		switch n.Type {
		case "add":
			return calc.Add(a, b), nil
		case "mul":
			return calc.Mul(a, b), nil
		default:
			return calc.Pow(a, b), nil
		}
	case "unary":
		f, ok := unaryOps[n.Op]
		if !ok {
			return calc.Expression{}, fmt.Errorf("mcptool: unknown unary op %q", n.Op)
		}
		a, err := buildExpr(ctx, n.A, vars)
		if err != nil {
			return calc.Expression{}, err
		}
		return f(a), nil
	default:
		return calc.Expression{}, fmt.Errorf("mcptool: unknown node type %q", n.Type)
	}
}

func decodeExprParam(params map[string]interface{}, key string) (*exprNode, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("missing param: %s", key)
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("param %s must be an expression object", key)
	}
	return decodeExprMap(m)
}

func decodeExprMap(m map[string]interface{}) (*exprNode, error) {
	n := &exprNode{}
	if t, ok := m["type"].(string); ok {
		n.Type = t
	}
	if v, ok := m["value"].(float64); ok {
		n.Value = v
	}
	if name, ok := m["name"].(string); ok {
		n.Name = name
	}
	if op, ok := m["op"].(string); ok {
		n.Op = op
	}
	if a, ok := m["a"].(map[string]interface{}); ok {
		child, err := decodeExprMap(a)
		if err != nil {
			return nil, err
		}
		n.A = child
	}
	if b, ok := m["b"].(map[string]interface{}); ok {
		child, err := decodeExprMap(b)
		if err != nil {
			return nil, err
		}
		n.B = child
	}
	return n, nil
}

func getString(params map[string]interface{}, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing param: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("param %s must be a string", key)
	}
	return s, nil
}

// HandleToolCall dispatches req to the matching tool and returns its
// response. Every tool call runs against a fresh Context, so results
// depend only on the values embedded in the request's expression tree.
func HandleToolCall(req ToolRequest) ToolResponse {
	ctx := calc.NewContext()
	vars := map[string]calc.Variable{}

	switch req.Tool {
	case "evaluate":
		n, err := decodeExprParam(req.Params, "expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		e, err := buildExpr(ctx, n, vars)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: e.Evaluate(), String: e.String()}

	case "derive":
		n, err := decodeExprParam(req.Params, "expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		wrt, err := getString(req.Params, "with_respect_to")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		e, err := buildExpr(ctx, n, vars)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, ok := vars[wrt]
		if !ok {
			return ToolResponse{Error: fmt.Sprintf("mcptool: no variable named %q in expression", wrt)}
		}
		d := e.Derive(v)
		return ToolResponse{Result: d.Evaluate(), String: d.String()}

	case "simplify":
		n, err := decodeExprParam(req.Params, "expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		e, err := buildExpr(ctx, n, vars)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{String: e.String()}

	case "guaranteed":
		n, err := decodeExprParam(req.Params, "expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		attrName, err := getString(req.Params, "attribute")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		attr, ok := attributeByName[attrName]
		if !ok {
			return ToolResponse{Error: fmt.Sprintf("mcptool: unknown attribute %q", attrName)}
		}
		e, err := buildExpr(ctx, n, vars)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: e.Guaranteed(attr)}

	case "schema":
		return ToolResponse{String: Schema()}

	default:
		return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
	}
}

var attributeByName = map[string]calc.Attribute{
	"defined":           calc.Defined,
	"nonzero":           calc.Nonzero,
	"positive":          calc.Positive,
	"negative":          calc.Negative,
	"nonpositive":       calc.Nonpositive,
	"nonnegative":       calc.Nonnegative,
	"unitrange":         calc.Unitrange,
	"antiunitrange":     calc.Antiunitrange,
	"openunitrange":     calc.Openunitrange,
	"antiopenunitrange": calc.Antiopenunitrange,
	"continuous":        calc.Continuous,
	"increasing":        calc.Increasing,
	"decreasing":        calc.Decreasing,
	"nonincreasing":     calc.Nonincreasing,
	"nondecreasing":     calc.Nondecreasing,
	"boundedabove":      calc.Boundedabove,
	"boundedbelow":      calc.Boundedbelow,
}

// Schema returns a human-readable description of the tools this
// package exposes, for agent registration.
func Schema() string {
	return `{"tools":[` +
		`{"name":"evaluate","params":["expr"]},` +
		`{"name":"derive","params":["expr","with_respect_to"]},` +
		`{"name":"simplify","params":["expr"]},` +
		`{"name":"guaranteed","params":["expr","attribute"]}` +
		`]}`
}
