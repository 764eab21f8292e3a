package gopoly

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall dispatches a tool request. Failures are reported in
// ToolResponse.Error, never as a panic.
func HandleToolCall(req ToolRequest) ToolResponse {
	getPoly := func(key string) (*Polynomial, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return FromJSON(val)
	}
	getMonomial := func(key string) (Monomial, error) {
		v, ok := req.Params[key]
		if !ok {
			return Monomial{}, fmt.Errorf("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return Monomial{}, fmt.Errorf("invalid type for param %s", key)
		}
		return MonomialFromJSON(val)
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return f, nil
	}
	polyResponse := func(p *Polynomial) ToolResponse {
		return ToolResponse{Result: p.toJSON(), String: p.String(), LaTeX: p.LaTeX()}
	}
	binary := func(op func(a, b *Polynomial) *Polynomial) ToolResponse {
		a, err := getPoly("a")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		b, err := getPoly("b")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return polyResponse(op(a, b))
	}
	unary := func(fn func(p *Polynomial) ToolResponse) ToolResponse {
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return fn(p)
	}

	switch req.Tool {
	case "add":
		return binary((*Polynomial).Add)
	case "subtract":
		return binary((*Polynomial).Subtract)
	case "multiply":
		a, err := getPoly("a")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		b, err := getPoly("b")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		if err := CheckProduct(a, b); err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return polyResponse(a.Multiply(b))

	case "evaluate":
		return unary(func(p *Polynomial) ToolResponse {
			x, err := getNumber("x")
			if err != nil {
				return ToolResponse{Error: err.Error()}
			}
			v := p.Evaluate(x)
			return ToolResponse{Result: v, String: formatCoefficient(v)}
		})
	case "render":
		return unary(polyResponse)
	case "to_latex":
		return unary(func(p *Polynomial) ToolResponse { return ToolResponse{LaTeX: p.LaTeX()} })
	case "degree":
		return unary(func(p *Polynomial) ToolResponse {
			return ToolResponse{Result: p.Degree(), String: fmt.Sprint(p.Degree())}
		})
	case "coefficients":
		return unary(func(p *Polynomial) ToolResponse { return ToolResponse{Result: p.Coefficients()} })
	case "exponents":
		return unary(func(p *Polynomial) ToolResponse { return ToolResponse{Result: p.Exponents()} })

	case "monomial_divide":
		a, err := getMonomial("a")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		b, err := getMonomial("b")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		q, err := a.Divide(b)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: q.toJSON(), String: q.String(), LaTeX: q.LaTeX()}

	case "mcp_spec":
		return ToolResponse{String: MCPToolSpec()}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("add", "Sum of two polynomials a + b", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("subtract", "Difference of two polynomials a - b", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("multiply", "Product of two polynomials a * b", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("evaluate", "Evaluate poly at x", []string{"poly", "x"}, map[string]string{"poly": "object", "x": "number"}),
		ts("render", "Normalize and render poly", []string{"poly"}, map[string]string{"poly": "object"}),
		ts("to_latex", "Convert poly to LaTeX", []string{"poly"}, map[string]string{"poly": "object"}),
		ts("degree", "Exponent of the leading term", []string{"poly"}, map[string]string{"poly": "object"}),
		ts("coefficients", "Coefficients in descending exponent order", []string{"poly"}, map[string]string{"poly": "object"}),
		ts("exponents", "Exponents in descending order", []string{"poly"}, map[string]string{"poly": "object"}),
		ts("monomial_divide", "Divide monomial a by monomial b", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

// ToolNames lists the tools MCPToolSpec advertises, in schema order.
func ToolNames() []string {
	return []string{"add", "subtract", "multiply", "evaluate", "render", "to_latex",
		"degree", "coefficients", "exponents", "monomial_divide", "mcp_spec"}
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
