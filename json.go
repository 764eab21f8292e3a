package gopoly

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// JSON Serialization
// ============================================================

func (m Monomial) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "monomial", "coefficient": m.coefficient, "exponent": m.exponent}
}

func (p *Polynomial) toJSON() map[string]interface{} {
	terms := make([]map[string]interface{}, 0, p.Len())
	for _, t := range p.view() {
		terms = append(terms, map[string]interface{}{"coefficient": t.coefficient, "exponent": t.exponent})
	}
	return map[string]interface{}{"type": "poly", "terms": terms}
}

func (m Monomial) MarshalJSON() ([]byte, error)   { return json.Marshal(m.toJSON()) }
func (p Polynomial) MarshalJSON() ([]byte, error) { return json.Marshal(p.toJSON()) }

func (m *Monomial) UnmarshalJSON(b []byte) error {
	var data map[string]interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	out, err := MonomialFromJSON(data)
	if err != nil {
		return err
	}
	*m = out
	return nil
}

func (p *Polynomial) UnmarshalJSON(b []byte) error {
	var data map[string]interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	out, err := FromJSON(data)
	if err != nil {
		return err
	}
	p.terms = out.terms
	return nil
}

// ToJSON encodes p as {"type":"poly","terms":[{"coefficient":c,"exponent":e},...]}.
func ToJSON(p *Polynomial) (string, error) {
	b, err := json.Marshal(p.toJSON())
	return string(b), err
}

// MonomialFromJSON decodes {"coefficient":c,"exponent":e}. The "type" field
// is optional; when present it must be "monomial".
func MonomialFromJSON(data map[string]interface{}) (Monomial, error) {
	if data == nil {
		return Monomial{}, fmt.Errorf("monomial must be an object")
	}
	if typ, ok := data["type"]; ok && typ != "monomial" {
		return Monomial{}, fmt.Errorf("expected type 'monomial', got %v", typ)
	}
	cAny, ok := data["coefficient"]
	if !ok {
		return Monomial{}, fmt.Errorf("monomial: missing 'coefficient'")
	}
	c, ok := cAny.(float64)
	if !ok {
		return Monomial{}, fmt.Errorf("monomial: 'coefficient' must be a number")
	}
	e := 0
	if eAny, ok := data["exponent"]; ok {
		n, ok := eAny.(float64)
		if !ok || n != math.Trunc(n) {
			return Monomial{}, fmt.Errorf("monomial: 'exponent' must be an integer")
		}
		if n < 0 {
			return Monomial{}, fmt.Errorf("monomial: exponent %g: %w", n, ErrInvalidExponent)
		}
		if n > MaxExponent {
			return Monomial{}, fmt.Errorf("monomial: exponent %g: %w", n, ErrExponentRange)
		}
		e = int(n)
	}
	return NewMonomial(c, e)
}

// FromJSON decodes a polynomial object. A bare monomial object is accepted
// and yields a single-term polynomial. Terms are normalized through Insert,
// so unsorted or repeated exponents are fine.
func FromJSON(data map[string]interface{}) (*Polynomial, error) {
	if data == nil {
		return nil, fmt.Errorf("polynomial must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	switch typ {
	case "monomial":
		m, err := MonomialFromJSON(data)
		if err != nil {
			return nil, err
		}
		return FromTerms(m), nil

	case "poly":
		v, ok := data["terms"]
		if !ok {
			return nil, fmt.Errorf("poly: missing 'terms'")
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("poly: 'terms' must be an array")
		}
		p := New()
		for i, it := range raw {
			obj, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("poly: 'terms'[%d] must be an object", i)
			}
			m, err := MonomialFromJSON(obj)
			if err != nil {
				return nil, fmt.Errorf("poly: terms[%d]: %w", i, err)
			}
			p.Insert(m)
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown polynomial type: %s", typ)
}
