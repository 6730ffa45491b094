package gridview

// HeaderType selects the header rendering pipeline.
type HeaderType string

const (
	// HeaderStatic renders the header in normal flow; it scrolls away
	// with the body.
	HeaderStatic HeaderType = "static"
	// HeaderFixed keeps the header permanently outside the scroll
	// region.
	HeaderFixed HeaderType = "fixed"
	// HeaderSticky keeps the header in flow until the container scrolls
	// past the engagement threshold, then detaches it.
	HeaderSticky HeaderType = "sticky"
)

func validHeaderType(t HeaderType) bool {
	switch t {
	case HeaderStatic, HeaderFixed, HeaderSticky:
		return true
	}
	return false
}

// HeaderSpec is the canonical header descriptor every downstream consumer
// works with. Loose configuration shapes are collapsed into this form
// exactly once, by NormalizeHeader.
type HeaderSpec struct {
	Type HeaderType

	// Offset is the distance below the viewport top at which a sticky
	// header engages. OffsetFn, when set, takes precedence and is
	// re-invoked on every positioning tick.
	Offset   float64
	OffsetFn func() float64
}

// ResolveOffset returns the engagement offset for this tick. A dynamic
// offset that yields a non-finite number degrades to 0 rather than
// poisoning the position math.
func (h HeaderSpec) ResolveOffset() float64 {
	v := h.Offset
	if h.OffsetFn != nil {
		v = h.OffsetFn()
	}
	if !finite(v) {
		return 0
	}
	return v
}

// NormalizeHeader collapses a loosely-typed header configuration into a
// HeaderSpec. Accepted shapes:
//
//   - a string or HeaderType naming the mode
//   - a number, or a zero-argument func returning one: sticky at that offset
//   - a map with a "type" key and optional "offset" key
//   - an existing HeaderSpec (validated, passed through)
//
// Anything else, including an unknown type name, degrades to a static
// header. The function is total; it never fails.
func NormalizeHeader(input any) HeaderSpec {
	spec := HeaderSpec{Type: HeaderStatic}

	switch v := input.(type) {
	case nil:
		return spec

	case HeaderType:
		spec.Type = v
	case string:
		spec.Type = HeaderType(v)

	case func() float64:
		return HeaderSpec{Type: HeaderSticky, OffsetFn: v}
	case func() int:
		return HeaderSpec{Type: HeaderSticky, OffsetFn: func() float64 { return float64(v()) }}

	case map[string]any:
		t, ok := v["type"].(string)
		if !ok {
			if ht, hok := v["type"].(HeaderType); hok {
				t = string(ht)
			} else {
				return spec
			}
		}
		spec.Type = HeaderType(t)
		if off, present := v["offset"]; present {
			switch o := off.(type) {
			case func() float64:
				spec.OffsetFn = o
			case func() int:
				spec.OffsetFn = func() float64 { return float64(o()) }
			default:
				if f, numeric := toFloat64(o); numeric {
					spec.Offset = f
				}
			}
		}

	case HeaderSpec:
		spec = v
	case *HeaderSpec:
		if v == nil {
			return spec
		}
		spec = *v

	default:
		if f, numeric := toFloat64(v); numeric {
			return HeaderSpec{Type: HeaderSticky, Offset: sanitizeOffset(f)}
		}
		return spec
	}

	if !validHeaderType(spec.Type) {
		spec.Type = HeaderStatic
	}
	if spec.Type == HeaderSticky {
		spec.Offset = sanitizeOffset(spec.Offset)
	}
	return spec
}

func sanitizeOffset(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

// toFloat64 converts common numeric types to float64. The second return
// reports whether the value was numeric at all.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
