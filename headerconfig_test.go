package gridview

import (
	"math"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	t.Run("TypeNames", func(t *testing.T) {
		cases := map[string]HeaderType{
			"static": HeaderStatic,
			"fixed":  HeaderFixed,
			"sticky": HeaderSticky,
		}
		for in, want := range cases {
			spec := NormalizeHeader(in)
			if spec.Type != want {
				t.Errorf("NormalizeHeader(%q): expected %q, got %q", in, want, spec.Type)
			}
		}
	})

	t.Run("UnknownNameDegradesToStatic", func(t *testing.T) {
		for _, in := range []any{"floating", "STICKY", "", "fixed "} {
			spec := NormalizeHeader(in)
			if spec.Type != HeaderStatic {
				t.Errorf("NormalizeHeader(%v): expected static, got %q", in, spec.Type)
			}
		}
	})

	t.Run("HeaderTypeValue", func(t *testing.T) {
		if spec := NormalizeHeader(HeaderFixed); spec.Type != HeaderFixed {
			t.Errorf("expected fixed, got %q", spec.Type)
		}
		if spec := NormalizeHeader(HeaderType("wat")); spec.Type != HeaderStatic {
			t.Errorf("expected static for unknown HeaderType, got %q", spec.Type)
		}
	})

	t.Run("NumbersMeanSticky", func(t *testing.T) {
		cases := []struct {
			in   any
			want float64
		}{
			{42, 42},
			{12.5, 12.5},
			{int64(7), 7},
			{uint16(3), 3},
			{float32(1.5), 1.5},
			{0, 0},
			{-10, -10},
		}
		for _, c := range cases {
			spec := NormalizeHeader(c.in)
			if spec.Type != HeaderSticky {
				t.Errorf("NormalizeHeader(%v): expected sticky, got %q", c.in, spec.Type)
			}
			if got := spec.ResolveOffset(); got != c.want {
				t.Errorf("NormalizeHeader(%v): expected offset %v, got %v", c.in, c.want, got)
			}
		}
	})

	t.Run("NonFiniteNumberDefaultsToZero", func(t *testing.T) {
		for _, in := range []any{math.NaN(), math.Inf(1), math.Inf(-1)} {
			spec := NormalizeHeader(in)
			if spec.Type != HeaderSticky {
				t.Errorf("expected sticky, got %q", spec.Type)
			}
			if got := spec.ResolveOffset(); got != 0 {
				t.Errorf("expected offset 0, got %v", got)
			}
		}
	})

	t.Run("FuncMeansSticky", func(t *testing.T) {
		spec := NormalizeHeader(func() float64 { return 24 })
		if spec.Type != HeaderSticky {
			t.Errorf("expected sticky, got %q", spec.Type)
		}
		if got := spec.ResolveOffset(); got != 24 {
			t.Errorf("expected offset 24, got %v", got)
		}

		spec = NormalizeHeader(func() int { return 8 })
		if got := spec.ResolveOffset(); got != 8 {
			t.Errorf("expected offset 8, got %v", got)
		}
	})

	t.Run("FuncResolvedEveryCall", func(t *testing.T) {
		n := 0.0
		spec := NormalizeHeader(func() float64 { n += 10; return n })
		if got := spec.ResolveOffset(); got != 10 {
			t.Errorf("expected 10, got %v", got)
		}
		if got := spec.ResolveOffset(); got != 20 {
			t.Errorf("expected 20 on second resolve, got %v", got)
		}
	})

	t.Run("FuncYieldingNonFiniteDefaultsToZero", func(t *testing.T) {
		spec := NormalizeHeader(func() float64 { return math.NaN() })
		if got := spec.ResolveOffset(); got != 0 {
			t.Errorf("expected offset 0, got %v", got)
		}
	})

	t.Run("MapShapes", func(t *testing.T) {
		spec := NormalizeHeader(map[string]any{"type": "fixed"})
		if spec.Type != HeaderFixed {
			t.Errorf("expected fixed, got %q", spec.Type)
		}

		spec = NormalizeHeader(map[string]any{"type": "sticky", "offset": 30})
		if spec.Type != HeaderSticky || spec.ResolveOffset() != 30 {
			t.Errorf("expected sticky offset 30, got %q offset %v", spec.Type, spec.ResolveOffset())
		}

		spec = NormalizeHeader(map[string]any{"type": "sticky", "offset": func() float64 { return 5 }})
		if got := spec.ResolveOffset(); got != 5 {
			t.Errorf("expected offset 5 via func, got %v", got)
		}

		// Non-numeric offsets are ignored, not an error.
		spec = NormalizeHeader(map[string]any{"type": "sticky", "offset": "tall"})
		if spec.Type != HeaderSticky || spec.ResolveOffset() != 0 {
			t.Errorf("expected sticky offset 0, got %q offset %v", spec.Type, spec.ResolveOffset())
		}

		spec = NormalizeHeader(map[string]any{"type": "bouncy"})
		if spec.Type != HeaderStatic {
			t.Errorf("expected static for unknown map type, got %q", spec.Type)
		}

		spec = NormalizeHeader(map[string]any{"offset": 12})
		if spec.Type != HeaderStatic {
			t.Errorf("expected static for map without type, got %q", spec.Type)
		}
	})

	t.Run("SpecPassthrough", func(t *testing.T) {
		in := HeaderSpec{Type: HeaderSticky, Offset: 16}
		spec := NormalizeHeader(in)
		if spec.Type != HeaderSticky || spec.Offset != 16 {
			t.Errorf("expected passthrough, got %+v", spec)
		}

		// A hand-built spec with a bogus type is still validated.
		spec = NormalizeHeader(HeaderSpec{Type: "hovering"})
		if spec.Type != HeaderStatic {
			t.Errorf("expected static, got %q", spec.Type)
		}

		spec = NormalizeHeader((*HeaderSpec)(nil))
		if spec.Type != HeaderStatic {
			t.Errorf("expected static for nil spec pointer, got %q", spec.Type)
		}
	})

	t.Run("GarbageDegradesToStatic", func(t *testing.T) {
		for _, in := range []any{nil, true, struct{ X int }{1}, []string{"sticky"}, map[int]int{1: 2}} {
			spec := NormalizeHeader(in)
			if spec.Type != HeaderStatic {
				t.Errorf("NormalizeHeader(%v): expected static, got %q", in, spec.Type)
			}
			if spec.Offset != 0 || spec.OffsetFn != nil {
				t.Errorf("NormalizeHeader(%v): expected zero offset, got %+v", in, spec)
			}
		}
	})
}
