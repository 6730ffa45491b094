package gridview

import "testing"

func TestResolveColumnWidths(t *testing.T) {
	t.Run("FixedWidths", func(t *testing.T) {
		cols := []Column{Col("A").Width(10), Col("B").Width(5)}
		got := resolveColumnWidths(cols, 40, 2)
		if got[0] != 10 || got[1] != 5 {
			t.Errorf("expected [10 5], got %v", got)
		}
	})

	t.Run("FlexSplitsLeftover", func(t *testing.T) {
		cols := []Column{Col("A").Width(10), Col("B"), Col("C")}
		got := resolveColumnWidths(cols, 40, 2)
		// content = 40 - 4 = 36; leftover = 26 split evenly.
		if got[0] != 10 || got[1] != 13 || got[2] != 13 {
			t.Errorf("expected [10 13 13], got %v", got)
		}
	})

	t.Run("FlexWeights", func(t *testing.T) {
		cols := []Column{Col("A").Flex(3), Col("B").Flex(1)}
		got := resolveColumnWidths(cols, 42, 2)
		// content = 40; 3:1 split.
		if got[0] != 30 || got[1] != 10 {
			t.Errorf("expected [30 10], got %v", got)
		}
	})

	t.Run("IntegerLeftoverGoesToLastFlex", func(t *testing.T) {
		cols := []Column{Col("A"), Col("B"), Col("C")}
		got := resolveColumnWidths(cols, 44, 2)
		// content = 40; 13+13+13 leaves one cell for the last column.
		if got[0] != 13 || got[1] != 13 || got[2] != 14 {
			t.Errorf("expected [13 13 14], got %v", got)
		}
		if total := got[0] + got[1] + got[2]; total != 40 {
			t.Errorf("expected the full content width spent, got %d", total)
		}
	})

	t.Run("PctOfContent", func(t *testing.T) {
		cols := []Column{Col("A").Pct(0.25), Col("B")}
		got := resolveColumnWidths(cols, 42, 2)
		// content = 40; A gets 10, B the remaining 30.
		if got[0] != 10 || got[1] != 30 {
			t.Errorf("expected [10 30], got %v", got)
		}
	})

	t.Run("EveryColumnAtLeastOne", func(t *testing.T) {
		cols := []Column{Col("A").Width(50), Col("B"), Col("C")}
		got := resolveColumnWidths(cols, 20, 2)
		for i, w := range got {
			if w < 1 {
				t.Errorf("column %d: expected width >= 1, got %d", i, w)
			}
		}
	})

	t.Run("NoColumns", func(t *testing.T) {
		if got := resolveColumnWidths(nil, 80, 2); len(got) != 0 {
			t.Errorf("expected no widths, got %v", got)
		}
	})

	t.Run("NaturalWidthIncludesGaps", func(t *testing.T) {
		if got := columnsNaturalWidth([]int{10, 5, 5}, 2); got != 24 {
			t.Errorf("expected 24, got %d", got)
		}
		if got := columnsNaturalWidth(nil, 2); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}

func TestPadCell(t *testing.T) {
	t.Run("PadsToWidth", func(t *testing.T) {
		if got := padCell("ab", 5, AlignLeft); got != "ab   " {
			t.Errorf("expected %q, got %q", "ab   ", got)
		}
		if got := padCell("ab", 5, AlignRight); got != "   ab" {
			t.Errorf("expected %q, got %q", "   ab", got)
		}
		if got := padCell("ab", 6, AlignCenter); got != "  ab  " {
			t.Errorf("expected %q, got %q", "  ab  ", got)
		}
	})

	t.Run("TruncatesWithEllipsis", func(t *testing.T) {
		if got := padCell("abcdefgh", 5, AlignLeft); got != "abcd…" {
			t.Errorf("expected %q, got %q", "abcd…", got)
		}
	})

	t.Run("WideRunes", func(t *testing.T) {
		// Each CJK rune occupies two cells.
		if got := padCell("日本語", 6, AlignLeft); got != "日本語" {
			t.Errorf("expected %q, got %q", "日本語", got)
		}
		// Truncation cannot split a double-width rune, so the cell comes
		// back one short and padding tops it up.
		got := padCell("日本語です", 6, AlignLeft)
		if got != "日本… " {
			t.Errorf("expected %q, got %q", "日本… ", got)
		}
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		if got := padCell("abc", 0, AlignLeft); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})
}

func TestJoinCells(t *testing.T) {
	cols := []Column{Col("A"), Col("B").Align(AlignRight)}
	widths := []int{4, 4}

	t.Run("AlignmentPerColumn", func(t *testing.T) {
		got := joinCells(Row{"ab", "cd"}, cols, widths, 2)
		if got != "ab      cd" {
			t.Errorf("expected %q, got %q", "ab      cd", got)
		}
	})

	t.Run("RaggedRowsPadBlank", func(t *testing.T) {
		got := joinCells(Row{"ab"}, cols, widths, 2)
		if got != "ab        " {
			t.Errorf("expected %q, got %q", "ab        ", got)
		}
	})

	t.Run("ExtraCellsIgnored", func(t *testing.T) {
		got := joinCells(Row{"ab", "cd", "zz"}, cols, widths, 2)
		if got != "ab      cd" {
			t.Errorf("expected %q, got %q", "ab      cd", got)
		}
	})
}
