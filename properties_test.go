package phosphor

import (
	"testing"

	"github.com/marekleszczynski/phosphor/pkg/messaging"
)

func TestStretchAndSizeBasis_DefaultZero(t *testing.T) {
	w := NewWidget()
	if Stretch(w) != 0 || SizeBasis(w) != 0 {
		t.Errorf("defaults = %d/%d, want 0/0", Stretch(w), SizeBasis(w))
	}
}

func TestProperties_CoerceToNonNegativeIntegers(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want int
	}{
		"negative":           {-3.7, 0},
		"fractional":         {5.9, 5},
		"exact":              {7, 7},
		"small negative":     {-0.1, 0},
		"fractional below 1": {0.9, 0},
		"negative whole":     {-4, 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWidget()
			SetStretch(w, tt.in)
			if got := Stretch(w); got != tt.want {
				t.Errorf("Stretch after SetStretch(%v) = %d, want %d", tt.in, got, tt.want)
			}
			SetSizeBasis(w, tt.in)
			if got := SizeBasis(w); got != tt.want {
				t.Errorf("SizeBasis after SetSizeBasis(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestProperties_ValuesAreIndependentPerWidget(t *testing.T) {
	a, b := NewWidget(), NewWidget()
	SetStretch(a, 3)
	if Stretch(b) != 0 {
		t.Error("setting one widget's stretch leaked to another")
	}
}

func TestProperties_ChangeRequestsFitUnderBoxLayout(t *testing.T) {
	messaging.Flush()
	panel := NewBoxPanel()
	w := NewWidget()
	panel.AddWidget(w)
	messaging.Flush()

	SetStretch(w, 2)
	if !messaging.HasPending(panel.Widget, KindFitRequest) {
		t.Error("stretch change under a box layout did not request a fit")
	}
	messaging.Flush()

	SetStretch(w, 2) // same value
	if messaging.HasPending(panel.Widget, KindFitRequest) {
		t.Error("setting the current stretch requested a fit")
	}

	// Coercion collapses distinct inputs into the same stored value.
	SetSizeBasis(w, 6.2)
	messaging.Flush()
	SetSizeBasis(w, 6.8)
	if messaging.HasPending(panel.Widget, KindFitRequest) {
		t.Error("a write that coerced to the stored value requested a fit")
	}
	messaging.Flush()
}

func TestProperties_NoFitUnderOtherLayouts(t *testing.T) {
	messaging.Flush()
	panel := NewPanel()
	w := NewWidget()
	panel.AddWidget(w)
	messaging.Flush()

	SetStretch(w, 2)
	if messaging.HasPending(panel.Widget, KindFitRequest) {
		t.Error("stretch change under a plain panel layout requested a fit")
	}
}

func TestProperties_ClearedOnDispose(t *testing.T) {
	w := NewWidget()
	SetStretch(w, 5)
	SetSizeBasis(w, 9)
	w.Dispose()

	if _, ok := stretchProperty.values[w]; ok {
		t.Error("disposed widget still has a stretch entry")
	}
	if _, ok := sizeBasisProperty.values[w]; ok {
		t.Error("disposed widget still has a size basis entry")
	}
}
