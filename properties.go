package phosphor

// attachedProperty is an identity-keyed side table of per-widget values.
// The value set belongs to the layout engine, not to the widget type, so a
// widget used under an unrelated layout carries no trace of it.
type attachedProperty struct {
	name    string
	values  map[*Widget]int
	changed func(owner *Widget)
}

// newAttachedProperty creates a side table whose hook runs whenever a
// stored value actually changes.
func newAttachedProperty(name string, changed func(owner *Widget)) *attachedProperty {
	return &attachedProperty{
		name:    name,
		values:  make(map[*Widget]int),
		changed: changed,
	}
}

// get returns the stored value, or zero when unset.
func (p *attachedProperty) get(w *Widget) int {
	return p.values[w]
}

// set coerces and stores a value, firing the change hook on a real change.
func (p *attachedProperty) set(w *Widget, value float64) {
	n := coerceNonNegative(value)
	if n == p.values[w] {
		return
	}
	p.values[w] = n
	if p.changed != nil {
		p.changed(w)
	}
}

// clear drops the stored value without firing the hook.
func (p *attachedProperty) clear(w *Widget) {
	delete(p.values, w)
}

// The two box layout properties. Both default to zero and coerce writes to
// non-negative integers.
var (
	stretchProperty   = newAttachedProperty("stretch", onBoxPropertyChanged)
	sizeBasisProperty = newAttachedProperty("size-basis", onBoxPropertyChanged)
)

// Stretch returns the widget's stretch weight for box layouts.
func Stretch(w *Widget) int {
	return stretchProperty.get(w)
}

// SetStretch sets the widget's stretch weight, coerced to max(0, floor(v)).
func SetStretch(w *Widget, value float64) {
	stretchProperty.set(w, value)
}

// SizeBasis returns the widget's preferred size for box layouts.
func SizeBasis(w *Widget) int {
	return sizeBasisProperty.get(w)
}

// SetSizeBasis sets the widget's preferred size, coerced to
// max(0, floor(v)).
func SetSizeBasis(w *Widget, value float64) {
	sizeBasisProperty.set(w, value)
}

// onBoxPropertyChanged requests a re-fit of the widget's container, but
// only when that container is actually managed by a box layout; under any
// other layout the properties have no meaning.
func onBoxPropertyChanged(w *Widget) {
	if p := w.Parent(); p != nil {
		if _, ok := p.Layout().(*BoxLayout); ok {
			p.Fit()
		}
	}
}

// clearBoxProperties drops a disposed widget's property entries.
func clearBoxProperties(w *Widget) {
	stretchProperty.clear(w)
	sizeBasisProperty.clear(w)
}
