package genetic

// ParameterBounds defines min/max for a single decoded parameter
type ParameterBounds struct {
	Min, Max float64
}

// Span returns the width of the interval
func (b ParameterBounds) Span() float64 {
	return b.Max - b.Min
}

// Lerp maps a normalized value in [0, 1] into the interval
func (b ParameterBounds) Lerp(normalized float64) float64 {
	return b.Min + b.Span()*normalized
}

// Normalize maps a value in the interval onto [0, 1], clamping outside values
func (b ParameterBounds) Normalize(v float64) float64 {
	if b.Span() <= 0 {
		return 0
	}
	return (b.Clamp(v) - b.Min) / b.Span()
}

// Contains reports whether v lies within the inclusive interval
func (b ParameterBounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Clamp enforces bounds on v
func (b ParameterBounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	} else if v > b.Max {
		return b.Max
	}
	return v
}
