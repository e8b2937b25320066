package beam

import (
	"Nirman/internal/calc/is456"
)

// Deflection is the span/effective-depth check.
type Deflection struct {
	Support        is456.Support `json:"support"`
	BasicRatio     float64       `json:"basic_ratio"`
	Kt             float64       `json:"kt"`
	Kc             float64       `json:"kc"`
	SpanFactor     float64       `json:"span_factor"`
	ActualRatio    float64       `json:"actual_ratio"`
	AllowableRatio float64       `json:"allowable_ratio"`
	Status         is456.Status  `json:"status"`
}

func checkDeflection(span, d float64, support is456.Support, pt, pc float64) Deflection {
	base, _ := is456.BasicSpanDepth(support)
	c := Deflection{
		Support:    support,
		BasicRatio: base,
		Kt:         is456.TensionModification(pt),
		Kc:         is456.CompressionModification(pc),
		SpanFactor: 1,
	}
	if span > is456.LongSpanThreshold && support != is456.Cantilever {
		c.SpanFactor = is456.LongSpanThreshold / span
	}
	c.AllowableRatio = base * c.Kt * c.Kc * c.SpanFactor
	c.ActualRatio = span / d
	c.Status = is456.StatusOK
	if c.ActualRatio > c.AllowableRatio {
		c.Status = is456.StatusFail
	}
	return c
}
