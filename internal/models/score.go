package models

// HealthScore is the composite 0-100 score with its sub-score breakdown and
// human-readable feedback. Layers never mutate a score in place; each layer
// returns a new instance with an updated total and appended feedback.
type HealthScore struct {
	Total     float64            `bson:"total" json:"total"`
	Breakdown map[string]float64 `bson:"breakdown" json:"breakdown"`
	Feedback  []string           `bson:"feedback" json:"feedback"`
}

// WithLayer returns a copy of the score with a new clamped total, an extra
// breakdown entry and additional feedback lines.
func (h HealthScore) WithLayer(total float64, name string, sub float64, feedback []string) HealthScore {
	breakdown := make(map[string]float64, len(h.Breakdown)+1)
	for k, v := range h.Breakdown {
		breakdown[k] = v
	}
	breakdown[name] = sub

	combined := make([]string, 0, len(h.Feedback)+len(feedback))
	combined = append(combined, h.Feedback...)
	combined = append(combined, feedback...)

	return HealthScore{
		Total:     Clamp(total, 0, 100),
		Breakdown: breakdown,
		Feedback:  combined,
	}
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
