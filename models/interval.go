package models

import (
	"fmt"
	"time"
)

// TimeInterval is a half-open [start, end) time window. Build one through
// NewTimeInterval so the start < end invariant holds; treat values as immutable.
type TimeInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// NewTimeInterval validates and constructs a TimeInterval.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, &InvalidIntervalError{
			Reason: fmt.Sprintf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		}
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect. Intervals that
// merely touch at a boundary do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Duration returns the interval length.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsZero reports whether the interval is the zero value.
func (iv TimeInterval) IsZero() bool {
	return iv.Start.IsZero() && iv.End.IsZero()
}

// InvalidIntervalError indicates a malformed interval or non-positive duration
// supplied by a caller. It is never corrected silently.
type InvalidIntervalError struct {
	Reason string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: %s", e.Reason)
}
