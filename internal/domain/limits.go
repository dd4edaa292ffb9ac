package domain

import "time"

// Window is one quota window. A nil field means the value was not reported or
// failed normalization; it never defaults to zero.
type Window struct {
	Utilization *int
	ResetsAt    *time.Time
}

func Ptr[T any](v T) *T {
	return &v
}
