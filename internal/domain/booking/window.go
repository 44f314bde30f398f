package booking

import (
	"fmt"
	"time"
)

// Physical plausibility bounds for a single sit. These are not club
// policy: no hunt is shorter than an hour or longer than half a day.
const (
	MinWindow = time.Hour
	MaxWindow = 12 * time.Hour
)

// ValidateWindow checks the proposed window for basic sanity against
// now. It returns nil when the window is acceptable. Both bounds are
// inclusive: exactly one hour and exactly twelve hours pass.
func ValidateWindow(start, end, now time.Time) *Violation {
	if start.Before(now) {
		return &Violation{
			Kind:    KindInPast,
			Message: "booking cannot start in the past",
		}
	}
	if !end.After(start) {
		return &Violation{
			Kind:    KindInvertedOrZero,
			Message: "booking must end after it starts",
		}
	}
	d := end.Sub(start)
	if d < MinWindow {
		return &Violation{
			Kind:    KindTooShort,
			Message: fmt.Sprintf("booking must last at least %s", MinWindow),
		}
	}
	if d > MaxWindow {
		return &Violation{
			Kind:    KindTooLong,
			Message: fmt.Sprintf("booking cannot last longer than %s", MaxWindow),
		}
	}
	return nil
}
