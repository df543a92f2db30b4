package pgrepo

import "time"

// nullableTime превращает нулевое время в NULL для SQL параметров.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
