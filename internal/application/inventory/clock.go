package inventory

import "time"

// dateIn devuelve la fecha calendario de t en loc, como medianoche UTC (columna DATE).
func dateIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
}
