package booking

import "time"

// calendarDate truncates a timestamp to the calendar date it was written as,
// anchored at UTC midnight so date arithmetic never crosses a DST boundary.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StayNights returns the billable nights for a date range. Only the calendar
// dates matter: times of day are discarded before differencing, and a
// same-day stay still bills one night. Ends on an earlier date than starts is
// a validation error.
func StayNights(starts, ends time.Time) (int, error) {
	s, e := calendarDate(starts), calendarDate(ends)
	if e.Before(s) {
		return 0, NewError(KindValidation, "booking cannot end before it starts")
	}
	nights := int(e.Sub(s) / (24 * time.Hour))
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

// StayAmount is the total charge for a stay, in the smallest currency unit.
func StayAmount(nightlyPrice, nights int) int {
	return nightlyPrice * nights
}
