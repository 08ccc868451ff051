package ranking

import "time"

const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
	SeasonWinter = "winter"
)

// SeasonFor maps the month of t onto a northern-hemisphere season.
func SeasonFor(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// UpcomingOccasions returns a small fixed list of occasions worth boosting in
// the month of t. It is a coarse approximation, not a holiday calendar.
func UpcomingOccasions(t time.Time) []string {
	switch t.Month() {
	case time.January:
		return []string{"new year"}
	case time.February:
		return []string{"valentine"}
	case time.March:
		return []string{"mother's day"}
	case time.April:
		// TODO: derive Ramadan and Eid from the Hijri calendar instead of the year heuristic.
		if t.Year()%3 == 0 {
			return []string{"ramadan", "eid"}
		}
		return nil
	case time.December:
		return []string{"christmas"}
	}
	return nil
}
