package engine

import "time"

// Multipliers applied to the travel-time proxy per time-of-day band,
// following observed urban congestion patterns: weekday rush hours roughly
// halve average speeds, shoulders cost a quarter, nights run faster than the
// daytime baseline.
const (
	rushHourFactor      = 1.6
	shoulderHourFactor  = 1.25
	nightFactor         = 0.85
	weekendMiddayFactor = 1.1
)

// CongestionFactor returns a deterministic travel-time multiplier for the
// given departure time. A zero time means "no time context" and yields 1.
//
// Traffic-adaptive carriers (live rerouting) recover about half of any
// slowdown; speedups are left untouched.
func CongestionFactor(at time.Time, trafficAdaptive bool) float64 {
	if at.IsZero() {
		return 1
	}

	factor := baseCongestion(at)
	if trafficAdaptive && factor > 1 {
		factor = 1 + (factor-1)/2
	}
	return factor
}

func baseCongestion(at time.Time) float64 {
	hour := at.Hour()
	weekday := at.Weekday()

	if weekday == time.Saturday || weekday == time.Sunday {
		switch {
		case hour >= 10 && hour < 14:
			return weekendMiddayFactor
		case hour >= 22 || hour < 6:
			return nightFactor
		default:
			return 1
		}
	}

	switch {
	case (hour >= 8 && hour < 10) || (hour >= 17 && hour < 19):
		return rushHourFactor
	case (hour >= 6 && hour < 8) || (hour >= 19 && hour < 21):
		return shoulderHourFactor
	case hour >= 22 || hour < 6:
		return nightFactor
	default:
		return 1
	}
}
