package stops

import "time"

// TimeOfDay classifies a stop time the same way the catalog SQL does:
// hours 0 through 5 inclusive are "Night", everything else "Day".
func TimeOfDay(t time.Time) string {
	if h := t.Hour(); h <= 5 {
		return "Night"
	}
	return "Day"
}

// DurationMinutes maps a stop_duration bucket onto its nominal minute
// value. The numbers are a fixed convention, not a measurement; anything
// unrecognized counts as a long stop.
func DurationMinutes(bucket string) int {
	switch bucket {
	case "<5 min":
		return 5
	case "6-15 min":
		return 10
	case "16-30 min":
		return 23
	default:
		return 45
	}
}
