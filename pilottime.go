package prc

import "time"

// pilotEpochOffset is the number of seconds between the Mac epoch
// (1904-01-01 UTC) used by Pilot timestamps and the Unix epoch.
const pilotEpochOffset = 2082844800

// PilotTime converts a Pilot timestamp to UTC time. A zero timestamp means
// unset and converts to the zero time.
//
// Timestamps before 1970 come out negative on the Unix scale; time.Unix
// handles that.
func PilotTime(secs uint32) time.Time {
	if secs == 0 {
		return time.Time{}
	}
	return time.Unix(int64(secs)-pilotEpochOffset, 0).UTC()
}
