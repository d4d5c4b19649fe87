package classes

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var clockPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2}) (AM|PM)$`)

// ParseClock converts a 12-hour "HH:MM AM/PM" string into minutes since
// midnight. "12:00 AM" is midnight, "12:00 PM" is noon.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("time %q must be in HH:MM AM/PM format", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, fmt.Errorf("time %q is not a valid clock time", s)
	}

	if hour == 12 {
		hour = 0
	}
	if m[3] == "PM" {
		hour += 12
	}

	return hour*60 + minute, nil
}

// ParseDate checks the calendar-date string.
func ParseDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("date %q must be in YYYY-MM-DD format", s)
	}
	return nil
}

// SlotDuration is the signed length of the window from start to end. A window
// that ends before it starts comes back negative and never passes the
// duration rule.
func SlotDuration(startTime, endTime string) (time.Duration, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	return time.Duration(end-start) * time.Minute, nil
}

// SlotsOverlap reports whether two clock windows on the same date share any
// minutes. Both windows are assumed well-formed.
func SlotsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	as, _ := ParseClock(aStart)
	ae, _ := ParseClock(aEnd)
	bs, _ := ParseClock(bStart)
	be, _ := ParseClock(bEnd)
	return as < be && bs < ae
}
