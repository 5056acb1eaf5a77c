package analytics

import (
	"sort"
	"time"

	"github.com/hpungsan/skymemo/internal/journal"
)

// Streaks holds the consecutive-day writing streaks. A streak is a maximal
// run of consecutive calendar days each containing at least one entry;
// multiple entries on one day occupy that day once.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreaks derives the current and longest streaks from the snapshot.
// The current streak counts consecutive occupied days back from ref's
// calendar day (UTC); a ref day without an entry means the current streak is
// zero. The longest streak is the maximum run anywhere in history.
func ComputeStreaks(entries []journal.Entry, ref time.Time) Streaks {
	if len(entries) == 0 {
		return Streaks{}
	}

	occupied := make(map[string]bool, len(entries))
	for _, e := range entries {
		occupied[e.Day()] = true
	}

	days := make([]string, 0, len(occupied))
	for d := range occupied {
		days = append(days, d)
	}
	sort.Strings(days)

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse("2006-01-02", days[i-1])
		curr, _ := time.Parse("2006-01-02", days[i])
		if curr.Sub(prev) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	current := 0
	day := time.Date(ref.UTC().Year(), ref.UTC().Month(), ref.UTC().Day(), 0, 0, 0, 0, time.UTC)
	for occupied[day.Format("2006-01-02")] {
		current++
		day = day.AddDate(0, 0, -1)
	}

	return Streaks{Current: current, Longest: longest}
}
