package analytics

import "github.com/hpungsan/skymemo/internal/journal"

// DefaultTrendWindow is the moving-average window, in days of data points,
// used when the caller does not choose one.
const DefaultTrendWindow = 7

// TrendPoint is one day on the word-count trend: the day's total word count
// and the trailing moving average ending on that day.
type TrendPoint struct {
	Date      string  `json:"date"` // 2006-01-02, UTC
	Words     int     `json:"words"`
	MovingAvg float64 `json:"moving_avg"`
}

// WordCountTrend aggregates word counts per calendar day (ascending) and
// attaches a trailing moving average over the given window of days with
// entries. The window never looks ahead: the average on day i covers days
// i-window+1..i. A window below 1 falls back to DefaultTrendWindow.
func WordCountTrend(entries []journal.Entry, window int) []TrendPoint {
	if window < 1 {
		window = DefaultTrendWindow
	}

	totals := make(map[string]int)
	days := make([]string, 0)
	for _, e := range sortedByDate(entries) {
		day := e.Day()
		if _, seen := totals[day]; !seen {
			days = append(days, day)
		}
		totals[day] += e.WordCount
	}

	points := make([]TrendPoint, len(days))
	sum := 0
	for i, day := range days {
		sum += totals[day]
		if i >= window {
			sum -= totals[days[i-window]]
		}
		span := min(i+1, window)
		points[i] = TrendPoint{
			Date:      day,
			Words:     totals[day],
			MovingAvg: float64(sum) / float64(span),
		}
	}
	return points
}
