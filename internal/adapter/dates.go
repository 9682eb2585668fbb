package adapter

import "time"

// dateLayout is the calendar date format both providers expect.
const dateLayout = time.DateOnly

// DateWindow is an inclusive calendar date range.
type DateWindow struct {
	From time.Time
	To   time.Time
}

// FromDate and ToDate format the bounds as YYYY-MM-DD in UTC.
func (w DateWindow) FromDate() string { return formatDate(w.From) }
func (w DateWindow) ToDate() string   { return formatDate(w.To) }

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// NowPlayingWindow is [today - 2 months, today].
func NowPlayingWindow(now time.Time) DateWindow {
	return DateWindow{From: now.AddDate(0, -2, 0), To: now}
}

// UpcomingMoviesWindow is [today, today + 2 months].
func UpcomingMoviesWindow(now time.Time) DateWindow {
	return DateWindow{From: now, To: now.AddDate(0, 2, 0)}
}

// AiringWindow is [today - 30 days, today + 7 days].
func AiringWindow(now time.Time) DateWindow {
	return DateWindow{From: now.AddDate(0, 0, -30), To: now.AddDate(0, 0, 7)}
}

// Trakt calendars take a start date and a length in days.
const (
	traktRecentMoviesDays = 30
	traktUpcomingDays     = 30
	traktAiringShowsDays  = 14
)

// TraktRecentMoviesStart is today - 30 days; the calendar spans 30 days.
func TraktRecentMoviesStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -traktRecentMoviesDays)
}

// TraktAiringShowsStart is today - 7 days; the calendar spans 14 days.
func TraktAiringShowsStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -7)
}
