package clock

import "time"

// DateLayout is the calendar-day format used by every persisted daily record.
const DateLayout = "2006-01-02"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in Location, or local time when Location is nil.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Today formats the calendar day of c.Now().
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// Ticker is the part of time.Ticker that sessions depend on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory starts a recurring ticker with the given period.
type TickerFactory func(period time.Duration) Ticker

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// NewSystemTicker is the TickerFactory backed by time.NewTicker.
func NewSystemTicker(period time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(period)}
}
