package payment

import "time"

// Timer is a cancellable scheduled callback
type Timer interface {
	Stop() bool
}

// Clock schedules the debounce and polling callbacks
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
