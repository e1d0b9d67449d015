package contactclient

import "time"

// Timer is a pending delayed action
type Timer interface {
	Stop() bool
}

// Clock schedules delayed actions; tests substitute a manual clock
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
