package timer

import (
	"sync"
	"time"
)

// onceSchedule yields its instant on the first call to Next and the zero time
// afterwards, which cron treats as "never run again". A past instant is
// returned as is so cron runs the job immediately.
type onceSchedule struct {
	mu   sync.Mutex
	at   time.Time
	used bool
}

func newOnceSchedule(at time.Time) *onceSchedule {
	return &onceSchedule{at: at}
}

func (s *onceSchedule) Next(time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.used {
		return time.Time{}
	}

	s.used = true

	return s.at
}
