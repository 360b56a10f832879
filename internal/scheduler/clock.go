package scheduler

import (
	"sync"
	"time"
)

// Timer is an armed callback that can be disarmed
type Timer interface {
	Stop() bool
}

// Clock is the time source of the scheduler
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once after d
	AfterFunc(d time.Duration, f func()) Timer
	// Every calls f every d until the returned timer is stopped
	Every(d time.Duration, f func()) Timer
}

// RealClock is the wall clock
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (RealClock) Every(d time.Duration, f func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.ticker.C:
				f()
			case <-t.done:
				return
			}
		}
	}()
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}
