package dispatcher

import "time"

type Option func(*service)

func WithFlashDuration(d time.Duration) Option {
	return func(s *service) {
		s.flashDuration = d
	}
}

func WithFlashInterval(d time.Duration) Option {
	return func(s *service) {
		s.flashInterval = d
	}
}

// WithSleep replaces the real time delay between flash steps, so tests can
// run the full cycle count without wall clock waiting.
func WithSleep(fn SleepFunc) Option {
	return func(s *service) {
		s.sleep = fn
	}
}
