// Package tick implements a timer service that notifies a handler
// whenever a unit of wall clock time changes.
package tick

import (
	"strings"
	"time"
)

// Units is a set of calendar units.
type Units uint8

const (
	Second Units = 1 << iota
	Minute
	Hour
	Day
	Month
	Year
)

const allUnits = Second | Minute | Hour | Day | Month | Year

func (u Units) String() string {
	if u == 0 {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		u    Units
		name string
	}{
		{Second, "second"},
		{Minute, "minute"},
		{Hour, "hour"},
		{Day, "day"},
		{Month, "month"},
		{Year, "year"},
	} {
		if u&n.u != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Changed returns the units that differ between prev and now. A
// change of a unit implies a change of all smaller units. The zero
// prev means every unit changed.
func Changed(prev, now time.Time) Units {
	if prev.IsZero() {
		return allUnits
	}
	switch {
	case prev.Year() != now.Year():
		return allUnits
	case prev.Month() != now.Month():
		return Month | Day | Hour | Minute | Second
	case prev.Day() != now.Day():
		return Day | Hour | Minute | Second
	case prev.Hour() != now.Hour():
		return Hour | Minute | Second
	case prev.Minute() != now.Minute():
		return Minute | Second
	case prev.Second() != now.Second():
		return Second
	}
	return 0
}

// Handler is called with the tick time and the units that changed
// since the previous tick.
type Handler func(now time.Time, changed Units)

// Service delivers ticks to at most one subscriber.
type Service struct {
	clock   Clock
	units   Units
	handler Handler
	last    time.Time
	timer   Timer
}

func NewService(c Clock) *Service {
	return &Service{clock: c}
}

func (s *Service) Clock() Clock {
	return s.clock
}

// Subscribe replaces the subscription with one calling h when any
// of units changes.
func (s *Service) Subscribe(units Units, h Handler) {
	s.units = units
	s.handler = h
}

// Unsubscribe removes the subscription and stops the pending timer.
func (s *Service) Unsubscribe() {
	s.units = 0
	s.handler = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) Subscribed() bool {
	return s.handler != nil
}

// Next returns a channel that receives the time at the next whole
// second. Each call replaces the previous timer.
func (s *Service) Next() <-chan time.Time {
	if s.timer != nil {
		s.timer.Stop()
	}
	now := s.clock.Now()
	d := now.Truncate(time.Second).Add(time.Second).Sub(now)
	s.timer = s.clock.NewTimer(d)
	return s.timer.C()
}

// Fire delivers a tick for now. The handler is called only if a
// subscribed unit changed since the previous tick.
func (s *Service) Fire(now time.Time) {
	changed := Changed(s.last, now)
	s.last = now
	if s.handler != nil && changed&s.units != 0 {
		s.handler(now, changed)
	}
}
