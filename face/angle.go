package face

import "time"

// Angle is a clockwise rotation from 12 o'clock in fixed point
// units, MaxAngle to a full turn.
type Angle int32

const MaxAngle Angle = 0x10000

// Turns returns the angle as a fraction of a full turn.
func (a Angle) Turns() float64 {
	return float64(a) / float64(MaxAngle)
}

// Time is a time of day snapshot.
type Time struct {
	Hour   int // 0..23
	Minute int // 0..59
	Second int // 0..59
}

// TimeOf returns the time of day of t in t's location.
func TimeOf(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{Hour: h, Minute: m, Second: s}
}

// Angles are the rotations of the three hands.
type Angles struct {
	Hour, Minute, Second Angle
}

// HandAngles maps a time of day to hand rotations. The hour hand
// moves in six steps per hour, one per ten minutes; the minute and
// second hands move once per minute and second.
func HandAngles(t Time) Angles {
	return Angles{
		Hour:   MaxAngle * Angle((t.Hour%12)*6+t.Minute/10) / (12 * 6),
		Minute: MaxAngle * Angle(t.Minute) / 60,
		Second: MaxAngle * Angle(t.Second) / 60,
	}
}
