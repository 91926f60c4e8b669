package face

import (
	"math"
	"testing"
	"time"
)

func TestHandAnglesScenarios(t *testing.T) {
	tests := []struct {
		name string
		t    Time
		want Angles
	}{
		{
			name: "03:10:00",
			t:    Time{Hour: 3, Minute: 10},
			want: Angles{
				Hour:   MaxAngle * (3*60 + 10) / 720,
				Minute: MaxAngle * 10 / 60,
				Second: 0,
			},
		},
		{
			name: "noon",
			t:    Time{Hour: 12},
			want: Angles{},
		},
		{
			name: "midnight",
			t:    Time{},
			want: Angles{},
		},
		{
			name: "23:59:59",
			t:    Time{Hour: 23, Minute: 59, Second: 59},
			want: Angles{
				Hour:   MaxAngle * 71 / 72,
				Minute: MaxAngle * 59 / 60,
				Second: MaxAngle * 59 / 60,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := HandAngles(test.t); got != test.want {
				t.Errorf("HandAngles(%+v) = %+v, want %+v", test.t, got, test.want)
			}
		})
	}
}

func TestHourHandSteps(t *testing.T) {
	for _, start := range []int{0, 12} {
		prev := HandAngles(Time{Hour: start}).Hour
		for m := 1; m < 12*60; m++ {
			tm := Time{Hour: start + m/60, Minute: m % 60}
			got := HandAngles(tm).Hour
			if got < prev {
				t.Fatalf("%+v: hour hand moved back from %d to %d", tm, prev, got)
			}
			if moved := got != prev; moved != (tm.Minute%10 == 0) {
				t.Errorf("%+v: hour hand moved %v, expected only at ten minute boundaries", tm, moved)
			}
			prev = got
		}
	}
}

func TestMinuteAndSecondAngles(t *testing.T) {
	for m := 0; m < 60; m++ {
		for s := 0; s < 60; s++ {
			a := HandAngles(Time{Hour: 7, Minute: m, Second: s})
			if want := MaxAngle * Angle(m) / 60; a.Minute != want {
				t.Errorf("%02d:%02d minute angle %d, want %d", m, s, a.Minute, want)
			}
			if want := MaxAngle * Angle(s) / 60; a.Second != want {
				t.Errorf("%02d:%02d second angle %d, want %d", m, s, a.Second, want)
			}
			if d := math.Abs(a.Second.Turns() - float64(s)/60); d > 1/float64(MaxAngle) {
				t.Errorf("second angle %v turns, want %v", a.Second.Turns(), float64(s)/60)
			}
		}
	}
}

func TestTimeOf(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	got := TimeOf(time.Date(2026, 10, 15, 3, 10, 42, 999, loc))
	if want := (Time{Hour: 3, Minute: 10, Second: 42}); got != want {
		t.Errorf("TimeOf = %+v, want %+v", got, want)
	}
}
