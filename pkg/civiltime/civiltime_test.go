package civiltime_test

import (
	"testing"
	"time"

	"taskping/pkg/civiltime"
)

func TestDayBoundsUTC(t *testing.T) {
	t.Run("Midday", func(t *testing.T) {
		// 2024-05-10 12:00 UTC = 17:30 IST
		clock := civiltime.FixedClock{T: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
		authority := civiltime.New(clock)

		start, end := authority.DayBoundsUTC()

		// IST midnight of 2024-05-10 is 2024-05-09 18:30 UTC
		wantStart := time.Date(2024, 5, 9, 18, 30, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)
		if !start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", start, wantStart)
		}
		if !end.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", end, wantEnd)
		}
	})

	t.Run("LateUTCEveningCrossesCivilDate", func(t *testing.T) {
		// 2024-05-10 20:00 UTC is already 2024-05-11 01:30 IST
		clock := civiltime.FixedClock{T: time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)}
		authority := civiltime.New(clock)

		start, _ := authority.DayBoundsUTC()
		wantStart := time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)
		if !start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", start, wantStart)
		}
	})

	t.Run("BoundsSpanExactlyOneDay", func(t *testing.T) {
		clock := civiltime.FixedClock{T: time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)}
		authority := civiltime.New(clock)

		start, end := authority.DayBoundsUTC()
		if end.Sub(start) != 24*time.Hour {
			t.Errorf("bounds span = %v, want 24h", end.Sub(start))
		}
	})
}

func TestNowIsCivil(t *testing.T) {
	clock := civiltime.FixedClock{T: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	authority := civiltime.New(clock)

	now := authority.Now()
	if now.Hour() != 17 || now.Minute() != 30 {
		t.Errorf("civil now = %v, want 17:30", now)
	}
	_, offset := now.Zone()
	if offset != 5*3600+30*60 {
		t.Errorf("zone offset = %d, want +05:30", offset)
	}
}

func TestFormat(t *testing.T) {
	authority := civiltime.New(civiltime.SystemClock{})

	// 2024-05-10 12:00 UTC renders as 17:30 IST
	got := authority.Format(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	want := "Fri, 10 May 17:30"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
