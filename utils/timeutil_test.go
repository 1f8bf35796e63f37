package utils

import (
	"testing"
	"time"
)

func TestDayWindowUTC(t *testing.T) {
	cases := []struct {
		name     string
		input    time.Time
		wantFrom string
		wantTo   string
	}{
		{
			name:     "日内时间取整到当天",
			input:    time.Date(2024, 5, 1, 13, 45, 12, 0, time.UTC),
			wantFrom: "2024-05-01 00:00:00",
			wantTo:   "2024-05-02 00:00:00",
		},
		{
			name:     "午夜整点属于当天",
			input:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			wantFrom: "2024-05-01 00:00:00",
			wantTo:   "2024-05-02 00:00:00",
		},
		{
			name:     "东八区晚间折算到UTC后跨天",
			input:    time.Date(2024, 5, 2, 6, 0, 0, 0, time.FixedZone("CST", 8*3600)),
			wantFrom: "2024-05-01 00:00:00",
			wantTo:   "2024-05-02 00:00:00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := DayWindowUTC(tc.input)
			if got := from.Format(DateTimeFormat); got != tc.wantFrom {
				t.Errorf("from = %s, want %s", got, tc.wantFrom)
			}
			if got := to.Format(DateTimeFormat); got != tc.wantTo {
				t.Errorf("to = %s, want %s", got, tc.wantTo)
			}
		})
	}
}

func TestDateKeyUTC(t *testing.T) {
	// 取数窗口和日期键必须来自同一次截断
	in := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)
	if got := DateKeyUTC(in); got != "2024-05-01" {
		t.Errorf("DateKeyUTC = %s, want 2024-05-01", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-05-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Location() != time.UTC || got.Hour() != 0 {
		t.Errorf("ParseDate should return UTC midnight, got %v", got)
	}

	if _, err := ParseDate("05/01/2024"); err == nil {
		t.Error("expected error for malformed date")
	}
}
