package util

import (
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   bool
		wantStart bool
		wantEnd   bool
	}{
		{"both given", "2025-01-01", "2025-01-31", false, true, true},
		{"only start", "2025-01-01", "", false, true, false},
		{"only end", "", "2025-01-31", false, false, true},
		{"neither", "", "", false, false, false},
		{"bad start", "01-01-2025", "", true, false, false},
		{"bad end", "", "2025/01/31", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := ParseDateRange(tt.startDate, tt.endDate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if (dr.Start != nil) != tt.wantStart {
				t.Errorf("Start presence = %v, want %v", dr.Start != nil, tt.wantStart)
			}
			if (dr.End != nil) != tt.wantEnd {
				t.Errorf("End presence = %v, want %v", dr.End != nil, tt.wantEnd)
			}
		})
	}
}

func TestParseDateRangeEndOfDay(t *testing.T) {
	dr, err := ParseDateRange("", "2025-03-15")
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2025, 3, 15, 23, 59, 59, int(999*time.Millisecond), time.Local)
	if !dr.End.Equal(want) {
		t.Errorf("End = %v, want %v", dr.End, want)
	}
}

// A work log starting at end_date 23:59:59.000 is in range; one at
// end_date+1 00:00:00.001 is not.
func TestDateRangeInclusivity(t *testing.T) {
	dr, err := ParseDateRange("2025-03-01", "2025-03-15")
	if err != nil {
		t.Fatal(err)
	}

	lastSecond := time.Date(2025, 3, 15, 23, 59, 59, 0, time.Local)
	if !dr.Contains(lastSecond) {
		t.Errorf("expected %v to be inside range", lastSecond)
	}

	justAfter := time.Date(2025, 3, 16, 0, 0, 0, int(time.Millisecond), time.Local)
	if dr.Contains(justAfter) {
		t.Errorf("expected %v to be outside range", justAfter)
	}

	firstInstant := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	if !dr.Contains(firstInstant) {
		t.Errorf("expected %v to be inside range", firstInstant)
	}

	justBefore := time.Date(2025, 2, 28, 23, 59, 59, 0, time.Local)
	if dr.Contains(justBefore) {
		t.Errorf("expected %v to be outside range", justBefore)
	}
}
