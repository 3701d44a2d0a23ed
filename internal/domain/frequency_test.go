package domain

import "testing"

func TestPeriodsPerYearTable(t *testing.T) {
	cases := []struct {
		freq Frequency
		want int
	}{
		{Daily, 360}, // banking year, not 365
		{Weekly, 52},
		{Biweekly, 26},
		{Monthly, 12},
		{Quarterly, 4},
		{Semiannually, 2},
		{Annually, 1},
	}
	for _, tc := range cases {
		if got := tc.freq.PeriodsPerYear(); got != tc.want {
			t.Errorf("%s: got %d periods per year, want %d", tc.freq, got, tc.want)
		}
	}
}

func TestPeriodsPerYearUnknownDefaultsToMonthly(t *testing.T) {
	if got := Frequency("fortnightly").PeriodsPerYear(); got != 12 {
		t.Fatalf("unknown frequency: got %d, want 12", got)
	}
	if got := Frequency("").PeriodsPerYear(); got != 12 {
		t.Fatalf("empty frequency: got %d, want 12", got)
	}
}

func TestFrequencyValid(t *testing.T) {
	for _, f := range Frequencies() {
		if !f.Valid() {
			t.Errorf("%s should be valid", f)
		}
	}
	if Frequency("yearly").Valid() {
		t.Error("yearly is not an enumerated tag")
	}
}
