package payroll

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "2025-03", want: "2025-03"},
		{in: "2025-12", want: "2025-12"},
		{in: "2025-13", wantErr: true},
		{in: "2025-00", wantErr: true},
		{in: "2025-3", wantErr: true},
		{in: "2025-03-01", wantErr: true},
		{in: "March 2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseMonth(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthAddMonths(t *testing.T) {
	tests := []struct {
		in   Month
		n    int
		want Month
	}{
		{"2025-01", 1, "2025-02"},
		{"2025-11", 3, "2026-02"},
		{"2025-06", 0, "2025-06"},
		{"2025-01", -1, "2024-12"},
		{"2025-05", 12, "2026-05"},
	}
	for _, tt := range tests {
		if got := tt.in.AddMonths(tt.n); got != tt.want {
			t.Errorf("%s.AddMonths(%d) = %s, want %s", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestMonthOrdering(t *testing.T) {
	if !Month("2025-05").Before("2025-06") {
		t.Error("2025-05 should be before 2025-06")
	}
	if Month("2025-05").Before("2025-05") {
		t.Error("a month is not before itself")
	}
	if !Month("2024-12").Before("2025-01") {
		t.Error("year boundary ordering broken")
	}
}

func TestMonthOf(t *testing.T) {
	got := MonthOf(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC))
	if got != "2025-03" {
		t.Errorf("MonthOf = %s, want 2025-03", got)
	}
}
