package services

import (
	"reflect"
	"testing"
	"time"
)

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := ParseDay(value)
	if err != nil {
		t.Fatalf("ParseDay(%q) failed: %v", value, err)
	}
	return day
}

func interval(t *testing.T, start, end string) BookingInterval {
	t.Helper()
	return BookingInterval{Start: mustDay(t, start), End: mustDay(t, end)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "2025-01-01", "2025-01-10", "2025-01-01", "2025-01-10", true},
		{"partial overlap", "2025-01-01", "2025-01-10", "2025-01-05", "2025-01-20", true},
		{"containment", "2025-01-01", "2025-01-31", "2025-01-10", "2025-01-15", true},
		{"touching endpoints", "2025-01-01", "2025-01-10", "2025-01-10", "2025-01-20", true},
		{"single day against itself", "2025-01-05", "2025-01-05", "2025-01-05", "2025-01-05", true},
		{"adjacent is not overlap", "2025-01-01", "2025-01-10", "2025-01-11", "2025-01-20", false},
		{"fully apart", "2025-01-01", "2025-01-05", "2025-02-01", "2025-02-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aStart, aEnd := mustDay(t, tt.aStart), mustDay(t, tt.aEnd)
			bStart, bEnd := mustDay(t, tt.bStart), mustDay(t, tt.bEnd)

			if got := Overlaps(aStart, aEnd, bStart, bEnd); got != tt.want {
				t.Fatalf("Overlaps(%s, %s, %s, %s) = %v, want %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Phép giao phải đối xứng
			if Overlaps(aStart, aEnd, bStart, bEnd) != Overlaps(bStart, bEnd, aStart, aEnd) {
				t.Fatalf("Overlaps is not symmetric for %s..%s vs %s..%s", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			}
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name  string
		input []BookingInterval
		want  [][2]string
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "single interval",
			input: []BookingInterval{interval(t, "2025-01-01", "2025-01-10")},
			want:  [][2]string{{"2025-01-01", "2025-01-10"}},
		},
		{
			name: "overlapping pair",
			input: []BookingInterval{
				interval(t, "2025-01-01", "2025-01-10"),
				interval(t, "2025-01-05", "2025-01-20"),
			},
			want: [][2]string{{"2025-01-01", "2025-01-20"}},
		},
		{
			name: "adjacent pair becomes continuous occupancy",
			input: []BookingInterval{
				interval(t, "2025-02-01", "2025-02-10"),
				interval(t, "2025-02-11", "2025-02-20"),
			},
			want: [][2]string{{"2025-02-01", "2025-02-20"}},
		},
		{
			name: "gap stays split",
			input: []BookingInterval{
				interval(t, "2025-01-01", "2025-01-10"),
				interval(t, "2025-01-12", "2025-01-20"),
			},
			want: [][2]string{{"2025-01-01", "2025-01-10"}, {"2025-01-12", "2025-01-20"}},
		},
		{
			name: "unsorted input with containment",
			input: []BookingInterval{
				interval(t, "2025-03-10", "2025-03-12"),
				interval(t, "2025-03-01", "2025-03-31"),
				interval(t, "2025-05-01", "2025-05-02"),
			},
			want: [][2]string{{"2025-03-01", "2025-03-31"}, {"2025-05-01", "2025-05-02"}},
		},
		{
			name: "renewal booked before previous one closes",
			input: []BookingInterval{
				interval(t, "2025-01-01", "2025-01-31"),
				interval(t, "2025-01-25", "2025-02-28"),
				interval(t, "2025-03-01", "2025-03-31"),
			},
			want: [][2]string{{"2025-01-01", "2025-03-31"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeIntervals(tt.input)

			if len(merged) != len(tt.want) {
				t.Fatalf("MergeIntervals returned %d intervals, want %d", len(merged), len(tt.want))
			}
			for i, want := range tt.want {
				if FormatDay(merged[i].Start) != want[0] || FormatDay(merged[i].End) != want[1] {
					t.Fatalf("interval %d = [%s, %s], want [%s, %s]", i, FormatDay(merged[i].Start), FormatDay(merged[i].End), want[0], want[1])
				}
			}

			// Kết quả phải rời nhau và không liền kề
			for i := 1; i < len(merged); i++ {
				if Overlaps(merged[i-1].Start, merged[i-1].End, merged[i].Start, merged[i].End) {
					t.Fatalf("merged intervals %d and %d overlap", i-1, i)
				}
				if merged[i].Start.Equal(AddDays(merged[i-1].End, 1)) {
					t.Fatalf("merged intervals %d and %d are adjacent", i-1, i)
				}
				if merged[i].End.Before(merged[i].Start) {
					t.Fatalf("merged interval %d is inverted", i)
				}
			}

			// Gộp lần nữa phải cho cùng kết quả
			again := MergeIntervals(merged)
			if !reflect.DeepEqual(merged, again) {
				t.Fatalf("MergeIntervals is not idempotent: %v != %v", merged, again)
			}
		})
	}
}

func TestMergeIntervalsDoesNotMutateInput(t *testing.T) {
	input := []BookingInterval{
		interval(t, "2025-01-05", "2025-01-10"),
		interval(t, "2025-01-01", "2025-01-03"),
	}
	original := make([]BookingInterval, len(input))
	copy(original, input)

	MergeIntervals(input)

	if !reflect.DeepEqual(input, original) {
		t.Fatal("MergeIntervals mutated its input")
	}
}
