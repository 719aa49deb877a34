package reports

import "testing"

func TestSummarize_SingleDay(t *testing.T) {
	days := []DailyTotal{{Day: "2026-10-19", Calls: 3, Duration: 60, AvgDuration: 20}}

	s := Summarize(days)
	if s.TotalCalls != 3 || s.TotalDuration != 60 || s.MaxDuration != 60 || s.TotalAvgDuration != 20 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestSummarize_AverageOfDailyAverages(t *testing.T) {
	days := []DailyTotal{
		{Day: "2026-10-19", Calls: 1, Duration: 100, AvgDuration: 100},
		{Day: "2026-10-18", Calls: 3, Duration: 30, AvgDuration: 10},
	}

	s := Summarize(days)
	if s.TotalAvgDuration != 55 {
		t.Fatalf("expected unweighted mean 55, got %v", s.TotalAvgDuration)
	}
	if s.MaxDuration != 100 {
		t.Fatalf("expected max 100, got %d", s.MaxDuration)
	}
	if s.TotalCalls != 4 || s.TotalDuration != 130 {
		t.Fatalf("unexpected totals %+v", s)
	}
}

func TestAscending(t *testing.T) {
	days := []DailyTotal{{Day: "2026-10-19"}, {Day: "2026-10-18"}, {Day: "2026-10-17"}}

	got := Ascending(days)
	if got[0].Day != "2026-10-17" || got[2].Day != "2026-10-19" {
		t.Fatalf("unexpected order %+v", got)
	}
	if days[0].Day != "2026-10-19" {
		t.Fatalf("input must not be modified")
	}
}
