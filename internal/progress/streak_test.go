package progress_test

import (
	"math"
	"testing"

	"fitmentor_backend/internal/progress"
)

// 标准减重（100kg 起始）下构造固定区间的周记录
func greenUpdate(week int) progress.Update { return update(week, 100-0.6*float64(week)) }

func yellowUpdate(week int) progress.Update { return update(week, 100-0.3*float64(week)) }

func redUpdate(week int) progress.Update { return update(week, 100-0.1*float64(week)) }

func TestConsecutiveWeekStreak(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		updates []progress.Update
		want    int
	}{
		{"empty history", nil, 0},
		{"single update", []progress.Update{update(1, 99)}, 1},
		{"contiguous", []progress.Update{update(1, 99), update(2, 98), update(3, 97)}, 3},
		{"gap stops count", []progress.Update{update(1, 99), update(3, 98), update(4, 97)}, 2},
		{"not starting at week 1", []progress.Update{update(5, 99), update(6, 98)}, 2},
		{"unsorted input", []progress.Update{update(3, 97), update(1, 99), update(2, 98)}, 3},
	}

	for _, tc := range cases {
		if got := progress.ConsecutiveWeekStreak(tc.updates); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestConsecutiveGreenStreak(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	all := []progress.Update{greenUpdate(1), greenUpdate(2), greenUpdate(3), greenUpdate(4)}
	if got := progress.ConsecutiveGreenStreak(all, goal); got != 4 {
		t.Fatalf("expected green streak 4, got %d", got)
	}

	broken := []progress.Update{greenUpdate(1), redUpdate(2), greenUpdate(3), greenUpdate(4)}
	if got := progress.ConsecutiveGreenStreak(broken, goal); got != 2 {
		t.Fatalf("expected green streak 2 after red break, got %d", got)
	}

	latestNotGreen := []progress.Update{greenUpdate(1), greenUpdate(2), yellowUpdate(3)}
	if got := progress.ConsecutiveGreenStreak(latestNotGreen, goal); got != 0 {
		t.Fatalf("expected green streak 0 when latest week not green, got %d", got)
	}

	gapped := []progress.Update{greenUpdate(1), greenUpdate(3), greenUpdate(4)}
	if got := progress.ConsecutiveGreenStreak(gapped, goal); got != 2 {
		t.Fatalf("expected green streak 2 across gap, got %d", got)
	}
}

func TestGreenStreakNeverExceedsWeekStreak(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	histories := [][]progress.Update{
		nil,
		{greenUpdate(1)},
		{greenUpdate(1), yellowUpdate(2), greenUpdate(3)},
		{greenUpdate(2), greenUpdate(3), greenUpdate(4), redUpdate(5), greenUpdate(6)},
		{greenUpdate(1), greenUpdate(3), greenUpdate(4), greenUpdate(5)},
	}

	for i, h := range histories {
		green := progress.ConsecutiveGreenStreak(h, goal)
		week := progress.ConsecutiveWeekStreak(h)
		if green > week {
			t.Fatalf("history %d: green streak %d exceeds week streak %d", i, green, week)
		}
	}
}

func TestNoRedStreak(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	mixed := []progress.Update{redUpdate(1), yellowUpdate(2), greenUpdate(3), yellowUpdate(4)}
	if got := progress.NoRedStreak(mixed, goal); got != 3 {
		t.Fatalf("expected no-red streak 3, got %d", got)
	}

	latestRed := []progress.Update{greenUpdate(1), redUpdate(2)}
	if got := progress.NoRedStreak(latestRed, goal); got != 0 {
		t.Fatalf("expected no-red streak 0, got %d", got)
	}
}

func TestConsecutiveRedStreak(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	reds := []progress.Update{greenUpdate(1), redUpdate(2), redUpdate(3), redUpdate(4)}
	if got := progress.ConsecutiveRedStreak(reds, goal); got != 3 {
		t.Fatalf("expected red streak 3, got %d", got)
	}
	if got := progress.ConsecutiveRedStreak([]progress.Update{greenUpdate(1)}, goal); got != 0 {
		t.Fatalf("expected red streak 0, got %d", got)
	}
}

func TestHasComeback(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	comeback := []progress.Update{redUpdate(1), redUpdate(2), greenUpdate(3)}
	if !progress.HasComeback(comeback, goal) {
		t.Fatalf("expected comeback pattern red,red,green")
	}

	noComeback := []progress.Update{redUpdate(1), greenUpdate(2), greenUpdate(3)}
	if progress.HasComeback(noComeback, goal) {
		t.Fatalf("single red week is not a comeback")
	}

	tooShort := []progress.Update{redUpdate(1), greenUpdate(2)}
	if progress.HasComeback(tooShort, goal) {
		t.Fatalf("comeback requires at least 3 updates")
	}
}

func TestTotalGreenWeeks(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	updates := []progress.Update{greenUpdate(4), redUpdate(1), greenUpdate(2), yellowUpdate(3)}
	if got := progress.TotalGreenWeeks(updates, goal); got != 2 {
		t.Fatalf("expected 2 total green weeks, got %d", got)
	}
}

func TestWeightMilestoneDelta(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	updates := []progress.Update{update(1, 98), update(2, 94.5)}
	if got := progress.WeightMilestoneDelta(updates, goal); math.Abs(got-5.5) > 1e-9 {
		t.Fatalf("expected milestone delta 5.5, got %f", got)
	}
	if got := progress.WeightMilestoneDelta(nil, goal); got != 0 {
		t.Fatalf("expected 0 delta for empty history, got %f", got)
	}
}

func TestPhotoAndMeasurementCounts(t *testing.T) {
	t.Parallel()

	updates := []progress.Update{
		{Week: 1, Weight: 99, Photos: 3, Measured: true},
		{Week: 2, Weight: 98, Photos: 0, Measured: false},
		{Week: 3, Weight: 97, Photos: 1, Measured: true},
	}

	if got := progress.PhotoCompletionCount(updates); got != 2 {
		t.Fatalf("expected 2 updates with photos, got %d", got)
	}
	if got := progress.MeasuredUpdateCount(updates); got != 2 {
		t.Fatalf("expected 2 fully measured updates, got %d", got)
	}
}
