package progress_test

import (
	"math"
	"testing"
	"time"

	"fitmentor_backend/internal/progress"
)

func update(week int, weight float64) progress.Update {
	return progress.Update{
		Week:      week,
		Weight:    weight,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, (week-1)*7),
	}
}

func TestProject24WeeksLength(t *testing.T) {
	t.Parallel()
	bands := progress.Project24Weeks(lossGoal(100, 90), nil)
	if len(bands) != 24 {
		t.Fatalf("expected 24 week bands, got %d", len(bands))
	}
	for i, b := range bands {
		if b.Week != i+1 {
			t.Fatalf("band %d has week %d", i, b.Week)
		}
		if b.Actual != nil {
			t.Fatalf("week %d should have no actual weight", b.Week)
		}
	}
}

func TestProjectionOrderingWeightLoss(t *testing.T) {
	t.Parallel()

	// 减重方向减幅递增：lower > ideal > upper 对每一周都成立
	for _, b := range progress.Project24Weeks(lossGoal(100, 90), nil) {
		if !(b.LowerBound > b.IdealTarget && b.IdealTarget > b.UpperBound) {
			t.Fatalf("week %d: expected lower > ideal > upper, got %+v", b.Week, b)
		}
	}
}

func TestProjectionOrderingMuscleGain(t *testing.T) {
	t.Parallel()

	for _, b := range progress.Project24Weeks(gainGoal(70, 78), nil) {
		if !(b.LowerBound < b.IdealTarget && b.IdealTarget < b.UpperBound) {
			t.Fatalf("week %d: expected lower < ideal < upper, got %+v", b.Week, b)
		}
	}
}

func TestProjectionValues(t *testing.T) {
	t.Parallel()

	bands := progress.Project24Weeks(lossGoal(100, 90), nil)
	week4 := bands[3]

	// 100kg 标准减重第4周：0.25/0.50/0.75 乘 4
	if math.Abs(week4.LowerBound-99.0) > 1e-9 ||
		math.Abs(week4.IdealTarget-98.0) > 1e-9 ||
		math.Abs(week4.UpperBound-97.0) > 1e-9 {
		t.Fatalf("unexpected week 4 bands: %+v", week4)
	}
}

func TestProjectionAttachesActualWeights(t *testing.T) {
	t.Parallel()

	updates := []progress.Update{update(1, 99.2), update(3, 98.4)}
	bands := progress.Project24Weeks(lossGoal(100, 90), updates)

	if bands[0].Actual == nil || *bands[0].Actual != 99.2 {
		t.Fatalf("week 1 actual not attached: %+v", bands[0])
	}
	if bands[1].Actual != nil {
		t.Fatalf("week 2 should have no actual weight")
	}
	if bands[2].Actual == nil || *bands[2].Actual != 98.4 {
		t.Fatalf("week 3 actual not attached: %+v", bands[2])
	}
}

func TestRound1(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want float64 }{
		{99.25, 99.3},
		{99.24, 99.2},
		{70.0, 70.0},
	}
	for _, tc := range cases {
		if got := progress.Round1(tc.in); got != tc.want {
			t.Fatalf("Round1(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
