package progress_test

import (
	"math"
	"testing"
	"time"

	"fitmentor_backend/internal/progress"
)

func TestOverallProgressPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		initial  float64
		current  float64
		target   float64
		goalType progress.GoalType
		want     float64
	}{
		{"loss halfway", 100, 95, 90, progress.WeightLoss, 50},
		{"loss complete", 100, 90, 90, progress.WeightLoss, 100},
		{"loss overshoot clamps", 100, 85, 90, progress.WeightLoss, 100},
		{"loss regression clamps", 100, 102, 90, progress.WeightLoss, 0},
		{"gain halfway", 70, 74, 78, progress.MuscleGain, 50},
		{"gain overshoot clamps", 70, 80, 78, progress.MuscleGain, 100},
		{"degenerate goal", 80, 75, 80, progress.WeightLoss, 0},
	}

	for _, tc := range cases {
		got := progress.OverallProgressPercent(tc.initial, tc.current, tc.target, tc.goalType)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: expected %.1f, got %.1f", tc.name, tc.want, got)
		}
		if got < 0 || got > 100 {
			t.Fatalf("%s: progress %f outside [0,100]", tc.name, got)
		}
	}
}

func TestEstimateCompletionOnTrack(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// 4周平稳减重，每周约1kg，剩余6kg << 剩余20周
	updates := []progress.Update{
		update(1, 99), update(2, 98), update(3, 97), update(4, 96),
	}
	est := progress.EstimateCompletion(updates, lossGoal(100, 90), now)

	if est.WeeksRemaining != 20 {
		t.Fatalf("expected 20 weeks remaining, got %d", est.WeeksRemaining)
	}
	if !est.OnTrack {
		t.Fatalf("expected on track")
	}
	if want := now.AddDate(0, 0, 140); !est.EstimatedDate.Equal(want) {
		t.Fatalf("expected estimated date %v, got %v", want, est.EstimatedDate)
	}
}

func TestEstimateCompletionWrongDirection(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	updates := []progress.Update{update(1, 99), update(2, 99.5), update(3, 100.2)}
	est := progress.EstimateCompletion(updates, lossGoal(100, 90), now)

	if est.OnTrack {
		t.Fatalf("expected off track when average change is positive for weight loss")
	}
}

func TestEstimateCompletionTooSlow(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// 22周只减了 2.1kg，剩余 7.9kg 按 0.1kg/周需要 79 周 > 剩余2周
	updates := make([]progress.Update, 0, 22)
	for week := 1; week <= 22; week++ {
		updates = append(updates, update(week, 100-0.1*float64(week)))
	}
	est := progress.EstimateCompletion(updates, lossGoal(100, 90), now)

	if est.WeeksRemaining != 2 {
		t.Fatalf("expected 2 weeks remaining, got %d", est.WeeksRemaining)
	}
	if est.OnTrack {
		t.Fatalf("expected off track at insufficient velocity")
	}
}

func TestEstimateCompletionDefensiveShortHistory(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	est := progress.EstimateCompletion([]progress.Update{update(1, 99)}, lossGoal(100, 90), now)
	if est.OnTrack {
		t.Fatalf("single update must not be on track")
	}
	if est.WeeksRemaining != 23 {
		t.Fatalf("expected 23 weeks remaining, got %d", est.WeeksRemaining)
	}
}

func TestEstimateCompletionWeeksRemainingFloor(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	updates := make([]progress.Update, 0, 30)
	for week := 1; week <= 30; week++ {
		updates = append(updates, update(week, 100-0.3*float64(week)))
	}
	est := progress.EstimateCompletion(updates, lossGoal(100, 90), now)

	if est.WeeksRemaining != 0 {
		t.Fatalf("weeks remaining must floor at 0, got %d", est.WeeksRemaining)
	}
	if !est.EstimatedDate.Equal(now) {
		t.Fatalf("estimated date should be now at week >= 24, got %v", est.EstimatedDate)
	}
}
