package util_test

import (
	"testing"

	"fitmentor_backend/internal/progress"
	"fitmentor_backend/internal/util"
)

func TestValidateGoal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		goalType progress.GoalType
		initial  float64
		target   float64
		wantErr  bool
	}{
		{"loss ok", progress.WeightLoss, 100, 90, false},
		{"loss wrong direction", progress.WeightLoss, 90, 100, true},
		{"loss equal", progress.WeightLoss, 90, 90, true},
		{"gain ok", progress.MuscleGain, 70, 78, false},
		{"gain wrong direction", progress.MuscleGain, 78, 70, true},
		{"zero initial", progress.WeightLoss, 0, 90, true},
		{"unknown type", progress.GoalType("bulk"), 100, 90, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := util.ValidateGoal(tc.goalType, tc.initial, tc.target)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateGoal(%s, %.0f, %.0f) error = %v, wantErr %v",
					tc.goalType, tc.initial, tc.target, err, tc.wantErr)
			}
		})
	}
}
