package progress_test

import (
	"testing"

	"fitmentor_backend/internal/progress"
)

func contains(badges []progress.BadgeType, target progress.BadgeType) bool {
	for _, b := range badges {
		if b == target {
			return true
		}
	}
	return false
}

func TestEvaluateBadgesFirstCheckin(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	badges := progress.EvaluateBadges([]progress.Update{yellowUpdate(1)}, goal, nil)
	if !contains(badges, progress.BadgeFirstCheckin) {
		t.Fatalf("expected first_checkin with exactly one update, got %v", badges)
	}

	two := []progress.Update{yellowUpdate(1), yellowUpdate(2)}
	badges = progress.EvaluateBadges(two, goal, nil)
	if contains(badges, progress.BadgeFirstCheckin) {
		t.Fatalf("first_checkin requires exactly one update, got %v", badges)
	}
}

func TestEvaluateBadgesGreenStreak(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	// 4周连续绿区：green_streak_3 触发，green_streak_5 未触发
	updates := []progress.Update{greenUpdate(1), greenUpdate(2), greenUpdate(3), greenUpdate(4)}
	badges := progress.EvaluateBadges(updates, goal, nil)

	if !contains(badges, progress.BadgeGreenStreak3) {
		t.Fatalf("expected green_streak_3, got %v", badges)
	}
	if contains(badges, progress.BadgeGreenStreak5) {
		t.Fatalf("green_streak_5 must not fire at streak 4, got %v", badges)
	}
	if !contains(badges, progress.BadgeFirstGreen) {
		t.Fatalf("expected first_green, got %v", badges)
	}
	// consistency_4weeks 与 perfect_streak_4 是独立徽章，同时触发
	if !contains(badges, progress.BadgeConsistency4Weeks) || !contains(badges, progress.BadgePerfectStreak4) {
		t.Fatalf("expected both consistency_4weeks and perfect_streak_4, got %v", badges)
	}
}

func TestEvaluateBadgesIdempotent(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)
	updates := []progress.Update{greenUpdate(1), greenUpdate(2), greenUpdate(3), greenUpdate(4)}

	earned := map[progress.BadgeType]bool{}
	first := progress.EvaluateBadges(updates, goal, earned)
	for _, b := range first {
		earned[b] = true
	}

	// 再评估必须为空集合
	second := progress.EvaluateBadges(updates, goal, earned)
	if len(second) != 0 {
		t.Fatalf("expected no new badges on re-evaluation, got %v", second)
	}
}

func TestEvaluateBadgesMilestonesAndProgress(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	updates := []progress.Update{update(1, 97), update(2, 94.8)}
	badges := progress.EvaluateBadges(updates, goal, nil)

	if !contains(badges, progress.BadgeWeightMilestone5) {
		t.Fatalf("expected weight_milestone_5kg at 5.2kg delta, got %v", badges)
	}
	if contains(badges, progress.BadgeWeightMilestone10) {
		t.Fatalf("weight_milestone_10kg must not fire at 5.2kg, got %v", badges)
	}
	if !contains(badges, progress.BadgeHalfwayThere) {
		t.Fatalf("expected halfway_there at 52%% progress, got %v", badges)
	}
	if contains(badges, progress.BadgeGoalAchieved) {
		t.Fatalf("goal_achieved must not fire at 52%% progress, got %v", badges)
	}
}

func TestEvaluateBadgesComeback(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	updates := []progress.Update{redUpdate(1), redUpdate(2), greenUpdate(3)}
	badges := progress.EvaluateBadges(updates, goal, nil)
	if !contains(badges, progress.BadgeComeback) {
		t.Fatalf("expected comeback badge, got %v", badges)
	}
}

func TestEvaluateBadgesEmptyHistory(t *testing.T) {
	t.Parallel()
	if badges := progress.EvaluateBadges(nil, lossGoal(100, 90), nil); len(badges) != 0 {
		t.Fatalf("empty history must earn nothing, got %v", badges)
	}
}

func TestCatalogComplete(t *testing.T) {
	t.Parallel()

	if len(progress.Catalog) != 18 {
		t.Fatalf("badge catalog must have 18 entries, got %d", len(progress.Catalog))
	}

	seen := map[progress.BadgeType]bool{}
	for _, b := range progress.Catalog {
		if seen[b.Type] {
			t.Fatalf("duplicate badge type %s", b.Type)
		}
		seen[b.Type] = true

		if b.Name == "" || b.Description == "" || b.Icon == "" {
			t.Fatalf("badge %s missing display metadata", b.Type)
		}
		switch b.Rarity {
		case progress.RarityCommon, progress.RarityRare, progress.RarityEpic, progress.RarityLegendary:
		default:
			t.Fatalf("badge %s has invalid rarity %q", b.Type, b.Rarity)
		}

		meta, ok := progress.BadgeMeta(b.Type)
		if !ok || meta.Type != b.Type {
			t.Fatalf("BadgeMeta lookup failed for %s", b.Type)
		}
	}
}
