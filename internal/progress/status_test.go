package progress_test

import (
	"testing"
	"time"

	"fitmentor_backend/internal/progress"
)

func TestComputeMenteeStatusNoUpdates(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	status := progress.ComputeMenteeStatus(nil, lossGoal(100, 90), now)

	if !status.NeedsAttention {
		t.Fatalf("mentee without check-ins must need attention")
	}
	if status.Zone != progress.ZoneRed {
		t.Fatalf("expected red zone, got %s", status.Zone)
	}
	if status.DaysSinceLastUpdate != progress.StaleSentinelDays {
		t.Fatalf("expected sentinel staleness, got %d", status.DaysSinceLastUpdate)
	}
	if len(status.AttentionReasons) != 1 || status.AttentionReasons[0] != "no check-ins" {
		t.Fatalf("unexpected reasons: %v", status.AttentionReasons)
	}
}

func TestComputeMenteeStatusStale20Days(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// 最近打卡20天前，均为绿区
	u1 := greenUpdate(1)
	u1.CreatedAt = now.AddDate(0, 0, -27)
	u2 := greenUpdate(2)
	u2.CreatedAt = now.AddDate(0, 0, -20)

	status := progress.ComputeMenteeStatus([]progress.Update{u1, u2}, lossGoal(100, 90), now)

	if !status.NeedsAttention {
		t.Fatalf("20 days stale must need attention")
	}
	if len(status.AttentionReasons) != 1 || status.AttentionReasons[0] != "no check-in in 20 days" {
		t.Fatalf("unexpected reasons: %v", status.AttentionReasons)
	}
}

func TestComputeMenteeStatusRedWeeks(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	u1 := redUpdate(1)
	u1.CreatedAt = now.AddDate(0, 0, -8)
	u2 := redUpdate(2)
	u2.CreatedAt = now.AddDate(0, 0, -1)

	status := progress.ComputeMenteeStatus([]progress.Update{u1, u2}, lossGoal(100, 90), now)

	if !status.NeedsAttention {
		t.Fatalf("two red weeks must need attention")
	}
	found := false
	for _, r := range status.AttentionReasons {
		if r == "2+ weeks in red zone" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected red-zone reason, got %v", status.AttentionReasons)
	}
}

func TestComputeMenteeStatusStagnation(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mk := func(week int, weight float64, daysAgo int) progress.Update {
		u := update(week, weight)
		u.CreatedAt = now.AddDate(0, 0, -daysAgo)
		return u
	}

	// 三周体重波动 0.3kg
	updates := []progress.Update{
		mk(1, 95.0, 15), mk(2, 95.2, 8), mk(3, 94.9, 1),
	}
	status := progress.ComputeMenteeStatus(updates, lossGoal(100, 90), now)

	found := false
	for _, r := range status.AttentionReasons {
		if r == "stagnation" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected stagnation reason, got %v", status.AttentionReasons)
	}
}

func TestComputeMenteeStatusHealthy(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	u1 := yellowUpdate(1)
	u1.CreatedAt = now.AddDate(0, 0, -9)
	u2 := yellowUpdate(2)
	u2.CreatedAt = now.AddDate(0, 0, -2)

	status := progress.ComputeMenteeStatus([]progress.Update{u1, u2}, lossGoal(100, 90), now)

	if status.NeedsAttention {
		t.Fatalf("healthy mentee flagged: %v", status.AttentionReasons)
	}
	if status.DaysSinceLastUpdate != 2 {
		t.Fatalf("expected 2 days since last update, got %d", status.DaysSinceLastUpdate)
	}

	// 周环比减重0.3kg 不足预期八成，环比分类为红区，但投影区间为黄区，不触发红区告警
	if status.Zone != progress.ZoneRed {
		t.Fatalf("expected red week-over-week zone, got %s", status.Zone)
	}
}

func TestComputeMenteeStatusSingleUpdateDefaultsGreen(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	u := update(1, 99)
	u.CreatedAt = now.AddDate(0, 0, -1)

	status := progress.ComputeMenteeStatus([]progress.Update{u}, lossGoal(100, 90), now)
	if status.Zone != progress.ZoneGreen {
		t.Fatalf("single update defaults to green, got %s", status.Zone)
	}
}

func TestAggregateRoster(t *testing.T) {
	t.Parallel()

	entries := []progress.RosterEntry{
		{
			MenteeID: 1,
			Status:   progress.MenteeStatus{Zone: progress.ZoneGreen, DaysSinceLastUpdate: 2},
			Progress: 40, ProgressValid: true, UpdateCount: 5,
		},
		{
			MenteeID: 2,
			Status:   progress.MenteeStatus{Zone: progress.ZoneRed, DaysSinceLastUpdate: 20, NeedsAttention: true},
			Progress: 10, ProgressValid: true, UpdateCount: 3,
		},
		{
			MenteeID: 3,
			Status:   progress.MenteeStatus{Zone: progress.ZoneYellow, DaysSinceLastUpdate: 6},
			ProgressValid: false, UpdateCount: 4,
		},
	}

	stats := progress.AggregateRoster(entries)

	if stats.TotalMentees != 3 || stats.GreenCount != 1 || stats.YellowCount != 1 || stats.RedCount != 1 {
		t.Fatalf("unexpected zone counts: %+v", stats)
	}
	if stats.ActiveCount != 2 || stats.InactiveCount != 1 {
		t.Fatalf("unexpected activity counts: %+v", stats)
	}
	if stats.NeedsAttention != 1 {
		t.Fatalf("unexpected attention count: %+v", stats)
	}
	// 退化目标的学员不计入均值
	if stats.AverageProgress != 25 {
		t.Fatalf("expected average progress 25, got %f", stats.AverageProgress)
	}
}

func TestBuildAlertsPriorities(t *testing.T) {
	t.Parallel()

	entries := []progress.RosterEntry{
		{MenteeID: 1, Name: "a", UpdateCount: 3, Stagnating: true,
			Status: progress.MenteeStatus{DaysSinceLastUpdate: 2}},
		{MenteeID: 2, Name: "b", UpdateCount: 0,
			Status: progress.MenteeStatus{DaysSinceLastUpdate: progress.StaleSentinelDays}},
		{MenteeID: 3, Name: "c", UpdateCount: 4,
			Status: progress.MenteeStatus{DaysSinceLastUpdate: 20}},
		{MenteeID: 4, Name: "d", UpdateCount: 6, RedStreak: 3,
			Status: progress.MenteeStatus{DaysSinceLastUpdate: 3}},
		{MenteeID: 5, Name: "e", UpdateCount: 5,
			Status: progress.MenteeStatus{DaysSinceLastUpdate: 10}},
		{MenteeID: 6, Name: "f", UpdateCount: 8,
			Status: progress.MenteeStatus{DaysSinceLastUpdate: 1}},
	}

	alerts := progress.BuildAlerts(entries)

	if len(alerts) != 5 {
		t.Fatalf("expected 5 alerts, got %d: %+v", len(alerts), alerts)
	}

	// Urgent（保持输入顺序）> High > Medium > Low
	wantOrder := []uint{3, 4, 5, 1, 2}
	for i, want := range wantOrder {
		if alerts[i].MenteeID != want {
			t.Fatalf("alert %d: expected mentee %d, got %d (%+v)", i, want, alerts[i].MenteeID, alerts)
		}
	}

	if alerts[0].Priority != progress.AlertUrgent || alerts[0].Reason != "no check-in in 20 days" {
		t.Fatalf("unexpected urgent alert: %+v", alerts[0])
	}
	if alerts[1].Reason != "3+ consecutive red weeks" {
		t.Fatalf("unexpected red streak alert: %+v", alerts[1])
	}
	if alerts[2].Priority != progress.AlertHigh {
		t.Fatalf("expected high priority for 10 days stale: %+v", alerts[2])
	}
	if alerts[3].Priority != progress.AlertMedium || alerts[3].Reason != "stagnation" {
		t.Fatalf("expected stagnation alert: %+v", alerts[3])
	}
	if alerts[4].Priority != progress.AlertLow {
		t.Fatalf("expected low priority for zero check-ins: %+v", alerts[4])
	}
}

func TestIsStagnating(t *testing.T) {
	t.Parallel()

	if progress.IsStagnating([]progress.Update{update(1, 95), update(2, 95.1)}) {
		t.Fatalf("fewer than 3 updates cannot stagnate")
	}

	moving := []progress.Update{update(1, 96), update(2, 95.2), update(3, 94.4)}
	if progress.IsStagnating(moving) {
		t.Fatalf("0.8kg swings are not stagnation")
	}

	flat := []progress.Update{update(1, 95), update(2, 95.1), update(3, 94.9), update(4, 95.05)}
	if !progress.IsStagnating(flat) {
		t.Fatalf("expected stagnation inside 0.5kg range")
	}
}
