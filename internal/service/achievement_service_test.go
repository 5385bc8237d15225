package service

import (
	"testing"

	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/util"
)

func TestBuildLeaderboardRanksStayContiguous(t *testing.T) {
	t.Parallel()

	states := []model.XPState{
		{UserID: 1, TotalXP: 900, CurrentLevel: 3},
		{UserID: 2, TotalXP: 700, CurrentLevel: 2},
		{UserID: 3, TotalXP: 500, CurrentLevel: 2},
	}
	users := map[uint]*model.User{
		1: {Name: "小李"},
		3: {Name: "小王"},
	}

	// 用户2已注销，榜单跳过该条但名次不能出现空洞
	entries := buildLeaderboard(states, func(id uint) (*model.User, error) {
		if u, ok := users[id]; ok {
			return u, nil
		}
		return nil, util.ErrUserNotFound
	})

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Fatalf("entry %d: expected rank %d, got %d", i, i+1, e.Rank)
		}
	}
	if entries[1].User != "小王" || entries[1].XP != 500 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestBuildLeaderboardEmptyStates(t *testing.T) {
	t.Parallel()

	entries := buildLeaderboard(nil, func(uint) (*model.User, error) {
		t.Fatal("lookup should not be called")
		return nil, nil
	})
	if len(entries) != 0 {
		t.Fatalf("expected empty leaderboard, got %d entries", len(entries))
	}
}
