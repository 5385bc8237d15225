package progress_test

import (
	"testing"

	"fitmentor_backend/internal/progress"
)

func lossGoal(initial, target float64) progress.Goal {
	return progress.Goal{
		Type:          progress.WeightLoss,
		Subtype:       progress.SubtypeStandard,
		InitialWeight: initial,
		TargetWeight:  target,
	}
}

func gainGoal(initial, target float64) progress.Goal {
	return progress.Goal{
		Type:          progress.MuscleGain,
		InitialWeight: initial,
		TargetWeight:  target,
	}
}

func TestClassifyWeekWeightLossBoundary(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	// 预期变化 -1.0（1%），实际 -1.0 恰好落在 0.8 倍边界内侧
	if zone := progress.ClassifyWeek(99, 100, goal); zone != progress.ZoneGreen {
		t.Fatalf("expected green at exact boundary, got %s", zone)
	}

	// 80.3-79.6576 的减法结果比 0.6424 少一个 ulp，压线打卡不能因浮点误差掉级
	goal = lossGoal(80.3, 72)
	if zone := progress.ClassifyWeek(79.6576, 80.3, goal); zone != progress.ZoneGreen {
		t.Fatalf("expected green at float-imprecise boundary, got %s", zone)
	}
}

func TestClassifyWeekWeightGainIsRed(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)

	// 从99涨到99.9，与预期 -0.99 反向
	if zone := progress.ClassifyWeek(99.9, 99, goal); zone != progress.ZoneRed {
		t.Fatalf("expected red on weight gain, got %s", zone)
	}
}

func TestClassifyWeekFirstWeekDefaultsGreen(t *testing.T) {
	t.Parallel()
	if zone := progress.ClassifyWeek(99, 0, lossGoal(100, 90)); zone != progress.ZoneGreen {
		t.Fatalf("expected green without prior data, got %s", zone)
	}
}

func TestClassifyWeekMuscleGain(t *testing.T) {
	t.Parallel()
	goal := gainGoal(70, 78)

	cases := []struct {
		name     string
		current  float64
		previous float64
		want     progress.Zone
	}{
		// 预期变化 +0.35（0.5%），绿区下限 0.28，黄区下限 0.21。
		// 70.21-70 的减法结果比 0.21 少一个 ulp，压线值必须仍判黄区
		{"full gain", 70.35, 70, progress.ZoneGreen},
		{"at 80 percent", 70.28, 70, progress.ZoneGreen},
		{"at 60 percent", 70.21, 70, progress.ZoneYellow},
		{"stagnation", 70.0, 70, progress.ZoneRed},
		{"loss", 69.5, 70, progress.ZoneRed},
		// 预期 +0.4015（基数80.3），边界 0.3212/0.2409 同样受表示误差影响
		{"imprecise green boundary", 80.6212, 80.3, progress.ZoneGreen},
		{"imprecise yellow boundary", 80.5409, 80.3, progress.ZoneYellow},
	}

	for _, tc := range cases {
		if got := progress.ClassifyWeek(tc.current, tc.previous, goal); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestClassifyWeekCustomVariation(t *testing.T) {
	t.Parallel()
	goal := lossGoal(100, 90)
	goal.WeeklyVariationPercent = 2.0

	// 自定义预期 -2.0，只减1kg 不足八成减幅
	if zone := progress.ClassifyWeek(99, 100, goal); zone == progress.ZoneGreen {
		t.Fatalf("expected non-green with 2%% custom variation, got %s", zone)
	}
}

func TestClassifyWeekByLimitsWeightLoss(t *testing.T) {
	t.Parallel()

	// 第1周边界：lower=99.75 ideal=99.5 upper=99.25
	cases := []struct {
		name   string
		weight float64
		want   progress.Zone
	}{
		{"ideal boundary", 99.5, progress.ZoneGreen},
		{"inside green", 99.4, progress.ZoneGreen},
		{"upper boundary", 99.25, progress.ZoneGreen},
		{"inside yellow", 99.6, progress.ZoneYellow},
		{"lower boundary", 99.75, progress.ZoneYellow},
		{"too little loss", 99.9, progress.ZoneRed},
		{"weight gain", 100.5, progress.ZoneRed},
		{"too aggressive loss", 98.9, progress.ZoneRed},
	}

	for _, tc := range cases {
		got := progress.ClassifyWeekByLimits(tc.weight, 99.75, 99.5, 99.25, progress.WeightLoss)
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestClassifyWeekByLimitsMuscleGain(t *testing.T) {
	t.Parallel()

	// 增肌方向符号翻转：lower=70.175 ideal=70.245 upper=70.35
	cases := []struct {
		name   string
		weight float64
		want   progress.Zone
	}{
		{"inside green", 70.3, progress.ZoneGreen},
		{"ideal boundary", 70.245, progress.ZoneGreen},
		{"inside yellow", 70.2, progress.ZoneYellow},
		{"below lower", 70.1, progress.ZoneRed},
		{"any loss", 69.8, progress.ZoneRed},
	}

	for _, tc := range cases {
		got := progress.ClassifyWeekByLimits(tc.weight, 70.175, 70.245, 70.35, progress.MuscleGain)
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestBandsSelection(t *testing.T) {
	t.Parallel()

	standard := lossGoal(100, 90).Bands()
	if standard.YellowMin != 0.25 || standard.GreenMin != 0.50 || standard.GreenMax != 0.75 {
		t.Fatalf("unexpected standard loss bands: %+v", standard)
	}

	moderate := progress.Goal{Type: progress.WeightLoss, Subtype: progress.SubtypeModerate}.Bands()
	if moderate.YellowMin != 0.25 || moderate.GreenMin != 0.35 || moderate.GreenMax != 0.50 {
		t.Fatalf("unexpected moderate loss bands: %+v", moderate)
	}

	gain := gainGoal(70, 78).Bands()
	if gain != moderate {
		t.Fatalf("muscle gain bands should match moderate table, got %+v", gain)
	}
}
