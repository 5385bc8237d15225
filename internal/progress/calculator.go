package progress

import (
	"math"
	"time"
)

// OverallProgressPercent 计算总体目标完成度，恒定返回 [0,100]。
// initialWeight == targetWeight 为退化输入，返回 0 避免除零。
func OverallProgressPercent(initialWeight, currentWeight, targetWeight float64, goalType GoalType) float64 {
	if initialWeight == targetWeight {
		return 0
	}

	var percent float64
	if goalType == MuscleGain {
		percent = (currentWeight - initialWeight) / (targetWeight - initialWeight) * 100
	} else {
		percent = (initialWeight - currentWeight) / (initialWeight - targetWeight) * 100
	}

	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CompletionEstimate 完成预估。EstimatedDate 按日历周数推算，
// 速度估算只用于 OnTrack 标记，两者刻意不对称。
type CompletionEstimate struct {
	WeeksRemaining int
	EstimatedDate  time.Time
	OnTrack        bool
}

// EstimateCompletion 根据打卡历史推算完成情况。
// 少于2条记录时返回保守结果（OnTrack=false），不报错。
func EstimateCompletion(updates []Update, g Goal, now time.Time) CompletionEstimate {
	weeksRemaining := ProjectionWeeks - len(updates)
	if weeksRemaining < 0 {
		weeksRemaining = 0
	}

	est := CompletionEstimate{
		WeeksRemaining: weeksRemaining,
		EstimatedDate:  now.AddDate(0, 0, weeksRemaining*7),
	}

	if len(updates) < 2 {
		return est
	}

	sorted := sortByWeekAsc(updates)

	// 周环比变化的均值
	var sum float64
	for i := 1; i < len(sorted); i++ {
		sum += sorted[i].Weight - sorted[i-1].Weight
	}
	avgWeeklyChange := sum / float64(len(sorted)-1)

	latest := sorted[len(sorted)-1].Weight
	remaining := math.Abs(g.TargetWeight - latest)

	directionOK := false
	if g.Type == MuscleGain {
		directionOK = avgWeeklyChange > 0
	} else {
		directionOK = avgWeeklyChange < 0
	}

	if directionOK {
		weeksToGoal := int(math.Ceil(remaining / math.Abs(avgWeeklyChange)))
		est.OnTrack = weeksToGoal <= weeksRemaining
	}

	return est
}
