package progress

import (
	"math"
	"sort"
)

func sortByWeekDesc(updates []Update) []Update {
	sorted := make([]Update, len(updates))
	copy(sorted, updates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Week > sorted[j].Week })
	return sorted
}

func sortByWeekAsc(updates []Update) []Update {
	sorted := make([]Update, len(updates))
	copy(sorted, updates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Week < sorted[j].Week })
	return sorted
}

// ConsecutiveWeekStreak 从最近一周往回数连续打卡周数，遇到断档即停。
// 只看相邻两条记录的周号差，不假设历史从第1周开始连续。
func ConsecutiveWeekStreak(updates []Update) int {
	if len(updates) == 0 {
		return 0
	}

	sorted := sortByWeekDesc(updates)
	streak := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Week-sorted[i].Week != 1 {
			break
		}
		streak++
	}
	return streak
}

// ConsecutiveGreenStreak 连续绿区周数，区间按该周的投影边界判定
func ConsecutiveGreenStreak(updates []Update, g Goal) int {
	if len(updates) == 0 {
		return 0
	}

	sorted := sortByWeekDesc(updates)
	if zoneAt(sorted[0], g) != ZoneGreen {
		return 0
	}

	streak := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Week-sorted[i].Week != 1 {
			break
		}
		if zoneAt(sorted[i], g) != ZoneGreen {
			break
		}
		streak++
	}
	return streak
}

// NoRedStreak 连续避开红区的周数
func NoRedStreak(updates []Update, g Goal) int {
	if len(updates) == 0 {
		return 0
	}

	sorted := sortByWeekDesc(updates)
	if zoneAt(sorted[0], g) == ZoneRed {
		return 0
	}

	streak := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Week-sorted[i].Week != 1 {
			break
		}
		if zoneAt(sorted[i], g) == ZoneRed {
			break
		}
		streak++
	}
	return streak
}

// ConsecutiveRedStreak 从最近一周往回数连续红区周数，后台告警用
func ConsecutiveRedStreak(updates []Update, g Goal) int {
	if len(updates) == 0 {
		return 0
	}

	sorted := sortByWeekDesc(updates)
	if zoneAt(sorted[0], g) != ZoneRed {
		return 0
	}

	streak := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Week-sorted[i].Week != 1 {
			break
		}
		if zoneAt(sorted[i], g) != ZoneRed {
			break
		}
		streak++
	}
	return streak
}

// HasComeback 最近三周（按时间顺序）前两周均为红区且最近一周为绿区
func HasComeback(updates []Update, g Goal) bool {
	if len(updates) < 3 {
		return false
	}

	sorted := sortByWeekDesc(updates)
	latest, prev1, prev2 := sorted[0], sorted[1], sorted[2]

	return zoneAt(prev2, g) == ZoneRed &&
		zoneAt(prev1, g) == ZoneRed &&
		zoneAt(latest, g) == ZoneGreen
}

// TotalGreenWeeks 历史上绿区周总数，与顺序无关
func TotalGreenWeeks(updates []Update, g Goal) int {
	count := 0
	for _, u := range updates {
		if zoneAt(u, g) == ZoneGreen {
			count++
		}
	}
	return count
}

// WeightMilestoneDelta 最近体重与初始体重的差值绝对值（kg）
func WeightMilestoneDelta(updates []Update, g Goal) float64 {
	if len(updates) == 0 {
		return 0
	}
	sorted := sortByWeekDesc(updates)
	return math.Abs(sorted[0].Weight - g.InitialWeight)
}

// PhotoCompletionCount 带照片的打卡次数
func PhotoCompletionCount(updates []Update) int {
	count := 0
	for _, u := range updates {
		if u.Photos > 0 {
			count++
		}
	}
	return count
}

// MeasuredUpdateCount 填全体脂率和三围的打卡次数
func MeasuredUpdateCount(updates []Update) int {
	count := 0
	for _, u := range updates {
		if u.Measured {
			count++
		}
	}
	return count
}
