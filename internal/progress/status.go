package progress

import (
	"fmt"
	"time"
)

// StaleSentinelDays 从未打卡的学员的陈旧天数哨兵值
const StaleSentinelDays = 999

const (
	staleAttentionDays = 7
	inactiveDays       = 14
	stagnationRangeKg  = 0.5
)

// MenteeStatus 学员派生状态，不落库
type MenteeStatus struct {
	Zone                Zone     `json:"currentZone"`
	DaysSinceLastUpdate int      `json:"daysSinceLastUpdate"`
	NeedsAttention      bool     `json:"needsAttention"`
	AttentionReasons    []string `json:"attentionReasons"`
}

// ComputeMenteeStatus 从打卡历史派生学员状态
func ComputeMenteeStatus(updates []Update, g Goal, now time.Time) MenteeStatus {
	if len(updates) == 0 {
		return MenteeStatus{
			Zone:                ZoneRed,
			DaysSinceLastUpdate: StaleSentinelDays,
			NeedsAttention:      true,
			AttentionReasons:    []string{"no check-ins"},
		}
	}

	sorted := sortByWeekDesc(updates)
	days := int(now.Sub(sorted[0].CreatedAt).Hours() / 24)
	if days < 0 {
		days = 0
	}

	status := MenteeStatus{DaysSinceLastUpdate: days}

	if days > staleAttentionDays {
		status.AttentionReasons = append(status.AttentionReasons, fmt.Sprintf("no check-in in %d days", days))
	}

	if len(sorted) >= 2 && zoneAt(sorted[0], g) == ZoneRed && zoneAt(sorted[1], g) == ZoneRed {
		status.AttentionReasons = append(status.AttentionReasons, "2+ weeks in red zone")
	}

	if IsStagnating(updates) {
		status.AttentionReasons = append(status.AttentionReasons, "stagnation")
	}

	status.NeedsAttention = len(status.AttentionReasons) > 0

	if len(sorted) >= 2 {
		status.Zone = ClassifyWeek(sorted[0].Weight, sorted[1].Weight, g)
	} else {
		status.Zone = ZoneGreen
	}

	return status
}

// IsStagnating 最近3周体重波动范围小于0.5kg
func IsStagnating(updates []Update) bool {
	if len(updates) < 3 {
		return false
	}

	sorted := sortByWeekDesc(updates)
	min, max := sorted[0].Weight, sorted[0].Weight
	for _, u := range sorted[:3] {
		if u.Weight < min {
			min = u.Weight
		}
		if u.Weight > max {
			max = u.Weight
		}
	}
	return max-min < stagnationRangeKg
}

// RosterEntry 后台聚合的单个学员条目，由服务层从历史记录装配
type RosterEntry struct {
	MenteeID      uint
	Name          string
	Status        MenteeStatus
	Progress      float64
	ProgressValid bool // goal 退化（目标等于初始体重）时为 false，均值不计入
	RedStreak     int
	Stagnating    bool
	UpdateCount   int
}

// GlobalStats 学员花名册的全局统计
type GlobalStats struct {
	TotalMentees    int     `json:"totalMentees"`
	GreenCount      int     `json:"greenCount"`
	YellowCount     int     `json:"yellowCount"`
	RedCount        int     `json:"redCount"`
	ActiveCount     int     `json:"activeCount"`
	InactiveCount   int     `json:"inactiveCount"`
	NeedsAttention  int     `json:"needsAttention"`
	AverageProgress float64 `json:"averageProgress"`
}

// AggregateRoster 将各学员状态折叠为全局统计
func AggregateRoster(entries []RosterEntry) GlobalStats {
	stats := GlobalStats{TotalMentees: len(entries)}

	progressSum := 0.0
	progressCount := 0

	for _, e := range entries {
		switch e.Status.Zone {
		case ZoneGreen:
			stats.GreenCount++
		case ZoneYellow:
			stats.YellowCount++
		case ZoneRed:
			stats.RedCount++
		}

		if e.Status.DaysSinceLastUpdate <= inactiveDays {
			stats.ActiveCount++
		} else {
			stats.InactiveCount++
		}

		if e.Status.NeedsAttention {
			stats.NeedsAttention++
		}

		if e.ProgressValid {
			progressSum += e.Progress
			progressCount++
		}
	}

	if progressCount > 0 {
		stats.AverageProgress = progressSum / float64(progressCount)
	}
	return stats
}

// AlertPriority 告警优先级，数值越大越紧急
type AlertPriority int

const (
	AlertLow AlertPriority = iota + 1
	AlertMedium
	AlertHigh
	AlertUrgent
)

func (p AlertPriority) String() string {
	switch p {
	case AlertUrgent:
		return "urgent"
	case AlertHigh:
		return "high"
	case AlertMedium:
		return "medium"
	default:
		return "low"
	}
}

// Alert 单个学员的告警
type Alert struct {
	MenteeID uint          `json:"menteeId"`
	Name     string        `json:"name"`
	Priority AlertPriority `json:"priority"`
	Reason   string        `json:"reason"`
}

// BuildAlerts 生成按优先级排序的告警列表，同级保持输入顺序。
// 每个学员最多产出一条，取其最高级别的触发条件：
// Urgent（>14天未打卡或连续3周红区）> High（7-14天未打卡）> Medium（停滞）> Low（从未打卡）。
func BuildAlerts(entries []RosterEntry) []Alert {
	buckets := map[AlertPriority][]Alert{}

	for _, e := range entries {
		var alert *Alert

		switch {
		case e.UpdateCount == 0:
			alert = &Alert{Priority: AlertLow, Reason: "no check-ins yet"}
		case e.Status.DaysSinceLastUpdate > inactiveDays:
			alert = &Alert{
				Priority: AlertUrgent,
				Reason:   fmt.Sprintf("no check-in in %d days", e.Status.DaysSinceLastUpdate),
			}
		case e.RedStreak >= 3:
			alert = &Alert{Priority: AlertUrgent, Reason: "3+ consecutive red weeks"}
		case e.Status.DaysSinceLastUpdate > staleAttentionDays:
			alert = &Alert{
				Priority: AlertHigh,
				Reason:   fmt.Sprintf("no check-in in %d days", e.Status.DaysSinceLastUpdate),
			}
		case e.Stagnating:
			alert = &Alert{Priority: AlertMedium, Reason: "stagnation"}
		}

		if alert != nil {
			alert.MenteeID = e.MenteeID
			alert.Name = e.Name
			buckets[alert.Priority] = append(buckets[alert.Priority], *alert)
		}
	}

	var alerts []Alert
	for _, p := range []AlertPriority{AlertUrgent, AlertHigh, AlertMedium, AlertLow} {
		alerts = append(alerts, buckets[p]...)
	}
	return alerts
}
