package progress

// XPState 经验值状态，TotalXP 单调不减，Level 由分层成本曲线推导
type XPState struct {
	TotalXP int
	Level   int
}

// ActionType 可获得经验值的动作类型
type ActionType string

const (
	ActionCheckin          ActionType = "checkin"
	ActionGreenZone        ActionType = "green_zone"
	ActionGreenStreak      ActionType = "green_streak"
	ActionBadge            ActionType = "badge"
	ActionIntermediateGoal ActionType = "intermediate_goal"
	ActionPhotoBonus       ActionType = "photo_bonus"
	ActionPerfectWeek      ActionType = "perfect_week"
)

// 各动作的固定积分，产品定值
var actionXP = map[ActionType]int{
	ActionCheckin:          50,
	ActionGreenZone:        100,
	ActionGreenStreak:      150,
	ActionBadge:            200,
	ActionIntermediateGoal: 300,
	ActionPhotoBonus:       25,
	ActionPerfectWeek:      200,
}

// ActionAmount 返回动作的固定积分，未知动作为 0
func ActionAmount(action ActionType) int {
	return actionXP[action]
}

// LevelCost 升到下一级所需经验，阈值在 5/10/20 级处分档
func LevelCost(level int) int {
	switch {
	case level <= 5:
		return 500
	case level <= 10:
		return 750
	case level <= 20:
		return 1000
	default:
		return 1500
	}
}

// levelForTotal 从1级起逐档消耗成本求等级，成本分档无闭式解
func levelForTotal(total int) int {
	level := 1
	remaining := total
	for remaining >= LevelCost(level) {
		remaining -= LevelCost(level)
		level++
	}
	return level
}

// Grant 为动作发放积分，返回新状态和是否升级。等级只升不降。
func Grant(state XPState, action ActionType) (XPState, bool) {
	return GrantAmount(state, actionXP[action])
}

// GrantAmount 发放指定数量的积分
func GrantAmount(state XPState, amount int) (XPState, bool) {
	if state.Level < 1 {
		state.Level = 1
	}
	if amount < 0 {
		amount = 0
	}

	newState := XPState{TotalXP: state.TotalXP + amount}
	newState.Level = levelForTotal(newState.TotalXP)
	if newState.Level < state.Level {
		newState.Level = state.Level
	}
	return newState, newState.Level > state.Level
}

// XPProgressPercent 当前等级内的经验进度百分比，封顶100
func XPProgressPercent(state XPState) float64 {
	if state.Level < 1 {
		state.Level = 1
	}

	consumed := 0
	for l := 1; l < state.Level; l++ {
		consumed += LevelCost(l)
	}

	within := state.TotalXP - consumed
	if within < 0 {
		within = 0
	}

	percent := float64(within) / float64(LevelCost(state.Level)) * 100
	if percent > 100 {
		return 100
	}
	return percent
}
