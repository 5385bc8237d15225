package progress

// BadgeType 徽章标识，固定目录，枚举穷尽
type BadgeType string

const (
	BadgeFirstCheckin       BadgeType = "first_checkin"
	BadgeConsistency4Weeks  BadgeType = "consistency_4weeks"
	BadgeConsistency12Weeks BadgeType = "consistency_12weeks"
	BadgeConsistency24Weeks BadgeType = "consistency_24weeks"
	BadgeWeightMilestone5   BadgeType = "weight_milestone_5kg"
	BadgeWeightMilestone10  BadgeType = "weight_milestone_10kg"
	BadgePhotoChampion      BadgeType = "photo_champion"
	BadgeGreenStreak3       BadgeType = "green_streak_3"
	BadgeGreenStreak5       BadgeType = "green_streak_5"
	BadgeGreenStreak10      BadgeType = "green_streak_10"
	BadgeFirstGreen         BadgeType = "first_green"
	BadgeDiamond12          BadgeType = "diamond_12"
	BadgePerfectStreak4     BadgeType = "perfect_streak_4"
	BadgeNoRed8             BadgeType = "no_red_8"
	BadgeComeback           BadgeType = "comeback"
	BadgeHalfwayThere       BadgeType = "halfway_there"
	BadgeGoalAchieved       BadgeType = "goal_achieved"
	BadgeMeasurementMaster  BadgeType = "measurement_master"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// BadgeInfo 徽章展示元数据
type BadgeInfo struct {
	Type        BadgeType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Rarity      Rarity    `json:"rarity"`
}

// Catalog 固定徽章目录（18项），评估顺序与此一致
var Catalog = []BadgeInfo{
	{BadgeFirstCheckin, "初次打卡", "完成第一次周打卡", "🎯", RarityCommon},
	{BadgeConsistency4Weeks, "坚持四周", "连续打卡4周", "📅", RarityCommon},
	{BadgeConsistency12Weeks, "坚持十二周", "连续打卡12周", "🗓️", RarityRare},
	{BadgeConsistency24Weeks, "全程坚持", "连续打卡24周", "🏆", RarityLegendary},
	{BadgeWeightMilestone5, "5公斤里程碑", "体重变化达到5公斤", "⚖️", RarityRare},
	{BadgeWeightMilestone10, "10公斤里程碑", "体重变化达到10公斤", "💪", RarityEpic},
	{BadgePhotoChampion, "照片达人", "累计10次打卡上传照片", "📸", RarityRare},
	{BadgeGreenStreak3, "绿区三连", "连续3周处于绿区", "🟢", RarityCommon},
	{BadgeGreenStreak5, "绿区五连", "连续5周处于绿区", "✅", RarityRare},
	{BadgeGreenStreak10, "绿区十连", "连续10周处于绿区", "🌟", RarityEpic},
	{BadgeFirstGreen, "首次绿区", "第一次进入绿区", "🍀", RarityCommon},
	{BadgeDiamond12, "钻石学员", "累计12周处于绿区", "💎", RarityEpic},
	{BadgePerfectStreak4, "完美四周", "连续4周不间断打卡", "🔥", RarityRare},
	{BadgeNoRed8, "远离红区", "连续8周未进入红区", "🛡️", RarityEpic},
	{BadgeComeback, "逆袭归来", "连续两周红区后重回绿区", "🚀", RarityRare},
	{BadgeHalfwayThere, "行程过半", "目标完成度达到50%", "⛰️", RarityRare},
	{BadgeGoalAchieved, "目标达成", "目标完成度达到100%", "🥇", RarityLegendary},
	{BadgeMeasurementMaster, "测量专家", "5次打卡填全体脂与围度数据", "📏", RarityRare},
}

var catalogIndex = func() map[BadgeType]BadgeInfo {
	m := make(map[BadgeType]BadgeInfo, len(Catalog))
	for _, b := range Catalog {
		m[b.Type] = b
	}
	return m
}()

// BadgeMeta 按类型查找徽章元数据
func BadgeMeta(t BadgeType) (BadgeInfo, bool) {
	info, ok := catalogIndex[t]
	return info, ok
}

// EvaluateBadges 对当前历史快照评估所有谓词，返回新达成且未持有的徽章。
// 幂等：同一快照与同一 earned 集合重复调用产出相同结果，已授予的徽章不会撤销。
func EvaluateBadges(updates []Update, g Goal, earned map[BadgeType]bool) []BadgeType {
	weekStreak := ConsecutiveWeekStreak(updates)
	greenStreak := ConsecutiveGreenStreak(updates, g)
	greenTotal := TotalGreenWeeks(updates, g)
	noRed := NoRedStreak(updates, g)
	milestone := WeightMilestoneDelta(updates, g)
	photos := PhotoCompletionCount(updates)
	measured := MeasuredUpdateCount(updates)

	var currentProgress float64
	if len(updates) > 0 {
		latest := sortByWeekDesc(updates)[0]
		currentProgress = OverallProgressPercent(g.InitialWeight, latest.Weight, g.TargetWeight, g.Type)
	}

	satisfied := map[BadgeType]bool{
		BadgeFirstCheckin:       len(updates) == 1,
		BadgeConsistency4Weeks:  weekStreak >= 4,
		BadgeConsistency12Weeks: weekStreak >= 12,
		BadgeConsistency24Weeks: weekStreak >= 24,
		BadgeWeightMilestone5:   milestone >= 5,
		BadgeWeightMilestone10:  milestone >= 10,
		BadgePhotoChampion:      photos >= 10,
		BadgeGreenStreak3:       greenStreak >= 3,
		BadgeGreenStreak5:       greenStreak >= 5,
		BadgeGreenStreak10:      greenStreak >= 10,
		BadgeFirstGreen:         greenTotal >= 1,
		BadgeDiamond12:          greenTotal >= 12,
		BadgePerfectStreak4:     weekStreak >= 4,
		BadgeNoRed8:             noRed >= 8,
		BadgeComeback:           HasComeback(updates, g),
		BadgeHalfwayThere:       currentProgress >= 50,
		BadgeGoalAchieved:       currentProgress >= 100,
		BadgeMeasurementMaster:  measured >= 5,
	}

	var newly []BadgeType
	for _, b := range Catalog {
		if satisfied[b.Type] && !earned[b.Type] {
			newly = append(newly, b.Type)
		}
	}
	return newly
}
