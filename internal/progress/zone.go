package progress

// Zone 表示某一周相对预期的进度区间
type Zone string

const (
	ZoneGreen  Zone = "green"
	ZoneYellow Zone = "yellow"
	ZoneRed    Zone = "red"
)

type GoalType string

const (
	WeightLoss GoalType = "weight_loss"
	MuscleGain GoalType = "muscle_gain"
)

type GoalSubtype string

const (
	SubtypeStandard GoalSubtype = "standard"
	SubtypeModerate GoalSubtype = "moderate"
)

// Goal 学员的目标配置，所有核心函数的显式入参，不读取任何全局状态
type Goal struct {
	Type          GoalType
	Subtype       GoalSubtype
	InitialWeight float64 // kg，入组时固定
	TargetWeight  float64 // kg
	// 每周预期变化百分比，0 表示使用产品默认值（减重1%，增肌0.5%）
	WeeklyVariationPercent float64
}

// BandConfig 区间阈值表，为初始体重的百分比。
// 数值为产品调优的固定常量，不做公式推导。
type BandConfig struct {
	YellowMin float64
	GreenMin  float64
	GreenMax  float64
}

var (
	bandWeightLossStandard = BandConfig{YellowMin: 0.25, GreenMin: 0.50, GreenMax: 0.75}
	bandWeightLossModerate = BandConfig{YellowMin: 0.25, GreenMin: 0.35, GreenMax: 0.50}
	bandMuscleGain         = BandConfig{YellowMin: 0.25, GreenMin: 0.35, GreenMax: 0.50}
)

// Bands 返回目标对应的区间阈值表
func (g Goal) Bands() BandConfig {
	if g.Type == MuscleGain {
		return bandMuscleGain
	}
	if g.Subtype == SubtypeModerate {
		return bandWeightLossModerate
	}
	return bandWeightLossStandard
}

const (
	defaultVariationWeightLoss = 1.0
	defaultVariationMuscleGain = 0.5
)

func (g Goal) weeklyVariation() float64 {
	if g.WeeklyVariationPercent > 0 {
		return g.WeeklyVariationPercent
	}
	if g.Type == MuscleGain {
		return defaultVariationMuscleGain
	}
	return defaultVariationWeightLoss
}

// 边界比较容差：70.21-70 这类减法会落在阈值下方一个 ulp，
// 包含式边界必须带容差比较，否则恰好压线的打卡被错判
const boundaryEpsilon = 1e-9

// ClassifyWeek 根据周环比变化计算区间。
// previousWeight <= 0 视为没有上一周数据，默认绿区（无法评估趋势）。
func ClassifyWeek(currentWeight, previousWeight float64, g Goal) Zone {
	if previousWeight <= 0 {
		return ZoneGreen
	}

	weightChange := currentWeight - previousWeight
	expectedChange := previousWeight * g.weeklyVariation() / 100

	if g.Type == MuscleGain {
		if weightChange >= expectedChange*0.8-boundaryEpsilon {
			return ZoneGreen
		}
		if weightChange >= expectedChange*0.6-boundaryEpsilon {
			return ZoneYellow
		}
		return ZoneRed
	}

	// 减重方向预期为负值，"<=" 即至少达到预期的八成减幅
	expectedChange = -expectedChange
	if weightChange <= expectedChange*0.8+boundaryEpsilon {
		return ZoneGreen
	}
	if weightChange <= expectedChange*1.2+boundaryEpsilon {
		return ZoneYellow
	}
	return ZoneRed
}

// ClassifyWeekByLimits 按 24 周投影边界计算区间，与周环比分类互补。
// 减重方向 upperLimit 为最激进减幅边界，idealTarget 为最保守的绿区边界。
func ClassifyWeekByLimits(weight, lowerLimit, idealTarget, upperLimit float64, goalType GoalType) Zone {
	if goalType == MuscleGain {
		if weight >= idealTarget && weight <= upperLimit {
			return ZoneGreen
		}
		if weight >= lowerLimit && weight < idealTarget {
			return ZoneYellow
		}
		return ZoneRed
	}

	if weight <= idealTarget && weight >= upperLimit {
		return ZoneGreen
	}
	if weight <= lowerLimit && weight > idealTarget {
		return ZoneYellow
	}
	return ZoneRed
}

// zoneAt 按该周的投影边界对一条记录做区间分类，连续绿区/无红区统计都走这里
func zoneAt(u Update, g Goal) Zone {
	band := BandAt(g, u.Week)
	return ClassifyWeekByLimits(u.Weight, band.LowerBound, band.IdealTarget, band.UpperBound, g.Type)
}
