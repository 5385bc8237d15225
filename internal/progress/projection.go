package progress

import (
	"math"
	"time"
)

// ProjectionWeeks 投影周期固定为24周
const ProjectionWeeks = 24

// WeekBand 某一周的投影边界，保留全精度用于分类比较；
// 展示层自行用 Round1 取一位小数。
type WeekBand struct {
	Week        int
	LowerBound  float64
	IdealTarget float64
	UpperBound  float64
	// 该周实际打卡体重，没有记录时为 nil
	Actual *float64
}

// BandAt 计算第 n 周的投影边界：三个阈值百分比按周数线性累加，
// 减重从初始体重递减，增肌递增。
func BandAt(g Goal, n int) WeekBand {
	bands := g.Bands()
	w0 := g.InitialWeight

	lower := w0 * bands.YellowMin / 100 * float64(n)
	ideal := w0 * bands.GreenMin / 100 * float64(n)
	upper := w0 * bands.GreenMax / 100 * float64(n)

	if g.Type == MuscleGain {
		return WeekBand{Week: n, LowerBound: w0 + lower, IdealTarget: w0 + ideal, UpperBound: w0 + upper}
	}
	return WeekBand{Week: n, LowerBound: w0 - lower, IdealTarget: w0 - ideal, UpperBound: w0 - upper}
}

// Project24Weeks 生成24周的投影表，并将已有打卡的实际体重挂到对应周
func Project24Weeks(g Goal, updates []Update) []WeekBand {
	byWeek := make(map[int]float64, len(updates))
	for _, u := range updates {
		byWeek[u.Week] = u.Weight
	}

	result := make([]WeekBand, 0, ProjectionWeeks)
	for n := 1; n <= ProjectionWeeks; n++ {
		band := BandAt(g, n)
		if w, ok := byWeek[n]; ok {
			actual := w
			band.Actual = &actual
		}
		result = append(result, band)
	}
	return result
}

// Round1 展示用的一位小数舍入
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Update 核心算法消费的打卡记录视图，由服务层从存储模型映射而来
type Update struct {
	Week      int
	Weight    float64
	Photos    int  // 已上传的照片引用数量（最多3张）
	Measured  bool // 体脂率与三围是否全部填写
	CreatedAt time.Time
}
