package binyonx

import "math"

// 聚合方法
type AggMethod int

const (
	AGG_MAX   AggMethod = iota // "max"
	AGG_MIN                    // "min"
	AGG_SUM                    // "sum"
	AGG_MEAN                   // "mean"
	AGG_ERROR                  // "ERROR"
)

func (m AggMethod) String() string {
	switch m {
	case AGG_MAX:
		return "max"
	case AGG_MIN:
		return "min"
	case AGG_SUM:
		return "sum"
	case AGG_MEAN:
		return "mean"
	default:
		return "ERROR"
	}
}

func GetMyAggMethod(s string) AggMethod {
	switch s {
	case "max":
		return AGG_MAX
	case "min":
		return AGG_MIN
	case "sum":
		return AGG_SUM
	case "mean":
		return AGG_MEAN
	default:
		return AGG_ERROR
	}
}

// foldFunc 把一个非缺失的y值折叠进第i个bin的累计量
type foldFunc func(i int, yVal float64)

// binScan 单趟协同扫描: x与brks均递增, 游标只进不退, O(bins+samples)
// bin区间为左闭右开 [brks[i], brks[i+1]), 最后一个bin两端闭合
// 规则:
//  1. x < brks[0] 的样本被游标消耗后静默丢弃
//  2. x >= brks[i+1] 且不是末bin闭合情形时, 不消耗游标, 留给后续bin
//  3. 超出最后一个边界的样本使游标停滞, 同样静默丢弃 (不报错)
//  4. y为NaN的样本在fold前丢弃, 但游标照常前进
func binScan(x, y, brks []float64, nBin, fromIdx, toIdx int, fold foldFunc) {
	lastBin := nBin - 1
	cur := fromIdx
	for i := 0; i < nBin; i++ {
		for cur <= toIdx {
			xv := x[cur]
			if xv >= brks[i] {
				if xv < brks[i+1] || (xv == brks[i+1] && i == lastBin) {
					if !math.IsNaN(y[cur]) {
						fold(i, y[cur])
					}
				} else {
					// 当前样本属于更后面的bin, 游标原地等下一个bin
					break
				}
			}
			cur++
		}
	}
}

// binMidPoints 相邻边界的中点
func binMidPoints(brks []float64) []float64 {
	nBin := len(brks) - 1
	mids := make([]float64, nBin)
	for i := 0; i < nBin; i++ {
		mids[i] = (brks[i] + brks[i+1]) / 2
	}
	return mids
}
