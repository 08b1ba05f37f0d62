package binyonx

import "math"

// HistogramBin 每个分箱的结构
type HistogramBin struct {
	From  float64
	To    float64
	Count int
}

// Hist 按指定bins对data做计数分箱, 范围取data自身的min/max
// 与BinYonX不同, data无需有序
func Hist(data []float64, bins int) []HistogramBin {
	if len(data) == 0 || bins <= 0 {
		return nil
	}

	// 1. 求最小值最大值, NaN样本不参与
	minV, maxV := math.NaN(), math.NaN()
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(minV) || v < minV {
			minV = v
		}
		if math.IsNaN(maxV) || v > maxV {
			maxV = v
		}
	}
	if math.IsNaN(minV) {
		// 全是NaN
		return nil
	}

	// 避免 max == min 导致除0
	if maxV == minV {
		maxV = minV + 1e-9
	}

	// 2. 边界统一走breaks生成
	brks := breaksOnNBins(minV, maxV, bins, false)
	width := (maxV - minV) / float64(bins)

	result := make([]HistogramBin, bins)
	for i := 0; i < bins; i++ {
		result[i] = HistogramBin{From: brks[i], To: brks[i+1], Count: 0}
	}

	// 3. 遍历数据并统计, NaN样本跳过
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		idx := int(math.Floor((v - minV) / width))
		if idx == bins { // 处理 v == maxV 的边界
			idx = bins - 1
		}
		result[idx].Count++
	}

	return result
}
