// binyonx 把x序列按breaks分箱, 并对落入每个bin的y值做聚合 (max/min/sum/mean)
// breaks的来源三选一, 优先级: 显式Breaks > NBins > BinSize
// x要求在 [FromIdx, ToIdx] 范围内非降序; y与x等长由调用方保证
package binyonx

import (
	"math"

	"binning/infra/errorx"
	"binning/infra/errorx/errCode"
)

type BinParams struct {
	Breaks         []float64 // 显式breaks, 长度 = bin数+1
	NBins          int       // bin数量 (Breaks为空时生效)
	BinSize        float64   // 固定bin宽度 (Breaks与NBins均未给时生效)
	FromX          float64   // 分箱起点 (计算breaks时使用)
	ToX            float64   // 分箱终点
	FromIdx        int       // x/y子区间起始下标 (含)
	ToIdx          int       // x/y子区间结束下标 (含)
	ShiftByHalfBin bool      // 整体左移半个bin, 见breaksOnNBins
	InitValue      float64   // 空bin的填充值, NaN表示保留缺失
	Method         AggMethod
}

// DefaultBinParams InitValue默认NaN (空bin保留缺失), 避免零值误填0
func DefaultBinParams() BinParams {
	return BinParams{InitValue: math.NaN(), Method: AGG_MAX}
}

type BinResult struct {
	X []float64 // bin中点
	Y []float64 // 每个bin的聚合值
}

// BinYonX 分箱主入口
// 纯函数: 不修改x/y, 输出为新分配buffer, 可并发调用
func BinYonX(x, y []float64, p BinParams) (BinResult, error) {
	// 1. 下标校验, 任一失败立即返回, 不产生部分结果
	if p.FromIdx < 0 || p.ToIdx < 0 {
		return BinResult{}, errorx.New(errCode.INVALID_VALUE, "FromIdx and ToIdx have to be >= 0")
	}
	if p.FromIdx > p.ToIdx {
		return BinResult{}, errorx.New(errCode.INVALID_VALUE, "FromIdx has to be smaller than ToIdx")
	}
	if p.ToIdx >= len(x) {
		return BinResult{}, errorx.New(errCode.INVALID_VALUE, "ToIdx can not be larger than length(x)")
	}

	// 2. 解析breaks
	var brks []float64
	switch {
	case len(p.Breaks) > 0:
		if len(p.Breaks) < 2 {
			return BinResult{}, errorx.New(errCode.INVALID_VALUE, "not enough breaks defined")
		}
		brks = p.Breaks
	case p.NBins != 0:
		if p.NBins < 0 {
			return BinResult{}, errorx.New(errCode.INVALID_VALUE, "NBins must be > 0")
		}
		brks = breaksOnNBins(p.FromX, p.ToX, p.NBins, p.ShiftByHalfBin)
	case p.BinSize != 0:
		if p.BinSize < 0 {
			return BinResult{}, errorx.New(errCode.INVALID_VALUE, "BinSize must be > 0")
		}
		fromX := p.FromX
		if p.ShiftByHalfBin {
			fromX -= p.BinSize / 2
		}
		nBins := int(math.Ceil((p.ToX - fromX) / p.BinSize))
		if nBins <= 0 {
			return BinResult{}, errorx.New(errCode.INVALID_VALUE, "ToX must be larger than FromX")
		}
		brks = breaksOnBinSize(fromX, p.ToX, nBins, p.BinSize)
	default:
		return BinResult{}, errorx.New(errCode.INVALID_VALUE, "one of Breaks, NBins or BinSize must be specified")
	}
	nBin := len(brks) - 1

	// 3. 聚合buffer初始化为缺失
	ans := make([]float64, nBin)
	for i := range ans {
		ans[i] = math.NaN()
	}

	// 4. 扫描+聚合: 同一套扫描骨架, 仅fold不同, 避免四份循环各自漂移
	switch p.Method {
	case AGG_MAX:
		binScan(x, y, brks, nBin, p.FromIdx, p.ToIdx, func(i int, v float64) {
			if math.IsNaN(ans[i]) || v > ans[i] {
				ans[i] = v
			}
		})
	case AGG_MIN:
		binScan(x, y, brks, nBin, p.FromIdx, p.ToIdx, func(i int, v float64) {
			if math.IsNaN(ans[i]) || v < ans[i] {
				ans[i] = v
			}
		})
	case AGG_SUM:
		binScan(x, y, brks, nBin, p.FromIdx, p.ToIdx, func(i int, v float64) {
			if math.IsNaN(ans[i]) {
				ans[i] = v
			} else {
				ans[i] += v
			}
		})
	case AGG_MEAN:
		counts := make([]int, nBin)
		binScan(x, y, brks, nBin, p.FromIdx, p.ToIdx, func(i int, v float64) {
			if math.IsNaN(ans[i]) {
				ans[i] = v
			} else {
				ans[i] += v
			}
			counts[i]++
		})
		// 计数为0的bin保持缺失, 不做除法
		for i, c := range counts {
			if c > 0 {
				ans[i] /= float64(c)
			}
		}
	default:
		return BinResult{}, errorx.New(errCode.INVALID_VALUE, "unknown aggregation method")
	}

	// 5. 空bin填充 (InitValue为NaN时跳过)
	if !math.IsNaN(p.InitValue) {
		for i := range ans {
			if math.IsNaN(ans[i]) {
				ans[i] = p.InitValue
			}
		}
	}

	return BinResult{X: binMidPoints(brks), Y: ans}, nil
}
