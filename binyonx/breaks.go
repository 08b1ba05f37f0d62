package binyonx

import (
	"math"

	"binning/infra/errorx"
	"binning/infra/errorx/errCode"
)

// breaksOnNBins 按bin数量生成breaks, 等价于R的 seq(fromX, toX, length.out = nBins+1)
// shiftByHalfBin为true时bin宽度取 (toX-fromX)/(nBins-1), 起点左移半个bin,
// 使得bin中点(而不是bin边界)对齐原始等距网格点 (profile binning约定)
// 注意: 逐步累加生成, 最后一个边界不强制回写toX, 允许浮点漂移
func breaksOnNBins(fromX, toX float64, nBins int, shiftByHalfBin bool) []float64 {
	var binSize float64
	if shiftByHalfBin {
		binSize = (toX - fromX) / float64(nBins-1)
	} else {
		binSize = (toX - fromX) / float64(nBins)
	}

	cur := fromX
	if shiftByHalfBin {
		cur = fromX - binSize/2
	}

	brks := make([]float64, nBins+1)
	for i := 0; i <= nBins; i++ {
		brks[i] = cur
		cur += binSize
	}
	return brks
}

// breaksOnBinSize 按固定binSize生成breaks, 等价于R的 seq(fromX, toX, by = binSize)
// 最后一个边界强制等于toX, 因此最后一个bin可能比binSize略宽或略窄
func breaksOnBinSize(fromX, toX float64, nBins int, binSize float64) []float64 {
	brks := make([]float64, nBins+1)
	cur := fromX
	for i := 0; i < nBins; i++ {
		brks[i] = cur
		cur += binSize
	}
	brks[nBins] = toX
	return brks
}

// BreaksOnNBins 不移位的按数量生成入口
func BreaksOnNBins(fromX, toX float64, nBins int) ([]float64, error) {
	if nBins <= 0 {
		return nil, errorx.New(errCode.INVALID_VALUE, "nBins must be > 0")
	}
	return breaksOnNBins(fromX, toX, nBins, false), nil
}

// BreaksOnBinSize 按固定宽度生成入口, bin数量为 ceil((toX-fromX)/binSize)
func BreaksOnBinSize(fromX, toX, binSize float64) ([]float64, error) {
	if binSize <= 0 {
		return nil, errorx.New(errCode.INVALID_VALUE, "binSize must be > 0")
	}
	nBins := int(math.Ceil((toX - fromX) / binSize))
	if nBins <= 0 {
		return nil, errorx.New(errCode.INVALID_VALUE, "toX must be larger than fromX")
	}
	return breaksOnBinSize(fromX, toX, nBins, binSize), nil
}
