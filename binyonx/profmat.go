package binyonx

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"binning/infra/errorx"
	"binning/infra/errorx/errCode"
	"binning/infra/observe/log/staticLog"
)

// ProfMat 多段scan的profile矩阵
// 每个scan的(x,y)按同一组binSize网格分箱, 聚合结果作为矩阵第j列, 行对应bin
// 空bin填0 (profile矩阵约定), 同时返回公共的bin中点
// 核心分箱不校验长度, 长度校验由本适配层负责
func ProfMat(xs, ys [][]float64, fromX, toX, binSize float64, method AggMethod) (*mat.Dense, []float64, error) {
	if len(xs) == 0 {
		return nil, nil, errorx.New(errCode.EMPTY_VALUE, "no scans to bin")
	}
	if len(xs) != len(ys) {
		return nil, nil, errorx.New(errCode.INVALID_VALUE, "xs and ys must have the same number of scans")
	}
	if binSize <= 0 {
		return nil, nil, errorx.New(errCode.INVALID_VALUE, "binSize must be > 0")
	}

	nBins := int(math.Ceil((toX - fromX) / binSize))
	if nBins <= 0 {
		return nil, nil, errorx.New(errCode.INVALID_VALUE, "toX must be larger than fromX")
	}
	m := mat.NewDense(nBins, len(xs), nil)
	mids := binMidPoints(breaksOnBinSize(fromX, toX, nBins, binSize))

	for j := range xs {
		if len(xs[j]) != len(ys[j]) {
			return nil, nil, errorx.New(errCode.INVALID_VALUE,
				fmt.Sprintf("scan %d: x/y length mismatch (%d vs %d)", j, len(xs[j]), len(ys[j])))
		}
		if len(xs[j]) == 0 {
			// 空scan留全0列
			staticLog.Log.Warnf("profmat: scan %d is empty, column left at 0", j)
			continue
		}

		p := DefaultBinParams()
		p.BinSize = binSize
		p.FromX = fromX
		p.ToX = toX
		p.FromIdx = 0
		p.ToIdx = len(xs[j]) - 1
		p.InitValue = 0
		p.Method = method

		res, err := BinYonX(xs[j], ys[j], p)
		if err != nil {
			return nil, nil, err
		}
		m.SetCol(j, res.Y)
	}

	return m, mids, nil
}
