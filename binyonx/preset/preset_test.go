package preset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"binning/binyonx"
	"binning/infra/errorx"
	"binning/infra/errorx/errCode"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const goodConfig = `
presets:
  tic:
    nbins: 5
    method: sum
  prof:
    binsize: 2.0
    method: mean
    shift: false
    initvalue: 0
`

func TestLoadAndGet(t *testing.T) {
	path := writeConfig(t, goodConfig)
	if err := Init(path); err != nil {
		t.Fatal(err)
	}

	// key规范化: 大小写与空格不敏感
	if _, ok := Get(" TIC "); !ok {
		t.Fatal("preset tic not found")
	}
	p, ok := Get("prof")
	if !ok {
		t.Fatal("preset prof not found")
	}
	if p.BinSize != 2.0 || p.Method != "mean" || p.InitValue == nil || *p.InitValue != 0 {
		t.Fatalf("preset prof mis-parsed: %+v", p)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	// 未知聚合方法
	path := writeConfig(t, "presets:\n  x:\n    nbins: 3\n    method: median\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown method")
	}

	// nbins/binsize都缺
	path = writeConfig(t, "presets:\n  x:\n    method: max\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing nbins/binsize")
	}
}

func TestBinWith(t *testing.T) {
	path := writeConfig(t, goodConfig)
	if err := Init(path); err != nil {
		t.Fatal(err)
	}

	x := []float64{1, 2, 3, 4}
	y := []float64{10, 20, 30, 40}

	res, err := BinWith("tic", x, y, 0, 10)
	if err != nil {
		t.Fatal(err)
	}

	// 与直接调用facade结果一致
	bp := binyonx.DefaultBinParams()
	bp.NBins = 5
	bp.FromX = 0
	bp.ToX = 10
	bp.ToIdx = len(x) - 1
	bp.Method = binyonx.AGG_SUM
	direct, err := binyonx.BinYonX(x, y, bp)
	if err != nil {
		t.Fatal(err)
	}
	for i := range res.Y {
		same := res.Y[i] == direct.Y[i] || (math.IsNaN(res.Y[i]) && math.IsNaN(direct.Y[i]))
		if !same {
			t.Fatalf("bin %d: preset %v vs direct %v", i, res.Y[i], direct.Y[i])
		}
	}

	// prof preset: initvalue=0, 空bin应为0
	res, err = BinWith("prof", x, y, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range res.Y {
		if math.IsNaN(v) {
			t.Fatalf("bin %d left NaN despite initvalue", i)
		}
	}

	if _, err := BinWith("nope", x, y, 0, 10); errorx.CodeOf(err) != errCode.INVALID_VALUE {
		t.Fatalf("expected INVALID_VALUE for unknown preset, got %v", err)
	}
	if _, err := BinWith("tic", nil, nil, 0, 10); errorx.CodeOf(err) != errCode.EMPTY_VALUE {
		t.Fatalf("expected EMPTY_VALUE for empty input, got %v", err)
	}
}
