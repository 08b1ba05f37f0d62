// preset 从yaml加载命名分箱参数组, 供上层按名字复用
package preset

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"binning/binyonx"
	"binning/infra/errorx"
	"binning/infra/errorx/errCode"
)

type Preset struct {
	NBins     int      `yaml:"nbins"`
	BinSize   float64  `yaml:"binsize"`
	Method    string   `yaml:"method"`
	Shift     bool     `yaml:"shift"`
	InitValue *float64 `yaml:"initvalue"` // 不填表示空bin保留缺失
}

type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// 用 atomic.Value 存当前配置, 支持热更新时无锁读取
var cfgValue atomic.Value // stores *Config

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if c.Presets == nil {
		c.Presets = make(map[string]Preset)
	}

	// 规范化 key：全大写、去空格, 同时校验每个preset
	norm := make(map[string]Preset, len(c.Presets))
	for k, p := range c.Presets {
		name := strings.ToUpper(strings.TrimSpace(k))
		if binyonx.GetMyAggMethod(p.Method) == binyonx.AGG_ERROR {
			return nil, fmt.Errorf("preset %s: unknown method %q", name, p.Method)
		}
		if p.NBins <= 0 && p.BinSize <= 0 {
			return nil, fmt.Errorf("preset %s: one of nbins/binsize must be > 0", name)
		}
		norm[name] = p
	}
	c.Presets = norm

	return &c, nil
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

// Get O(1) 查找preset, 未Init或不存在返回false
func Get(name string) (Preset, bool) {
	cAny := cfgValue.Load()
	if cAny == nil {
		return Preset{}, false
	}
	c := cAny.(*Config)

	p, ok := c.Presets[strings.ToUpper(strings.TrimSpace(name))]
	return p, ok
}

// BinWith 用命名preset对整段x/y做分箱
func BinWith(name string, x, y []float64, fromX, toX float64) (binyonx.BinResult, error) {
	p, ok := Get(name)
	if !ok {
		return binyonx.BinResult{}, errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("preset %q not found", name))
	}
	if len(x) == 0 {
		return binyonx.BinResult{}, errorx.New(errCode.EMPTY_VALUE, "input x is empty")
	}

	bp := binyonx.DefaultBinParams()
	bp.NBins = p.NBins
	bp.BinSize = p.BinSize
	bp.FromX = fromX
	bp.ToX = toX
	bp.FromIdx = 0
	bp.ToIdx = len(x) - 1
	bp.ShiftByHalfBin = p.Shift
	bp.Method = binyonx.GetMyAggMethod(p.Method)
	if p.InitValue != nil {
		bp.InitValue = *p.InitValue
	} else {
		bp.InitValue = math.NaN()
	}

	return binyonx.BinYonX(x, y, bp)
}
