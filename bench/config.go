package bench

import (
	"gopkg.in/yaml.v3"

	"github.com/zintix-labs/randlab/errs"
)

var (
	errUnknownEncoding = errs.NewWarn("bench: unknown encoding")
	errUnknownScenario = errs.NewWarn("bench: unknown scenario")
	errUnknownCore     = errs.NewWarn("bench: unknown core")
)

// Config 是量測套件的設定檔。
type Config struct {
	Seed      int64    `yaml:"seed"      json:"seed"`      // 0 表示隨機
	Rounds    int      `yaml:"rounds"    json:"rounds"`    // 每場景量測輪數
	Reps      int      `yaml:"reps"      json:"reps"`      // 每輪重複執行次數（ns/iter = 輪耗時 / reps）
	Warmup    int      `yaml:"warmup"    json:"warmup"`    // 暖機輪數，不計入統計
	Core      string   `yaml:"core"      json:"core"`      // xsr128 | pcg32
	Encodings []string `yaml:"encodings" json:"encodings"` // 空 = 全部
	Scenarios []string `yaml:"scenarios" json:"scenarios"` // 空 = 全部
	Progress  bool     `yaml:"progress"  json:"progress"`
}

// GetConfigByYAML 讀取 YAML 設定、補齊預設值並執行基本檢查後回傳。
func GetConfigByYAML(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshall yaml")
	}
	if err := c.init(); err != nil {
		return nil, errs.Wrap(err, "bench config initialized err")
	}
	return c, nil
}

func (c *Config) init() error {
	if c.Rounds < 1 {
		c.Rounds = 50
	}
	if c.Reps < 1 {
		c.Reps = 100
	}
	if c.Warmup < 0 {
		c.Warmup = 0
	}
	if c.Core == "" {
		c.Core = "xsr128"
	}
	if c.Core != "xsr128" && c.Core != "pcg32" {
		return errUnknownCore
	}
	if len(c.Encodings) == 0 {
		c.Encodings = []string{EncAssoc, EncStream, EncTypeparam, EncBaseline}
	}
	for _, e := range c.Encodings {
		switch e {
		case EncAssoc, EncStream, EncTypeparam, EncBaseline:
		default:
			return errUnknownEncoding
		}
	}
	for _, s := range c.Scenarios {
		switch s {
		case ScenGen, ScenIter, ScenIterNoBB, ScenRangeGen,
			ScenRangeGenBB, ScenRangeIter, ScenRangeIterBB, ScenRangeIterNB:
		default:
			return errUnknownScenario
		}
	}
	return nil
}

// wantScenario 回傳場景是否在選取清單內；空清單表示全選。
func (c *Config) wantScenario(name string) bool {
	if len(c.Scenarios) == 0 {
		return true
	}
	for _, s := range c.Scenarios {
		if s == name {
			return true
		}
	}
	return false
}
