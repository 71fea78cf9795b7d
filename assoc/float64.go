package assoc

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// Float64Constraint 是 f64 的約束紀錄：Full 或逐字保存的 [lo, hi)。
// 浮點沒有 zone 預計算；有界抽樣是 lo + u·(hi−lo)，u ∈ [0,1)。
type Float64Constraint struct {
	full bool
	lo   float64
	hi   float64
}

// Float64Full 回傳涵蓋 [0,1) 的約束（熵來源的原生浮點輸出）。
func Float64Full() Float64Constraint {
	return Float64Constraint{full: true}
}

// Float64Span 建構 [lo, hi) 的約束。
// lo < hi 不成立（含 NaN）回傳 ErrEmptyInterval。
func Float64Span(lo, hi float64) (Float64Constraint, error) {
	if !(lo < hi) {
		return Float64Constraint{}, dist.ErrEmptyInterval
	}
	return Float64Constraint{lo: lo, hi: hi}, nil
}

// ConstrainFloat64 把範圍描述子消化成 f64 約束紀錄。
// 浮點只支援 Full 與 Span；From/To 回傳 ErrUnsupportedRange。
func ConstrainFloat64(d dist.Desc) (Float64Constraint, error) {
	switch d := d.(type) {
	case dist.Full:
		return Float64Full(), nil
	case dist.Span[float64]:
		return Float64Span(d.Lo, d.Hi)
	default:
		return Float64Constraint{}, dist.ErrUnsupportedRange
	}
}

// Gen 依約束紀錄抽出一個值。抽樣期永不失敗。
func (c Float64Constraint) Gen(r core.RAND) float64 {
	if c.full {
		return r.Float64()
	}
	return sampler.DrawFloat(r, c.lo, c.hi)
}

// GenFloat64 單次抽樣：消化描述子後立即抽一個值。
func GenFloat64(r core.RAND, d dist.Desc) (float64, error) {
	c, err := ConstrainFloat64(d)
	if err != nil {
		return 0, err
	}
	return c.Gen(r), nil
}
