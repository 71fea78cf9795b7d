package assoc

import (
	"math"

	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// Int64Constraint 是 i64 的約束紀錄。
//
// 三個欄位一律以無號（u64）像存放：width 是 uint64(hi) − uint64(lo)
// （wrap-sub，帶號區間跨零也正確），zone 是 64-bit 原始字的接受區上界。
// low 也存無號像，如此一次 wrap-add 就能把 v mod width 還原成帶號輸出，
// 不需要任何分支。two's-complement 平台上 bit-pattern 轉換無損。
type Int64Constraint struct {
	full  bool
	low   uint64
	width uint64
	zone  uint64
}

// Int64Full 回傳涵蓋整個 i64 值域的約束。
func Int64Full() Int64Constraint {
	return Int64Constraint{full: true}
}

// Int64Span 建構半開區間 [lo, hi) 的約束；lo ≥ hi 回傳 ErrEmptyInterval。
func Int64Span(lo, hi int64) (Int64Constraint, error) {
	if lo >= hi {
		return Int64Constraint{}, dist.ErrEmptyInterval
	}
	w := uint64(hi) - uint64(lo)
	return Int64Constraint{low: uint64(lo), width: w, zone: sampler.Zone64(w)}, nil
}

// Int64From 建構 [lo, 2^63−1] 的約束。
// lo == math.MinInt64 時範圍就是整個值域（u64 像的 width 會 wrap 成零），
// 化約成 Full 路徑。
func Int64From(lo int64) Int64Constraint {
	if lo == math.MinInt64 {
		return Int64Full()
	}
	w := sampler.WidthFromI64(lo)
	return Int64Constraint{low: uint64(lo), width: w, zone: sampler.Zone64(w)}
}

// Int64To 建構 [0, hi) 的約束，等價於 Int64Span(0, hi)；hi ≤ 0 回傳 ErrEmptyInterval。
func Int64To(hi int64) (Int64Constraint, error) {
	return Int64Span(0, hi)
}

// ConstrainInt64 把任意範圍描述子消化成 i64 約束紀錄。
func ConstrainInt64(d dist.Desc) (Int64Constraint, error) {
	switch d := d.(type) {
	case dist.Full:
		return Int64Full(), nil
	case dist.Span[int64]:
		return Int64Span(d.Lo, d.Hi)
	case dist.From[int64]:
		return Int64From(d.Lo), nil
	case dist.To[int64]:
		return Int64To(d.Hi)
	default:
		return Int64Constraint{}, dist.ErrUnsupportedRange
	}
}

// Gen 依約束紀錄抽出一個值。抽樣期永不失敗。
func (c Int64Constraint) Gen(r core.RAND) int64 {
	if c.full {
		return int64(r.Uint64())
	}
	return int64(sampler.Draw64(r, c.low, c.width, c.zone))
}

// GenInt64 單次抽樣：消化描述子後立即抽一個值。
func GenInt64(r core.RAND, d dist.Desc) (int64, error) {
	c, err := ConstrainInt64(d)
	if err != nil {
		return 0, err
	}
	return c.Gen(r), nil
}
