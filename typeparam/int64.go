package typeparam

import (
	"math"

	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

func spanInt64(r core.RAND, lo, hi int64) int64 {
	w := uint64(hi) - uint64(lo)
	return int64(sampler.Draw64(r, uint64(lo), w, sampler.Zone64(w)))
}

func fromInt64(r core.RAND, lo int64) int64 {
	if lo == math.MinInt64 {
		return int64(r.Uint64())
	}
	w := sampler.WidthFromI64(lo)
	return int64(sampler.Draw64(r, uint64(lo), w, sampler.Zone64(w)))
}

// FullInt64 抽出整個 i64 值域的均勻值。
func FullInt64(r core.RAND) int64 {
	return int64(r.Uint64())
}

// SpanInt64 抽出 [lo, hi) 的均勻帶號值；lo ≥ hi 回傳 ErrEmptyInterval。
func SpanInt64(r core.RAND, lo, hi int64) (int64, error) {
	if lo >= hi {
		return 0, dist.ErrEmptyInterval
	}
	return spanInt64(r, lo, hi), nil
}

// FromInt64 抽出 [lo, 2^63−1] 的均勻值；lo == math.MinInt64 走全值域路徑。
func FromInt64(r core.RAND, lo int64) int64 {
	return fromInt64(r, lo)
}

// ToInt64 抽出 [0, hi) 的均勻值；hi ≤ 0 回傳 ErrEmptyInterval。
func ToInt64(r core.RAND, hi int64) (int64, error) {
	return SpanInt64(r, 0, hi)
}

// GenInt64 依描述子抽一個值：分派到逐形狀函式，前處理逐次重算。
func GenInt64(r core.RAND, d dist.Desc) (int64, error) {
	switch d := d.(type) {
	case dist.Full:
		return FullInt64(r), nil
	case dist.Span[int64]:
		return SpanInt64(r, d.Lo, d.Hi)
	case dist.From[int64]:
		return FromInt64(r, d.Lo), nil
	case dist.To[int64]:
		return ToInt64(r, d.Hi)
	default:
		return 0, dist.ErrUnsupportedRange
	}
}
