package typeparam

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// 逐形狀抽樣函式：每個範圍形狀一個函式，width / zone 逐次重算。
// 無檢查版（span/from 小寫）給迭代器用：描述子已在建構期驗證過。

func spanUint32(r core.RAND, lo, hi uint32) uint32 {
	w := hi - lo
	return sampler.Draw32(r, lo, w, sampler.Zone32(w))
}

func fromUint32(r core.RAND, lo uint32) uint32 {
	if lo == 0 {
		return r.Uint32()
	}
	w := sampler.WidthFromU32(lo)
	return sampler.Draw32(r, lo, w, sampler.Zone32(w))
}

// FullUint32 抽出整個 u32 值域的均勻值。
func FullUint32(r core.RAND) uint32 {
	return r.Uint32()
}

// SpanUint32 抽出 [lo, hi) 的均勻值；lo ≥ hi 回傳 ErrEmptyInterval。
// 驗證與前處理都在本次呼叫內發生。
func SpanUint32(r core.RAND, lo, hi uint32) (uint32, error) {
	if lo >= hi {
		return 0, dist.ErrEmptyInterval
	}
	return spanUint32(r, lo, hi), nil
}

// FromUint32 抽出 [lo, 2^32−1] 的均勻值。
func FromUint32(r core.RAND, lo uint32) uint32 {
	return fromUint32(r, lo)
}

// ToUint32 抽出 [0, hi) 的均勻值，等價於 SpanUint32(r, 0, hi)。
func ToUint32(r core.RAND, hi uint32) (uint32, error) {
	return SpanUint32(r, 0, hi)
}

// GenUint32 依描述子抽一個值：分派到逐形狀函式，前處理逐次重算。
func GenUint32(r core.RAND, d dist.Desc) (uint32, error) {
	switch d := d.(type) {
	case dist.Full:
		return FullUint32(r), nil
	case dist.Span[uint32]:
		return SpanUint32(r, d.Lo, d.Hi)
	case dist.From[uint32]:
		return FromUint32(r, d.Lo), nil
	case dist.To[uint32]:
		return ToUint32(r, d.Hi)
	default:
		return 0, dist.ErrUnsupportedRange
	}
}
