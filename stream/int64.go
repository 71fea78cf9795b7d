package stream

import (
	"math"

	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// BoundedInt64 是 i64 有界變體。欄位一律存 u64 像（wrap-sub 的 width、
// 64-bit 接受區、無號像的 low），Next 以一次 wrap-add 還原帶號輸出。
type BoundedInt64 struct {
	low   uint64
	width uint64
	zone  uint64
}

// FullInt64 是 i64 全值域變體：原始 64-bit 字直接 bit-pattern 轉帶號。
type FullInt64 struct{}

// NewBoundedInt64 建構 [lo, hi) 的 stream；lo ≥ hi 回傳 ErrEmptyInterval。
func NewBoundedInt64(lo, hi int64) (BoundedInt64, error) {
	if lo >= hi {
		return BoundedInt64{}, dist.ErrEmptyInterval
	}
	w := uint64(hi) - uint64(lo)
	return BoundedInt64{low: uint64(lo), width: w, zone: sampler.Zone64(w)}, nil
}

// NewFullInt64 建構全值域 stream。
func NewFullInt64() FullInt64 {
	return FullInt64{}
}

// Next 以拒絕抽樣回傳 [lo, hi) 的均勻帶號值。
func (s BoundedInt64) Next(r core.RAND) int64 {
	return int64(sampler.Draw64(r, s.low, s.width, s.zone))
}

// Next 回傳整個 i64 值域的均勻值。
func (FullInt64) Next(r core.RAND) int64 {
	return int64(r.Uint64())
}

// NewInt64 依描述子選擇變體。From(math.MinInt64) 化約成 Full 變體。
func NewInt64(d dist.Desc) (Stream[int64], error) {
	switch d := d.(type) {
	case dist.Full:
		return NewFullInt64(), nil
	case dist.Span[int64]:
		return NewBoundedInt64(d.Lo, d.Hi)
	case dist.From[int64]:
		if d.Lo == math.MinInt64 {
			return NewFullInt64(), nil
		}
		w := sampler.WidthFromI64(d.Lo)
		return BoundedInt64{low: uint64(d.Lo), width: w, zone: sampler.Zone64(w)}, nil
	case dist.To[int64]:
		return NewBoundedInt64(0, d.Hi)
	default:
		return nil, dist.ErrUnsupportedRange
	}
}

// GenInt64 單次抽樣：建 stream 後立即 Next 一次。
func GenInt64(r core.RAND, d dist.Desc) (int64, error) {
	s, err := NewInt64(d)
	if err != nil {
		return 0, err
	}
	return s.Next(r), nil
}

// IterInt64 依描述子建構 i64 迭代器（介面分派版）。
func IterInt64(r core.PRNG, d dist.Desc) (*Iter[int64, Stream[int64]], error) {
	s, err := NewInt64(d)
	if err != nil {
		return nil, err
	}
	return NewIter[int64](r, s), nil
}
