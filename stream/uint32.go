package stream

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// BoundedUint32 是 u32 有界變體：快取 low/width/zone，Next 只剩拒絕迴圈。
type BoundedUint32 struct {
	low   uint32
	width uint32
	zone  uint32
}

// FullUint32 是 u32 全值域變體：Next 直接回傳原始字。
type FullUint32 struct{}

// NewBoundedUint32 建構 [lo, hi) 的 stream；lo ≥ hi 回傳 ErrEmptyInterval。
func NewBoundedUint32(lo, hi uint32) (BoundedUint32, error) {
	if lo >= hi {
		return BoundedUint32{}, dist.ErrEmptyInterval
	}
	w := hi - lo
	return BoundedUint32{low: lo, width: w, zone: sampler.Zone32(w)}, nil
}

// NewFullUint32 建構全值域 stream。
func NewFullUint32() FullUint32 {
	return FullUint32{}
}

// Next 以拒絕抽樣回傳 [low, low+width) 的均勻值。
func (s BoundedUint32) Next(r core.RAND) uint32 {
	return sampler.Draw32(r, s.low, s.width, s.zone)
}

// Next 回傳整個 u32 值域的均勻值。
func (FullUint32) Next(r core.RAND) uint32 {
	return r.Uint32()
}

// NewUint32 依描述子選擇變體。回傳介面型別，抽樣付一次動態分派；
// 熱路徑請直接建構具體變體。
func NewUint32(d dist.Desc) (Stream[uint32], error) {
	switch d := d.(type) {
	case dist.Full:
		return NewFullUint32(), nil
	case dist.Span[uint32]:
		return NewBoundedUint32(d.Lo, d.Hi)
	case dist.From[uint32]:
		if d.Lo == 0 {
			return NewFullUint32(), nil
		}
		w := sampler.WidthFromU32(d.Lo)
		return BoundedUint32{low: d.Lo, width: w, zone: sampler.Zone32(w)}, nil
	case dist.To[uint32]:
		return NewBoundedUint32(0, d.Hi)
	default:
		return nil, dist.ErrUnsupportedRange
	}
}

// GenUint32 單次抽樣：建 stream 後立即 Next 一次。
func GenUint32(r core.RAND, d dist.Desc) (uint32, error) {
	s, err := NewUint32(d)
	if err != nil {
		return 0, err
	}
	return s.Next(r), nil
}

// IterUint32 依描述子建構 u32 迭代器（介面分派版）。
func IterUint32(r core.PRNG, d dist.Desc) (*Iter[uint32, Stream[uint32]], error) {
	s, err := NewUint32(d)
	if err != nil {
		return nil, err
	}
	return NewIter[uint32](r, s), nil
}
