package stream

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// BoundedFloat64 是 f64 有界變體：逐字保存 [lo, hi)，Next 為 lo + u·(hi−lo)。
type BoundedFloat64 struct {
	lo float64
	hi float64
}

// FullFloat64 是 f64 變體：熵來源的原生 [0,1) 輸出。
type FullFloat64 struct{}

// NewBoundedFloat64 建構 [lo, hi) 的 stream。
// lo < hi 不成立（含 NaN）回傳 ErrEmptyInterval。
func NewBoundedFloat64(lo, hi float64) (BoundedFloat64, error) {
	if !(lo < hi) {
		return BoundedFloat64{}, dist.ErrEmptyInterval
	}
	return BoundedFloat64{lo: lo, hi: hi}, nil
}

// NewFullFloat64 建構 [0,1) stream。
func NewFullFloat64() FullFloat64 {
	return FullFloat64{}
}

// Next 回傳 [lo, hi) 的均勻值。
func (s BoundedFloat64) Next(r core.RAND) float64 {
	return sampler.DrawFloat(r, s.lo, s.hi)
}

// Next 回傳 [0,1) 的均勻值。
func (FullFloat64) Next(r core.RAND) float64 {
	return r.Float64()
}

// NewFloat64 依描述子選擇變體。浮點只支援 Full 與 Span。
func NewFloat64(d dist.Desc) (Stream[float64], error) {
	switch d := d.(type) {
	case dist.Full:
		return NewFullFloat64(), nil
	case dist.Span[float64]:
		return NewBoundedFloat64(d.Lo, d.Hi)
	default:
		return nil, dist.ErrUnsupportedRange
	}
}

// GenFloat64 單次抽樣：建 stream 後立即 Next 一次。
func GenFloat64(r core.RAND, d dist.Desc) (float64, error) {
	s, err := NewFloat64(d)
	if err != nil {
		return 0, err
	}
	return s.Next(r), nil
}

// IterFloat64 依描述子建構 f64 迭代器（介面分派版）。
func IterFloat64(r core.PRNG, d dist.Desc) (*Iter[float64, Stream[float64]], error) {
	s, err := NewFloat64(d)
	if err != nil {
		return nil, err
	}
	return NewIter[float64](r, s), nil
}
