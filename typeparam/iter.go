package typeparam

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// 迭代器：契約與 assoc 相同（無限、惰性、獨占熵來源），
// 但不消化描述子——建構期只驗證，Next 逐次分派形狀並重算前處理。
// 這是本編碼刻意保留的成本。

func validUint32(d dist.Desc) error {
	switch d := d.(type) {
	case dist.Full, dist.From[uint32]:
		return nil
	case dist.Span[uint32]:
		if d.Lo >= d.Hi {
			return dist.ErrEmptyInterval
		}
		return nil
	case dist.To[uint32]:
		if d.Hi == 0 {
			return dist.ErrEmptyInterval
		}
		return nil
	default:
		return dist.ErrUnsupportedRange
	}
}

func validInt64(d dist.Desc) error {
	switch d := d.(type) {
	case dist.Full, dist.From[int64]:
		return nil
	case dist.Span[int64]:
		if d.Lo >= d.Hi {
			return dist.ErrEmptyInterval
		}
		return nil
	case dist.To[int64]:
		if d.Hi <= 0 {
			return dist.ErrEmptyInterval
		}
		return nil
	default:
		return dist.ErrUnsupportedRange
	}
}

func validFloat64(d dist.Desc) error {
	switch d := d.(type) {
	case dist.Full:
		return nil
	case dist.Span[float64]:
		if !(d.Lo < d.Hi) {
			return dist.ErrEmptyInterval
		}
		return nil
	default:
		return dist.ErrUnsupportedRange
	}
}

// Uint32Iter 是 u32 的無限抽樣序列。
type Uint32Iter struct {
	d dist.Desc
	r core.PRNG
}

// IterUint32 包裝熵來源與描述子成 u32 迭代器；描述子只在此驗證一次。
func IterUint32(r core.PRNG, d dist.Desc) (*Uint32Iter, error) {
	if err := validUint32(d); err != nil {
		return nil, err
	}
	return &Uint32Iter{d: d, r: r}, nil
}

// Next 回傳序列的下一個值；width/zone 在每次呼叫重算。
func (it *Uint32Iter) Next() uint32 {
	switch d := it.d.(type) {
	case dist.Span[uint32]:
		return spanUint32(it.r, d.Lo, d.Hi)
	case dist.From[uint32]:
		return fromUint32(it.r, d.Lo)
	case dist.To[uint32]:
		return spanUint32(it.r, 0, d.Hi)
	}
	return it.r.Uint32()
}

// Take 回傳序列接下來的 n 個值。
func (it *Uint32Iter) Take(n int) []uint32 {
	out := make([]uint32, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, it.Next())
	}
	return out
}

// Int64Iter 是 i64 的無限抽樣序列。
type Int64Iter struct {
	d dist.Desc
	r core.PRNG
}

// IterInt64 包裝熵來源與描述子成 i64 迭代器。
func IterInt64(r core.PRNG, d dist.Desc) (*Int64Iter, error) {
	if err := validInt64(d); err != nil {
		return nil, err
	}
	return &Int64Iter{d: d, r: r}, nil
}

func (it *Int64Iter) Next() int64 {
	switch d := it.d.(type) {
	case dist.Span[int64]:
		return spanInt64(it.r, d.Lo, d.Hi)
	case dist.From[int64]:
		return fromInt64(it.r, d.Lo)
	case dist.To[int64]:
		return spanInt64(it.r, 0, d.Hi)
	}
	return int64(it.r.Uint64())
}

func (it *Int64Iter) Take(n int) []int64 {
	out := make([]int64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, it.Next())
	}
	return out
}

// Float64Iter 是 f64 的無限抽樣序列。
type Float64Iter struct {
	d dist.Desc
	r core.PRNG
}

// IterFloat64 包裝熵來源與描述子成 f64 迭代器。
func IterFloat64(r core.PRNG, d dist.Desc) (*Float64Iter, error) {
	if err := validFloat64(d); err != nil {
		return nil, err
	}
	return &Float64Iter{d: d, r: r}, nil
}

func (it *Float64Iter) Next() float64 {
	if d, ok := it.d.(dist.Span[float64]); ok {
		return sampler.DrawFloat(it.r, d.Lo, d.Hi)
	}
	return it.r.Float64()
}

func (it *Float64Iter) Take(n int) []float64 {
	out := make([]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, it.Next())
	}
	return out
}
