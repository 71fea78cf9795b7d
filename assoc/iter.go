package assoc

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
)

// 迭代器：無限、惰性、不可重啟的抽樣序列。
//
// 契約：
//   - Next 永遠回傳值，沒有終止訊號；呼叫端以 Take 或自己的迴圈截斷。
//   - 迭代器「獨占」其熵來源：建構後呼叫端不得再直接使用同一個 core，
//     否則序列等價性（k 次 Next == k 次 scalar Gen）不再成立。
//   - 約束在建構期消化一次，之後的 Next 不再重算 width/zone。

// Uint32Iter 是 u32 的無限抽樣序列。
type Uint32Iter struct {
	c Uint32Constraint
	r core.PRNG
}

// IterUint32 包裝熵來源與描述子成 u32 迭代器。
func IterUint32(r core.PRNG, d dist.Desc) (*Uint32Iter, error) {
	c, err := ConstrainUint32(d)
	if err != nil {
		return nil, err
	}
	return &Uint32Iter{c: c, r: r}, nil
}

// Next 回傳序列的下一個值。
func (it *Uint32Iter) Next() uint32 {
	return it.c.Gen(it.r)
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
	c Int64Constraint
	r core.PRNG
}

// IterInt64 包裝熵來源與描述子成 i64 迭代器。
func IterInt64(r core.PRNG, d dist.Desc) (*Int64Iter, error) {
	c, err := ConstrainInt64(d)
	if err != nil {
		return nil, err
	}
	return &Int64Iter{c: c, r: r}, nil
}

func (it *Int64Iter) Next() int64 {
	return it.c.Gen(it.r)
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
	c Float64Constraint
	r core.PRNG
}

// IterFloat64 包裝熵來源與描述子成 f64 迭代器。
func IterFloat64(r core.PRNG, d dist.Desc) (*Float64Iter, error) {
	c, err := ConstrainFloat64(d)
	if err != nil {
		return nil, err
	}
	return &Float64Iter{c: c, r: r}, nil
}

func (it *Float64Iter) Next() float64 {
	return it.c.Gen(it.r)
}

func (it *Float64Iter) Take(n int) []float64 {
	out := make([]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, it.Next())
	}
	return out
}
