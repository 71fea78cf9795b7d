// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench 是三種編碼的比較量測套件：
// 同一組場景分別套在 assoc / stream / typeparam 與 baseline（裸核心，
// 不經任何編碼層）上，輸出 ns/iter 與變異。
//
// 場景（目標型別一律 u32）：
//
//	gen_                 317 次無界 scalar 抽樣
//	iter                 無界迭代器取 100 個，迭代器外包光學屏障
//	iter__noiterbb       同上，不包屏障（讓編譯器看穿迭代器）
//	range_gen            317 次有界 [4, 321) scalar 抽樣
//	range_gen__bb        同上，邊界值包屏障（擋常數摺疊）
//	range_iter           有界迭代器取 100 個，迭代器包屏障
//	range_iter__bb       同上，邊界值再包一層屏障
//	range_iter__noiterbb 有界迭代器，無迭代器屏障
//
// scalar 場景沿用同一個熵來源連續累積；迭代器場景每輪 Clone 一份，
// 確保每輪做的工作完全相同。
package bench

import (
	"github.com/zintix-labs/randlab/assoc"
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/stream"
	"github.com/zintix-labs/randlab/typeparam"
)

// 編碼名稱。
const (
	EncAssoc     = "assoc"
	EncStream    = "stream"
	EncTypeparam = "typeparam"
	EncBaseline  = "baseline"
)

// 場景名稱。
const (
	ScenGen         = "gen_"
	ScenIter        = "iter"
	ScenIterNoBB    = "iter__noiterbb"
	ScenRangeGen    = "range_gen"
	ScenRangeGenBB  = "range_gen__bb"
	ScenRangeIter   = "range_iter"
	ScenRangeIterBB = "range_iter__bb"
	ScenRangeIterNB = "range_iter__noiterbb"
)

// 場景常數：scalar 每輪 317 次、迭代器取 100 個、有界區間 [4, 321)。
const (
	scalarDraws = 317
	iterTake    = 100
	boundLo     = uint32(4)
	boundHi     = uint32(321)
)

// Scenario 是一個（編碼 × 場景）組合；Run 等於量測迴圈的一次 iteration。
type Scenario struct {
	Encoding string
	Name     string
	Run      func(r core.PRNG)
}

// Scenarios 回傳指定編碼的完整場景表。
// baseline 是裸核心：沒有描述子也沒有迭代器型別，只有無界 scalar 與
// 手寫取樣迴圈能對應，所以只含 gen_ / iter / iter__noiterbb。
func Scenarios(enc string) ([]Scenario, error) {
	switch enc {
	case EncAssoc:
		return assocScenarios(), nil
	case EncStream:
		return streamScenarios(), nil
	case EncTypeparam:
		return typeparamScenarios(), nil
	case EncBaseline:
		return baselineScenarios(), nil
	default:
		return nil, errUnknownEncoding
	}
}

func bound() dist.Desc {
	return dist.Span[uint32]{Lo: boundLo, Hi: boundHi}
}

//---------------------------------------
// assoc
//---------------------------------------

func assocScenarios() []Scenario {
	return []Scenario{
		{EncAssoc, ScenGen, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := assoc.GenUint32(r, dist.Full{})
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncAssoc, ScenIter, func(r core.PRNG) {
			it, _ := assoc.IterUint32(r.Clone(), dist.Full{})
			bit := Opaque(it)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(bit.Next())))
			}
		}},
		{EncAssoc, ScenIterNoBB, func(r core.PRNG) {
			it, _ := assoc.IterUint32(r.Clone(), dist.Full{})
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
		{EncAssoc, ScenRangeGen, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := assoc.GenUint32(r, bound())
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncAssoc, ScenRangeGenBB, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := assoc.GenUint32(r, Opaque(bound()))
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncAssoc, ScenRangeIter, func(r core.PRNG) {
			it, _ := assoc.IterUint32(r.Clone(), bound())
			bit := Opaque(it)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(bit.Next())))
			}
		}},
		{EncAssoc, ScenRangeIterBB, func(r core.PRNG) {
			it, _ := assoc.IterUint32(r.Clone(), Opaque(bound()))
			bit := Opaque(it)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(bit.Next())))
			}
		}},
		{EncAssoc, ScenRangeIterNB, func(r core.PRNG) {
			it, _ := assoc.IterUint32(r.Clone(), bound())
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
	}
}

//---------------------------------------
// stream
//---------------------------------------

func streamScenarios() []Scenario {
	return []Scenario{
		{EncStream, ScenGen, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := stream.GenUint32(r, dist.Full{})
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncStream, ScenIter, func(r core.PRNG) {
			it, _ := stream.IterUint32(r.Clone(), dist.Full{})
			bit := Opaque(it)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(bit.Next())))
			}
		}},
		{EncStream, ScenIterNoBB, func(r core.PRNG) {
			it, _ := stream.IterUint32(r.Clone(), dist.Full{})
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
		{EncStream, ScenRangeGen, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := stream.GenUint32(r, bound())
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncStream, ScenRangeGenBB, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := stream.GenUint32(r, Opaque(bound()))
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncStream, ScenRangeIter, func(r core.PRNG) {
			s, _ := stream.NewBoundedUint32(boundLo, boundHi)
			it := Opaque(stream.NewIter[uint32](r.Clone(), s))
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
		{EncStream, ScenRangeIterBB, func(r core.PRNG) {
			b := Opaque([2]uint32{boundLo, boundHi})
			s, _ := stream.NewBoundedUint32(b[0], b[1])
			it := Opaque(stream.NewIter[uint32](r.Clone(), s))
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
		{EncStream, ScenRangeIterNB, func(r core.PRNG) {
			s, _ := stream.NewBoundedUint32(boundLo, boundHi)
			it := stream.NewIter[uint32](r.Clone(), s)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
	}
}

//---------------------------------------
// typeparam
//---------------------------------------

func typeparamScenarios() []Scenario {
	return []Scenario{
		{EncTypeparam, ScenGen, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := typeparam.GenUint32(r, dist.Full{})
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncTypeparam, ScenIter, func(r core.PRNG) {
			it, _ := typeparam.IterUint32(r.Clone(), dist.Full{})
			bit := Opaque(it)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(bit.Next())))
			}
		}},
		{EncTypeparam, ScenIterNoBB, func(r core.PRNG) {
			it, _ := typeparam.IterUint32(r.Clone(), dist.Full{})
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
		{EncTypeparam, ScenRangeGen, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := typeparam.GenUint32(r, bound())
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncTypeparam, ScenRangeGenBB, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				x, _ := typeparam.GenUint32(r, Opaque(bound()))
				Keep(uint64(Opaque(x)))
			}
		}},
		{EncTypeparam, ScenRangeIter, func(r core.PRNG) {
			it, _ := typeparam.IterUint32(r.Clone(), bound())
			bit := Opaque(it)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(bit.Next())))
			}
		}},
		{EncTypeparam, ScenRangeIterBB, func(r core.PRNG) {
			it, _ := typeparam.IterUint32(r.Clone(), Opaque(bound()))
			bit := Opaque(it)
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(bit.Next())))
			}
		}},
		{EncTypeparam, ScenRangeIterNB, func(r core.PRNG) {
			it, _ := typeparam.IterUint32(r.Clone(), bound())
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(it.Next())))
			}
		}},
	}
}

//---------------------------------------
// baseline
//---------------------------------------

func baselineScenarios() []Scenario {
	return []Scenario{
		{EncBaseline, ScenGen, func(r core.PRNG) {
			for i := 0; i < scalarDraws; i++ {
				Keep(uint64(Opaque(r.Uint32())))
			}
		}},
		{EncBaseline, ScenIter, func(r core.PRNG) {
			rc := Opaque(r.Clone())
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(rc.Uint32())))
			}
		}},
		{EncBaseline, ScenIterNoBB, func(r core.PRNG) {
			rc := r.Clone()
			for i := 0; i < iterTake; i++ {
				Keep(uint64(Opaque(rc.Uint32())))
			}
		}},
	}
}
