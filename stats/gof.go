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

// Package stats 提供抽樣輸出的均勻性檢定：
// 把有界抽樣的落點逐值計數，對「每格期望次數相等」做卡方適合度檢定。
// 這是三種編碼共同的驗收工具——抽樣有偏（modulo bias）時 p 值會塌掉。
package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/stream"
)

// MaxCells 是逐值計數的格數上限；超過改用分桶（本包不提供）。
const MaxCells = 1 << 16

var (
	ErrTooManyCells = errs.NewWarn("uniformity: cell count exceeds MaxCells")
	ErrTooFewCells  = errs.NewWarn("uniformity: need at least 2 cells")
	ErrNoDraws      = errs.NewWarn("uniformity: no draws to tally")
)

// GOF 是一次卡方適合度檢定的結果。
type GOF struct {
	Stat float64 `json:"Stat"` // 卡方統計量
	Df   int     `json:"Df"`   // 自由度 = 格數 − 1
	P    float64 `json:"P"`    // 右尾 p 值
}

// Pass 回傳檢定是否在顯著水準 alpha 下「不拒絕均勻」。
func (g GOF) Pass(alpha float64) bool {
	return g.P >= alpha
}

// ChiSquareUniform 對計數向量做均勻卡方檢定：每格期望 = 總數 / 格數。
func ChiSquareUniform(counts []uint64) (GOF, error) {
	k := len(counts)
	if k < 2 {
		return GOF{}, ErrTooFewCells
	}
	var n uint64
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return GOF{}, ErrNoDraws
	}

	exp := float64(n) / float64(k)
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - exp
		chi += d * d / exp
	}

	df := k - 1
	cs := distuv.ChiSquared{K: float64(df)}
	return GOF{Stat: chi, Df: df, P: cs.Survival(chi)}, nil
}

// TallyUint32 把 [lo, hi) 的抽樣逐值計數；落在區間外的值視為程式錯誤，
// 以 Fatal 級錯誤回報（抽樣器保證不該發生）。
func TallyUint32(xs []uint32, lo, hi uint32) ([]uint64, error) {
	if lo >= hi {
		return nil, dist.ErrEmptyInterval
	}
	if uint64(hi)-uint64(lo) > MaxCells {
		return nil, ErrTooManyCells
	}
	counts := make([]uint64, hi-lo)
	for _, x := range xs {
		if x < lo || x >= hi {
			return nil, errs.Fatalf("uniformity: draw %d outside [%d, %d)", x, lo, hi)
		}
		counts[x-lo]++
	}
	return counts, nil
}

// TallyInt64 同 TallyUint32，i64 版。
func TallyInt64(xs []int64, lo, hi int64) ([]uint64, error) {
	if lo >= hi {
		return nil, dist.ErrEmptyInterval
	}
	if uint64(hi)-uint64(lo) > MaxCells {
		return nil, ErrTooManyCells
	}
	counts := make([]uint64, uint64(hi)-uint64(lo))
	for _, x := range xs {
		if x < lo || x >= hi {
			return nil, errs.Fatalf("uniformity: draw %d outside [%d, %d)", x, lo, hi)
		}
		counts[uint64(x)-uint64(lo)]++
	}
	return counts, nil
}

// UniformCheckUint32 從給定熵來源抽 n 個 [lo, hi) 的 u32，回傳卡方檢定結果。
// 抽樣走 stream 編碼；等價保證下換哪個編碼結果都相同。
func UniformCheckUint32(r core.RAND, lo, hi uint32, n int) (GOF, error) {
	s, err := stream.NewBoundedUint32(lo, hi)
	if err != nil {
		return GOF{}, err
	}
	if uint64(hi)-uint64(lo) > MaxCells {
		return GOF{}, ErrTooManyCells
	}
	counts := make([]uint64, hi-lo)
	for i := 0; i < n; i++ {
		counts[s.Next(r)-lo]++
	}
	return ChiSquareUniform(counts)
}

// UniformCheckInt64 同 UniformCheckUint32，i64 版。
func UniformCheckInt64(r core.RAND, lo, hi int64, n int) (GOF, error) {
	s, err := stream.NewBoundedInt64(lo, hi)
	if err != nil {
		return GOF{}, err
	}
	if uint64(hi)-uint64(lo) > MaxCells {
		return GOF{}, ErrTooManyCells
	}
	counts := make([]uint64, uint64(hi)-uint64(lo))
	for i := 0; i < n; i++ {
		counts[uint64(s.Next(r))-uint64(lo)]++
	}
	return ChiSquareUniform(counts)
}
