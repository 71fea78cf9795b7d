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

// Package sampler 實作三種編碼共用的「有界均勻抽樣核心」。
//
// 問題：把均勻的 W-bit 原始字 v 映到 [lo, hi)，naive 的 lo + v mod width
// 只有在 width 整除 2^W 時才均勻，否則低值會被多算一次（modulo bias）。
//
// 解法（rejection sampling）：
//   - zone = MAX − (MAX mod width)，即不超過 MAX 的最大 width 倍數。
//   - 原始字 v ≥ zone 時丟棄重抽；v < zone 時回傳 lo +wrap (v mod width)。
//
// 被接受的值域大小是 width 的整數倍，所以 mod 之後每個輸出值出現次數嚴格相等。
// 拒絕機率 = 1 − zone/2^W < width/2^W < 1/2，期望抽取次數 ≤ 2，抽樣必然終止。
//
// 三種編碼（assoc / stream / typeparam）都必須經由本包抽樣：
// 這是「相同 seed 下三種編碼產出完全相同序列」等價保證的唯一正確來源。
package sampler

import (
	"math"

	"github.com/zintix-labs/randlab/core"
)

// Zone32 回傳 32-bit 原始字的接受區上界：不超過 2^32−1 的最大 width 倍數。
// 前置條件：width > 0（由各編碼的建構期保證）。
func Zone32(width uint32) uint32 {
	max := ^uint32(0)
	return max - max%width
}

// Zone64 回傳 64-bit 原始字的接受區上界。
// 前置條件：width > 0。
func Zone64(width uint64) uint64 {
	max := ^uint64(0)
	return max - max%width
}

// Draw32 以拒絕抽樣回傳 [low, low+width) 的均勻 uint32（wrap-add 語意）。
func Draw32(r core.RAND, low, width, zone uint32) uint32 {
	for {
		v := r.Uint32()
		if v < zone {
			return low + v%width
		}
	}
}

// Draw64 以拒絕抽樣回傳 low +wrap (v mod width) 的均勻 uint64。
// i64 目標由呼叫端把結果 bit-pattern 轉回 int64；wrap-add 在無號域完成，
// 正是 two's-complement 下帶號區間所需的語意。
func Draw64(r core.RAND, low, width, zone uint64) uint64 {
	for {
		v := r.Uint64()
		if v < zone {
			return low + v%width
		}
	}
}

// DrawFloat 回傳 lo + u·(hi−lo)，u ∈ [0,1)。
// 端點附近極小的捨入不均勻是刻意接受的取捨。
func DrawFloat(r core.RAND, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// WidthFromU32 回傳 From(lo) 在 u32 上的寬度：2^32 − lo（無號取負）。
// lo == 0 時寬度為零，呼叫端必須先把該情況化約成 Full 路徑。
func WidthFromU32(lo uint32) uint32 {
	return -lo
}

// WidthFromI64 回傳 From(lo) 在 i64 上的寬度（u64 像）：2^63 − lo。
// lo == math.MinInt64 時該範圍涵蓋整個值域，寬度 wrap 成零，
// 呼叫端必須先把該情況化約成 Full 路徑。
func WidthFromI64(lo int64) uint64 {
	return uint64(math.MaxInt64) - uint64(lo) + 1
}
