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

// Package stream 是「串流物件（stream-object）」編碼：
// 目標型別 × 範圍形狀 先建構成一個快取了預處理結果的 stream，
// 之後由 stream 回答重複抽樣。
//
// 與 assoc 的差異在分派方式：assoc 的約束紀錄帶一個 runtime 標記
// （Full/Bounded 同一型別），stream 把兩種變體做成「不同型別」
// （BoundedUint32 / FullUint32 …），抽樣呼叫靜態綁定到變體的 Next，
// 連那一個標記判斷都省掉。有界迭代場景實測與 assoc 打平或略勝，
// 是建議的預設編碼。
//
// 泛型 Iter[T, S] 以具體 stream 型別實例化時保持靜態分派；
// 需要在 runtime 依描述子選變體時，改用 New*（回傳介面，付一次動態分派）。
package stream

import "github.com/zintix-labs/randlab/core"

// Stream 回答重複抽樣。實作不可變：Next 只讀 stream 自身、只推進熵來源。
type Stream[T any] interface {
	Next(r core.RAND) T
}

// Iter 是無限、惰性、不可重啟的抽樣序列；獨占其熵來源。
//
// S 以具體變體型別（如 BoundedUint32）實例化時，Next 內的 s.Next
// 是靜態呼叫；以 Stream[T] 介面實例化時則退回動態分派。
type Iter[T any, S Stream[T]] struct {
	s S
	r core.PRNG
}

// NewIter 包裝熵來源與 stream 成迭代器。
func NewIter[T any, S Stream[T]](r core.PRNG, s S) *Iter[T, S] {
	return &Iter[T, S]{s: s, r: r}
}

// Next 回傳序列的下一個值；永遠有值，沒有終止訊號。
func (it *Iter[T, S]) Next() T {
	return it.s.Next(it.r)
}

// Take 回傳序列接下來的 n 個值。
func (it *Iter[T, S]) Take(n int) []T {
	out := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, it.Next())
	}
	return out
}
