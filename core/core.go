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

// Package core 提供 randlab 所需的「原始熵來源（raw entropy source）」。
//
// 約束抽樣器（assoc / stream / typeparam 三種編碼）不自帶亂數；它們只消費
// 此處定義的 RAND 合約：按需產生均勻的 32-bit / 64-bit 機器字與 [0,1) 浮點數。
// 來源的 seeding、複製（Clone）與狀態保存（Snapshot/Restore）都集中在本包，
// 讓上層演算法保持純粹。
package core

// PRNG 定義 randlab 所需的完整亂數來源：取樣 + 複製 + 狀態保存/還原。
type PRNG interface {
	RAND
	Clonable
	Restorable
}

// RAND 定義核心亂數取樣能力。
//
// 為什麼同時要求 Uint32 / Uint64 / Float64，而不是只要求 Uint64？
//
//  1. 拒絕抽樣（rejection sampling）對 32-bit 目標型別使用 32-bit 原始字，
//     對 64-bit 目標使用 64-bit 原始字。若只提供 Uint64，32-bit 路徑會被迫
//     「產生 64 bit 再裁切」，既浪費熵也讓 32-bit 原生的 PRNG（如 xorshift128）
//     退化成較慢的寫法。
//  2. Float64 的精度與生成方式應由 PRNG 決定：53-bit mantissa 或 32-bit 快速
//     路徑是實作的取捨，合約只要求落在 [0,1)。
type RAND interface {
	// Uint32 回傳均勻分布的 uint32 亂數。
	Uint32() uint32
	// Uint64 回傳均勻分布的 uint64 亂數。
	Uint64() uint64
	// Float64 回傳 [0,1) 的浮點亂數。
	Float64() float64
}

// Clonable 定義可複製的來源。
//
// benchmark 合約的基石：每輪量測前 Clone 一份來源，保證每輪消費完全相同的
// 原始字序列，量測之間才可比較。Clone 後兩份來源各自獨立推進，互不影響。
type Clonable interface {
	Clone() PRNG
}

// Restorable 定義可快照與還原的狀態介面。
type Restorable interface {
	// Snapshot 回傳可用於還原的序列化狀態。
	Snapshot() ([]byte, error)
	// Restore 依序列化狀態還原 PRNG 內部狀態。
	Restore([]byte) error
}

// CoreFactory 以指定 seed 建立新的 PRNG。
//
// 合約（很重要）：在同一個實作與同一個版本下，New(seed) 必須是「決定性」的——
// 相同的 seed 必須產生相同的初始內部狀態與輸出序列。
// randlab 的等價性測試（三種編碼產生完全相同序列）與 benchmark 的
// 可重現性都建立在這個合約上。
type CoreFactory interface {
	New(seed int64) PRNG
}

// DefaultFactory 是預設的 CoreFactory，產生 XSR128。
// xorshift128 state 小、Clone 便宜，最適合 benchmark 每輪複製的用法。
type DefaultFactory struct{}

// New 滿足 CoreFactory 合約。
func (d *DefaultFactory) New(seed int64) PRNG {
	return NewXSR128(seed)
}

func Default() *DefaultFactory {
	return &DefaultFactory{}
}

// PCG32Factory 產生 PCG32 核心，供想要 PCG 輸出品質的場景替換。
type PCG32Factory struct{}

func (p *PCG32Factory) New(seed int64) PRNG {
	return NewPCG32(seed)
}
