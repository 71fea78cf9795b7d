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

// Package dist 定義「範圍描述子（range descriptor）」：呼叫端描述想要的取值區間，
// 三種編碼（assoc / stream / typeparam）各自決定如何把描述子消化成可抽樣的形式。
//
// 四種形狀構成一個封閉的 sum type：
//
//	Full     : 目標型別的整個值域
//	Span     : 半開區間 lo ≤ x < hi（要求 lo < hi）
//	From     : lo ≤ x ≤ 型別最大值
//	To       : 0 ≤ x < hi（等價於 Span{0, hi}）
//
// 描述子是純資料：不可變、可自由複製、不含任何預計算。
// 合法性（空區間、浮點不支援 From/To）在各編碼的建構期檢查，
// 抽樣期（draw-time）永遠不會失敗。
package dist

import "github.com/zintix-labs/randlab/errs"

// 兩種建構期錯誤。抽樣期不會產生錯誤；拒絕迴圈是演算法、不是錯誤。
var (
	// ErrEmptyInterval : 半開區間 hi ≤ lo，或任何會導致 width 為零的範圍。
	ErrEmptyInterval = errs.NewWarn("empty interval: require lo < hi")
	// ErrUnsupportedRange : 目標型別不支援的範圍形狀（例如浮點的 From/To）。
	ErrUnsupportedRange = errs.NewWarn("unsupported range shape for target type")
)

// Value 列出 randlab 支援的目標型別。
// 四種形狀可推廣到其他寬度；目前只承諾這三種目標型別。
type Value interface {
	~uint32 | ~int64 | ~float64
}

// Desc 是描述子的封閉介面；只有本包的四種形狀實作它。
type Desc interface {
	isDesc()
}

// Full 表示目標型別的整個值域。
type Full struct{}

// Span 表示半開區間 lo ≤ x < hi。
type Span[T Value] struct {
	Lo T
	Hi T
}

// From 表示 lo ≤ x ≤ 型別最大值。
type From[T Value] struct {
	Lo T
}

// To 表示 0 ≤ x < hi。
type To[T Value] struct {
	Hi T
}

func (Full) isDesc()    {}
func (Span[T]) isDesc() {}
func (From[T]) isDesc() {}
func (To[T]) isDesc()   {}
