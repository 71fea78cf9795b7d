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

// Package typeparam 是「逐形狀（per-shape）」編碼：
// 抽樣函式直接以範圍形狀本身多型（SpanUint32 / FromUint32 / …），
// 不預先消化成約束紀錄，width 與 accept zone 在「每一次呼叫」重算，
// 指望編譯器把迴圈不變的前處理抬升出迭代器的 Next。
//
// 量測結果：抬升並不可靠發生，有界迭代吞吐量比 assoc / stream
// 差約三到四成。本編碼保留下來作為對照組——benchmark 場景表
// 同時跑三種編碼，差距要能被重現。新程式請用 stream 或 assoc。
//
// 迭代器在建構期驗證一次描述子（之後 Next 不會失敗），
// 但前處理仍逐次重算，這正是本編碼要量測的成本。
package typeparam
