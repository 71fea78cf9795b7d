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

// Package assoc 是「關聯約束型（associated-constraint）」編碼：
// 每個目標型別對應唯一一種約束紀錄（Uint32Constraint / Int64Constraint /
// Float64Constraint），所有範圍描述子在「建構期」一次性消化成該紀錄
// （計算 width 與 accept zone），抽樣時只依紀錄內部的 Full/Bounded 標記分派。
//
// 設計重點：
//   - 預處理前移（front-loaded）：Constrain* 只做一次，之後重複抽樣零成本。
//     迭代器用法因此受益最大——width/zone 不會在迴圈裡重算。
//   - 抽樣期永不失敗：所有合法性檢查都在 Constrain*；Gen 只是查表 + 拒絕迴圈。
//   - 約束紀錄是純資料：不可變、可自由複製。
//
// 與 stream 編碼的差異：這裡的分派靠紀錄內部的 runtime 標記（一個 bool），
// stream 編碼則把 Full/Bounded 做成兩個型別靜態分派。
// 與 typeparam 編碼的差異：typeparam 每次抽樣都重算 width/zone，
// 把希望寄託在編譯器把迴圈不變量抬出去（實測抬不出去）。
package assoc
