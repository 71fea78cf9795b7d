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

package core

import "encoding/binary"

const f64Unit = 1.0 / (1 << 53)

// XSR128 為 128-bit 狀態、32-bit 輸出的 xorshift 產生器（Marsaglia xorshift128）。
//
// 特性：
//   - 原生輸出寬度 32-bit，Uint64 由兩次 32-bit 輸出組成（高位在前）。
//   - 狀態只有 16 bytes，Clone 是單純的結構複製，成本可忽略。
//   - 週期 2^128−1；狀態不可全零（初始化時以 splitmix64 展開 seed 並保證非零）。
//
// 介面設計對齊 PCG32 版本，便於在 CoreFactory 中互換。
type XSR128 struct {
	x, y, z, w uint32
}

// NewXSR128 以指定 seed 建立新的 XSR128 實例。
func NewXSR128(seed int64) *XSR128 {
	a := splitmix64(uint64(seed))
	b := splitmix64(a)
	r := &XSR128{
		x: uint32(a),
		y: uint32(a >> 32),
		z: uint32(b),
		w: uint32(b >> 32),
	}
	// xorshift 全零狀態會卡死在零，splitmix64 理論上可能給出全零
	if r.x|r.y|r.z|r.w == 0 {
		r.w = 1
	}
	return r
}

//---------------------------------------
// 回傳介面方法
//---------------------------------------

// Uint32 回傳均勻 uint32 亂數。
func (r *XSR128) Uint32() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return r.w
}

// Uint64 回傳均勻 uint64 亂數（兩次 32-bit 輸出，高位在前）。
func (r *XSR128) Uint64() uint64 {
	hi := uint64(r.Uint32())
	lo := uint64(r.Uint32())
	return (hi << 32) | lo
}

// Float64 回傳 [0,1) 的浮點亂數（53-bit 精度）。
func (r *XSR128) Float64() float64 {
	return float64(r.Uint64()<<11>>11) * f64Unit
}

// Clone 回傳一份獨立推進的複本。
func (r *XSR128) Clone() PRNG {
	cp := *r
	return &cp
}

// Snapshot 取得當下內部狀態（16 bytes，big-endian）。
func (r *XSR128) Snapshot() ([]byte, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint32(b[0:], r.x)
	binary.BigEndian.PutUint32(b[4:], r.y)
	binary.BigEndian.PutUint32(b[8:], r.z)
	binary.BigEndian.PutUint32(b[12:], r.w)
	return b, nil
}

// Restore 依 Snapshot 的輸出還原內部狀態。
func (r *XSR128) Restore(data []byte) error {
	if len(data) != 16 {
		return errBadState
	}
	x := binary.BigEndian.Uint32(data[0:])
	y := binary.BigEndian.Uint32(data[4:])
	z := binary.BigEndian.Uint32(data[8:])
	w := binary.BigEndian.Uint32(data[12:])
	if x|y|z|w == 0 {
		return errBadState
	}
	r.x, r.y, r.z, r.w = x, y, z, w
	return nil
}

// splitmix64 將輸入值混洗成新的 64-bit 狀態，用於種子展開。
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
