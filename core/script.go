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

// Script 是「照稿演出」的熵來源，只供測試使用。
//
// 三條通道各自獨立循環播放：Uint32 從 U32 取字、Uint64 從 U64、Float64 從 F。
// 通道為空時回傳零值。用途是把拒絕抽樣的邊界情境釘死成可斷言的劇本，
// 例如連續餵入「落在拒絕區的字、再一個可接受的字」。
type Script struct {
	U32 []uint32
	U64 []uint64
	F   []float64

	i32, i64, iF int
}

// Uint32 回傳 U32 劇本的下一個字（循環）。
func (s *Script) Uint32() uint32 {
	if len(s.U32) == 0 {
		return 0
	}
	v := s.U32[s.i32%len(s.U32)]
	s.i32++
	return v
}

// Uint64 回傳 U64 劇本的下一個字（循環）。
func (s *Script) Uint64() uint64 {
	if len(s.U64) == 0 {
		return 0
	}
	v := s.U64[s.i64%len(s.U64)]
	s.i64++
	return v
}

// Float64 回傳 F 劇本的下一個值（循環）。
func (s *Script) Float64() float64 {
	if len(s.F) == 0 {
		return 0
	}
	v := s.F[s.iF%len(s.F)]
	s.iF++
	return v
}

// Clone 複製劇本與目前的播放位置。
func (s *Script) Clone() PRNG {
	cp := &Script{
		U32: append([]uint32(nil), s.U32...),
		U64: append([]uint64(nil), s.U64...),
		F:   append([]float64(nil), s.F...),
	}
	cp.i32, cp.i64, cp.iF = s.i32, s.i64, s.iF
	return cp
}

// Snapshot 序列化三條通道的播放位置（劇本本身不序列化）。
func (s *Script) Snapshot() ([]byte, error) {
	b := make([]byte, 24)
	binary.BigEndian.PutUint64(b[0:], uint64(s.i32))
	binary.BigEndian.PutUint64(b[8:], uint64(s.i64))
	binary.BigEndian.PutUint64(b[16:], uint64(s.iF))
	return b, nil
}

// Restore 還原播放位置。
func (s *Script) Restore(data []byte) error {
	if len(data) != 24 {
		return errBadState
	}
	s.i32 = int(binary.BigEndian.Uint64(data[0:]))
	s.i64 = int(binary.BigEndian.Uint64(data[8:]))
	s.iF = int(binary.BigEndian.Uint64(data[16:]))
	return nil
}
