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

// Package randlab 提供有界均勻抽樣實驗室的「組裝入口（assembler）」。
//
// 實驗室研究同一個拒絕抽樣核心的三種 API 編碼（assoc / stream / typeparam），
// 本包把它們的共同地基組裝在一起，並提供建立 Session 的入口：
//  1. CoreFactory：亂數核心工廠（PRNG factory），保證可重現（reproducible）與可審計（auditable）。
//  2. seedMaker：可併發使用的種子生成器，讓多個 Session 拿到彼此獨立但可重現的種子。
//
// 設計重點：
//   - Lab 本身無共享可變狀態：每個 Session 獨占自己的熵來源。
//   - Session 的抽樣走 stream 編碼（建議的預設編碼）；等價保證下，
//     換成 assoc 或 typeparam 會得到完全相同的序列。
//
// 典型使用情境：
//   - 後端服務（HTTP）：由 Lab 建立 Session，Session 對外提供 draw。
//   - 量測（bench）：直接使用 bench 套件；Lab 只負責種子與核心的一致性。
package randlab

import (
	"crypto/rand"
	"math"
	"math/big"
	"sync/atomic"

	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/stream"
)

// Lab 把 CoreFactory 與種子生成器組裝在一起，是建立 Session 的唯一入口。
type Lab struct {
	cf        core.CoreFactory
	initSeed  int64
	seedmaker *seedMaker
}

// New 建立一個 Lab，初始種子由 crypto/rand 產生。
func New(cf core.CoreFactory) (*Lab, error) {
	seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return nil, err
	}
	return NewWithSeed(cf, seed.Int64())
}

// NewWithSeed 建立一個可重現的 Lab：同一個 cf 與 seed，之後建出的
// 每個 Session 都拿到相同的種子序列。
func NewWithSeed(cf core.CoreFactory, seed int64) (*Lab, error) {
	if cf == nil {
		return nil, errs.NewFatal("core factory required")
	}
	return &Lab{
		cf:        cf,
		initSeed:  seed,
		seedmaker: newSeedMaker(seed),
	}, nil
}

// InitSeed 回傳 Lab 的初始種子，用於追溯/重現。
func (l *Lab) InitSeed() int64 {
	return l.initSeed
}

// NewCore 以種子生成器的下一個種子建立一個獨立 PRNG。
func (l *Lab) NewCore() core.PRNG {
	return l.cf.New(l.seedmaker.next())
}

// NewCoreWithSeed 以指定種子建立一個獨立 PRNG，用於可重現的檢定。
func (l *Lab) NewCoreWithSeed(seed int64) core.PRNG {
	return l.cf.New(seed)
}

// NewSession 建立一個 Session，種子由種子生成器發放。
func (l *Lab) NewSession() *Session {
	seed := l.seedmaker.next()
	return &Session{seed: seed, r: l.cf.New(seed)}
}

// NewSessionWithSeed 建立指定種子的 Session，用於可重現的測試。
func (l *Lab) NewSessionWithSeed(seed int64) *Session {
	return &Session{seed: seed, r: l.cf.New(seed)}
}

// Session 是一段獨占熵來源的抽樣會期。
//
// Session 不是併發安全的：多 goroutine 請各自建立 Session。
// seed 會被記錄用於追溯；任意時間點的完整重現以 Core 的
// Snapshot/Restore 合約為準。
type Session struct {
	seed int64
	r    core.PRNG
}

// Seed 回傳此會期的出生種子。
func (s *Session) Seed() int64 {
	return s.seed
}

// Uint32 依範圍描述子抽一個 u32。
func (s *Session) Uint32(d dist.Desc) (uint32, error) {
	return stream.GenUint32(s.r, d)
}

// Int64 依範圍描述子抽一個 i64。
func (s *Session) Int64(d dist.Desc) (int64, error) {
	return stream.GenInt64(s.r, d)
}

// Float64 依範圍描述子抽一個 f64。
func (s *Session) Float64(d dist.Desc) (float64, error) {
	return stream.GenFloat64(s.r, d)
}

// IterUint32 把會期轉成 u32 迭代器；之後該 Session 不得再直接抽樣
// （迭代器獨占熵來源）。
func (s *Session) IterUint32(d dist.Desc) (*stream.Iter[uint32, stream.Stream[uint32]], error) {
	return stream.IterUint32(s.r, d)
}

// IterInt64 同 IterUint32，i64 版。
func (s *Session) IterInt64(d dist.Desc) (*stream.Iter[int64, stream.Stream[int64]], error) {
	return stream.IterInt64(s.r, d)
}

// IterFloat64 同 IterUint32，f64 版。
func (s *Session) IterFloat64(d dist.Desc) (*stream.Iter[float64, stream.Stream[float64]], error) {
	return stream.IterFloat64(s.r, d)
}

// SnapshotCore 匯出會期熵來源的完整狀態。
func (s *Session) SnapshotCore() ([]byte, error) {
	return s.r.Snapshot()
}

// RestoreCore 依快照還原會期熵來源。
func (s *Session) RestoreCore(b []byte) error {
	return s.r.Restore(b)
}

const mask63 = uint64(1<<63) - 1

type seedMaker struct {
	state atomic.Uint64 // always in [0, 2^63)
}

func newSeedMaker(seed int64) *seedMaker {
	s := &seedMaker{}
	s.state.Store(uint64(seed) & mask63)
	return s
}

// state 走全週期（不重複），再用可逆 mix63 打散
//
// 注意：此方法可能在併發環境下被多 goroutines 同時呼叫（例如 server 對每個
// 請求建 Session）。因此 state 的推進必須是原子的：
//   - 使用 CAS（Compare-And-Swap）迴圈確保每次呼叫都會取得唯一的下一個 state。
//   - 回傳值使用推進後的 state 經 mix63 打散後的結果。
func (s *seedMaker) next() int64 {
	for {
		old := s.state.Load()                                            // always masked
		next := (old*6364136223846793005 + 1442695040888963407) & mask63 // full-period LCG mod 2^63
		if s.state.CompareAndSwap(old, next) {
			return int64(mix63(next)) // 一定非負
		}
	}
}

// mix63：只用「可逆」的 bit 操作 + 乘奇數（mod 2^63）
func mix63(x uint64) uint64 {
	x &= mask63
	x ^= x >> 30
	x = (x * 0xBF58476D1CE4E5B9) & mask63 // 乘奇數 ⇒ mod 2^63 可逆
	x ^= x >> 27
	x = (x * 0x94D049BB133111EB) & mask63
	x ^= x >> 31
	return x & mask63
}
