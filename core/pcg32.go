package core

import (
	"encoding/binary"
	"math/bits"

	"github.com/zintix-labs/randlab/errs"
)

const (
	pcg32Multiplier = 6364136223846793005
	pcg32FloatUnit  = 1.0 / (1 << 32)
)

var errBadState = errs.NewWarn("restore: invalid state blob")

// PCG32 為 64-bit 狀態、32-bit 輸出的 PCG (XSH RR) 產生器。
// 介面設計對齊 XSR128 版本，便於在 CoreFactory 中互換。
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 以指定 seed 建立新的 PCG32 實例。
func NewPCG32(seed int64) *PCG32 {
	r := &PCG32{}
	r.initWithSeed(seed, 1)
	return r
}

//---------------------------------------
// 回傳介面方法
//---------------------------------------

// Uint32 回傳均勻 uint32 亂數。
func (r *PCG32) Uint32() uint32 {
	return r.nextUint32()
}

// Uint64 回傳均勻 uint64 亂數（兩次 32-bit 輸出，高位在前）。
func (r *PCG32) Uint64() uint64 {
	return (uint64(r.nextUint32()) << 32) | uint64(r.nextUint32())
}

// Float64 回傳 [0,1) 的浮點亂數（32-bit 精度）。
func (r *PCG32) Float64() float64 {
	return float64(r.nextUint32()) * pcg32FloatUnit
}

// Clone 回傳一份獨立推進的複本。
func (r *PCG32) Clone() PRNG {
	cp := *r
	return &cp
}

// Snapshot 取得當下內部狀態（state + inc，16 bytes，big-endian）。
func (r *PCG32) Snapshot() ([]byte, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[0:], r.state)
	binary.BigEndian.PutUint64(b[8:], r.inc)
	return b, nil
}

// Restore 依 Snapshot 的輸出還原內部狀態。
func (r *PCG32) Restore(data []byte) error {
	if len(data) != 16 {
		return errBadState
	}
	inc := binary.BigEndian.Uint64(data[8:])
	if inc&1 == 0 {
		// PCG 的 stream increment 必須為奇數
		return errBadState
	}
	r.state = binary.BigEndian.Uint64(data[0:])
	r.inc = inc
	return nil
}

//---------------------------------------
// 內部方法
//---------------------------------------

func (r *PCG32) initWithSeed(baseSeed int64, seq uint64) {
	// PCG 建議的初始化流程：先用 stream 初始化一次，再加 seed，最後再 step。
	inc := (seq << 1) | 1
	g := PCG32{state: 0, inc: inc}
	g.nextUint32()
	g.state += uint64(baseSeed)
	g.nextUint32()

	r.state = g.state
	r.inc = inc
}

func (r *PCG32) nextUint32() uint32 {
	oldstate := r.state
	r.state = oldstate*pcg32Multiplier + r.inc
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}
