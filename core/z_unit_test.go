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

import (
	"testing"
)

func TestFactoryDeterminism(t *testing.T) {
	factories := map[string]CoreFactory{
		"xsr128": Default(),
		"pcg32":  &PCG32Factory{},
	}
	for name, cf := range factories {
		r1 := cf.New(7)
		r2 := cf.New(7)
		for i := 0; i < 64; i++ {
			if r1.Uint32() != r2.Uint32() {
				t.Fatalf("%s: Uint32 mismatch at %d", name, i)
			}
		}
		if r1.Uint64() != r2.Uint64() {
			t.Fatalf("%s: Uint64 mismatch", name)
		}
		if r1.Float64() != r2.Float64() {
			t.Fatalf("%s: Float64 mismatch", name)
		}
	}
}

func TestSeedsDiverge(t *testing.T) {
	r1 := Default().New(1)
	r2 := Default().New(2)
	same := 0
	for i := 0; i < 16; i++ {
		if r1.Uint32() == r2.Uint32() {
			same++
		}
	}
	if same == 16 {
		t.Fatalf("different seeds produced identical prefix")
	}
}

func TestCloneContinuesIdentically(t *testing.T) {
	r := NewXSR128(42)
	r.Uint32() // advance a bit
	r.Uint32()

	cp := r.Clone()
	for i := 0; i < 32; i++ {
		if r.Uint32() != cp.Uint32() {
			t.Fatalf("clone diverged at %d", i)
		}
	}

	// advancing the clone must not touch the original
	before, _ := r.Snapshot()
	cp.Uint32()
	after, _ := r.Snapshot()
	if string(before) != string(after) {
		t.Fatalf("clone advanced original state")
	}
}

func TestSnapshotRestoreRoundtrip(t *testing.T) {
	cores := []PRNG{NewXSR128(3), NewPCG32(3)}
	for _, r := range cores {
		r.Uint32()
		blob, err := r.Snapshot()
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		want := []uint32{r.Uint32(), r.Uint32(), r.Uint32()}

		if err := r.Restore(blob); err != nil {
			t.Fatalf("restore: %v", err)
		}
		for i, w := range want {
			if got := r.Uint32(); got != w {
				t.Fatalf("restored sequence mismatch at %d: got %d want %d", i, got, w)
			}
		}
	}
}

func TestRestoreRejectsBadBlob(t *testing.T) {
	r := NewXSR128(1)
	if err := r.Restore([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short blob")
	}
	if err := r.Restore(make([]byte, 16)); err == nil {
		t.Fatalf("expected error for all-zero xorshift state")
	}
	p := NewPCG32(1)
	if err := p.Restore([]byte{1}); err == nil {
		t.Fatalf("expected error for short pcg blob")
	}
}

func TestFloat64HalfOpenUnit(t *testing.T) {
	r := NewXSR128(99)
	for i := 0; i < 10_000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", f)
		}
	}
}

func TestUint64Composition(t *testing.T) {
	a := NewXSR128(5)
	b := NewXSR128(5)
	hi := uint64(b.Uint32())
	lo := uint64(b.Uint32())
	if got, want := a.Uint64(), (hi<<32)|lo; got != want {
		t.Fatalf("Uint64 composition: got %x want %x", got, want)
	}
}

func TestScriptChannels(t *testing.T) {
	s := &Script{U32: []uint32{10, 20}, F: []float64{0.25}}

	// cycling
	got := []uint32{s.Uint32(), s.Uint32(), s.Uint32()}
	want := []uint32{10, 20, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("script u32 cycle: got %v want %v", got, want)
		}
	}

	// empty channel yields zero
	if s.Uint64() != 0 {
		t.Fatalf("empty u64 channel should yield 0")
	}
	if s.Float64() != 0.25 {
		t.Fatalf("script f channel mismatch")
	}

	// clone copies cursors
	cp := s.Clone()
	if cp.Uint32() != s.Uint32() {
		t.Fatalf("clone cursor mismatch")
	}
}
