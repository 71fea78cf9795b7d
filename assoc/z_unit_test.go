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

package assoc

import (
	"errors"
	"math"
	"testing"

	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
)

func TestGenUint32Full(t *testing.T) {
	r := &core.Script{U32: []uint32{0xDEADBEEF}}
	got, err := GenUint32(r, dist.Full{})
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if got != 0xDEADBEEF {
		t.Fatalf("full passes the raw word through: got %#x", got)
	}
}

func TestGenUint32Span(t *testing.T) {
	// [4, 321): width 317, zone 4294967064
	r := &core.Script{U32: []uint32{0}}
	got, err := GenUint32(r, dist.Span[uint32]{Lo: 4, Hi: 321})
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if got != 4 {
		t.Fatalf("got %d, want 4", got)
	}

	// 4294967259 lands above the zone and is rejected; 100 -> 104
	r = &core.Script{U32: []uint32{4294967259, 100}}
	got, err = GenUint32(r, dist.Span[uint32]{Lo: 4, Hi: 321})
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if got != 104 {
		t.Fatalf("got %d, want 104", got)
	}
}

func TestGenInt64SpanAcrossZero(t *testing.T) {
	// [-5, 5): width 10, raw word 7 -> 2
	r := &core.Script{U64: []uint64{7}}
	got, err := GenInt64(r, dist.Span[int64]{Lo: -5, Hi: 5})
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestGenFloat64Span(t *testing.T) {
	r := &core.Script{F: []float64{0.25}}
	got, err := GenFloat64(r, dist.Span[float64]{Lo: 0, Hi: 10})
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if got != 2.5 {
		t.Fatalf("got %v, want 2.5", got)
	}
}

func TestFromReducesToFull(t *testing.T) {
	// From(0) covers the whole u32 domain, so no rejection loop may run:
	// a raw word at the very top must pass through unchanged.
	r := &core.Script{U32: []uint32{math.MaxUint32}}
	got, err := GenUint32(r, dist.From[uint32]{Lo: 0})
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if got != math.MaxUint32 {
		t.Fatalf("From(0) should be the full path: got %d", got)
	}

	r64 := &core.Script{U64: []uint64{math.MaxUint64}}
	got64, err := GenInt64(r64, dist.From[int64]{Lo: math.MinInt64})
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if got64 != -1 {
		t.Fatalf("From(MinInt64) should be the full path: got %d", got64)
	}
}

func TestConstrainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"u32 empty span", func() error { _, err := Uint32Span(5, 5); return err }(), dist.ErrEmptyInterval},
		{"u32 inverted span", func() error { _, err := Uint32Span(10, 4); return err }(), dist.ErrEmptyInterval},
		{"u32 to zero", func() error { _, err := Uint32To(0); return err }(), dist.ErrEmptyInterval},
		{"i64 empty span", func() error { _, err := Int64Span(3, 3); return err }(), dist.ErrEmptyInterval},
		{"i64 to nonpositive", func() error { _, err := Int64To(-1); return err }(), dist.ErrEmptyInterval},
		{"f64 empty span", func() error { _, err := Float64Span(1, 1); return err }(), dist.ErrEmptyInterval},
		{"f64 nan span", func() error { _, err := Float64Span(math.NaN(), 1); return err }(), dist.ErrEmptyInterval},
		{"f64 from", func() error { _, err := ConstrainFloat64(dist.From[float64]{Lo: 0}); return err }(), dist.ErrUnsupportedRange},
		{"f64 to", func() error { _, err := ConstrainFloat64(dist.To[float64]{Hi: 1}); return err }(), dist.ErrUnsupportedRange},
		{"u32 wrong elem type", func() error { _, err := ConstrainUint32(dist.Span[int64]{Lo: 0, Hi: 1}); return err }(), dist.ErrUnsupportedRange},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, c.err, c.want)
		}
	}
}

func TestIterMatchesScalar(t *testing.T) {
	d := dist.Span[uint32]{Lo: 4, Hi: 321}
	r1 := core.NewXSR128(77)
	r2 := r1.Clone()

	it, err := IterUint32(r1, d)
	if err != nil {
		t.Fatalf("iter: %v", err)
	}
	c, err := ConstrainUint32(d)
	if err != nil {
		t.Fatalf("constrain: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if got, want := it.Next(), c.Gen(r2); got != want {
			t.Fatalf("iter diverged from scalar at %d: %d != %d", i, got, want)
		}
	}
}

func TestIterTake(t *testing.T) {
	it, err := IterInt64(core.NewXSR128(9), dist.Span[int64]{Lo: -100, Hi: 100})
	if err != nil {
		t.Fatalf("iter: %v", err)
	}
	vs := it.Take(100)
	if len(vs) != 100 {
		t.Fatalf("take: got %d values", len(vs))
	}
	for _, v := range vs {
		if v < -100 || v >= 100 {
			t.Fatalf("value %d escaped [-100, 100)", v)
		}
	}
	if got := it.Take(-1); len(got) != 0 {
		t.Fatalf("negative take should be empty, got %d", len(got))
	}
}

func TestIterRejectsBadRange(t *testing.T) {
	if _, err := IterUint32(core.NewXSR128(1), dist.Span[uint32]{Lo: 9, Hi: 9}); !errors.Is(err, dist.ErrEmptyInterval) {
		t.Fatalf("got %v, want ErrEmptyInterval", err)
	}
	if _, err := IterFloat64(core.NewXSR128(1), dist.To[float64]{Hi: 1}); !errors.Is(err, dist.ErrUnsupportedRange) {
		t.Fatalf("got %v, want ErrUnsupportedRange", err)
	}
}

func TestGenStaysInBounds(t *testing.T) {
	r := core.NewXSR128(2026)

	cu, _ := Uint32Span(4, 321)
	for i := 0; i < 10_000; i++ {
		if v := cu.Gen(r); v < 4 || v >= 321 {
			t.Fatalf("u32 %d escaped [4, 321)", v)
		}
	}

	ci, _ := Int64Span(-5, 5)
	for i := 0; i < 10_000; i++ {
		if v := ci.Gen(r); v < -5 || v >= 5 {
			t.Fatalf("i64 %d escaped [-5, 5)", v)
		}
	}

	cf, _ := Float64Span(0, 10)
	for i := 0; i < 10_000; i++ {
		if v := cf.Gen(r); v < 0 || v >= 10 {
			t.Fatalf("f64 %v escaped [0, 10)", v)
		}
	}
}
