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

package typeparam

import (
	"errors"
	"math"
	"testing"

	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
)

func TestGenUint32Scenarios(t *testing.T) {
	r := &core.Script{U32: []uint32{0xDEADBEEF}}
	got, err := GenUint32(r, dist.Full{})
	if err != nil || got != 0xDEADBEEF {
		t.Fatalf("full: got %#x, %v", got, err)
	}

	r = &core.Script{U32: []uint32{0}}
	got, err = GenUint32(r, dist.Span[uint32]{Lo: 4, Hi: 321})
	if err != nil || got != 4 {
		t.Fatalf("span accept: got %d, %v", got, err)
	}

	r = &core.Script{U32: []uint32{4294967259, 100}}
	got, err = GenUint32(r, dist.Span[uint32]{Lo: 4, Hi: 321})
	if err != nil || got != 104 {
		t.Fatalf("span reject: got %d, %v", got, err)
	}
}

func TestGenInt64Scenario(t *testing.T) {
	r := &core.Script{U64: []uint64{7}}
	got, err := GenInt64(r, dist.Span[int64]{Lo: -5, Hi: 5})
	if err != nil || got != 2 {
		t.Fatalf("got %d, %v", got, err)
	}
}

func TestGenFloat64Scenario(t *testing.T) {
	r := &core.Script{F: []float64{0.25}}
	got, err := GenFloat64(r, dist.Span[float64]{Lo: 0, Hi: 10})
	if err != nil || got != 2.5 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestFromReductions(t *testing.T) {
	// From(0) and From(MinInt64) cover the whole domain: no rejection loop,
	// top-of-domain words pass through
	r := &core.Script{U32: []uint32{math.MaxUint32}}
	if got := FromUint32(r, 0); got != math.MaxUint32 {
		t.Fatalf("FromUint32(0): got %d", got)
	}
	r64 := &core.Script{U64: []uint64{math.MaxUint64}}
	if got := FromInt64(r64, math.MinInt64); got != -1 {
		t.Fatalf("FromInt64(min): got %d", got)
	}
}

func TestPerCallErrors(t *testing.T) {
	r := core.NewXSR128(1)
	if _, err := SpanUint32(r, 7, 7); !errors.Is(err, dist.ErrEmptyInterval) {
		t.Fatalf("got %v, want ErrEmptyInterval", err)
	}
	if _, err := ToUint32(r, 0); !errors.Is(err, dist.ErrEmptyInterval) {
		t.Fatalf("got %v, want ErrEmptyInterval", err)
	}
	if _, err := SpanInt64(r, 5, -5); !errors.Is(err, dist.ErrEmptyInterval) {
		t.Fatalf("got %v, want ErrEmptyInterval", err)
	}
	if _, err := SpanFloat64(r, math.NaN(), 1); !errors.Is(err, dist.ErrEmptyInterval) {
		t.Fatalf("got %v, want ErrEmptyInterval", err)
	}
	if _, err := GenFloat64(r, dist.To[float64]{Hi: 1}); !errors.Is(err, dist.ErrUnsupportedRange) {
		t.Fatalf("got %v, want ErrUnsupportedRange", err)
	}
	if _, err := GenUint32(r, dist.Span[int64]{Lo: 0, Hi: 1}); !errors.Is(err, dist.ErrUnsupportedRange) {
		t.Fatalf("got %v, want ErrUnsupportedRange", err)
	}
}

func TestIterValidatesOnce(t *testing.T) {
	if _, err := IterUint32(core.NewXSR128(1), dist.Span[uint32]{Lo: 3, Hi: 3}); !errors.Is(err, dist.ErrEmptyInterval) {
		t.Fatalf("got %v, want ErrEmptyInterval", err)
	}
	if _, err := IterInt64(core.NewXSR128(1), dist.To[int64]{Hi: 0}); !errors.Is(err, dist.ErrEmptyInterval) {
		t.Fatalf("got %v, want ErrEmptyInterval", err)
	}
	if _, err := IterFloat64(core.NewXSR128(1), dist.From[float64]{Lo: 0}); !errors.Is(err, dist.ErrUnsupportedRange) {
		t.Fatalf("got %v, want ErrUnsupportedRange", err)
	}

	// validation must not consume entropy: a valid iterator built from a
	// fresh core starts from the same word the core itself would emit
	r1 := core.NewXSR128(13)
	r2 := r1.Clone()
	it, err := IterUint32(r1, dist.Full{})
	if err != nil {
		t.Fatalf("iter: %v", err)
	}
	if it.Next() != r2.Uint32() {
		t.Fatalf("iterator construction consumed entropy")
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
	for i := 0; i < 1000; i++ {
		want, err := GenUint32(r2, d)
		if err != nil {
			t.Fatalf("gen: %v", err)
		}
		if got := it.Next(); got != want {
			t.Fatalf("iter diverged from scalar at %d: %d != %d", i, got, want)
		}
	}
}

func TestIterTakeBounds(t *testing.T) {
	it, err := IterInt64(core.NewXSR128(21), dist.Span[int64]{Lo: -5, Hi: 5})
	if err != nil {
		t.Fatalf("iter: %v", err)
	}
	vs := it.Take(100)
	if len(vs) != 100 {
		t.Fatalf("take: got %d values", len(vs))
	}
	for _, v := range vs {
		if v < -5 || v >= 5 {
			t.Fatalf("value %d escaped [-5, 5)", v)
		}
	}

	itf, err := IterFloat64(core.NewXSR128(22), dist.Full{})
	if err != nil {
		t.Fatalf("iter: %v", err)
	}
	for _, v := range itf.Take(100) {
		if v < 0 || v >= 1 {
			t.Fatalf("value %v escaped [0, 1)", v)
		}
	}
}
