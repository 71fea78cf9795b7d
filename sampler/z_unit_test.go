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

package sampler

import (
	"math"
	"testing"

	"github.com/zintix-labs/randlab/core"
)

const maxU32 = ^uint32(0)

func TestZone32Properties(t *testing.T) {
	widths := []uint32{1, 2, 3, 317, 1024, 1 << 20, maxU32 - 1, maxU32}
	for _, w := range widths {
		zone := Zone32(w)
		if zone%w != 0 {
			t.Fatalf("width %d: zone %d not divisible by width", w, zone)
		}
		if zone+maxU32%w != maxU32 {
			t.Fatalf("width %d: zone %d + MAX mod width != MAX", w, zone)
		}
	}
}

func TestZone64Properties(t *testing.T) {
	maxU64 := ^uint64(0)
	widths := []uint64{1, 10, 317, 1 << 40, maxU64}
	for _, w := range widths {
		zone := Zone64(w)
		if zone%w != 0 {
			t.Fatalf("width %d: zone %d not divisible by width", w, zone)
		}
		if zone+maxU64%w != maxU64 {
			t.Fatalf("width %d: zone+MAX mod width != MAX", w)
		}
	}
}

func TestZone32KnownValue(t *testing.T) {
	// width 317: 4294967295 mod 317 = 231, zone = 4294967295 - 231 = 4294967064
	if got := Zone32(317); got != 4294967064 {
		t.Fatalf("Zone32(317) = %d, want 4294967064", got)
	}
}

func TestDraw32AcceptsZero(t *testing.T) {
	// raw word 0 is always inside the accept zone: 4 + 0 mod 317 = 4
	r := &core.Script{U32: []uint32{0}}
	w := uint32(317)
	if got := Draw32(r, 4, w, Zone32(w)); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestDraw32RejectsAboveZone(t *testing.T) {
	// 4294967259 >= zone(4294967064) is rejected; next word 100 -> 4 + 100 mod 317 = 104
	r := &core.Script{U32: []uint32{4294967259, 100}}
	w := uint32(317)
	if got := Draw32(r, 4, w, Zone32(w)); got != 104 {
		t.Fatalf("got %d, want 104", got)
	}
}

func TestDraw64SignedWrapAdd(t *testing.T) {
	// [-5, 5): width 10, raw word 7 -> -5 + 7 = 2 after wrap-add in the unsigned image
	r := &core.Script{U64: []uint64{7}}
	w := uint64(10)
	lo := int64(-5)
	got := int64(Draw64(r, uint64(lo), w, Zone64(w)))
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestDrawFloatAffine(t *testing.T) {
	// u = 0.25 over [0, 10) -> 2.5
	r := &core.Script{F: []float64{0.25}}
	if got := DrawFloat(r, 0.0, 10.0); got != 2.5 {
		t.Fatalf("got %v, want 2.5", got)
	}
}

func TestWidthFromU32(t *testing.T) {
	// From(lo) covers [lo, 2^32-1]: width = 2^32 - lo
	if got := WidthFromU32(1); got != maxU32 {
		t.Fatalf("WidthFromU32(1) = %d, want %d", got, maxU32)
	}
	if got := WidthFromU32(maxU32); got != 1 {
		t.Fatalf("WidthFromU32(max) = %d, want 1", got)
	}
}

func TestWidthFromI64(t *testing.T) {
	if got := WidthFromI64(math.MaxInt64); got != 1 {
		t.Fatalf("WidthFromI64(max) = %d, want 1", got)
	}
	if got := WidthFromI64(0); got != uint64(math.MaxInt64)+1 {
		t.Fatalf("WidthFromI64(0) = %d, want 2^63", got)
	}
	// MinInt64 wraps to zero; callers must reduce that case to the full path first
	if got := WidthFromI64(math.MinInt64); got != 0 {
		t.Fatalf("WidthFromI64(min) = %d, want 0", got)
	}
}

func TestDraw32BoundedNever(t *testing.T) {
	r := core.NewXSR128(123)
	w := uint32(317)
	zone := Zone32(w)
	for i := 0; i < 100_000; i++ {
		v := Draw32(r, 4, w, zone)
		if v < 4 || v >= 321 {
			t.Fatalf("draw %d escaped [4, 321)", v)
		}
	}
}
