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

package svrcfg

import (
	"testing"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/core"
)

func testLab(t *testing.T) *randlab.Lab {
	t.Helper()
	lab, err := randlab.NewWithSeed(core.Default(), 1)
	if err != nil {
		t.Fatalf("lab: %v", err)
	}
	return lab
}

func TestVaildDefaults(t *testing.T) {
	sc := &SvrCfg{Lab: testLab(t)}
	if err := sc.Vaild(); err != nil {
		t.Fatalf("vaild: %v", err)
	}
	if sc.Log == nil {
		t.Fatalf("missing log must be replaced with a default handler")
	}
	if sc.DrawMax != 10_000 {
		t.Fatalf("draw max default: got %d", sc.DrawMax)
	}
	if sc.CheckMax != 1_000_000 {
		t.Fatalf("check max default: got %d", sc.CheckMax)
	}
}

func TestVaildClamps(t *testing.T) {
	sc := &SvrCfg{Lab: testLab(t), DrawMax: 9_999_999, CheckMax: 1}
	if err := sc.Vaild(); err != nil {
		t.Fatalf("vaild: %v", err)
	}
	if sc.DrawMax != 100_000 {
		t.Fatalf("draw max clamp: got %d", sc.DrawMax)
	}
	if sc.CheckMax != 1_000 {
		t.Fatalf("check max clamp: got %d", sc.CheckMax)
	}
}

func TestVaildRequiresLab(t *testing.T) {
	sc := &SvrCfg{}
	if err := sc.Vaild(); err == nil {
		t.Fatalf("nil lab must be rejected")
	}
}
