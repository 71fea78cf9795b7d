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

package bench

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGetConfigByYAMLDefaults(t *testing.T) {
	c, err := GetConfigByYAML([]byte("seed: 42\n"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if c.Seed != 42 {
		t.Fatalf("seed: got %d", c.Seed)
	}
	if c.Rounds != 50 || c.Reps != 100 {
		t.Fatalf("defaults: rounds %d reps %d", c.Rounds, c.Reps)
	}
	if c.Core != "xsr128" {
		t.Fatalf("core default: got %q", c.Core)
	}
	if len(c.Encodings) != 4 {
		t.Fatalf("encodings default: got %v", c.Encodings)
	}
}

func TestGetConfigByYAMLRejectsBadValues(t *testing.T) {
	if _, err := GetConfigByYAML([]byte("core: mt19937\n")); !errors.Is(err, errUnknownCore) {
		t.Fatalf("got %v, want errUnknownCore", err)
	}
	if _, err := GetConfigByYAML([]byte("encodings: [assoc, closure]\n")); !errors.Is(err, errUnknownEncoding) {
		t.Fatalf("got %v, want errUnknownEncoding", err)
	}
	if _, err := GetConfigByYAML([]byte("scenarios: [gen_, warp]\n")); !errors.Is(err, errUnknownScenario) {
		t.Fatalf("got %v, want errUnknownScenario", err)
	}
	if _, err := GetConfigByYAML([]byte("seed: [")); err == nil {
		t.Fatalf("broken yaml must be rejected")
	}
}

func TestScenariosPerEncoding(t *testing.T) {
	for _, enc := range []string{EncAssoc, EncStream, EncTypeparam} {
		scs, err := Scenarios(enc)
		if err != nil {
			t.Fatalf("%s: %v", enc, err)
		}
		if len(scs) != 8 {
			t.Fatalf("%s: got %d scenarios, want 8", enc, len(scs))
		}
	}

	scs, err := Scenarios(EncBaseline)
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if len(scs) != 3 {
		t.Fatalf("baseline: got %d scenarios, want 3", len(scs))
	}
	for _, sc := range scs {
		if strings.HasPrefix(sc.Name, "range_") {
			t.Fatalf("baseline has no bounded scenarios, got %q", sc.Name)
		}
	}

	if _, err := Scenarios("closure"); !errors.Is(err, errUnknownEncoding) {
		t.Fatalf("got %v, want errUnknownEncoding", err)
	}
}

func TestRunSmallConfig(t *testing.T) {
	c, err := GetConfigByYAML([]byte(`
seed: 7
rounds: 2
reps: 1
warmup: 1
progress: false
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	results, used, err := Run(c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// 3 full encodings x 8 scenarios + baseline x 3
	if len(results) != 3*8+3 {
		t.Fatalf("got %d results, want 27", len(results))
	}
	for _, r := range results {
		if r.Rounds != 2 {
			t.Fatalf("%s/%s: rounds %d", r.Encoding, r.Scenario, r.Rounds)
		}
		if r.NsPerIter < 0 {
			t.Fatalf("%s/%s: negative ns/iter", r.Encoding, r.Scenario)
		}
	}
	if used <= 0 {
		t.Fatalf("used: %v", used)
	}
}

func TestRunScenarioFilter(t *testing.T) {
	c, err := GetConfigByYAML([]byte(`
seed: 7
rounds: 1
reps: 1
progress: false
encodings: [stream, baseline]
scenarios: [gen_, range_gen]
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	results, _, err := Run(c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// stream matches both scenarios, baseline only gen_
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Scenario != ScenGen && r.Scenario != ScenRangeGen {
			t.Fatalf("unexpected scenario %q", r.Scenario)
		}
	}
}

func TestRunSingleRoundStd(t *testing.T) {
	c, err := GetConfigByYAML([]byte(`
seed: 7
rounds: 1
reps: 1
progress: false
encodings: [baseline]
scenarios: [gen_]
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	results, _, err := Run(c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	// one sample has no spread: Std must be exactly 0, never NaN
	if r := results[0]; r.Std != 0 {
		t.Fatalf("single-round std: got %v, want 0", r.Std)
	}
	if _, err := json.Marshal(results); err != nil {
		t.Fatalf("results must stay JSON-encodable: %v", err)
	}
}

func TestRenderTable(t *testing.T) {
	results := []Result{
		{Encoding: EncStream, Scenario: ScenGen, NsPerIter: 1234.5, Std: 10.2, Rounds: 2},
		{Encoding: EncStream, Scenario: ScenRangeGen, NsPerIter: 2000, Std: 5, Rounds: 2},
		{Encoding: EncBaseline, Scenario: ScenGen, NsPerIter: 900, Std: 3, Rounds: 2},
	}
	out := Render(results)

	for _, want := range []string{"scenario", "stream", "baseline", "gen_", "range_gen", "±"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
	// baseline has no range_gen cell: the row still renders
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("table shape: got %d lines\n%s", len(lines), out)
	}
	width := len(lines[0])
	for i, l := range lines {
		if len(l) != width {
			t.Fatalf("ragged table at line %d:\n%s", i, out)
		}
	}
}

func TestOpaqueIsIdentity(t *testing.T) {
	if Opaque(uint32(17)) != 17 {
		t.Fatalf("Opaque must pass values through")
	}
	Keep(99)
	if Sink != 99 {
		t.Fatalf("Keep must store into Sink")
	}
}
