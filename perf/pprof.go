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

// Package perf 提供量測入口的 pprof 包裝。
// 量測表只回報 ns/iter；要看「時間花在哪一層」（編碼分派、拒絕迴圈、
// 迭代器呼叫）得靠 profile。輸出檔也可當 PGO 的 blueprint。
package perf

import (
	"os"
	"runtime"
	"runtime/pprof"
)

const pprofDir = "build/profiling" // pprof 檔案寫入路徑

// RunPProf 依 mode 包住 exe 執行：
//
//	""       : 直接執行
//	"cpu"    : CPU profile（exe 全程取樣）
//	"heap"   : exe 結束後拍一次 in-use heap 快照
//	"allocs" : exe 結束後寫出累積配置 profile
//
// Usage like:
//
//	go run ./cmd/bench -pprof cpu
func RunPProf(exe func(), mode string) {
	switch mode {
	case "cpu":
		PProfCPU(exe)
	case "heap":
		PProfHeap(exe)
	case "allocs":
		PProfAllocs(exe)
	default:
		exe()
	}
}

// PProfCPU 對 exe 全程做 CPU profiling，輸出 build/profiling/cpu.pprof。
func PProfCPU(exe func()) {
	f, err := createProfile("cpu.pprof")
	if err != nil {
		panic("failed to create cpu.pprof : " + err.Error())
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		panic("failed to start pprof : " + err.Error())
	}
	defer pprof.StopCPUProfile()

	exe()
}

// PProfHeap 在 exe() 執行完後寫出一次 Heap Snapshot（in-use memory）。
// 寫出前先 runtime.GC()，讓快照貼近 live objects。
func PProfHeap(exe func()) {
	exe()

	runtime.GC()

	f, err := createProfile("heap.pprof")
	if err != nil {
		panic("failed to create heap.pprof : " + err.Error())
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		panic("failed to write heap profile : " + err.Error())
	}
}

// PProfAllocs 在 exe() 後寫出累積配置 profile；
// 搭配 -alloc_space / -alloc_objects 查看分配熱點
// （迭代器場景的 Take 緩衝、描述子裝箱都會現形）。
func PProfAllocs(exe func()) {
	exe()

	f, err := createProfile("allocs.pprof")
	if err != nil {
		panic("failed to create allocs.pprof : " + err.Error())
	}
	defer f.Close()

	if prof := pprof.Lookup("allocs"); prof != nil {
		if err := prof.WriteTo(f, 0); err != nil {
			panic("failed to write allocs profile : " + err.Error())
		}
	}
}

func createProfile(name string) (*os.File, error) {
	if err := os.MkdirAll(pprofDir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(pprofDir + "/" + name)
}
