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

// 開發用伺服器：內嵌的展示設定（固定種子），不需要任何旗標。
package main

import (
	"fmt"

	"github.com/zintix-labs/randlab/demo"
	"github.com/zintix-labs/randlab/server"
)

func main() {
	sCfg, err := demo.NewServerConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	server.Run(sCfg)
}
