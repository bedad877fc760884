// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package a

import (
	"fmt"

	"test/frame"
)

func plainHandler() {
	click := func() { fmt.Println("click") }

	_ = Button{
		Label:    "ok",
		OnClickQ: click, // want `'click' is used as handler field 'OnClickQ' but is a plain function, not a serializable reference; wrap it in BindQ\(\) \(sg:hdl\)`
	}
}

func boundHandler() {
	click := frame.BindQ(func() { fmt.Println("click") })

	_ = Button{OnClickQ: click}
}

func closureHandler() {
	msg := make(chan string)

	_ = Button{
		OnClickQ: func() {
			fmt.Println(<-msg) // want `Variable 'msg' is captured by boundary 'OnClickQ' but it is a channel, which can never be serialized \(sg:cap\)`
		},
	}
}

const TopicQ = "topic"

func mapKeys() {
	fn := func() {}
	helper := func() {}

	dispatch := map[string]func(){
		TopicQ: fn,
	}

	routes := map[string]func(){
		TopicQ: func() { helper() },
	}

	fmt.Println(dispatch, routes)
}

func adapterHandler(h frame.EventHandler) {
	_ = Button{OnClickQ: h}

	frame.UseTaskQ(func() {
		h("open")
	})
}
