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

package classify

import "go/types"

// wrapperAllowList enumerates standard library types that serialize by
// convention even though they carry unexported state.
var wrapperAllowList = map[string]bool{
	// keep-sorted start
	"math/big.Float": true,
	"math/big.Int":   true,
	"math/big.Rat":   true,
	"net.IP":         true,
	"net/url.URL":    true,
	"regexp.Regexp":  true,
	"time.Duration":  true,
	"time.Time":      true,
	// keep-sorted end
}

// adapterAllowList enumerates named adapter types accepted as typed handler
// values despite having function call signatures.
var adapterAllowList = map[string]bool{
	"EventHandler": true,
}

// AllowedAdapter reports whether the named type is an accepted typed handler
// adapter.
func AllowedAdapter(n *types.Named) bool {
	return adapterAllowList[n.Obj().Name()]
}

func qualifiedName(n *types.Named) string {
	obj := n.Obj()
	if pkg := obj.Pkg(); pkg != nil {
		return pkg.Path() + "." + obj.Name()
	}

	return obj.Name()
}
