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

const (
	// optOutMarker marks a type as intentionally non-serialized.
	optOutMarker = "NoSerialize"

	// brandMarker marks a type as a handle to a boundary, produced by the
	// boundary constructor.
	brandMarker = "SerializableRef"
)

// hasMarker probes for a field or method with the given name.
func hasMarker(t types.Type, name string) bool {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, name)

	return obj != nil
}

// Branded reports whether t is a boundary-reference handle, safe to capture
// across any boundary.
func Branded(t types.Type) bool {
	return hasMarker(t, brandMarker)
}

// marshalerMethods are characteristic method names of self-serializing types.
var marshalerMethods = [...]string{"GobEncode", "MarshalBinary", "MarshalJSON", "MarshalText"}

// probeMarshaler reports whether the type declares one of the characteristic
// marshaling methods. This is a heuristic approximation: the method signature
// is not verified.
func probeMarshaler(t types.Type) bool {
	for _, name := range marshalerMethods {
		if obj, _, _ := types.LookupFieldOrMethod(t, true, nil, name); obj != nil {
			if _, ok := obj.(*types.Func); ok {
				return true
			}
		}
	}

	return false
}
