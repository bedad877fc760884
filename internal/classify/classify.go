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

// Package classify decides whether a static type is guaranteed to survive
// serialization across a boundary.
//
// The decision procedure is fail-open: any ambiguous or unresolvable input is
// treated as capturable, prioritizing the avoidance of false positives.
package classify

import (
	"fmt"
	"go/types"
)

// Options configures a classification call.
type Options struct {
	// AllowAny admits values whose static type is the empty interface.
	AllowAny bool

	// Pkg qualifies type names in reasons relative to the analyzed package.
	Pkg *types.Package
}

// maxDepth bounds recursion into deeply nested types. The visited set only
// guards exact type-identity repeats, so pathological generated types could
// otherwise recurse excessively. Giving up assumes capturable.
const maxDepth = 32

// Check classifies t for capture across a serialization boundary.
// A nil result means the type is capturable.
//
// Each call uses a fresh visited set, so results never leak between reports.
func Check(t types.Type, opts Options) *Failure {
	c := &checker{opts: opts, visited: make(map[types.Type]struct{})}

	return c.check(t, 0)
}

type checker struct {
	opts    Options
	visited map[types.Type]struct{}
}

var errorType = types.Universe.Lookup("error").Type()

func (c *checker) check(t types.Type, depth int) *Failure {
	if t == nil || depth > maxDepth {
		return nil
	}

	t = types.Unalias(t)

	if _, ok := c.visited[t]; ok {
		return nil // self-referential type, already being checked
	}

	c.visited[t] = struct{}{}

	// The designed escape hatch: types carrying the opt-out marker are
	// intentionally not serialized and pass every check.
	if hasMarker(t, optOutMarker) {
		return nil
	}

	// Handles produced by the boundary constructor are always safe to capture.
	if Branded(t) {
		return nil
	}

	if types.Identical(t, errorType) {
		return nil // error values serialize as their message
	}

	switch t := t.(type) {
	case *types.Named:
		return c.checkNamed(t, depth)

	case *types.TypeParam:
		return c.checkTypeParam(t, depth)
	}

	return c.checkUnderlying(t, t.Underlying(), depth)
}

// checkNamed handles nominal types: the wrapper allow-list, typed handler
// adapters, self-serializing types and types with unserializable private state.
func (c *checker) checkNamed(n *types.Named, depth int) *Failure {
	if wrapperAllowList[qualifiedName(n)] {
		return nil
	}

	if AllowedAdapter(n) {
		return nil
	}

	if probeMarshaler(n) {
		return nil
	}

	if st, ok := n.Underlying().(*types.Struct); ok && hasUnexportedField(st) {
		reason := fmt.Sprintf(
			"is an instance of type '%s' with unexported fields, which is not serializable, use a plain struct",
			n.Obj().Name())

		return &Failure{Type: n, Reason: reason}
	}

	return c.checkUnderlying(n, n.Underlying(), depth)
}

// checkTypeParam classifies the union terms of a type parameter's constraint
// in declared order. A constraint without union terms poses no restriction.
func (c *checker) checkTypeParam(tp *types.TypeParam, depth int) *Failure {
	iface, ok := tp.Constraint().Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	for embedded := range iface.EmbeddedTypes() {
		union, ok := embedded.(*types.Union)
		if !ok {
			continue
		}

		for term := range union.Terms() {
			if fail := c.check(term.Type(), depth+1); fail != nil {
				return fail
			}
		}
	}

	return nil
}

func (c *checker) checkUnderlying(t, u types.Type, depth int) *Failure {
	switch u := u.(type) {
	// keep-sorted start newline_separated=yes
	case *types.Array:
		return c.check(u.Elem(), depth+1)

	case *types.Basic:
		if u.Kind() == types.UnsafePointer {
			return &Failure{Type: t, Reason: "is an unsafe.Pointer, which is not serializable"}
		}

		return nil

	case *types.Chan:
		return &Failure{Type: t, Reason: "is a channel, which can never be serialized"}

	case *types.Interface:
		return c.checkInterface(t, u)

	case *types.Map:
		if fail := c.check(u.Key(), depth+1); fail != nil {
			return fail
		}

		return c.check(u.Elem(), depth+1)

	case *types.Pointer:
		return c.check(u.Elem(), depth+1)

	case *types.Signature:
		return &Failure{
			Type:    t,
			Reason:  "is a function, which is not serializable",
			Suggest: depth == 0,
		}

	case *types.Slice:
		return c.check(u.Elem(), depth+1)

	case *types.Struct:
		return c.checkStruct(u, depth)

	case *types.Tuple:
		for v := range u.Variables() {
			if fail := c.check(v.Type(), depth+1); fail != nil {
				return fail
			}
		}

		return nil
		// keep-sorted end
	}

	return nil // primitives and literals fall through every check
}

func (c *checker) checkInterface(t types.Type, iface *types.Interface) *Failure {
	if iface.Empty() {
		if c.opts.AllowAny {
			return nil
		}

		return &Failure{Type: t, Reason: "has type 'any', which is not serializable"}
	}

	reason := fmt.Sprintf(
		"has interface type '%s', which may or may not be serializable, narrow it to a concrete type",
		types.TypeString(t, types.RelativeTo(c.opts.Pkg)))

	return &Failure{Type: t, Reason: reason}
}

// checkStruct recurses into every field. The first failing field wins, with
// its name prefixed onto the location path.
func (c *checker) checkStruct(st *types.Struct, depth int) *Failure {
	for f := range st.Fields() {
		if !f.Exported() {
			return &Failure{
				Type:   f.Type(),
				Reason: "is unexported and will not survive serialization",
				Path:   []string{f.Name()},
			}
		}

		if fail := c.check(f.Type(), depth+1); fail != nil {
			fail.Path = append([]string{f.Name()}, fail.Path...)

			return fail
		}
	}

	return nil
}

func hasUnexportedField(st *types.Struct) bool {
	for f := range st.Fields() {
		if !f.Exported() {
			return true
		}
	}

	return false
}
