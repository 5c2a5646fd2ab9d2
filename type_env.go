// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package tlca

import (
	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/tlca/internal/typeutil"
	"github.com/wdamron/tlca/types"
)

var emptyMap = immutable.NewSortedMap(nil)

// TypeEnv is a persistent type-environment containing mappings from identifiers to type schemes, and
// a registry of declared data types.
//
// A type-environment is never modified after construction: Extend, AddData and Apply return a new
// environment which shares structure with the receiver. Environments may be shared across goroutines.
type TypeEnv struct {
	schemes      *immutable.SortedMap // name -> *types.Scheme
	data         *immutable.SortedMap // name -> *types.ADT
	constructors *immutable.SortedMap // constructor name -> data type name
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{schemes: emptyMap, data: emptyMap, constructors: emptyMap}
}

// Lookup the scheme bound to name.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	sc, ok := e.schemes.Get(name)
	if !ok {
		return nil, false
	}
	return sc.(*types.Scheme), true
}

// Extend the environment with a scheme for name, shadowing any existing binding.
func (e *TypeEnv) Extend(name string, sc *types.Scheme) *TypeEnv {
	return &TypeEnv{schemes: e.schemes.Set(name, sc), data: e.data, constructors: e.constructors}
}

// Extend the environment with an unquantified type for name.
func (e *TypeEnv) ExtendMono(name string, t types.Type) *TypeEnv {
	return e.Extend(name, types.Monotype(t))
}

// Lookup a declared data type.
func (e *TypeEnv) Data(name string) (*types.ADT, bool) {
	adt, ok := e.data.Get(name)
	if !ok {
		return nil, false
	}
	return adt.(*types.ADT), true
}

// Register a data type, replacing any existing registration with the same name. Constructors of the
// data type are indexed for pattern matching; constructor schemes are bound separately.
func (e *TypeEnv) AddData(adt *types.ADT) *TypeEnv {
	constructors := e.constructors
	for _, c := range adt.Constructors {
		constructors = constructors.Set(c.Name, adt.Name)
	}
	return &TypeEnv{schemes: e.schemes, data: e.data.Set(adt.Name, adt), constructors: constructors}
}

// Lookup the data type declaring a constructor.
func (e *TypeEnv) ConstructorData(name string) (*types.ADT, bool) {
	dataName, ok := e.constructors.Get(name)
	if !ok {
		return nil, false
	}
	return e.Data(dataName.(string))
}

// Apply a substitution to every scheme in the environment. Quantified variables are not affected.
func (e *TypeEnv) Apply(s types.Subst) *TypeEnv {
	if len(s) == 0 {
		return e
	}
	schemes := e.schemes
	iter := e.schemes.Iterator()
	for !iter.Done() {
		name, sc := iter.Next()
		if applied := sc.(*types.Scheme).Apply(s); applied != sc {
			schemes = schemes.Set(name, applied)
		}
	}
	return &TypeEnv{schemes: schemes, data: e.data, constructors: e.constructors}
}

// FreeVars returns the type-variables which are free in some scheme of the environment.
func (e *TypeEnv) FreeVars() *set.Set[string] {
	vars := set.New[string](8)
	iter := e.schemes.Iterator()
	for !iter.Done() {
		_, sc := iter.Next()
		for _, name := range sc.(*types.Scheme).FreeVars().Slice() {
			vars.Insert(name)
		}
	}
	return vars
}

// Generalize t relative to the environment: variables free in the environment are not quantified.
func (e *TypeEnv) Generalize(t types.Type) *types.Scheme {
	return typeutil.Generalize(e.FreeVars(), t)
}

// Names returns the identifiers bound in the environment, sorted.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, e.schemes.Len())
	iter := e.schemes.Iterator()
	for !iter.Done() {
		name, _ := iter.Next()
		names = append(names, name.(string))
	}
	return names
}

// DataNames returns the names of declared data types, sorted.
func (e *TypeEnv) DataNames() []string {
	names := make([]string, 0, e.data.Len())
	iter := e.data.Iterator()
	for !iter.Done() {
		name, _ := iter.Next()
		names = append(names, name.(string))
	}
	return names
}
