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

package values

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// Env is a persistent runtime environment mapping names to values.
//
// Extending an environment returns a new environment; environments captured by closures never
// observe later extensions.
type Env struct {
	m *immutable.SortedMap
}

// Create an empty runtime environment.
func NewEnv() Env { return Env{emptyMap} }

// Slot is a write-once binding for a declaration of a recursive let-group. Closures created while
// the group is evaluated capture the slot, so they observe the declaration's value once it is bound.
type Slot struct {
	value Value
}

// Set the value of the slot. A slot must only be set once.
func (s *Slot) Set(v Value) { s.value = v }

// Get the value of the slot, or nil if the slot is unset.
func (s *Slot) Value() Value { return s.value }

// Get the number of bindings in the environment.
func (e Env) Len() int {
	if e.m == nil {
		return 0
	}
	return e.m.Len()
}

// Lookup the value bound to name. An unset recursive slot is reported as bound with a nil value.
func (e Env) Lookup(name string) (Value, bool) {
	if e.m == nil {
		return nil, false
	}
	v, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	if slot, isSlot := v.(*Slot); isSlot {
		return slot.value, true
	}
	return v.(Value), true
}

// Extend the environment with a binding for name. The receiver is not modified.
func (e Env) Extend(name string, v Value) Env {
	m := e.m
	if m == nil {
		m = emptyMap
	}
	return Env{m.Set(name, v)}
}

// Extend the environment with an unset slot for name. The receiver is not modified.
func (e Env) Declare(name string) (Env, *Slot) {
	m := e.m
	if m == nil {
		m = emptyMap
	}
	slot := &Slot{}
	return Env{m.Set(name, slot)}, slot
}

// Iterate over bindings in the environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e Env) Range(f func(name string, v Value) bool) {
	if e.m == nil {
		return
	}
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if slot, isSlot := v.(*Slot); isSlot {
			v = slot.value
		}
		var value Value
		if v != nil {
			value = v.(Value)
		}
		if !f(k.(string), value) {
			return
		}
	}
}
