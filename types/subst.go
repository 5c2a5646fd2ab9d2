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

package types

// Subst maps type-variable names to types.
type Subst map[string]Type

// Apply rewrites every variable of t which is bound in s. Unbound variables are left untouched.
// The returned type shares unchanged sub-trees with t.
func (s Subst) Apply(t Type) Type {
	if len(s) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if r, ok := s[t.Name]; ok {
			return r
		}
		return t

	case *Con:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &Con{Name: t.Name, Args: args}

	case *Arrow:
		return &Arrow{From: s.Apply(t.From), To: s.Apply(t.To)}

	case *Tuple:
		elems := make([]Type, len(t.Elems))
		for i, elem := range t.Elems {
			elems[i] = s.Apply(elem)
		}
		return &Tuple{Elems: elems}
	}
	return t
}

// Extend binds name to t, after applying the binding to every type already in s.
// s is modified in place; the result is idempotent when s was.
func (s Subst) Extend(name string, t Type) {
	single := Subst{name: t}
	for k, v := range s {
		s[k] = single.Apply(v)
	}
	s[name] = t
}

// Without returns a copy of s excluding the given names.
func (s Subst) Without(names []string) Subst {
	if len(names) == 0 {
		return s
	}
	r := make(Subst, len(s))
	for k, v := range s {
		r[k] = v
	}
	for _, name := range names {
		delete(r, name)
	}
	return r
}
