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

import (
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// VarSource issues fresh type-variables.
type VarSource interface {
	New() *Var
}

// Scheme is a type quantified over a set of type-variables: `forall a b. a -> b -> a`
type Scheme struct {
	Vars *set.TreeSet[string]
	Type Type
}

// Create a scheme quantified over the given variable names.
func NewScheme(vars []string, t Type) *Scheme {
	return &Scheme{Vars: set.TreeSetFrom[string](vars, strings.Compare), Type: t}
}

// Create a scheme without quantified variables.
func Monotype(t Type) *Scheme { return NewScheme(nil, t) }

// Replace each quantified variable with a fresh variable from vars. Free variables are left untouched.
func (sc *Scheme) Instantiate(vars VarSource) Type {
	if sc.Vars.Size() == 0 {
		return sc.Type
	}
	s := make(Subst, sc.Vars.Size())
	for _, name := range sc.Vars.Slice() {
		s[name] = vars.New()
	}
	return s.Apply(sc.Type)
}

// Apply s to the scheme's type, excluding the scheme's quantified variables.
func (sc *Scheme) Apply(s Subst) *Scheme {
	if len(s) == 0 {
		return sc
	}
	return &Scheme{Vars: sc.Vars, Type: s.Without(sc.Vars.Slice()).Apply(sc.Type)}
}

// FreeVars returns the variables of the scheme's type which are not quantified.
func (sc *Scheme) FreeVars() *set.Set[string] {
	vars := FreeVars(sc.Type)
	for _, name := range sc.Vars.Slice() {
		vars.Remove(name)
	}
	return vars
}

// SchemeString returns a string representation of a Scheme: `forall V1. V1 -> V1`
func SchemeString(sc *Scheme) string {
	if sc.Vars.Size() == 0 {
		return TypeString(sc.Type)
	}
	return "forall " + strings.Join(sc.Vars.Slice(), " ") + ". " + TypeString(sc.Type)
}
