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

package typeutil

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/tlca/types"
)

// Constraint is an equality obligation between two types.
type Constraint struct {
	Left  types.Type
	Right types.Type
}

// Constraints is an ordered, append-only list of equality obligations.
//
// Solving does not consume the obligations: a let-group solves the constraints accumulated so far,
// then the enclosing statement solves all of them again, including those of the let-group.
type Constraints struct {
	list *immutable.List
}

func NewConstraints() *Constraints { return &Constraints{list: immutable.NewList()} }

// Record the obligation a = b.
func (cs *Constraints) Add(a, b types.Type) {
	if cs.list == nil {
		cs.list = immutable.NewList()
	}
	cs.list = cs.list.Append(Constraint{a, b})
}

// Get the number of recorded obligations.
func (cs *Constraints) Len() int {
	if cs.list == nil {
		return 0
	}
	return cs.list.Len()
}

// Get the obligation at index i.
func (cs *Constraints) At(i int) Constraint { return cs.list.Get(i).(Constraint) }

// Solve all recorded obligations by unification. The returned substitution makes both sides of
// every obligation structurally equal.
func (cs *Constraints) Solve() (types.Subst, error) {
	pending := make([]Constraint, 0, cs.Len())
	for i := 0; i < cs.Len(); i++ {
		pending = append(pending, cs.At(i))
	}
	return Unify(pending)
}

// Unify a list of obligations, in order, into a single idempotent substitution.
func Unify(constraints []Constraint) (types.Subst, error) {
	pending := append([]Constraint(nil), constraints...)
	subst := types.Subst{}
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		a, b := c.Left, c.Right
		if types.Equal(a, b) {
			continue
		}
		if av, ok := a.(*types.Var); ok {
			if err := bindVar(subst, pending, av, b); err != nil {
				return nil, err
			}
			continue
		}
		if bv, ok := b.(*types.Var); ok {
			if err := bindVar(subst, pending, bv, a); err != nil {
				return nil, err
			}
			continue
		}
		switch a := a.(type) {
		case *types.Con:
			b, ok := b.(*types.Con)
			if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
				return nil, &types.UnificationError{Left: a, Right: c.Right}
			}
			next := make([]Constraint, 0, len(a.Args)+len(pending))
			for i := range a.Args {
				next = append(next, Constraint{a.Args[i], b.Args[i]})
			}
			pending = append(next, pending...)

		case *types.Arrow:
			b, ok := b.(*types.Arrow)
			if !ok {
				return nil, &types.UnificationError{Left: a, Right: c.Right}
			}
			pending = append([]Constraint{{a.From, b.From}, {a.To, b.To}}, pending...)

		case *types.Tuple:
			b, ok := b.(*types.Tuple)
			if !ok || len(a.Elems) != len(b.Elems) {
				return nil, &types.UnificationError{Left: a, Right: c.Right}
			}
			next := make([]Constraint, 0, len(a.Elems)+len(pending))
			for i := range a.Elems {
				next = append(next, Constraint{a.Elems[i], b.Elems[i]})
			}
			pending = append(next, pending...)

		default:
			return nil, &types.UnificationError{Left: a, Right: b}
		}
	}
	return subst, nil
}

// Bind tv to t in subst, then apply the binding to the remaining obligations.
func bindVar(subst types.Subst, pending []Constraint, tv *types.Var, t types.Type) error {
	if types.Occurs(tv.Name, t) {
		return &types.UnificationError{Left: tv, Right: t}
	}
	single := types.Subst{tv.Name: t}
	for i := range pending {
		pending[i] = Constraint{single.Apply(pending[i].Left), single.Apply(pending[i].Right)}
	}
	subst.Extend(tv.Name, t)
	return nil
}
