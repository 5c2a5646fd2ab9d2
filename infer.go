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
	"errors"

	"github.com/wdamron/tlca/ast"
	"github.com/wdamron/tlca/types"
)

// Fixed signatures of binary operators.
var operatorTypes = map[ast.Operator]types.Type{
	ast.Equals: types.Curried([]types.Type{types.Int, types.Int}, types.Bool),
	ast.Plus:   types.Curried([]types.Type{types.Int, types.Int}, types.Int),
	ast.Minus:  types.Curried([]types.Type{types.Int, types.Int}, types.Int),
	ast.Times:  types.Curried([]types.Type{types.Int, types.Int}, types.Int),
	ast.Divide: types.Curried([]types.Type{types.Int, types.Int}, types.Int),
}

// Infer the unsolved type of e within env, recording constraints.
func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Var:
		sc, ok := env.Lookup(e.Name)
		if !ok {
			return nil, ti.fail(e, &UnknownNameError{Name: e.Name})
		}
		return sc.Instantiate(&ti.vars), nil

	case *ast.App:
		t1, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		t2, err := ti.infer(env, e.Arg)
		if err != nil {
			return nil, err
		}
		tv := ti.vars.New()
		ti.constraints.Add(t1, types.NewArrow(t2, tv))
		return tv, nil

	case *ast.If:
		t1, err := ti.infer(env, e.Cond)
		if err != nil {
			return nil, err
		}
		t2, err := ti.infer(env, e.Then)
		if err != nil {
			return nil, err
		}
		t3, err := ti.infer(env, e.Else)
		if err != nil {
			return nil, err
		}
		ti.constraints.Add(t1, types.Bool)
		ti.constraints.Add(t2, t3)
		return t2, nil

	case *ast.Lam:
		tv := ti.vars.New()
		t, err := ti.infer(env.ExtendMono(e.Param, tv), e.Body)
		if err != nil {
			return nil, err
		}
		return types.NewArrow(tv, t), nil

	case *ast.Let:
		t, _, err := ti.inferLet(env, e, e.Decls, e.Body)
		return t, err

	case *ast.LetRec:
		t, _, err := ti.inferLetRec(env, e, e.Decls, e.Body)
		return t, err

	case *ast.Bool:
		return types.Bool, nil

	case *ast.Int:
		return types.Int, nil

	case *ast.String:
		return types.String, nil

	case *ast.Unit:
		return types.Unit, nil

	case *ast.Tuple:
		elems := make([]types.Type, len(e.Elems))
		for i, elem := range e.Elems {
			t, err := ti.infer(env, elem)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return types.NewTuple(elems...), nil

	case *ast.Op:
		t1, err := ti.infer(env, e.Left)
		if err != nil {
			return nil, err
		}
		t2, err := ti.infer(env, e.Right)
		if err != nil {
			return nil, err
		}
		sig, ok := operatorTypes[e.Op]
		if !ok {
			return nil, ti.fail(e, errors.New("Unknown operator "+e.Op.String()))
		}
		tv := ti.vars.New()
		ti.constraints.Add(types.NewArrow(t1, types.NewArrow(t2, tv)), sig)
		return tv, nil

	case *ast.Match:
		t, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		var result types.Type
		for i, c := range e.Cases {
			caseEnv, err := ti.inferPattern(env, c.Pattern, t)
			if err != nil {
				return nil, ti.fail(e, err)
			}
			bt, err := ti.infer(caseEnv, c.Body)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				result = bt
			} else {
				ti.constraints.Add(result, bt)
			}
		}
		if result == nil {
			result = ti.vars.New()
		}
		return result, nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return nil, ti.fail(e, errors.New("Unhandled expression "+exprName))
}

// Infer a non-recursive let-group. Each declaration is solved and generalized before the next
// declaration is inferred, so later declarations may use earlier ones polymorphically.
func (ti *InferenceContext) inferLet(env *TypeEnv, e ast.Expr, decls []ast.Decl, body ast.Expr) (types.Type, *TypeEnv, error) {
	groupEnv := env
	declTypes := make([]types.Type, len(decls))
	for i, d := range decls {
		t, err := ti.infer(groupEnv, d.Value)
		if err != nil {
			return nil, env, err
		}
		s, err := ti.constraints.Solve()
		if err != nil {
			return nil, env, ti.fail(e, err)
		}
		groupEnv = groupEnv.Apply(s)
		t = s.Apply(t)
		groupEnv = groupEnv.Extend(d.Name, groupEnv.Generalize(t))
		declTypes[i] = t
	}
	if body == nil {
		return types.NewTuple(declTypes...), groupEnv, nil
	}
	t, err := ti.infer(groupEnv, body)
	return t, env, err
}

// Infer a recursive let-group. Every declaration is bound to a fresh monomorphic type-variable before
// any declaration is inferred; the group is then solved as the fixed point of a function over the
// tuple of declarations, and each declaration is generalized independently.
func (ti *InferenceContext) inferLetRec(env *TypeEnv, e ast.Expr, decls []ast.Decl, body ast.Expr) (types.Type, *TypeEnv, error) {
	tvs := ti.vars.NewList(len(decls))
	interimEnv := env
	for i, d := range decls {
		interimEnv = interimEnv.ExtendMono(d.Name, tvs[i])
	}

	// fix (\_ -> (d1, d2, ...)):
	param := ti.vars.New()
	bodies := make([]types.Type, len(decls))
	for i, d := range decls {
		t, err := ti.infer(interimEnv, d.Value)
		if err != nil {
			return nil, env, err
		}
		bodies[i] = t
	}
	fixed := ti.vars.New()
	ti.constraints.Add(types.NewArrow(fixed, fixed), types.NewArrow(param, types.NewTuple(bodies...)))
	ti.constraints.Add(fixed, types.NewTuple(tvs...))

	s, err := ti.constraints.Solve()
	if err != nil {
		return nil, env, ti.fail(e, err)
	}
	solvedEnv := env.Apply(s)
	groupEnv := solvedEnv
	declTypes := make([]types.Type, len(decls))
	for i, d := range decls {
		t := s.Apply(tvs[i])
		groupEnv = groupEnv.Extend(d.Name, solvedEnv.Generalize(t))
		declTypes[i] = t
	}
	if body == nil {
		return types.NewTuple(declTypes...), groupEnv, nil
	}
	t, err := ti.infer(groupEnv, body)
	return t, env, err
}

// Infer the bindings of pattern p matched against a value of type t, returning env extended with
// the pattern's variables.
func (ti *InferenceContext) inferPattern(env *TypeEnv, p ast.Pattern, t types.Type) (*TypeEnv, error) {
	switch p := p.(type) {
	case *ast.BoolPattern:
		ti.constraints.Add(t, types.Bool)
		return env, nil

	case *ast.IntPattern:
		ti.constraints.Add(t, types.Int)
		return env, nil

	case *ast.StringPattern:
		ti.constraints.Add(t, types.String)
		return env, nil

	case *ast.UnitPattern:
		ti.constraints.Add(t, types.Unit)
		return env, nil

	case *ast.WildcardPattern:
		return env, nil

	case *ast.VarPattern:
		tv := ti.vars.New()
		ti.constraints.Add(tv, t)
		return env.ExtendMono(p.Name, tv), nil

	case *ast.TuplePattern:
		tvs := ti.vars.NewList(len(p.Elems))
		ti.constraints.Add(t, types.NewTuple(tvs...))
		var err error
		for i, elem := range p.Elems {
			if env, err = ti.inferPattern(env, elem, tvs[i]); err != nil {
				return env, err
			}
		}
		return env, nil

	case *ast.DataPattern:
		adt, ok := env.ConstructorData(p.Constructor)
		if !ok {
			return env, &UnknownConstructorError{Name: p.Constructor}
		}
		c, _ := adt.Constructor(p.Constructor)
		if len(c.Args) != len(p.Args) {
			return env, &IncorrectPatternArgumentsError{Name: c.Name, Expected: len(c.Args), Actual: len(p.Args)}
		}
		ct := adt.ConstructorScheme(c).Instantiate(&ti.vars)
		argTypes := make([]types.Type, len(p.Args))
		for i := range p.Args {
			arrow := ct.(*types.Arrow)
			argTypes[i], ct = arrow.From, arrow.To
		}
		ti.constraints.Add(t, ct)
		var err error
		for i, arg := range p.Args {
			if env, err = ti.inferPattern(env, arg, argTypes[i]); err != nil {
				return env, err
			}
		}
		return env, nil
	}

	var patternName string
	if p != nil {
		patternName = "(" + p.PatternName() + ")"
	} else {
		patternName = "(nil)"
	}
	return env, errors.New("Unhandled pattern " + patternName)
}
