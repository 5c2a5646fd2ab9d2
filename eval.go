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
	"github.com/wdamron/tlca/values"
)

// Evaluate expr within env.
//
// Evaluation assumes expr was successfully type-checked within a type-environment corresponding to env.
func Evaluate(expr ast.Expr, env values.Env) (values.Value, error) {
	return eval(env, expr)
}

// Evaluate a top-level expression within env.
//
// A let-group without a body declares its bindings at the top level: the returned environment extends
// env with each declared value, and the returned value is the tuple of declared values. For any other
// expression, env is returned unchanged.
func EvaluateTopLevel(expr ast.Expr, env values.Env) (values.Value, values.Env, error) {
	switch e := expr.(type) {
	case *ast.Let:
		return evalLet(env, e.Decls, e.Body)
	case *ast.LetRec:
		return evalLetRec(env, e.Decls, e.Body)
	}
	v, err := eval(env, expr)
	return v, env, err
}

func eval(env values.Env, e ast.Expr) (values.Value, error) {
	switch e := e.(type) {
	case *ast.Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, &UnknownNameError{Name: e.Name}
		}
		if v == nil {
			return nil, &UninitializedValueError{Name: e.Name}
		}
		return v, nil

	case *ast.App:
		f, err := eval(env, e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := eval(env, e.Arg)
		if err != nil {
			return nil, err
		}
		return apply(f, arg)

	case *ast.If:
		cond, err := eval(env, e.Cond)
		if err != nil {
			return nil, err
		}
		if b, _ := cond.(values.Bool); b {
			return eval(env, e.Then)
		}
		return eval(env, e.Else)

	case *ast.Lam:
		return &values.Closure{Env: env, Param: e.Param, Body: e.Body}, nil

	case *ast.Let:
		v, _, err := evalLet(env, e.Decls, e.Body)
		return v, err

	case *ast.LetRec:
		v, _, err := evalLetRec(env, e.Decls, e.Body)
		return v, err

	case *ast.Bool:
		return values.Bool(e.Value), nil

	case *ast.Int:
		return values.Int(e.Value), nil

	case *ast.String:
		return values.String(e.Value), nil

	case *ast.Unit:
		return values.Unit{}, nil

	case *ast.Tuple:
		elems := make(values.Tuple, len(e.Elems))
		for i, elem := range e.Elems {
			v, err := eval(env, elem)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return elems, nil

	case *ast.Op:
		left, err := eval(env, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := eval(env, e.Right)
		if err != nil {
			return nil, err
		}
		return binaryOp(e.Op, left, right)

	case *ast.Match:
		v, err := eval(env, e.Value)
		if err != nil {
			return nil, err
		}
		for _, c := range e.Cases {
			if caseEnv, ok := matchPattern(c.Pattern, v, env); ok {
				return eval(caseEnv, c.Body)
			}
		}
		return nil, &MatchFailureError{Value: v}
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return nil, errors.New("Unhandled expression " + exprName)
}

// Apply a function value to an argument.
func apply(f, arg values.Value) (values.Value, error) {
	switch f := f.(type) {
	case *values.Closure:
		return eval(f.Env.Extend(f.Param, arg), f.Body)
	case *values.Constructor:
		return f.Apply(arg), nil
	case *values.Builtin:
		return f.Apply(arg)
	}
	return nil, &NotAFunctionError{Value: f}
}

func binaryOp(op ast.Operator, left, right values.Value) (values.Value, error) {
	if op == ast.Equals {
		return values.Bool(values.Equal(left, right)), nil
	}
	a, _ := left.(values.Int)
	b, _ := right.(values.Int)
	switch op {
	case ast.Plus:
		return a + b, nil
	case ast.Minus:
		return a - b, nil
	case ast.Times:
		return a * b, nil
	case ast.Divide:
		if b == 0 {
			return nil, &DivisionByZeroError{}
		}
		return a / b, nil
	}
	return nil, errors.New("Unknown operator " + op.String())
}

// Declarations are evaluated in order; each declaration sees the values of earlier declarations.
func evalLet(env values.Env, decls []ast.Decl, body ast.Expr) (values.Value, values.Env, error) {
	groupEnv := env
	declValues := make(values.Tuple, len(decls))
	for i, d := range decls {
		v, err := eval(groupEnv, d.Value)
		if err != nil {
			return nil, env, err
		}
		groupEnv = groupEnv.Extend(d.Name, v)
		declValues[i] = v
	}
	if body == nil {
		return declValues, groupEnv, nil
	}
	v, err := eval(groupEnv, body)
	return v, env, err
}

// Every declaration is bound to a slot before any declaration is evaluated. Closures created within
// the group capture the slots, so forward references resolve once the whole group is bound.
func evalLetRec(env values.Env, decls []ast.Decl, body ast.Expr) (values.Value, values.Env, error) {
	groupEnv := env
	slots := make([]*values.Slot, len(decls))
	for i, d := range decls {
		groupEnv, slots[i] = groupEnv.Declare(d.Name)
	}
	declValues := make(values.Tuple, len(decls))
	for i, d := range decls {
		v, err := eval(groupEnv, d.Value)
		if err != nil {
			return nil, env, err
		}
		slots[i].Set(v)
		declValues[i] = v
	}
	if body == nil {
		return declValues, groupEnv, nil
	}
	v, err := eval(groupEnv, body)
	return v, env, err
}
