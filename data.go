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
	"github.com/wdamron/tlca/ast"
	"github.com/wdamron/tlca/types"
	"github.com/wdamron/tlca/values"
)

// DeclareData declares a group of mutually-recursive data types within env, without an arity ceiling
// for constructors. See Executor.DeclareData.
func DeclareData(env Environment, decls []ast.DataDeclaration) ([]*types.ADT, Environment, error) {
	return declareData(env, decls, 0)
}

// Declarations are registered in two passes: every data type of the group is registered (without
// constructors) before any constructor argument is translated, so declarations may reference
// themselves and each other.
func declareData(env Environment, decls []ast.DataDeclaration, maxArity int) ([]*types.ADT, Environment, error) {
	typeEnv, runtime := env.Types, env.Runtime

	for _, d := range decls {
		if _, exists := typeEnv.Data(d.Name); exists {
			return nil, env, &DuplicateDataDeclarationError{Name: d.Name}
		}
		typeEnv = typeEnv.AddData(&types.ADT{Name: d.Name, Params: d.Params})
	}

	adts := make([]*types.ADT, 0, len(decls))
	for _, d := range decls {
		adt := &types.ADT{Name: d.Name, Params: d.Params, Constructors: make([]types.Constructor, len(d.Constructors))}
		for i, c := range d.Constructors {
			if maxArity > 0 && len(c.Args) > maxArity {
				return nil, env, &TooManyConstructorArgumentsError{Name: c.Name, Arity: len(c.Args)}
			}
			args := make([]types.Type, len(c.Args))
			for j, arg := range c.Args {
				t, err := translateType(typeEnv, arg)
				if err != nil {
					return nil, env, err
				}
				args[j] = t
			}
			adt.Constructors[i] = types.Constructor{Name: c.Name, Args: args}
		}
		typeEnv = typeEnv.AddData(adt)
		for _, c := range adt.Constructors {
			typeEnv = typeEnv.Extend(c.Name, adt.ConstructorScheme(c))
			runtime = runtime.Extend(c.Name, values.NewConstructor(c.Name, len(c.Args)))
		}
		adts = append(adts, adt)
	}

	return adts, Environment{Runtime: runtime, Types: typeEnv}, nil
}

// Translate surface type syntax into a type, resolving data type references within env.
func translateType(env *TypeEnv, t ast.TypeExpr) (types.Type, error) {
	switch t := t.(type) {
	case *ast.TypeConstructor:
		adt, ok := env.Data(t.Name)
		if !ok {
			return nil, &UnknownDataError{Name: t.Name}
		}
		if len(t.Args) != len(adt.Params) {
			return nil, &IncorrectTypeArgumentsError{Name: t.Name, Expected: len(adt.Params), Actual: len(t.Args)}
		}
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			at, err := translateType(env, arg)
			if err != nil {
				return nil, err
			}
			args[i] = at
		}
		return types.NewCon(adt.Name, args...), nil

	case *ast.TypeVariable:
		return types.NewVar(t.Name), nil

	case *ast.TypeFunction:
		left, err := translateType(env, t.Left)
		if err != nil {
			return nil, err
		}
		right, err := translateType(env, t.Right)
		if err != nil {
			return nil, err
		}
		return types.NewArrow(left, right), nil

	case *ast.TypeTuple:
		elems := make([]types.Type, len(t.Elems))
		for i, elem := range t.Elems {
			et, err := translateType(env, elem)
			if err != nil {
				return nil, err
			}
			elems[i] = et
		}
		return types.NewTuple(elems...), nil

	case *ast.TypeUnit:
		return types.Unit, nil
	}

	var name string
	if t != nil {
		name = t.TypeExprName()
	}
	return nil, &UnknownDataError{Name: name}
}
