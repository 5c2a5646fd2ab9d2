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
	"github.com/wdamron/tlca/internal/typeutil"
	"github.com/wdamron/tlca/types"
)

// InferenceContext is a reusable context for type inference.
//
// Fresh type-variables are drawn from a tracker owned by the context, so variables remain distinct
// across every inference performed with the same context until Reset is called.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	vars        typeutil.VarTracker
	constraints *typeutil.Constraints

	err     error
	invalid ast.Expr
}

// Create a new type-inference context.
func NewContext() *InferenceContext {
	return &InferenceContext{constraints: typeutil.NewConstraints()}
}

// Reset the fresh-variable tracker of the context. Variables issued after a reset may repeat names
// issued before it.
func (ti *InferenceContext) Reset() {
	ti.vars.Reset()
	ti.err, ti.invalid = nil, nil
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the solved type of expr within env.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	t, _, err := ti.inferRoot(expr, env)
	return t, err
}

// Infer the solved type of a top-level expression within env.
//
// A let-group without a body declares its bindings at the top level: the returned type-environment
// extends env with the generalized type of each declaration, and the returned type is the tuple of
// declaration types. For any other expression, env is returned unchanged.
func (ti *InferenceContext) InferTopLevel(expr ast.Expr, env *TypeEnv) (types.Type, *TypeEnv, error) {
	return ti.inferRoot(expr, env)
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv) (types.Type, *TypeEnv, error) {
	if root == nil {
		return nil, env, errors.New("Empty expression")
	}
	ti.constraints, ti.err, ti.invalid = typeutil.NewConstraints(), nil, nil

	var (
		t      types.Type
		newEnv = env
		err    error
	)
	switch e := root.(type) {
	case *ast.Let:
		t, newEnv, err = ti.inferLet(env, e, e.Decls, e.Body)
	case *ast.LetRec:
		t, newEnv, err = ti.inferLetRec(env, e, e.Decls, e.Body)
	default:
		t, err = ti.infer(env, root)
	}
	if err != nil {
		return nil, env, err
	}
	s, err := ti.constraints.Solve()
	if err != nil {
		ti.invalid, ti.err = root, err
		return nil, env, err
	}
	return s.Apply(t), newEnv, nil
}

// Record the cause of a failure.
func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	ti.invalid, ti.err = e, err
	return err
}
