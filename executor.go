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
	"log"

	"github.com/wdamron/tlca/ast"
	"github.com/wdamron/tlca/types"
	"github.com/wdamron/tlca/values"
)

// Environment pairs a runtime environment with the type-environment describing it. Both environments
// are persistent and advance together after every top-level statement.
type Environment struct {
	Runtime values.Env
	Types   *TypeEnv
}

// Create an environment without bindings or data types.
func EmptyEnvironment() Environment {
	return Environment{Runtime: values.NewEnv(), Types: NewTypeEnv()}
}

// Binding is a declaration of a top-level let-group.
type Binding struct {
	Name  string
	Value values.Value
	Type  types.Type
}

// Result is the outcome of a top-level statement.
//
// For a data statement, Data holds the declared data types. For an expression, Value and Type hold the
// value and solved type of the expression; a let-group without a body additionally lists its
// declarations in Bindings, in declaration order.
type Result struct {
	Value    values.Value
	Type     types.Type
	Bindings []Binding
	Data     []*types.ADT
}

// Option configures an Executor.
type Option func(*Executor)

// Limit the number of arguments a data constructor may declare. A limit of 0 (the default) allows any
// number of arguments.
func WithMaxConstructorArity(n int) Option {
	return func(x *Executor) { x.maxArity = n }
}

// Trace each executed statement to logger. A nil logger disables tracing.
func WithLogger(logger *log.Logger) Option {
	return func(x *Executor) { x.logger = logger }
}

// Executor type-checks and evaluates programs.
//
// An executor holds only configuration and may be shared across goroutines.
type Executor struct {
	maxArity int
	logger   *log.Logger
}

// Create an executor with the given options.
func NewExecutor(opts ...Option) *Executor {
	x := &Executor{}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Execute a program within env using a default executor. See Executor.Execute.
func Execute(program ast.Program, env Environment) ([]Result, Environment, error) {
	return NewExecutor().Execute(program, env)
}

// Execute each statement of program in order, threading both environments forward.
//
// Each expression is type-checked and solved before it is evaluated, so a statement which fails
// inference has no runtime effect. Fresh type-variables are shared by every statement of the program.
//
// Execution stops at the first failing statement. The results of the statements which completed, and
// the environment as it stood after the last of them, are returned along with the error.
func (x *Executor) Execute(program ast.Program, env Environment) ([]Result, Environment, error) {
	ti := NewContext()
	results := make([]Result, 0, len(program))
	for _, stmt := range program {
		var (
			r   Result
			err error
		)
		switch s := stmt.(type) {
		case *ast.ExprStmt:
			r, env, err = x.executeExpr(ti, s.Expr, env)
		case *ast.DataStmt:
			r.Data, env, err = x.DeclareData(env, s.Decls)
			if err == nil {
				x.logf("data %d declared", len(r.Data))
			}
		default:
			err = errors.New("Unhandled statement")
		}
		if err != nil {
			x.logf("error: %v", err)
			return results, env, err
		}
		results = append(results, r)
	}
	return results, env, nil
}

// Declare a group of mutually-recursive data types within env, registering each data type, the scheme
// of each constructor, and a runtime constructor function for each constructor.
//
// Data types of the group may reference themselves and each other. Declaring a data type whose name is
// already registered fails with DuplicateDataDeclarationError; references to undeclared data types fail
// with UnknownDataError; references with the wrong number of type arguments fail with
// IncorrectTypeArgumentsError. If the executor limits constructor arity, constructors with too many
// arguments fail with TooManyConstructorArgumentsError.
func (x *Executor) DeclareData(env Environment, decls []ast.DataDeclaration) ([]*types.ADT, Environment, error) {
	return declareData(env, decls, x.maxArity)
}

func (x *Executor) executeExpr(ti *InferenceContext, expr ast.Expr, env Environment) (Result, Environment, error) {
	t, typeEnv, err := ti.InferTopLevel(expr, env.Types)
	if err != nil {
		return Result{}, env, err
	}
	x.logf("infer %s : %s", ast.ExprString(expr), types.TypeString(t))

	v, runtime, err := EvaluateTopLevel(expr, env.Runtime)
	if err != nil {
		return Result{}, env, err
	}
	x.logf("eval %s", values.ValueString(v, t))

	r := Result{Value: v, Type: t, Bindings: bindings(expr, v, t)}
	return r, Environment{Runtime: runtime, Types: typeEnv}, nil
}

// List the declarations of a top-level let-group without a body.
func bindings(expr ast.Expr, v values.Value, t types.Type) []Binding {
	var decls []ast.Decl
	switch e := expr.(type) {
	case *ast.Let:
		if e.Body != nil {
			return nil
		}
		decls = e.Decls
	case *ast.LetRec:
		if e.Body != nil {
			return nil
		}
		decls = e.Decls
	default:
		return nil
	}
	vs, _ := v.(values.Tuple)
	tt, _ := t.(*types.Tuple)
	bs := make([]Binding, len(decls))
	for i, d := range decls {
		bs[i].Name = d.Name
		if i < len(vs) {
			bs[i].Value = vs[i]
		}
		if tt != nil && i < len(tt.Elems) {
			bs[i].Type = tt.Elems[i]
		}
	}
	return bs
}

func (x *Executor) logf(format string, args ...interface{}) {
	if x.logger != nil {
		x.logger.Printf(format, args...)
	}
}
