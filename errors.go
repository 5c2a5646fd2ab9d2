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
	"strconv"

	"github.com/wdamron/tlca/types"
	"github.com/wdamron/tlca/values"
)

// UnificationError reports an unsolvable type constraint, including occurs-check failures.
type UnificationError = types.UnificationError

// UnknownNameError reports a variable which is not bound in the type-environment.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string { return "Variable " + e.Name + " not found" }

// UnknownDataError reports type syntax which references an undeclared data type.
type UnknownDataError struct {
	Name string
}

func (e *UnknownDataError) Error() string { return "Data type " + e.Name + " is not declared" }

// IncorrectTypeArgumentsError reports a data type applied to the wrong number of type arguments.
type IncorrectTypeArgumentsError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *IncorrectTypeArgumentsError) Error() string {
	return "Data type " + e.Name + " expects " + strconv.Itoa(e.Expected) + " type arguments, found " + strconv.Itoa(e.Actual)
}

// DuplicateDataDeclarationError reports a data type whose name is already declared.
type DuplicateDataDeclarationError struct {
	Name string
}

func (e *DuplicateDataDeclarationError) Error() string {
	return "Data type " + e.Name + " is already declared"
}

// TooManyConstructorArgumentsError reports a constructor exceeding the configured arity ceiling.
type TooManyConstructorArgumentsError struct {
	Name  string
	Arity int
}

func (e *TooManyConstructorArgumentsError) Error() string {
	return "Constructor " + e.Name + " has too many arguments (" + strconv.Itoa(e.Arity) + ")"
}

// UnknownConstructorError reports a constructor pattern naming no declared constructor.
type UnknownConstructorError struct {
	Name string
}

func (e *UnknownConstructorError) Error() string { return "Constructor " + e.Name + " not found" }

// IncorrectPatternArgumentsError reports a constructor pattern with the wrong number of argument patterns.
type IncorrectPatternArgumentsError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *IncorrectPatternArgumentsError) Error() string {
	return "Constructor " + e.Name + " expects " + strconv.Itoa(e.Expected) + " arguments in pattern, found " + strconv.Itoa(e.Actual)
}

// MatchFailureError reports a match expression where no case matched the value.
type MatchFailureError struct {
	Value values.Value
}

func (e *MatchFailureError) Error() string {
	return "No case matched value " + values.ValueString(e.Value, nil)
}

// NotAFunctionError reports an application of a value which is not a function.
type NotAFunctionError struct {
	Value values.Value
}

func (e *NotAFunctionError) Error() string {
	return "Unable to apply non-function value " + values.ValueString(e.Value, nil)
}

// DivisionByZeroError reports an integer division by zero.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "Division by zero" }

// UninitializedValueError reports a read of a recursive declaration before its value was bound.
type UninitializedValueError struct {
	Name string
}

func (e *UninitializedValueError) Error() string {
	return "Value of " + e.Name + " is used before its declaration was evaluated"
}
