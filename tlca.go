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

// tlca provides a type checker and evaluator for a small functional language.
//
// Types are inferred with a constraint-based variant of Hindley-Milner: inference walks an expression
// recording equality constraints, which are solved by unification once per top-level statement (and
// once per declaration of a let-group, before the declaration is generalized).
//
// Programs are evaluated by walking the same abstract syntax against a persistent runtime environment.
//
//
// Supported Features:
//
//   * Let-polymorphism within grouped let bindings
//   * Mutually-recursive (generic) function expressions within recursive let bindings
//   * Mutually-recursive (generic) data types with curried constructors of any arity
//   * Tuples, and pattern matching over literals, tuples and constructors
//   * Persistent type and runtime environments, shared with closures
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Generalizing Hindley-Milner Type Inference Algorithms (Heeren, Hage, Swierstra, 2002): https://www.cs.uu.nl/research/techreps/repo/CS-2002/2002-031.pdf
package tlca
