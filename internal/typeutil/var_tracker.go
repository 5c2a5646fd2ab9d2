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
	"strconv"

	"github.com/wdamron/tlca/types"
)

// VarTracker allocates type-variables with unique names: `V1`, `V2`, ...
//
// A tracker must be shared by every inference step which should observe distinct variables.
type VarTracker struct {
	NextId int
}

var _ types.VarSource = (*VarTracker)(nil)

// Create an unbound type-variable with a unique name.
func (vt *VarTracker) New() *types.Var {
	vt.NextId++
	return types.NewVar("V" + strconv.Itoa(vt.NextId))
}

// Create count unbound type-variables with unique names.
func (vt *VarTracker) NewList(count int) []types.Type {
	vars := make([]types.Type, count)
	for i := range vars {
		vars[i] = vt.New()
	}
	return vars
}

// Count returns the number of variables allocated so far.
func (vt *VarTracker) Count() int { return vt.NextId }

func (vt *VarTracker) Reset() { vt.NextId = 0 }
