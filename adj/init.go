// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

import (
	"github.com/cpmech/goadj/inp"
)

// SetSolutionFromFunction initialises the adjoint solution from a time-space
// function: f is evaluated at each node's direct (primal) coordinates and the
// scalar is broadcast to all nvar components of that node. Nodes whose direct
// geometry has not been stored are evaluated at the origin, since coordinates
// default to zero
func (o *State) SetSolutionFromFunction(f inp.TimeSpaceFn, t float64) (err error) {
	for n := 0; n < o.nnod; n++ {
		x, err := o.GeoDirect.Node(n)
		if err != nil {
			return err
		}
		val := f(t, x)
		for i := 0; i < o.nvar; i++ {
			if err = o.Sol.Cur.SetValue(n, i, val); err != nil {
				return err
			}
		}
	}
	return
}
