// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

import "github.com/cpmech/gosl/utl"

// sensitivity.go holds the output of the whole adjoint process: the
// derivative of the objective functional with respect to each node's
// coordinate in each direction. Values are meaningful once the BGS loop of
// the final time level has converged; reading earlier yields a stale (not
// invalid) value, since convergence is the orchestrator's determination.

// SetSensitivity sets d(objective)/d(coordinate idim) @ node, overwriting
// any previous value
func (o *State) SetSensitivity(node, idim int, val float64) error {
	return o.Sens.SetValue(node, idim, val)
}

// GetSensitivity returns d(objective)/d(coordinate idim) @ node
func (o *State) GetSensitivity(node, idim int) (float64, error) {
	return o.Sens.Value(node, idim)
}

// SensitivityMatrix returns all sensitivities as a [nnod][ndim] matrix;
// convenience for optimizers and reporting
func (o *State) SensitivityMatrix() (S [][]float64) {
	S = utl.Alloc(o.nnod, o.ndim)
	for n := 0; n < o.nnod; n++ {
		for d := 0; d < o.ndim; d++ {
			S[n][d], _ = o.Sens.Value(n, d)
		}
	}
	return
}
