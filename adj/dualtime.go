// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

// dualtime.go holds the adjoint analog of the backward-difference time
// derivative at two time levels (current + previous). Two levels suffice
// for a second-order-accurate scheme; supporting higher order would need
// a ring buffer of more levels.

// SetDualTimeDer sets the current-level dual-time derivative of variable ivar @ node
func (o *State) SetDualTimeDer(node, ivar int, der float64) error {
	return o.DualTime.Cur.SetValue(node, ivar, der)
}

// GetDualTimeDer returns the current-level dual-time derivative of variable ivar @ node
func (o *State) GetDualTimeDer(node, ivar int) (float64, error) {
	return o.DualTime.Cur.Value(node, ivar)
}

// SetDualTimeDerN sets the previous-level dual-time derivative of variable ivar @ node
func (o *State) SetDualTimeDerN(node, ivar int, der float64) error {
	return o.DualTime.Old.SetValue(node, ivar, der)
}

// GetDualTimeDerN returns the previous-level dual-time derivative of variable ivar @ node
func (o *State) GetDualTimeDerN(node, ivar int) (float64, error) {
	return o.DualTime.Old.Value(node, ivar)
}

// AdvanceDualTime finalises a time level @ node: the previous-level term
// takes the current value. Must be called explicitly by the orchestrator
// before moving to the next physical time step; it never happens implicitly
func (o *State) AdvanceDualTime(node int) error {
	return o.DualTime.Snapshot(node)
}

// AdvanceDualTimeAll finalises a time level for all nodes
func (o *State) AdvanceDualTimeAll() {
	o.DualTime.SnapshotAll()
}
