// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nod implements node-indexed storage for per-node solver quantities
package nod

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Field holds one per-node quantity with a fixed number of components;
// e.g. a solution vector (ncmp = number of unknowns) or a coordinate
// vector (ncmp = space dimension). Values are kept in a single contiguous
// buffer with row-major (node, component) addressing so that node-parallel
// sweeps stay cache friendly.
//
// Operations on disjoint node indices are independent; callers must
// serialise writes to the same (node, component) slot. Field itself
// performs no locking.
type Field struct {
	name string    // field name; used in error messages
	nnod int       // number of nodes
	ncmp int       // number of components per node
	vals []float64 // [nnod*ncmp] values; vals[n*ncmp+c] = component c @ node n
}

// NewField allocates a field with nnod nodes and ncmp components per node,
// all values initialised to zero
func NewField(name string, nnod, ncmp int) *Field {
	return &Field{name, nnod, ncmp, make([]float64, nnod*ncmp)}
}

// Nnod returns the number of nodes
func (o *Field) Nnod() int { return o.nnod }

// Ncmp returns the number of components per node
func (o *Field) Ncmp() int { return o.ncmp }

// Value returns component cmp @ node
func (o *Field) Value(node, cmp int) (val float64, err error) {
	if err = o.check(node, cmp); err != nil {
		return
	}
	return o.vals[node*o.ncmp+cmp], nil
}

// SetValue sets component cmp @ node
func (o *Field) SetValue(node, cmp int, val float64) (err error) {
	if err = o.check(node, cmp); err != nil {
		return
	}
	o.vals[node*o.ncmp+cmp] = val
	return
}

// Node returns a copy of all components @ node
func (o *Field) Node(node int) (vals []float64, err error) {
	if err = o.check(node, 0); err != nil {
		return
	}
	vals = make([]float64, o.ncmp)
	copy(vals, o.vals[node*o.ncmp:(node+1)*o.ncmp])
	return
}

// SetNode sets all components @ node. len(vals) must equal Ncmp
func (o *Field) SetNode(node int, vals []float64) (err error) {
	if err = o.check(node, 0); err != nil {
		return
	}
	if len(vals) != o.ncmp {
		return chk.Err("%s: node %d needs %d components, got %d", o.name, node, o.ncmp, len(vals))
	}
	copy(o.vals[node*o.ncmp:(node+1)*o.ncmp], vals)
	return
}

// CopyNode copies all components @ node from src into this field.
// Both fields must have the same shape
func (o *Field) CopyNode(node int, src *Field) (err error) {
	if src.nnod != o.nnod || src.ncmp != o.ncmp {
		return chk.Err("%s: cannot copy node from %s: shape (%d,%d) != (%d,%d)",
			o.name, src.name, src.nnod, src.ncmp, o.nnod, o.ncmp)
	}
	if err = o.check(node, 0); err != nil {
		return
	}
	copy(o.vals[node*o.ncmp:(node+1)*o.ncmp], src.vals[node*o.ncmp:(node+1)*o.ncmp])
	return
}

// Fill sets all values of all nodes to val
func (o *Field) Fill(val float64) {
	la.Vector(o.vals).Fill(val)
}

// check returns an error if (node, cmp) is outside [0,nnod)×[0,ncmp)
func (o *Field) check(node, cmp int) error {
	if node < 0 || node >= o.nnod {
		return chk.Err("%s: node index %d out of range [0,%d)", o.name, node, o.nnod)
	}
	if cmp < 0 || cmp >= o.ncmp {
		return chk.Err("%s: component index %d out of range [0,%d)", o.name, cmp, o.ncmp)
	}
	return nil
}
