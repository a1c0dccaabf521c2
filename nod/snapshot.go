// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nod

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Pair couples a field with a named point-in-time snapshot of itself;
// e.g. {solution, solution @ previous outer iteration} or
// {unsteady term, unsteady term @ previous time level}. The snapshot
// is only ever written by Snapshot/SnapshotAll, never by solver kernels.
type Pair struct {
	Cur *Field // current value
	Old *Field // snapshot; meaning ("previous BGS", "previous time level", ...) is the owner's
}

// NewPair allocates the current field and its snapshot, both zeroed.
// The snapshot field is named name+suffix
func NewPair(name, suffix string, nnod, ncmp int) Pair {
	return Pair{NewField(name, nnod, ncmp), NewField(name+suffix, nnod, ncmp)}
}

// Snapshot copies all components @ node from Cur into Old.
// Calling it twice with no intervening change to Cur is a no-op in effect
func (o Pair) Snapshot(node int) error {
	return o.Old.CopyNode(node, o.Cur)
}

// SnapshotAll copies all nodes from Cur into Old
func (o Pair) SnapshotAll() {
	for n := 0; n < o.Cur.nnod; n++ {
		o.Old.CopyNode(n, o.Cur) // cannot fail: shapes match by construction
	}
}

// Delta fills res with (Cur - Old) @ node, reading the buffers in place.
// len(res) must equal Ncmp
func (o Pair) Delta(node int, res []float64) (err error) {
	if err = o.Cur.check(node, 0); err != nil {
		return
	}
	if len(res) != o.Cur.ncmp {
		return chk.Err("%s: delta @ node %d needs %d components, got %d",
			o.Cur.name, node, o.Cur.ncmp, len(res))
	}
	a := o.Cur.vals[node*o.Cur.ncmp:]
	b := o.Old.vals[node*o.Cur.ncmp:]
	for i := 0; i < o.Cur.ncmp; i++ {
		res[i] = a[i] - b[i]
	}
	return
}

// DeltaNorm returns the Euclidean norm of (Cur - Old) over all nodes.
// No intermediate copies are made
func (o Pair) DeltaNorm() float64 {
	sum := 0.0
	for i, v := range o.Cur.vals {
		d := v - o.Old.vals[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
