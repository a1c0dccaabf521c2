// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

import (
	"github.com/cpmech/goadj/inp"
	"github.com/cpmech/gosl/chk"
)

// NewStates allocates one State per zone of the given definition. In
// multi-zone coupling each zone (or partition) owns its state exclusively;
// inter-zone consistency is the orchestrator's business
func NewStates(def *inp.Definition) (states []*State, err error) {
	states = make([]*State, len(def.Zones))
	for i, z := range def.Zones {
		states[i], err = NewState(z.Nnod, z.Ndim, z.Nvar, z.IniAdj)
		if err != nil {
			return nil, chk.Err("cannot allocate state for zone %d (%q):\n%v", i, z.Desc, err)
		}
	}
	return
}

// InitSolutions applies the zones' function-based initial adjoint values
// (inifun), if any. The orchestrator calls it after storing the direct
// geometry, because the functions are evaluated at each node's primal
// coordinates; nodes without stored geometry are evaluated at the origin.
// t is the time of the level being initialised
func InitSolutions(def *inp.Definition, states []*State, t float64) (err error) {
	if len(states) != len(def.Zones) {
		return chk.Err("definition has %d zones but %d states were given", len(def.Zones), len(states))
	}
	for i, z := range def.Zones {
		if z.IniFun == "" {
			continue
		}
		fcn, err := def.Functions.Get(z.IniFun)
		if err != nil {
			return chk.Err("zone %d (%q):\n%v", i, z.Desc, err)
		}
		if err := states[i].SetSolutionFromFunction(fcn, t); err != nil {
			return err
		}
	}
	return nil
}
