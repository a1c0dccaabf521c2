// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.adj) JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ZoneData holds the construction parameters of one zone's adjoint state
type ZoneData struct {
	Desc   string    `json:"desc"`   // description of zone; e.g. "flow", "structure"
	Nnod   int       `json:"nnod"`   // number of nodes in zone
	Ndim   int       `json:"ndim"`   // space dimension
	Nvar   int       `json:"nvar"`   // number of solver variables
	IniAdj []float64 `json:"iniadj"` // initial adjoint value broadcast to all nodes (len=nvar); empty means zero
	IniFun string    `json:"inifun"` // [optional] name of function for spatially varying initial adjoint
}

// Definition holds the adjoint-run definition: one entry per zone plus a
// database of named functions
type Definition struct {
	Desc      string      `json:"desc"`      // description of run
	Zones     []*ZoneData `json:"zones"`     // zones; one state is allocated per zone
	Functions FuncsData   `json:"functions"` // time-space functions referenced by inifun
}

// ReadDef reads an adjoint-run definition from a JSON file
func ReadDef(fn string) (def *Definition, err error) {
	if _, serr := os.Stat(fn); serr != nil {
		return nil, chk.Err("cannot read definition file %q:\n%v", fn, serr)
	}
	b := io.ReadFile(fn)
	def = new(Definition)
	if err = json.Unmarshal(b, def); err != nil {
		return nil, chk.Err("cannot unmarshal definition file %q:\n%v", fn, err)
	}
	if err = def.Validate(); err != nil {
		return nil, chk.Err("definition file %q is invalid:\n%v", fn, err)
	}
	return
}

// Validate checks zone shapes and initial values
func (o *Definition) Validate() error {
	if len(o.Zones) < 1 {
		return chk.Err("definition needs at least one zone")
	}
	for i, z := range o.Zones {
		if z.Nnod < 1 || z.Ndim < 1 || z.Nvar < 1 {
			return chk.Err("zone %d (%q) must have positive shape: nnod=%d ndim=%d nvar=%d",
				i, z.Desc, z.Nnod, z.Ndim, z.Nvar)
		}
		if len(z.IniAdj) > 0 && len(z.IniAdj) != z.Nvar {
			return chk.Err("zone %d (%q): iniadj needs %d components, got %d",
				i, z.Desc, z.Nvar, len(z.IniAdj))
		}
		if z.IniFun != "" {
			if _, err := o.Functions.Get(z.IniFun); err != nil {
				return chk.Err("zone %d (%q): %v", i, z.Desc, err)
			}
		}
	}
	return nil
}
