// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gofluid/diag"
	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// PrmImperfect is the name of the parameter selecting the derivative fallback policy
//
//	allow_imperfect_jacobians = 1 => lenient; i.e. warn once and use zero derivatives
//	allow_imperfect_jacobians = 0 => strict (default)
const PrmImperfect = "allow_imperfect_jacobians"

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; only "fluid" for now
	Model string     `json:"model"` // name of model; e.g. "ideal-gas", "stiffened-gas", "linear", "poly"
	Extra string     `json:"extra"` // extra flags (in keycode format). ex: "!strict" or "!lenient"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Strict bool         // derivative fallback policy
	Fluid  *fluid.Fluid // pointer to actual fluid
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Fluids map[string]*Material // subset with materials/models: fluids
}

// yaml mirrors of the input data
type yamlPrm struct {
	N string  `yaml:"n"`
	V float64 `yaml:"v"`
}

type yamlMat struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Model string    `yaml:"model"`
	Extra string    `yaml:"extra"`
	Prms  []yamlPrm `yaml:"prms"`
}

type yamlFunc struct {
	Name string    `yaml:"name"`
	Type string    `yaml:"type"`
	Prms []yamlPrm `yaml:"prms"`
}

type yamlDb struct {
	Functions []yamlFunc `yaml:"functions"`
	Materials []yamlMat  `yaml:"materials"`
}

// ReadMat reads all materials data from a .mat JSON file or a .yaml (.yml) file
//
//	sink -- receives the warnings of lenient fluids; nil => diag.Printer
func ReadMat(dir, fn string, sink diag.Sink) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		mdb, err = decodeYaml(b)
	default:
		mdb = new(MatDb)
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, chk.Err("cannot decode materials file %q:\n%v", fn, err)
	}
	err = mdb.Init(sink)
	return
}

// Init allocates and initialises all materials
func (o *MatDb) Init(sink diag.Sink) (err error) {

	// subsets
	o.Fluids = make(map[string]*Material)
	for _, m := range o.Materials {
		if m.Name == "" {
			return chk.Err("all materials must have a name")
		}
		switch m.Type {
		case "fluid":
			if _, ok := o.Fluids[m.Name]; ok {
				return chk.Err("material named %q is duplicated", m.Name)
			}
			o.Fluids[m.Name] = m
		default:
			return chk.Err("material type %q is incorrect; options are \"fluid\"", m.Type)
		}
	}

	// alloc/init: fluids
	for _, m := range o.Fluids {
		var prms dbf.Params
		prms, m.Strict, err = policy(m)
		if err != nil {
			return
		}
		m.Fluid, err = fluid.Alloc(m.Name, m.Model, prms, fluid.Options{Strict: m.Strict, Sink: sink})
		if err != nil {
			return chk.Err("cannot allocate fluid %q:\n%v", m.Name, err)
		}
	}
	return
}

// policy extracts the derivative fallback policy from the material data and
// returns the remaining model parameters
func policy(m *Material) (prms dbf.Params, strict bool, err error) {
	strict = true
	for _, p := range m.Prms {
		if p.N == PrmImperfect {
			strict = p.V == 0
			continue
		}
		prms = append(prms, p)
	}
	for _, key := range strings.Fields(m.Extra) {
		switch key {
		case "!strict":
			strict = true
		case "!lenient":
			strict = false
		default:
			err = chk.Err("material %q: extra flag %q is incorrect; options are \"!strict\" and \"!lenient\"", m.Name, key)
			return
		}
	}
	return
}

// decodeYaml decodes the yaml version of the materials file
func decodeYaml(b []byte) (mdb *MatDb, err error) {
	var raw yamlDb
	err = yaml.Unmarshal(b, &raw)
	if err != nil {
		return
	}
	mdb = new(MatDb)
	for _, f := range raw.Functions {
		mdb.Functions = append(mdb.Functions, &FuncData{Name: f.Name, Type: f.Type, Prms: toParams(f.Prms)})
	}
	for _, m := range raw.Materials {
		mdb.Materials = append(mdb.Materials, &Material{
			Name:  m.Name,
			Type:  m.Type,
			Model: m.Model,
			Extra: m.Extra,
			Prms:  toParams(m.Prms),
		})
	}
	return
}

// toParams converts yaml parameters
func toParams(raw []yamlPrm) (prms dbf.Params) {
	for _, p := range raw {
		prms = append(prms, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetFluid returns a fluid
func (o MatDb) GetFluid(name string) (*fluid.Fluid, error) {
	m, ok := o.Fluids[name]
	if !ok {
		return nil, chk.Err("cannot find fluid named %q. available: %v", name, o.FluidNames())
	}
	return m.Fluid, nil
}

// FluidNames returns the (sorted) names of all fluids
func (o MatDb) FluidNames() (names []string) {
	for name := range o.Fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%s\n      ]\n    }",
		o.Name, o.Type, o.Model, o.Extra, prmsString(o.Prms, "        "))
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Functions, o.Materials)
}

// prmsString prints parameters in JSON format
func prmsString(prms dbf.Params, indent string) string {
	l := ""
	for i, p := range prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%s{\"n\":%q, \"v\":%v}", indent, p.N, p.V)
	}
	return l
}
