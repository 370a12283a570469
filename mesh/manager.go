// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"
)

// Manager is the registry owning all meshes, keyed by integer id.
// Registering an id twice replaces the previous view; hosts re-register
// every time the underlying arrays are reallocated.
type Manager struct {
	meshes map[int]*Mesh
}

// NewManager returns an empty registry
func NewManager() *Manager {
	return &Manager{meshes: make(map[int]*Mesh)}
}

// Register stores m under m.Id, replacing any previous mesh with that id
func (o *Manager) Register(m *Mesh) {
	o.meshes[m.Id] = m
}

// Find returns the mesh with the given id, or nil when absent
func (o *Manager) Find(id int) *Mesh {
	return o.meshes[id]
}

// At returns the mesh with the given id, erroring when absent
func (o *Manager) At(id int) (m *Mesh, err error) {
	m = o.meshes[id]
	if m == nil {
		err = chk.Err("mesh %d is not registered", id)
	}
	return
}

// Remove deletes the mesh with the given id; unknown ids are ignored
func (o *Manager) Remove(id int) {
	delete(o.meshes, id)
}

// Size returns the number of registered meshes
func (o *Manager) Size() int {
	return len(o.meshes)
}
