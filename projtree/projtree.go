/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package projtree

// Kind is the discriminator tag carried by every component. Queries filter on
// it, so singleton discovery and registry views never need dynamic type tests.
type Kind string

// Component is a node in a project's tree. Implementations are attached to
// exactly one Project for their whole lifetime and are never reparented.
type Component interface {
	// Kind returns the component's discriminator tag.
	Kind() Kind
}

// File is a rendered artifact destined for a path relative to the project
// root. Paths use forward slashes.
type File struct {
	Path    string
	Content []byte
}

// FileProducer is implemented by components that materialize files. Renderers
// traverse a project's components and collect the output of every producer;
// components that produce nothing return an empty slice.
type FileProducer interface {
	Files() ([]File, error)
}

// Project owns an ordered, insertion-order collection of components. The tree
// enforces no uniqueness: attaching the same component twice records it twice.
// All mutation happens in a single synchronous construction pass, so Project
// carries no locking.
type Project struct {
	name       string
	components []Component
}

// NewProject creates an empty project tree.
func NewProject(name string) *Project {
	return &Project{name: name}
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// Attach appends a component to the project's collection. The call site owns
// the registration edge; constructors never attach themselves.
func (p *Project) Attach(c Component) {
	p.components = append(p.components, c)
}

// Components returns a copy of the component collection in insertion order.
func (p *Project) Components() []Component {
	out := make([]Component, len(p.components))
	copy(out, p.components)
	return out
}

// ByKind returns the components carrying the given kind tag, in insertion
// order.
func (p *Project) ByKind(k Kind) []Component {
	var out []Component
	for _, c := range p.components {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}
