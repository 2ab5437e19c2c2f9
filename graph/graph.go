/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package graph implements an immutable, duplicate-free in-memory RDF
// graph: a set of (subject, predicate, object) triples, with filtered
// accessors and cyclicity/connectivity queries backed by
// gonum.org/v1/gonum/graph. Connectivity uses topo.ConnectedComponents,
// which walks the graph with an explicit stack; cycle detection uses
// topo.TarjanSCC, whose depth-first search is recursive, so its stack depth
// grows with the longest path it explores.
package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/jplu/nexus-rdf/node"
)

// Triple is a single RDF statement. Subject is restricted to IriOrBNode
// per the RDF data model; Object may additionally be a Literal.
type Triple struct {
	Subject   node.IriOrBNode
	Predicate node.IriNode
	Object    node.Node
}

// Graph is an immutable, duplicate-free set of triples. Every mutating
// operation (Add, Remove, Union, Difference) returns a new Graph, leaving
// the receiver unchanged.
type Graph struct {
	triples map[Triple]struct{}
}

// New returns an empty Graph.
func New() Graph {
	return Graph{triples: map[Triple]struct{}{}}
}

func (g Graph) clone() Graph {
	out := New()
	for t := range g.triples {
		out.triples[t] = struct{}{}
	}
	return out
}

// Add returns a new Graph containing g's triples plus t.
func (g Graph) Add(t Triple) Graph {
	out := g.clone()
	out.triples[t] = struct{}{}
	return out
}

// Remove returns a new Graph containing g's triples minus t.
func (g Graph) Remove(t Triple) Graph {
	out := g.clone()
	delete(out.triples, t)
	return out
}

// Union returns a new Graph containing every triple in g or other.
func (g Graph) Union(other Graph) Graph {
	out := g.clone()
	for t := range other.triples {
		out.triples[t] = struct{}{}
	}
	return out
}

// Difference returns a new Graph containing g's triples that are not in
// other.
func (g Graph) Difference(other Graph) Graph {
	out := g.clone()
	for t := range other.triples {
		delete(out.triples, t)
	}
	return out
}

// Len returns the number of triples in g.
func (g Graph) Len() int { return len(g.triples) }

// Has reports whether t is a member of g.
func (g Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Triples returns every triple in g, in no particular order.
func (g Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	return out
}

// Subjects returns the distinct subjects appearing in g.
func (g Graph) Subjects() []node.IriOrBNode {
	return g.SubjectsBy(func(Triple) bool { return true })
}

// Predicates returns the distinct predicates appearing in g.
func (g Graph) Predicates() []node.IriNode {
	return g.PredicatesBy(func(Triple) bool { return true })
}

// Objects returns the distinct objects appearing in g.
func (g Graph) Objects() []node.Node {
	return g.ObjectsBy(func(Triple) bool { return true })
}

// SubjectsOf returns the distinct subjects of triples matching predicate p
// and object o.
func (g Graph) SubjectsOf(p node.IriNode, o node.Node) []node.IriOrBNode {
	return g.SubjectsBy(func(t Triple) bool {
		return t.Predicate.Equal(p) && t.Object.Equal(o)
	})
}

// SubjectsBy returns the distinct subjects of every triple satisfying pred.
func (g Graph) SubjectsBy(pred func(Triple) bool) []node.IriOrBNode {
	seen := map[node.IriOrBNode]bool{}
	var out []node.IriOrBNode
	for t := range g.triples {
		if !pred(t) || seen[t.Subject] {
			continue
		}
		seen[t.Subject] = true
		out = append(out, t.Subject)
	}
	return out
}

// PredicatesOf returns the distinct predicates of triples matching subject
// s and object o.
func (g Graph) PredicatesOf(s node.IriOrBNode, o node.Node) []node.IriNode {
	return g.PredicatesBy(func(t Triple) bool {
		return t.Subject.Equal(s) && t.Object.Equal(o)
	})
}

// PredicatesBy returns the distinct predicates of every triple satisfying
// pred.
func (g Graph) PredicatesBy(pred func(Triple) bool) []node.IriNode {
	seen := map[node.IriNode]bool{}
	var out []node.IriNode
	for t := range g.triples {
		if !pred(t) || seen[t.Predicate] {
			continue
		}
		seen[t.Predicate] = true
		out = append(out, t.Predicate)
	}
	return out
}

// ObjectsOf returns the distinct objects of triples matching subject s and
// predicate p.
func (g Graph) ObjectsOf(s node.IriOrBNode, p node.IriNode) []node.Node {
	return g.ObjectsBy(func(t Triple) bool {
		return t.Subject.Equal(s) && t.Predicate.Equal(p)
	})
}

// ObjectsBy returns the distinct objects of every triple satisfying pred.
func (g Graph) ObjectsBy(pred func(Triple) bool) []node.Node {
	seen := map[node.Node]bool{}
	var out []node.Node
	for t := range g.triples {
		if !pred(t) || seen[t.Object] {
			continue
		}
		seen[t.Object] = true
		out = append(out, t.Object)
	}
	return out
}

// Equal reports whether a and b contain exactly the same set of triples,
// regardless of iteration or insertion order.
func Equal(a, b Graph) bool {
	if len(a.triples) != len(b.triples) {
		return false
	}
	for t := range a.triples {
		if _, ok := b.triples[t]; !ok {
			return false
		}
	}
	return true
}

// vertexIndex assigns a stable, deterministic int64 id to every vertex
// (subject or IriOrBNode object — a Literal object is not a vertex) that
// appears in g, ordered by each vertex's String() form so that repeated
// calls over an equal graph produce the same ids.
func (g Graph) vertexIndex() (ids map[node.IriOrBNode]int64, ordered []node.IriOrBNode) {
	byKey := map[string]node.IriOrBNode{}
	for t := range g.triples {
		byKey[t.Subject.String()] = t.Subject
		if ion, ok := t.Object.(node.IriOrBNode); ok {
			byKey[ion.String()] = ion
		}
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ids = make(map[node.IriOrBNode]int64, len(keys))
	ordered = make([]node.IriOrBNode, len(keys))
	for i, k := range keys {
		v := byKey[k]
		ids[v] = int64(i)
		ordered[i] = v
	}
	return ids, ordered
}

// IsCyclic reports whether the directed graph formed by this graph's
// IriOrBNode-to-IriOrBNode edges (literal objects are not vertices, and so
// cannot participate in a cycle) contains a cycle — including a direct
// self-loop (s, p, s).
func (g Graph) IsCyclic() bool {
	ids, _ := g.vertexIndex()
	dg := simple.NewDirectedGraph()
	for _, id := range ids {
		dg.AddNode(simple.Node(id))
	}
	for t := range g.triples {
		obj, ok := t.Object.(node.IriOrBNode)
		if !ok {
			continue
		}
		u, v := ids[t.Subject], ids[obj]
		if u == v {
			return true
		}
		if !dg.HasEdgeFromTo(u, v) {
			dg.SetEdge(dg.NewEdge(simple.Node(u), simple.Node(v)))
		}
	}
	for _, scc := range topo.TarjanSCC(dg) {
		if len(scc) > 1 {
			return true
		}
	}
	return false
}

// IsAcyclic is the negation of IsCyclic.
func (g Graph) IsAcyclic() bool { return !g.IsCyclic() }

// IsConnected reports whether the undirected graph formed by this graph's
// IriOrBNode vertices (ignoring edge direction, and again excluding
// literal objects as non-vertices) is a single connected component. A
// graph with zero or one vertex is trivially connected.
func (g Graph) IsConnected() bool {
	ids, ordered := g.vertexIndex()
	if len(ordered) <= 1 {
		return true
	}
	ug := simple.NewUndirectedGraph()
	for _, id := range ids {
		ug.AddNode(simple.Node(id))
	}
	for t := range g.triples {
		obj, ok := t.Object.(node.IriOrBNode)
		if !ok {
			continue
		}
		u, v := ids[t.Subject], ids[obj]
		if u == v || ug.HasEdgeBetween(u, v) {
			continue
		}
		ug.SetEdge(ug.NewEdge(simple.Node(u), simple.Node(v)))
	}
	return len(topo.ConnectedComponents(ug)) == 1
}
