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

package graph

import (
	"testing"

	"github.com/jplu/nexus-rdf/node"
)

func mustIri(t *testing.T, s string) node.IriNode {
	t.Helper()
	n, err := node.Iri(s)
	if err != nil {
		t.Fatalf("node.Iri(%q): %v", s, err)
	}
	return n
}

func mustBlank(t *testing.T, id string) node.BNode {
	t.Helper()
	b, err := node.Blank(id)
	if err != nil {
		t.Fatalf("node.Blank(%q): %v", id, err)
	}
	return b
}

func TestGraphAddIsDuplicateFree(t *testing.T) {
	s := mustIri(t, "http://example.com/s")
	p := mustIri(t, "http://example.com/p")
	o := mustIri(t, "http://example.com/o")
	tr := Triple{Subject: s, Predicate: p, Object: o}

	g := New().Add(tr).Add(tr)
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after adding the same triple twice", g.Len())
	}
	if !g.Has(tr) {
		t.Error("Has(tr) = false, want true")
	}
}

func TestGraphRemove(t *testing.T) {
	s := mustIri(t, "http://example.com/s")
	p := mustIri(t, "http://example.com/p")
	o := mustIri(t, "http://example.com/o")
	tr := Triple{Subject: s, Predicate: p, Object: o}

	g := New().Add(tr)
	g2 := g.Remove(tr)
	if g2.Len() != 0 {
		t.Errorf("Len() after Remove = %d, want 0", g2.Len())
	}
	if g.Len() != 1 {
		t.Error("Remove should not mutate the receiver")
	}
}

func TestGraphUnionAndDifference(t *testing.T) {
	s := mustIri(t, "http://example.com/s")
	p := mustIri(t, "http://example.com/p")
	o1 := mustIri(t, "http://example.com/o1")
	o2 := mustIri(t, "http://example.com/o2")
	t1 := Triple{Subject: s, Predicate: p, Object: o1}
	t2 := Triple{Subject: s, Predicate: p, Object: o2}

	g1 := New().Add(t1)
	g2 := New().Add(t2)

	u := g1.Union(g2)
	if u.Len() != 2 || !u.Has(t1) || !u.Has(t2) {
		t.Errorf("Union produced %+v, want both triples", u.Triples())
	}

	d := u.Difference(g2)
	if d.Len() != 1 || !d.Has(t1) || d.Has(t2) {
		t.Errorf("Difference produced %+v, want only t1", d.Triples())
	}
}

func TestGraphEqualIgnoresOrder(t *testing.T) {
	s := mustIri(t, "http://example.com/s")
	p := mustIri(t, "http://example.com/p")
	o1 := mustIri(t, "http://example.com/o1")
	o2 := mustIri(t, "http://example.com/o2")

	a := New().Add(Triple{s, p, o1}).Add(Triple{s, p, o2})
	b := New().Add(Triple{s, p, o2}).Add(Triple{s, p, o1})
	if !Equal(a, b) {
		t.Error("graphs with the same triple set built in different orders should be Equal")
	}

	c := New().Add(Triple{s, p, o1})
	if Equal(a, c) {
		t.Error("graphs with different triple sets should not be Equal")
	}
}

func TestGraphFilteredAccessors(t *testing.T) {
	s1 := mustIri(t, "http://example.com/s1")
	s2 := mustIri(t, "http://example.com/s2")
	p := mustIri(t, "http://example.com/p")
	o := mustIri(t, "http://example.com/o")

	g := New().Add(Triple{s1, p, o}).Add(Triple{s2, p, o})

	subs := g.SubjectsOf(p, o)
	if len(subs) != 2 {
		t.Errorf("SubjectsOf(p, o) = %v, want 2 subjects", subs)
	}

	preds := g.PredicatesOf(s1, o)
	if len(preds) != 1 || !preds[0].Equal(p) {
		t.Errorf("PredicatesOf(s1, o) = %v, want [p]", preds)
	}

	objs := g.ObjectsOf(s1, p)
	if len(objs) != 1 || !objs[0].Equal(o) {
		t.Errorf("ObjectsOf(s1, p) = %v, want [o]", objs)
	}
}

func TestGraphIsCyclicSelfLoop(t *testing.T) {
	s := mustIri(t, "http://example.com/s")
	p := mustIri(t, "http://example.com/p")
	g := New().Add(Triple{Subject: s, Predicate: p, Object: s})
	if !g.IsCyclic() {
		t.Error("a self-loop triple should make the graph cyclic")
	}
	if g.IsAcyclic() {
		t.Error("IsAcyclic should be false when IsCyclic is true")
	}
}

func TestGraphIsCyclicLongerCycle(t *testing.T) {
	a := mustIri(t, "http://example.com/a")
	b := mustIri(t, "http://example.com/b")
	c := mustIri(t, "http://example.com/c")
	p := mustIri(t, "http://example.com/p")

	g := New().
		Add(Triple{a, p, b}).
		Add(Triple{b, p, c}).
		Add(Triple{c, p, a})
	if !g.IsCyclic() {
		t.Error("a 3-cycle a->b->c->a should be detected as cyclic")
	}
}

func TestGraphIsAcyclicDAG(t *testing.T) {
	a := mustIri(t, "http://example.com/a")
	b := mustIri(t, "http://example.com/b")
	c := mustIri(t, "http://example.com/c")
	p := mustIri(t, "http://example.com/p")

	g := New().Add(Triple{a, p, b}).Add(Triple{b, p, c})
	if !g.IsAcyclic() {
		t.Error("a simple chain a->b->c should be acyclic")
	}
}

func TestGraphIsConnected(t *testing.T) {
	a := mustIri(t, "http://example.com/a")
	b := mustIri(t, "http://example.com/b")
	c := mustIri(t, "http://example.com/c")
	p := mustIri(t, "http://example.com/p")

	connected := New().Add(Triple{a, p, b}).Add(Triple{b, p, c})
	if !connected.IsConnected() {
		t.Error("a->b->c should be connected")
	}

	d := mustIri(t, "http://example.com/d")
	e := mustIri(t, "http://example.com/e")
	disconnected := New().Add(Triple{a, p, b}).Add(Triple{d, p, e})
	if disconnected.IsConnected() {
		t.Error("two disjoint edges should not be connected")
	}
}

func TestGraphConnectivityExcludesLiteralObjects(t *testing.T) {
	a := mustIri(t, "http://example.com/a")
	b := mustIri(t, "http://example.com/b")
	p := mustIri(t, "http://example.com/p")
	lit := node.NewStringLiteral("just a value")

	g := New().Add(Triple{a, p, b}).Add(Triple{a, p, lit})
	// Only a and b are vertices; the literal never becomes a third vertex,
	// so this remains a trivially connected two-vertex graph.
	if !g.IsConnected() {
		t.Error("a literal object should not affect connectivity")
	}
	if g.IsCyclic() {
		t.Error("a literal object can never participate in a cycle")
	}
}

func TestGraphIsConnectedTrivialCases(t *testing.T) {
	if !New().IsConnected() {
		t.Error("empty graph should be trivially connected")
	}
	s := mustIri(t, "http://example.com/s")
	p := mustIri(t, "http://example.com/p")
	lit := node.NewStringLiteral("v")
	single := New().Add(Triple{s, p, lit})
	if !single.IsConnected() {
		t.Error("single-vertex graph should be trivially connected")
	}
}

func TestGraphWithBlankNodeSubject(t *testing.T) {
	bn := mustBlank(t, "b1")
	p := mustIri(t, "http://example.com/p")
	o := mustIri(t, "http://example.com/o")
	g := New().Add(Triple{bn, p, o})
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	subs := g.Subjects()
	if len(subs) != 1 || !subs[0].Equal(bn) {
		t.Errorf("Subjects() = %v, want [%v]", subs, bn)
	}
}
