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

// Package node implements the RDF node algebra: blank nodes, IRI nodes, and
// literals, plus the IriOrBNode restriction used wherever RDF forbids a
// literal (subjects, and this module's graph vertices).
package node

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/jplu/nexus-rdf/iri"
)

// Node is the sum type of every RDF term this package produces: a blank
// node, an IRI node, or a literal.
type Node interface {
	isNode()
	// String renders the node in a debugging-friendly, Turtle-like form.
	String() string
	Equal(Node) bool
}

// IriOrBNode restricts Node to the two forms RDF allows as a subject (and
// as a graph vertex in this module's graph package): BNode and IriNode.
type IriOrBNode interface {
	Node
	isIriOrBNode()
}

var blankIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// BNode is a blank node, identified by a locally-scoped opaque label.
type BNode struct {
	id string
}

// Blank validates id against the blank-node label grammar
// (^[A-Za-z][A-Za-z0-9_-]*$) and wraps it as a BNode.
func Blank(id string) (BNode, error) {
	if !blankIDPattern.MatchString(id) {
		return BNode{}, newDomainErr("blank node id must match ^[A-Za-z][A-Za-z0-9_-]*$: " + id)
	}
	return BNode{id: id}, nil
}

// NewBlank mints a fresh BNode with a randomly generated id, prefixed with
// "b" so a UUID's leading digit never violates the label grammar's
// letter-first rule. It never fails in practice but still returns an error
// to keep the constructor contract uniform with every other Node
// constructor.
func NewBlank() (Node, error) {
	return BNode{id: "b" + uuid.New().String()}, nil
}

func (BNode) isNode()       {}
func (BNode) isIriOrBNode() {}

// ID returns the blank node's label.
func (b BNode) ID() string { return b.id }

// String renders the blank node as "_:id".
func (b BNode) String() string { return "_:" + b.id }

// Equal reports whether other is a BNode with the same id.
func (b BNode) Equal(other Node) bool {
	o, ok := other.(BNode)
	return ok && b.id == o.id
}

// IriNode is an RDF term naming an absolute IRI.
type IriNode struct {
	value string
}

// Iri validates s as an absolute IRI and wraps its canonical (UTF-8,
// normalized) string form as an IriNode.
func Iri(s string) (IriNode, error) {
	parsed, err := iri.ParseNormalizedAbsolute(s)
	if err != nil {
		return IriNode{}, err
	}
	return IriNode{value: parsed.AsString()}, nil
}

func (IriNode) isNode()       {}
func (IriNode) isIriOrBNode() {}

// Value returns the node's canonical IRI string.
func (n IriNode) Value() string { return n.value }

// String renders the IRI node as "<value>".
func (n IriNode) String() string { return "<" + n.value + ">" }

// Equal reports whether other is an IriNode naming the same IRI.
func (n IriNode) Equal(other Node) bool {
	o, ok := other.(IriNode)
	return ok && n.value == o.value
}

// newDomainErr reports a node-level domain violation (a malformed
// blank-node label) using this module's shared error taxonomy, the same
// iri.ParseError/iri.Kind pair used for port and host errors in the iri
// package and tag-shape errors in langtag.
func newDomainErr(msg string) error {
	return &iri.ParseError{Kind: iri.KindDomain, Message: msg, Offset: -1}
}
