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

package node

import (
	"strconv"

	"github.com/jplu/nexus-rdf/iri"
	"github.com/jplu/nexus-rdf/langtag"
)

// Literal is an RDF literal: a lexical form paired with either a language
// tag (implying datatype rdf:langString) or an explicit datatype IRI.
type Literal struct {
	lexical  string
	datatype string
	hasLang  bool
	lang     langtag.Tag
}

func (Literal) isNode() {}

// Lexical returns the literal's lexical form.
func (l Literal) Lexical() string { return l.lexical }

// Datatype returns the literal's datatype IRI.
func (l Literal) Datatype() string { return l.datatype }

// HasLang reports whether the literal carries a language tag.
func (l Literal) HasLang() bool { return l.hasLang }

// Lang returns the literal's language tag. Valid only if HasLang.
func (l Literal) Lang() langtag.Tag { return l.lang }

// Equal reports whether other is a Literal with the same lexical form,
// datatype, and language tag (compared case-insensitively, per BCP 47).
func (l Literal) Equal(other Node) bool {
	o, ok := other.(Literal)
	if !ok {
		return false
	}
	if l.lexical != o.lexical || l.datatype != o.datatype || l.hasLang != o.hasLang {
		return false
	}
	return !l.hasLang || l.lang.Equal(o.lang)
}

// String renders the literal the way it is commonly shown in Turtle:
// "lex"@tag for a language-tagged literal, a bare "lex" for an xsd:string,
// and "lex"^^<datatype> otherwise.
func (l Literal) String() string {
	if l.hasLang {
		return `"` + l.lexical + `"@` + l.lang.AsStr()
	}
	if l.datatype == iri.XSDString {
		return `"` + l.lexical + `"`
	}
	return `"` + l.lexical + `"^^<` + l.datatype + `>`
}

// NewLiteral constructs a Literal with an explicit datatype IRI.
func NewLiteral(lexical, datatype string) (Literal, error) {
	dt, err := iri.ParseNormalizedAbsolute(datatype)
	if err != nil {
		return Literal{}, err
	}
	return Literal{lexical: lexical, datatype: dt.AsString()}, nil
}

// NewLangLiteral constructs an rdf:langString literal: lexical tagged with
// lang, which must be a well-formed BCP 47 tag.
func NewLangLiteral(lexical, lang string) (Literal, error) {
	tag, err := langtag.Parse(lang)
	if err != nil {
		return Literal{}, err
	}
	return Literal{lexical: lexical, datatype: iri.RDFLangString, hasLang: true, lang: tag}, nil
}

// NewStringLiteral constructs an xsd:string literal.
func NewStringLiteral(lexical string) Literal {
	return Literal{lexical: lexical, datatype: iri.XSDString}
}

// NewBooleanLiteral constructs an xsd:boolean literal from a native bool.
func NewBooleanLiteral(v bool) Literal {
	return Literal{lexical: strconv.FormatBool(v), datatype: iri.XSDBoolean}
}

// NewIntegerLiteral constructs an xsd:integer literal from a native int64.
func NewIntegerLiteral(v int64) Literal {
	return Literal{lexical: strconv.FormatInt(v, 10), datatype: iri.XSDInteger}
}

// NewLongLiteral constructs an xsd:long literal from a native int64,
// distinct from NewIntegerLiteral's xsd:integer in datatype only.
func NewLongLiteral(v int64) Literal {
	return Literal{lexical: strconv.FormatInt(v, 10), datatype: iri.XSDLong}
}

// NewShortLiteral constructs an xsd:short literal from a native int16.
func NewShortLiteral(v int16) Literal {
	return Literal{lexical: strconv.FormatInt(int64(v), 10), datatype: iri.XSDShort}
}

// NewByteLiteral constructs an xsd:byte literal from a native int8.
func NewByteLiteral(v int8) Literal {
	return Literal{lexical: strconv.FormatInt(int64(v), 10), datatype: iri.XSDByte}
}

// NewFloatLiteral constructs an xsd:float literal from a native float32.
func NewFloatLiteral(v float32) Literal {
	return Literal{lexical: strconv.FormatFloat(float64(v), 'g', -1, 32), datatype: iri.XSDFloat}
}

// NewDoubleLiteral constructs an xsd:double literal from a native float64.
func NewDoubleLiteral(v float64) Literal {
	return Literal{lexical: strconv.FormatFloat(v, 'g', -1, 64), datatype: iri.XSDDouble}
}

// numericDatatypes is the set of built-in XSD datatypes IsNumeric
// recognizes.
var numericDatatypes = map[string]bool{
	iri.XSDInteger: true,
	iri.XSDLong:    true,
	iri.XSDInt:     true,
	iri.XSDShort:   true,
	iri.XSDByte:    true,
	iri.XSDFloat:   true,
	iri.XSDDouble:  true,
	iri.XSDDecimal: true,
}

// IsNumeric reports whether l's datatype is one of the built-in numeric
// XSD datatypes this package's constructors produce.
func (l Literal) IsNumeric() bool {
	return numericDatatypes[l.datatype]
}
