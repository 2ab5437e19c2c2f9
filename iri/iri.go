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

// Package iri implements RFC 3987 IRIs, RFC 3986 URIs, and RFC 8141 URNs as
// an immutable, normalized value model, plus RFC 3986 Section 5 reference
// resolution. Every constructor validates its input and returns a
// structured error instead of panicking.
package iri

import "strings"

// Iri is the sum type of every reference form this package produces: an
// absolute URL, an absolute URN, or a scheme-less relative reference.
type Iri interface {
	isIri()
	// AsString renders the reference in IRI (UTF-8) form.
	AsString() string
	// AsURI renders the reference in ASCII-only URI form.
	AsURI() string
	// IsAbsolute reports whether this reference carries a scheme.
	IsAbsolute() bool
}

// AbsoluteIri is the sum type of the two reference forms that carry a
// scheme: Url and Urn.
type AbsoluteIri interface {
	Iri
	isAbsoluteIri()
	Scheme() Scheme
}

// Url is an absolute IRI whose scheme is not "urn" (or is "urn" but lacks a
// well-formed NID:NSS body) — the generic scheme://authority/path?query#frag
// form.
type Url struct {
	scheme       Scheme
	hasAuthority bool
	authority    Authority
	path         *Path
	hasQuery     bool
	query        Query
	hasFragment  bool
	fragment     Fragment
}

func (Url) isIri()         {}
func (Url) isAbsoluteIri() {}

// Scheme returns the URL's scheme.
func (u Url) Scheme() Scheme { return u.scheme }

// IsAbsolute is always true for Url.
func (Url) IsAbsolute() bool { return true }

// HasAuthority reports whether the URL carries an authority component.
func (u Url) HasAuthority() bool { return u.hasAuthority }

// Authority returns the URL's authority. Valid only if HasAuthority.
func (u Url) Authority() Authority { return u.authority }

// Path returns the URL's path.
func (u Url) Path() *Path { return u.path }

// HasQuery reports whether the URL carries a query component.
func (u Url) HasQuery() bool { return u.hasQuery }

// Query returns the URL's query. Valid only if HasQuery.
func (u Url) Query() Query { return u.query }

// HasFragment reports whether the URL carries a fragment component.
func (u Url) HasFragment() bool { return u.hasFragment }

// Fragment returns the URL's fragment. Valid only if HasFragment.
func (u Url) Fragment() Fragment { return u.fragment }

func (u Url) render(ascii bool) string {
	var b strings.Builder
	b.WriteString(u.scheme.String())
	b.WriteByte(':')
	if u.hasAuthority {
		b.WriteString("//")
		if ascii {
			b.WriteString(u.authority.AsURI())
		} else {
			b.WriteString(u.authority.AsString())
		}
	}
	if ascii {
		b.WriteString(u.path.AsURI())
	} else {
		b.WriteString(u.path.AsString())
	}
	if u.hasQuery {
		b.WriteByte('?')
		if ascii {
			b.WriteString(u.query.AsURI())
		} else {
			b.WriteString(u.query.AsString())
		}
	}
	if u.hasFragment {
		b.WriteByte('#')
		if ascii {
			b.WriteString(u.fragment.AsURI())
		} else {
			b.WriteString(u.fragment.AsString())
		}
	}
	return b.String()
}

// AsString renders the URL in IRI (UTF-8) form.
func (u Url) AsString() string { return u.render(false) }

// AsURI renders the URL in ASCII-only URI form.
func (u Url) AsURI() string { return u.render(true) }

// EqualURL reports whether two URLs are structurally and semantically
// equal under the normalization rules applied at parse time.
func EqualURL(a, b Url) bool {
	if !strings.EqualFold(a.scheme.String(), b.scheme.String()) {
		return false
	}
	if a.hasAuthority != b.hasAuthority {
		return false
	}
	if a.hasAuthority && !a.authority.Equal(b.authority) {
		return false
	}
	if !PathEqual(a.path, b.path) {
		return false
	}
	if a.hasQuery != b.hasQuery {
		return false
	}
	if a.hasQuery && !a.query.Equal(b.query) {
		return false
	}
	if a.hasFragment != b.hasFragment {
		return false
	}
	return !a.hasFragment || a.fragment.Equal(b.fragment)
}

// Urn is an absolute IRI in RFC 8141 URN form: urn:nid:nss[?+r][?=q][#f].
type Urn struct {
	nid         Nid
	nss         *Path
	hasR        bool
	rComponent  Component
	hasQ        bool
	qComponent  Query
	hasFragment bool
	fragment    Fragment
}

func (Urn) isIri()         {}
func (Urn) isAbsoluteIri() {}

// Scheme is always "urn" for Urn.
func (Urn) Scheme() Scheme { s, _ := NewScheme("urn"); return s }

// IsAbsolute is always true for Urn.
func (Urn) IsAbsolute() bool { return true }

// Nid returns the URN's namespace identifier.
func (u Urn) Nid() Nid { return u.nid }

// Nss returns the URN's namespace-specific string, parsed as an
// ipath-rootless-like sequence of "/"-separated segments.
func (u Urn) Nss() *Path { return u.nss }

// HasRComponent reports whether the URN carries an r-component.
func (u Urn) HasRComponent() bool { return u.hasR }

// RComponent returns the URN's r-component. Valid only if HasRComponent.
func (u Urn) RComponent() Component { return u.rComponent }

// HasQComponent reports whether the URN carries a q-component.
func (u Urn) HasQComponent() bool { return u.hasQ }

// QComponent returns the URN's q-component, a sorted key/value multimap
// using the same canonical ordering as a URL's Query. Valid only if
// HasQComponent.
func (u Urn) QComponent() Query { return u.qComponent }

// HasFragment reports whether the URN carries a fragment.
func (u Urn) HasFragment() bool { return u.hasFragment }

// Fragment returns the URN's fragment. Valid only if HasFragment.
func (u Urn) Fragment() Fragment { return u.fragment }

func (u Urn) render(ascii bool) string {
	var b strings.Builder
	b.WriteString("urn:")
	b.WriteString(u.nid.String())
	b.WriteByte(':')
	if ascii {
		b.WriteString(u.nss.AsURI())
	} else {
		b.WriteString(u.nss.AsString())
	}
	// RFC 8141 Section 2.3: on output the r-component always precedes the
	// q-component, and the fragment is always last, regardless of the
	// order the components were written in on input.
	if u.hasR {
		b.WriteString("?+")
		if ascii {
			b.WriteString(u.rComponent.AsURI())
		} else {
			b.WriteString(u.rComponent.AsString())
		}
	}
	if u.hasQ {
		b.WriteString("?=")
		if ascii {
			b.WriteString(u.qComponent.AsURI())
		} else {
			b.WriteString(u.qComponent.AsString())
		}
	}
	if u.hasFragment {
		b.WriteByte('#')
		if ascii {
			b.WriteString(u.fragment.AsURI())
		} else {
			b.WriteString(u.fragment.AsString())
		}
	}
	return b.String()
}

// AsString renders the URN in IRI (UTF-8) form.
func (u Urn) AsString() string { return u.render(false) }

// AsURI renders the URN in ASCII-only URI form.
func (u Urn) AsURI() string { return u.render(true) }

// EqualURN reports whether two URNs are structurally and semantically
// equal, per RFC 8141's case-insensitive NID comparison.
func EqualURN(a, b Urn) bool {
	if !a.nid.Equal(b.nid) {
		return false
	}
	if !PathEqual(a.nss, b.nss) {
		return false
	}
	if a.hasR != b.hasR || (a.hasR && !a.rComponent.Equal(b.rComponent)) {
		return false
	}
	if a.hasQ != b.hasQ || (a.hasQ && !a.qComponent.Equal(b.qComponent)) {
		return false
	}
	if a.hasFragment != b.hasFragment {
		return false
	}
	return !a.hasFragment || a.fragment.Equal(b.fragment)
}

// RelativeIri is a scheme-less reference: //authority/path?query#frag, with
// the authority optional, resolved against a base Url or Urn via Resolve.
type RelativeIri struct {
	hasAuthority bool
	authority    Authority
	path         *Path
	hasQuery     bool
	query        Query
	hasFragment  bool
	fragment     Fragment
}

func (RelativeIri) isIri() {}

// IsAbsolute is always false for RelativeIri.
func (RelativeIri) IsAbsolute() bool { return false }

// HasAuthority reports whether the reference carries an authority
// component.
func (r RelativeIri) HasAuthority() bool { return r.hasAuthority }

// Authority returns the reference's authority. Valid only if HasAuthority.
func (r RelativeIri) Authority() Authority { return r.authority }

// Path returns the reference's path.
func (r RelativeIri) Path() *Path { return r.path }

// HasQuery reports whether the reference carries a query component.
func (r RelativeIri) HasQuery() bool { return r.hasQuery }

// Query returns the reference's query. Valid only if HasQuery.
func (r RelativeIri) Query() Query { return r.query }

// HasFragment reports whether the reference carries a fragment.
func (r RelativeIri) HasFragment() bool { return r.hasFragment }

// Fragment returns the reference's fragment. Valid only if HasFragment.
func (r RelativeIri) Fragment() Fragment { return r.fragment }

func (r RelativeIri) render(ascii bool) string {
	var b strings.Builder
	if r.hasAuthority {
		b.WriteString("//")
		if ascii {
			b.WriteString(r.authority.AsURI())
		} else {
			b.WriteString(r.authority.AsString())
		}
	}
	if ascii {
		b.WriteString(r.path.AsURI())
	} else {
		b.WriteString(r.path.AsString())
	}
	if r.hasQuery {
		b.WriteByte('?')
		if ascii {
			b.WriteString(r.query.AsURI())
		} else {
			b.WriteString(r.query.AsString())
		}
	}
	if r.hasFragment {
		b.WriteByte('#')
		if ascii {
			b.WriteString(r.fragment.AsURI())
		} else {
			b.WriteString(r.fragment.AsString())
		}
	}
	return b.String()
}

// AsString renders the reference in IRI (UTF-8) form.
func (r RelativeIri) AsString() string { return r.render(false) }

// AsURI renders the reference in ASCII-only URI form.
func (r RelativeIri) AsURI() string { return r.render(true) }
