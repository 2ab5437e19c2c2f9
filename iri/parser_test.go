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

package iri

import "testing"

func TestParseNormalizesSchemeHostAndDropsDefaultPort(t *testing.T) {
	got, err := Parse("hTtps://me:me@hOst:443/a/b?a&e=f&b=c#frag")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u, ok := got.(Url)
	if !ok {
		t.Fatalf("Parse returned %T, want Url", got)
	}
	want := "https://me:me@host/a/b?a&b=c&e=f#frag"
	if s := u.AsString(); s != want {
		t.Errorf("AsString() = %q, want %q", s, want)
	}
	if u.Scheme().String() != "https" {
		t.Errorf("Scheme() = %q, want https", u.Scheme().String())
	}
	if u.HasAuthority() && u.Authority().HasPort {
		t.Error("default port 443 for https should have been dropped")
	}
}

func TestParseKeepsNonDefaultPort(t *testing.T) {
	got, err := Parse("http://host:8080/path")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u := got.(Url)
	if !u.Authority().HasPort || u.Authority().Port.Value != 8080 {
		t.Errorf("expected port 8080 to be kept, got %+v", u.Authority())
	}
}

func TestParseNamedHostPercentVsUTF8Form(t *testing.T) {
	got, err := Parse("http://host%C2%A3.example/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u := got.(Url)
	if got := u.AsString(); got != "http://host£.example/" {
		t.Errorf("AsString() = %q, want %q", got, "http://host£.example/")
	}
	if got := u.AsURI(); got != "http://host%C2%A3.example/" {
		t.Errorf("AsURI() = %q, want %q", got, "http://host%C2%A3.example/")
	}
}

func TestParseRelativeNoScheme(t *testing.T) {
	got, err := Parse("/a/b?x=1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, ok := got.(RelativeIri)
	if !ok {
		t.Fatalf("Parse returned %T, want RelativeIri", got)
	}
	if r.IsAbsolute() {
		t.Error("relative reference should not be absolute")
	}
	if got := r.AsString(); got != "/a/b?x=1" {
		t.Errorf("AsString() = %q, want %q", got, "/a/b?x=1")
	}
}

func TestParseUrnComponentOrderIsFixedOnOutput(t *testing.T) {
	// Input order q-then-r must still render r-then-q on output.
	got, err := Parse("urn:example:a123?=q-value?+r-value")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u, ok := got.(Urn)
	if !ok {
		t.Fatalf("Parse returned %T, want Urn", got)
	}
	want := "urn:example:a123?+r-value?=q-value"
	if got := u.AsString(); got != want {
		t.Errorf("AsString() = %q, want %q", got, want)
	}
}

func TestParseUrnWithFragment(t *testing.T) {
	got, err := Parse("urn:example:a123?+r?=q#frag")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u := got.(Urn)
	if !u.HasFragment() || u.Fragment().String() != "frag" {
		t.Errorf("fragment = %+v, want frag", u.Fragment())
	}
	if got := u.AsString(); got != "urn:example:a123?+r?=q#frag" {
		t.Errorf("AsString() = %q, want %q", got, "urn:example:a123?+r?=q#frag")
	}
}

func TestParseUrnNidIsLowercasedOnRender(t *testing.T) {
	got, err := Parse("urn:examp-lE:foo-bar-baz-qux?=a=b?+CCResolve:cc=uk")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u, ok := got.(Urn)
	if !ok {
		t.Fatalf("Parse returned %T, want Urn", got)
	}
	want := "urn:examp-le:foo-bar-baz-qux?+CCResolve:cc=uk?=a=b"
	if got := u.AsString(); got != want {
		t.Errorf("AsString() = %q, want %q", got, want)
	}
	if u.Nid().String() != "examp-le" {
		t.Errorf("Nid().String() = %q, want %q", u.Nid().String(), "examp-le")
	}
}

func TestParseUrnNidCaseInsensitiveEqual(t *testing.T) {
	a, err := Parse("urn:Example:a123")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse("urn:example:a123")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !EqualURN(a.(Urn), b.(Urn)) {
		t.Error("URNs differing only in NID case should be EqualURN")
	}
}

func TestParseUrnInvalidNidFallsBackToUrl(t *testing.T) {
	// A NID shorter than 2 characters is not a valid URN body, so "urn:"
	// should be treated as an ordinary scheme instead (backtracking).
	got, err := Parse("urn:a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := got.(Url); !ok {
		t.Fatalf("Parse(%q) = %T, want Url (fallback)", "urn:a", got)
	}
}

func TestParseRejectsUnterminatedIPv6Literal(t *testing.T) {
	// An IPv6 literal without its closing ']' exercises the syntax-error
	// path of authority parsing.
	if _, err := Parse("http://[::1/path"); err == nil {
		t.Error("expected a syntax error for an unterminated IPv6 literal")
	}
}

func TestParseIPv4Host(t *testing.T) {
	got, err := Parse("http://192.168.0.1:8080/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u := got.(Url)
	h, ok := u.Authority().Host.(IPv4Host)
	if !ok {
		t.Fatalf("Host = %T, want IPv4Host", u.Authority().Host)
	}
	if h.AsString() != "192.168.0.1" {
		t.Errorf("AsString() = %q, want 192.168.0.1", h.AsString())
	}
}

func TestParseIPv6HostCompressed(t *testing.T) {
	got, err := Parse("http://[2001:db8:0:0:0:0:0:1]/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u := got.(Url)
	h, ok := u.Authority().Host.(IPv6Host)
	if !ok {
		t.Fatalf("Host = %T, want IPv6Host", u.Authority().Host)
	}
	if got := h.AsString(); got != "[2001:db8::1]" {
		t.Errorf("AsString() = %q, want [2001:db8::1]", got)
	}
}

func TestParseAbsoluteRejectsRelative(t *testing.T) {
	if _, err := ParseAbsolute("/a/b"); err == nil {
		t.Error("ParseAbsolute should reject a scheme-less reference")
	}
}

func TestParseRelativeRejectsAbsolute(t *testing.T) {
	if _, err := ParseRelative("http://example.com/"); err == nil {
		t.Error("ParseRelative should reject a reference carrying a scheme")
	}
}

func TestParseRoundTripsUserInfoAndPath(t *testing.T) {
	raw := "https://user@example.com/a/b/c"
	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s := got.AsString(); s != raw {
		t.Errorf("AsString() = %q, want %q", s, raw)
	}
}
