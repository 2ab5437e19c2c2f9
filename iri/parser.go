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

import (
	"strconv"
	"strings"

	"github.com/jplu/nexus-rdf/internal/parser"
)

// Parse parses s as either an absolute (Url or Urn) or relative reference.
func Parse(s string) (Iri, error) {
	c := parser.New(s)
	if scheme, ok := tryParseScheme(c); ok {
		if strings.EqualFold(scheme.String(), "urn") {
			mark := c.Mark()
			if urn, err := parseUrnBody(c); err == nil {
				return urn, nil
			}
			c.Rewind(mark)
		}
		return parseUrlAfterScheme(c, scheme)
	}
	return parseRelative(c)
}

// ParseAbsolute parses s as an absolute Url or Urn. It fails if s is a
// scheme-less relative reference.
func ParseAbsolute(s string) (AbsoluteIri, error) {
	iri, err := Parse(s)
	if err != nil {
		return nil, err
	}
	abs, ok := iri.(AbsoluteIri)
	if !ok {
		return nil, newSyntaxError("expected an absolute IRI but found a relative reference", -1)
	}
	return abs, nil
}

// ParseRelative parses s as a scheme-less relative reference.
func ParseRelative(s string) (RelativeIri, error) {
	c := parser.New(s)
	if _, ok := tryParseScheme(c); ok {
		return RelativeIri{}, newSyntaxError("expected a relative reference but found a scheme", -1)
	}
	c = parser.New(s)
	return parseRelative(c)
}

func tryParseScheme(c *parser.Cursor) (Scheme, bool) {
	mark := c.Mark()
	r, ok := c.Peek()
	if !ok || !isASCIILetter(r) {
		return Scheme{}, false
	}
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		if isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.' {
			c.Next()
			continue
		}
		break
	}
	if !c.StartsWith(':') {
		c.Rewind(mark)
		return Scheme{}, false
	}
	raw := c.Slice(mark)
	c.Next() // consume ':'
	sc, err := NewScheme(raw)
	if err != nil {
		c.Rewind(mark)
		return Scheme{}, false
	}
	return sc, true
}

func parseUrlAfterScheme(c *parser.Cursor, scheme Scheme) (Url, error) {
	u := Url{scheme: scheme}
	if strings.HasPrefix(c.Rest(), "//") {
		c.Next()
		c.Next()
		authSpan := readUntil(c, "/?#")
		auth, err := parseAuthoritySpan(authSpan)
		if err != nil {
			return Url{}, wrapAtOffset(err, c.Pos())
		}
		if auth.HasPort && isDefaultPort(scheme.String(), auth.Port.Value) {
			auth.HasPort = false
		}
		u.hasAuthority = true
		u.authority = auth
	}
	pathSpan := readUntil(c, "?#")
	path, err := pathFromSpan(pathSpan)
	if err != nil {
		return Url{}, wrapAtOffset(err, c.Pos())
	}
	u.path = path

	if c.StartsWith('?') {
		c.Next()
		querySpan := readUntil(c, "#")
		if err := validateBidiComponent(querySpan); err != nil {
			return Url{}, wrapAtOffset(err, c.Pos())
		}
		q, err := ParseQuery(querySpan)
		if err != nil {
			return Url{}, wrapAtOffset(err, c.Pos())
		}
		u.hasQuery = true
		u.query = q
	}
	if c.StartsWith('#') {
		c.Next()
		fragSpan := c.Rest()
		for range fragSpan {
			c.Next()
		}
		decoded, err := pctDecode(fragSpan)
		if err != nil {
			return Url{}, wrapAtOffset(err, c.Pos())
		}
		if err := validateBidiComponent(decoded); err != nil {
			return Url{}, wrapAtOffset(err, c.Pos())
		}
		u.hasFragment = true
		u.fragment = NewFragment(decoded)
	}
	if !c.Done() {
		return Url{}, newSyntaxError("unexpected trailing input", c.Pos())
	}
	return u, nil
}

func parseRelative(c *parser.Cursor) (RelativeIri, error) {
	var r RelativeIri
	if strings.HasPrefix(c.Rest(), "//") {
		c.Next()
		c.Next()
		authSpan := readUntil(c, "/?#")
		auth, err := parseAuthoritySpan(authSpan)
		if err != nil {
			return RelativeIri{}, wrapAtOffset(err, c.Pos())
		}
		r.hasAuthority = true
		r.authority = auth
	}
	pathSpan := readUntil(c, "?#")
	path, err := pathFromSpan(pathSpan)
	if err != nil {
		return RelativeIri{}, wrapAtOffset(err, c.Pos())
	}
	r.path = path

	if c.StartsWith('?') {
		c.Next()
		querySpan := readUntil(c, "#")
		if err := validateBidiComponent(querySpan); err != nil {
			return RelativeIri{}, wrapAtOffset(err, c.Pos())
		}
		q, err := ParseQuery(querySpan)
		if err != nil {
			return RelativeIri{}, wrapAtOffset(err, c.Pos())
		}
		r.hasQuery = true
		r.query = q
	}
	if c.StartsWith('#') {
		c.Next()
		fragSpan := c.Rest()
		for range fragSpan {
			c.Next()
		}
		decoded, err := pctDecode(fragSpan)
		if err != nil {
			return RelativeIri{}, wrapAtOffset(err, c.Pos())
		}
		if err := validateBidiComponent(decoded); err != nil {
			return RelativeIri{}, wrapAtOffset(err, c.Pos())
		}
		r.hasFragment = true
		r.fragment = NewFragment(decoded)
	}
	if !c.Done() {
		return RelativeIri{}, newSyntaxError("unexpected trailing input", c.Pos())
	}
	return r, nil
}

// readUntil consumes and returns runes up to (not including) the first
// occurrence of any rune in stopSet, or to the end of input.
func readUntil(c *parser.Cursor, stopSet string) string {
	start := c.Mark()
	for {
		r, ok := c.Peek()
		if !ok || strings.ContainsRune(stopSet, r) {
			break
		}
		c.Next()
	}
	return c.Slice(start)
}

// readUntilLiteral consumes runes up to (not including) the first position
// at which the unread remainder starts with one of the literal markers in
// terms, checked as whole prefixes rather than individual stop runes, or to
// the end of input. Unlike readUntil, a marker that is only a partial match
// at the current position (e.g. a "?" not followed by the rest of "?=")
// never stops the scan.
func readUntilLiteral(c *parser.Cursor, terms ...string) string {
	start := c.Mark()
	for {
		rest := c.Rest()
		if rest == "" {
			break
		}
		stop := false
		for _, t := range terms {
			if strings.HasPrefix(rest, t) {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		c.Next()
	}
	return c.Slice(start)
}

// pathFromSpan builds a Path from a raw (percent-encoded) path span, using
// each literal "/" byte as a segment boundary and percent-decoding each
// segment independently, so a decoded "/" from "%2F" is never mistaken for
// a separator.
func pathFromSpan(span string) (*Path, error) {
	if span == "" {
		return nil, nil
	}
	parts := strings.Split(span, "/")
	var toks []pathTok
	for i, part := range parts {
		if i > 0 {
			toks = append(toks, pathTok{isSlash: true})
		}
		if part != "" {
			decoded, err := pctDecode(part)
			if err != nil {
				return nil, err
			}
			if err := validateBidiComponent(decoded); err != nil {
				return nil, err
			}
			toks = append(toks, pathTok{seg: decoded})
		}
	}
	return fromTokens(toks), nil
}

func parseAuthoritySpan(raw string) (Authority, error) {
	var a Authority
	rest := raw
	if idx := strings.IndexByte(rest, '@'); idx >= 0 {
		decoded, err := pctDecode(rest[:idx])
		if err != nil {
			return Authority{}, err
		}
		if err := validateBidiComponent(decoded); err != nil {
			return Authority{}, err
		}
		a.HasUser = true
		a.UserInfo = NewUserInfo(decoded)
		rest = rest[idx+1:]
	}

	hostPart := rest
	hasPort := false
	portPart := ""
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Authority{}, newSyntaxError("unterminated IPv6 literal in authority", -1)
		}
		hostPart = rest[:end+1]
		remainder := rest[end+1:]
		if strings.HasPrefix(remainder, ":") {
			hasPort = true
			portPart = remainder[1:]
		}
	} else if idx := strings.IndexByte(rest, ':'); idx >= 0 {
		hostPart = rest[:idx]
		hasPort = true
		portPart = rest[idx+1:]
	}

	host, err := parseHost(hostPart)
	if err != nil {
		return Authority{}, err
	}
	a.Host = host

	if hasPort && portPart != "" {
		n, err := strconv.Atoi(portPart)
		if err != nil {
			return Authority{}, newSyntaxError("invalid port", -1)
		}
		p, err := NewPort(n)
		if err != nil {
			return Authority{}, err
		}
		a.Port = p
		a.HasPort = true
	}
	return a, nil
}

func parseHost(s string) (Host, error) {
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, newSyntaxError("unterminated IPv6 literal", -1)
		}
		bytes, err := parseIPv6(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return IPv6Host{Bytes: bytes}, nil
	}
	if bytes, ok := parseIPv4(s); ok {
		return IPv4Host{Bytes: bytes}, nil
	}
	decoded, err := pctDecode(s)
	if err != nil {
		return nil, err
	}
	if err := validateBidiHost(decoded); err != nil {
		return nil, err
	}
	return NamedHost{Name: strings.ToLower(decoded)}, nil
}

func parseIPv4(s string) ([4]byte, bool) {
	var out [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return out, false
	}
	for i, p := range parts {
		if p == "" || len(p) > 3 {
			return out, false
		}
		for _, r := range p {
			if !isASCIIDigit(r) {
				return out, false
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return out, false
		}
		out[i] = byte(n)
	}
	return out, true
}

func parseIPv6(s string) ([16]byte, error) {
	var out [16]byte
	if strings.Count(s, "::") > 1 {
		return out, newSyntaxError("IPv6 literal has more than one '::'", -1)
	}
	var left, right []uint16
	var err error
	if strings.Contains(s, "::") {
		halves := strings.SplitN(s, "::", 2)
		if left, err = parseIPv6Groups(halves[0]); err != nil {
			return out, err
		}
		if right, err = parseIPv6Groups(halves[1]); err != nil {
			return out, err
		}
		missing := 8 - len(left) - len(right)
		if missing < 0 {
			return out, newSyntaxError("IPv6 literal has too many groups", -1)
		}
		groups := make([]uint16, 0, 8)
		groups = append(groups, left...)
		groups = append(groups, make([]uint16, missing)...)
		groups = append(groups, right...)
		left = groups
	} else {
		if left, err = parseIPv6Groups(s); err != nil {
			return out, err
		}
		if len(left) != 8 {
			return out, newSyntaxError("IPv6 literal must have exactly 8 groups", -1)
		}
	}
	for i, g := range left {
		out[2*i] = byte(g >> 8)
		out[2*i+1] = byte(g & 0xFF)
	}
	return out, nil
}

func parseIPv6Groups(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ":")
	groups := make([]uint16, 0, len(parts))
	for _, p := range parts {
		if p == "" || len(p) > 4 {
			return nil, newSyntaxError("invalid IPv6 group", -1)
		}
		n, err := strconv.ParseUint(p, 16, 16)
		if err != nil {
			return nil, newSyntaxError("invalid IPv6 group", -1)
		}
		groups = append(groups, uint16(n))
	}
	return groups, nil
}

// parseUrnBody parses the "nid:nss[?+r][?=q][#f]" tail of a "urn:" scheme
// already consumed by the caller.
func parseUrnBody(c *parser.Cursor) (Urn, error) {
	nidSpan := readUntil(c, ":")
	if !c.StartsWith(':') {
		return Urn{}, newSyntaxError("URN is missing the NID/NSS separator", c.Pos())
	}
	c.Next()
	nid, err := NewNid(nidSpan)
	if err != nil {
		return Urn{}, err
	}

	nssSpan := readUntil(c, "?#")
	if nssSpan == "" {
		return Urn{}, newSyntaxError("URN NSS must not be empty", c.Pos())
	}
	nss, err := pathFromSpan(nssSpan)
	if err != nil {
		return Urn{}, err
	}

	u := Urn{nid: nid, nss: nss}

	// At most one r-component and one q-component, and either may come
	// first in the input (output always normalizes to r-then-q; see
	// render). A "?+"/"?=" embedded in an already-started component's own
	// content, rather than starting a not-yet-seen component, is literal
	// content, not a second delimiter — so each component's span runs only
	// to the OTHER delimiter (if it hasn't been consumed yet) or "#" or
	// end of input, never to a bare "?".
	for !(u.hasR && u.hasQ) {
		rest := c.Rest()
		isR := !u.hasR && strings.HasPrefix(rest, "?+")
		isQ := !u.hasQ && strings.HasPrefix(rest, "?=")
		if !isR && !isQ {
			break
		}
		kind := rest[1]
		c.Next()
		c.Next()

		terms := []string{"#"}
		if kind == '+' && !u.hasQ {
			terms = []string{"?=", "#"}
		} else if kind == '=' && !u.hasR {
			terms = []string{"?+", "#"}
		}
		span := readUntilLiteral(c, terms...)
		if span == "" {
			return Urn{}, newSyntaxError("URN r/q component must not be empty", c.Pos())
		}

		if kind == '+' {
			decoded, err := pctDecode(span)
			if err != nil {
				return Urn{}, err
			}
			u.hasR = true
			u.rComponent = NewComponent(decoded)
		} else {
			q, err := ParseQuery(span)
			if err != nil {
				return Urn{}, err
			}
			u.hasQ = true
			u.qComponent = q
		}
	}

	if c.StartsWith('#') {
		c.Next()
		fragSpan := c.Rest()
		for range fragSpan {
			c.Next()
		}
		decoded, err := pctDecode(fragSpan)
		if err != nil {
			return Urn{}, err
		}
		u.hasFragment = true
		u.fragment = NewFragment(decoded)
	}
	if !c.Done() {
		return Urn{}, newSyntaxError("unexpected trailing input in URN", c.Pos())
	}
	return u, nil
}
