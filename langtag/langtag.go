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

// Package langtag validates the shape of a BCP 47 language tag as required
// for an RDF language-tagged literal: well-formed subtag grammar, without
// consulting the IANA Language Subtag Registry. A tag like "xx-Qqqq-ZZ" is
// accepted even though "xx", "Qqqq", and "ZZ" are not registered; this
// package only checks shape.
package langtag

import (
	"strings"

	"github.com/jplu/nexus-rdf/iri"
)

// grandfathered is the fixed, closed list of BCP 47 "grandfathered" tags
// (RFC 5646 Section 2.2.9): a third top-level alternative in the
// Language-Tag ABNF, alongside the ordinary langtag grammar and bare
// private-use tags, that predates the subtag registry and does not
// validate against it.
var grandfathered = map[string]bool{
	"en-gb-oed":   true,
	"i-ami":       true,
	"i-bnn":       true,
	"i-default":   true,
	"i-enochian":  true,
	"i-hak":       true,
	"i-klingon":   true,
	"i-lux":       true,
	"i-mingo":     true,
	"i-navajo":    true,
	"i-pwn":       true,
	"i-tao":       true,
	"i-tay":       true,
	"i-tsu":       true,
	"sgn-be-fr":   true,
	"sgn-be-nl":   true,
	"sgn-ch-de":   true,
	"art-lojban":  true,
	"cel-gaulish": true,
	"no-bok":      true,
	"no-nyn":      true,
	"zh-guoyu":    true,
	"zh-hakka":    true,
	"zh-min":      true,
	"zh-min-nan":  true,
	"zh-xiang":    true,
}

// Tag is a validated, case-preserving BCP 47 language tag.
type Tag struct {
	raw string
}

// Parse validates raw against the BCP 47 langtag grammar (RFC 5646 Section
// 2.1, registry lookups excluded) and returns a Tag that preserves raw's
// original casing.
func Parse(raw string) (Tag, error) {
	if raw == "" {
		return Tag{}, newErr("language tag must not be empty")
	}
	if grandfathered[strings.ToLower(raw)] {
		return Tag{raw: raw}, nil
	}
	subtags := strings.Split(raw, "-")
	if len(subtags) == 0 {
		return Tag{}, newErr("language tag must not be empty")
	}
	if strings.EqualFold(subtags[0], "x") {
		if len(consumePrivateUse(subtags)) != 0 {
			return Tag{}, newErr("malformed private-use tag: " + raw)
		}
		return Tag{raw: raw}, nil
	}
	if err := validateLanguage(subtags[0]); err != nil {
		return Tag{}, err
	}
	rest := subtags[1:]

	rest = consumeOptional(rest, isScriptSubtag)
	rest = consumeOptional(rest, isRegionSubtag)
	rest = consumeWhile(rest, isVariantSubtag)
	rest = consumeExtensions(rest)
	rest = consumePrivateUse(rest)

	if len(rest) != 0 {
		return Tag{}, newErr("language tag has unrecognized trailing subtags: " + strings.Join(rest, "-"))
	}
	return Tag{raw: raw}, nil
}

// String returns the tag exactly as it was parsed, case preserved.
func (t Tag) String() string { return t.raw }

// AsStr is an alias for String, matching the accessor name used elsewhere
// in this module's node and literal rendering code.
func (t Tag) AsStr() string { return t.raw }

// Equal compares two tags case-insensitively, per RFC 5646 Section 2.1.1:
// tag comparison is ASCII case-insensitive even though display form
// preserves case.
func (t Tag) Equal(o Tag) bool {
	return strings.EqualFold(t.raw, o.raw)
}

// newErr reports a language-tag shape violation using this module's shared
// error taxonomy: a malformed tag is a domain-level defect the same way an
// out-of-range port or an invalid blank-node id is, not a distinct kind of
// failure specific to this package.
func newErr(msg string) error {
	return &iri.ParseError{Kind: iri.KindDomain, Message: "language tag: " + msg, Offset: -1}
}

func validateLanguage(s string) error {
	n := len(s)
	switch {
	case n == 1 && s == "x":
		return nil // bare private-use tag "x-..." has no base language
	case n >= 2 && n <= 3 && isAllAlpha(s):
		return nil
	case n >= 5 && n <= 8 && isAllAlpha(s):
		return nil // registered reserved long language subtags
	case n == 4:
		return newErr("4-letter primary language subtags are reserved and unused")
	default:
		return newErr("invalid primary language subtag: " + s)
	}
}

func isScriptSubtag(s string) bool {
	return len(s) == 4 && isAllAlpha(s)
}

func isRegionSubtag(s string) bool {
	if len(s) == 2 && isAllAlpha(s) {
		return true
	}
	if len(s) == 3 && isAllDigit(s) {
		return true
	}
	return false
}

func isVariantSubtag(s string) bool {
	if len(s) >= 5 && len(s) <= 8 && isAllAlnum(s) {
		return true
	}
	if len(s) == 4 && isASCIIDigit(rune(s[0])) && isAllAlnum(s) {
		return true
	}
	return false
}

func consumeOptional(subtags []string, pred func(string) bool) []string {
	if len(subtags) > 0 && pred(subtags[0]) {
		return subtags[1:]
	}
	return subtags
}

func consumeWhile(subtags []string, pred func(string) bool) []string {
	i := 0
	for i < len(subtags) && pred(subtags[i]) {
		i++
	}
	return subtags[i:]
}

// consumeExtensions consumes zero or more "singleton subtag+" extension
// sequences (RFC 5646 Section 2.2.6): a single alphanumeric character other
// than "x", followed by one or more 2-8 character alphanumeric subtags.
func consumeExtensions(subtags []string) []string {
	for len(subtags) > 0 {
		s := subtags[0]
		if len(s) != 1 || !isAllAlnum(s) || strings.EqualFold(s, "x") {
			break
		}
		rest := subtags[1:]
		start := len(rest)
		rest = consumeWhile(rest, func(t string) bool {
			return len(t) >= 2 && len(t) <= 8 && isAllAlnum(t)
		})
		if len(rest) == start {
			break // a singleton must be followed by at least one subtag
		}
		subtags = rest
	}
	return subtags
}

// consumePrivateUse consumes an optional "x" followed by one or more 1-8
// character alphanumeric subtags, running to the end of the tag.
func consumePrivateUse(subtags []string) []string {
	if len(subtags) == 0 || !strings.EqualFold(subtags[0], "x") {
		return subtags
	}
	rest := subtags[1:]
	start := len(rest)
	rest = consumeWhile(rest, func(t string) bool {
		return len(t) >= 1 && len(t) <= 8 && isAllAlnum(t)
	})
	if len(rest) == start {
		return subtags // malformed; let the caller report the leftover "x"
	}
	return rest
}

func isAllAlpha(s string) bool {
	for _, r := range s {
		if !isASCIILetter(r) {
			return false
		}
	}
	return true
}

func isAllDigit(s string) bool {
	for _, r := range s {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

func isAllAlnum(s string) bool {
	for _, r := range s {
		if !isASCIILetter(r) && !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func isASCIIDigit(r rune) bool  { return '0' <= r && r <= '9' }
