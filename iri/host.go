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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Host is the sum type of the three host forms RFC 3986/3987 allow in an
// authority: a dotted-decimal IPv4 address, a bracketed IPv6 address, or a
// named (DNS or opaque registered-name) host.
type Host interface {
	isHost()
	// AsString renders the host in IRI (UTF-8) form.
	AsString() string
	// AsURI renders the host in URI (ASCII-only) form.
	AsURI() string
	Equal(Host) bool
}

// IPv4Host is an IPv4 address, stored as its four address bytes. The
// fixed length is a type-system invariant, not a runtime check.
type IPv4Host struct {
	Bytes [4]byte
}

func (IPv4Host) isHost() {}

// AsString renders the address in dotted-decimal form.
func (h IPv4Host) AsString() string {
	return fmt.Sprintf("%d.%d.%d.%d", h.Bytes[0], h.Bytes[1], h.Bytes[2], h.Bytes[3])
}

// AsURI is identical to AsString: an IPv4 literal is always pure ASCII.
func (h IPv4Host) AsURI() string { return h.AsString() }

// Equal reports whether other is an equal IPv4Host.
func (h IPv4Host) Equal(other Host) bool {
	o, ok := other.(IPv4Host)
	return ok && h.Bytes == o.Bytes
}

// IPv6Host is an IPv6 address, stored as its sixteen address bytes.
type IPv6Host struct {
	Bytes [16]byte
}

func (IPv6Host) isHost() {}

// AsString renders the address in bracketed, RFC 5952-style compressed
// hexadecimal form.
func (h IPv6Host) AsString() string {
	return "[" + formatIPv6(h.Bytes) + "]"
}

// AsURI is identical to AsString: an IPv6 literal is always pure ASCII.
func (h IPv6Host) AsURI() string { return h.AsString() }

// Equal reports whether other is an equal IPv6Host.
func (h IPv6Host) Equal(other Host) bool {
	o, ok := other.(IPv6Host)
	return ok && h.Bytes == o.Bytes
}

// formatIPv6 renders addr using the RFC 5952 "::"-compression rule: the
// longest run of two or more consecutive zero groups is elided, preferring
// the leftmost run on a tie.
func formatIPv6(addr [16]byte) string {
	var groups [8]uint16
	for i := 0; i < 8; i++ {
		groups[i] = uint16(addr[2*i])<<8 | uint16(addr[2*i+1])
	}

	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if groups[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		bestStart = -1
	}

	var b strings.Builder
	for i := 0; i < 8; i++ {
		if i == bestStart {
			b.WriteString("::")
			i += bestLen - 1
			continue
		}
		if i > 0 && b.Len() > 0 && !strings.HasSuffix(b.String(), ":") {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
	return b.String()
}

// NamedHost is a DNS name or an opaque registered-name host, stored
// decoded (UTF-8) and lowercase-normalized.
type NamedHost struct {
	Name string
}

func (NamedHost) isHost() {}

// AsString renders the decoded, lowercased host name verbatim.
func (h NamedHost) AsString() string {
	return h.Name
}

// AsURI renders the host for the ASCII-only URI form. Pure-ASCII names are
// returned unchanged; names with non-ASCII labels are projected through
// IDNA ToASCII (punycode) so the result is DNS-resolvable, falling back to
// plain percent-encoding for strings IDNA rejects (e.g. opaque
// registered-names that merely happen to contain non-ASCII characters but
// are not intended as a DNS name).
func (h NamedHost) AsURI() string {
	if isASCIIOnly(h.Name) {
		return h.Name
	}
	if ascii, err := idna.Lookup.ToASCII(h.Name); err == nil {
		return ascii
	}
	return pctEncodeString(h.Name, safeNamedHost, true)
}

// Equal reports whether other is a NamedHost with the same decoded name.
func (h NamedHost) Equal(other Host) bool {
	o, ok := other.(NamedHost)
	return ok && h.Name == o.Name
}

func isASCIIOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// Port is an integer in [0, 65535]. Its string form never has leading
// zeros.
type Port struct {
	Value int
}

// NewPort validates v as a Port.
func NewPort(v int) (Port, error) {
	if v < 0 || v > 65535 {
		return Port{}, newDomainError("port out of range [0, 65535]")
	}
	return Port{Value: v}, nil
}

// String renders the port without leading zeros.
func (p Port) String() string {
	return strconv.Itoa(p.Value)
}

// UserInfo is a thin wrapper around a validated, decoded (UTF-8) user-info
// string.
type UserInfo struct {
	s string
}

// NewUserInfo wraps an already-decoded user-info string.
func NewUserInfo(decoded string) UserInfo {
	return UserInfo{s: decoded}
}

// String returns the decoded user-info string.
func (u UserInfo) String() string { return u.s }

// AsURI percent-encodes the user-info string for the ASCII-only URI form.
func (u UserInfo) AsURI() string { return pctEncodeString(u.s, safeUserInfo, true) }

// AsIRI percent-encodes only the characters unsafe even in the IRI form.
func (u UserInfo) AsIRI() string { return pctEncodeString(u.s, safeUserInfo, false) }

// Authority is the userinfo?@host:port? portion of a URL.
type Authority struct {
	UserInfo UserInfo
	HasUser  bool
	Host     Host
	Port     Port
	HasPort  bool
}

// Equal reports whether two authorities are structurally equal.
func (a Authority) Equal(b Authority) bool {
	if a.HasUser != b.HasUser || (a.HasUser && a.UserInfo != b.UserInfo) {
		return false
	}
	if a.HasPort != b.HasPort || (a.HasPort && a.Port != b.Port) {
		return false
	}
	if a.Host == nil || b.Host == nil {
		return a.Host == nil && b.Host == nil
	}
	return a.Host.Equal(b.Host)
}

// AsString renders the authority in IRI form (no leading "//").
func (a Authority) AsString() string {
	var b strings.Builder
	if a.HasUser {
		b.WriteString(a.UserInfo.AsIRI())
		b.WriteByte('@')
	}
	if a.Host != nil {
		b.WriteString(a.Host.AsString())
	}
	if a.HasPort {
		b.WriteByte(':')
		b.WriteString(a.Port.String())
	}
	return b.String()
}

// AsURI renders the authority in ASCII-only URI form (no leading "//").
func (a Authority) AsURI() string {
	var b strings.Builder
	if a.HasUser {
		b.WriteString(a.UserInfo.AsURI())
		b.WriteByte('@')
	}
	if a.Host != nil {
		b.WriteString(a.Host.AsURI())
	}
	if a.HasPort {
		b.WriteByte(':')
		b.WriteString(a.Port.String())
	}
	return b.String()
}
