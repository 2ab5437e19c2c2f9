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

import "strings"

// Scheme is a non-empty ASCII token per RFC 3986:
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ), normalized to lowercase.
type Scheme struct {
	s string
}

// NewScheme validates and normalizes raw as a Scheme.
func NewScheme(raw string) (Scheme, error) {
	if raw == "" {
		return Scheme{}, newDomainError("scheme must not be empty")
	}
	if !isASCIILetter(rune(raw[0])) {
		return Scheme{}, newDomainError("scheme must start with an ASCII letter")
	}
	for i := 1; i < len(raw); i++ {
		c := rune(raw[i])
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return Scheme{}, newDomainError("scheme contains an invalid character")
		}
	}
	return Scheme{s: strings.ToLower(raw)}, nil
}

// String returns the lowercased scheme token.
func (s Scheme) String() string {
	return s.s
}

// defaultPorts maps a lowercased scheme name to the port RFC-registered as
// its default. A default port is dropped from the authority during
// normalization.
var defaultPorts = map[string]int{
	"ftp":     21,
	"ssh":     22,
	"telnet":  23,
	"smtp":    25,
	"domain":  53,
	"tftp":    69,
	"http":    80,
	"ws":      80,
	"pop3":    110,
	"nntp":    119,
	"imap":    143,
	"snmp":    161,
	"ldap":    389,
	"https":   443,
	"wss":     443,
	"imaps":   993,
	"nfs":     2049,
}

// isDefaultPort reports whether port is the registered default for scheme.
func isDefaultPort(scheme string, port int) bool {
	p, ok := defaultPorts[scheme]
	return ok && p == port
}
