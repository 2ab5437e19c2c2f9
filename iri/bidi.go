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
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// validateBidiComponent checks a decoded component string against the
// structural Bidi Rule of RFC 3987, Section 4.1:
//
// Rule 1: a component must not mix right-to-left and left-to-right
// characters.
// Rule 2: a component containing right-to-left characters must start and
// end with a right-to-left character.
func validateBidiComponent(component string) error {
	if component == "" {
		return nil
	}

	runes := []rune(component)
	var hasLTR, hasRTL bool
	for _, r := range runes {
		switch class, _ := bidi.LookupRune(r); class.Class() {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		}
	}

	if hasLTR && hasRTL {
		return newDomainError("component mixes right-to-left and left-to-right characters")
	}
	if !hasRTL {
		return nil
	}

	firstClass, _ := bidi.LookupRune(runes[0])
	if c := firstClass.Class(); c != bidi.R && c != bidi.AL {
		return newDomainError("right-to-left component must start with a right-to-left character")
	}
	lastClass, _ := bidi.LookupRune(runes[len(runes)-1])
	if c := lastClass.Class(); c != bidi.R && c != bidi.AL {
		return newDomainError("right-to-left component must end with a right-to-left character")
	}
	return nil
}

// validateBidiHost applies the Bidi Rule label by label, the way RFC 3987
// Section 4.2 requires for a dot-separated host: each label is its own
// component for Bidi purposes. IP literals are exempt.
func validateBidiHost(host string) error {
	if strings.HasPrefix(host, "[") {
		return nil
	}
	for _, label := range strings.Split(host, ".") {
		if err := validateBidiComponent(label); err != nil {
			return err
		}
	}
	return nil
}
