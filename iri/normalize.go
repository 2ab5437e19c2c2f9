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

import "golang.org/x/text/unicode/norm"

// ParseNormalized applies Unicode NFC normalization to s before parsing it,
// per RFC 3987 Section 5.3.2.2's recommendation that IRIs be compared and
// stored in a normalized Unicode form. Two IRIs that differ only by
// Unicode normalization form parse to equal values under this entry point.
func ParseNormalized(s string) (Iri, error) {
	return Parse(norm.NFC.String(s))
}

// ParseNormalizedAbsolute is the AbsoluteIri analogue of ParseNormalized.
func ParseNormalizedAbsolute(s string) (AbsoluteIri, error) {
	return ParseAbsolute(norm.NFC.String(s))
}
