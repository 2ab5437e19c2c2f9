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

package langtag

import "testing"

func TestParseValidTags(t *testing.T) {
	valid := []string{
		"en",
		"en-US",
		"fr-CA",
		"zh-Hans-CN",
		"sr-Latn-RS",
		"de-DE-1996",
		"es-419",
		"xx-Qqqq-ZZ", // shape-only: unregistered subtags must still parse
		"en-a-bbb-x-a",
		"x-private",
		"i-default",  // grandfathered (RFC 5646 Section 2.2.9)
		"sgn-BE-FR",  // grandfathered
	}
	for _, s := range valid {
		if _, err := Parse(s); err != nil {
			t.Errorf("Parse(%q) failed: %v", s, err)
		}
	}
}

func TestParseInvalidTags(t *testing.T) {
	invalid := []string{
		"",
		"-en",
		"en--US",
		"abcd",    // 4-letter primary language subtag is reserved
		"en-1",    // region must be 2 alpha or 3 digit
		"en-US-",  // trailing empty subtag
		"a-",      // one-letter primary language subtag, then an empty subtag
		"en-toolongsubtagthatexceedseightchars-US",
	}
	for _, s := range invalid {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should have failed", s)
		}
	}
}

func TestTagStringPreservesCase(t *testing.T) {
	tag, err := Parse("En-uS")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := tag.String(); got != "En-uS" {
		t.Errorf("String() = %q, want En-uS", got)
	}
	if got := tag.AsStr(); got != "En-uS" {
		t.Errorf("AsStr() = %q, want En-uS", got)
	}
}

func TestParseGrandfatheredTagsPreserveCaseAndRender(t *testing.T) {
	tag, err := Parse("sgn-BE-FR")
	if err != nil {
		t.Fatalf("Parse(%q): %v", "sgn-BE-FR", err)
	}
	if got := tag.String(); got != "sgn-BE-FR" {
		t.Errorf("String() = %q, want sgn-BE-FR", got)
	}
}

func TestTagEqualIsCaseInsensitive(t *testing.T) {
	a, err := Parse("en-US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse("EN-us")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !a.Equal(b) {
		t.Error("tags differing only in case should be Equal")
	}

	c, err := Parse("fr-FR")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.Equal(c) {
		t.Error("tags for different languages should not be Equal")
	}
}
