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

// Resolve implements RFC 3986 Section 5.2 reference resolution: ref is
// resolved against base, producing an absolute IRI. If ref is itself
// absolute it is returned with its path dot-segment-normalized and is
// otherwise untouched — resolving an absolute reference is the identity
// transform over its hierarchical part.
func Resolve(base AbsoluteIri, ref Iri) (AbsoluteIri, error) {
	if abs, ok := ref.(AbsoluteIri); ok {
		if u, ok := abs.(Url); ok {
			u.path = RemoveDotSegments(u.path)
			return u, nil
		}
		return abs, nil
	}
	rel, ok := ref.(RelativeIri)
	if !ok {
		return nil, newDomainError("unsupported reference type for resolution")
	}
	switch b := base.(type) {
	case Url:
		return resolveAgainstURL(b, rel)
	case Urn:
		return resolveAgainstURN(b, rel)
	default:
		return nil, newDomainError("unsupported base type for resolution")
	}
}

func resolveAgainstURL(base Url, ref RelativeIri) (Url, error) {
	t := Url{scheme: base.scheme}

	if ref.HasAuthority() {
		t.hasAuthority = true
		t.authority = ref.Authority()
		t.path = RemoveDotSegments(ref.Path())
		if ref.HasQuery() {
			t.hasQuery = true
			t.query = ref.Query()
		}
	} else {
		t.hasAuthority = base.hasAuthority
		t.authority = base.authority
		if ref.Path().IsEmpty() {
			t.path = base.path
			if ref.HasQuery() {
				t.hasQuery = true
				t.query = ref.Query()
			} else {
				t.hasQuery = base.hasQuery
				t.query = base.query
			}
		} else {
			if StartsWithSlash(ref.Path()) {
				t.path = RemoveDotSegments(ref.Path())
			} else {
				t.path = RemoveDotSegments(mergePaths(base, ref.Path()))
			}
			if ref.HasQuery() {
				t.hasQuery = true
				t.query = ref.Query()
			}
		}
	}

	if ref.HasFragment() {
		t.hasFragment = true
		t.fragment = ref.Fragment()
	}
	return t, nil
}

// mergePaths implements RFC 3986 Section 5.3's merge step: a base with a
// defined authority and an empty path contributes a single "/"; otherwise
// the base's path up to (and including) its last "/" is prepended to the
// reference's path.
func mergePaths(base Url, refPath *Path) *Path {
	if base.hasAuthority && base.path.IsEmpty() {
		return PathSlash(refPath)
	}
	return Prepend(refPath, DropLastSegment(base.path))
}

// resolveAgainstURN resolves a relative reference against a URN base. URNs
// are opaque identifiers with no hierarchical path to merge against, so
// only a fragment-only (or component-free) relative reference is
// resolvable; a reference that names an authority, path, or query fails.
//
// Design decision: the base's r-component (and q-component) always carries
// through to the result, since a bare relative reference never supplies
// one of its own — there is no RFC 8141 rule to override, unlike a
// hierarchical URL's path or query.
func resolveAgainstURN(base Urn, ref RelativeIri) (Urn, error) {
	if ref.HasAuthority() || !ref.Path().IsEmpty() || ref.HasQuery() {
		return Urn{}, newDomainError("cannot resolve a hierarchical relative reference against a URN base")
	}
	t := base
	if ref.HasFragment() {
		t.hasFragment = true
		t.fragment = ref.Fragment()
	}
	return t, nil
}
