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
	"sort"
	"strings"
)

// Query is a sorted multimap from decoded key to a deduplicated, sorted set
// of decoded values. Sorting both keys (on render) and each key's value set
// is load-bearing: it is what makes two Querys built from differently
// ordered input strings compare equal, per the normalization rule that
// query parameter order is not significant.
type Query struct {
	m map[string][]string
}

// NewQuery returns an empty Query.
func NewQuery() Query {
	return Query{m: map[string][]string{}}
}

// Add returns a new Query with a key/value pair inserted, keeping each key's
// value set sorted and free of duplicates. The receiver is left unchanged.
func (q Query) Add(key, value string) Query {
	vals := q.m[key]
	idx := sort.SearchStrings(vals, value)
	if idx < len(vals) && vals[idx] == value {
		return q
	}
	m := make(map[string][]string, len(q.m)+1)
	for k, v := range q.m {
		m[k] = v
	}
	nv := make([]string, 0, len(vals)+1)
	nv = append(append(append(nv, vals[:idx]...), value), vals[idx:]...)
	m[key] = nv
	return Query{m: m}
}

// Values returns the sorted, deduplicated values associated with key.
func (q Query) Values(key string) []string {
	return append([]string(nil), q.m[key]...)
}

// Has reports whether key is present in q.
func (q Query) Has(key string) bool {
	_, ok := q.m[key]
	return ok
}

// Keys returns every key in q, sorted.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q.m))
	for k := range q.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether q has no keys.
func (q Query) IsEmpty() bool { return len(q.m) == 0 }

// Equal reports whether two Querys hold the same key/value-set pairs.
func (q Query) Equal(other Query) bool {
	if len(q.m) != len(other.m) {
		return false
	}
	for k, vals := range q.m {
		ovals, ok := other.m[k]
		if !ok || len(vals) != len(ovals) {
			return false
		}
		for i := range vals {
			if vals[i] != ovals[i] {
				return false
			}
		}
	}
	return true
}

// render writes the canonical serialization of q: keys sorted
// lexicographically, each key repeated once per value in its sorted value
// set, joined with "&" and "key=value" (or bare "key" for an empty value).
func (q Query) render(encode func(string) string) string {
	keys := q.Keys()
	var b strings.Builder
	first := true
	for _, k := range keys {
		for _, v := range q.m[k] {
			if !first {
				b.WriteByte('&')
			}
			first = false
			b.WriteString(encode(k))
			if v != "" {
				b.WriteByte('=')
				b.WriteString(encode(v))
			}
		}
	}
	return b.String()
}

// AsString renders q in IRI (UTF-8) form.
func (q Query) AsString() string {
	return q.render(func(s string) string { return pctEncodeString(s, safeQuery, false) })
}

// AsURI renders q in ASCII-only URI form.
func (q Query) AsURI() string {
	return q.render(func(s string) string { return pctEncodeString(s, safeQuery, true) })
}

// ParseQuery parses a raw (percent-encoded) query string of the form
// "k1=v1&k2&k3=v3" into a Query, percent-decoding each key and value.
func ParseQuery(raw string) (Query, error) {
	q := NewQuery()
	if raw == "" {
		return q, nil
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		var rawKey, rawVal string
		if idx := strings.IndexByte(pair, '='); idx >= 0 {
			rawKey, rawVal = pair[:idx], pair[idx+1:]
		} else {
			rawKey = pair
		}
		key, err := pctDecode(rawKey)
		if err != nil {
			return Query{}, err
		}
		val, err := pctDecode(rawVal)
		if err != nil {
			return Query{}, err
		}
		q = q.Add(key, val)
	}
	return q, nil
}
