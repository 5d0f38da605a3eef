/*
Copyright 2026 Purl Authors

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

package purl

import (
	"net/url"
	"strings"
	"sync"
)

const upperhex = "0123456789ABCDEF"

// decodeComponent percent-decodes the raw text of a single purl component.
// A malformed escape sequence yields a *ValidationError scoped to the
// component. A "+" is a literal plus sign here; only qualifier text uses the
// form-style space substitution.
func decodeComponent(component, raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", &ValidationError{
			Component: component,
			Message:   "unable to decode " + component + " component",
		}
	}
	return decoded, nil
}

// decodeQualifierText percent-decodes a single qualifier key or value
// form-style, so "+" reads as a space. The what argument names the component
// in the error on a malformed escape sequence.
func decodeQualifierText(what, raw string) (string, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", &ValidationError{
			Component: "qualifiers",
			Message:   "unable to decode " + what,
		}
	}
	return decoded, nil
}

// encodeComponent percent-encodes a component value into b, leaving the
// characters of keep literal. Purl components keep certain structurally
// significant characters unescaped: ":" in name and version, ":" and "/" in
// namespace and subpath.
func encodeComponent(b *strings.Builder, value, keep string) {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isComponentSafe(c) || strings.IndexByte(keep, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
}

// encodeQualifiers writes the canonical query-string form of the qualifiers
// into b. Keys are collated; the ordering is part of the canonical form, not
// an implementation detail.
func encodeQualifiers(b *strings.Builder, q Qualifiers) {
	for i, key := range sortedKeys(q) {
		if i > 0 {
			b.WriteByte('&')
		}
		encodeQualifierText(b, key)
		b.WriteByte('=')
		encodeQualifierText(b, q[key])
	}
}

// scratchPool holds reusable builders for the isolated qualifier-encode
// path, which runs hot when scanning large package sets.
var scratchPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

// EncodeQualifierValue percent-encodes a single qualifier key or value the
// way the canonical qualifier form does: form-style, except that a space
// encodes as "%20" rather than "+" and a literal plus sign as "%2B", so plus
// signs are never confused with encoded spaces.
func EncodeQualifierValue(value string) string {
	b := scratchPool.Get().(*strings.Builder)
	encodeQualifierText(b, value)
	encoded := b.String()
	b.Reset()
	scratchPool.Put(b)
	return encoded
}

// encodeQualifierText writes one form-encoded qualifier key or value into b,
// with the %20 space and %2B plus substitutions applied.
func encodeQualifierText(b *strings.Builder, value string) {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isFormSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
}
