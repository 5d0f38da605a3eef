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

// Package purl provides types and functions for working with Package URLs
// ("purls"), the `pkg:<type>/<namespace>/<name>@<version>?<qualifiers>#<subpath>`
// identifier format used to name software packages across ecosystems
// (npm, pypi, maven, golang, cargo, gem, nuget, composer, ...).
//
// The package offers one main type:
//   - PackageURL: an immutable, fully validated purl. Every constructor
//     (New, FromString, FromMap, FromJSON) normalizes each component with the
//     generic purl rules, applies the ecosystem-specific rules registered for
//     the purl type, and either returns a valid instance or an error. No
//     partially valid instance is ever observable.
//
// Key features include:
//   - Strict parsing and validation of the purl text form, including the
//     scheme auto-prefix and authority-rejection quirks of the format.
//   - Per-ecosystem normalization and validation for 20+ known purl types;
//     unknown types are accepted with generic validation only.
//   - Canonical serialization: qualifier keys are collated, spaces in
//     qualifier values encode as %20 and literal plus signs as %2B, so that
//     String and FromString are mutual inverses up to canonical form.
//   - Conversion to and from plain maps and JSON text.
package purl

import (
	"encoding/json"
	"strings"
)

// Scheme is the fixed URL scheme every purl starts with.
const Scheme = "pkg"

// Qualifiers holds the key=value qualifier pairs of a purl. Keys are unique
// and lowercase in a validated PackageURL. The map held by a PackageURL must
// be treated as read-only; use Map to obtain a mutable copy.
type Qualifiers map[string]string

// Map returns a copy of the qualifiers as a plain map, or nil when there are
// none. Mutating the copy does not affect the PackageURL it came from.
func (q Qualifiers) Map() map[string]string {
	if len(q) == 0 {
		return nil
	}
	m := make(map[string]string, len(q))
	for k, v := range q {
		m[k] = v
	}
	return m
}

// Qualifier is a single raw key=value pair as it appeared in a purl string.
// The tokenizer keeps every occurrence, including duplicate keys; collapsing
// duplicates (last occurrence wins) happens during normalization.
type Qualifier struct {
	Key   string
	Value string
}

// QualifiersFromPairs collapses an ordered list of raw qualifier pairs into a
// Qualifiers map. Keys are lowercased and a later duplicate key overwrites an
// earlier one. It returns nil when the list is empty.
func QualifiersFromPairs(pairs []Qualifier) Qualifiers {
	if len(pairs) == 0 {
		return nil
	}
	q := make(Qualifiers, len(pairs))
	for _, kv := range pairs {
		q[strings.ToLower(kv.Key)] = kv.Value
	}
	return q
}

// PackageURL is a validated purl. Instances are only built by the package
// constructors and are immutable by contract: callers must not modify the
// fields or the Qualifiers map after construction.
type PackageURL struct {
	// Type is the package ecosystem tag, for example "npm" or "maven".
	// Always present and lowercase.
	Type string
	// Namespace is a type-specific name prefix such as an npm scope, a Maven
	// group id, or a Docker owner. Empty when absent.
	Namespace string
	// Name is the package name. Always present.
	Name string
	// Version is the package version, an opaque string for most types.
	// Empty when absent.
	Version string
	// Qualifiers holds extra key=value metadata. Nil when absent.
	Qualifiers Qualifiers
	// Subpath is a path to a resource inside the package, relative to the
	// package root. Empty when absent.
	Subpath string
}

// New builds a PackageURL from raw components. Each component is normalized
// with the generic purl rules, then the ecosystem rules registered for the
// resulting type are applied. On any rule violation New returns a nil
// instance and a *ValidationError.
//
// The qualifiers map is copied; the caller keeps ownership of its argument.
func New(purlType, namespace, name, version string, qualifiers Qualifiers, subpath string) (*PackageURL, error) {
	p := &PackageURL{
		Type:       normalizeType(purlType),
		Namespace:  normalizeNamespace(namespace),
		Name:       normalizeName(name),
		Version:    normalizeVersion(version),
		Qualifiers: normalizeQualifiers(qualifiers),
		Subpath:    normalizeSubpath(subpath),
	}
	if err := ValidateType(p.Type); err != nil {
		return nil, err
	}
	if err := ValidateName(p.Name); err != nil {
		return nil, err
	}
	if err := ValidateQualifiers(p.Qualifiers); err != nil {
		return nil, err
	}
	if rule, ok := typeRules[p.Type]; ok {
		if rule.normalize != nil {
			rule.normalize(p)
		}
		if rule.validate != nil {
			if err := rule.validate(p); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// String returns the canonical text form of the purl.
func (p *PackageURL) String() string {
	var b strings.Builder
	b.Grow(len(p.Type) + len(p.Namespace) + len(p.Name) + len(p.Version) + len(p.Subpath) + 16)
	b.WriteString(Scheme)
	b.WriteByte(':')
	encodeComponent(&b, p.Type, "")
	b.WriteByte('/')
	if p.Namespace != "" {
		encodeComponent(&b, p.Namespace, ":/")
		b.WriteByte('/')
	}
	encodeComponent(&b, p.Name, ":")
	if p.Version != "" {
		b.WriteByte('@')
		encodeComponent(&b, p.Version, ":")
	}
	if len(p.Qualifiers) > 0 {
		b.WriteByte('?')
		encodeQualifiers(&b, p.Qualifiers)
	}
	if p.Subpath != "" {
		b.WriteByte('#')
		encodeComponent(&b, p.Subpath, ":/")
	}
	return b.String()
}

// Equal reports whether two purls have the same canonical form.
func (p *PackageURL) Equal(other *PackageURL) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.String() == other.String()
}

// ToMap converts the purl to a sparse plain map: absent components are
// omitted rather than present with empty values. Qualifiers, when present,
// appear as a fresh map[string]string under the "qualifiers" key.
func (p *PackageURL) ToMap() map[string]any {
	m := map[string]any{
		"type": p.Type,
		"name": p.Name,
	}
	if p.Namespace != "" {
		m["namespace"] = p.Namespace
	}
	if p.Version != "" {
		m["version"] = p.Version
	}
	if len(p.Qualifiers) > 0 {
		m["qualifiers"] = p.Qualifiers.Map()
	}
	if p.Subpath != "" {
		m["subpath"] = p.Subpath
	}
	return m
}

// FromMap builds a PackageURL from a plain map as produced by ToMap. String
// components must be strings; qualifiers may be given as a map[string]string,
// a Qualifiers map, a map[string]any with string values, or a query-form
// string such as "arch=amd64&os=linux". A structurally wrong value yields an
// *ArgumentError; rule violations yield a *ValidationError as in New.
func FromMap(m map[string]any) (*PackageURL, error) {
	if m == nil {
		return nil, &ArgumentError{Message: "Cannot construct a purl from a nil map."}
	}
	purlType, err := stringField(m, "type")
	if err != nil {
		return nil, err
	}
	namespace, err := stringField(m, "namespace")
	if err != nil {
		return nil, err
	}
	name, err := stringField(m, "name")
	if err != nil {
		return nil, err
	}
	version, err := stringField(m, "version")
	if err != nil {
		return nil, err
	}
	subpath, err := stringField(m, "subpath")
	if err != nil {
		return nil, err
	}
	qualifiers, err := qualifiersField(m)
	if err != nil {
		return nil, err
	}
	return New(purlType, namespace, name, version, qualifiers, subpath)
}

// stringField extracts an optional string component from a plain map.
func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ArgumentError{Message: "The \"" + key + "\" component must be a string."}
	}
	return s, nil
}

// qualifiersField extracts the qualifiers component from a plain map,
// accepting the several shapes FromMap documents.
func qualifiersField(m map[string]any) (Qualifiers, error) {
	v, ok := m["qualifiers"]
	if !ok || v == nil {
		return nil, nil
	}
	switch q := v.(type) {
	case Qualifiers:
		return q, nil
	case map[string]string:
		return q, nil
	case map[string]any:
		out := make(Qualifiers, len(q))
		for k, raw := range q {
			s, ok := raw.(string)
			if !ok {
				return nil, &ArgumentError{Message: "Qualifier values must be strings."}
			}
			out[k] = s
		}
		return out, nil
	case string:
		pairs, err := parseQualifiers(q)
		if err != nil {
			return nil, err
		}
		return QualifiersFromPairs(pairs), nil
	default:
		return nil, &ArgumentError{Message: "The \"qualifiers\" component must be a map or a query string."}
	}
}

// MarshalJSON implements the json.Marshaler interface, encoding the purl as
// its sparse plain-map form.
func (p *PackageURL) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}

// FromJSON builds a PackageURL from JSON text holding an object in the ToMap
// shape. Malformed JSON, or JSON that is not an object, yields an
// *ArgumentError wrapping the underlying cause.
func FromJSON(data []byte) (*PackageURL, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ArgumentError{Message: "Cannot parse the given text as a JSON purl object.", Err: err}
	}
	return FromMap(m)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes and
// fully validates the purl; on failure the receiver is left unchanged.
func (p *PackageURL) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(data)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}
