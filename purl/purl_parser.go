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
	"regexp"
	"strings"
)

var (
	// otherSchemePattern matches text that already carries some URI scheme
	// with an authority marker, such as "https://". Such text is never
	// retried with the purl scheme prepended.
	otherSchemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)
	// bareTypePattern matches text shaped like "<tag>/<rest>", the form a
	// purl takes when its author forgot the "pkg:" scheme.
	bareTypePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.-]*/`)
)

// Components holds the six raw components split out of a purl string. Every
// component is percent-decoded but not yet normalized or validated; raw
// qualifier pairs keep their order and any duplicate keys.
type Components struct {
	Type       string
	Namespace  string
	Name       string
	Version    string
	Qualifiers []Qualifier
	Subpath    string
}

// FromString parses a purl string into a fully validated PackageURL. It is
// the inverse of (*PackageURL).String up to canonical form.
func FromString(s string) (*PackageURL, error) {
	c, err := SplitString(s)
	if err != nil {
		return nil, err
	}
	return New(c.Type, c.Namespace, c.Name, c.Version, QualifiersFromPairs(c.Qualifiers), c.Subpath)
}

// SplitString tokenizes a purl string into its six raw components without
// applying generic or ecosystem validation. Blank input, including
// whitespace-only input, yields zero Components and no error.
//
// If the text does not start with the purl scheme, does not look like some
// other URI, and does look like "<type>/<rest>", the purl scheme is
// prepended before parsing. Extra slashes right after the scheme separator
// are ignored: a purl has no authority section, so "pkg://npm/x" means
// "pkg:npm/x". Text carrying userinfo ("user:pass@host") is rejected.
func SplitString(s string) (Components, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Components{}, nil
	}
	if !strings.HasPrefix(trimmed, Scheme+":") &&
		!otherSchemePattern.MatchString(trimmed) &&
		bareTypePattern.MatchString(trimmed) {
		trimmed = Scheme + ":" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return Components{}, &ValidationError{Message: "failed to parse as a url"}
	}
	if u.Scheme != Scheme {
		return Components{}, &ValidationError{Component: "type", Message: `missing required "pkg" scheme component`}
	}
	if u.User != nil {
		return Components{}, &ValidationError{Message: `cannot contain a "user:pass@host:port" authority`}
	}

	// "pkg://npm/x" parses with an authority; fold the host back into the
	// path so it reads the same as the opaque "pkg:npm/x" form.
	rawPath := u.Opaque
	if rawPath == "" {
		rawPath = u.Host + u.EscapedPath()
	}
	rawPath = strings.TrimLeft(rawPath, "/")

	var c Components
	rest := ""
	if slash := strings.IndexByte(rawPath, '/'); slash >= 0 {
		rest = rawPath[slash+1:]
		rawPath = rawPath[:slash]
	}
	if c.Type, err = decodeComponent("type", rawPath); err != nil {
		return Components{}, err
	}

	if at := versionSeparator(c.Type, rest); at >= 0 {
		if c.Version, err = decodeComponent("version", rest[at+1:]); err != nil {
			return Components{}, err
		}
		rest = rest[:at]
	}
	name := rest
	if slash := strings.LastIndexByte(rest, '/'); slash >= 0 {
		name = rest[slash+1:]
		if c.Namespace, err = decodeComponent("namespace", rest[:slash]); err != nil {
			return Components{}, err
		}
	}
	if c.Name, err = decodeComponent("name", name); err != nil {
		return Components{}, err
	}

	if c.Qualifiers, err = parseQualifiers(u.RawQuery); err != nil {
		return Components{}, err
	}
	if c.Subpath, err = decodeComponent("subpath", u.EscapedFragment()); err != nil {
		return Components{}, err
	}
	return c, nil
}

// versionSeparator returns the index of the "@" separating the version from
// the rest of the path, or -1 when there is no version. The npm type permits
// nested version-constraint suffixes such as "name@1.2.3(dep@4.5.6)", so for
// npm the first "@" past the possible leading scope marker is used; every
// other type uses the last "@". An "@" immediately preceded by "/" is a path
// character, never a version separator; the first byte of rest always follows
// the slash after the type, so an "@" there counts as slash-preceded too.
func versionSeparator(purlType, rest string) int {
	if rest == "" {
		return -1
	}
	at := -1
	if strings.ToLower(purlType) == TypeNPM {
		if i := strings.IndexByte(rest[1:], '@'); i >= 0 {
			at = i + 1
		}
	} else {
		at = strings.LastIndexByte(rest, '@')
	}
	if at == 0 || (at > 0 && rest[at-1] == '/') {
		return -1
	}
	return at
}

// parseQualifiers splits a raw query string into ordered key=value pairs.
// Duplicate keys append rather than overwrite at this stage; the later
// normalization collapses them, last occurrence wins. Keys and values are
// decoded form-style, so "+" reads as a space.
func parseQualifiers(rawQuery string) ([]Qualifier, error) {
	if rawQuery == "" {
		return nil, nil
	}
	var pairs []Qualifier
	for _, item := range strings.Split(rawQuery, "&") {
		if item == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(item, "=")
		key, err := decodeQualifierText("qualifier key", rawKey)
		if err != nil {
			return nil, err
		}
		value, err := decodeQualifierText("qualifier value", rawValue)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Qualifier{Key: key, Value: value})
	}
	return pairs, nil
}
