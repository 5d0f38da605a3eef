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

import "strings"

// The generic, ecosystem-independent normalization rules. They run before
// any type-specific rule and are idempotent: normalizing an already
// normalized component is a no-op.

// normalizeType trims and lowercases a purl type.
func normalizeType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeName trims a package name. Case handling is type-specific and
// left to the type rules.
func normalizeName(s string) string {
	return strings.TrimSpace(s)
}

// normalizeVersion trims a version. Versions are otherwise opaque here.
func normalizeVersion(s string) string {
	return strings.TrimSpace(s)
}

// normalizeNamespace applies purl path normalization to a namespace.
func normalizeNamespace(s string) string {
	return normalizePath(s, nil)
}

// normalizeSubpath applies purl path normalization to a subpath and
// additionally drops ".", ".." and whitespace-only segments.
func normalizeSubpath(s string) string {
	return normalizePath(s, isMeaningfulSubpathSegment)
}

// normalizePath strips leading and trailing slashes, collapses repeated
// slashes by dropping empty segments, and drops any segment the optional
// keep predicate rejects.
func normalizePath(s string, keep func(string) bool) string {
	if s == "" {
		return ""
	}
	segments := make([]string, 0, strings.Count(s, "/")+1)
	for _, segment := range strings.Split(s, "/") {
		if segment == "" {
			continue
		}
		if keep != nil && !keep(segment) {
			continue
		}
		segments = append(segments, segment)
	}
	return strings.Join(segments, "/")
}

// isMeaningfulSubpathSegment rejects the segments a subpath may not carry:
// ".", ".." and segments consisting only of whitespace.
func isMeaningfulSubpathSegment(segment string) bool {
	return segment != "." && segment != ".." && strings.TrimSpace(segment) != ""
}

// normalizeQualifiers rebuilds the qualifiers map with lowercase keys and
// trimmed values, dropping any entry whose trimmed value is empty. Keys that
// collide after lowercasing collapse to a single entry. It returns nil
// rather than an empty map when nothing remains, so an absent component and
// an empty one are the same thing.
func normalizeQualifiers(q Qualifiers) Qualifiers {
	if len(q) == 0 {
		return nil
	}
	out := make(Qualifiers, len(q))
	for key, value := range q {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out[strings.ToLower(key)] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
