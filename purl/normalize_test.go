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

//nolint:testpackage // This is a white-box test file for the generic normalization rules.
package purl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "npm", want: "npm"},
		{in: "  NPM\t", want: "npm"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := normalizeType(tt.in); got != tt.want {
			t.Errorf("normalizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeNamespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "github.com/user", want: "github.com/user"},
		{name: "leading and trailing slashes", in: "/github.com/user/", want: "github.com/user"},
		{name: "repeated slashes collapse", in: "a///b", want: "a/b"},
		{name: "dot segments survive in a namespace", in: "a/./b", want: "a/./b"},
		{name: "empty", in: "", want: ""},
		{name: "only slashes", in: "///", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeNamespace(tt.in); got != tt.want {
				t.Errorf("normalizeNamespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSubpath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "lib/parser", want: "lib/parser"},
		{name: "dot segments dropped", in: "./a/../b/.", want: "a/b"},
		{name: "whitespace-only segment dropped", in: "a/  /b", want: "a/b"},
		{name: "interior spaces kept", in: "a/b c/d", want: "a/b c/d"},
		{name: "only dots", in: "./..", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeSubpath(tt.in); got != tt.want {
				t.Errorf("normalizeSubpath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeQualifiers(t *testing.T) {
	tests := []struct {
		name string
		in   Qualifiers
		want Qualifiers
	}{
		{
			name: "keys lowercase and values trimmed",
			in:   Qualifiers{"Arch": " amd64 ", "OS": "linux"},
			want: Qualifiers{"arch": "amd64", "os": "linux"},
		},
		{
			name: "empty trimmed values are dropped",
			in:   Qualifiers{"a": "1", "b": "   "},
			want: Qualifiers{"a": "1"},
		},
		{
			name: "nothing left yields absent",
			in:   Qualifiers{"a": ""},
			want: nil,
		},
		{
			name: "nil stays absent",
			in:   nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, normalizeQualifiers(tt.in)); diff != "" {
				t.Errorf("normalizeQualifiers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestNormalize_Idempotent verifies that normalizing an already normalized
// component is a no-op, component by component.
func TestNormalize_Idempotent(t *testing.T) {
	types := []string{"npm", "golang", "a-b.c"}
	for _, s := range types {
		if got := normalizeType(normalizeType(s)); got != normalizeType(s) {
			t.Errorf("normalizeType is not idempotent for %q", s)
		}
	}
	paths := []string{"a/b", "github.com/user", ""}
	for _, s := range paths {
		once := normalizeNamespace(s)
		if got := normalizeNamespace(once); got != once {
			t.Errorf("normalizeNamespace is not idempotent for %q", s)
		}
		onceSub := normalizeSubpath(s)
		if got := normalizeSubpath(onceSub); got != onceSub {
			t.Errorf("normalizeSubpath is not idempotent for %q", s)
		}
	}
	q := Qualifiers{"arch": "amd64"}
	once := normalizeQualifiers(q)
	if diff := cmp.Diff(once, normalizeQualifiers(once)); diff != "" {
		t.Errorf("normalizeQualifiers is not idempotent:\n%s", diff)
	}
}
