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

//nolint:testpackage // This is a white-box test file so the loader can be exercised directly.
package wordlist

import (
	"sync"
	"testing"
)

func TestBuiltins(t *testing.T) {
	set := Builtins()
	if len(set) == 0 {
		t.Fatal("Builtins() is empty")
	}
	for _, name := range []string{"fs", "path", "http", "zlib", "worker_threads"} {
		if _, ok := set[name]; !ok {
			t.Errorf("Builtins() is missing %q", name)
		}
	}
	if _, ok := set["express"]; ok {
		t.Error("Builtins() contains a non-builtin name")
	}
}

func TestLegacyNames(t *testing.T) {
	set := LegacyNames()
	if len(set) == 0 {
		t.Fatal("LegacyNames() is empty")
	}
	if _, ok := set["JSONStream"]; !ok {
		t.Error("LegacyNames() is missing JSONStream")
	}
	// The list is case-sensitive on purpose.
	if _, ok := set["jsonstream"]; ok {
		t.Error("LegacyNames() should not contain the lowercase form")
	}
}

func TestIsBuiltinName(t *testing.T) {
	if !IsBuiltinName("fs") {
		t.Error("IsBuiltinName(\"fs\") = false")
	}
	if IsBuiltinName("FS") {
		t.Error("IsBuiltinName(\"FS\") = true; lookups are exact, callers lowercase first")
	}
	if IsBuiltinName("leftpad") {
		t.Error("IsBuiltinName(\"leftpad\") = true")
	}
}

func TestIsLegacyName(t *testing.T) {
	if !IsLegacyName("UglifyJS") {
		t.Error("IsLegacyName(\"UglifyJS\") = false")
	}
	if IsLegacyName("uglifyjs") {
		t.Error("IsLegacyName(\"uglifyjs\") = true, want case-sensitive lookup")
	}
}

// TestSharedInstances verifies the compute-once contract: repeated and
// concurrent accessors observe the same set instance.
func TestSharedInstances(t *testing.T) {
	first := Builtins()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Builtins(); len(got) != len(first) {
				t.Error("Builtins() returned a differently sized set")
			}
		}()
	}
	wg.Wait()
	if len(Builtins()) != len(first) {
		t.Error("Builtins() is not stable across calls")
	}
}

func TestLoad(t *testing.T) {
	set := load("a\n# comment\n\n  b  \n", []string{"z"})
	if len(set) != 2 {
		t.Fatalf("load() = %v, want 2 entries", set)
	}
	if _, ok := set["b"]; !ok {
		t.Error("load() did not trim surrounding whitespace")
	}

	fallback := load("# only comments\n", []string{"z"})
	if _, ok := fallback["z"]; !ok || len(fallback) != 1 {
		t.Errorf("load() fallback = %v, want just z", fallback)
	}
}
