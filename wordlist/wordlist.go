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

// Package wordlist exposes the static word lists the purl type rules consume:
// the builtin module names of the Node.js runtime, which npm package names
// may not collide with, and the legacy npm package names that predate the
// modern naming restrictions and are exempt from them.
//
// Both lists ship embedded in the binary and load lazily on first use. The
// returned sets are shared, process-wide and read-only; callers must not
// mutate them.
package wordlist

import (
	_ "embed" // Note the blank import for go:embed
	"strings"
	"sync"
)

//go:embed node-builtins
var builtinData string

//go:embed legacy-names
var legacyData string

// fallbackBuiltins is the minimal builtin set used when the embedded data is
// unavailable, for example under a build that stripped the data file.
var fallbackBuiltins = []string{
	"assert", "buffer", "child_process", "cluster", "console", "crypto",
	"dgram", "dns", "events", "fs", "http", "https", "module", "net", "os",
	"path", "process", "querystring", "readline", "repl", "stream", "timers",
	"tls", "tty", "url", "util", "vm", "zlib",
}

// fallbackLegacy is the minimal legacy-name set used when the embedded data
// is unavailable.
var fallbackLegacy = []string{
	"Base64", "JSONStream", "NeXT", "RequireJS", "UglifyJS", "XMLHttpRequest",
}

var builtins = sync.OnceValue(func() map[string]struct{} {
	return load(builtinData, fallbackBuiltins)
})

var legacyNames = sync.OnceValue(func() map[string]struct{} {
	return load(legacyData, fallbackLegacy)
})

// Builtins returns the set of Node.js builtin module names. The set is
// shared and must be treated as read-only.
func Builtins() map[string]struct{} {
	return builtins()
}

// LegacyNames returns the set of npm package names exempt from the modern
// naming restrictions. The set is shared and must be treated as read-only.
func LegacyNames() map[string]struct{} {
	return legacyNames()
}

// IsBuiltinName reports whether name is a Node.js builtin module name.
// Builtin names are all lowercase; the caller lowercases first when it wants
// a case-insensitive answer.
func IsBuiltinName(name string) bool {
	_, ok := Builtins()[name]
	return ok
}

// IsLegacyName reports whether name is on the legacy-exempt list. The list
// is case-sensitive: the exemption exists precisely for names whose
// published casing differs from the modern lowercase rule.
func IsLegacyName(name string) bool {
	_, ok := LegacyNames()[name]
	return ok
}

// load parses line-oriented word data into a set, ignoring blank lines and
// "#" comments, and falls back to the given defaults when nothing was read.
func load(data string, fallback []string) map[string]struct{} {
	set := make(map[string]struct{}, 128)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = struct{}{}
	}
	if len(set) == 0 {
		for _, word := range fallback {
			set[word] = struct{}{}
		}
	}
	return set
}
