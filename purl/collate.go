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
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator returns the process-wide comparator used to order qualifier keys
// in the canonical form. Building a collator is expensive, so it is built
// once on first use; a redundant concurrent build would yield the same value.
var collator = sync.OnceValue(func() *collate.Collator {
	return collate.New(language.Und)
})

// sortedKeys returns the qualifier keys in canonical collation order.
func sortedKeys(q Qualifiers) []string {
	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, collator().CompareString)
	return keys
}
