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

// The generic, ecosystem-independent validation rules. Every validator
// returns a *ValidationError on failure; callers that only need a yes/no
// answer check the error against nil instead of inspecting it.

// ValidateType checks the generic purl type rules: the type is required,
// drawn from the charset [A-Za-z0-9.-], and must not start with a digit.
func ValidateType(purlType string) error {
	if purlType == "" {
		return errRequired("type")
	}
	if isASCIIDigit(purlType[0]) {
		return errComponent("type", "type %q cannot start with a number", purlType)
	}
	for i := 0; i < len(purlType); i++ {
		if !isTypeChar(purlType[i]) {
			return errComponent("type", "type %q contains an illegal character", purlType)
		}
	}
	return nil
}

// ValidateName checks that the name component is present.
func ValidateName(name string) error {
	if name == "" {
		return errRequired("name")
	}
	return nil
}

// ValidateQualifierKey checks a single qualifier key against the charset
// [A-Za-z0-9._-] and the no-leading-digit rule.
func ValidateQualifierKey(key string) error {
	if key == "" {
		return errComponent("qualifiers", "qualifier keys cannot be empty")
	}
	if isASCIIDigit(key[0]) {
		return errComponent("qualifiers", "qualifier %q cannot start with a number", key)
	}
	for i := 0; i < len(key); i++ {
		if !isQualifierKeyChar(key[i]) {
			return errComponent("qualifiers", "qualifier %q contains an illegal character", key)
		}
	}
	return nil
}

// ValidateQualifiers checks every key of a qualifiers map. A nil map is
// valid: qualifiers are an optional component.
func ValidateQualifiers(q Qualifiers) error {
	for key := range q {
		if err := ValidateQualifierKey(key); err != nil {
			return err
		}
	}
	return nil
}
