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

import "fmt"

// ValidationError is the error type for every purl rule violation: malformed
// percent-encoding, a missing scheme, a forbidden authority, illegal
// characters, a missing required component, or any ecosystem-specific rule
// failure. Messages are lowercase and unpunctuated and render behind the
// fixed "invalid purl:" marker.
type ValidationError struct {
	// Component names the purl component the violated rule belongs to.
	// It may be empty for violations of the overall purl shape.
	Component string
	// Message describes the violation.
	Message string
}

// Error returns the string representation of the validation error.
func (e *ValidationError) Error() string {
	return "invalid purl: " + e.Message
}

// ArgumentError is the error type for structurally wrong inputs at the
// public boundary, such as a non-string component in a plain map or
// malformed JSON text. It may wrap an underlying cause.
type ArgumentError struct {
	Message string
	Err     error
}

// Error returns the string representation of the argument error.
func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// errComponent builds a component-scoped ValidationError with a formatted
// message.
func errComponent(component, format string, args ...any) *ValidationError {
	return &ValidationError{Component: component, Message: fmt.Sprintf(format, args...)}
}

// errRequired reports a missing required component.
func errRequired(component string) *ValidationError {
	return errComponent(component, "%q is a required component", component)
}

// errRequiredForType reports a component some purl type insists on.
func errRequiredForType(purlType, component string) *ValidationError {
	return errComponent(component, "%s requires a %q component", purlType, component)
}

// errEmptyForType reports a component some purl type forbids.
func errEmptyForType(purlType, component string) *ValidationError {
	return errComponent(component, "%s %q component must be empty", purlType, component)
}
