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

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isTypeChar checks if a byte is legal in a purl type: letters, digits,
// "." and "-".
func isTypeChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '.' || c == '-'
}

// isQualifierKeyChar checks if a byte is legal in a qualifier key: letters,
// digits, ".", "_" and "-".
func isQualifierKeyChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '.' || c == '_' || c == '-'
}

// isComponentSafe checks if a byte may stay literal when a purl component is
// percent-encoded. The set matches the characters a JavaScript
// encodeURIComponent leaves untouched, which the canonical purl form is
// defined against.
func isComponentSafe(c byte) bool {
	if isASCIILetter(c) || isASCIIDigit(c) {
		return true
	}
	switch c {
	case '-', '_', '.', '~', '!', '*', '\'', '(', ')':
		return true
	}
	return false
}

// isFormSafe checks if a byte may stay literal in form-style encoding: the
// unreserved set of RFC 3986. Everything else, space and plus included, is
// percent-encoded in canonical qualifier text.
func isFormSafe(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '_' || c == '.' || c == '~'
}
