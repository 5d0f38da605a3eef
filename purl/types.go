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
	"sort"
	"strings"
	"unicode"

	"golang.org/x/mod/semver"
	"golang.org/x/net/idna"

	"github.com/jplu/pkgurl/wordlist"
)

// The known purl type tags. A PackageURL may carry any tag that passes the
// generic type rules; these are the ones with registered ecosystem rules or
// common enough to deserve a name.
const (
	TypeAlpm        = "alpm"
	TypeAPK         = "apk"
	TypeBitbucket   = "bitbucket"
	TypeCargo       = "cargo"
	TypeCocoapods   = "cocoapods"
	TypeComposer    = "composer"
	TypeConan       = "conan"
	TypeCPAN        = "cpan"
	TypeCran        = "cran"
	TypeDebian      = "deb"
	TypeGem         = "gem"
	TypeGeneric     = "generic"
	TypeGithub      = "github"
	TypeGitlab      = "gitlab"
	TypeGolang      = "golang"
	TypeHex         = "hex"
	TypeHuggingface = "huggingface"
	TypeLuarocks    = "luarocks"
	TypeMaven       = "maven"
	TypeMLflow      = "mlflow"
	TypeNPM         = "npm"
	TypeNuget       = "nuget"
	TypeOCI         = "oci"
	TypePub         = "pub"
	TypePyPi        = "pypi"
	TypeQpkg        = "qpkg"
	TypeRPM         = "rpm"
	TypeSwid        = "swid"
	TypeSwift       = "swift"
)

// typeRule holds the optional ecosystem-specific steps for one purl type.
// A missing member is a no-op; a type absent from the registry altogether
// gets generic treatment only.
type typeRule struct {
	normalize func(p *PackageURL)
	validate  func(p *PackageURL) error
}

// typeRules is the closed registry of ecosystem rules, keyed by lowercase
// type tag. It is populated once and never mutated afterwards.
var typeRules = map[string]typeRule{
	TypeAlpm:        {normalize: lowercaseNamespaceAndName},
	TypeAPK:         {normalize: lowercaseNamespaceAndName},
	TypeBitbucket:   {normalize: lowercaseNamespaceAndName},
	TypeCocoapods:   {validate: validateCocoapods},
	TypeComposer:    {normalize: lowercaseNamespaceAndName},
	TypeConan:       {validate: validateConan},
	TypeCPAN:        {validate: validateCpan},
	TypeCran:        {validate: validateCran},
	TypeDebian:      {normalize: lowercaseNamespaceAndName},
	TypeGithub:      {normalize: lowercaseNamespaceAndName},
	TypeGitlab:      {normalize: lowercaseNamespaceAndName},
	TypeGolang:      {validate: validateGolang},
	TypeHex:         {normalize: lowercaseNamespaceAndName},
	TypeHuggingface: {normalize: lowercaseVersion},
	TypeLuarocks:    {normalize: lowercaseVersion},
	TypeMaven:       {validate: validateMaven},
	TypeMLflow:      {normalize: normalizeMlflow, validate: validateMlflow},
	TypeNPM:         {normalize: normalizeNpm, validate: validateNpm},
	TypeOCI:         {normalize: lowercaseName, validate: validateOci},
	TypePub:         {normalize: normalizePub, validate: validatePub},
	TypePyPi:        {normalize: normalizePypi},
	TypeQpkg:        {normalize: lowercaseNamespace},
	TypeRPM:         {normalize: lowercaseNamespace},
	TypeSwid:        {validate: validateSwid},
	TypeSwift:       {validate: validateSwift},
}

// KnownTypes returns the sorted tags of every purl type with registered
// ecosystem rules.
func KnownTypes() []string {
	types := make([]string, 0, len(typeRules))
	for tag := range typeRules {
		types = append(types, tag)
	}
	sort.Strings(types)
	return types
}

func lowercaseNamespace(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
}

func lowercaseName(p *PackageURL) {
	p.Name = strings.ToLower(p.Name)
}

func lowercaseVersion(p *PackageURL) {
	p.Version = strings.ToLower(p.Version)
}

func lowercaseNamespaceAndName(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
	p.Name = strings.ToLower(p.Name)
}

func validateCocoapods(p *PackageURL) error {
	switch {
	case strings.IndexFunc(p.Name, unicode.IsSpace) >= 0:
		return errComponent("name", "cocoapods name %q cannot contain whitespace", p.Name)
	case strings.ContainsRune(p.Name, '+'):
		return errComponent("name", "cocoapods name %q cannot contain a plus character", p.Name)
	case strings.HasPrefix(p.Name, "."):
		return errComponent("name", "cocoapods name %q cannot begin with a period", p.Name)
	}
	return nil
}

// validateConan enforces the co-requirement between namespace and
// qualifiers: a conan purl carries both or neither.
func validateConan(p *PackageURL) error {
	if p.Namespace != "" && len(p.Qualifiers) == 0 {
		return errComponent("qualifiers", "conan requires a \"qualifiers\" component when a namespace is present")
	}
	if p.Namespace == "" && len(p.Qualifiers) > 0 {
		return errComponent("namespace", "conan requires a \"namespace\" component when qualifiers are present")
	}
	return nil
}

func validateCpan(p *PackageURL) error {
	if ns := p.Namespace; ns != "" && ns != strings.ToUpper(ns) {
		return errComponent("namespace", "cpan namespace %q must be uppercase", ns)
	}
	return nil
}

func validateCran(p *PackageURL) error {
	if p.Version == "" {
		return errRequiredForType(TypeCran, "version")
	}
	return nil
}

// validateGolang accepts any opaque version except a "v"-prefixed one that
// fails semver.
func validateGolang(p *PackageURL) error {
	if v := p.Version; v != "" && strings.HasPrefix(v, "v") && !semver.IsValid(v) {
		return errComponent("version", "golang version %q starts with v but is not a valid semantic version", v)
	}
	return nil
}

func validateMaven(p *PackageURL) error {
	if p.Namespace == "" {
		return errRequiredForType(TypeMaven, "namespace")
	}
	return nil
}

// normalizeMlflow lowercases the model name only when the purl points at a
// Databricks-hosted registry, identified through the repository_url
// qualifier. The host is run through IDNA so a Unicode-form host still
// matches.
func normalizeMlflow(p *PackageURL) {
	if repo := p.Qualifiers["repository_url"]; repo != "" && isDatabricksHost(repo) {
		p.Name = strings.ToLower(p.Name)
	}
}

func isDatabricksHost(repositoryURL string) bool {
	host := repositoryURL
	if u, err := url.Parse(repositoryURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	if ascii, err := idna.ToASCII(host); err == nil {
		host = ascii
	}
	return strings.Contains(strings.ToLower(host), "databricks")
}

func validateMlflow(p *PackageURL) error {
	if p.Namespace != "" {
		return errEmptyForType(TypeMLflow, "namespace")
	}
	return nil
}

// normalizeNpm lowercases the scope always and the name unless the name is
// on the legacy-exempt list of packages that predate the lowercase rule.
func normalizeNpm(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
	if !wordlist.IsLegacyName(p.Name) {
		p.Name = strings.ToLower(p.Name)
	}
}

// npmMaxNameLength is the npm registry limit on the combined length of a
// modern package name including its scope.
const npmMaxNameLength = 214

func validateNpm(p *PackageURL) error {
	if ns := p.Namespace; ns != "" && !strings.HasPrefix(ns, "@") {
		return errComponent("namespace", "npm namespace %q must start with an @ character", ns)
	}
	name := p.Name
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return errComponent("name", "npm name %q cannot start with a period or underscore", name)
	}
	if name != strings.TrimSpace(name) {
		return errComponent("name", "npm name cannot contain leading or trailing whitespace")
	}
	if strings.ContainsAny(name, "~'!()*") {
		return errComponent("name", "npm name %q cannot contain any of the special characters ~'!()*", name)
	}
	switch strings.ToLower(name) {
	case "node_modules", "favicon.ico":
		return errComponent("name", "npm name %q is not allowed", name)
	}
	if wordlist.IsBuiltinName(strings.ToLower(name)) {
		return errComponent("name", "npm name %q is a builtin module name", name)
	}
	if !wordlist.IsLegacyName(name) {
		combined := name
		if p.Namespace != "" {
			combined = p.Namespace + "/" + name
		}
		if len(combined) > npmMaxNameLength {
			return errComponent("name", "npm name %q cannot exceed 214 characters", combined)
		}
	}
	return nil
}

func validateOci(p *PackageURL) error {
	if p.Namespace != "" {
		return errEmptyForType(TypeOCI, "namespace")
	}
	return nil
}

// normalizePub lowercases the name and rewrites dashes to underscores,
// pub's canonical package-name form.
func normalizePub(p *PackageURL) {
	p.Name = strings.ReplaceAll(strings.ToLower(p.Name), "-", "_")
}

func validatePub(p *PackageURL) error {
	for i := 0; i < len(p.Name); i++ {
		c := p.Name[i]
		if ('a' <= c && c <= 'z') || isASCIIDigit(c) || c == '_' {
			continue
		}
		return errComponent("name", "pub name %q may only contain lowercase letters, digits and underscores", p.Name)
	}
	return nil
}

// normalizePypi lowercases namespace and name and rewrites underscores to
// dashes, per PEP 503 name normalization.
func normalizePypi(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
	p.Name = strings.ReplaceAll(strings.ToLower(p.Name), "_", "-")
}

// guidPattern matches the 8-4-4-4-12 hex shape of a GUID.
var guidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func validateSwid(p *PackageURL) error {
	tagID, ok := p.Qualifiers["tag_id"]
	if !ok || strings.TrimSpace(tagID) == "" {
		return errComponent("qualifiers", "swid requires a \"tag_id\" qualifier")
	}
	if guidPattern.MatchString(tagID) && tagID != strings.ToLower(tagID) {
		return errComponent("qualifiers", "swid \"tag_id\" qualifier must be lowercase when it is a guid")
	}
	return nil
}

func validateSwift(p *PackageURL) error {
	if p.Namespace == "" {
		return errRequiredForType(TypeSwift, "namespace")
	}
	if p.Version == "" {
		return errRequiredForType(TypeSwift, "version")
	}
	return nil
}
