package recipe

import "strings"

// suffixMarker is the recipe-name suffix that separates the logical item
// name from the recipe type, e.g. "Firefox.munki.recipe".
const suffixMarker = ".munki"

// DeriveBaseName converts a recipe identifier into a branch-safe base name:
// lower-cased, spaces replaced with hyphens, truncated at the ".munki"
// suffix marker. If the result collides with an existing branch a single
// "-2" suffix is appended. A second collision is not handled; the branch
// creation itself will surface it.
func DeriveBaseName(identifier string, existing []string) string {
	base := strings.ToLower(strings.ReplaceAll(identifier, " ", "-"))
	if i := strings.Index(base, suffixMarker); i >= 0 {
		base = base[:i]
	}
	if containsBranch(existing, base) {
		base += "-2"
	}
	return base
}

// QualifyWithVersion appends the imported version to a base branch name.
// It reports whether the qualified name collided with an existing branch,
// in which case a single "-2" suffix is appended. No further levels of
// disambiguation are attempted.
func QualifyWithVersion(base, version string, existing []string) (string, bool) {
	name := base + "-" + version
	if containsBranch(existing, name) {
		return name + "-2", true
	}
	return name, false
}

func containsBranch(branches []string, name string) bool {
	for _, b := range branches {
		if b == name {
			return true
		}
	}
	return false
}
