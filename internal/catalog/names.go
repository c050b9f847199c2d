package catalog

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MaxNameLength bounds artist, album and music names.
const MaxNameLength = 200

// normalizeName trims the name and checks it against the naming rules.
// subject is used in the error message ("album", "music", "artist's").
func normalizeName(subject, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationf("the %s name cannot be null or empty", subject)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", validationf("the %s name cannot be longer than %d characters", subject, MaxNameLength)
	}
	return name, nil
}

// nameKey returns the case-folded comparison key for a name. A Caser keeps
// internal state, so one is built per call.
func nameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func sameName(a, b string) bool {
	return nameKey(a) == nameKey(b)
}

// NameContains reports whether query occurs in name, ignoring case. An empty
// query matches every name.
func NameContains(name, query string) bool {
	return strings.Contains(nameKey(name), nameKey(query))
}
