package routes

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// varMatcher validates a single route variable value.
// *regexp.Regexp satisfies this interface.
type varMatcher interface {
	MatchString(string) bool
	String() string
}

// uuidMatcher validates with uuid.Validate. Validate also accepts the
// urn: and braced forms, so values must be the 36-char canonical form.
type uuidMatcher struct {
	re *regexp.Regexp
}

func (m uuidMatcher) MatchString(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}

func (m uuidMatcher) String() string {
	return m.re.String()
}

// macro holds a pattern string and its pre-compiled validation matcher.
type macro struct {
	pattern string
	matcher varMatcher
}

// patternMacros maps macro names to their compiled patterns.
// Used in route variable definitions: {name:macro}.
var patternMacros = func() map[string]macro {
	raw := map[string]string{
		"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
		"int":      `[0-9]+`,
		"float":    `[0-9]*\.?[0-9]+`,
		"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
		"alpha":    `[a-zA-Z]+`,
		"alphanum": `[a-zA-Z0-9]+`,
		"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
		"hex":      `[0-9a-fA-F]+`,
	}

	m := make(map[string]macro, len(raw))
	for name, pattern := range raw {
		re := regexp.MustCompile(fmt.Sprintf("^%s$", pattern))

		var matcher varMatcher = re
		if name == "uuid" {
			matcher = uuidMatcher{re: re}
		}

		m[name] = macro{pattern: pattern, matcher: matcher}
	}

	return m
}()

// expandMacro returns the regex pattern string and a pre-compiled
// validation matcher for a macro name. Unknown names are returned
// unchanged with a nil matcher and are treated as raw patterns.
func expandMacro(pattern string) (string, varMatcher) {
	if m, ok := patternMacros[pattern]; ok {
		return m.pattern, m.matcher
	}
	return pattern, nil
}
