package routes

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// template is a compiled path template such as "/companies/{id:int}/items".
type template struct {
	// raw is the original template string.
	raw string
	// regexp matches request paths; a single trailing slash is optional.
	regexp *regexp.Regexp
	// reverse is the template with %s placeholders for Sprintf.
	reverse string
	// varsN are the variable names in order.
	varsN []string
	// varsR validate each variable value when building.
	varsR []varMatcher
}

// newTemplate parses a path template and compiles its patterns.
func newTemplate(tpl string) (*template, error) {
	if !strings.HasPrefix(tpl, "/") {
		return nil, fmt.Errorf("routes: template %q must start with '/'", tpl)
	}

	idxs, err := braceIndices(tpl)
	if err != nil {
		return nil, err
	}

	var (
		pattern bytes.Buffer
		reverse bytes.Buffer
		varsN   []string
		varsR   []varMatcher
		end     int
	)

	pattern.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		raw := tpl[end:idxs[i]]
		end = idxs[i+1]

		name, patt, hasPattern := strings.Cut(tpl[idxs[i]+1:end-1], ":")
		if name == "" {
			return nil, fmt.Errorf("routes: missing name in %q from %q", tpl[idxs[i]:end], tpl)
		}

		var matcher varMatcher
		if hasPattern {
			patt, matcher = expandMacro(patt)
		} else {
			patt = "[^/]+"
		}

		fmt.Fprintf(&pattern, "%s(%s)", regexp.QuoteMeta(raw), patt)
		reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
		reverse.WriteString("%s")

		if matcher == nil {
			re, err := compilePattern(fmt.Sprintf("^%s$", patt))
			if err != nil {
				return nil, fmt.Errorf("routes: invalid pattern %q in variable %q: %w", patt, name, err)
			}
			matcher = re
		}

		varsN = append(varsN, name)
		varsR = append(varsR, matcher)
	}

	raw := tpl[end:]
	pattern.WriteString(regexp.QuoteMeta(strings.TrimSuffix(raw, "/")))
	pattern.WriteString("[/]?$")
	reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))

	if err := checkDuplicateVars(varsN); err != nil {
		return nil, err
	}

	re, err := compilePattern(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("routes: template %q: %w", tpl, err)
	}

	return &template{
		raw:     tpl,
		regexp:  re,
		reverse: reverse.String(),
		varsN:   varsN,
		varsR:   varsR,
	}, nil
}

// build fills the template with the given variable values.
func (t *template) build(values map[string]string) (string, error) {
	args := make([]any, len(t.varsN))
	for i, name := range t.varsN {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("routes: %w %q", ErrMissingVariable, name)
		}
		if !t.varsR[i].MatchString(v) {
			return "", fmt.Errorf("routes: %w: %q doesn't match, expected %q", ErrInvalidVariable, name, t.varsR[i].String())
		}
		args[i] = v
	}
	return fmt.Sprintf(t.reverse, args...), nil
}

// match returns the variables extracted from path, or false when the
// template does not match.
func (t *template) match(path string) (map[string]string, bool) {
	matches := t.regexp.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}
	vars := make(map[string]string, len(t.varsN))
	for i, name := range t.varsN {
		if i+1 < len(matches) {
			vars[name] = matches[i+1]
		}
	}
	return vars, true
}

// braceIndices returns the start and end+1 indices of each top-level
// {...} pair in s. Returns an error if braces are unbalanced.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("routes: unbalanced braces in %q", s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("routes: unbalanced braces in %q", s)
	}
	return idxs, nil
}

func checkDuplicateVars(vars []string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("routes: duplicated route variable %q", v)
		}
		seen[v] = true
	}
	return nil
}
