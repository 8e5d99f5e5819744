package routes

import (
	"regexp"
	"sync"
)

// patternCache holds compiled variable and template patterns. Tables
// loaded from the same route file share entries.
var patternCache sync.Map // map[string]*regexp.Regexp

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if v, ok := patternCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}
