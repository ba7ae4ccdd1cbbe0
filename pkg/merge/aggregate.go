package merge

import (
	"regexp"
	"sync"
)

var (
	aggregateMu       sync.Mutex
	aggregatePatterns = map[string]*regexp.Regexp{}
)

// aggregatePattern matches the aggregate hook block for a hook name:
// the canonical header line, the call lines, and the closing end at
// column zero. Compiled once per hook name.
func aggregatePattern(hookName string) *regexp.Regexp {
	aggregateMu.Lock()
	defer aggregateMu.Unlock()

	if p, ok := aggregatePatterns[hookName]; ok {
		return p
	}
	p := regexp.MustCompile(`(?ms)^` + regexp.QuoteMeta(hookName) + ` do \|` + InstallerParamName + `\|\r?\n(.*?)^end[ \t]*\r?\n?`)
	aggregatePatterns[hookName] = p
	return p
}
