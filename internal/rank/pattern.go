package rank

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a title pattern from config. Plain strings stay substring
// matchers; anything carrying regex metacharacters is compiled as a
// case-insensitive regexp at load time, so a bad pattern fails the run
// up front instead of silently never matching.
type Pattern struct {
	raw string
	re  *regexp.Regexp // nil for substring patterns
}

const regexMeta = `\.+*?()|[]{}^$`

func CompilePattern(raw string) (Pattern, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Pattern{}, fmt.Errorf("empty pattern")
	}
	if !strings.ContainsAny(raw, regexMeta) {
		return Pattern{raw: raw}, nil
	}
	re, err := regexp.Compile("(?i)" + raw)
	if err != nil {
		return Pattern{}, fmt.Errorf("compile pattern %q: %w", raw, err)
	}
	return Pattern{raw: raw, re: re}, nil
}

// Match tests s, which callers pass already lower-cased.
func (p Pattern) Match(s string) bool {
	if p.re != nil {
		return p.re.MatchString(s)
	}
	if p.raw == "" {
		return false
	}
	return strings.Contains(s, strings.ToLower(p.raw))
}

func (p Pattern) String() string { return p.raw }

func compileAll(raws []string) ([]Pattern, error) {
	out := make([]Pattern, 0, len(raws))
	for _, r := range raws {
		p, err := CompilePattern(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
