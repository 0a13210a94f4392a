package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// IsPattern reports whether s is wrapped in one of the delimiter pairs
// /…/, #…# or %…%, which marks it as a pattern instead of a literal.
func IsPattern(s string) bool {
	if len(s) < 2 {
		return false
	}
	switch s[0] {
	case '/', '#', '%':
		return s[len(s)-1] == s[0]
	}
	return false
}

// compilePattern compiles a delimited pattern. Trailing flags after the
// closing delimiter are allowed when allowFlags is set: i, m, s and U map to
// Go flags, u is accepted and ignored. Undelimited input is compiled as is.
func compilePattern(s string, allowFlags bool) (*regexp.Regexp, error) {
	expr := s
	if len(s) >= 2 && strings.ContainsRune("/#%", rune(s[0])) {
		end := strings.LastIndexByte(s, s[0])
		if end > 0 && (end == len(s)-1 || allowFlags) {
			flags, err := goFlags(s[end+1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, s, err)
			}
			expr = flags + s[1:end]
		}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, s, err)
	}
	return re, nil
}

func goFlags(flags string) (string, error) {
	var out strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's', 'U':
			out.WriteRune(f)
		case 'u':
		default:
			return "", fmt.Errorf("unsupported flag %q", f)
		}
	}
	if out.Len() == 0 {
		return "", nil
	}
	return "(?" + out.String() + ")", nil
}
