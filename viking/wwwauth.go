package viking

import (
	"errors"
	"strings"
)

// parseChallenge splits a WWW-Authenticate value into its scheme and
// auth-params. Parameter names are lower-cased; quoted-string values are
// unquoted and backslash escapes resolved.
func parseChallenge(value string) (string, map[string]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil, errors.New("empty challenge")
	}

	scheme := value
	rest := ""
	if i := strings.IndexAny(value, " \t"); i >= 0 {
		scheme, rest = value[:i], strings.TrimSpace(value[i+1:])
	}

	params := make(map[string]string)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			return "", nil, errors.New("challenge parameter without value: " + rest)
		}
		name := strings.ToLower(strings.TrimSpace(rest[:eq]))
		rest = strings.TrimSpace(rest[eq+1:])

		var val string
		var err error
		if strings.HasPrefix(rest, `"`) {
			val, rest, err = consumeQuoted(rest)
			if err != nil {
				return "", nil, err
			}
		} else {
			if comma := strings.IndexByte(rest, ','); comma >= 0 {
				val, rest = strings.TrimSpace(rest[:comma]), rest[comma+1:]
			} else {
				val, rest = rest, ""
			}
		}
		params[name] = val

		rest = strings.TrimSpace(rest)
		rest = strings.TrimPrefix(rest, ",")
		rest = strings.TrimSpace(rest)
	}

	return scheme, params, nil
}

// consumeQuoted reads a leading quoted-string and returns the unquoted
// value plus the remainder.
func consumeQuoted(s string) (string, string, error) {
	var val strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", errors.New("unterminated escape in challenge")
			}
			i++
			val.WriteByte(s[i])
		case '"':
			return val.String(), s[i+1:], nil
		default:
			val.WriteByte(s[i])
		}
	}
	return "", "", errors.New("unterminated quoted value in challenge")
}
