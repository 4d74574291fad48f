package script

import "strings"

// rewriteSource adapts sketch DSL source to what zygomys accepts.
// Lisp ";" comments become "//" comments and ":name" keywords become the
// string literal "__kw_name", so keywords never collide with user
// variables. A hyphen between identifier characters becomes an
// underscore, making slot-width one symbol instead of a subtraction.
// String literals pass through untouched.
func rewriteSource(src string) string {
	var sb strings.Builder
	sb.Grow(len(src) + len(src)/4)

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"' || c == '`':
			end := literalEnd(src, i)
			sb.WriteString(src[i:end])
			i = end

		case c == ';':
			for i < len(src) && src[i] == ';' {
				i++
			}
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}
			sb.WriteString("//")
			sb.WriteString(src[i : i+end])
			i += end

		case c == ':' && i+1 < len(src) && isAlpha(src[i+1]):
			j := i + 1
			for j < len(src) && (isSymbolByte(src[j]) || src[j] == '-') {
				j++
			}
			sb.WriteByte('"')
			sb.WriteString(kwPrefix)
			sb.WriteString(src[i+1 : j])
			sb.WriteByte('"')
			i = j

		case c == '-' && i > 0 && i+1 < len(src) && isSymbolByte(src[i-1]) && isAlpha(src[i+1]):
			sb.WriteByte('_')
			i++

		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// literalEnd returns the index just past the string literal opening at
// start. Double-quoted literals honor backslash escapes; an unterminated
// literal runs to the end of src.
func literalEnd(src string, start int) int {
	quote := src[start]
	for j := start + 1; j < len(src); j++ {
		switch {
		case quote == '"' && src[j] == '\\':
			j++
		case src[j] == quote:
			return j + 1
		}
	}
	return len(src)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSymbolByte(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '_'
}
