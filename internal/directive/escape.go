package directive

import "strings"

// Unescape replaces every backslash followed by any byte with that byte,
// scanning left to right without overlap. Any byte may be escaped, not only
// delimiter bytes. A trailing lone backslash is kept as is.
func Unescape(s string) string {
	idx := strings.IndexByte(s, '\\')
	if idx < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for idx >= 0 && idx+1 < len(s) {
		b.WriteString(s[:idx])
		b.WriteByte(s[idx+1])
		s = s[idx+2:]
		idx = strings.IndexByte(s, '\\')
	}
	b.WriteString(s)
	return b.String()
}
