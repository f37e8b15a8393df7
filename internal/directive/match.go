package directive

import "strings"

// FindUnescaped returns the byte offset of the first occurrence of needle in
// haystack that is not immediately preceded by a backslash, or -1 if every
// occurrence is escaped or there is none. Escaped occurrences are skipped,
// never unescaped.
func FindUnescaped(haystack, needle string) int {
	if needle == "" {
		return -1
	}

	offset := 0
	for {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return -1
		}
		pos := offset + idx
		if pos == 0 || haystack[pos-1] != '\\' {
			return pos
		}
		offset = pos + len(needle)
	}
}
