package main

import "strings"

// extractBalanced returns the substring from the opening brace at start
// through its matching closing brace, inclusive. start must point at a '{'.
// If the text ends before the depth returns to zero the result is empty and
// the caller treats the enclosing construct as absent.
func extractBalanced(text string, start int) string {
	level := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			level++
		case '}':
			level--
			if level == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// identChar reports whether c can appear inside an identifier.
func identChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ident reads an identifier starting at i and returns it together with the
// index just past its last character.
func ident(text string, i int) (string, int) {
	j := i
	for j < len(text) && identChar(text[j]) {
		j++
	}
	return text[i:j], j
}

// findWord returns the index of the first occurrence of name at or after
// from that is not part of a longer identifier, or -1.
func findWord(text, name string, from int) int {
	if name == "" {
		return -1
	}
	for from <= len(text)-len(name) {
		i := strings.Index(text[from:], name)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(name)
		if (i == 0 || !identChar(text[i-1])) && (end == len(text) || !identChar(text[end])) {
			return i
		}
		from = i + 1
	}
	return -1
}

// skipSpace advances i past any whitespace.
func skipSpace(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}

// hasWord reports whether text has the given word at i, ending at an
// identifier boundary.
func hasWord(text string, i int, w string) bool {
	if !strings.HasPrefix(text[i:], w) {
		return false
	}
	end := i + len(w)
	return end == len(text) || !identChar(text[end])
}

// quoted reads a double-quoted string starting at i and returns the value
// and the index just past the closing quote.
func quoted(text string, i int) (string, int, bool) {
	if i >= len(text) || text[i] != '"' {
		return "", i, false
	}
	end := strings.IndexByte(text[i+1:], '"')
	if end < 0 {
		return "", i, false
	}
	return text[i+1 : i+1+end], i + 2 + end, true
}

// stringField extracts the first `name = "value"` assignment. Triple-quoted
// assignments and empty strings do not count as matches; later duplicates of
// a matched field are ignored.
func stringField(text, name string) (string, bool) {
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return "", false
		}
		from = i + len(name)
		j := skipSpace(text, from)
		if j >= len(text) || text[j] != '=' {
			continue
		}
		j = skipSpace(text, j+1)
		if j >= len(text) || text[j] != '"' || strings.HasPrefix(text[j:], `"""`) {
			continue
		}
		end := strings.IndexByte(text[j+1:], '"')
		if end <= 0 {
			continue
		}
		return text[j+1 : j+1+end], true
	}
}

// boolField extracts the first `name = true|false` assignment.
func boolField(text, name string) (bool, bool) {
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return false, false
		}
		from = i + len(name)
		j := skipSpace(text, from)
		if j >= len(text) || text[j] != '=' {
			continue
		}
		j = skipSpace(text, j+1)
		switch {
		case hasWord(text, j, "true"):
			return true, true
		case hasWord(text, j, "false"):
			return false, true
		}
	}
}

// blockTextField extracts the first `name = """value"""` assignment. The
// value may span multiple lines; surrounding whitespace is trimmed, interior
// whitespace is preserved.
func blockTextField(text, name string) (string, bool) {
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return "", false
		}
		from = i + len(name)
		j := skipSpace(text, from)
		if j >= len(text) || text[j] != '=' {
			continue
		}
		j = skipSpace(text, j+1)
		if !strings.HasPrefix(text[j:], `"""`) {
			continue
		}
		j += 3
		end := strings.Index(text[j:], `"""`)
		if end < 0 {
			continue
		}
		return strings.TrimSpace(text[j : j+end]), true
	}
}

// taggedField extracts `name = prefix<Ident>` assignments such as
// executionMode = BuildStep.ExecutionMode.ALWAYS, returning the identifier.
func taggedField(text, name, prefix string) (string, bool) {
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return "", false
		}
		from = i + len(name)
		j := skipSpace(text, from)
		if j >= len(text) || text[j] != '=' {
			continue
		}
		j = skipSpace(text, j+1)
		if !strings.HasPrefix(text[j:], prefix) {
			continue
		}
		tag, _ := ident(text, j+len(prefix))
		if tag == "" {
			continue
		}
		return tag, true
	}
}

// callArgs collects the raw argument text of every `name(args)` call, in
// source order, whitespace-trimmed, duplicates preserved.
func callArgs(text, name string) []string {
	var args []string
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return args
		}
		from = i + len(name)
		if from >= len(text) || text[from] != '(' {
			continue
		}
		end := strings.IndexByte(text[from+1:], ')')
		if end < 0 {
			return args
		}
		if arg := strings.TrimSpace(text[from+1 : from+1+end]); arg != "" {
			args = append(args, arg)
		}
		from += 1 + end
	}
}

// callStringPairs collects the first two quoted arguments of every
// `name("a", "b", ...)` call, in source order.
func callStringPairs(text, name string) [][2]string {
	var pairs [][2]string
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return pairs
		}
		from = i + len(name)
		if from >= len(text) || text[from] != '(' {
			continue
		}
		a, j, ok := quoted(text, from+1)
		if !ok {
			continue
		}
		j = skipSpace(text, j)
		if j >= len(text) || text[j] != ',' {
			continue
		}
		b, j, ok := quoted(text, skipSpace(text, j+1))
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{a, b})
		from = j
	}
}

// findBlock locates the first `name {` block and returns its body with the
// outer braces stripped. An unterminated block is treated as absent.
func findBlock(text, name string) (string, bool) {
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return "", false
		}
		from = i + len(name)
		j := skipSpace(text, from)
		if j >= len(text) || text[j] != '{' {
			continue
		}
		if block := extractBalanced(text, j); block != "" {
			return block[1 : len(block)-1], true
		}
	}
}

// findBlocks collects the body of every `name {` block in source order.
// Scanning resumes just inside each opening brace, so blocks nested in an
// earlier match are found as well.
func findBlocks(text, name string) []string {
	var bodies []string
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return bodies
		}
		from = i + len(name)
		j := skipSpace(text, from)
		if j >= len(text) || text[j] != '{' {
			continue
		}
		if block := extractBalanced(text, j); block != "" {
			bodies = append(bodies, block[1:len(block)-1])
		}
		from = j + 1
	}
}

// assignedBlock extracts the body of a `name = block { ... }` assignment,
// as in `command = script { ... }`.
func assignedBlock(text, name, block string) (string, bool) {
	for from := 0; ; {
		i := findWord(text, name, from)
		if i < 0 {
			return "", false
		}
		from = i + len(name)
		j := skipSpace(text, from)
		if j >= len(text) || text[j] != '=' {
			continue
		}
		j = skipSpace(text, j+1)
		if !hasWord(text, j, block) {
			continue
		}
		j = skipSpace(text, j+len(block))
		if j >= len(text) || text[j] != '{' {
			continue
		}
		if b := extractBalanced(text, j); b != "" {
			return b[1 : len(b)-1], true
		}
	}
}
