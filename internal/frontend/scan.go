// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R4 (directive scanning);
//
//	docs/ARCHITECTURE § Front End.
package frontend

import (
	"strings"
)

type directiveKind int

const (
	dirInclude directiveKind = iota
	dirDefine
	dirUndef
	dirPragmaOnce
	dirIfndef
	dirOther // any other # line, kept for guard detection
)

// directive is one preprocessor directive found by the line scanner.
// Offsets are byte offsets into the scanned content.
type directive struct {
	kind   directiveKind
	line   int // 1-based
	offset int // of the '#'

	// dirInclude
	target string
	angled bool
	keep   bool

	// dirDefine; name alone also carries dirUndef
	name       string
	nameOffset int
	params     []string // nil for object-like macros
	body       string
	bodyOffset int

	// dirIfndef
	guard string
}

// scanner walks content line by line, joining backslash continuations
// and tracking block comments, and yields directives in textual order.
// Modeled after a hand-rolled preprocessor-directive scan rather than
// a full preprocessor: conditional evaluation is out of scope.
type scanner struct {
	content []byte
	pos     int
	line    int
	inBlock bool // inside /* ... */
}

func scanDirectives(content []byte) []directive {
	s := &scanner{content: content, line: 1}
	var out []directive
	prevKeep := false
	for s.pos < len(s.content) {
		startLine := s.line
		startOffset := s.pos
		raw := s.nextLogicalLine()
		text := s.stripComments(raw)
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			// A lone keep pragma comment applies to the next directive.
			prevKeep = prevKeep || isKeepPragma(raw)
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			prevKeep = false
			continue
		}
		hash := startOffset + strings.IndexByte(text, '#')
		d := parseDirective(trimmed, raw, startLine, hash)
		if d.kind == dirInclude {
			d.keep = d.keep || prevKeep
		}
		if d.kind == dirDefine {
			// Locate the name within the logical line for its position.
			if i := strings.Index(raw, d.name); i >= 0 {
				d.nameOffset = startOffset + i
				d.bodyOffset = startOffset + strings.Index(raw, d.body)
			}
		}
		prevKeep = false
		out = append(out, d)
	}
	return out
}

// nextLogicalLine consumes one line, following backslash continuations.
func (s *scanner) nextLogicalLine() string {
	var b strings.Builder
	for s.pos < len(s.content) {
		start := s.pos
		for s.pos < len(s.content) && s.content[s.pos] != '\n' {
			s.pos++
		}
		line := string(s.content[start:s.pos])
		if s.pos < len(s.content) {
			s.pos++ // consume '\n'
			s.line++
		}
		if strings.HasSuffix(line, "\\") {
			b.WriteString(line[:len(line)-1])
			b.WriteString(" ")
			continue
		}
		b.WriteString(line)
		break
	}
	return b.String()
}

// stripComments blanks // and /* */ comments with spaces, carrying
// block-comment state across lines. Lengths are preserved so byte
// offsets into the result stay valid for the original line. String
// literals are respected.
func (s *scanner) stripComments(line string) string {
	var b strings.Builder
	i := 0
	for i < len(line) {
		if s.inBlock {
			if j := strings.Index(line[i:], "*/"); j >= 0 {
				for k := 0; k < j+2; k++ {
					b.WriteByte(' ')
				}
				i += j + 2
				s.inBlock = false
				continue
			}
			return b.String()
		}
		c := line[i]
		switch {
		case c == '"' || c == '\'':
			quote := c
			b.WriteByte(c)
			i++
			for i < len(line) {
				b.WriteByte(line[i])
				if line[i] == '\\' && i+1 < len(line) {
					i++
					b.WriteByte(line[i])
				} else if line[i] == quote {
					i++
					break
				}
				i++
			}
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return b.String()
		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			s.inBlock = true
			b.WriteString("  ")
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// parseDirective interprets one comment-stripped directive line. raw is
// the uncut logical line, used for pragma comments.
func parseDirective(trimmed, raw string, line, hash int) directive {
	d := directive{kind: dirOther, line: line, offset: hash}
	rest := strings.TrimSpace(trimmed[1:]) // after '#'
	switch {
	case strings.HasPrefix(rest, "include"):
		d.kind = dirInclude
		d.keep = isKeepPragma(raw)
		arg := strings.TrimSpace(strings.TrimPrefix(rest, "include"))
		if len(arg) >= 2 {
			switch arg[0] {
			case '<':
				if end := strings.IndexByte(arg, '>'); end > 0 {
					d.target = arg[1:end]
					d.angled = true
				}
			case '"':
				if end := strings.IndexByte(arg[1:], '"'); end >= 0 {
					d.target = arg[1 : 1+end]
				}
			}
		}
	case strings.HasPrefix(rest, "define"):
		d.kind = dirDefine
		arg := strings.TrimSpace(strings.TrimPrefix(rest, "define"))
		name, tail := splitIdentifier(arg)
		d.name = name
		// A '(' immediately after the name starts a parameter list;
		// whitespace before it starts the body instead.
		if strings.HasPrefix(tail, "(") {
			if end := strings.IndexByte(tail, ')'); end > 0 {
				for _, p := range strings.Split(tail[1:end], ",") {
					if p = strings.TrimSpace(p); p != "" {
						d.params = append(d.params, p)
					}
				}
				if d.params == nil {
					d.params = []string{}
				}
				tail = tail[end+1:]
			}
		}
		d.body = strings.TrimSpace(tail)
	case strings.HasPrefix(rest, "undef"):
		d.kind = dirUndef
		d.name, _ = splitIdentifier(strings.TrimSpace(strings.TrimPrefix(rest, "undef")))
	case strings.HasPrefix(rest, "pragma"):
		if strings.TrimSpace(strings.TrimPrefix(rest, "pragma")) == "once" {
			d.kind = dirPragmaOnce
		}
	case strings.HasPrefix(rest, "ifndef"):
		d.kind = dirIfndef
		d.guard, _ = splitIdentifier(strings.TrimSpace(strings.TrimPrefix(rest, "ifndef")))
	}
	return d
}

// isKeepPragma recognizes the include-what-you-use keep annotation.
func isKeepPragma(raw string) bool {
	i := strings.Index(raw, "//")
	if i < 0 {
		if j := strings.Index(raw, "/*"); j >= 0 {
			i = j
		} else {
			return false
		}
	}
	comment := strings.Trim(raw[i:], "/* \t")
	return strings.HasPrefix(comment, "IWYU pragma: keep") ||
		strings.HasPrefix(comment, "NOLINT(misc-include-cleaner)")
}

// splitIdentifier returns the leading identifier of s and the rest.
func splitIdentifier(s string) (string, string) {
	if len(s) == 0 || (s[0] >= '0' && s[0] <= '9') {
		return "", s
	}
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// hasIncludeGuard reports whether content opens with the conventional
// #ifndef/#define pair or declares #pragma once anywhere.
func hasIncludeGuard(content []byte) bool {
	dirs := scanDirectives(content)
	for _, d := range dirs {
		if d.kind == dirPragmaOnce {
			return true
		}
	}
	if len(dirs) >= 2 && dirs[0].kind == dirIfndef && dirs[0].guard != "" {
		second := dirs[1]
		return second.kind == dirDefine && second.name == dirs[0].guard
	}
	return false
}
