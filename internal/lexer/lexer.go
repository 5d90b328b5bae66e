// Package lexer turns PoiBoi source text into a token stream (spec §4.2).
package lexer

import "fmt"

// Error is a single lexical failure: an unterminated comment, an
// unterminated string, or a span of text for which no candidate
// recognizer could produce a token.
type Error struct {
	Pos     Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Pos.File, e.Pos.Line, e.Message)
}

// Lexer scans one source file into tokens. It is not reused across files;
// construct a fresh Lexer per file via New.
type Lexer struct {
	file string
	src  []byte
	pos  int
	line int // 0-based, per spec §4.2 "every emitted token carries the 0-based line number"
}

// New creates a Lexer for the given file name (used only for diagnostics
// and token positions) and source text.
func New(file, src string) *Lexer {
	return &Lexer{file: file, src: []byte(src)}
}

// Scan runs all four phases of §4.2 and returns the resulting token
// stream, terminated by a synthetic EOF token, or the first lexical
// error encountered.
func (l *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '#':
			if err := l.skipComment(); err != nil {
				return nil, err
			}
		case c == '"':
			tok, err := l.scanQuotedString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isASCIIWhitespace(c):
			if c == '\n' {
				l.line++
			}
			l.pos++
		default:
			toks, err := l.scanSubrun()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, toks...)
		}
	}
	tokens = append(tokens, NewToken(EOF, "", Position{File: l.file, Line: l.line}))
	return tokens, nil
}

func isASCIIWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// skipComment consumes a '#...#' span (phase 1). Newlines inside increment
// the line counter; running off the end of input without a closing '#' is
// an error.
func (l *Lexer) skipComment() error {
	startLine := l.line
	l.pos++ // consume opening '#'
	for {
		if l.pos >= len(l.src) {
			return &Error{Pos: Position{File: l.file, Line: startLine}, Message: "unterminated comment"}
		}
		c := l.src[l.pos]
		l.pos++
		if c == '#' {
			return nil
		}
		if c == '\n' {
			l.line++
		}
	}
}

// scanQuotedString consumes a quoted-string token (phase 1), feeding
// characters into a quotedStringRecognizer. A raw newline before the
// string finalizes is an error.
func (l *Lexer) scanQuotedString() (Token, error) {
	startLine := l.line
	rec := &quotedStringRecognizer{}
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\n' {
			return Token{}, &Error{Pos: Position{File: l.file, Line: startLine}, Message: "unterminated string literal"}
		}
		if !rec.search(c) {
			break
		}
		l.pos++
		if rec.finalizable() {
			break
		}
	}
	if !rec.finalizable() {
		return Token{}, &Error{Pos: Position{File: l.file, Line: startLine}, Message: "unterminated string literal"}
	}
	return NewToken(QUOTED_STRING, string(rec.content), Position{File: l.file, Line: startLine}), nil
}

// scanSubrun consumes a maximal run of non-whitespace, non-comment,
// non-string-opening bytes (phase 2's sub-run) via repeated longest-match
// tokenization (phase 3) until the sub-run is exhausted.
func (l *Lexer) scanSubrun() ([]Token, error) {
	var toks []Token
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isASCIIWhitespace(c) || c == '#' || c == '"' {
			break
		}
		tok, n, err := l.matchLongest()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		l.pos += n
	}
	return toks, nil
}

// matchLongest implements spec §4.2 step 3: feed one fresh instance of
// every candidate recognizer character by character, eliminating any that
// is both non-accepting and non-finalizable, until either none remain
// accepting or the sub-run ends. Among the finalizable survivors, pick the
// longest match; ties go to the earliest candidate in newCandidates'
// declared order.
func (l *Lexer) matchLongest() (Token, int, error) {
	start := l.pos
	startLine := l.line
	candidates := newCandidates()
	alive := make([]bool, len(candidates))
	for i := range alive {
		alive[i] = true
	}

	pos := l.pos
	for pos < len(l.src) {
		c := l.src[pos]
		if isASCIIWhitespace(c) || c == '#' || c == '"' {
			break
		}
		anyAlive := false
		for i, rec := range candidates {
			if !alive[i] {
				continue
			}
			if rec.search(c) {
				anyAlive = true
			} else {
				alive[i] = false
			}
		}
		pos++
		if !anyAlive {
			break
		}
	}

	bestLen, bestIdx := -1, -1
	for i, rec := range candidates {
		if !rec.finalizable() {
			continue
		}
		if n := rec.length(); n > bestLen {
			bestLen = n
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		end := start + 1
		if end > len(l.src) {
			end = len(l.src)
		}
		return Token{}, 0, &Error{
			Pos:     Position{File: l.file, Line: startLine},
			Message: fmt.Sprintf("unrecognized token near %q", string(l.src[start:end])),
		}
	}
	content := string(l.src[start : start+bestLen])
	return NewToken(candidates[bestIdx].tokenType(), content, Position{File: l.file, Line: startLine}), bestLen, nil
}
