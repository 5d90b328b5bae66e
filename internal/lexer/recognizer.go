package lexer

// A recognizer is a tiny deterministic state machine implementing the
// three-method contract of spec §4.1: search(c) feeds one character and
// reports whether it was accepted; finalizable reports whether the
// currently accepted prefix is itself a legal token; length reports the
// number of characters accepted so far.
//
// Recognizers are stateful and monotonic: once search returns false, every
// later call to search must also return false.
type recognizer interface {
	search(c byte) bool
	finalizable() bool
	length() int
	tokenType() TokenType
}

// newCandidates returns one fresh instance of every token kind except
// QuotedString and EOF, in the fixed declared order used to break
// longest-match ties (spec §4.2 step 3): fixed-lexeme tokens first, then
// keywords (including the reserved LOCAL), then Builtin, then FunctionName,
// then Variable. Builtin must sort after every keyword so that an
// all-uppercase keyword spelling (e.g. "RETURN") resolves to the keyword,
// not to Builtin, on the length tie they produce.
func newCandidates() []recognizer {
	return []recognizer{
		newLexemeRecognizer(LBRACE, "{"),
		newLexemeRecognizer(RBRACE, "}"),
		newLexemeRecognizer(SEMI, ";"),
		newLexemeRecognizer(LPAREN, "("),
		newLexemeRecognizer(RPAREN, ")"),
		newLexemeRecognizer(COMMA, ","),
		newLexemeRecognizer(LBRACK, "["),
		newLexemeRecognizer(RBRACK, "]"),
		newLexemeRecognizer(ASSIGN, "="),
		newLexemeRecognizer(GLOBAL, "GLOBAL"),
		newLexemeRecognizer(WHILE, "WHILE"),
		newLexemeRecognizer(IF, "IF"),
		newLexemeRecognizer(ELSE, "ELSE"),
		newLexemeRecognizer(ELIF, "ELIF"),
		newLexemeRecognizer(RETURN, "RETURN"),
		newLexemeRecognizer(BREAK, "BREAK"),
		newLexemeRecognizer(LOCAL, "LOCAL"),
		&builtinRecognizer{},
		&functionNameRecognizer{},
		&variableRecognizer{},
	}
}

// lexemeRecognizer matches one fixed string exactly, character by
// character. It becomes finalizable only once the full lexeme has been
// consumed, and stays finalizable from then on (it can't be extended
// further: any additional character sticks it).
type lexemeRecognizer struct {
	kind   TokenType
	lexeme string
	pos    int
	stuck  bool
}

func newLexemeRecognizer(kind TokenType, lexeme string) *lexemeRecognizer {
	return &lexemeRecognizer{kind: kind, lexeme: lexeme}
}

func (r *lexemeRecognizer) search(c byte) bool {
	if r.stuck || r.pos >= len(r.lexeme) || r.lexeme[r.pos] != c {
		r.stuck = true
		return false
	}
	r.pos++
	return true
}

func (r *lexemeRecognizer) finalizable() bool  { return r.pos == len(r.lexeme) }
func (r *lexemeRecognizer) length() int        { return r.pos }
func (r *lexemeRecognizer) tokenType() TokenType { return r.kind }

// variableRecognizer: starts with a lowercase letter; continues with any
// letter of either case (original_source/cc_src/tokens.cc Variable::Search).
type variableRecognizer struct {
	n     int
	stuck bool
}

func (r *variableRecognizer) search(c byte) bool {
	if r.stuck {
		return false
	}
	ok := (c >= 'a' && c <= 'z') || (r.n > 0 && c >= 'A' && c <= 'Z')
	if !ok {
		r.stuck = true
		return false
	}
	r.n++
	return true
}

func (r *variableRecognizer) finalizable() bool  { return r.n > 0 }
func (r *variableRecognizer) length() int        { return r.n }
func (r *variableRecognizer) tokenType() TokenType { return VARIABLE }

// builtinRecognizer: entirely uppercase letters.
type builtinRecognizer struct {
	n     int
	stuck bool
}

func (r *builtinRecognizer) search(c byte) bool {
	if r.stuck || c < 'A' || c > 'Z' {
		r.stuck = true
		return false
	}
	r.n++
	return true
}

func (r *builtinRecognizer) finalizable() bool  { return r.n > 0 }
func (r *builtinRecognizer) length() int        { return r.n }
func (r *builtinRecognizer) tokenType() TokenType { return BUILTIN }

// functionNameRecognizer: starts with an uppercase letter; continues with
// a letter of either case; finalizable only once at least one lowercase
// letter has been seen (this is what distinguishes it from Builtin).
type functionNameRecognizer struct {
	n             int
	containsLower bool
	stuck         bool
}

func (r *functionNameRecognizer) search(c byte) bool {
	if r.stuck {
		return false
	}
	switch {
	case c >= 'A' && c <= 'Z':
		r.n++
		return true
	case c >= 'a' && c <= 'z' && r.n > 0:
		r.containsLower = true
		r.n++
		return true
	default:
		r.stuck = true
		return false
	}
}

func (r *functionNameRecognizer) finalizable() bool  { return r.n > 0 && r.containsLower }
func (r *functionNameRecognizer) length() int        { return r.n }
func (r *functionNameRecognizer) tokenType() TokenType { return FUNCTION_NAME }

// quotedStringRecognizer is used outside the longest-match candidate set
// (per spec §4.2 step 3, QuotedString is excluded from it) by the lexer's
// comment/string pre-split phase. It opens on '"', accepts a backslash as
// an escape for the following character, and finalizes on an unescaped
// closing '"'. A raw, unescaped newline before the string is finalized is
// an error handled by the caller, not by this type.
type quotedStringRecognizer struct {
	content      []byte
	started      bool
	done         bool
	stuck        bool
	pendingEscape bool
}

func (r *quotedStringRecognizer) search(c byte) bool {
	if r.stuck || r.done {
		r.stuck = true
		return false
	}
	if !r.started {
		if c != '"' {
			r.stuck = true
			return false
		}
		r.started = true
		r.content = append(r.content, c)
		return true
	}
	r.content = append(r.content, c)
	if r.pendingEscape {
		r.pendingEscape = false
		return true
	}
	if c == '\\' {
		r.pendingEscape = true
		return true
	}
	if c == '"' {
		r.done = true
		return true
	}
	return true
}

func (r *quotedStringRecognizer) finalizable() bool { return r.done }
func (r *quotedStringRecognizer) length() int       { return len(r.content) }
func (r *quotedStringRecognizer) tokenType() TokenType { return QUOTED_STRING }
