package codegen

import (
	"strings"
	"testing"

	"github.com/poiboi-lang/poiboic/internal/funcs"
	"github.com/poiboi-lang/poiboic/internal/lexer"
	"github.com/poiboi-lang/poiboic/internal/parser"
)

func compile(t *testing.T, src string) (*funcs.Table, error) {
	t.Helper()
	toks, err := lexer.New("t.pb", src).Scan()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	root, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	fns, err := funcs.Extract(root)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	table, err := funcs.BuildTable(fns)
	if err != nil {
		return nil, err
	}
	return table, nil
}

func TestEmitPrintStatement(t *testing.T) {
	table, err := compile(t, `Main() { PRINT("Hello World!"); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := GenerateProgram(table)
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}
	if !strings.Contains(out, `Builtin_Print(PBString::FromLiteral("Hello World!"));`) {
		t.Errorf("missing PRINT call in output:\n%s", out)
	}
	if !strings.Contains(out, "Main_poiboi_fn") {
		t.Errorf("missing _poiboi_fn marker")
	}
}

func TestEmitGlobalDeclarationIsUnique(t *testing.T) {
	src := `Main() { GLOBAL g = "x"; Helper(); PRINT(g); } Helper() { GLOBAL g = "y"; }`
	table, err := compile(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := GenerateProgram(table)
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}
	count := strings.Count(out, "PBString GLOBAL_VAR_g;")
	if count != 1 {
		t.Errorf("expected exactly one global declaration, found %d in:\n%s", count, out)
	}
}

func TestEmitNewLocalGetsDeclaration(t *testing.T) {
	table, err := compile(t, `Main() { x = CONCAT("a", "b"); PRINT(x); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := GenerateProgram(table)
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}
	want := `PBString LOCAL_VAR_x = Builtin_Concat(PBString::FromLiteral("a"), PBString::FromLiteral("b"));`
	if !strings.Contains(out, want) {
		t.Errorf("missing local declaration in:\n%s", out)
	}
}

func TestEmitUndefinedVariableIsError(t *testing.T) {
	table, err := compile(t, `Main() { PRINT(y); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := GenerateProgram(table); err == nil {
		t.Fatal("expected undefined variable error")
	}
}

func TestEmitBreakOutsideLoopIsError(t *testing.T) {
	table, err := compile(t, `Main() { BREAK; }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := GenerateProgram(table); err == nil {
		t.Fatal("expected BREAK-outside-loop error")
	}
}

func TestEmitBreakInsideWhileIsAllowed(t *testing.T) {
	table, err := compile(t, `Main() { i = "0"; WHILE [NOT(EQUAL(i,"3"))] { PRINT(i); BREAK; } }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := GenerateProgram(table)
	if err != nil {
		t.Fatalf("unexpected codegen error: %v", err)
	}
	if !strings.Contains(out, "while (") || !strings.Contains(out, "break;") {
		t.Errorf("missing while/break in:\n%s", out)
	}
}

func TestEmitArityMismatchIsError(t *testing.T) {
	table, err := compile(t, `Main() { PRINT("a", "b"); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := GenerateProgram(table); err == nil {
		t.Fatal("expected arity mismatch error")
	}
}

func TestEmitUnknownBuiltinIsError(t *testing.T) {
	table, err := compile(t, `Main() { NOPE("a"); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := GenerateProgram(table); err == nil {
		t.Fatal("expected unknown builtin error")
	}
}

func TestEmitOneArgMainEntryPoint(t *testing.T) {
	table, err := compile(t, `Main(arg) { PRINT(arg); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := GenerateProgram(table)
	if err != nil {
		t.Fatalf("unexpected codegen error: %v", err)
	}
	if !strings.Contains(out, "argc > 1") {
		t.Errorf("expected two-arm entry point handling optional argv[1], got:\n%s", out)
	}
}
