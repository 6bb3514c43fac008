package script

import (
	"strings"
	"testing"
)

// Helper to parse an expression, failing the test on error
func mustParseExpression(t *testing.T, text string) Expression {
	t.Helper()
	expr, err := ParseExpression(text)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", text, err)
	}
	return expr
}

// Helper to evaluate an expression against globals
func evalExpression(t *testing.T, text string, globals *Object) Value {
	t.Helper()
	expr := mustParseExpression(t, text)
	ex := NewExecState(globals, nil)
	value, err := ex.evaluate(expr, nil)
	if err != nil {
		t.Fatalf("unexpected evaluation error for %q: %v", text, err)
	}
	return value
}

func TestParseExpression_PrecedenceShape(t *testing.T) {
	expr := mustParseExpression(t, "1 + 2 * 3")

	add, ok := expr.(*BinaryExpr)
	if !ok || add.Op != "+" {
		t.Fatalf("expected '+' at root, got %#v", expr)
	}
	if n, ok := add.Left.(*NumberExpr); !ok || n.Value != 1 {
		t.Fatalf("expected left operand 1, got %#v", add.Left)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Op != "*" {
		t.Fatalf("expected '*' on the right, got %#v", add.Right)
	}
}

func TestParseExpression_LeftAssociativeShape(t *testing.T) {
	expr := mustParseExpression(t, "1 - 2 - 3")

	outer, ok := expr.(*BinaryExpr)
	if !ok || outer.Op != "-" {
		t.Fatalf("expected '-' at root, got %#v", expr)
	}
	if _, ok := outer.Left.(*BinaryExpr); !ok {
		t.Fatalf("expected left-associative chain, got %#v", outer.Left)
	}
	if n, ok := outer.Right.(*NumberExpr); !ok || n.Value != 3 {
		t.Fatalf("expected right operand 3, got %#v", outer.Right)
	}
}

func TestEvaluateExpression_Numeric(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"2 * 3 + 4", 10},
		{"(1 + 2) * 3", 9},
		{"2 ** 3 ** 2", 512},
		{"2 ** 3 * 4", 32},
		{"2 * 3 ** 2", 18},
		{"7 % 3", 1},
		{"10 / 4", 2.5},
		{"1 - 2 - 3", -4},
		{"-3 + 5", 2},
		{"- -4", 4},
		{"1.5e+2 + 0.5", 150.5},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := evalExpression(t, tt.text, nil)
			if !got.IsNumber() || got.AsNumber() != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateExpression_ComparisonAndLogic(t *testing.T) {
	tests := []struct {
		text string
		want Value
	}{
		{"1 < 2", NewBool(true)},
		{"2 <= 1", NewBool(false)},
		{"3 >= 3", NewBool(true)},
		{"1 == 1", NewBool(true)},
		{"1 != 1", NewBool(false)},
		{"'a' == 'a'", NewBool(true)},
		{"1 + 2 <= 4", NewBool(true)},
		{"!0", NewBool(true)},
		{"!!5", NewBool(true)},
		{"null == null", NewBool(true)},
		{"null < 1", NewBool(true)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := evalExpression(t, tt.text, nil)
			if !Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateExpression_ShortCircuitReturnsOperand(t *testing.T) {
	// "&&" and "||" return the last evaluated operand, not a bool
	got := evalExpression(t, "0 && 'never'", nil)
	if !got.IsNumber() || got.AsNumber() != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	got = evalExpression(t, "'yes' || 'no'", nil)
	if got.AsString() != "yes" {
		t.Errorf("expected \"yes\", got %v", got)
	}
	got = evalExpression(t, "1 && 'right'", nil)
	if got.AsString() != "right" {
		t.Errorf("expected \"right\", got %v", got)
	}
}

func TestEvaluateExpression_ShortCircuitSkipsCalls(t *testing.T) {
	called := false
	globals := NewObjectMap()
	globals.Set("boom", NewGoFunction("boom", func(ex *ExecState, args []Value) (Value, error) {
		called = true
		return NewNull(), nil
	}))

	got := evalExpression(t, "0 && boom() || 42", globals)
	if !got.IsNumber() || got.AsNumber() != 42 {
		t.Errorf("expected 42, got %v", got)
	}
	if called {
		t.Error("short-circuit evaluated the right operand of &&")
	}
}

func TestEvaluateExpression_IfSpecialForm(t *testing.T) {
	thenCalls, elseCalls := 0, 0
	globals := NewObjectMap()
	globals.Set("thenFn", NewGoFunction("thenFn", func(ex *ExecState, args []Value) (Value, error) {
		thenCalls++
		return NewString("then"), nil
	}))
	globals.Set("elseFn", NewGoFunction("elseFn", func(ex *ExecState, args []Value) (Value, error) {
		elseCalls++
		return NewString("else"), nil
	}))

	got := evalExpression(t, "if(1, thenFn(), elseFn())", globals)
	if got.AsString() != "then" || thenCalls != 1 || elseCalls != 0 {
		t.Errorf("if() evaluated the wrong branch: %v, then=%d else=%d", got, thenCalls, elseCalls)
	}

	got = evalExpression(t, "if(0, thenFn(), elseFn())", globals)
	if got.AsString() != "else" || thenCalls != 1 || elseCalls != 1 {
		t.Errorf("if() evaluated the wrong branch: %v, then=%d else=%d", got, thenCalls, elseCalls)
	}

	// Absent branches yield null
	if got := evalExpression(t, "if(0, thenFn())", globals); !got.IsNull() {
		t.Errorf("expected null for absent else branch, got %v", got)
	}
}

func TestParseExpression_Strings(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`'hello'`, "hello"},
		{`"hello"`, "hello"},
		{`'it\'s'`, "it's"},
		{`"a\"b"`, `a"b`},
		{`'back\\slash'`, `back\slash`},
		{`'' + 'ab'`, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := evalExpression(t, tt.text, nil)
			if got.AsString() != tt.want {
				t.Errorf("got %q, want %q", got.AsString(), tt.want)
			}
		})
	}
}

func TestParseExpression_BracketedVariable(t *testing.T) {
	expr := mustParseExpression(t, `[name with spaces]`)
	variable, ok := expr.(*VariableExpr)
	if !ok || variable.Name != "name with spaces" {
		t.Fatalf("expected bracketed variable, got %#v", expr)
	}

	// Escaped closing bracket
	expr = mustParseExpression(t, `[weird\]name]`)
	variable, ok = expr.(*VariableExpr)
	if !ok || variable.Name != "weird]name" {
		t.Fatalf("expected escaped bracketed variable, got %#v", expr)
	}

	globals := NewObjectMap()
	globals.Set("name with spaces", NewNumber(5))
	got := evalExpression(t, `[name with spaces] + 1`, globals)
	if got.AsNumber() != 6 {
		t.Errorf("expected 6, got %v", got)
	}
}

func TestEvaluateExpression_Variables(t *testing.T) {
	globals := NewObjectMap()
	globals.Set("x", NewNumber(3))

	if got := evalExpression(t, "x * x", globals); got.AsNumber() != 9 {
		t.Errorf("expected 9, got %v", got)
	}
	// Unknown variables read as null
	if got := evalExpression(t, "unknown", globals); !got.IsNull() {
		t.Errorf("expected null, got %v", got)
	}
	// "null" is a keyword even when a variable of that name exists
	globals.Set("null", NewNumber(1))
	if got := evalExpression(t, "null", globals); !got.IsNull() {
		t.Errorf("expected null keyword, got %v", got)
	}
}

func TestParseExpression_Errors(t *testing.T) {
	tests := []struct {
		text    string
		wantMsg string
	}{
		{"1 +", "Syntax error"},
		{"(1 + 2", "Unmatched parenthesis"},
		{"f(1, 2", "Unmatched parenthesis"},
		{"1 2", "Syntax error"},
		{"", "Syntax error"},
		{"#", "Syntax error"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseExpression(tt.text)
			if err == nil {
				t.Fatal("expected parse error but got none")
			}
			perr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Message != tt.wantMsg {
				t.Errorf("got message %q, want %q", perr.Message, tt.wantMsg)
			}
		})
	}
}

func TestParseExpression_ErrorColumn(t *testing.T) {
	_, err := ParseExpression("1 + $")
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.ColumnNumber != 4 {
		t.Errorf("got column %d, want 4", perr.ColumnNumber)
	}
	if !strings.Contains(perr.Error(), "^") {
		t.Errorf("expected caret in rendered error:\n%s", perr.Error())
	}
}

func TestParseExpression_FunctionCalls(t *testing.T) {
	expr := mustParseExpression(t, "f()")
	call, ok := expr.(*CallExpr)
	if !ok || call.FuncName != "f" || len(call.Args) != 0 {
		t.Fatalf("expected zero-arg call, got %#v", expr)
	}

	expr = mustParseExpression(t, "g(1, 'a', h(2))")
	call, ok = expr.(*CallExpr)
	if !ok || call.FuncName != "g" || len(call.Args) != 3 {
		t.Fatalf("expected three-arg call, got %#v", expr)
	}
	if _, ok := call.Args[2].(*CallExpr); !ok {
		t.Fatalf("expected nested call, got %#v", call.Args[2])
	}
}
