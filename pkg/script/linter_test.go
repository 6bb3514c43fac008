package script

import (
	"strings"
	"testing"
)

// Helper to lint source text
func lintSource(t *testing.T, source string) []string {
	t.Helper()
	parsed, err := ParseScript(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return LintScript(parsed)
}

// Helper asserting a warning containing each fragment exists
func expectWarning(t *testing.T, warnings []string, fragments ...string) {
	t.Helper()
	for _, warning := range warnings {
		found := true
		for _, fragment := range fragments {
			if !strings.Contains(warning, fragment) {
				found = false
				break
			}
		}
		if found {
			return
		}
	}
	t.Errorf("no warning containing %q in %v", fragments, warnings)
}

func TestLintScript_EmptyScript(t *testing.T) {
	warnings := LintScript(&Script{})
	if len(warnings) != 1 || warnings[0] != "Empty script" {
		t.Fatalf("expected [\"Empty script\"], got %v", warnings)
	}
}

func TestLintScript_UnusedGlobalVariable(t *testing.T) {
	warnings := lintSource(t, "x = 1")
	expectWarning(t, warnings, `Unused global variable "x"`)

	// No pointless-statement warning for an assignment
	for _, warning := range warnings {
		if strings.Contains(warning, "Pointless") {
			t.Errorf("unexpected pointless warning: %q", warning)
		}
	}
}

func TestLintScript_UnknownGlobalLabel(t *testing.T) {
	warnings := lintSource(t, "jump nowhere")
	expectWarning(t, warnings, `Unknown global label "nowhere"`)
}

func TestLintScript_UnusedAndDuplicateLabels(t *testing.T) {
	warnings := lintSource(t, "lonely:\nx = f()")
	expectWarning(t, warnings, `Unused global label "lonely"`)

	warnings = lintSource(t, "twice:\ntwice:\njump twice")
	expectWarning(t, warnings, `Redefinition of global label "twice"`)
}

func TestLintScript_UseBeforeAssignment(t *testing.T) {
	warnings := lintSource(t, "y = x\nx = 1\nz = f(x, y)")
	expectWarning(t, warnings, `Global variable "x" used (index 0) before assignment (index 1)`)
}

func TestLintScript_PointlessStatement(t *testing.T) {
	warnings := lintSource(t, "1 + 2")
	expectWarning(t, warnings, "Pointless global statement (index 0)")

	// A function call is not pointless
	for _, warning := range lintSource(t, "debugLog('hi')") {
		if strings.Contains(warning, "Pointless") {
			t.Errorf("unexpected pointless warning: %q", warning)
		}
	}
}

func TestLintScript_FunctionChecks(t *testing.T) {
	source := strings.Join([]string{
		"function f(a, a, unused):",
		"    x = 1",
		"    return a",
		"endfunction",
	}, "\n")
	warnings := lintSource(t, source)

	expectWarning(t, warnings, `Duplicate argument "a" of function "f"`)
	expectWarning(t, warnings, `Unused argument "unused" of function "f"`)
	expectWarning(t, warnings, `Unused variable "x"`, `in function "f"`)
}

func TestLintScript_FunctionUseBeforeAssignment(t *testing.T) {
	source := strings.Join([]string{
		"function f(a):",
		"    y = z",
		"    z = a",
		"    return y + z",
		"endfunction",
	}, "\n")
	warnings := lintSource(t, source)
	expectWarning(t, warnings, `Variable "z" used (index 0) before assignment (index 1)`, `in function "f"`)

	// Parameters are exempt even though they are never assigned
	for _, warning := range warnings {
		if strings.Contains(warning, `"a"`) {
			t.Errorf("unexpected warning about parameter: %q", warning)
		}
	}
}

func TestLintScript_DuplicateFunction(t *testing.T) {
	source := strings.Join([]string{
		"function f():",
		"    return 1",
		"endfunction",
		"function f():",
		"    return 2",
		"endfunction",
	}, "\n")
	warnings := lintSource(t, source)
	expectWarning(t, warnings, `Duplicate definition of function "f"`)
}

func TestLintScript_UnknownLabelInFunction(t *testing.T) {
	source := strings.Join([]string{
		"function f():",
		"    jump missing",
		"endfunction",
	}, "\n")
	warnings := lintSource(t, source)
	expectWarning(t, warnings, `Unknown label "missing"`, `in function "f"`)
}

func TestLintScript_LoweredLoopIsClean(t *testing.T) {
	// Lowered for/while constructs must not trigger warnings about their
	// hidden variables or generated labels
	source := strings.Join([]string{
		"total = 0",
		"for v in arrayNewArgs(1, 2, 3):",
		"    total = total + v",
		"endfor",
		"return total",
	}, "\n")
	for _, warning := range lintSource(t, source) {
		if strings.Contains(warning, labelPrefix) {
			t.Errorf("warning about generated name: %q", warning)
		}
	}
}

func TestLintScript_Deterministic(t *testing.T) {
	source := "y = x\nx = 1\njump nowhere\n1 + 2"
	first := lintSource(t, source)
	second := lintSource(t, source)
	if len(first) != len(second) {
		t.Fatalf("lint not deterministic: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("lint not deterministic at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
