// linter.go - Static analysis of parsed scripts
//
// LintScript reports statically detectable defects on the parsed model as
// human-readable warnings. It is pure: it never mutates the script and never
// fails on a well-formed model. The lowered statement form is its input, so
// hidden loop variables and generated labels participate like any others
// (the lowering always assigns before use and jumps to labels it emits, so
// they never produce warnings themselves).
package script

import "fmt"

// LintScript analyses a parsed script and returns its warnings
func LintScript(s *Script) []string {
	if len(s.Statements) == 0 {
		return []string{"Empty script"}
	}

	var warnings []string

	// Function definitions
	functionDefs := make(map[string]bool)
	for ix, stmt := range s.Statements {
		fn, ok := stmt.(*FunctionStatement)
		if !ok {
			continue
		}
		if functionDefs[fn.FuncName] {
			warnings = append(warnings, fmt.Sprintf("Duplicate definition of function %q (index %d)", fn.FuncName, ix))
		}
		functionDefs[fn.FuncName] = true
		warnings = append(warnings, lintFunction(fn)...)
	}

	warnings = append(warnings, lintBody(s.Statements, "", nil)...)
	return warnings
}

// lintFunction checks one function's arguments and body
func lintFunction(fn *FunctionStatement) []string {
	var warnings []string

	// Duplicate arguments
	seen := make(map[string]bool)
	for _, arg := range fn.Args {
		if seen[arg] {
			warnings = append(warnings, fmt.Sprintf("Duplicate argument %q of function %q", arg, fn.FuncName))
		}
		seen[arg] = true
	}

	// Unused arguments
	uses := bodyVariableUses(fn.Statements)
	for _, arg := range fn.Args {
		if _, ok := uses[arg]; !ok {
			warnings = append(warnings, fmt.Sprintf("Unused argument %q of function %q", arg, fn.FuncName))
		}
	}

	warnings = append(warnings, lintBody(fn.Statements, fn.FuncName, fn.Args)...)
	return warnings
}

// lintBody checks one statement list: labels, variable usage, and pointless
// statements. fnName is empty at the script top level.
func lintBody(stmts []Statement, fnName string, fnArgs []string) []string {
	var warnings []string
	warn := func(global, inFunction string, args ...any) {
		if fnName == "" {
			warnings = append(warnings, fmt.Sprintf(global, args...))
		} else {
			warnings = append(warnings, fmt.Sprintf(inFunction, append(args, fnName)...))
		}
	}

	// Labels: duplicates, unknown jump targets, unused labels
	labels := make(map[string]int)
	for ix, stmt := range stmts {
		if label, ok := stmt.(*LabelStatement); ok {
			if _, dup := labels[label.Name]; dup {
				warn("Redefinition of global label %q (index %d)",
					"Redefinition of label %q (index %d) in function %q", label.Name, ix)
				continue
			}
			labels[label.Name] = ix
		}
	}
	jumped := make(map[string]bool)
	for ix, stmt := range stmts {
		if jump, ok := stmt.(*JumpStatement); ok {
			jumped[jump.Label] = true
			if _, known := labels[jump.Label]; !known {
				warn("Unknown global label %q (index %d)",
					"Unknown label %q (index %d) in function %q", jump.Label, ix)
			}
		}
	}
	for ix, stmt := range stmts {
		if label, ok := stmt.(*LabelStatement); ok {
			if !jumped[label.Name] && labels[label.Name] == ix {
				warn("Unused global label %q (index %d)",
					"Unused label %q (index %d) in function %q", label.Name, ix)
			}
		}
	}

	// Variable usage
	params := make(map[string]bool)
	for _, arg := range fnArgs {
		params[arg] = true
	}
	assigns := make(map[string]int)
	for ix, stmt := range stmts {
		if expr, ok := stmt.(*ExprStatement); ok && expr.Name != "" {
			if _, assigned := assigns[expr.Name]; !assigned {
				assigns[expr.Name] = ix
			}
		}
	}
	uses := bodyVariableUses(stmts)
	for ix, stmt := range stmts {
		expr, ok := stmt.(*ExprStatement)
		if !ok || expr.Name == "" || assigns[expr.Name] != ix || params[expr.Name] {
			continue
		}
		name := expr.Name
		ixUse, used := uses[name]
		if used && ixUse <= ix {
			warn("Global variable %q used (index %d) before assignment (index %d)",
				"Variable %q used (index %d) before assignment (index %d) in function %q",
				name, ixUse, ix)
		}
		if !used {
			warn("Unused global variable %q (index %d)",
				"Unused variable %q (index %d) in function %q", name, ix)
		}
	}

	// Pointless statements: a discarded expression with no function call
	for ix, stmt := range stmts {
		if expr, ok := stmt.(*ExprStatement); ok && expr.Name == "" && !exprHasCall(expr.Expr) {
			warn("Pointless global statement (index %d)",
				"Pointless statement (index %d) in function %q", ix)
		}
	}

	return warnings
}

// bodyVariableUses maps each variable name to the index of the statement
// that first references it
func bodyVariableUses(stmts []Statement) map[string]int {
	uses := make(map[string]int)
	for ix, stmt := range stmts {
		for _, expr := range statementExpressions(stmt) {
			walkVariables(expr, func(name string) {
				if _, ok := uses[name]; !ok {
					uses[name] = ix
				}
			})
		}
	}
	return uses
}

// statementExpressions returns the expressions evaluated by a statement
func statementExpressions(stmt Statement) []Expression {
	switch s := stmt.(type) {
	case *ExprStatement:
		return []Expression{s.Expr}
	case *JumpStatement:
		if s.Expr != nil {
			return []Expression{s.Expr}
		}
	case *ReturnStatement:
		if s.Expr != nil {
			return []Expression{s.Expr}
		}
	}
	return nil
}

// walkVariables visits every variable reference in an expression
func walkVariables(expr Expression, visit func(name string)) {
	switch e := expr.(type) {
	case *VariableExpr:
		if e.Name != "null" {
			visit(e.Name)
		}
	case *GroupExpr:
		walkVariables(e.Inner, visit)
	case *UnaryExpr:
		walkVariables(e.Operand, visit)
	case *BinaryExpr:
		walkVariables(e.Left, visit)
		walkVariables(e.Right, visit)
	case *CallExpr:
		for _, arg := range e.Args {
			walkVariables(arg, visit)
		}
	}
}

// exprHasCall reports whether an expression contains any function call
func exprHasCall(expr Expression) bool {
	switch e := expr.(type) {
	case *CallExpr:
		return true
	case *GroupExpr:
		return exprHasCall(e.Inner)
	case *UnaryExpr:
		return exprHasCall(e.Operand)
	case *BinaryExpr:
		return exprHasCall(e.Left) || exprHasCall(e.Right)
	}
	return false
}
