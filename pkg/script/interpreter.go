// interpreter.go - BareScript interpreter
//
// Execute runs a parsed script against a globals environment. Each body (the
// top-level script or one function's statements) executes as a flat statement
// list: jumps resolve label names to statement indexes through a lazily
// seeded per-body cache, and a single statement counter shared across all
// call frames enforces the MaxStatements budget.
//
// The interpreter is single-threaded and cooperative. The only suspension
// points are the host capabilities (fetch, log), which are invoked in source
// order. Concurrent use of one globals environment is the caller's problem.
package script

// DefaultMaxStatements bounds a single execution's statement dispatches
const DefaultMaxStatements = 10_000_000

// FetchRequest describes one host fetch. A non-empty Body signals a
// mutation; the host confirms a write with a text response.
type FetchRequest struct {
	URL     string
	Body    string
	Headers map[string]string
}

// FetchResponse is the host's answer to a fetch. A false OK yields null in
// the script rather than an error.
type FetchResponse struct {
	OK   bool
	Body string
}

// FetchFn is the host-provided fetch capability
type FetchFn func(req *FetchRequest) (*FetchResponse, error)

// LogFn is the host-provided log capability
type LogFn func(text string)

// ExecuteOptions configures one script execution
type ExecuteOptions struct {
	// MaxStatements bounds statement dispatches; 0 disables the budget.
	// Execute applies DefaultMaxStatements when no options are given.
	MaxStatements int

	// LogFn receives debugLog output. Dropped when nil.
	LogFn LogFn

	// FetchFn serves fetchText/fetchJSON. When nil those builtins
	// return null.
	FetchFn FetchFn

	// StrictIncludes makes an unresolved include statement a runtime
	// error instead of a no-op.
	StrictIncludes bool
}

// ExecState is the state of one script execution: the globals environment,
// the options, and the statement counter shared across call frames.
type ExecState struct {
	globals        *Object
	options        *ExecuteOptions
	statementCount int
}

// NewExecState creates an execution state. Hosts normally call Execute;
// this is exposed for builtin implementations under test.
func NewExecState(globals *Object, options *ExecuteOptions) *ExecState {
	if globals == nil {
		globals = NewObjectMap()
	}
	if options == nil {
		options = &ExecuteOptions{MaxStatements: DefaultMaxStatements}
	}
	return &ExecState{globals: globals, options: options}
}

// Globals returns the execution's globals environment
func (ex *ExecState) Globals() *Object {
	return ex.globals
}

// Options returns the execution's options
func (ex *ExecState) Options() *ExecuteOptions {
	return ex.options
}

// Log routes text through the host log capability, if any
func (ex *ExecState) Log(text string) {
	if ex.options.LogFn != nil {
		ex.options.LogFn(text)
	}
}

// Fetch routes a request through the host fetch capability. With no
// capability configured the response is nil.
func (ex *ExecState) Fetch(req *FetchRequest) (*FetchResponse, error) {
	if ex.options.FetchFn == nil {
		return nil, nil
	}
	return ex.options.FetchFn(req)
}

// Execute runs a parsed script. The registered builtin library is installed
// into globals first, skipping names the caller already bound, so callers
// may override any builtin. The script's return value is the value of its
// top-level return statement, or null.
func Execute(scr *Script, globals *Object, options *ExecuteOptions) (Value, error) {
	ex := NewExecState(globals, options)
	installBuiltins(ex.globals)
	return ex.executeStatements(scr.Statements, nil)
}

// installBuiltins binds registered builtins into globals, in registration
// order, skipping names already present
func installBuiltins(globals *Object) {
	for _, name := range builtinNames {
		if !globals.Has(name) {
			globals.Set(name, NewGoFunction(name, globalBuiltins[name]))
		}
	}
}

// executeStatements runs one body. locals is nil at the script top level and
// one frame object during a function call.
func (ex *ExecState) executeStatements(stmts []Statement, locals *Object) (Value, error) {
	// Label cache for this body, seeded lazily on the first jump
	var labels map[string]int
	max := ex.options.MaxStatements

	for ix := 0; ix < len(stmts); ix++ {
		ex.statementCount++
		if max > 0 && ex.statementCount > max {
			return NewNull(), newRuntimeError("Exceeded maximum script statements (%d)", max)
		}

		switch s := stmts[ix].(type) {
		case *ExprStatement:
			value, err := ex.evaluate(s.Expr, locals)
			if err != nil {
				return NewNull(), err
			}
			if s.Name != "" {
				if locals != nil {
					locals.Set(s.Name, value)
				} else {
					ex.globals.Set(s.Name, value)
				}
			}

		case *JumpStatement:
			taken := true
			if s.Expr != nil {
				cond, err := ex.evaluate(s.Expr, locals)
				if err != nil {
					return NewNull(), err
				}
				taken = cond.IsTruthy()
			}
			if taken {
				target, ok := labels[s.Label]
				if !ok {
					target = labelTarget(stmts, s.Label)
					if target < 0 {
						return NewNull(), newRuntimeError("Unknown jump label %q", s.Label)
					}
					if labels == nil {
						labels = make(map[string]int)
					}
					labels[s.Label] = target
				}
				ix = target
			}

		case *ReturnStatement:
			if s.Expr != nil {
				return ex.evaluate(s.Expr, locals)
			}
			return NewNull(), nil

		case *FunctionStatement:
			ex.globals.Set(s.FuncName, NewFunction(&ScriptFunction{def: s}))

		case *LabelStatement:
			// No runtime effect

		case *IncludeStatement:
			// Includes are resolved at parse time in the typical
			// embedding; an unresolved one is a no-op or an error
			// as configured.
			if ex.options.StrictIncludes {
				return NewNull(), newRuntimeError("Unresolved include %q", s.Includes[0].URL)
			}
		}
	}
	return NewNull(), nil
}

// labelTarget finds the first occurrence of a label in a body by linear scan
func labelTarget(stmts []Statement, label string) int {
	for i, stmt := range stmts {
		if lbl, ok := stmt.(*LabelStatement); ok && lbl.Name == label {
			return i
		}
	}
	return -1
}

// ScriptFunction is a function defined by a script's function statement
type ScriptFunction struct {
	def *FunctionStatement
}

func (f *ScriptFunction) Name() string {
	return f.def.FuncName
}

// Call binds arguments positionally into a fresh locals frame and executes
// the function body. Missing arguments read as null; extra arguments are
// dropped unless the definition collects them into its last argument.
func (f *ScriptFunction) Call(ex *ExecState, args []Value) (Value, error) {
	locals := NewObjectMap()
	nFormal := len(f.def.Args)
	for i, name := range f.def.Args {
		if f.def.LastArgArray && i == nFormal-1 {
			break
		}
		if i < len(args) {
			locals.Set(name, args[i])
		} else {
			locals.Set(name, NewNull())
		}
	}
	if f.def.LastArgArray && nFormal > 0 {
		rest := []Value{}
		if len(args) >= nFormal {
			rest = append(rest, args[nFormal-1:]...)
		}
		locals.Set(f.def.Args[nFormal-1], NewArray(rest))
	}
	return ex.executeStatements(f.def.Statements, locals)
}
