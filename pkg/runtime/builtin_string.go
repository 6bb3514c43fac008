// builtin_string.go - Text builtins
package runtime

import (
	"strings"

	"github.com/barescript-org/barescript/pkg/script"
)

// builtinLen returns the length of a string
func builtinLen(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("len", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewNumber(float64(len(s))), nil
}

// builtinLower lowercases a string
func builtinLower(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("lower", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewString(strings.ToLower(s)), nil
}

// builtinUpper uppercases a string
func builtinUpper(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("upper", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewString(strings.ToUpper(s)), nil
}

// builtinTrim strips surrounding whitespace
func builtinTrim(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("trim", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewString(strings.TrimSpace(s)), nil
}

// builtinReplace replaces every occurrence of old with new
func builtinReplace(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("replace", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	old, err := needString("replace", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	new_, err := needString("replace", args, 2)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewString(strings.ReplaceAll(s, old, new_)), nil
}

// builtinRept repeats a string n times
func builtinRept(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("rept", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	n, err := needNumber("rept", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	if n < 0 {
		n = 0
	}
	return script.NewString(strings.Repeat(s, int(n))), nil
}

// builtinSlice extracts s[begin:end). Negative indexes count from the end;
// end defaults to the end of the string.
func builtinSlice(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("slice", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	begin := sliceIndex(optNumber(args, 1, 0), len(s))
	end := sliceIndex(optNumber(args, 2, float64(len(s))), len(s))
	if begin > end {
		return script.NewString(""), nil
	}
	return script.NewString(s[begin:end]), nil
}

// sliceIndex clamps an index into [0, length], wrapping negatives
func sliceIndex(ix float64, length int) int {
	i := int(ix)
	if i < 0 {
		i += length
	}
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i
}

// builtinIndexOf finds the first occurrence of a substring at or after
// start, returning -1 when absent
func builtinIndexOf(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("indexOf", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	find, err := needString("indexOf", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	start := sliceIndex(optNumber(args, 2, 0), len(s))
	ix := strings.Index(s[start:], find)
	if ix < 0 {
		return script.NewNumber(-1), nil
	}
	return script.NewNumber(float64(start + ix)), nil
}

// builtinText renders any value as a string
func builtinText(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return script.NewString(argValue(args, 0).String()), nil
}

// builtinStartsWith tests for a prefix
func builtinStartsWith(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("startsWith", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	prefix, err := needString("startsWith", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewBool(strings.HasPrefix(s, prefix)), nil
}

// builtinEndsWith tests for a suffix
func builtinEndsWith(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("endsWith", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	suffix, err := needString("endsWith", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewBool(strings.HasSuffix(s, suffix)), nil
}
