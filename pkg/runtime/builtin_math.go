// builtin_math.go - Numeric and math builtins
package runtime

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/barescript-org/barescript/pkg/script"
)

// mathUnary adapts a one-argument math function
func mathUnary(name string, fn func(float64) float64) script.GoFunction {
	return func(ex *script.ExecState, args []script.Value) (script.Value, error) {
		n, err := needNumber(name, args, 0)
		if err != nil {
			return script.NewNull(), err
		}
		return script.NewNumber(fn(n)), nil
	}
}

var (
	builtinAbs   = mathUnary("abs", math.Abs)
	builtinAcos  = mathUnary("acos", math.Acos)
	builtinAsin  = mathUnary("asin", math.Asin)
	builtinAtan  = mathUnary("atan", math.Atan)
	builtinCeil  = mathUnary("ceil", math.Ceil)
	builtinCos   = mathUnary("cos", math.Cos)
	builtinFloor = mathUnary("floor", math.Floor)
	builtinLn    = mathUnary("ln", math.Log)
	builtinLog10 = mathUnary("log10", math.Log10)
	builtinSin   = mathUnary("sin", math.Sin)
	builtinSqrt  = mathUnary("sqrt", math.Sqrt)
	builtinTan   = mathUnary("tan", math.Tan)
)

// builtinAtan2 computes atan2(y, x)
func builtinAtan2(ex *script.ExecState, args []script.Value) (script.Value, error) {
	y, err := needNumber("atan2", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	x, err := needNumber("atan2", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewNumber(math.Atan2(y, x)), nil
}

// builtinLog computes the logarithm of x in the given base (default 10)
func builtinLog(ex *script.ExecState, args []script.Value) (script.Value, error) {
	x, err := needNumber("log", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	base := optNumber(args, 1, 10)
	return script.NewNumber(math.Log(x) / math.Log(base)), nil
}

// builtinMax returns the largest numeric argument
func builtinMax(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return minMaxHelper("max", args, false)
}

// builtinMin returns the smallest numeric argument
func builtinMin(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return minMaxHelper("min", args, true)
}

func minMaxHelper(name string, args []script.Value, isMin bool) (script.Value, error) {
	var result float64
	var set bool
	for i := range args {
		n, err := needNumber(name, args, i)
		if err != nil {
			return script.NewNull(), err
		}
		if !set || (isMin && n < result) || (!isMin && n > result) {
			result = n
			set = true
		}
	}
	if !set {
		return script.NewNull(), nil
	}
	return script.NewNumber(result), nil
}

// builtinPi returns the circle constant
func builtinPi(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return script.NewNumber(math.Pi), nil
}

// builtinRand returns a uniform random number in [0, 1)
func builtinRand(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return script.NewNumber(rand.Float64()), nil
}

// builtinRound rounds to the given number of digits (default 0)
func builtinRound(ex *script.ExecState, args []script.Value) (script.Value, error) {
	n, err := needNumber("round", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	digits := optNumber(args, 1, 0)
	mult := math.Pow(10, digits)
	return script.NewNumber(math.Round(n*mult) / mult), nil
}

// builtinSign returns -1, 0, or 1
func builtinSign(ex *script.ExecState, args []script.Value) (script.Value, error) {
	n, err := needNumber("sign", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	switch {
	case n < 0:
		return script.NewNumber(-1), nil
	case n > 0:
		return script.NewNumber(1), nil
	}
	return script.NewNumber(0), nil
}

// builtinFixed formats a number with a fixed number of decimals (default 2).
// The optional third argument trims trailing zeros.
func builtinFixed(ex *script.ExecState, args []script.Value) (script.Value, error) {
	n, err := needNumber("fixed", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	decimals := int(optNumber(args, 1, 2))
	if decimals < 0 {
		decimals = 0
	}
	formatted := strconv.FormatFloat(n, 'f', decimals, 64)
	if optBool(args, 2, false) && strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimSuffix(formatted, ".")
	}
	return script.NewString(formatted), nil
}

// builtinParseInt parses a string as an integer, null on failure
func builtinParseInt(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("parseInt", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	n, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if perr != nil {
		return script.NewNull(), nil
	}
	return script.NewNumber(float64(n)), nil
}

// builtinParseFloat parses a string as a number, null on failure
func builtinParseFloat(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("parseFloat", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	n, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if perr != nil {
		return script.NewNull(), nil
	}
	return script.NewNumber(n), nil
}
