// args.go - Builtin argument helpers
//
// Builtins receive positional argument slices. Missing arguments read as
// null, matching the language's call semantics. The need* helpers enforce a
// type and fail with the builtin's name; the opt* helpers substitute a
// default for null or absent arguments.
package runtime

import (
	"fmt"
	"time"

	"github.com/barescript-org/barescript/pkg/script"
)

// argValue returns the i-th argument, or null when absent
func argValue(args []script.Value, i int) script.Value {
	if i < 0 || i >= len(args) {
		return script.NewNull()
	}
	return args[i]
}

func needNumber(fn string, args []script.Value, i int) (float64, error) {
	v := argValue(args, i)
	if !v.IsNumber() {
		return 0, fmt.Errorf("%s() requires a number, got %s", fn, v.Type)
	}
	return v.AsNumber(), nil
}

func needString(fn string, args []script.Value, i int) (string, error) {
	v := argValue(args, i)
	if !v.IsString() {
		return "", fmt.Errorf("%s() requires a string, got %s", fn, v.Type)
	}
	return v.AsString(), nil
}

func needArray(fn string, args []script.Value, i int) (*[]script.Value, error) {
	v := argValue(args, i)
	if !v.IsArray() {
		return nil, fmt.Errorf("%s() requires an array, got %s", fn, v.Type)
	}
	return v.AsArrayPtr(), nil
}

func needObject(fn string, args []script.Value, i int) (*script.Object, error) {
	v := argValue(args, i)
	if !v.IsObject() {
		return nil, fmt.Errorf("%s() requires an object, got %s", fn, v.Type)
	}
	return v.AsObject(), nil
}

func needDatetime(fn string, args []script.Value, i int) (time.Time, error) {
	v := argValue(args, i)
	if !v.IsDatetime() {
		return time.Time{}, fmt.Errorf("%s() requires a datetime, got %s", fn, v.Type)
	}
	return v.AsDatetime(), nil
}

func optNumber(args []script.Value, i int, def float64) float64 {
	if v := argValue(args, i); v.IsNumber() {
		return v.AsNumber()
	}
	return def
}

func optString(args []script.Value, i int, def string) string {
	if v := argValue(args, i); v.IsString() {
		return v.AsString()
	}
	return def
}

func optBool(args []script.Value, i int, def bool) bool {
	if v := argValue(args, i); v.IsBool() {
		return v.AsBool()
	}
	return def
}
