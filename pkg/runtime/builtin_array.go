// builtin_array.go - Array builtins
//
// Arrays are shared by reference: mutating builtins (arraySet, arrayPush,
// arrayPop, arrayExtend) operate in place and are observable through every
// alias of the array.
package runtime

import (
	"fmt"
	"strings"

	"github.com/barescript-org/barescript/pkg/script"
)

// builtinArrayNew creates an array of the given size filled with a value.
// Registered as both arrayNew and arraySize.
func builtinArrayNew(ex *script.ExecState, args []script.Value) (script.Value, error) {
	size := int(optNumber(args, 0, 0))
	if size < 0 {
		size = 0
	}
	fill := argValue(args, 1)
	if fill.IsNull() {
		fill = script.NewNumber(0)
	}
	elements := make([]script.Value, size)
	for i := range elements {
		elements[i] = fill
	}
	return script.NewArray(elements), nil
}

// builtinArrayNewArgs creates an array from its arguments
func builtinArrayNewArgs(ex *script.ExecState, args []script.Value) (script.Value, error) {
	elements := make([]script.Value, len(args))
	copy(elements, args)
	return script.NewArray(elements), nil
}

// builtinArrayCopy returns a shallow copy
func builtinArrayCopy(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayCopy", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	elements := make([]script.Value, len(*arr))
	copy(elements, *arr)
	return script.NewArray(elements), nil
}

// builtinArrayGet returns the element at an index, or null when out of range
func builtinArrayGet(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayGet", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	ix, err := needNumber("arrayGet", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	i := int(ix)
	if i < 0 || i >= len(*arr) {
		return script.NewNull(), nil
	}
	return (*arr)[i], nil
}

// builtinArraySet replaces the element at an index in place
func builtinArraySet(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arraySet", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	ix, err := needNumber("arraySet", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	i := int(ix)
	if i < 0 || i >= len(*arr) {
		return script.NewNull(), fmt.Errorf("arraySet() index %d out of range (length %d)", i, len(*arr))
	}
	value := argValue(args, 2)
	(*arr)[i] = value
	return value, nil
}

// builtinArrayPush appends a value and returns the array
func builtinArrayPush(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayPush", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	*arr = append(*arr, args[1:]...)
	return argValue(args, 0), nil
}

// builtinArrayPop removes and returns the last element, or null when empty
func builtinArrayPop(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayPop", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	if len(*arr) == 0 {
		return script.NewNull(), nil
	}
	last := (*arr)[len(*arr)-1]
	*arr = (*arr)[:len(*arr)-1]
	return last, nil
}

// builtinArrayExtend appends every element of the second array to the first
func builtinArrayExtend(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayExtend", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	other, err := needArray("arrayExtend", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	*arr = append(*arr, *other...)
	return argValue(args, 0), nil
}

// builtinArrayIndexOf finds a value by strict equality at or after start,
// returning -1 when absent
func builtinArrayIndexOf(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayIndexOf", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	find := argValue(args, 1)
	start := int(optNumber(args, 2, 0))
	if start < 0 {
		start = 0
	}
	for i := start; i < len(*arr); i++ {
		if script.Equal((*arr)[i], find) {
			return script.NewNumber(float64(i)), nil
		}
	}
	return script.NewNumber(-1), nil
}

// builtinArrayJoin renders the elements as strings joined by a separator
func builtinArrayJoin(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayJoin", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	sep, err := needString("arrayJoin", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	parts := make([]string, len(*arr))
	for i, v := range *arr {
		parts[i] = v.String()
	}
	return script.NewString(strings.Join(parts, sep)), nil
}

// builtinArrayLength returns the number of elements
func builtinArrayLength(ex *script.ExecState, args []script.Value) (script.Value, error) {
	arr, err := needArray("arrayLength", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewNumber(float64(len(*arr))), nil
}

// builtinArraySplit splits a string into an array of strings
func builtinArraySplit(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("arraySplit", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	sep, err := needString("arraySplit", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	parts := strings.Split(s, sep)
	elements := make([]script.Value, len(parts))
	for i, part := range parts {
		elements[i] = script.NewString(part)
	}
	return script.NewArray(elements), nil
}
