// builtin_object.go - Object builtins
//
// Objects preserve key insertion order and are shared by reference.
package runtime

import (
	"fmt"

	"github.com/barescript-org/barescript/pkg/script"
)

// builtinObjectNew creates an object from alternating key/value arguments
func builtinObjectNew(ex *script.ExecState, args []script.Value) (script.Value, error) {
	obj := script.NewObjectMap()
	for i := 0; i+1 < len(args); i += 2 {
		if !args[i].IsString() {
			return script.NewNull(), fmt.Errorf("objectNew() requires string keys, got %s", args[i].Type)
		}
		obj.Set(args[i].AsString(), args[i+1])
	}
	return script.NewObject(obj), nil
}

// builtinObjectCopy returns a shallow copy preserving key order
func builtinObjectCopy(ex *script.ExecState, args []script.Value) (script.Value, error) {
	obj, err := needObject("objectCopy", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewObject(obj.Copy()), nil
}

// builtinObjectKeys returns the keys as an array, in insertion order
func builtinObjectKeys(ex *script.ExecState, args []script.Value) (script.Value, error) {
	obj, err := needObject("objectKeys", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	keys := obj.Keys()
	elements := make([]script.Value, len(keys))
	for i, key := range keys {
		elements[i] = script.NewString(key)
	}
	return script.NewArray(elements), nil
}

// builtinObjectGet returns the value for a key, or null when absent
func builtinObjectGet(ex *script.ExecState, args []script.Value) (script.Value, error) {
	obj, err := needObject("objectGet", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	key, err := needString("objectGet", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	return obj.GetOrNull(key), nil
}

// builtinObjectSet stores a value under a key
func builtinObjectSet(ex *script.ExecState, args []script.Value) (script.Value, error) {
	obj, err := needObject("objectSet", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	key, err := needString("objectSet", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	value := argValue(args, 2)
	obj.Set(key, value)
	return value, nil
}

// builtinObjectDelete removes a key
func builtinObjectDelete(ex *script.ExecState, args []script.Value) (script.Value, error) {
	obj, err := needObject("objectDelete", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	key, err := needString("objectDelete", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	obj.Delete(key)
	return script.NewNull(), nil
}

// builtinObjectHas reports whether a key is present
func builtinObjectHas(ex *script.ExecState, args []script.Value) (script.Value, error) {
	obj, err := needObject("objectHas", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	key, err := needString("objectHas", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewBool(obj.Has(key)), nil
}
