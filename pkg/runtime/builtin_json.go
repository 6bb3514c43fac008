// builtin_json.go - JSON builtins
//
// jsonParse preserves object key order by walking the decoder's token stream
// instead of decoding into Go maps. jsonStringify emits keys in insertion
// order for the same reason.
package runtime

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/barescript-org/barescript/pkg/script"
)

// builtinJSONParse parses a JSON string, returning null on malformed input
func builtinJSONParse(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("jsonParse", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	value, perr := JSONToValue(s)
	if perr != nil {
		return script.NewNull(), nil
	}
	return value, nil
}

// builtinJSONStringify renders a value as JSON, optionally indented
func builtinJSONStringify(ex *script.ExecState, args []script.Value) (script.Value, error) {
	indent := int(optNumber(args, 1, 0))
	var builder strings.Builder
	writeJSONValue(&builder, argValue(args, 0), indent, 0)
	return script.NewString(builder.String()), nil
}

// JSONToValue parses JSON text into a script value with ordered objects
func JSONToValue(s string) (script.Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	value, err := decodeJSONValue(dec)
	if err != nil {
		return script.NewNull(), err
	}
	return value, nil
}

func decodeJSONValue(dec *json.Decoder) (script.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return script.NewNull(), err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (script.Value, error) {
	switch t := tok.(type) {
	case nil:
		return script.NewNull(), nil
	case bool:
		return script.NewBool(t), nil
	case float64:
		return script.NewNumber(t), nil
	case string:
		return script.NewString(t), nil
	case json.Delim:
		switch t {
		case '{':
			obj := script.NewObjectMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return script.NewNull(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return script.NewNull(), fmt.Errorf("invalid object key %v", keyTok)
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return script.NewNull(), err
				}
				obj.Set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return script.NewNull(), err
			}
			return script.NewObject(obj), nil
		case '[':
			var elements []script.Value
			for dec.More() {
				value, err := decodeJSONValue(dec)
				if err != nil {
					return script.NewNull(), err
				}
				elements = append(elements, value)
			}
			if _, err := dec.Token(); err != nil {
				return script.NewNull(), err
			}
			return script.NewArray(elements), nil
		}
	}
	return script.NewNull(), fmt.Errorf("unexpected token %v", tok)
}

// writeJSONValue renders one value. indent of 0 is compact; otherwise each
// nesting level indents by indent spaces.
func writeJSONValue(b *strings.Builder, v script.Value, indent, depth int) {
	switch v.Type {
	case script.VAL_NULL, script.VAL_FUNCTION:
		b.WriteString("null")
	case script.VAL_BOOL:
		if v.AsBool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case script.VAL_NUMBER:
		n := v.AsNumber()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			b.WriteString("null")
		} else if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			b.WriteString(strconv.FormatInt(int64(n), 10))
		} else {
			b.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
		}
	case script.VAL_STRING:
		writeJSONString(b, v.AsString())
	case script.VAL_DATETIME:
		writeJSONString(b, v.String())
	case script.VAL_ARRAY:
		elements := v.AsArray()
		if len(elements) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[")
		for i, elem := range elements {
			if i > 0 {
				b.WriteString(",")
			}
			writeJSONNewline(b, indent, depth+1)
			writeJSONValue(b, elem, indent, depth+1)
		}
		writeJSONNewline(b, indent, depth)
		b.WriteString("]")
	case script.VAL_OBJECT:
		obj := v.AsObject()
		if obj.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{")
		for i, key := range obj.Keys() {
			if i > 0 {
				b.WriteString(",")
			}
			writeJSONNewline(b, indent, depth+1)
			writeJSONString(b, key)
			b.WriteString(":")
			if indent > 0 {
				b.WriteString(" ")
			}
			value, _ := obj.Get(key)
			writeJSONValue(b, value, indent, depth+1)
		}
		writeJSONNewline(b, indent, depth)
		b.WriteString("}")
	}
}

func writeJSONNewline(b *strings.Builder, indent, depth int) {
	if indent > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", indent*depth))
	}
}

func writeJSONString(b *strings.Builder, s string) {
	encoded, err := json.Marshal(s)
	if err != nil {
		b.WriteString(`""`)
		return
	}
	b.Write(encoded)
}
