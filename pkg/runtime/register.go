// register.go - Builtin library registration
//
// RegisterBuiltins registers the standard builtin library in the script
// registry. Hosts call it once at startup before executing any scripts;
// script.Execute then installs the registered functions into each
// execution's globals unless the caller bound those names itself.
package runtime

import (
	"sync"

	"github.com/barescript-org/barescript/pkg/script"
)

var registerOnce sync.Once

// RegisterBuiltins registers the standard builtin library. Safe to call more
// than once.
func RegisterBuiltins() {
	registerOnce.Do(registerBuiltins)
}

func registerBuiltins() {
	// Math
	script.RegisterBuiltin("abs", builtinAbs)
	script.RegisterBuiltin("acos", builtinAcos)
	script.RegisterBuiltin("asin", builtinAsin)
	script.RegisterBuiltin("atan", builtinAtan)
	script.RegisterBuiltin("atan2", builtinAtan2)
	script.RegisterBuiltin("ceil", builtinCeil)
	script.RegisterBuiltin("cos", builtinCos)
	script.RegisterBuiltin("floor", builtinFloor)
	script.RegisterBuiltin("ln", builtinLn)
	script.RegisterBuiltin("log", builtinLog)
	script.RegisterBuiltin("log10", builtinLog10)
	script.RegisterBuiltin("max", builtinMax)
	script.RegisterBuiltin("min", builtinMin)
	script.RegisterBuiltin("pi", builtinPi)
	script.RegisterBuiltin("rand", builtinRand)
	script.RegisterBuiltin("round", builtinRound)
	script.RegisterBuiltin("sign", builtinSign)
	script.RegisterBuiltin("sin", builtinSin)
	script.RegisterBuiltin("sqrt", builtinSqrt)
	script.RegisterBuiltin("tan", builtinTan)
	script.RegisterBuiltin("fixed", builtinFixed)
	script.RegisterBuiltin("parseInt", builtinParseInt)
	script.RegisterBuiltin("parseFloat", builtinParseFloat)

	// String
	script.RegisterBuiltin("len", builtinLen)
	script.RegisterBuiltin("lower", builtinLower)
	script.RegisterBuiltin("upper", builtinUpper)
	script.RegisterBuiltin("trim", builtinTrim)
	script.RegisterBuiltin("replace", builtinReplace)
	script.RegisterBuiltin("rept", builtinRept)
	script.RegisterBuiltin("slice", builtinSlice)
	script.RegisterBuiltin("indexOf", builtinIndexOf)
	script.RegisterBuiltin("text", builtinText)
	script.RegisterBuiltin("startsWith", builtinStartsWith)
	script.RegisterBuiltin("endsWith", builtinEndsWith)

	// Datetime
	script.RegisterBuiltin("date", builtinDate)
	script.RegisterBuiltin("day", builtinDay)
	script.RegisterBuiltin("month", builtinMonth)
	script.RegisterBuiltin("year", builtinYear)
	script.RegisterBuiltin("hour", builtinHour)
	script.RegisterBuiltin("minute", builtinMinute)
	script.RegisterBuiltin("second", builtinSecond)
	script.RegisterBuiltin("now", builtinNow)
	script.RegisterBuiltin("today", builtinToday)

	// Array
	script.RegisterBuiltin("arrayNew", builtinArrayNew)
	script.RegisterBuiltin("arraySize", builtinArrayNew)
	script.RegisterBuiltin("arrayCopy", builtinArrayCopy)
	script.RegisterBuiltin("arrayGet", builtinArrayGet)
	script.RegisterBuiltin("arraySet", builtinArraySet)
	script.RegisterBuiltin("arrayPush", builtinArrayPush)
	script.RegisterBuiltin("arrayPop", builtinArrayPop)
	script.RegisterBuiltin("arrayExtend", builtinArrayExtend)
	script.RegisterBuiltin("arrayIndexOf", builtinArrayIndexOf)
	script.RegisterBuiltin("arrayJoin", builtinArrayJoin)
	script.RegisterBuiltin("arrayLength", builtinArrayLength)
	script.RegisterBuiltin("arraySplit", builtinArraySplit)
	script.RegisterBuiltin("arrayNewArgs", builtinArrayNewArgs)

	// Object
	script.RegisterBuiltin("objectNew", builtinObjectNew)
	script.RegisterBuiltin("objectCopy", builtinObjectCopy)
	script.RegisterBuiltin("objectKeys", builtinObjectKeys)
	script.RegisterBuiltin("objectGet", builtinObjectGet)
	script.RegisterBuiltin("objectSet", builtinObjectSet)
	script.RegisterBuiltin("objectDelete", builtinObjectDelete)
	script.RegisterBuiltin("objectHas", builtinObjectHas)

	// JSON
	script.RegisterBuiltin("jsonParse", builtinJSONParse)
	script.RegisterBuiltin("jsonStringify", builtinJSONStringify)

	// System
	script.RegisterBuiltin("typeof", builtinTypeof)
	script.RegisterBuiltin("encodeURIComponent", builtinEncodeURIComponent)
	script.RegisterBuiltin("urlEncode", builtinURLEncode)
	script.RegisterBuiltin("debugLog", builtinDebugLog)

	// Host fetch
	script.RegisterBuiltin("fetchText", builtinFetchText)
	script.RegisterBuiltin("fetchJSON", builtinFetchJSON)

	// Markdown
	script.RegisterBuiltin("markdownEscape", builtinMarkdownEscape)
	script.RegisterBuiltin("markdownHeaderId", builtinMarkdownHeaderID)
	script.RegisterBuiltin("markdownHTML", builtinMarkdownHTML)
}
