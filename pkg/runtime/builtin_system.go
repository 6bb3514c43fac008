// builtin_system.go - Environment and host builtins
package runtime

import (
	"strings"

	"github.com/barescript-org/barescript/pkg/script"
)

// builtinTypeof returns the value's type name
func builtinTypeof(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return script.NewString(argValue(args, 0).Type.String()), nil
}

// builtinDebugLog routes text through the host log capability. Dropped when
// the host supplies none.
func builtinDebugLog(ex *script.ExecState, args []script.Value) (script.Value, error) {
	ex.Log(argValue(args, 0).String())
	return script.NewNull(), nil
}

// uriComponentUnreserved are the characters encodeURIComponent leaves as-is
const uriComponentUnreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~*'()"

// uriUnreserved additionally keeps the characters meaningful in a full URL
const uriUnreserved = uriComponentUnreserved + ";/?:@&=+$,#"

// builtinEncodeURIComponent percent-encodes a string for use as a URL
// component
func builtinEncodeURIComponent(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("encodeURIComponent", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewString(percentEncode(s, uriComponentUnreserved)), nil
}

// builtinURLEncode percent-encodes a string, preserving URL structure
// characters
func builtinURLEncode(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("urlEncode", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewString(percentEncode(s, uriUnreserved)), nil
}

const upperhex = "0123456789ABCDEF"

// percentEncode escapes every byte outside the unreserved set as %XX
func percentEncode(s, unreserved string) string {
	var builder strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(unreserved, c) >= 0 {
			builder.WriteByte(c)
		} else {
			builder.WriteByte('%')
			builder.WriteByte(upperhex[c>>4])
			builder.WriteByte(upperhex[c&0xf])
		}
	}
	return builder.String()
}
