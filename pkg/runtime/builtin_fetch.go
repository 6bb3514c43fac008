// builtin_fetch.go - Host fetch builtins
//
// fetchText and fetchJSON accept a single URL or an array of URLs and route
// each request through the host fetch capability. With no capability
// configured, or when the host answers with a failing response, the result
// is null; only a fetch exception aborts the script.
package runtime

import (
	"github.com/barescript-org/barescript/pkg/script"
)

// builtinFetchText fetches one URL or an array of URLs as text
func builtinFetchText(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return fetchHelper(ex, args, func(body string) script.Value {
		return script.NewString(body)
	})
}

// builtinFetchJSON fetches one URL or an array of URLs and parses the
// responses as JSON
func builtinFetchJSON(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return fetchHelper(ex, args, func(body string) script.Value {
		value, err := JSONToValue(body)
		if err != nil {
			return script.NewNull()
		}
		return value
	})
}

// fetchHelper performs the fetches in argument order and shapes the result:
// a single value for a string URL, an array of values for an array of URLs
func fetchHelper(ex *script.ExecState, args []script.Value, decode func(body string) script.Value) (script.Value, error) {
	urlArg := argValue(args, 0)
	options := argValue(args, 1)

	if urlArg.IsString() {
		return fetchOne(ex, urlArg.AsString(), options, decode)
	}
	if urlArg.IsArray() {
		urls := urlArg.AsArray()
		results := make([]script.Value, len(urls))
		for i, u := range urls {
			if !u.IsString() {
				results[i] = script.NewNull()
				continue
			}
			result, err := fetchOne(ex, u.AsString(), options, decode)
			if err != nil {
				return script.NewNull(), err
			}
			results[i] = result
		}
		return script.NewArray(results), nil
	}
	return script.NewNull(), nil
}

// fetchOne performs a single fetch. The optional options object may carry a
// body (signalling a mutation) and headers.
func fetchOne(ex *script.ExecState, url string, options script.Value, decode func(body string) script.Value) (script.Value, error) {
	req := &script.FetchRequest{URL: url}
	if options.IsObject() {
		obj := options.AsObject()
		if body := obj.GetOrNull("body"); body.IsString() {
			req.Body = body.AsString()
		}
		if headers := obj.GetOrNull("headers"); headers.IsObject() {
			req.Headers = make(map[string]string)
			for _, key := range headers.AsObject().Keys() {
				req.Headers[key] = headers.AsObject().GetOrNull(key).String()
			}
		}
	}

	resp, err := ex.Fetch(req)
	if err != nil {
		return script.NewNull(), err
	}
	if resp == nil || !resp.OK {
		return script.NewNull(), nil
	}
	return decode(resp.Body), nil
}
