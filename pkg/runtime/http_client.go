// http_client.go - Default HTTP fetch capability
//
// The core's fetchText/fetchJSON builtins return null when the host supplies
// no fetch capability. HTTPFetchFn is the opt-in implementation over
// net/http that the CLI wires up; embedders may use it or supply their own.
package runtime

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/barescript-org/barescript/pkg/script"
)

// HTTPFetchFn returns a fetch capability backed by an HTTP client with the
// given timeout. A request with a body is sent as a POST.
func HTTPFetchFn(timeout time.Duration) script.FetchFn {
	client := &http.Client{Timeout: timeout}
	return func(req *script.FetchRequest) (*script.FetchResponse, error) {
		method := http.MethodGet
		var body io.Reader
		if req.Body != "" {
			method = http.MethodPost
			body = strings.NewReader(req.Body)
		}

		httpReq, err := http.NewRequest(method, req.URL, body)
		if err != nil {
			return nil, err
		}
		for key, value := range req.Headers {
			httpReq.Header.Set(key, value)
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &script.FetchResponse{
			OK:   resp.StatusCode >= 200 && resp.StatusCode < 400,
			Body: string(respBody),
		}, nil
	}
}
