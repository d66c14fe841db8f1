package client

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	nethttp "net/http"
	"runtime/debug"
	"time"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
	internalhttp "github.com/fivetwenty-io/cmsapi/internal/http"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// captureOutcome is the single place every call outcome is mapped onto the
// result envelope. The request URI and elapsed time are recorded on every
// path. The distinct modes:
//
//   - response, no error: status taken from the response; body decoding
//     happens separately, for any status code.
//   - response and error: the response line was read but the call failed
//     (body read aborted); status from the response, error detail recorded.
//   - error only: no HTTP response at all (refused connection, DNS
//     failure, header application failure); internal-server-error status,
//     error detail recorded.
func captureOutcome(result cms.Result, uri string, elapsed time.Duration, resp *internalhttp.Response, err error) {
	info := result.Info()
	info.URI = uri
	info.Elapsed = elapsed

	switch {
	case err == nil && resp != nil:
		result.SetStatus(resp.StatusCode, resp.Status)
	case resp != nil:
		result.SetStatus(resp.StatusCode, resp.Status)
		info.ErrorMessage = err.Error()
		info.StackTrace = string(debug.Stack())
	default:
		result.SetStatus(constants.HTTPStatusInternalServerError, nethttp.StatusText(constants.HTTPStatusInternalServerError))
		info.ErrorMessage = err.Error()
		info.StackTrace = string(debug.Stack())
	}
}

// captureDecodeFailure records a body-decode failure. The HTTP exchange
// itself completed, but the result payload is unusable, so the envelope is
// downgraded to an internal-server-error status with the parse error.
func captureDecodeFailure(result cms.Result, err error) {
	info := result.Info()
	info.ErrorMessage = err.Error()
	info.StackTrace = string(debug.Stack())

	result.SetStatus(constants.HTTPStatusInternalServerError, nethttp.StatusText(constants.HTTPStatusInternalServerError))
}

// decodeBody unmarshals the response body into result per the requested
// format. Empty or whitespace-only bodies leave the result at its zero
// value rather than failing.
func decodeBody(body []byte, format cms.ResponseFormat, result cms.Result) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	switch format {
	case cms.FormatXML:
		err := xml.Unmarshal(body, result)
		if err != nil {
			return fmt.Errorf("parsing xml response: %w", err)
		}
	case cms.FormatJSON, "":
		err := json.Unmarshal(body, result)
		if err != nil {
			return fmt.Errorf("parsing json response: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", cms.ErrUnsupportedFormat, format)
	}

	return nil
}
