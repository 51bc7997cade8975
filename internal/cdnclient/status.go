package cdnclient

import (
	"errors"
	"io"
	"net/http"

	"cdn77cli/pkg/exitcode"
)

// ErrPlanNotActive reports the 404 the billing and storage endpoints return
// when the account has no PAYG tariff or monthly plan. Commands treat it as
// a degraded success: informational output, zero exit code.
var ErrPlanNotActive = errors.New("no PAYG tariff nor Monthly Plan active")

// statusRule gives one status code a command-specific meaning, overriding
// the shared default table for that code.
type statusRule struct {
	code   int
	handle func(resp *http.Response) error
}

// interpret routes a response by its numeric status code: the command's own
// rules in order first, the shared default table for everything else. The
// body is not touched until a rule that needs it runs.
func interpret(resp *http.Response, rules ...statusRule) error {
	for _, rule := range rules {
		if rule.code == resp.StatusCode {
			return rule.handle(resp)
		}
	}
	return defaultStatusError(resp)
}

// defaultStatusError maps the status codes whose meaning is stable across
// all API operations. Some operations reuse a code with a different meaning
// (403 on purge-all is "feature disabled", not "bad credentials"), which is
// why this table is consulted only after the command's own rules declined.
func defaultStatusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return exitcode.Expected("Got 401/unauthorized. Please check your credentials.")
	case http.StatusForbidden:
		return exitcode.Expected("Got 403/forbidden. Please check your credentials or the API operation args.")
	case http.StatusNotFound:
		return exitcode.Expected("The requested resource was not found. Please validate your args.")
	case http.StatusMethodNotAllowed:
		return exitcode.Unexpected("Received 405/MethodNotAllowed. This might be an issue with an outdated client due to API changes.")
	case http.StatusUnprocessableEntity:
		return exitcode.Unexpected("Received 422/UnprocessableEntity. This might be an issue with this client, please check for an update.")
	default:
		return exitcode.Unexpectedf("Received unexpected/unknown status code=%d, please check the response for an explanation: %s",
			resp.StatusCode, readBodyOrDefault(resp))
	}
}

// readBodyOrDefault drains the response body for error reporting, falling
// back to a placeholder when nothing readable is there.
func readBodyOrDefault(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return "FAILED TO READ RESPONSE, EMPTY?"
	}
	return string(body)
}
