package repository

import (
	"errors"
	"net/http"

	"github.com/google/go-github/github"

	"reponavigator/types"
)

// classify maps a go-github failure onto the error taxonomy. notFound is the
// kind reported for a 404, which differs between repository and README
// lookups.
func classify(op string, notFound error, resp *github.Response, err error) error {
	status := statusOf(resp, err)

	kind := types.ErrProvider
	switch status {
	case http.StatusNotFound:
		kind = notFound
	case http.StatusUnauthorized:
		kind = types.ErrAuthenticationFailed
	case http.StatusForbidden:
		kind = types.ErrAccessDenied
	}
	return types.NewError(kind, op, status, err)
}

func statusOf(resp *github.Response, err error) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return http.StatusForbidden
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return http.StatusForbidden
	}
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}
