package appview

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	perr "skythread/internal/platform/errors"
)

// xrpcErrorBody is the JSON shape XRPC endpoints return on failure
type xrpcErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// xrpcError maps an XRPC error response to a platform error
func xrpcError(status int, body []byte) error {
	var eb xrpcErrorBody
	_ = json.Unmarshal(body, &eb)
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	if msg == "" {
		msg = "appview unexpected status"
	}

	switch {
	case status == http.StatusNotFound || eb.Error == "NotFound":
		return perr.Newf(perr.ErrorCodeNotFound, "appview: %s", msg)
	case status == http.StatusBadRequest:
		return perr.Newf(perr.ErrorCodeInvalidArgument, "appview: %s", msg)
	case status >= 500:
		return perr.Newf(perr.ErrorCodeUnavailable, "appview: %s", msg)
	default:
		return perr.Newf(perr.ErrorCodeUnknown, "appview status %d: %s", status, msg)
	}
}

// parseRateHeaders reads the lowercase ratelimit headers the AppView sends
func parseRateHeaders(h http.Header) (remaining int, reset time.Time, retryAfter int) {
	remaining = atoi(h.Get("RateLimit-Remaining"))
	if rs := h.Get("RateLimit-Reset"); rs != "" {
		if sec := atoi(rs); sec > 0 {
			reset = time.Unix(int64(sec), 0).UTC()
		}
	}
	retryAfter = atoi(h.Get("Retry-After"))
	return
}

// computeWait decides how long to wait based on headers
func computeWait(remaining int, reset time.Time, retryAfter int, now time.Time) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	if remaining <= 0 && !reset.IsZero() {
		if reset.After(now) {
			return reset.Sub(now)
		}
		return 0
	}
	return 0
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
