package linkding

import (
	"net/http"
	"time"
)

// Logger receives one debug line per HTTP exchange. *logger.Logger from
// this module satisfies it.
type Logger interface {
	Debugf(format string, v ...any)
}

// loggingTransport logs method, request URI, status and duration of every
// round trip.
type loggingTransport struct {
	next   http.RoundTripper
	logger Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Debugf("%-7s %s failed after %s: %v", req.Method, req.URL.RequestURI(), time.Since(start), err)
		return nil, err
	}
	t.logger.Debugf("%-7s %s %d %s", req.Method, req.URL.RequestURI(), resp.StatusCode, time.Since(start))
	return resp, nil
}

// withLogging returns a shallow copy of hc whose transport logs through l,
// leaving the caller's client untouched.
func withLogging(hc *http.Client, l Logger) *http.Client {
	next := hc.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	wrapped := *hc
	wrapped.Transport = &loggingTransport{next: next, logger: l}
	return &wrapped
}
