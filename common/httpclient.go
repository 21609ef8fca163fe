// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package common

import (
	"log/slog"
	"net/http"
	"time"
)

const userAgent = "threatintel/1.0 (+https://github.com/l3montree-dev/threatintel)"

// WrapHTTPClient installs wrap in front of the current transport of client
func WrapHTTPClient(client *http.Client, wrap func(req *http.Request, next http.RoundTripper) (*http.Response, error)) {
	if client == nil {
		return
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return wrap(req, base)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// UserAgentHandler sets the user agent if the request does not carry one
func UserAgentHandler(agent string) func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Header.Get("User-Agent") == "" {
			// RoundTrippers must not modify the original request
			req = req.Clone(req.Context())
			req.Header.Set("User-Agent", agent)
		}
		return next.RoundTrip(req)
	}
}

// LoggingHandler logs every upstream request with its status and duration.
// The query string is left out, it might contain credentials.
func LoggingHandler() func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(req)
		if err != nil {
			slog.Warn("upstream request failed", "method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "duration", time.Since(start), "err", err)
			return resp, err
		}
		slog.Debug("upstream request", "method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "status", resp.StatusCode, "duration", time.Since(start))
		return resp, nil
	}
}

// NewHTTPClient returns the client used for every outgoing feed request
func NewHTTPClient(timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}
	WrapHTTPClient(client, UserAgentHandler(userAgent))
	WrapHTTPClient(client, LoggingHandler())
	return client
}
