// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers never
deal with percent-encoding themselves.
*/
package requestutil

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

/*
Param retrieves a named URL parameter from the request, percent-decoded exactly once.

chi matches against URL.RawPath when the request carries one, so
"/languages/C%2B%2B" yields "C%2B%2B" from the router and Param returns "C++".
Otherwise chi matched the already-decoded URL.Path and the value is returned
as is: "/languages/pyth%256Fn" yields "pyth%6Fn". A raw value that fails to
decode is returned as matched.
*/
func Param(request *http.Request, name string) string {
	raw := chi.URLParam(request, name)
	if request.URL.RawPath == "" {
		return raw
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
