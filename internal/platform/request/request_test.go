// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	requestutil "github.com/codeninjahub/codeninjahub/internal/platform/request"
)

/*
TestParam_Decodes verifies that escaped path segments reach handlers decoded once.
*/
func TestParam_Decodes(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain", "/languages/cpp", "cpp"},
		{"literal_plus", "/languages/C++", "C++"},
		{"escaped_plus", "/languages/C%2B%2B", "C++"},
		{"escaped_space", "/languages/Visual%20Basic", "Visual Basic"},
		{"lowercase_escapes", "/languages/c%2b%2b", "c++"},
		{"escaped_percent", "/languages/pyth%256Fn", "pyth%6Fn"},
		{"escaped_percent_with_raw_path", "/languages/C%2B%2B%256F", "C++%6F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			router := chi.NewRouter()
			router.Get("/languages/{identifier}", func(writer http.ResponseWriter, request *http.Request) {
				got = requestutil.Param(request, "identifier")
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, got)
		})
	}
}
