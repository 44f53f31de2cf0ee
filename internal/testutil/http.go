package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Do sends a request to h. body may be nil, a string (sent verbatim) or any value encoded as JSON.
func Do(t testing.TB, h http.Handler, method, target string, body interface{}, headers ...http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, hdr := range headers {
		for k, vs := range hdr {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func DecodeJSON(t testing.TB, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

// AssertErrorEnvelope checks the status and the {success,error,message} failure body.
func AssertErrorEnvelope(t testing.TB, rec *httptest.ResponseRecorder, status int) {
	t.Helper()

	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())

	var body struct {
		Success bool   `json:"success"`
		Error   int    `json:"error"`
		Message string `json:"message"`
	}
	DecodeJSON(t, rec, &body)
	require.False(t, body.Success)
	require.Equal(t, status, body.Error)
	require.Equal(t, http.StatusText(status), body.Message)
}
