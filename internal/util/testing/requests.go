package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func MakeAPIRequest(
	router *gin.Engine,
	method string,
	path string,
	authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func MakeRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	method string,
	path string,
	authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	t.Helper()

	w := MakeAPIRequest(router, method, path, authHeader, body)
	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	if response != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), response))
	}
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	expectedStatus int,
	response any,
) {
	t.Helper()
	MakeRequestAndUnmarshal(t, router, http.MethodGet, path, authHeader, nil, expectedStatus, response)
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	t.Helper()
	MakeRequestAndUnmarshal(t, router, http.MethodPost, path, authHeader, body, expectedStatus, response)
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	t.Helper()
	MakeRequestAndUnmarshal(t, router, http.MethodPut, path, authHeader, body, expectedStatus, response)
}

func MakeDeleteRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	t.Helper()
	MakeRequestAndUnmarshal(t, router, http.MethodDelete, path, authHeader, body, expectedStatus, response)
}
