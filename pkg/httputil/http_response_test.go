package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusBadRequest, "invalid request body", errors.New("weight: must be positive"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrorResponse{Code: 400, Message: "invalid request body", Details: "weight: must be positive"}, resp)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Weight float64 `json:"weight"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"weight": 81.5}`))
	require.NoError(t, DecodeJSON(r, &body))
	assert.Equal(t, 81.5, body.Weight)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"weight":`))
	assert.Error(t, DecodeJSON(r, &body))
}

func TestPagination(t *testing.T) {
	testCases := []struct {
		Desc   string
		Query  string
		Page   int
		Limit  int
		Offset int
	}{
		{Desc: "defaults", Query: "", Page: 1, Limit: 10, Offset: 0},
		{Desc: "explicit", Query: "?page=3&limit=5", Page: 3, Limit: 5, Offset: 10},
		{Desc: "limit too big", Query: "?page=2&limit=500", Page: 2, Limit: 10, Offset: 10},
		{Desc: "garbage", Query: "?page=x&limit=-1", Page: 1, Limit: 10, Offset: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/"+tc.Query, nil)
			page, limit, offset := Pagination(r, 10, 50)
			assert.Equal(t, tc.Page, page)
			assert.Equal(t, tc.Limit, limit)
			assert.Equal(t, tc.Offset, offset)
		})
	}
}
