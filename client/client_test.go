package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteDecodesData(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"products": map[string]interface{}{
					"totalPages": 3,
				},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("abc123")

	var out struct {
		Products struct {
			TotalPages int `json:"totalPages"`
		} `json:"products"`
	}
	err := c.Execute(context.Background(), `{ products { totalPages } }`, nil, &out)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Products.TotalPages)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestExecuteReturnsGraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{
				{"message": "product not found", "extensions": map[string]string{"code": "NOT_FOUND"}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.Execute(context.Background(), `{ product(id: 99) { id } }`, nil, nil)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "NOT_FOUND", reqErr.Errors[0].Code())
}

func TestExecuteFiresAuthExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{
				{"message": "authentication required", "extensions": map[string]string{"code": CodeUnauthenticated}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("stale-token")

	expired := 0
	c.OnAuthExpired = func() { expired++ }

	err := c.Execute(context.Background(), `{ profile { id } }`, nil, nil)
	require.Error(t, err)

	assert.Equal(t, 1, expired)
	assert.Empty(t, c.Token(), "stale session is dropped")
}

func TestExecuteOtherErrorsKeepSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{
				{"message": "admin access required", "extensions": map[string]string{"code": "FORBIDDEN"}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("valid-token")

	fired := false
	c.OnAuthExpired = func() { fired = true }

	err := c.Execute(context.Background(), `{ users { totalPages } }`, nil, nil)
	require.Error(t, err)

	assert.False(t, fired)
	assert.Equal(t, "valid-token", c.Token())
}
