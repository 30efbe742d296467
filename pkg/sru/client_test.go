package sru

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestURL(t *testing.T) {
	c := NewClient("http://prod.example.edu/sru", "http://test.example.edu/sru")

	u := c.RequestURL("11025446", false)
	assert.Contains(t, u, "http://prod.example.edu/sru?")
	assert.Contains(t, u, "operation=searchRetrieve")
	assert.Contains(t, u, "version=1.2")
	assert.Contains(t, u, "query=id%3D11025446")
	assert.Contains(t, u, "recordSchema=opac")

	assert.Contains(t, c.RequestURL("11025446", true), "http://test.example.edu/sru?")
}

func TestFetchRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "searchRetrieve", r.URL.Query().Get("operation"))
		assert.Equal(t, "id=123", r.URL.Query().Get("query"))
		w.Write([]byte(`<searchRetrieveResponse/>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)
	body, err := c.FetchRecord(context.Background(), "123", false)
	require.NoError(t, err)
	assert.Equal(t, `<searchRetrieveResponse/>`, body)
}

func TestFetchRecordBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)
	_, err := c.FetchRecord(context.Background(), "123", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}
