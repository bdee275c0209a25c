package registry_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingdesk/internal/auth"
	"github.com/filingdesk/internal/registry"
)

func TestFetchComments(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/businesses/BC1234567/filings/111/comments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"comments": [
				{"comment": {"id": 1, "comment": "first", "filingId": 111, "timestamp": "2020-01-01T00:00:00Z"}},
				{"comment": {"id": 2, "comment": "second", "filingId": 111, "timestamp": "2021-01-01T00:00:00Z"}}
			]
		}`))
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)

	envelopes, err := client.FetchComments(context.Background(), client.CommentsURL("BC1234567", 111))
	require.NoError(t, err)
	require.Len(t, envelopes, 2)
	assert.Equal(t, "first", envelopes[0].Comment.Comment)
	assert.Equal(t, int64(2), envelopes[1].Comment.ID)
}

func TestFetchCommentsGenericErrorOnServerFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)

	_, err := client.FetchComments(context.Background(), client.CommentsURL("BC1234567", 111))
	// The underlying detail is logged, not surfaced.
	assert.ErrorIs(t, err, registry.ErrFetchList)
	assert.EqualError(t, err, "failed to retrieve list")
}

func TestFetchCommentsGenericErrorOnTransportFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	mockServer.Close() // connection refused

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)

	_, err := client.FetchComments(context.Background(), client.CommentsURL("BC1234567", 111))
	assert.ErrorIs(t, err, registry.ErrFetchList)
}

func TestFetchCommentsGenericErrorOnAbsentBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)

	_, err := client.FetchComments(context.Background(), client.CommentsURL("BC1234567", 111))
	assert.ErrorIs(t, err, registry.ErrFetchList)
}

func TestFetchDocuments(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businesses/BC1234567/filings/111/documents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"documents": {
				"legalFilings": [
					{"title": "Voluntary Dissolution", "filename": "dissolution.pdf", "link": "https://example.com/dissolution.pdf"}
				],
				"receipt": [
					{"title": "Receipt", "filename": "receipt.pdf", "link": "https://example.com/receipt.pdf"}
				]
			}
		}`))
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)

	documents, err := client.FetchDocuments(context.Background(), client.DocumentsURL("BC1234567", 111))
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, "dissolution.pdf", documents["legalFilings"][0].Filename)
	assert.Equal(t, "Receipt", documents["receipt"][0].Title)
}

func TestFetchDocumentsGenericErrorOnAbsentBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)

	_, err := client.FetchDocuments(context.Background(), client.DocumentsURL("BC1234567", 111))
	assert.ErrorIs(t, err, registry.ErrFetchList)
}

func TestPostComment(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/businesses/BC1234567/filings/111/comments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "3113", r.Header.Get("Account-Id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		var requestBody map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &requestBody))
		assert.Equal(t, "needs review", requestBody["comment"]["comment"])
		assert.Equal(t, float64(111), requestBody["comment"]["filingId"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"comment": {"id": 9, "comment": "needs review", "filingId": 111, "timestamp": "2024-06-01T12:00:00Z", "submitterDisplayName": "Staff User"}}`))
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)
	account := auth.AccountContext{AccountID: "3113", Token: "test-token"}

	created, err := client.PostComment(context.Background(), account, "BC1234567", 111, "needs review")
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, "Staff User", created.SubmitterDisplayName)
}

func TestPostCommentSurfacesAPIError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "staff only"}`))
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)
	account := auth.AccountContext{AccountID: "3113", Token: "test-token"}

	_, err := client.PostComment(context.Background(), account, "BC1234567", 111, "nope")
	require.Error(t, err)
	// The propagated-message policy keeps the underlying detail.
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), "staff only")
}

func TestGetFiling(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businesses/BC1234567/filings/111", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"filing": {
				"filingId": 111,
				"businessIdentifier": "BC1234567",
				"name": "dissolution",
				"filingSubType": "administrative",
				"status": "PAID",
				"isFutureEffective": true,
				"commentsCount": 3
			}
		}`))
	}))
	defer mockServer.Close()

	client := registry.NewHTTPClient(mockServer.URL, "test-token", 5*time.Second)

	filing, err := client.GetFiling(context.Background(), "BC1234567", 111)
	require.NoError(t, err)
	assert.Equal(t, int64(111), filing.ID)
	assert.Equal(t, "dissolution", filing.Name)
	assert.True(t, filing.IsFutureEffective)
	assert.Equal(t, 3, filing.CommentsCount)
}

func TestNewHTTPClientTrimsTrailingSlash(t *testing.T) {
	client := registry.NewHTTPClient("https://legal-api.example.com/api/v2/", "tok", time.Second)
	assert.Equal(t, "https://legal-api.example.com/api/v2/businesses/BC1/filings/5/comments",
		client.CommentsURL("BC1", 5))
}
