package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/filingdesk/internal/auth"
	"github.com/filingdesk/pkg/models"
)

// ErrFetchList is the fixed error surfaced by the list-fetch endpoints.
// The underlying cause is logged, not returned; callers cannot tell a
// network failure from an empty response.
var ErrFetchList = errors.New("failed to retrieve list")

// HTTPClient is a client for the registry's legal API. Document and comment
// links arrive as absolute URLs on the filing record; only comment creation
// and filing lookup build URLs from the base.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient creates a new registry HTTP client
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	// Make sure baseURL doesn't end with a slash
	if baseURL != "" && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// CommentsURL returns the comments link for a filing.
func (c *HTTPClient) CommentsURL(businessID string, filingID int64) string {
	return fmt.Sprintf("%s/businesses/%s/filings/%d/comments", c.baseURL, businessID, filingID)
}

// DocumentsURL returns the documents link for a filing.
func (c *HTTPClient) DocumentsURL(businessID string, filingID int64) string {
	return fmt.Sprintf("%s/businesses/%s/filings/%d/documents", c.baseURL, businessID, filingID)
}

// FetchDocuments gets the document list behind a filing's documents link.
func (c *HTTPClient) FetchDocuments(ctx context.Context, url string) (models.DocumentList, error) {
	var response struct {
		Documents models.DocumentList `json:"documents"`
	}

	if err := c.get(ctx, url, &response); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("fetch document list failed")
		return nil, ErrFetchList
	}

	if response.Documents == nil {
		log.Warn().Str("url", url).Msg("document list response had no body")
		return nil, ErrFetchList
	}

	return response.Documents, nil
}

// FetchComments gets the enveloped comment list behind a filing's comments link.
func (c *HTTPClient) FetchComments(ctx context.Context, url string) ([]models.CommentEnvelope, error) {
	var response struct {
		Comments []models.CommentEnvelope `json:"comments"`
	}

	if err := c.get(ctx, url, &response); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("fetch comments failed")
		return nil, ErrFetchList
	}

	if response.Comments == nil {
		log.Warn().Str("url", url).Msg("comments response had no body")
		return nil, ErrFetchList
	}

	return response.Comments, nil
}

// GetFiling gets a filing by business identifier and filing ID.
func (c *HTTPClient) GetFiling(ctx context.Context, businessID string, filingID int64) (*models.Filing, error) {
	requestURL := fmt.Sprintf("%s/businesses/%s/filings/%d", c.baseURL, businessID, filingID)

	var envelope models.FilingEnvelope
	if err := c.get(ctx, requestURL, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Filing, nil
}

// PostComment creates a comment on a filing. Unlike the fetch endpoints,
// errors here carry the underlying detail back to the caller.
func (c *HTTPClient) PostComment(ctx context.Context, account auth.AccountContext, businessID string, filingID int64, text string) (*models.Comment, error) {
	requestURL := c.CommentsURL(businessID, filingID)

	requestData := map[string]interface{}{
		"comment": map[string]interface{}{
			"comment":  text,
			"filingId": filingID,
		},
	}

	requestBody, err := json.Marshal(requestData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+account.Token)
	req.Header.Set("Account-Id", account.AccountID)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var envelope models.CommentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &envelope.Comment, nil
}

// get issues one GET round trip and decodes the JSON body into out.
func (c *HTTPClient) get(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
