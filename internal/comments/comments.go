// Package comments loads and creates filing comments. All helpers take the
// filing by value and return an updated copy; callers own the swap back into
// whatever holds their state.
package comments

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/filingdesk/internal/auth"
	"github.com/filingdesk/internal/registry"
	"github.com/filingdesk/pkg/models"
)

// Service wraps the registry client with the comment load/create flows.
type Service struct {
	client *registry.HTTPClient
}

// NewService creates a comment service over a registry client.
func NewService(client *registry.HTTPClient) *Service {
	return &Service{client: client}
}

// LoadComments fetches the filing's comments, unwraps the envelopes and sorts
// them newest-first. The returned copy carries the sorted comments and a
// count derived from them. On failure the copy has nil comments and a zero
// count, and the error is returned alongside it.
func (s *Service) LoadComments(ctx context.Context, filing models.Filing) (models.Filing, error) {
	envelopes, err := s.client.FetchComments(ctx, filing.CommentsLink)
	if err != nil {
		log.Warn().
			Err(err).
			Str("business", filing.BusinessIdentifier).
			Int64("filing", filing.ID).
			Msg("loading comments failed")
		filing.Comments = nil
		filing.CommentsCount = 0
		return filing, err
	}

	filing.Comments = Flatten(envelopes)
	filing.CommentsCount = len(filing.Comments)
	return filing, nil
}

// Flatten unwraps comment envelopes and sorts the comments newest-first.
// The sort is stable, so entries sharing a timestamp keep their API order.
func Flatten(envelopes []models.CommentEnvelope) []models.Comment {
	comments := make([]models.Comment, 0, len(envelopes))
	for _, e := range envelopes {
		comments = append(comments, e.Comment)
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp.After(comments[j].Timestamp)
	})

	return comments
}

// CreateComment posts a new comment for the filing under the given account,
// then returns a copy of the filing with the comment prepended and the count
// bumped by one. Without an account id it returns auth.ErrNoAccount before
// any request is made.
func (s *Service) CreateComment(ctx context.Context, account auth.AccountContext, filing models.Filing, text string) (models.Filing, *models.Comment, error) {
	if account.AccountID == "" {
		log.Error().
			Str("business", filing.BusinessIdentifier).
			Int64("filing", filing.ID).
			Msg("cannot create comment without an account id")
		return filing, nil, auth.ErrNoAccount
	}

	created, err := s.client.PostComment(ctx, account, filing.BusinessIdentifier, filing.ID, text)
	if err != nil {
		return filing, nil, err
	}

	filing.Comments = append([]models.Comment{*created}, filing.Comments...)
	filing.CommentsCount++
	return filing, created, nil
}
