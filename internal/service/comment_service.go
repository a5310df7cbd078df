package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/anshulj07/sciquel-test/internal/domain"
	"github.com/anshulj07/sciquel-test/internal/logger"
	"github.com/anshulj07/sciquel-test/internal/metrics"
	"github.com/anshulj07/sciquel-test/internal/repository"
	"github.com/anshulj07/sciquel-test/internal/validator"
)

// CommentService handles comment submissions and reads.
type CommentService struct {
	repo        repository.CommentRepository
	validator   *validator.Validator
	recentLimit int
}

// NewCommentService creates a new CommentService.
// A non-positive recentLimit falls back to domain.RecentWindow.
func NewCommentService(repo repository.CommentRepository, v *validator.Validator, recentLimit int) *CommentService {
	if recentLimit <= 0 {
		recentLimit = domain.RecentWindow
	}
	return &CommentService{
		repo:        repo,
		validator:   v,
		recentLimit: recentLimit,
	}
}

// Submit decodes body as a JSON comment, validates it and appends it to the store.
func (s *CommentService) Submit(ctx context.Context, body []byte) error {
	timer := metrics.NewTimer()

	err := s.submit(ctx, body)

	result := "success"
	if err != nil {
		result = string(domain.AsSubmitError(err).Kind)
	}
	metrics.ObserveSubmission(result)
	timer.ObserveDuration(metrics.CommentSubmitDuration)

	return err
}

func (s *CommentService) submit(ctx context.Context, body []byte) error {
	if len(body) == 0 {
		return domain.NewSubmitError(domain.KindMissingBody)
	}

	fields, err := decodeFields(body)
	if err != nil {
		return err
	}

	comment, err := s.validator.ValidateSubmission(fields)
	if err != nil {
		logger.DebugContext(ctx, "Comment rejected",
			slog.Any("fields", validator.FailedFields(err)),
			slog.String("error", err.Error()))
		return err
	}

	s.repo.Append(ctx, comment)
	logger.DebugContext(ctx, "Comment stored",
		slog.Int("store_size", s.repo.Count(ctx)))

	return nil
}

// Recent returns the most recent comments, oldest first.
func (s *CommentService) Recent(ctx context.Context) []domain.Comment {
	comments := s.repo.Recent(ctx, s.recentLimit)
	metrics.ObserveServed(len(comments))
	return comments
}

// decodeFields parses body as exactly one UTF-8 JSON value.
// Unparseable input and a bare null are invalid formats. Any other value that
// is not an object yields no fields, so it fails as missing fields.
func decodeFields(body []byte) (map[string]any, error) {
	if !utf8.Valid(body) {
		return nil, domain.InvalidFormat(errors.New("body is not valid UTF-8"))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, domain.InvalidFormat(fmt.Errorf("decode comment: %w", err))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.InvalidFormat(errors.New("decode comment: unexpected data after JSON value"))
	}

	switch v := value.(type) {
	case nil:
		return nil, domain.InvalidFormat(errors.New("decode comment: body is JSON null"))
	case map[string]any:
		return v, nil
	default:
		return map[string]any{}, nil
	}
}
