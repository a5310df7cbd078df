package service

import (
	"context"

	"github.com/anshulj07/sciquel-test/internal/domain"
)

// CommentServiceInterface defines the interface for comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// Submit decodes, validates and stores a raw JSON submission.
	// Rejections are returned as *domain.SubmitError.
	Submit(ctx context.Context, body []byte) error
	// Recent returns the most recent comments, oldest first.
	Recent(ctx context.Context) []domain.Comment
}
