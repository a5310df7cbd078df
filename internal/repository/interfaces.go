package repository

import (
	"context"

	"github.com/anshulj07/sciquel-test/internal/domain"
)

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	// Append adds a comment to the end of the sequence. No validation is performed.
	Append(ctx context.Context, comment domain.Comment)
	// Recent returns the last n comments, oldest first.
	Recent(ctx context.Context, n int) []domain.Comment
	// Count returns the number of stored comments.
	Count(ctx context.Context) int
}
