package repository

import (
	"context"
	"sync"

	"github.com/anshulj07/sciquel-test/internal/domain"
)

// MemoryCommentRepository implements CommentRepository with a process-local slice.
// Comments are kept in insertion order for the lifetime of the process and
// are lost on restart.
type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments []domain.Comment
}

// NewMemoryCommentRepository creates an empty MemoryCommentRepository.
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{}
}

// Append adds a comment to the end of the sequence.
func (r *MemoryCommentRepository) Append(_ context.Context, comment domain.Comment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, comment)
}

// Recent returns a copy of the last n comments in insertion order.
// The result is never nil so it always encodes as a JSON array.
func (r *MemoryCommentRepository) Recent(_ context.Context, n int) []domain.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 {
		return []domain.Comment{}
	}

	start := len(r.comments) - n
	if start < 0 {
		start = 0
	}

	window := make([]domain.Comment, len(r.comments)-start)
	copy(window, r.comments[start:])
	return window
}

// Count returns the number of stored comments.
func (r *MemoryCommentRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.comments)
}
