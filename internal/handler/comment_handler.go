package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anshulj07/sciquel-test/internal/domain"
	"github.com/anshulj07/sciquel-test/internal/logger"
	"github.com/anshulj07/sciquel-test/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
	maxBodyBytes   int64
}

// NewCommentHandler creates a new CommentHandler. When maxBodyBytes is
// positive, larger request bodies are rejected as an invalid format.
func NewCommentHandler(commentService service.CommentServiceInterface, maxBodyBytes int64) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		maxBodyBytes:   maxBodyBytes,
	}
}

// ListCommentsResponse is the body of GET /api/comments.
type ListCommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CreateCommentResponse is the body of a successful POST /api/comments.
type CreateCommentResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListComments handles GET /api/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments := h.commentService.Recent(c.Request.Context())
	if comments == nil {
		comments = []domain.Comment{}
	}

	c.JSON(http.StatusOK, ListCommentsResponse{Comments: comments})
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	var body []byte
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		reader := c.Request.Body
		if h.maxBodyBytes > 0 {
			reader = http.MaxBytesReader(c.Writer, reader, h.maxBodyBytes)
		}

		var err error
		body, err = io.ReadAll(reader)
		if err != nil {
			h.reject(c, domain.InvalidFormat(fmt.Errorf("read body: %w", err)))
			return
		}
	}

	if err := h.commentService.Submit(ctx, body); err != nil {
		h.reject(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateCommentResponse{Success: true})
}

// reject writes the fixed 400 response for err. Anything that is not a known
// validation failure is logged and answered with the generic format message.
func (h *CommentHandler) reject(c *gin.Context, err error) {
	se := domain.AsSubmitError(err)
	if se.Kind == domain.KindInvalidFormat {
		logger.ErrorContext(c.Request.Context(), "Error handling comment submission",
			slog.String("error", err.Error()))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: se.Message()})
}
