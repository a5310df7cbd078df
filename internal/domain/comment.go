package domain

// RecentWindow is the number of comments returned by the read endpoint.
const RecentWindow = 50

// Comment represents a single submitted comment.
type Comment struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}
