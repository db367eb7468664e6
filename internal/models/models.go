package models

// Post is the sole domain entity. CreatedAt is stored and served as
// ISO-8601 text (RFC 3339, UTC); string order equals time order.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	CreatedAt string `json:"created_at"`

	// ContentHTML is populated only when the client asks for
	// server-side Markdown rendering.
	ContentHTML string `json:"content_html,omitempty"`
}
