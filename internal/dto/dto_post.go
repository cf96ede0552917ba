package dto

import "time"

// ===== Requests =====

type CreatePostRequest struct {
	Content string `json:"content"`
}

type LikeRequest struct {
	UserID string `json:"userId"`
}

type CommentRequest struct {
	Content  string `json:"content"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// ===== Responses =====

// PostAuthor is the public projection of the post's author joined in by the
// feed assembler.
type PostAuthor struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name" example:"Asha Patil"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	Role         string `json:"role,omitempty" example:"student"`
	Department   string `json:"department,omitempty"`
}

type CommentView struct {
	Content   string    `json:"content" example:"Nice!"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Timestamp time.Time `json:"timestamp"`
}

// PostView is the feed read-model: a post flattened together with its author.
type PostView struct {
	ID        string        `json:"_id"`
	Content   string        `json:"content" example:"Hello campus"`
	ImageURL  string        `json:"imageUrl,omitempty"`
	Likes     []string      `json:"likes"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
	User      PostAuthor    `json:"user"`
}

type CommentResponse struct {
	Message string   `json:"message" example:"Comment added successfully"`
	Post    PostView `json:"post"`
}
