package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is embedded in its post, never stored on its own. UserName is the
// author's display name frozen at comment time; renaming a user later must not
// rewrite old comments.
type Comment struct {
	Content   string        `bson:"content" json:"content"`
	UserID    bson.ObjectID `bson:"user_id" json:"userId"`
	UserName  string        `bson:"user_name" json:"userName"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
}

type Post struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Content   string          `bson:"content" json:"content"`
	UserID    bson.ObjectID   `bson:"user_id" json:"userId"`
	ImageURL  string          `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Likes     []bson.ObjectID `bson:"likes" json:"likes"`
	Comments  []Comment       `bson:"comments" json:"comments"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updatedAt"`
}
