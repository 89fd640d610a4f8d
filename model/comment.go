package model

import (
	"time"

	"github.com/lib/pq"
)

// CommentState is the lifecycle state of a comment. The only transition is
// Active -> Deleted; Deleted is terminal and there is no resurrection. A
// deleted comment stays in storage and in the reply tree as a tombstone so
// its children keep a valid parent anchor.
type CommentState string

const (
	CommentStateActive  CommentState = "ACTIVE"
	CommentStateDeleted CommentState = "DELETED"
)

func (e CommentState) IsValid() bool {
	switch e {
	case CommentStateActive, CommentStateDeleted:
		return true
	}
	return false
}

func (e CommentState) String() string {
	return string(e)
}

// IsDeleted reports whether the comment content is hidden for downstream
// consumers.
func (e CommentState) IsDeleted() bool {
	return e == CommentStateDeleted
}

/*

Comment is a node in a post's reply tree.

Id: primary key, uuid
PostId: the post this comment belongs to; mirrored by Post.Comments
Poster: the authoring user; mirrored by User.Comments
Content: comment body, considered hidden once the comment is deleted
Likes/Dislikes/Likers/Dislikers: reactions, same shape as Post
ParentId: nil for a top-level comment, otherwise the parent comment;
		mirrored by the parent's Children list
Children: ids of direct replies, in creation order
State: Active or Deleted; deletion never detaches the node from the tree

*/
type Comment struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	PostId    string
	Poster    string
	Content   string
	Likes     int32
	Dislikes  int32
	Likers    pq.StringArray `gorm:"type:text[]"`
	Dislikers pq.StringArray `gorm:"type:text[]"`
	ParentId  *string
	Children  pq.StringArray `gorm:"type:text[]"`
	State     CommentState
}
