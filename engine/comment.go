package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
)

// CreateComment creates a comment on a post, optionally as a reply to an
// existing comment on that post. The new comment id is recorded on the
// post, on the commenter and, for a reply, on the parent's Children list.
// Persist order: comment, post, commenter, parent. The parent is updated
// durably but not returned.
func (e *Engine) CreateComment(ctx context.Context, postId string, commenterId string, content string, parentId *string) (*model.Comment, *model.Post, *model.User, error) {
	touched := []string{postId, commenterId}
	if parentId != nil {
		touched = append(touched, *parentId)
	}
	unlock := e.locks.lock(touched...)
	defer unlock()

	post, err := e.store.ResolvePostById(ctx, postId)
	if err != nil {
		return nil, nil, nil, err
	}
	commenter, err := e.store.ResolveUserById(ctx, commenterId)
	if err != nil {
		return nil, nil, nil, err
	}

	var parent *model.Comment
	if parentId != nil {
		parent, err = e.store.ResolveCommentById(ctx, *parentId)
		if err != nil {
			if errs.IsNotFound(err) {
				return nil, nil, nil, errs.NotFound("Parent comment")
			}
			return nil, nil, nil, err
		}
	}

	comment := &model.Comment{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		PostId:    post.Id,
		Poster:    commenter.Id,
		Content:   content,
		Likers:    pq.StringArray{},
		Dislikers: pq.StringArray{},
		ParentId:  parentId,
		Children:  pq.StringArray{},
		State:     model.CommentStateActive,
	}

	post.Comments = append(post.Comments, comment.Id)
	commenter.Comments = append(commenter.Comments, comment.Id)
	if parent != nil {
		parent.Children = append(parent.Children, comment.Id)
	}

	if err := e.store.SaveComment(ctx, comment); err != nil {
		return nil, nil, nil, err
	}
	if err := e.store.SavePost(ctx, post); err != nil {
		return nil, nil, nil, err
	}
	if err := e.store.SaveUser(ctx, commenter); err != nil {
		return nil, nil, nil, err
	}
	if parent != nil {
		if err := e.store.SaveComment(ctx, parent); err != nil {
			return nil, nil, nil, err
		}
	}
	return comment, post, commenter, nil
}

// DeleteComment soft-deletes a comment owned by the given user. The
// transition is Active -> Deleted, one way. Only the comment document is
// persisted: the node stays in the post's list, in the commenter's list and
// in the reply tree, so children of the tombstone keep a valid parent.
func (e *Engine) DeleteComment(ctx context.Context, commentId string, commenterId string) (*model.Comment, error) {
	unlock := e.locks.lock(commentId)
	defer unlock()

	comment, err := e.store.ResolveCommentById(ctx, commentId)
	if err != nil {
		return nil, err
	}
	commenter, err := e.store.ResolveUserById(ctx, commenterId)
	if err != nil {
		return nil, err
	}

	if comment.Poster != commenter.Id {
		return nil, errs.NotAuthorized("delete comment")
	}
	if comment.State.IsDeleted() {
		return nil, errs.Conflict("Comment already deleted.")
	}

	comment.State = model.CommentStateDeleted
	if err := e.store.SaveComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
