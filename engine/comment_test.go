package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
)

func TestCreateCommentReplyChain(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	a := seedArtist(t, s, "a")
	post := seedPost(t, s, "p", u, a)

	c1, gotPost, commenter, err := e.CreateComment(ctx, post.Id, u.Id, "top level", nil)
	require.NoError(t, err)
	require.Nil(t, c1.ParentId)
	require.Equal(t, []string{c1.Id}, []string(gotPost.Comments))
	require.Equal(t, []string{c1.Id}, []string(commenter.Comments))
	require.Equal(t, model.CommentStateActive, c1.State)

	c2, _, _, err := e.CreateComment(ctx, post.Id, u.Id, "reply", &c1.Id)
	require.NoError(t, err)
	require.NotNil(t, c2.ParentId)
	require.Equal(t, c1.Id, *c2.ParentId)

	c3, gotPost, _, err := e.CreateComment(ctx, post.Id, u.Id, "reply to reply", &c2.Id)
	require.NoError(t, err)
	require.Equal(t, c2.Id, *c3.ParentId)

	// Replies land on the post's flat comment list as well as the parent's
	// children list.
	require.Equal(t, []string{c1.Id, c2.Id, c3.Id}, []string(gotPost.Comments))

	storedC1, err := s.ResolveCommentById(ctx, c1.Id)
	require.NoError(t, err)
	require.Equal(t, []string{c2.Id}, []string(storedC1.Children))
	storedC2, err := s.ResolveCommentById(ctx, c2.Id)
	require.NoError(t, err)
	require.Equal(t, []string{c3.Id}, []string(storedC2.Children))
}

func TestCreateCommentParentNotFound(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	a := seedArtist(t, s, "a")
	post := seedPost(t, s, "p", u, a)

	ghost := "ghost"
	_, _, _, err := e.CreateComment(ctx, post.Id, u.Id, "orphan", &ghost)
	require.Error(t, err)
	require.Equal(t, "Parent comment not found.", err.Error())

	// Failed replies leave the post untouched.
	stored, err := s.ResolvePostById(ctx, post.Id)
	require.NoError(t, err)
	require.Empty(t, stored.Comments)
}

func TestCreateCommentPostNotFound(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")

	_, _, _, err := e.CreateComment(ctx, "ghost", u.Id, "nowhere", nil)
	require.Error(t, err)
	require.Equal(t, "Post not found.", err.Error())
}

func TestDeleteCommentSoftDelete(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	a := seedArtist(t, s, "a")
	post := seedPost(t, s, "p", u, a)

	c1, _, _, err := e.CreateComment(ctx, post.Id, u.Id, "parent", nil)
	require.NoError(t, err)
	c2, _, _, err := e.CreateComment(ctx, post.Id, u.Id, "child", &c1.Id)
	require.NoError(t, err)

	deleted, err := e.DeleteComment(ctx, c1.Id, u.Id)
	require.NoError(t, err)
	require.Equal(t, model.CommentStateDeleted, deleted.State)
	require.True(t, deleted.State.IsDeleted())

	// The reply tree survives: the child still points at the deleted parent
	// and the parent still lists the child.
	storedC1, err := s.ResolveCommentById(ctx, c1.Id)
	require.NoError(t, err)
	require.Equal(t, model.CommentStateDeleted, storedC1.State)
	require.Equal(t, []string{c2.Id}, []string(storedC1.Children))
	storedC2, err := s.ResolveCommentById(ctx, c2.Id)
	require.NoError(t, err)
	require.Equal(t, c1.Id, *storedC2.ParentId)

	storedPost, err := s.ResolvePostById(ctx, post.Id)
	require.NoError(t, err)
	require.Equal(t, []string{c1.Id, c2.Id}, []string(storedPost.Comments))
}

func TestDeleteCommentNotAuthorized(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	other := seedUser(t, s, "other")
	a := seedArtist(t, s, "a")
	post := seedPost(t, s, "p", u, a)
	comment := seedComment(t, s, "c", post, u)

	_, err := e.DeleteComment(ctx, comment.Id, other.Id)
	require.Error(t, err)
	require.IsType(t, errs.NotAuthorizedError{}, err)
	require.Equal(t, "Not authorized to delete comment.", err.Error())

	stored, err := s.ResolveCommentById(ctx, comment.Id)
	require.NoError(t, err)
	require.Equal(t, model.CommentStateActive, stored.State)
}

func TestDeleteCommentAlreadyDeleted(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	a := seedArtist(t, s, "a")
	post := seedPost(t, s, "p", u, a)
	comment := seedComment(t, s, "c", post, u)

	_, err := e.DeleteComment(ctx, comment.Id, u.Id)
	require.NoError(t, err)

	_, err = e.DeleteComment(ctx, comment.Id, u.Id)
	require.Error(t, err)
	require.True(t, errs.IsConflict(err))
	require.Equal(t, "Comment already deleted.", err.Error())
}
