package engine

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
	"github.com/tunemesh/tunemesh/utils"
)

// reactionView binds the five like/dislike fields of one (user, target)
// pair so every target kind shares one implementation of the reaction
// rules:
//   - a reaction edge exists only when both sides agree (conjunction)
//   - counters are recomputed from list length after every change
//   - liking clears an existing dislike and vice versa, in the same
//     logical operation
//   - undo requires the edge present and the opposite edge absent
//
// disliked/dislikers are nil for kinds without a dislike counterpart
// (artist, album, track); the opposite-reaction rules vanish with them.
type reactionView struct {
	kind     string // "Post", "Comment", "Artist", ...
	userId   string
	targetId string

	liked     *pq.StringArray // user's liked-ids list for this kind
	disliked  *pq.StringArray
	likers    *pq.StringArray
	dislikers *pq.StringArray
	likes     *int32
	dislikes  *int32
}

func (v *reactionView) likePresent() bool {
	return edgePresent(*v.liked, v.targetId, *v.likers, v.userId)
}

func (v *reactionView) dislikePresent() bool {
	if v.disliked == nil {
		return false
	}
	return edgePresent(*v.disliked, v.targetId, *v.dislikers, v.userId)
}

func (v *reactionView) like() error {
	if v.likePresent() {
		return errs.Conflict(fmt.Sprintf("%s already liked.", v.kind))
	}

	linkEdge(v.liked, v.targetId, v.likers, v.userId)
	*v.likes = int32(len(*v.likers))

	// A fresh like absorbs an existing dislike as part of the same
	// operation.
	if v.dislikePresent() {
		v.clearDislike()
	}
	return nil
}

func (v *reactionView) undoLike() error {
	if !v.likePresent() {
		return errs.Conflict(fmt.Sprintf("%s not liked.", v.kind))
	}
	// Simultaneous like and dislike means the documents are inconsistent;
	// refuse to touch them until reconciled.
	if v.dislikePresent() {
		return errs.Conflict(fmt.Sprintf("%s is also disliked.", v.kind))
	}

	unlinkEdge(v.liked, v.targetId, v.likers, v.userId)
	*v.likes = int32(len(*v.likers))
	return nil
}

func (v *reactionView) dislike() error {
	if v.dislikePresent() {
		return errs.Conflict(fmt.Sprintf("%s already disliked.", v.kind))
	}

	linkEdge(v.disliked, v.targetId, v.dislikers, v.userId)
	*v.dislikes = int32(len(*v.dislikers))

	if v.likePresent() {
		v.clearLike()
	}
	return nil
}

func (v *reactionView) undoDislike() error {
	if !v.dislikePresent() {
		return errs.Conflict(fmt.Sprintf("%s not disliked.", v.kind))
	}
	if v.likePresent() {
		return errs.Conflict(fmt.Sprintf("%s is also liked.", v.kind))
	}

	unlinkEdge(v.disliked, v.targetId, v.dislikers, v.userId)
	*v.dislikes = int32(len(*v.dislikers))
	return nil
}

func (v *reactionView) clearLike() {
	*v.liked = utils.RemoveString(*v.liked, v.targetId)
	*v.likers = utils.RemoveString(*v.likers, v.userId)
	*v.likes = int32(len(*v.likers))
}

func (v *reactionView) clearDislike() {
	*v.disliked = utils.RemoveString(*v.disliked, v.targetId)
	*v.dislikers = utils.RemoveString(*v.dislikers, v.userId)
	*v.dislikes = int32(len(*v.dislikers))
}

func postReaction(user *model.User, post *model.Post) *reactionView {
	return &reactionView{
		kind:      "Post",
		userId:    user.Id,
		targetId:  post.Id,
		liked:     &user.LikedPosts,
		disliked:  &user.DislikedPosts,
		likers:    &post.Likers,
		dislikers: &post.Dislikers,
		likes:     &post.Likes,
		dislikes:  &post.Dislikes,
	}
}

func commentReaction(user *model.User, comment *model.Comment) *reactionView {
	return &reactionView{
		kind:      "Comment",
		userId:    user.Id,
		targetId:  comment.Id,
		liked:     &user.LikedComments,
		disliked:  &user.DislikedComments,
		likers:    &comment.Likers,
		dislikers: &comment.Dislikers,
		likes:     &comment.Likes,
		dislikes:  &comment.Dislikes,
	}
}

// mutatePostReaction runs one reaction transition against a (user, post)
// pair and persists user first, then post.
func (e *Engine) mutatePostReaction(ctx context.Context, userId string, postId string, transition func(*reactionView) error) (*model.User, *model.Post, error) {
	unlock := e.locks.lock(userId, postId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	post, err := e.store.ResolvePostById(ctx, postId)
	if err != nil {
		return nil, nil, err
	}

	if err := transition(postReaction(user, post)); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SavePost(ctx, post); err != nil {
		return nil, nil, err
	}
	return user, post, nil
}

func (e *Engine) mutateCommentReaction(ctx context.Context, userId string, commentId string, transition func(*reactionView) error) (*model.User, *model.Comment, error) {
	unlock := e.locks.lock(userId, commentId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	comment, err := e.store.ResolveCommentById(ctx, commentId)
	if err != nil {
		return nil, nil, err
	}

	if err := transition(commentReaction(user, comment)); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveComment(ctx, comment); err != nil {
		return nil, nil, err
	}
	return user, comment, nil
}

// LikePost records the user's like on a post, clearing an existing dislike
// by the same user in the same operation.
func (e *Engine) LikePost(ctx context.Context, userId string, postId string) (*model.User, *model.Post, error) {
	return e.mutatePostReaction(ctx, userId, postId, (*reactionView).like)
}

// UndoLikePost removes the user's like from a post.
func (e *Engine) UndoLikePost(ctx context.Context, userId string, postId string) (*model.User, *model.Post, error) {
	return e.mutatePostReaction(ctx, userId, postId, (*reactionView).undoLike)
}

// DislikePost records the user's dislike on a post, clearing an existing
// like by the same user in the same operation.
func (e *Engine) DislikePost(ctx context.Context, userId string, postId string) (*model.User, *model.Post, error) {
	return e.mutatePostReaction(ctx, userId, postId, (*reactionView).dislike)
}

// UndoDislikePost removes the user's dislike from a post.
func (e *Engine) UndoDislikePost(ctx context.Context, userId string, postId string) (*model.User, *model.Post, error) {
	return e.mutatePostReaction(ctx, userId, postId, (*reactionView).undoDislike)
}

// LikeComment records the user's like on a comment; same rules as posts.
func (e *Engine) LikeComment(ctx context.Context, userId string, commentId string) (*model.User, *model.Comment, error) {
	return e.mutateCommentReaction(ctx, userId, commentId, (*reactionView).like)
}

// UndoLikeComment removes the user's like from a comment.
func (e *Engine) UndoLikeComment(ctx context.Context, userId string, commentId string) (*model.User, *model.Comment, error) {
	return e.mutateCommentReaction(ctx, userId, commentId, (*reactionView).undoLike)
}

// DislikeComment records the user's dislike on a comment.
func (e *Engine) DislikeComment(ctx context.Context, userId string, commentId string) (*model.User, *model.Comment, error) {
	return e.mutateCommentReaction(ctx, userId, commentId, (*reactionView).dislike)
}

// UndoDislikeComment removes the user's dislike from a comment.
func (e *Engine) UndoDislikeComment(ctx context.Context, userId string, commentId string) (*model.User, *model.Comment, error) {
	return e.mutateCommentReaction(ctx, userId, commentId, (*reactionView).undoDislike)
}

// LikeArtist records the user's like on an artist. Artists have no dislike
// counterpart, so there is no opposite reaction to clear.
func (e *Engine) LikeArtist(ctx context.Context, userId string, artistId string) (*model.User, *model.Artist, error) {
	unlock := e.locks.lock(userId, artistId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	artist, err := e.store.ResolveArtistById(ctx, artistId)
	if err != nil {
		return nil, nil, err
	}

	view := &reactionView{
		kind:     "Artist",
		userId:   user.Id,
		targetId: artist.Id,
		liked:    &user.LikedArtists,
		likers:   &artist.Likers,
		likes:    &artist.Likes,
	}
	if err := view.like(); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveArtist(ctx, artist); err != nil {
		return nil, nil, err
	}
	return user, artist, nil
}

// UndoLikeArtist removes the user's like from an artist.
func (e *Engine) UndoLikeArtist(ctx context.Context, userId string, artistId string) (*model.User, *model.Artist, error) {
	unlock := e.locks.lock(userId, artistId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	artist, err := e.store.ResolveArtistById(ctx, artistId)
	if err != nil {
		return nil, nil, err
	}

	view := &reactionView{
		kind:     "Artist",
		userId:   user.Id,
		targetId: artist.Id,
		liked:    &user.LikedArtists,
		likers:   &artist.Likers,
		likes:    &artist.Likes,
	}
	if err := view.undoLike(); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveArtist(ctx, artist); err != nil {
		return nil, nil, err
	}
	return user, artist, nil
}

// LikeAlbum records the user's like on an album.
func (e *Engine) LikeAlbum(ctx context.Context, userId string, albumId string) (*model.User, *model.Album, error) {
	unlock := e.locks.lock(userId, albumId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	album, err := e.store.ResolveAlbumById(ctx, albumId)
	if err != nil {
		return nil, nil, err
	}

	view := &reactionView{
		kind:     "Album",
		userId:   user.Id,
		targetId: album.Id,
		liked:    &user.LikedAlbums,
		likers:   &album.Likers,
		likes:    &album.Likes,
	}
	if err := view.like(); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveAlbum(ctx, album); err != nil {
		return nil, nil, err
	}
	return user, album, nil
}

// UndoLikeAlbum removes the user's like from an album.
func (e *Engine) UndoLikeAlbum(ctx context.Context, userId string, albumId string) (*model.User, *model.Album, error) {
	unlock := e.locks.lock(userId, albumId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	album, err := e.store.ResolveAlbumById(ctx, albumId)
	if err != nil {
		return nil, nil, err
	}

	view := &reactionView{
		kind:     "Album",
		userId:   user.Id,
		targetId: album.Id,
		liked:    &user.LikedAlbums,
		likers:   &album.Likers,
		likes:    &album.Likes,
	}
	if err := view.undoLike(); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveAlbum(ctx, album); err != nil {
		return nil, nil, err
	}
	return user, album, nil
}

// LikeTrack records the user's like on a track.
func (e *Engine) LikeTrack(ctx context.Context, userId string, trackId string) (*model.User, *model.Track, error) {
	unlock := e.locks.lock(userId, trackId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	track, err := e.store.ResolveTrackById(ctx, trackId)
	if err != nil {
		return nil, nil, err
	}

	view := &reactionView{
		kind:     "Track",
		userId:   user.Id,
		targetId: track.Id,
		liked:    &user.LikedTracks,
		likers:   &track.Likers,
		likes:    &track.Likes,
	}
	if err := view.like(); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveTrack(ctx, track); err != nil {
		return nil, nil, err
	}
	return user, track, nil
}

// UndoLikeTrack removes the user's like from a track.
func (e *Engine) UndoLikeTrack(ctx context.Context, userId string, trackId string) (*model.User, *model.Track, error) {
	unlock := e.locks.lock(userId, trackId)
	defer unlock()

	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	track, err := e.store.ResolveTrackById(ctx, trackId)
	if err != nil {
		return nil, nil, err
	}

	view := &reactionView{
		kind:     "Track",
		userId:   user.Id,
		targetId: track.Id,
		liked:    &user.LikedTracks,
		likers:   &track.Likers,
		likes:    &track.Likes,
	}
	if err := view.undoLike(); err != nil {
		return nil, nil, err
	}

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveTrack(ctx, track); err != nil {
		return nil, nil, err
	}
	return user, track, nil
}
