package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/tunemesh/tunemesh/cache"
	"github.com/tunemesh/tunemesh/engine"
	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
	"github.com/tunemesh/tunemesh/store"
	. "github.com/tunemesh/tunemesh/utils/log"
)

// RootResolver serves every query and mutation of the schema. It holds the
// app dependencies: the engagement engine, the document store for plain
// lookups and the optional user snapshot cache.
type RootResolver struct {
	Engine *engine.Engine
	Store  store.Store
	Cache  *cache.UserCache
}

// refreshUsers pushes fresh snapshots of mutated users into the
// write-through cache. Best effort only: a cache failure is logged and
// never fails the request, the store stays the source of truth.
func (r *RootResolver) refreshUsers(ctx context.Context, users ...*model.User) {
	if r.Cache == nil {
		return
	}
	for _, user := range users {
		if user == nil {
			continue
		}
		if err := r.Cache.RefreshUser(ctx, user); err != nil {
			Log.Warn("fail to refresh user cache, user_id=", user.Id, " err=", err)
		}
	}
}

// ---- queries ----

func (r *RootResolver) User(ctx context.Context, args struct{ Id graphql.ID }) (*UserResolver, error) {
	user, err := r.Store.ResolveUserById(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	return &UserResolver{u: user}, nil
}

func (r *RootResolver) UserByName(ctx context.Context, args struct{ Name string }) (*UserResolver, error) {
	user, err := r.Store.FindUserByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &UserResolver{u: user}, nil
}

func (r *RootResolver) Artist(ctx context.Context, args struct{ Id graphql.ID }) (*ArtistResolver, error) {
	artist, err := r.Store.ResolveArtistById(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	return &ArtistResolver{a: artist}, nil
}

func (r *RootResolver) Album(ctx context.Context, args struct{ Id graphql.ID }) (*AlbumResolver, error) {
	album, err := r.Store.ResolveAlbumById(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	return &AlbumResolver{a: album}, nil
}

func (r *RootResolver) Track(ctx context.Context, args struct{ Id graphql.ID }) (*TrackResolver, error) {
	track, err := r.Store.ResolveTrackById(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	return &TrackResolver{t: track}, nil
}

func (r *RootResolver) Post(ctx context.Context, args struct{ Id graphql.ID }) (*PostResolver, error) {
	post, err := r.Store.ResolvePostById(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	return &PostResolver{p: post}, nil
}

func (r *RootResolver) Comment(ctx context.Context, args struct{ Id graphql.ID }) (*CommentResolver, error) {
	comment, err := r.Store.ResolveCommentById(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	return &CommentResolver{c: comment}, nil
}

func (r *RootResolver) UserEdgeAudit(ctx context.Context, args struct{ UserId graphql.ID }) ([]*EdgeMismatchResolver, error) {
	mismatches, err := r.Engine.AuditUserEdges(ctx, string(args.UserId))
	if err != nil {
		return nil, err
	}
	res := make([]*EdgeMismatchResolver, 0, len(mismatches))
	for _, m := range mismatches {
		res = append(res, &EdgeMismatchResolver{m: m})
	}
	return res, nil
}

// ---- entity constructors ----

type NewUserInput struct {
	Id   graphql.ID
	Name string
}

// CreateUser is upsert-style: the id comes from the identity provider, and
// a second create for the same id returns the existing user untouched.
func (r *RootResolver) CreateUser(ctx context.Context, args struct{ Input NewUserInput }) (*UserResolver, error) {
	existing, err := r.Store.ResolveUserById(ctx, string(args.Input.Id))
	if err == nil {
		return &UserResolver{u: existing}, nil
	}
	if !errs.IsNotFound(err) {
		return nil, err
	}

	user := &model.User{
		Id:               string(args.Input.Id),
		CreatedAt:        time.Now(),
		Name:             args.Input.Name,
		Following:        pq.StringArray{},
		Followers:        pq.StringArray{},
		FollowedArtists:  pq.StringArray{},
		FollowedAlbums:   pq.StringArray{},
		FollowedTracks:   pq.StringArray{},
		Posts:            pq.StringArray{},
		Comments:         pq.StringArray{},
		LikedPosts:       pq.StringArray{},
		DislikedPosts:    pq.StringArray{},
		LikedComments:    pq.StringArray{},
		DislikedComments: pq.StringArray{},
		LikedArtists:     pq.StringArray{},
		LikedAlbums:      pq.StringArray{},
		LikedTracks:      pq.StringArray{},
	}
	if err := r.Store.SaveUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "fail to create user")
	}
	r.refreshUsers(ctx, user)
	return &UserResolver{u: user}, nil
}

type NewEntityInput struct {
	Name string
}

func (r *RootResolver) CreateArtist(ctx context.Context, args struct{ Input NewEntityInput }) (*ArtistResolver, error) {
	artist := &model.Artist{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Name:      args.Input.Name,
		Posts:     pq.StringArray{},
		Likers:    pq.StringArray{},
		Followers: pq.StringArray{},
	}
	if err := r.Store.SaveArtist(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "fail to create artist")
	}
	return &ArtistResolver{a: artist}, nil
}

func (r *RootResolver) CreateAlbum(ctx context.Context, args struct{ Input NewEntityInput }) (*AlbumResolver, error) {
	album := &model.Album{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Name:      args.Input.Name,
		Posts:     pq.StringArray{},
		Likers:    pq.StringArray{},
		Followers: pq.StringArray{},
	}
	if err := r.Store.SaveAlbum(ctx, album); err != nil {
		return nil, errors.Wrap(err, "fail to create album")
	}
	return &AlbumResolver{a: album}, nil
}

func (r *RootResolver) CreateTrack(ctx context.Context, args struct{ Input NewEntityInput }) (*TrackResolver, error) {
	track := &model.Track{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Name:      args.Input.Name,
		Posts:     pq.StringArray{},
		Likers:    pq.StringArray{},
		Followers: pq.StringArray{},
	}
	if err := r.Store.SaveTrack(ctx, track); err != nil {
		return nil, errors.Wrap(err, "fail to create track")
	}
	return &TrackResolver{t: track}, nil
}

// ---- follow edges ----

type FollowUserInput struct {
	FollowerId graphql.ID
	FollowedId graphql.ID
}

func (r *RootResolver) FollowUser(ctx context.Context, args struct{ Input FollowUserInput }) (*FollowUserPayloadResolver, error) {
	follower, followed, err := r.Engine.FollowUser(ctx, string(args.Input.FollowerId), string(args.Input.FollowedId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, follower, followed)
	return &FollowUserPayloadResolver{follower: follower, followed: followed}, nil
}

func (r *RootResolver) UnfollowUser(ctx context.Context, args struct{ Input FollowUserInput }) (*FollowUserPayloadResolver, error) {
	follower, followed, err := r.Engine.UnfollowUser(ctx, string(args.Input.FollowerId), string(args.Input.FollowedId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, follower, followed)
	return &FollowUserPayloadResolver{follower: follower, followed: followed}, nil
}

type UserArtistInput struct {
	UserId   graphql.ID
	ArtistId graphql.ID
}

func (r *RootResolver) FollowArtist(ctx context.Context, args struct{ Input UserArtistInput }) (*UserArtistPayloadResolver, error) {
	user, artist, err := r.Engine.FollowArtist(ctx, string(args.Input.UserId), string(args.Input.ArtistId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserArtistPayloadResolver{user: user, artist: artist}, nil
}

func (r *RootResolver) UnfollowArtist(ctx context.Context, args struct{ Input UserArtistInput }) (*UserArtistPayloadResolver, error) {
	user, artist, err := r.Engine.UnfollowArtist(ctx, string(args.Input.UserId), string(args.Input.ArtistId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserArtistPayloadResolver{user: user, artist: artist}, nil
}

type UserAlbumInput struct {
	UserId  graphql.ID
	AlbumId graphql.ID
}

func (r *RootResolver) FollowAlbum(ctx context.Context, args struct{ Input UserAlbumInput }) (*UserAlbumPayloadResolver, error) {
	user, album, err := r.Engine.FollowAlbum(ctx, string(args.Input.UserId), string(args.Input.AlbumId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserAlbumPayloadResolver{user: user, album: album}, nil
}

func (r *RootResolver) UnfollowAlbum(ctx context.Context, args struct{ Input UserAlbumInput }) (*UserAlbumPayloadResolver, error) {
	user, album, err := r.Engine.UnfollowAlbum(ctx, string(args.Input.UserId), string(args.Input.AlbumId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserAlbumPayloadResolver{user: user, album: album}, nil
}

type UserTrackInput struct {
	UserId  graphql.ID
	TrackId graphql.ID
}

func (r *RootResolver) FollowTrack(ctx context.Context, args struct{ Input UserTrackInput }) (*UserTrackPayloadResolver, error) {
	user, track, err := r.Engine.FollowTrack(ctx, string(args.Input.UserId), string(args.Input.TrackId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserTrackPayloadResolver{user: user, track: track}, nil
}

func (r *RootResolver) UnfollowTrack(ctx context.Context, args struct{ Input UserTrackInput }) (*UserTrackPayloadResolver, error) {
	user, track, err := r.Engine.UnfollowTrack(ctx, string(args.Input.UserId), string(args.Input.TrackId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserTrackPayloadResolver{user: user, track: track}, nil
}

// ---- reactions ----

type UserPostInput struct {
	UserId graphql.ID
	PostId graphql.ID
}

func (r *RootResolver) LikePost(ctx context.Context, args struct{ Input UserPostInput }) (*UserPostPayloadResolver, error) {
	user, post, err := r.Engine.LikePost(ctx, string(args.Input.UserId), string(args.Input.PostId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserPostPayloadResolver{user: user, post: post}, nil
}

func (r *RootResolver) UndoLikePost(ctx context.Context, args struct{ Input UserPostInput }) (*UserPostPayloadResolver, error) {
	user, post, err := r.Engine.UndoLikePost(ctx, string(args.Input.UserId), string(args.Input.PostId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserPostPayloadResolver{user: user, post: post}, nil
}

func (r *RootResolver) DislikePost(ctx context.Context, args struct{ Input UserPostInput }) (*UserPostPayloadResolver, error) {
	user, post, err := r.Engine.DislikePost(ctx, string(args.Input.UserId), string(args.Input.PostId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserPostPayloadResolver{user: user, post: post}, nil
}

func (r *RootResolver) UndoDislikePost(ctx context.Context, args struct{ Input UserPostInput }) (*UserPostPayloadResolver, error) {
	user, post, err := r.Engine.UndoDislikePost(ctx, string(args.Input.UserId), string(args.Input.PostId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserPostPayloadResolver{user: user, post: post}, nil
}

type UserCommentInput struct {
	UserId    graphql.ID
	CommentId graphql.ID
}

func (r *RootResolver) LikeComment(ctx context.Context, args struct{ Input UserCommentInput }) (*UserCommentPayloadResolver, error) {
	user, comment, err := r.Engine.LikeComment(ctx, string(args.Input.UserId), string(args.Input.CommentId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserCommentPayloadResolver{user: user, comment: comment}, nil
}

func (r *RootResolver) UndoLikeComment(ctx context.Context, args struct{ Input UserCommentInput }) (*UserCommentPayloadResolver, error) {
	user, comment, err := r.Engine.UndoLikeComment(ctx, string(args.Input.UserId), string(args.Input.CommentId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserCommentPayloadResolver{user: user, comment: comment}, nil
}

func (r *RootResolver) DislikeComment(ctx context.Context, args struct{ Input UserCommentInput }) (*UserCommentPayloadResolver, error) {
	user, comment, err := r.Engine.DislikeComment(ctx, string(args.Input.UserId), string(args.Input.CommentId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserCommentPayloadResolver{user: user, comment: comment}, nil
}

func (r *RootResolver) UndoDislikeComment(ctx context.Context, args struct{ Input UserCommentInput }) (*UserCommentPayloadResolver, error) {
	user, comment, err := r.Engine.UndoDislikeComment(ctx, string(args.Input.UserId), string(args.Input.CommentId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserCommentPayloadResolver{user: user, comment: comment}, nil
}

func (r *RootResolver) LikeArtist(ctx context.Context, args struct{ Input UserArtistInput }) (*UserArtistPayloadResolver, error) {
	user, artist, err := r.Engine.LikeArtist(ctx, string(args.Input.UserId), string(args.Input.ArtistId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserArtistPayloadResolver{user: user, artist: artist}, nil
}

func (r *RootResolver) UndoLikeArtist(ctx context.Context, args struct{ Input UserArtistInput }) (*UserArtistPayloadResolver, error) {
	user, artist, err := r.Engine.UndoLikeArtist(ctx, string(args.Input.UserId), string(args.Input.ArtistId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserArtistPayloadResolver{user: user, artist: artist}, nil
}

func (r *RootResolver) LikeAlbum(ctx context.Context, args struct{ Input UserAlbumInput }) (*UserAlbumPayloadResolver, error) {
	user, album, err := r.Engine.LikeAlbum(ctx, string(args.Input.UserId), string(args.Input.AlbumId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserAlbumPayloadResolver{user: user, album: album}, nil
}

func (r *RootResolver) UndoLikeAlbum(ctx context.Context, args struct{ Input UserAlbumInput }) (*UserAlbumPayloadResolver, error) {
	user, album, err := r.Engine.UndoLikeAlbum(ctx, string(args.Input.UserId), string(args.Input.AlbumId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserAlbumPayloadResolver{user: user, album: album}, nil
}

func (r *RootResolver) LikeTrack(ctx context.Context, args struct{ Input UserTrackInput }) (*UserTrackPayloadResolver, error) {
	user, track, err := r.Engine.LikeTrack(ctx, string(args.Input.UserId), string(args.Input.TrackId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserTrackPayloadResolver{user: user, track: track}, nil
}

func (r *RootResolver) UndoLikeTrack(ctx context.Context, args struct{ Input UserTrackInput }) (*UserTrackPayloadResolver, error) {
	user, track, err := r.Engine.UndoLikeTrack(ctx, string(args.Input.UserId), string(args.Input.TrackId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, user)
	return &UserTrackPayloadResolver{user: user, track: track}, nil
}

// ---- posts ----

type NewPostInput struct {
	PosterId    graphql.ID
	Title       string
	PostType    string
	EntityId    graphql.ID
	ContentType string
	Content     string
}

func (r *RootResolver) CreatePost(ctx context.Context, args struct{ Input NewPostInput }) (*CreatePostPayloadResolver, error) {
	postType, err := model.ParsePostType(args.Input.PostType)
	if err != nil {
		return nil, err
	}
	post, poster, target, err := r.Engine.CreatePost(
		ctx,
		string(args.Input.PosterId),
		args.Input.Title,
		postType,
		string(args.Input.EntityId),
		args.Input.ContentType,
		args.Input.Content,
	)
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, poster)
	return &CreatePostPayloadResolver{post: post, poster: poster, target: target}, nil
}

type DeletePostInput struct {
	UserId graphql.ID
	PostId graphql.ID
}

func (r *RootResolver) DeletePost(ctx context.Context, args struct{ Input DeletePostInput }) (*DeletePostPayloadResolver, error) {
	// Ownership check belongs to the API layer: the engine operation is
	// keyed by post id alone.
	post, err := r.Store.ResolvePostById(ctx, string(args.Input.PostId))
	if err != nil {
		return nil, err
	}
	if post.Poster != string(args.Input.UserId) {
		return nil, errs.NotAuthorized("delete post")
	}

	deletedId, poster, target, err := r.Engine.DeletePostById(ctx, string(args.Input.PostId))
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, poster)
	return &DeletePostPayloadResolver{deletedPostId: deletedId, poster: poster, target: target}, nil
}

// ---- comments ----

type NewCommentInput struct {
	PostId      graphql.ID
	CommenterId graphql.ID
	Content     string
	ParentId    *graphql.ID
}

func (r *RootResolver) CreateComment(ctx context.Context, args struct{ Input NewCommentInput }) (*CreateCommentPayloadResolver, error) {
	var parentId *string
	if args.Input.ParentId != nil {
		id := string(*args.Input.ParentId)
		parentId = &id
	}
	comment, post, commenter, err := r.Engine.CreateComment(
		ctx,
		string(args.Input.PostId),
		string(args.Input.CommenterId),
		args.Input.Content,
		parentId,
	)
	if err != nil {
		return nil, err
	}
	r.refreshUsers(ctx, commenter)
	return &CreateCommentPayloadResolver{comment: comment, post: post, commenter: commenter}, nil
}

type DeleteCommentInput struct {
	CommentId   graphql.ID
	CommenterId graphql.ID
}

func (r *RootResolver) DeleteComment(ctx context.Context, args struct{ Input DeleteCommentInput }) (*CommentResolver, error) {
	comment, err := r.Engine.DeleteComment(ctx, string(args.Input.CommentId), string(args.Input.CommenterId))
	if err != nil {
		return nil, err
	}
	return &CommentResolver{c: comment}, nil
}
