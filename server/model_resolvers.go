package server

import (
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/tunemesh/tunemesh/engine"
	"github.com/tunemesh/tunemesh/model"
)

// Thin read-only wrappers exposing the document fields to GraphQL. They
// hold the already-loaded documents returned by the engine; no resolver
// method touches the store.

func toIDs(ids []string) []graphql.ID {
	res := make([]graphql.ID, 0, len(ids))
	for _, id := range ids {
		res = append(res, graphql.ID(id))
	}
	return res
}

func toOptionalID(id *string) *graphql.ID {
	if id == nil {
		return nil
	}
	gid := graphql.ID(*id)
	return &gid
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

type UserResolver struct {
	u *model.User
}

func (r *UserResolver) ID() graphql.ID              { return graphql.ID(r.u.Id) }
func (r *UserResolver) Name() string                { return r.u.Name }
func (r *UserResolver) CreatedAt() string           { return formatTime(r.u.CreatedAt) }
func (r *UserResolver) Following() []graphql.ID     { return toIDs(r.u.Following) }
func (r *UserResolver) Followers() []graphql.ID     { return toIDs(r.u.Followers) }
func (r *UserResolver) FollowedArtists() []graphql.ID { return toIDs(r.u.FollowedArtists) }
func (r *UserResolver) FollowedAlbums() []graphql.ID  { return toIDs(r.u.FollowedAlbums) }
func (r *UserResolver) FollowedTracks() []graphql.ID  { return toIDs(r.u.FollowedTracks) }
func (r *UserResolver) Posts() []graphql.ID         { return toIDs(r.u.Posts) }
func (r *UserResolver) Comments() []graphql.ID      { return toIDs(r.u.Comments) }
func (r *UserResolver) LikedPosts() []graphql.ID    { return toIDs(r.u.LikedPosts) }
func (r *UserResolver) DislikedPosts() []graphql.ID { return toIDs(r.u.DislikedPosts) }
func (r *UserResolver) LikedComments() []graphql.ID { return toIDs(r.u.LikedComments) }
func (r *UserResolver) DislikedComments() []graphql.ID { return toIDs(r.u.DislikedComments) }
func (r *UserResolver) LikedArtists() []graphql.ID  { return toIDs(r.u.LikedArtists) }
func (r *UserResolver) LikedAlbums() []graphql.ID   { return toIDs(r.u.LikedAlbums) }
func (r *UserResolver) LikedTracks() []graphql.ID   { return toIDs(r.u.LikedTracks) }

type ArtistResolver struct {
	a *model.Artist
}

func (r *ArtistResolver) ID() graphql.ID          { return graphql.ID(r.a.Id) }
func (r *ArtistResolver) Name() string            { return r.a.Name }
func (r *ArtistResolver) Posts() []graphql.ID     { return toIDs(r.a.Posts) }
func (r *ArtistResolver) Likes() int32            { return r.a.Likes }
func (r *ArtistResolver) Likers() []graphql.ID    { return toIDs(r.a.Likers) }
func (r *ArtistResolver) Followers() []graphql.ID { return toIDs(r.a.Followers) }

type AlbumResolver struct {
	a *model.Album
}

func (r *AlbumResolver) ID() graphql.ID          { return graphql.ID(r.a.Id) }
func (r *AlbumResolver) Name() string            { return r.a.Name }
func (r *AlbumResolver) Posts() []graphql.ID     { return toIDs(r.a.Posts) }
func (r *AlbumResolver) Likes() int32            { return r.a.Likes }
func (r *AlbumResolver) Likers() []graphql.ID    { return toIDs(r.a.Likers) }
func (r *AlbumResolver) Followers() []graphql.ID { return toIDs(r.a.Followers) }

type TrackResolver struct {
	t *model.Track
}

func (r *TrackResolver) ID() graphql.ID          { return graphql.ID(r.t.Id) }
func (r *TrackResolver) Name() string            { return r.t.Name }
func (r *TrackResolver) Posts() []graphql.ID     { return toIDs(r.t.Posts) }
func (r *TrackResolver) Likes() int32            { return r.t.Likes }
func (r *TrackResolver) Likers() []graphql.ID    { return toIDs(r.t.Likers) }
func (r *TrackResolver) Followers() []graphql.ID { return toIDs(r.t.Followers) }

type PostResolver struct {
	p *model.Post
}

func (r *PostResolver) ID() graphql.ID           { return graphql.ID(r.p.Id) }
func (r *PostResolver) CreatedAt() string        { return formatTime(r.p.CreatedAt) }
func (r *PostResolver) Poster() graphql.ID       { return graphql.ID(r.p.Poster) }
func (r *PostResolver) PostType() string         { return r.p.PostType.String() }
func (r *PostResolver) ArtistId() *graphql.ID    { return toOptionalID(r.p.ArtistId) }
func (r *PostResolver) AlbumId() *graphql.ID     { return toOptionalID(r.p.AlbumId) }
func (r *PostResolver) TrackId() *graphql.ID     { return toOptionalID(r.p.TrackId) }
func (r *PostResolver) Title() string            { return r.p.Title }
func (r *PostResolver) ContentType() string      { return r.p.ContentType }
func (r *PostResolver) Content() string          { return r.p.Content }
func (r *PostResolver) Likes() int32             { return r.p.Likes }
func (r *PostResolver) Dislikes() int32          { return r.p.Dislikes }
func (r *PostResolver) Likers() []graphql.ID     { return toIDs(r.p.Likers) }
func (r *PostResolver) Dislikers() []graphql.ID  { return toIDs(r.p.Dislikers) }
func (r *PostResolver) Comments() []graphql.ID   { return toIDs(r.p.Comments) }

type CommentResolver struct {
	c *model.Comment
}

func (r *CommentResolver) ID() graphql.ID          { return graphql.ID(r.c.Id) }
func (r *CommentResolver) CreatedAt() string       { return formatTime(r.c.CreatedAt) }
func (r *CommentResolver) Post() graphql.ID        { return graphql.ID(r.c.PostId) }
func (r *CommentResolver) Poster() graphql.ID      { return graphql.ID(r.c.Poster) }
func (r *CommentResolver) Content() string         { return r.c.Content }
func (r *CommentResolver) Likes() int32            { return r.c.Likes }
func (r *CommentResolver) Dislikes() int32         { return r.c.Dislikes }
func (r *CommentResolver) Likers() []graphql.ID    { return toIDs(r.c.Likers) }
func (r *CommentResolver) Dislikers() []graphql.ID { return toIDs(r.c.Dislikers) }
func (r *CommentResolver) Parent() *graphql.ID     { return toOptionalID(r.c.ParentId) }
func (r *CommentResolver) Children() []graphql.ID  { return toIDs(r.c.Children) }
func (r *CommentResolver) IsDeleted() bool         { return r.c.State.IsDeleted() }

type EdgeMismatchResolver struct {
	m engine.EdgeMismatch
}

func (r *EdgeMismatchResolver) Kind() string        { return r.m.Kind }
func (r *EdgeMismatchResolver) OwnerId() graphql.ID { return graphql.ID(r.m.OwnerId) }
func (r *EdgeMismatchResolver) TargetId() graphql.ID {
	return graphql.ID(r.m.TargetId)
}
func (r *EdgeMismatchResolver) Detail() string { return r.m.Detail }

type FollowUserPayloadResolver struct {
	follower *model.User
	followed *model.User
}

func (r *FollowUserPayloadResolver) Follower() *UserResolver { return &UserResolver{u: r.follower} }
func (r *FollowUserPayloadResolver) Followed() *UserResolver { return &UserResolver{u: r.followed} }

type UserArtistPayloadResolver struct {
	user   *model.User
	artist *model.Artist
}

func (r *UserArtistPayloadResolver) User() *UserResolver     { return &UserResolver{u: r.user} }
func (r *UserArtistPayloadResolver) Artist() *ArtistResolver { return &ArtistResolver{a: r.artist} }

type UserAlbumPayloadResolver struct {
	user  *model.User
	album *model.Album
}

func (r *UserAlbumPayloadResolver) User() *UserResolver   { return &UserResolver{u: r.user} }
func (r *UserAlbumPayloadResolver) Album() *AlbumResolver { return &AlbumResolver{a: r.album} }

type UserTrackPayloadResolver struct {
	user  *model.User
	track *model.Track
}

func (r *UserTrackPayloadResolver) User() *UserResolver   { return &UserResolver{u: r.user} }
func (r *UserTrackPayloadResolver) Track() *TrackResolver { return &TrackResolver{t: r.track} }

type UserPostPayloadResolver struct {
	user *model.User
	post *model.Post
}

func (r *UserPostPayloadResolver) User() *UserResolver { return &UserResolver{u: r.user} }
func (r *UserPostPayloadResolver) Post() *PostResolver { return &PostResolver{p: r.post} }

type UserCommentPayloadResolver struct {
	user    *model.User
	comment *model.Comment
}

func (r *UserCommentPayloadResolver) User() *UserResolver { return &UserResolver{u: r.user} }
func (r *UserCommentPayloadResolver) Comment() *CommentResolver {
	return &CommentResolver{c: r.comment}
}

type CreatePostPayloadResolver struct {
	post   *model.Post
	poster *model.User
	target *engine.PostTarget
}

func (r *CreatePostPayloadResolver) Post() *PostResolver   { return &PostResolver{p: r.post} }
func (r *CreatePostPayloadResolver) Poster() *UserResolver { return &UserResolver{u: r.poster} }
func (r *CreatePostPayloadResolver) Artist() *ArtistResolver {
	if r.target.Artist == nil {
		return nil
	}
	return &ArtistResolver{a: r.target.Artist}
}
func (r *CreatePostPayloadResolver) Album() *AlbumResolver {
	if r.target.Album == nil {
		return nil
	}
	return &AlbumResolver{a: r.target.Album}
}
func (r *CreatePostPayloadResolver) Track() *TrackResolver {
	if r.target.Track == nil {
		return nil
	}
	return &TrackResolver{t: r.target.Track}
}

type DeletePostPayloadResolver struct {
	deletedPostId string
	poster        *model.User
	target        *engine.PostTarget
}

func (r *DeletePostPayloadResolver) DeletedPostId() graphql.ID {
	return graphql.ID(r.deletedPostId)
}
func (r *DeletePostPayloadResolver) Poster() *UserResolver { return &UserResolver{u: r.poster} }
func (r *DeletePostPayloadResolver) Artist() *ArtistResolver {
	if r.target.Artist == nil {
		return nil
	}
	return &ArtistResolver{a: r.target.Artist}
}
func (r *DeletePostPayloadResolver) Album() *AlbumResolver {
	if r.target.Album == nil {
		return nil
	}
	return &AlbumResolver{a: r.target.Album}
}
func (r *DeletePostPayloadResolver) Track() *TrackResolver {
	if r.target.Track == nil {
		return nil
	}
	return &TrackResolver{t: r.target.Track}
}

type CreateCommentPayloadResolver struct {
	comment   *model.Comment
	post      *model.Post
	commenter *model.User
}

func (r *CreateCommentPayloadResolver) Comment() *CommentResolver {
	return &CommentResolver{c: r.comment}
}
func (r *CreateCommentPayloadResolver) Post() *PostResolver { return &PostResolver{p: r.post} }
func (r *CreateCommentPayloadResolver) Commenter() *UserResolver {
	return &UserResolver{u: r.commenter}
}
