package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/tunemesh/tunemesh/model"
	"github.com/tunemesh/tunemesh/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.FakeStore) {
	t.Helper()
	s := store.NewFakeStore()
	return New(s), s
}

func seedUser(t *testing.T, s *store.FakeStore, id string) *model.User {
	t.Helper()
	user := &model.User{
		Id:               id,
		CreatedAt:        time.Now(),
		Name:             "user_" + id,
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
	require.NoError(t, s.SaveUser(context.Background(), user))
	return user
}

func seedArtist(t *testing.T, s *store.FakeStore, id string) *model.Artist {
	t.Helper()
	artist := &model.Artist{
		Id:        id,
		CreatedAt: time.Now(),
		Name:      "artist_" + id,
		Posts:     pq.StringArray{},
		Likers:    pq.StringArray{},
		Followers: pq.StringArray{},
	}
	require.NoError(t, s.SaveArtist(context.Background(), artist))
	return artist
}

func seedAlbum(t *testing.T, s *store.FakeStore, id string) *model.Album {
	t.Helper()
	album := &model.Album{
		Id:        id,
		CreatedAt: time.Now(),
		Name:      "album_" + id,
		Posts:     pq.StringArray{},
		Likers:    pq.StringArray{},
		Followers: pq.StringArray{},
	}
	require.NoError(t, s.SaveAlbum(context.Background(), album))
	return album
}

func seedTrack(t *testing.T, s *store.FakeStore, id string) *model.Track {
	t.Helper()
	track := &model.Track{
		Id:        id,
		CreatedAt: time.Now(),
		Name:      "track_" + id,
		Posts:     pq.StringArray{},
		Likers:    pq.StringArray{},
		Followers: pq.StringArray{},
	}
	require.NoError(t, s.SaveTrack(context.Background(), track))
	return track
}

// seedPost creates a post under the given artist, wiring the ownership
// lists on all three documents the way CreatePost would.
func seedPost(t *testing.T, s *store.FakeStore, id string, poster *model.User, artist *model.Artist) *model.Post {
	t.Helper()
	ctx := context.Background()
	artistId := artist.Id
	post := &model.Post{
		Id:        id,
		CreatedAt: time.Now(),
		Poster:    poster.Id,
		PostType:  model.PostTypeArtist,
		ArtistId:  &artistId,
		Title:     "post_" + id,
		Likers:    pq.StringArray{},
		Dislikers: pq.StringArray{},
		Comments:  pq.StringArray{},
	}
	require.NoError(t, s.SavePost(ctx, post))
	poster.Posts = append(poster.Posts, post.Id)
	require.NoError(t, s.SaveUser(ctx, poster))
	artist.Posts = append(artist.Posts, post.Id)
	require.NoError(t, s.SaveArtist(ctx, artist))
	return post
}

func seedComment(t *testing.T, s *store.FakeStore, id string, post *model.Post, poster *model.User) *model.Comment {
	t.Helper()
	ctx := context.Background()
	comment := &model.Comment{
		Id:        id,
		CreatedAt: time.Now(),
		PostId:    post.Id,
		Poster:    poster.Id,
		Content:   "comment_" + id,
		Likers:    pq.StringArray{},
		Dislikers: pq.StringArray{},
		Children:  pq.StringArray{},
		State:     model.CommentStateActive,
	}
	require.NoError(t, s.SaveComment(ctx, comment))
	post.Comments = append(post.Comments, comment.Id)
	require.NoError(t, s.SavePost(ctx, post))
	poster.Comments = append(poster.Comments, comment.Id)
	require.NoError(t, s.SaveUser(ctx, poster))
	return comment
}
