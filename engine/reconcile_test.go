package engine

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestAuditUserEdgesCleanGraph(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	y := seedUser(t, s, "y")
	a := seedArtist(t, s, "a")

	_, _, err := e.FollowUser(ctx, x.Id, y.Id)
	require.NoError(t, err)
	_, _, err = e.FollowArtist(ctx, x.Id, a.Id)
	require.NoError(t, err)
	post, _, _, err := e.CreatePost(ctx, x.Id, "p", "ARTIST", a.Id, "text", "hi")
	require.NoError(t, err)
	_, _, err = e.LikePost(ctx, y.Id, post.Id)
	require.NoError(t, err)

	for _, id := range []string{x.Id, y.Id} {
		mismatches, err := e.AuditUserEdges(ctx, id)
		require.NoError(t, err)
		require.Empty(t, mismatches)
	}
}

func TestAuditUserEdgesHalfPresentFollow(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	y := seedUser(t, s, "y")

	// Simulate a crash between the two saves of a follow: only the
	// follower's half of the edge was written.
	x.Following = pq.StringArray{y.Id}
	require.NoError(t, s.SaveUser(ctx, x))

	mismatches, err := e.AuditUserEdges(ctx, x.Id)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	require.Equal(t, "follow", mismatches[0].Kind)
	require.Equal(t, x.Id, mismatches[0].OwnerId)
	require.Equal(t, y.Id, mismatches[0].TargetId)
	require.Equal(t, "mirror reference absent", mismatches[0].Detail)

	// The other endpoint's audit reports nothing: its document carries no
	// edge to verify.
	mismatches, err = e.AuditUserEdges(ctx, y.Id)
	require.NoError(t, err)
	require.Empty(t, mismatches)
}

func TestAuditUserEdgesMissingTarget(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")

	x.FollowedArtists = pq.StringArray{"vanished"}
	x.LikedPosts = pq.StringArray{"gone"}
	require.NoError(t, s.SaveUser(ctx, x))

	mismatches, err := e.AuditUserEdges(ctx, x.Id)
	require.NoError(t, err)
	require.Len(t, mismatches, 2)

	byKind := map[string]EdgeMismatch{}
	for _, m := range mismatches {
		byKind[m.Kind] = m
	}
	require.Equal(t, "vanished", byKind["follow-artist"].TargetId)
	require.Equal(t, "target document absent", byKind["follow-artist"].Detail)
	require.Equal(t, "gone", byKind["like-post"].TargetId)
	require.Equal(t, "target document absent", byKind["like-post"].Detail)
}

// A crash between the two saves of an entity like leaves the user's half
// written and the entity's half missing; the audit must surface all three
// entity kinds.
func TestAuditUserEdgesHalfPresentEntityLikes(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	a := seedArtist(t, s, "a")
	al := seedAlbum(t, s, "al")
	tr := seedTrack(t, s, "tr")

	x.LikedArtists = pq.StringArray{a.Id}
	x.LikedAlbums = pq.StringArray{al.Id}
	x.LikedTracks = pq.StringArray{tr.Id}
	require.NoError(t, s.SaveUser(ctx, x))

	mismatches, err := e.AuditUserEdges(ctx, x.Id)
	require.NoError(t, err)
	require.Len(t, mismatches, 3)

	byKind := map[string]EdgeMismatch{}
	for _, m := range mismatches {
		byKind[m.Kind] = m
	}
	require.Equal(t, a.Id, byKind["like-artist"].TargetId)
	require.Equal(t, "mirror reference absent", byKind["like-artist"].Detail)
	require.Equal(t, al.Id, byKind["like-album"].TargetId)
	require.Equal(t, tr.Id, byKind["like-track"].TargetId)
}

func TestAuditUserEdgesEntityLikeTargetMissing(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")

	x.LikedArtists = pq.StringArray{"vanished-artist"}
	require.NoError(t, s.SaveUser(ctx, x))

	mismatches, err := e.AuditUserEdges(ctx, x.Id)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	require.Equal(t, "like-artist", mismatches[0].Kind)
	require.Equal(t, "target document absent", mismatches[0].Detail)
}

func TestAuditUserEdgesCleanEntityLikes(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	a := seedArtist(t, s, "a")
	al := seedAlbum(t, s, "al")
	tr := seedTrack(t, s, "tr")

	_, _, err := e.LikeArtist(ctx, x.Id, a.Id)
	require.NoError(t, err)
	_, _, err = e.LikeAlbum(ctx, x.Id, al.Id)
	require.NoError(t, err)
	_, _, err = e.LikeTrack(ctx, x.Id, tr.Id)
	require.NoError(t, err)

	mismatches, err := e.AuditUserEdges(ctx, x.Id)
	require.NoError(t, err)
	require.Empty(t, mismatches)
}

func TestAuditUserEdgesOwnershipMismatch(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	y := seedUser(t, s, "y")
	a := seedArtist(t, s, "a")
	post := seedPost(t, s, "p", y, a)

	// x claims a post actually authored by y.
	x.Posts = pq.StringArray{post.Id}
	require.NoError(t, s.SaveUser(ctx, x))

	mismatches, err := e.AuditUserEdges(ctx, x.Id)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	require.Equal(t, "owns-post", mismatches[0].Kind)
	require.Equal(t, "post poster differs", mismatches[0].Detail)
}

func TestAuditUserEdgesUnknownUser(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	_, err := e.AuditUserEdges(ctx, "ghost")
	require.Error(t, err)
	require.Equal(t, "User not found.", err.Error())
}
