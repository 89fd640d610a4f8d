package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tunemesh/tunemesh/errs"
)

func TestFollowUser(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	y := seedUser(t, s, "y")

	t.Run("follow creates both halves of the edge", func(t *testing.T) {
		follower, followed, err := e.FollowUser(ctx, x.Id, y.Id)
		require.NoError(t, err)
		require.Equal(t, []string{y.Id}, []string(follower.Following))
		require.Equal(t, []string{x.Id}, []string(followed.Followers))

		storedX, err := s.ResolveUserById(ctx, x.Id)
		require.NoError(t, err)
		storedY, err := s.ResolveUserById(ctx, y.Id)
		require.NoError(t, err)
		require.Equal(t, []string{y.Id}, []string(storedX.Following))
		require.Equal(t, []string{x.Id}, []string(storedY.Followers))
	})

	t.Run("re-following is rejected", func(t *testing.T) {
		_, _, err := e.FollowUser(ctx, x.Id, y.Id)
		require.Error(t, err)
		require.IsType(t, errs.FollowError{}, err)
		require.Equal(t, "Already following user.", err.Error())
	})

	t.Run("unfollow restores both documents", func(t *testing.T) {
		follower, followed, err := e.UnfollowUser(ctx, x.Id, y.Id)
		require.NoError(t, err)
		require.Empty(t, follower.Following)
		require.Empty(t, followed.Followers)

		storedX, err := s.ResolveUserById(ctx, x.Id)
		require.NoError(t, err)
		require.Empty(t, storedX.Following)
	})

	t.Run("re-unfollowing is rejected", func(t *testing.T) {
		_, _, err := e.UnfollowUser(ctx, x.Id, y.Id)
		require.Error(t, err)
		require.IsType(t, errs.FollowError{}, err)
		require.Equal(t, "Already not following user.", err.Error())
	})
}

func TestFollowUserPreservesUnrelatedEdges(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	y := seedUser(t, s, "y")
	z := seedUser(t, s, "z")

	_, _, err := e.FollowUser(ctx, x.Id, z.Id)
	require.NoError(t, err)

	// Follow then unfollow y; the x->z edge must come through untouched
	// and in its original position.
	_, _, err = e.FollowUser(ctx, x.Id, y.Id)
	require.NoError(t, err)
	follower, _, err := e.UnfollowUser(ctx, x.Id, y.Id)
	require.NoError(t, err)
	require.Equal(t, []string{z.Id}, []string(follower.Following))
}

func TestFollowUserSelf(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")

	_, _, err := e.FollowUser(ctx, x.Id, x.Id)
	require.Error(t, err)
	require.Equal(t, "Cannot follow yourself.", err.Error())
}

func TestFollowUserNotFound(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")

	_, _, err := e.FollowUser(ctx, x.Id, "ghost")
	require.Error(t, err)
	require.True(t, errs.IsNotFound(err))
	require.Equal(t, "User not found.", err.Error())

	// A failed resolve never mutates the follower.
	storedX, err := s.ResolveUserById(ctx, x.Id)
	require.NoError(t, err)
	require.Empty(t, storedX.Following)
}

// Two concurrent follows of the same pair must produce exactly one edge:
// the per-pair lock serializes them so the loser sees the winner's write.
func TestFollowUserConcurrentDuplicate(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	y := seedUser(t, s, "y")

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := e.FollowUser(ctx, x.Id, y.Id)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var failures int
	for err := range results {
		if err != nil {
			require.IsType(t, errs.FollowError{}, err)
			failures++
		}
	}
	require.Equal(t, 1, failures)

	storedX, err := s.ResolveUserById(ctx, x.Id)
	require.NoError(t, err)
	require.Equal(t, []string{y.Id}, []string(storedX.Following))
}

func TestFollowArtist(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	a := seedArtist(t, s, "a")

	user, artist, err := e.FollowArtist(ctx, u.Id, a.Id)
	require.NoError(t, err)
	require.Equal(t, []string{a.Id}, []string(user.FollowedArtists))
	require.Equal(t, []string{u.Id}, []string(artist.Followers))

	_, _, err = e.FollowArtist(ctx, u.Id, a.Id)
	require.Error(t, err)
	require.Equal(t, "Already following artist.", err.Error())

	user, artist, err = e.UnfollowArtist(ctx, u.Id, a.Id)
	require.NoError(t, err)
	require.Empty(t, user.FollowedArtists)
	require.Empty(t, artist.Followers)

	_, _, err = e.UnfollowArtist(ctx, u.Id, a.Id)
	require.Error(t, err)
	require.Equal(t, "Already not following artist.", err.Error())
}

func TestFollowAlbum(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	al := seedAlbum(t, s, "al")

	user, album, err := e.FollowAlbum(ctx, u.Id, al.Id)
	require.NoError(t, err)
	require.Equal(t, []string{al.Id}, []string(user.FollowedAlbums))
	require.Equal(t, []string{u.Id}, []string(album.Followers))

	_, _, err = e.FollowAlbum(ctx, u.Id, al.Id)
	require.Error(t, err)
	require.Equal(t, "Already following album.", err.Error())

	_, _, err = e.UnfollowAlbum(ctx, u.Id, al.Id)
	require.NoError(t, err)
}

func TestFollowTrack(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	u := seedUser(t, s, "u")
	tr := seedTrack(t, s, "tr")

	user, track, err := e.FollowTrack(ctx, u.Id, tr.Id)
	require.NoError(t, err)
	require.Equal(t, []string{tr.Id}, []string(user.FollowedTracks))
	require.Equal(t, []string{u.Id}, []string(track.Followers))

	_, _, err = e.UnfollowTrack(ctx, u.Id, tr.Id)
	require.NoError(t, err)

	_, _, err = e.UnfollowTrack(ctx, u.Id, tr.Id)
	require.Error(t, err)
	require.Equal(t, "Already not following track.", err.Error())
}

// A half-present edge blocks both directions until reconciled.
func TestFollowUserAsymmetricEdgeBlocks(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	x := seedUser(t, s, "x")
	y := seedUser(t, s, "y")

	// Simulate a partial failure: only the follower side was written.
	x.Following = append(x.Following, y.Id)
	require.NoError(t, s.SaveUser(ctx, x))

	// The conjunction treats a half-present edge as absent, so unfollow
	// is blocked until the documents are reconciled.
	_, _, err := e.UnfollowUser(ctx, x.Id, y.Id)
	require.Error(t, err)
	require.Equal(t, "Already not following user.", err.Error())
}
