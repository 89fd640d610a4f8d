package engine

import (
	"context"

	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
)

// FollowUser creates the mirrored follow edge between two users: the
// followed user's id lands in the follower's Following list and the
// follower's id in the followed user's Followers list. Persists follower
// first, then followed.
func (e *Engine) FollowUser(ctx context.Context, followerId string, followedId string) (*model.User, *model.User, error) {
	if followerId == followedId {
		return nil, nil, errs.Follow("Cannot follow yourself.")
	}

	unlock := e.locks.lock(followerId, followedId)
	defer unlock()

	follower, err := e.store.ResolveUserById(ctx, followerId)
	if err != nil {
		return nil, nil, err
	}
	followed, err := e.store.ResolveUserById(ctx, followedId)
	if err != nil {
		return nil, nil, err
	}

	if edgePresent(follower.Following, followed.Id, followed.Followers, follower.Id) {
		return nil, nil, errs.Follow("Already following user.")
	}

	linkEdge(&follower.Following, followed.Id, &followed.Followers, follower.Id)

	if err := e.store.SaveUser(ctx, follower); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveUser(ctx, followed); err != nil {
		return nil, nil, err
	}
	return follower, followed, nil
}

// UnfollowUser removes the follow edge. Both documents must currently agree
// the edge exists; a half-present edge blocks removal until reconciled.
func (e *Engine) UnfollowUser(ctx context.Context, followerId string, followedId string) (*model.User, *model.User, error) {
	if followerId == followedId {
		return nil, nil, errs.Follow("Cannot follow yourself.")
	}

	unlock := e.locks.lock(followerId, followedId)
	defer unlock()

	follower, err := e.store.ResolveUserById(ctx, followerId)
	if err != nil {
		return nil, nil, err
	}
	followed, err := e.store.ResolveUserById(ctx, followedId)
	if err != nil {
		return nil, nil, err
	}

	if !edgePresent(follower.Following, followed.Id, followed.Followers, follower.Id) {
		return nil, nil, errs.Follow("Already not following user.")
	}

	unlinkEdge(&follower.Following, followed.Id, &followed.Followers, follower.Id)

	if err := e.store.SaveUser(ctx, follower); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveUser(ctx, followed); err != nil {
		return nil, nil, err
	}
	return follower, followed, nil
}

// FollowArtist creates the user-artist follow edge
// (User.FollowedArtists <-> Artist.Followers).
func (e *Engine) FollowArtist(ctx context.Context, userId string, artistId string) (*model.User, *model.Artist, error) {
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

	if edgePresent(user.FollowedArtists, artist.Id, artist.Followers, user.Id) {
		return nil, nil, errs.Conflict("Already following artist.")
	}

	linkEdge(&user.FollowedArtists, artist.Id, &artist.Followers, user.Id)

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveArtist(ctx, artist); err != nil {
		return nil, nil, err
	}
	return user, artist, nil
}

// UnfollowArtist removes the user-artist follow edge.
func (e *Engine) UnfollowArtist(ctx context.Context, userId string, artistId string) (*model.User, *model.Artist, error) {
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

	if !edgePresent(user.FollowedArtists, artist.Id, artist.Followers, user.Id) {
		return nil, nil, errs.Conflict("Already not following artist.")
	}

	unlinkEdge(&user.FollowedArtists, artist.Id, &artist.Followers, user.Id)

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveArtist(ctx, artist); err != nil {
		return nil, nil, err
	}
	return user, artist, nil
}

// FollowAlbum creates the user-album follow edge
// (User.FollowedAlbums <-> Album.Followers).
func (e *Engine) FollowAlbum(ctx context.Context, userId string, albumId string) (*model.User, *model.Album, error) {
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

	if edgePresent(user.FollowedAlbums, album.Id, album.Followers, user.Id) {
		return nil, nil, errs.Conflict("Already following album.")
	}

	linkEdge(&user.FollowedAlbums, album.Id, &album.Followers, user.Id)

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveAlbum(ctx, album); err != nil {
		return nil, nil, err
	}
	return user, album, nil
}

// UnfollowAlbum removes the user-album follow edge.
func (e *Engine) UnfollowAlbum(ctx context.Context, userId string, albumId string) (*model.User, *model.Album, error) {
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

	if !edgePresent(user.FollowedAlbums, album.Id, album.Followers, user.Id) {
		return nil, nil, errs.Conflict("Already not following album.")
	}

	unlinkEdge(&user.FollowedAlbums, album.Id, &album.Followers, user.Id)

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveAlbum(ctx, album); err != nil {
		return nil, nil, err
	}
	return user, album, nil
}

// FollowTrack creates the user-track follow edge
// (User.FollowedTracks <-> Track.Followers).
func (e *Engine) FollowTrack(ctx context.Context, userId string, trackId string) (*model.User, *model.Track, error) {
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

	if edgePresent(user.FollowedTracks, track.Id, track.Followers, user.Id) {
		return nil, nil, errs.Conflict("Already following track.")
	}

	linkEdge(&user.FollowedTracks, track.Id, &track.Followers, user.Id)

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveTrack(ctx, track); err != nil {
		return nil, nil, err
	}
	return user, track, nil
}

// UnfollowTrack removes the user-track follow edge.
func (e *Engine) UnfollowTrack(ctx context.Context, userId string, trackId string) (*model.User, *model.Track, error) {
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

	if !edgePresent(user.FollowedTracks, track.Id, track.Followers, user.Id) {
		return nil, nil, errs.Conflict("Already not following track.")
	}

	unlinkEdge(&user.FollowedTracks, track.Id, &track.Followers, user.Id)

	if err := e.store.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := e.store.SaveTrack(ctx, track); err != nil {
		return nil, nil, err
	}
	return user, track, nil
}
