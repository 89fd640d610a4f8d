package engine

import (
	"context"
	"fmt"

	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/utils"
)

// EdgeMismatch describes one half-present edge found by an audit: the
// owner's list references a target whose mirror list does not reference the
// owner back, or the target document no longer exists.
type EdgeMismatch struct {
	Kind     string // e.g. "follow", "like-post", "owns-post"
	OwnerId  string
	TargetId string
	Detail   string
}

func (m EdgeMismatch) String() string {
	return fmt.Sprintf("%s %s -> %s: %s", m.Kind, m.OwnerId, m.TargetId, m.Detail)
}

const (
	mirrorMissing = "mirror reference absent"
	targetMissing = "target document absent"
)

// AuditUserEdges walks every edge recorded on one user document and
// verifies the mirrored half on the other endpoint. It is strictly
// read-only: a partial multi-save failure leaves edges that both link and
// unlink refuse to touch, and repairing them is an operator decision, not
// something the engine does behind the caller's back. The report gives the
// operator the exact half-edges to reconcile.
func (e *Engine) AuditUserEdges(ctx context.Context, userId string) ([]EdgeMismatch, error) {
	user, err := e.store.ResolveUserById(ctx, userId)
	if err != nil {
		return nil, err
	}

	var mismatches []EdgeMismatch
	report := func(kind, targetId, detail string) {
		mismatches = append(mismatches, EdgeMismatch{
			Kind:     kind,
			OwnerId:  user.Id,
			TargetId: targetId,
			Detail:   detail,
		})
	}

	for _, id := range user.Following {
		other, err := e.store.ResolveUserById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("follow", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(other.Followers, user.Id) {
			report("follow", id, mirrorMissing)
		}
	}
	for _, id := range user.Followers {
		other, err := e.store.ResolveUserById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("followed-by", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(other.Following, user.Id) {
			report("followed-by", id, mirrorMissing)
		}
	}

	for _, id := range user.FollowedArtists {
		artist, err := e.store.ResolveArtistById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("follow-artist", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(artist.Followers, user.Id) {
			report("follow-artist", id, mirrorMissing)
		}
	}
	for _, id := range user.FollowedAlbums {
		album, err := e.store.ResolveAlbumById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("follow-album", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(album.Followers, user.Id) {
			report("follow-album", id, mirrorMissing)
		}
	}
	for _, id := range user.FollowedTracks {
		track, err := e.store.ResolveTrackById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("follow-track", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(track.Followers, user.Id) {
			report("follow-track", id, mirrorMissing)
		}
	}

	checkPostEdge := func(kind string, ids []string, mirror func(likers, dislikers []string) bool) error {
		for _, id := range ids {
			post, err := e.store.ResolvePostById(ctx, id)
			if err != nil {
				if errs.IsNotFound(err) {
					report(kind, id, targetMissing)
					continue
				}
				return err
			}
			if !mirror(post.Likers, post.Dislikers) {
				report(kind, id, mirrorMissing)
			}
		}
		return nil
	}
	if err := checkPostEdge("like-post", user.LikedPosts, func(likers, _ []string) bool {
		return utils.ContainsString(likers, user.Id)
	}); err != nil {
		return nil, err
	}
	if err := checkPostEdge("dislike-post", user.DislikedPosts, func(_, dislikers []string) bool {
		return utils.ContainsString(dislikers, user.Id)
	}); err != nil {
		return nil, err
	}

	for _, id := range user.LikedComments {
		comment, err := e.store.ResolveCommentById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("like-comment", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(comment.Likers, user.Id) {
			report("like-comment", id, mirrorMissing)
		}
	}
	for _, id := range user.DislikedComments {
		comment, err := e.store.ResolveCommentById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("dislike-comment", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(comment.Dislikers, user.Id) {
			report("dislike-comment", id, mirrorMissing)
		}
	}

	for _, id := range user.LikedArtists {
		artist, err := e.store.ResolveArtistById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("like-artist", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(artist.Likers, user.Id) {
			report("like-artist", id, mirrorMissing)
		}
	}
	for _, id := range user.LikedAlbums {
		album, err := e.store.ResolveAlbumById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("like-album", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(album.Likers, user.Id) {
			report("like-album", id, mirrorMissing)
		}
	}
	for _, id := range user.LikedTracks {
		track, err := e.store.ResolveTrackById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("like-track", id, targetMissing)
				continue
			}
			return nil, err
		}
		if !utils.ContainsString(track.Likers, user.Id) {
			report("like-track", id, mirrorMissing)
		}
	}

	for _, id := range user.Posts {
		post, err := e.store.ResolvePostById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("owns-post", id, targetMissing)
				continue
			}
			return nil, err
		}
		if post.Poster != user.Id {
			report("owns-post", id, "post poster differs")
		}
	}
	for _, id := range user.Comments {
		comment, err := e.store.ResolveCommentById(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				report("owns-comment", id, targetMissing)
				continue
			}
			return nil, err
		}
		if comment.Poster != user.Id {
			report("owns-comment", id, "comment poster differs")
		}
	}

	return mismatches, nil
}
