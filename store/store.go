// Package store provides per-collection document storage for the social
// graph. The contract is deliberately narrow: id-based resolution, atomic
// single-document upsert and id-based deletion. There is no multi-document
// transaction primitive; keeping the mirrored id lists on two documents
// consistent is entirely the engine's job.
package store

import (
	"context"

	"github.com/tunemesh/tunemesh/model"
)

// Store is the entity store consumed by the engagement engine. Resolve
// methods return a typed errs.NotFoundError when the id is absent; Save is
// an idempotent upsert keyed by id and atomic for that single document
// only.
type Store interface {
	ResolveUserById(ctx context.Context, id string) (*model.User, error)
	ResolveArtistById(ctx context.Context, id string) (*model.Artist, error)
	ResolveAlbumById(ctx context.Context, id string) (*model.Album, error)
	ResolveTrackById(ctx context.Context, id string) (*model.Track, error)
	ResolvePostById(ctx context.Context, id string) (*model.Post, error)
	ResolveCommentById(ctx context.Context, id string) (*model.Comment, error)

	// FindUserByName returns the first user with the given name, or nil
	// when no user matches. Absence is not an error for filter lookups.
	FindUserByName(ctx context.Context, name string) (*model.User, error)

	SaveUser(ctx context.Context, user *model.User) error
	SaveArtist(ctx context.Context, artist *model.Artist) error
	SaveAlbum(ctx context.Context, album *model.Album) error
	SaveTrack(ctx context.Context, track *model.Track) error
	SavePost(ctx context.Context, post *model.Post) error
	SaveComment(ctx context.Context, comment *model.Comment) error

	DeletePostById(ctx context.Context, id string) error
}
