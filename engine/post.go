package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/tunemesh/tunemesh/model"
	"github.com/tunemesh/tunemesh/store"
	"github.com/tunemesh/tunemesh/utils"
)

// PostTarget is the tagged union over the three music entity kinds a post
// can attach to. Exactly one of Artist/Album/Track is non-nil, matching
// Type.
type PostTarget struct {
	Type   model.PostType
	Artist *model.Artist
	Album  *model.Album
	Track  *model.Track
}

// Id returns the id of whichever entity the union holds.
func (t *PostTarget) Id() string {
	switch t.Type {
	case model.PostTypeArtist:
		return t.Artist.Id
	case model.PostTypeAlbum:
		return t.Album.Id
	case model.PostTypeTrack:
		return t.Track.Id
	}
	return ""
}

// Posts returns a pointer to the entity's posts list for in-place edits.
func (t *PostTarget) Posts() *pq.StringArray {
	switch t.Type {
	case model.PostTypeArtist:
		return &t.Artist.Posts
	case model.PostTypeAlbum:
		return &t.Album.Posts
	case model.PostTypeTrack:
		return &t.Track.Posts
	}
	return nil
}

func (t *PostTarget) save(ctx context.Context, s store.Store) error {
	switch t.Type {
	case model.PostTypeArtist:
		return s.SaveArtist(ctx, t.Artist)
	case model.PostTypeAlbum:
		return s.SaveAlbum(ctx, t.Album)
	case model.PostTypeTrack:
		return s.SaveTrack(ctx, t.Track)
	}
	return nil
}

// postTargetResolvers dispatches target resolution by post type. A lookup
// table instead of an if/else chain so adding an entity kind is one entry.
var postTargetResolvers = map[model.PostType]func(ctx context.Context, s store.Store, id string) (*PostTarget, error){
	model.PostTypeArtist: func(ctx context.Context, s store.Store, id string) (*PostTarget, error) {
		artist, err := s.ResolveArtistById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &PostTarget{Type: model.PostTypeArtist, Artist: artist}, nil
	},
	model.PostTypeAlbum: func(ctx context.Context, s store.Store, id string) (*PostTarget, error) {
		album, err := s.ResolveAlbumById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &PostTarget{Type: model.PostTypeAlbum, Album: album}, nil
	},
	model.PostTypeTrack: func(ctx context.Context, s store.Store, id string) (*PostTarget, error) {
		track, err := s.ResolveTrackById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &PostTarget{Type: model.PostTypeTrack, Track: track}, nil
	},
}

func resolvePostTarget(ctx context.Context, s store.Store, postType model.PostType, id string) (*PostTarget, error) {
	resolve, ok := postTargetResolvers[postType]
	if !ok {
		return nil, fmt.Errorf("%s is not a valid PostType", postType)
	}
	return resolve(ctx, s, id)
}

// CreatePost builds a post under the given entity and records the
// ownership edges: the new post id lands in the poster's Posts list and in
// the entity's Posts list. Persists post, then poster, then entity.
func (e *Engine) CreatePost(ctx context.Context, posterId string, title string, postType model.PostType, entityId string, contentType string, content string) (*model.Post, *model.User, *PostTarget, error) {
	unlock := e.locks.lock(posterId, entityId)
	defer unlock()

	poster, err := e.store.ResolveUserById(ctx, posterId)
	if err != nil {
		return nil, nil, nil, err
	}
	target, err := resolvePostTarget(ctx, e.store, postType, entityId)
	if err != nil {
		return nil, nil, nil, err
	}

	post := &model.Post{
		Id:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Poster:      poster.Id,
		PostType:    postType,
		Title:       title,
		ContentType: contentType,
		Content:     content,
		Likers:      pq.StringArray{},
		Dislikers:   pq.StringArray{},
		Comments:    pq.StringArray{},
	}
	targetId := target.Id()
	switch postType {
	case model.PostTypeArtist:
		post.ArtistId = &targetId
	case model.PostTypeAlbum:
		post.AlbumId = &targetId
	case model.PostTypeTrack:
		post.TrackId = &targetId
	}

	poster.Posts = append(poster.Posts, post.Id)
	list := target.Posts()
	*list = append(*list, post.Id)

	if err := e.store.SavePost(ctx, post); err != nil {
		return nil, nil, nil, err
	}
	if err := e.store.SaveUser(ctx, poster); err != nil {
		return nil, nil, nil, err
	}
	if err := target.save(ctx, e.store); err != nil {
		return nil, nil, nil, err
	}
	return post, poster, target, nil
}

// DeletePostById removes the post's id from its poster's and its entity's
// Posts lists, persists both, then hard-deletes the post document. Both
// owner saves complete before the delete so a failure cannot drop the post
// while an owning reference still points at it.
//
// Comments attached to the post are left in place: they become unreachable
// through the post's comment list but stay stored and addressable.
func (e *Engine) DeletePostById(ctx context.Context, postId string) (string, *model.User, *PostTarget, error) {
	post, err := e.store.ResolvePostById(ctx, postId)
	if err != nil {
		return "", nil, nil, err
	}

	unlock := e.locks.lock(postId, post.Poster, post.TargetEntityId())
	defer unlock()

	// Re-resolve under the lock so a concurrent delete of the same post
	// surfaces as not-found instead of running twice on a stale copy.
	post, err = e.store.ResolvePostById(ctx, postId)
	if err != nil {
		return "", nil, nil, err
	}
	poster, err := e.store.ResolveUserById(ctx, post.Poster)
	if err != nil {
		return "", nil, nil, err
	}
	target, err := resolvePostTarget(ctx, e.store, post.PostType, post.TargetEntityId())
	if err != nil {
		return "", nil, nil, err
	}

	poster.Posts = utils.RemoveString(poster.Posts, post.Id)
	list := target.Posts()
	*list = utils.RemoveString(*list, post.Id)

	if err := e.store.SaveUser(ctx, poster); err != nil {
		return "", nil, nil, err
	}
	if err := target.save(ctx, e.store); err != nil {
		return "", nil, nil, err
	}
	if err := e.store.DeletePostById(ctx, post.Id); err != nil {
		return "", nil, nil, err
	}
	return post.Id, poster, target, nil
}
