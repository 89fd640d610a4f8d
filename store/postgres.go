package store

import (
	"context"
	"errors"

	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
	"gorm.io/gorm"
)

// DocumentStore is the production Store backed by Postgres through gorm.
// Every document is one row; the id-list edge fields are text[] columns.
// Save writes the whole row, which Postgres applies atomically, giving the
// single-document atomicity the engine's protocol relies on. No operation
// here ever spans two rows.
type DocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore returns a Store backed by the given gorm connection.
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Ensure DocumentStore properly implements the Store interface.
var _ Store = &DocumentStore{}

func (s *DocumentStore) ResolveUserById(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.resolve(ctx, &user, id, "User"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DocumentStore) ResolveArtistById(ctx context.Context, id string) (*model.Artist, error) {
	var artist model.Artist
	if err := s.resolve(ctx, &artist, id, "Artist"); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *DocumentStore) ResolveAlbumById(ctx context.Context, id string) (*model.Album, error) {
	var album model.Album
	if err := s.resolve(ctx, &album, id, "Album"); err != nil {
		return nil, err
	}
	return &album, nil
}

func (s *DocumentStore) ResolveTrackById(ctx context.Context, id string) (*model.Track, error) {
	var track model.Track
	if err := s.resolve(ctx, &track, id, "Track"); err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *DocumentStore) ResolvePostById(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := s.resolve(ctx, &post, id, "Post"); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *DocumentStore) ResolveCommentById(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.resolve(ctx, &comment, id, "Comment"); err != nil {
		return nil, err
	}
	return &comment, nil
}

// resolve loads one document by id into dest, mapping gorm's not-found to
// the typed NotFoundError for the given entity kind. Store-layer errors
// (connectivity, etc.) propagate unmodified.
func (s *DocumentStore) resolve(ctx context.Context, dest interface{}, id string, entity string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(entity)
	}
	return err
}

func (s *DocumentStore) FindUserByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DocumentStore) SaveUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *DocumentStore) SaveArtist(ctx context.Context, artist *model.Artist) error {
	return s.db.WithContext(ctx).Save(artist).Error
}

func (s *DocumentStore) SaveAlbum(ctx context.Context, album *model.Album) error {
	return s.db.WithContext(ctx).Save(album).Error
}

func (s *DocumentStore) SaveTrack(ctx context.Context, track *model.Track) error {
	return s.db.WithContext(ctx).Save(track).Error
}

func (s *DocumentStore) SavePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Save(post).Error
}

func (s *DocumentStore) SaveComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Save(comment).Error
}

func (s *DocumentStore) DeletePostById(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Post{}, "id = ?", id).Error
}
