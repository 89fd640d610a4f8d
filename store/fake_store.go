package store

import (
	"context"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/tunemesh/tunemesh/errs"
	"github.com/tunemesh/tunemesh/model"
)

// FakeStore is an in-memory Store for tests. It deep-copies documents on
// every save and resolve so callers never share memory with the stored
// copy, the same document boundary a real store enforces. Without the
// copies, an engine bug that mutates a document but forgets to save it
// would be invisible in tests.
type FakeStore struct {
	mu       sync.RWMutex
	users    map[string]*model.User
	artists  map[string]*model.Artist
	albums   map[string]*model.Album
	tracks   map[string]*model.Track
	posts    map[string]*model.Post
	comments map[string]*model.Comment
}

// NewFakeStore returns an empty in-memory store.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		users:    make(map[string]*model.User),
		artists:  make(map[string]*model.Artist),
		albums:   make(map[string]*model.Album),
		tracks:   make(map[string]*model.Track),
		posts:    make(map[string]*model.Post),
		comments: make(map[string]*model.Comment),
	}
}

var _ Store = &FakeStore{}

func deepCopy(dst interface{}, src interface{}) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
}

func (s *FakeStore) ResolveUserById(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.users[id]
	if !ok {
		return nil, errs.NotFound("User")
	}
	var user model.User
	deepCopy(&user, src)
	return &user, nil
}

func (s *FakeStore) ResolveArtistById(ctx context.Context, id string) (*model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.artists[id]
	if !ok {
		return nil, errs.NotFound("Artist")
	}
	var artist model.Artist
	deepCopy(&artist, src)
	return &artist, nil
}

func (s *FakeStore) ResolveAlbumById(ctx context.Context, id string) (*model.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.albums[id]
	if !ok {
		return nil, errs.NotFound("Album")
	}
	var album model.Album
	deepCopy(&album, src)
	return &album, nil
}

func (s *FakeStore) ResolveTrackById(ctx context.Context, id string) (*model.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.tracks[id]
	if !ok {
		return nil, errs.NotFound("Track")
	}
	var track model.Track
	deepCopy(&track, src)
	return &track, nil
}

func (s *FakeStore) ResolvePostById(ctx context.Context, id string) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.posts[id]
	if !ok {
		return nil, errs.NotFound("Post")
	}
	var post model.Post
	deepCopy(&post, src)
	return &post, nil
}

func (s *FakeStore) ResolveCommentById(ctx context.Context, id string) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.comments[id]
	if !ok {
		return nil, errs.NotFound("Comment")
	}
	var comment model.Comment
	deepCopy(&comment, src)
	return &comment, nil
}

func (s *FakeStore) FindUserByName(ctx context.Context, name string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, src := range s.users {
		if src.Name == name {
			var user model.User
			deepCopy(&user, src)
			return &user, nil
		}
	}
	return nil, nil
}

func (s *FakeStore) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stored model.User
	deepCopy(&stored, user)
	s.users[user.Id] = &stored
	return nil
}

func (s *FakeStore) SaveArtist(ctx context.Context, artist *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stored model.Artist
	deepCopy(&stored, artist)
	s.artists[artist.Id] = &stored
	return nil
}

func (s *FakeStore) SaveAlbum(ctx context.Context, album *model.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stored model.Album
	deepCopy(&stored, album)
	s.albums[album.Id] = &stored
	return nil
}

func (s *FakeStore) SaveTrack(ctx context.Context, track *model.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stored model.Track
	deepCopy(&stored, track)
	s.tracks[track.Id] = &stored
	return nil
}

func (s *FakeStore) SavePost(ctx context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stored model.Post
	deepCopy(&stored, post)
	s.posts[post.Id] = &stored
	return nil
}

func (s *FakeStore) SaveComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stored model.Comment
	deepCopy(&stored, comment)
	s.comments[comment.Id] = &stored
	return nil
}

func (s *FakeStore) DeletePostById(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}
