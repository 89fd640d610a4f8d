package model

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// PostType tags which music entity a post is attached to. Exactly one of
// the post's ArtistId/AlbumId/TrackId fields is non-nil, matching this tag.
type PostType string

const (
	PostTypeArtist PostType = "ARTIST"
	PostTypeAlbum  PostType = "ALBUM"
	PostTypeTrack  PostType = "TRACK"
)

var AllPostType = []PostType{
	PostTypeArtist,
	PostTypeAlbum,
	PostTypeTrack,
}

func (e PostType) IsValid() bool {
	switch e {
	case PostTypeArtist, PostTypeAlbum, PostTypeTrack:
		return true
	}
	return false
}

func (e PostType) String() string {
	return string(e)
}

// Entity returns the human-readable entity kind this type targets, used in
// not-found errors ("Artist", "Album", "Track").
func (e PostType) Entity() string {
	switch e {
	case PostTypeArtist:
		return "Artist"
	case PostTypeAlbum:
		return "Album"
	case PostTypeTrack:
		return "Track"
	}
	return string(e)
}

// ParsePostType converts a wire string into a PostType, case-sensitively.
func ParsePostType(s string) (PostType, error) {
	e := PostType(s)
	if !e.IsValid() {
		return "", fmt.Errorf("%s is not a valid PostType", s)
	}
	return e, nil
}

/*

Post is a user-authored piece of content attached to exactly one music
entity (artist, album or track).

Id: primary key, uuid
Poster: id of the authoring user; mirrored by User.Posts
PostType: which of ArtistId/AlbumId/TrackId is set; the other two are nil
ArtistId/AlbumId/TrackId: the target entity; its Posts list mirrors this id
Title/ContentType/Content: payload, opaque to the edge protocol
Likes/Dislikes: reaction counters, always equal to the length of the
		matching list
Likers/Dislikers: reacting users, mutually exclusive per user; mirrored by
		User.LikedPosts/User.DislikedPosts
Comments: ids of comments on this post, in creation order

*/
type Post struct {
	Id          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	Poster      string
	PostType    PostType
	ArtistId    *string
	AlbumId     *string
	TrackId     *string
	Title       string
	ContentType string
	Content     string
	Likes       int32
	Dislikes    int32
	Likers      pq.StringArray `gorm:"type:text[]"`
	Dislikers   pq.StringArray `gorm:"type:text[]"`
	Comments    pq.StringArray `gorm:"type:text[]"`
}

// TargetEntityId returns the id of the entity this post is attached to,
// picked by PostType. Empty only if the tagged field is unset, which a
// well-formed post never has.
func (p *Post) TargetEntityId() string {
	switch p.PostType {
	case PostTypeArtist:
		if p.ArtistId != nil {
			return *p.ArtistId
		}
	case PostTypeAlbum:
		if p.AlbumId != nil {
			return *p.AlbumId
		}
	case PostTypeTrack:
		if p.TrackId != nil {
			return *p.TrackId
		}
	}
	return ""
}
