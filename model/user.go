package model

import (
	"time"

	"github.com/lib/pq"
)

/*

User is the social-graph document for a platform member. Every relationship
the user participates in is denormalized onto this document as an id list,
mirrored by a matching list on the other endpoint. The lists are ordered but
semantically sets: the edge protocol rejects duplicate edges instead of
absorbing them.

Id: primary key, issued by the identity provider
CreatedAt: time when the user was created
Name: display name

Following/Followers: mirrored halves of the user-user follow edge
FollowedArtists/FollowedAlbums/FollowedTracks: forward halves of the
		user-entity follow edges; the backward half lives in the entity's
		Followers list
Posts: ids of posts this user authored
Comments: ids of comments this user authored

LikedPosts/DislikedPosts: forward halves of post reactions; backward halves
		are the post's Likers/Dislikers
LikedComments/DislikedComments: same for comments
LikedArtists/LikedAlbums/LikedTracks: same for music entities (no dislike
		counterpart exists for those)

*/
type User struct {
	Id               string `gorm:"primaryKey"`
	CreatedAt        time.Time
	Name             string
	Following        pq.StringArray `gorm:"type:text[]"`
	Followers        pq.StringArray `gorm:"type:text[]"`
	FollowedArtists  pq.StringArray `gorm:"type:text[]"`
	FollowedAlbums   pq.StringArray `gorm:"type:text[]"`
	FollowedTracks   pq.StringArray `gorm:"type:text[]"`
	Posts            pq.StringArray `gorm:"type:text[]"`
	Comments         pq.StringArray `gorm:"type:text[]"`
	LikedPosts       pq.StringArray `gorm:"type:text[]"`
	DislikedPosts    pq.StringArray `gorm:"type:text[]"`
	LikedComments    pq.StringArray `gorm:"type:text[]"`
	DislikedComments pq.StringArray `gorm:"type:text[]"`
	LikedArtists     pq.StringArray `gorm:"type:text[]"`
	LikedAlbums      pq.StringArray `gorm:"type:text[]"`
	LikedTracks      pq.StringArray `gorm:"type:text[]"`
}
