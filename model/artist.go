package model

import (
	"time"

	"github.com/lib/pq"
)

/*

Artist is a likeable, followable music entity that posts can be attached to.

Id: primary key
Name: artist display name
Posts: ids of posts authored under this artist
Likes: like counter, always equal to len(Likers)
Likers: users who liked this artist (mirrored by User.LikedArtists)
Followers: users following this artist (mirrored by User.FollowedArtists)

*/
type Artist struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string
	Posts     pq.StringArray `gorm:"type:text[]"`
	Likes     int32
	Likers    pq.StringArray `gorm:"type:text[]"`
	Followers pq.StringArray `gorm:"type:text[]"`
}
