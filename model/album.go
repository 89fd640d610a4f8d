package model

import (
	"time"

	"github.com/lib/pq"
)

// Album has the same edge surface as Artist: posts attached under it, a
// like counter mirrored by User.LikedAlbums and a follower list mirrored
// by User.FollowedAlbums.
type Album struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string
	Posts     pq.StringArray `gorm:"type:text[]"`
	Likes     int32
	Likers    pq.StringArray `gorm:"type:text[]"`
	Followers pq.StringArray `gorm:"type:text[]"`
}
