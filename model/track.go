package model

import (
	"time"

	"github.com/lib/pq"
)

// Track has the same edge surface as Artist and Album.
type Track struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string
	Posts     pq.StringArray `gorm:"type:text[]"`
	Likes     int32
	Likers    pq.StringArray `gorm:"type:text[]"`
	Followers pq.StringArray `gorm:"type:text[]"`
}
