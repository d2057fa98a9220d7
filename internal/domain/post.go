package domain

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of create_date.
const DateLayout = "2006-01-02"

// TitleMaxLength is the maximum number of characters in a post title.
const TitleMaxLength = 30

// Post represents a top-level board entry
type Post struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string         `gorm:"type:varchar(30);not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	CreateDate datatypes.Date `gorm:"not null" json:"create_date"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// FormatDate renders a stored date column as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// Today returns the calendar day of t in UTC as a date column value.
func Today(t time.Time) datatypes.Date {
	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
