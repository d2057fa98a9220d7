package domain

import "gorm.io/datatypes"

// CommentMaxLength is the maximum number of characters in a comment.
const CommentMaxLength = 200

// Comment represents a reply attached to exactly one post.
// Rows are removed together with their post by the ON DELETE CASCADE foreign key.
type Comment struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Content    string         `gorm:"type:varchar(200);not null" json:"content"`
	CreateDate datatypes.Date `gorm:"not null" json:"create_date"`
	PostID     uint           `gorm:"not null;index:idx_comments_post_id" json:"post_id"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
