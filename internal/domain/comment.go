package domain

import (
	"github.com/google/uuid"
)

// Comment represents a comment on a post. 대댓글은 한 단계까지만 허용한다.
type Comment struct {
	BaseModel
	PostID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_post_id" json:"post_id"`
	AuthorID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"author_id"`
	AuthorName string     `gorm:"type:varchar(100);not null" json:"author_name"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index:idx_comments_parent_id" json:"parent_id"`
	IsPrivate  bool       `gorm:"not null;default:false" json:"is_private"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// CanView reports whether the requester may read this comment.
// 비밀 댓글은 댓글 작성자와 게시글 작성자만 볼 수 있다.
func (c Comment) CanView(postAuthorID, requesterID uuid.UUID) bool {
	if !c.IsPrivate {
		return true
	}
	return requesterID == c.AuthorID || requesterID == postAuthorID
}

// CanModify reports whether the requester may edit or delete this comment
func (c Comment) CanModify(postAuthorID, requesterID uuid.UUID) bool {
	return requesterID == c.AuthorID || requesterID == postAuthorID
}
