package domain

// BoardKind identifies the discussion board category
type BoardKind string

const (
	BoardKindPosition  BoardKind = "position"
	BoardKindFtf       BoardKind = "ftf"
	BoardKindAnonymous BoardKind = "anonymous"
	BoardKindGeneric   BoardKind = "generic"
)

// ValidBoardKind reports whether the given string is a known board kind
func ValidBoardKind(s string) bool {
	switch BoardKind(s) {
	case BoardKindPosition, BoardKindFtf, BoardKindAnonymous, BoardKindGeneric:
		return true
	}
	return false
}

// Anonymous reports whether posts on this kind of board hide the author
func (k BoardKind) Anonymous() bool {
	return k == BoardKindAnonymous
}

// Board represents a discussion board instance of a given kind
type Board struct {
	BaseModel
	Kind  BoardKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_boards_kind_name" json:"kind"`
	Name  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_boards_kind_name" json:"name"`
	Posts []Post    `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
