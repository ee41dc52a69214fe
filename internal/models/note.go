package models

import "time"

// Note is a team note stored in the remote "notes" collection. The id is
// assigned by the record service on creation and never changes; an empty id
// marks a draft that has not been persisted yet.
type Note struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	NoteText   string      `json:"note_text"`
	CreatedBy  string      `json:"created_by"`
	IsArchived bool        `json:"is_archived"`
	IsDeleted  bool        `json:"is_deleted"`
	Created    time.Time   `json:"created"`
	Updated    time.Time   `json:"updated"`
	Expand     *NoteExpand `json:"expand,omitempty"`
}

// NoteExpand carries expanded relations returned by the record service.
type NoteExpand struct {
	CreatedBy *User `json:"created_by,omitempty"`
}

// AuthorName returns the expanded author name, if present.
func (n Note) AuthorName() string {
	if n.Expand != nil && n.Expand.CreatedBy != nil {
		return n.Expand.CreatedBy.Name
	}
	return ""
}
