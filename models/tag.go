package models

// Tag is a uniquely-titled label attached to to-do items. The title is
// the natural key: tags are created on demand the first time a title is
// referenced and are never updated or cleaned up afterwards.
type Tag struct {
	TagID int64  `json:"id"`
	Title string `json:"title"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
