package document

import "time"

// Author identifies who wrote a document. IDs are caller-assigned and opaque.
type Author struct {
	ID   string `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
}

// Document is the stored unit of the document store.
// An empty ID or a zero Created means the store has not assigned one yet.
type Document struct {
	ID      string    `json:"id,omitempty" toml:"id" yaml:"id"`
	Title   string    `json:"title" toml:"title" yaml:"title"`
	Content string    `json:"content" toml:"content" yaml:"content"`
	Author  *Author   `json:"author" toml:"author" yaml:"author"`
	Created time.Time `json:"created" toml:"created" yaml:"created"`
}

// Clone returns a deep copy of d, including its Author.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	if d.Author != nil {
		a := *d.Author
		c.Author = &a
	}
	return &c
}

// SearchRequest holds optional search criteria. A nil field places no constraint
// on the results; a non-nil empty slice matches nothing.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}
