package document

import (
	"slices"
	"strings"
)

type clause func(req *SearchRequest, d *Document) bool

// clauses are ANDed together. Each one passes when its request field is nil.
var clauses = []clause{
	matchTitlePrefix,
	matchContent,
	matchAuthor,
	matchCreatedFrom,
	matchCreatedTo,
}

// Matches reports whether d satisfies every criterion in req.
func Matches(req *SearchRequest, d *Document) bool {
	if req == nil || d == nil {
		return false
	}
	for _, c := range clauses {
		if !c(req, d) {
			return false
		}
	}
	return true
}

func matchTitlePrefix(req *SearchRequest, d *Document) bool {
	if req.TitlePrefixes == nil {
		return true
	}
	return slices.ContainsFunc(req.TitlePrefixes, func(p string) bool {
		return strings.HasPrefix(d.Title, p)
	})
}

func matchContent(req *SearchRequest, d *Document) bool {
	if req.ContainsContents == nil {
		return true
	}
	return slices.ContainsFunc(req.ContainsContents, func(s string) bool {
		return strings.Contains(d.Content, s)
	})
}

func matchAuthor(req *SearchRequest, d *Document) bool {
	if req.AuthorIDs == nil {
		return true
	}
	if d.Author == nil {
		return false
	}
	return slices.Contains(req.AuthorIDs, d.Author.ID)
}

// created bounds are exclusive
func matchCreatedFrom(req *SearchRequest, d *Document) bool {
	return req.CreatedFrom == nil || d.Created.After(*req.CreatedFrom)
}

func matchCreatedTo(req *SearchRequest, d *Document) bool {
	return req.CreatedTo == nil || d.Created.Before(*req.CreatedTo)
}
