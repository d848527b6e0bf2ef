package blog

import (
	"context"
	"ghost-theme-storefront/internal/database"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/models"
	"ghost-theme-storefront/internal/utils"
	"golang.org/x/text/collate"
	"sort"
)

// AuthorWithCount is an author row augmented with the derived number of
// posts referencing it.
type AuthorWithCount struct {
	models.Author
	PostCount int64 `json:"postCount"`
}

// AuthorDetail is an author with their posts eagerly attached. Each post
// nests the author's own record so renderers get a uniform post shape.
type AuthorDetail struct {
	models.Author
	Posts []models.BlogPost `json:"posts"`
}

// TagDetail pairs a tag with the posts matching its name. An existing
// tag with no matching posts yields an empty posts list, which is a
// distinct outcome from an unknown slug.
type TagDetail struct {
	Tag   models.Tag        `json:"tag"`
	Posts []models.BlogPost `json:"posts"`
}

// AuthorDirectoryService assembles the author listing: post counts are
// joined in memory and names are ordered with locale-aware collation
// instead of Go's pure code point ordering.
type AuthorDirectoryService struct {
	*environment.Env
	Collator *collate.Collator
}

func (s AuthorDirectoryService) ListAuthors(ctx context.Context) ([]AuthorWithCount, error) {
	var authors []models.Author
	if err := s.FindAllAuthors(ctx, &authors); err != nil {
		return nil, err
	}

	var counts []database.AuthorPostCount
	if err := s.FindAuthorPostCounts(ctx, &counts); err != nil {
		return nil, err
	}
	countByAuthor := utils.SliceToMap(counts, func(c database.AuthorPostCount) string {
		return c.AuthorID
	})

	listed := make([]AuthorWithCount, 0, len(authors))
	for _, a := range authors {
		listed = append(listed, AuthorWithCount{
			Author:    a,
			PostCount: countByAuthor[a.ID].PostCount,
		})
	}

	sort.SliceStable(listed, func(i, j int) bool {
		return s.Collator.CompareString(listed[i].Name, listed[j].Name) < 0
	})

	return listed, nil
}
