package database

import (
	"context"
	"ghost-theme-storefront/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

// AuthorPostCount is the derived per-author post count; it is computed,
// never stored.
type AuthorPostCount struct {
	AuthorID  string `json:"authorId"`
	PostCount int64  `json:"postCount"`
}

// Repository defines data access methods for the storefront content:
// themes, blog posts, authors, tags, pages, documentation, and the
// contact/subscriber write sinks.
type Repository interface {

	// FindAllThemes retrieves all themes, featured ones first.
	FindAllThemes(ctx context.Context, themes *[]models.Theme) error

	// FindThemeById fetches one theme by its slug id.
	FindThemeById(ctx context.Context, id string, theme *models.Theme) error

	// FindAllDocumentation retrieves all documentation, newest first.
	FindAllDocumentation(ctx context.Context, docs *[]models.Documentation) error

	// FindDocumentationBySlug fetches one documentation entry by slug.
	FindDocumentationBySlug(ctx context.Context, slug string, doc *models.Documentation) error

	// FindAllPosts retrieves all posts with their author joined,
	// newest first.
	FindAllPosts(ctx context.Context, posts *[]models.BlogPost) error

	// FindPostsByAuthorId retrieves an author's posts, newest first.
	FindPostsByAuthorId(ctx context.Context, authorId string, posts *[]models.BlogPost) error

	// FindPostsByTagName retrieves posts whose free-text tag list
	// contains tagName, compared case-insensitively per element.
	// authorId additionally restricts by author when non-empty.
	FindPostsByTagName(ctx context.Context, tagName string, authorId string, posts *[]models.BlogPost) error

	// FindPostBySlug fetches one post with its author joined.
	FindPostBySlug(ctx context.Context, slug string, post *models.BlogPost) error

	// FindTagBySlug fetches the canonical tag record for a slug.
	FindTagBySlug(ctx context.Context, slug string, tag *models.Tag) error

	FindAllTags(ctx context.Context, tags *[]models.Tag) error

	FindAllAuthors(ctx context.Context, authors *[]models.Author) error

	FindAuthorById(ctx context.Context, id string, author *models.Author) error

	// FindAuthorPostCounts computes the number of posts per author.
	FindAuthorPostCounts(ctx context.Context, counts *[]AuthorPostCount) error

	// FindPublishedPageSummaries retrieves published pages without
	// their content body, newest first.
	FindPublishedPageSummaries(ctx context.Context, pages *[]models.PageSummary) error

	// FindPublishedPageBySlug fetches a published page with its body.
	FindPublishedPageBySlug(ctx context.Context, slug string, page *models.Page) error

	// FindPageBySlug fetches a page regardless of published state.
	FindPageBySlug(ctx context.Context, slug string, page *models.Page) error

	CreatePage(ctx context.Context, page *models.Page) error

	// UpdatePageBySlug applies only the given columns and reports how
	// many rows matched so callers can distinguish a missing slug.
	UpdatePageBySlug(ctx context.Context, slug string, fields map[string]any) (int64, error)

	// DeletePageBySlug reports how many rows were deleted.
	DeletePageBySlug(ctx context.Context, slug string) (int64, error)

	CreateContact(ctx context.Context, contact *models.Contact) error

	FindSubscriberByEmail(ctx context.Context, email string, subscriber *models.Subscriber) error

	CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error

	// FindUserLoginCredentials fetches the admin user record with the
	// specified username.
	FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error

	// Upserts insert or update seed content by primary key.
	UpsertThemes(ctx context.Context, themes []models.Theme) error
	UpsertAuthors(ctx context.Context, authors []models.Author) error
	UpsertTags(ctx context.Context, tags []models.Tag) error
	UpsertPosts(ctx context.Context, posts []models.BlogPost) error
	UpsertDocumentation(ctx context.Context, docs []models.Documentation) error
	UpsertPages(ctx context.Context, pages []models.Page) error
}

// NullRepository is a no-op implementation of the Repository interface.
// Useful for testing or default wiring when no database operations are required.
type NullRepository struct{}

// ensure NullRepository implements Repository
var _ Repository = &NullRepository{}

func (n *NullRepository) FindAllThemes(ctx context.Context, themes *[]models.Theme) error {
	return nil
}

func (n *NullRepository) FindThemeById(ctx context.Context, id string, theme *models.Theme) error {
	return nil
}

func (n *NullRepository) FindAllDocumentation(ctx context.Context, docs *[]models.Documentation) error {
	return nil
}

func (n *NullRepository) FindDocumentationBySlug(ctx context.Context, slug string, doc *models.Documentation) error {
	return nil
}

func (n *NullRepository) FindAllPosts(ctx context.Context, posts *[]models.BlogPost) error {
	return nil
}

func (n *NullRepository) FindPostsByAuthorId(ctx context.Context, authorId string, posts *[]models.BlogPost) error {
	return nil
}

func (n *NullRepository) FindPostsByTagName(ctx context.Context, tagName string, authorId string, posts *[]models.BlogPost) error {
	return nil
}

func (n *NullRepository) FindPostBySlug(ctx context.Context, slug string, post *models.BlogPost) error {
	return nil
}

func (n *NullRepository) FindAllTags(ctx context.Context, tags *[]models.Tag) error {
	return nil
}

func (n *NullRepository) FindTagBySlug(ctx context.Context, slug string, tag *models.Tag) error {
	return nil
}

func (n *NullRepository) FindAllAuthors(ctx context.Context, authors *[]models.Author) error {
	return nil
}

func (n *NullRepository) FindAuthorById(ctx context.Context, id string, author *models.Author) error {
	return nil
}

func (n *NullRepository) FindAuthorPostCounts(ctx context.Context, counts *[]AuthorPostCount) error {
	return nil
}

func (n *NullRepository) FindPublishedPageSummaries(ctx context.Context, pages *[]models.PageSummary) error {
	return nil
}

func (n *NullRepository) FindPublishedPageBySlug(ctx context.Context, slug string, page *models.Page) error {
	return nil
}

func (n *NullRepository) FindPageBySlug(ctx context.Context, slug string, page *models.Page) error {
	return nil
}

func (n *NullRepository) CreatePage(ctx context.Context, page *models.Page) error {
	return nil
}

func (n *NullRepository) UpdatePageBySlug(ctx context.Context, slug string, fields map[string]any) (int64, error) {
	return 0, nil
}

func (n *NullRepository) DeletePageBySlug(ctx context.Context, slug string) (int64, error) {
	return 0, nil
}

func (n *NullRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	return nil
}

func (n *NullRepository) FindSubscriberByEmail(ctx context.Context, email string, subscriber *models.Subscriber) error {
	return nil
}

func (n *NullRepository) CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error {
	return nil
}

func (n *NullRepository) FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error {
	return nil
}

func (n *NullRepository) UpsertThemes(ctx context.Context, themes []models.Theme) error {
	return nil
}

func (n *NullRepository) UpsertAuthors(ctx context.Context, authors []models.Author) error {
	return nil
}

func (n *NullRepository) UpsertTags(ctx context.Context, tags []models.Tag) error {
	return nil
}

func (n *NullRepository) UpsertPosts(ctx context.Context, posts []models.BlogPost) error {
	return nil
}

func (n *NullRepository) UpsertDocumentation(ctx context.Context, docs []models.Documentation) error {
	return nil
}

func (n *NullRepository) UpsertPages(ctx context.Context, pages []models.Page) error {
	return nil
}

// GormRepository provides a GORM-based implementation of the Repository interface.
type GormRepository struct {
	*gorm.DB
}

// ensure GormRepository implements Repository
var _ Repository = &GormRepository{}

func (g *GormRepository) FindAllThemes(ctx context.Context, themes *[]models.Theme) error {
	return g.DB.
		WithContext(ctx).
		Order("featured DESC").
		Find(themes).
		Error
}

func (g *GormRepository) FindThemeById(ctx context.Context, id string, theme *models.Theme) error {
	return g.DB.
		WithContext(ctx).
		Take(theme, "id = ?", id).
		Error
}

func (g *GormRepository) FindAllDocumentation(ctx context.Context, docs *[]models.Documentation) error {
	return g.DB.
		WithContext(ctx).
		Order("published_at DESC").
		Find(docs).
		Error
}

func (g *GormRepository) FindDocumentationBySlug(ctx context.Context, slug string, doc *models.Documentation) error {
	return g.DB.
		WithContext(ctx).
		Take(doc, "slug = ?", slug).
		Error
}

func (g *GormRepository) FindAllPosts(ctx context.Context, posts *[]models.BlogPost) error {
	return g.DB.
		WithContext(ctx).
		Model(&models.BlogPost{}).
		Joins("Author").
		Order("posts.published_at DESC").
		Find(posts).
		Error
}

func (g *GormRepository) FindPostsByAuthorId(ctx context.Context, authorId string, posts *[]models.BlogPost) error {
	return g.DB.
		WithContext(ctx).
		Model(&models.BlogPost{}).
		Joins("Author").
		Where("posts.author_id = ?", authorId).
		Order("posts.published_at DESC").
		Find(posts).
		Error
}

// postAuthorRow is the flat shape of the raw post/author join.
type postAuthorRow struct {
	ID              string
	Title           string
	Excerpt         string
	Content         string
	ReadTime        string
	Category        string
	Image           string
	Featured        bool
	Tags            models.StringList
	PublishedAt     time.Time
	AuthorID        *string
	DocumentationID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	AuthorName      *string
	AuthorBio       *string
	AuthorAvatar    *string
	AuthorUrl       *string
	AuthorSocial    models.StringMap
	AuthorCreatedAt *time.Time
	AuthorUpdatedAt *time.Time
}

func (r postAuthorRow) toPost() models.BlogPost {
	post := models.BlogPost{
		ID:              r.ID,
		Title:           r.Title,
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		ReadTime:        r.ReadTime,
		Category:        r.Category,
		Image:           r.Image,
		Featured:        r.Featured,
		Tags:            r.Tags,
		PublishedAt:     r.PublishedAt,
		AuthorID:        r.AuthorID,
		DocumentationID: r.DocumentationID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	// a post without an author keeps author == null in the response
	if r.AuthorID == nil {
		return post
	}

	author := models.Author{ID: *r.AuthorID, Social: r.AuthorSocial}
	if r.AuthorName != nil {
		author.Name = *r.AuthorName
	}
	if r.AuthorBio != nil {
		author.Bio = *r.AuthorBio
	}
	if r.AuthorAvatar != nil {
		author.Avatar = *r.AuthorAvatar
	}
	if r.AuthorUrl != nil {
		author.Url = *r.AuthorUrl
	}
	if r.AuthorCreatedAt != nil {
		author.CreatedAt = *r.AuthorCreatedAt
	}
	if r.AuthorUpdatedAt != nil {
		author.UpdatedAt = *r.AuthorUpdatedAt
	}
	post.Author = &author

	return post
}

func (g *GormRepository) FindPostsByTagName(ctx context.Context, tagName string, authorId string, posts *[]models.BlogPost) error {

	// post tags are free text, not foreign keys into the tag catalog,
	// so membership is a lower-cased element comparison over the raw
	// jsonb list rather than a structured join.
	query := `
			SELECT bp.id,
			       bp.title,
			       bp.excerpt,
			       bp.content,
			       bp.read_time,
			       bp.category,
			       bp.image,
			       bp.featured,
			       bp.tags,
			       bp.published_at,
			       bp.author_id,
			       bp.documentation_id,
			       bp.created_at,
			       bp.updated_at,
			       a.name AS author_name,
			       a.bio AS author_bio,
			       a.avatar AS author_avatar,
			       a.url AS author_url,
			       a.social AS author_social,
			       a.created_at AS author_created_at,
			       a.updated_at AS author_updated_at
			FROM posts bp
			LEFT JOIN authors a ON bp.author_id = a.id
			WHERE EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(bp.tags) AS t(value)
				WHERE LOWER(t.value) = LOWER(?)
			)`
	args := []any{tagName}

	if len(authorId) > 0 {
		query += ` AND bp.author_id = ?`
		args = append(args, authorId)
	}
	query += ` ORDER BY bp.published_at DESC`

	var rows []postAuthorRow
	err := g.DB.
		WithContext(ctx).
		Raw(query, args...).
		Scan(&rows).
		Error
	if err != nil {
		return err
	}

	for _, r := range rows {
		*posts = append(*posts, r.toPost())
	}

	return nil
}

func (g *GormRepository) FindPostBySlug(ctx context.Context, slug string, post *models.BlogPost) error {
	return g.DB.
		WithContext(ctx).
		Model(post).
		Joins("Author").
		First(post, "posts.id = ?", slug).
		Error
}

func (g *GormRepository) FindTagBySlug(ctx context.Context, slug string, tag *models.Tag) error {
	return g.DB.
		WithContext(ctx).
		Take(tag, "slug = ?", slug).
		Error
}

func (g *GormRepository) FindAllTags(ctx context.Context, tags *[]models.Tag) error {
	return g.DB.
		WithContext(ctx).
		Order("name ASC").
		Find(tags).
		Error
}

func (g *GormRepository) FindAllAuthors(ctx context.Context, authors *[]models.Author) error {
	return g.DB.
		WithContext(ctx).
		Find(authors).
		Error
}

func (g *GormRepository) FindAuthorById(ctx context.Context, id string, author *models.Author) error {
	return g.DB.
		WithContext(ctx).
		Take(author, "id = ?", id).
		Error
}

func (g *GormRepository) FindAuthorPostCounts(ctx context.Context, counts *[]AuthorPostCount) error {
	return g.DB.
		WithContext(ctx).
		Raw(`
				SELECT author_id, count(*) AS post_count
				FROM posts
				WHERE author_id IS NOT NULL
				GROUP BY author_id`).
		Scan(counts).
		Error
}

func (g *GormRepository) FindPublishedPageSummaries(ctx context.Context, pages *[]models.PageSummary) error {
	return g.DB.
		WithContext(ctx).
		Model(&models.Page{}).
		Select("id", "title", "slug", "description", "last_updated", "created_at", "updated_at").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(pages).
		Error
}

func (g *GormRepository) FindPublishedPageBySlug(ctx context.Context, slug string, page *models.Page) error {
	return g.DB.
		WithContext(ctx).
		Take(page, "slug = ? AND published = ?", slug, true).
		Error
}

func (g *GormRepository) FindPageBySlug(ctx context.Context, slug string, page *models.Page) error {
	return g.DB.
		WithContext(ctx).
		Take(page, "slug = ?", slug).
		Error
}

func (g *GormRepository) CreatePage(ctx context.Context, page *models.Page) error {
	return g.DB.
		WithContext(ctx).
		Create(page).
		Error
}

func (g *GormRepository) UpdatePageBySlug(ctx context.Context, slug string, fields map[string]any) (int64, error) {
	tx := g.DB.
		WithContext(ctx).
		Model(&models.Page{}).
		Where("slug = ?", slug).
		Updates(fields)

	return tx.RowsAffected, tx.Error
}

func (g *GormRepository) DeletePageBySlug(ctx context.Context, slug string) (int64, error) {
	tx := g.DB.
		WithContext(ctx).
		Where("slug = ?", slug).
		Delete(&models.Page{})

	return tx.RowsAffected, tx.Error
}

func (g *GormRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	return g.DB.
		WithContext(ctx).
		Create(contact).
		Error
}

func (g *GormRepository) FindSubscriberByEmail(ctx context.Context, email string, subscriber *models.Subscriber) error {
	return g.DB.
		WithContext(ctx).
		Take(subscriber, "email = ?", email).
		Error
}

func (g *GormRepository) CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error {
	return g.DB.
		WithContext(ctx).
		Create(subscriber).
		Error
}

func (g *GormRepository) FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error {
	return g.DB.
		WithContext(ctx).
		Model(models.User{}).
		Where("username = ?", username).
		Take(user).
		Error
}

// upsertById updates all columns on id conflict, matching the seed
// importer's rerun-safe semantics.
func upsertById[T any](ctx context.Context, db *gorm.DB, records []T) error {
	if len(records) == 0 {
		return nil
	}
	return db.
		WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&records).
		Error
}

func (g *GormRepository) UpsertThemes(ctx context.Context, themes []models.Theme) error {
	return upsertById(ctx, g.DB, themes)
}

func (g *GormRepository) UpsertAuthors(ctx context.Context, authors []models.Author) error {
	return upsertById(ctx, g.DB, authors)
}

func (g *GormRepository) UpsertTags(ctx context.Context, tags []models.Tag) error {
	return upsertById(ctx, g.DB, tags)
}

func (g *GormRepository) UpsertPosts(ctx context.Context, posts []models.BlogPost) error {
	return upsertById(ctx, g.DB, posts)
}

func (g *GormRepository) UpsertDocumentation(ctx context.Context, docs []models.Documentation) error {
	return upsertById(ctx, g.DB, docs)
}

func (g *GormRepository) UpsertPages(ctx context.Context, pages []models.Page) error {
	return upsertById(ctx, g.DB, pages)
}
