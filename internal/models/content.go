package models

import "time"

// Theme is a catalog entry for a purchasable Ghost theme.
type Theme struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"not null" json:"name"`
	Description     string     `json:"description"`
	FullDescription string     `json:"fullDescription"`
	Price           int        `gorm:"not null;check:price >= 0" json:"price"`
	Category        string     `json:"category"`
	Image           string     `json:"image"`
	Featured        bool       `gorm:"not null;default:false" json:"featured"`
	Tags            StringList `json:"tags"`
	Layout          string     `json:"layout"`
	Browsers        string     `json:"browsers"`
	Version         string     `json:"version"`
	GhostVersion    string     `json:"ghostVersion"`
	Features        StringList `json:"features"`
	Screenshots     StringList `json:"screenshots"`
	PurchaseLink    string     `json:"purchaseLink"`
	DemoLink        string     `json:"demoLink"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (Theme) TableName() string { return "themes" }

type Author struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	Url       string    `json:"url"`
	Social    StringMap `json:"social"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Author) TableName() string { return "authors" }

// Tag is the canonical tag catalog. Posts reference tags by free-text
// name match, not by foreign key; Name is the join key, not ID.
type Tag struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"not null;unique" json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Tag) TableName() string { return "tags" }

type BlogPost struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	ReadTime        string     `json:"readTime"`
	Category        string     `json:"category"`
	Image           string     `json:"image"`
	Featured        bool       `gorm:"not null;default:false" json:"featured"`
	Tags            StringList `json:"tags"`
	PublishedAt     time.Time  `json:"publishedAt"`
	AuthorID        *string    `json:"authorId"`
	DocumentationID *string    `json:"documentationId"`
	Author          *Author    `gorm:"foreignKey:AuthorID;references:ID" json:"author"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (BlogPost) TableName() string { return "posts" }

type Page struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"not null;unique" json:"slug"`
	Content     string     `gorm:"not null" json:"content"`
	Description string     `json:"description"`
	LastUpdated *time.Time `json:"lastUpdated"`
	Published   bool       `gorm:"not null;default:true" json:"published"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Page) TableName() string { return "pages" }

// PageSummary is the list projection of Page: everything but the body.
type PageSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	LastUpdated *time.Time `json:"lastUpdated"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Documentation struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"not null;unique" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Documentation) TableName() string { return "documentation" }

type Contact struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Contact) TableName() string { return "contacts" }

type Subscriber struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"not null;unique" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Subscriber) TableName() string { return "subscribers" }
