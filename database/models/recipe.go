package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Recipe is a user submission. It stays invisible to the public listing
// and search until an admin flips Approved.
type Recipe struct {
	bun.BaseModel `bun:"table:recipes,alias:r"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Ingredients string    `bun:"ingredients,notnull,type:text" json:"ingredients"`
	Methods     string    `bun:"methods,notnull,type:text" json:"methods"`
	YoutubeLink string    `bun:"youtube_link,nullzero" json:"youtube_link,omitempty"`
	ImageURL    string    `bun:"image_url,nullzero" json:"image_url,omitempty"`
	UserID      int64     `bun:"user_id,nullzero" json:"user_id"`
	CategoryID  int64     `bun:"category_id,nullzero" json:"category_id"`
	Approved    bool      `bun:"approved,notnull,default:false" json:"approved"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"-"`

	User     *User     `bun:"rel:belongs-to,join:user_id=id" json:"-"`
	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"-"`
}

// RecipeDetail is the flattened row shape the listings return: recipe
// columns plus the joined owner and category names. Built with explicit
// joins rather than relation loading.
type RecipeDetail struct {
	ID           int64  `bun:"id" json:"id"`
	Title        string `bun:"title" json:"title"`
	Ingredients  string `bun:"ingredients" json:"ingredients"`
	Methods      string `bun:"methods" json:"methods"`
	YoutubeLink  string `bun:"youtube_link" json:"youtube_link,omitempty"`
	ImageURL     string `bun:"image_url" json:"image_url,omitempty"`
	UserID       int64  `bun:"user_id" json:"user_id"`
	Username     string `bun:"username" json:"username"`
	CategoryID   int64  `bun:"category_id" json:"category_id"`
	CategoryName string `bun:"category_name" json:"category_name"`
	Approved     bool   `bun:"approved" json:"approved"`
}

// RecipeSuggestion is the minimal shape returned by autocomplete.
type RecipeSuggestion struct {
	ID    int64  `bun:"id" json:"id"`
	Title string `bun:"title" json:"title"`
}
