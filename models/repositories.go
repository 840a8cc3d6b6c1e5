package models

import (
	"github.com/anjaleena-mwt/reciperealm/database/repositories"
)

// Repositories groups all repository interfaces for easy injection
type Repositories struct {
	User     repositories.UserRepository
	Category repositories.CategoryRepository
	Recipe   repositories.RecipeRepository
}

// NewRepositories creates a new repositories group from individual repositories
func NewRepositories(
	user repositories.UserRepository,
	category repositories.CategoryRepository,
	recipe repositories.RecipeRepository,
) *Repositories {
	return &Repositories{
		User:     user,
		Category: category,
		Recipe:   recipe,
	}
}
