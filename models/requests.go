package models

// RegisterRequest carries the registration payload. Field names mirror the
// public API contract.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"user_email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Address         string `json:"address"`
	PhoneNumber     string `json:"phone_number"`
}

type LoginRequest struct {
	Email    string `json:"user_email"`
	Password string `json:"password"`
}

type CategoryCreateRequest struct {
	Name string `json:"name"`
}

// ApproveRejectRequest flips a recipe's approved flag. Reject is the same
// operation with Approve set to false.
type ApproveRejectRequest struct {
	RecipeID int64 `json:"recipe_id"`
	Approve  bool  `json:"approve"`
}

// RecipeCreateForm holds the multipart form fields of a recipe submission.
// The ids arrive as raw strings and are parsed by the handler so a
// malformed value maps to the field-specific failure. The optional image
// part is handled separately.
type RecipeCreateForm struct {
	Title       string `form:"title"`
	Ingredients string `form:"ingredients"`
	Methods     string `form:"methods"`
	YoutubeLink string `form:"youtube_link"`
	CategoryID  string `form:"category_id"`
	UserID      string `form:"user_id"`
}

// UserSummary is what register and login return: the account without its
// password.
type UserSummary struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"user_email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}
