package model

// SignupRequest defines the payload for creating a new user account.
// It includes validation tags to ensure data integrity at the entry point.
type SignupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserRoleRequest defines the payload for updating a user's role.
type UpdateUserRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=admin user"`
}

// CreateBookRequest defines the payload for submitting a new book.
type CreateBookRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Author        string `json:"author" validate:"required,max=100"`
	Publisher     string `json:"publisher" validate:"required,max=100"`
	PublishedDate string `json:"published_date" validate:"required,datetime=2006-01-02"`
	PageCount     int    `json:"page_count" validate:"required,gt=0"`
	Language      string `json:"language" validate:"required,max=50"`
}

// UpdateBookRequest defines the payload for updating an existing book.
type UpdateBookRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Author    string `json:"author" validate:"required,max=100"`
	Publisher string `json:"publisher" validate:"required,max=100"`
	PageCount int    `json:"page_count" validate:"required,gt=0"`
	Language  string `json:"language" validate:"required,max=50"`
}

// CreateReviewRequest defines the payload for reviewing a book.
type CreateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required"`
}

// CreateTagRequest defines the payload for creating or renaming a tag.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// AddTagsToBookRequest attaches a list of tags to a book, creating any
// that do not exist yet.
type AddTagsToBookRequest struct {
	Tags []CreateTagRequest `json:"tags" validate:"required,min=1,dive"`
}
