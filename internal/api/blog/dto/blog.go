package blogdto

// CreateBlogInput is the body of POST /blogs.
type CreateBlogInput struct {
	Title      string `json:"title" validate:"required,min=1,max=300"`
	Content    string `json:"content" validate:"required,min=1"`
	ImageURL   string `json:"imageUrl" validate:"omitempty,url"`
	AuthorName string `json:"authorName" validate:"required,min=1,max=120"`
}

// UpdateBlogInput is the body of PUT /blogs/:id.
type UpdateBlogInput struct {
	Title    string `json:"title" validate:"required,min=1,max=300"`
	Content  string `json:"content" validate:"required,min=1"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}
