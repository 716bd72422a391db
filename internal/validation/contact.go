package validation

// ContactRequest is the body for both create and update. Updates are
// replace-style: optional fields left out of the body are written as NULL,
// so the same schema serves both operations.
type ContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone" validate:"omitempty,max=200"`
}

// SearchContactsRequest carries the optional filters and the page window.
// Defaults are filled by the form binding before validation runs.
type SearchContactsRequest struct {
	Name  string `form:"name" validate:"omitempty,max=100"`
	Email string `form:"email" validate:"omitempty,max=200"`
	Phone string `form:"phone" validate:"omitempty,max=200"`
	Page  int    `form:"page,default=1" validate:"min=1"`
	Size  int    `form:"size,default=10" validate:"min=1,max=100"`
}
