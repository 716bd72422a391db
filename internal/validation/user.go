package validation

// Schemas for the user endpoints. Field limits mirror the column sizes.

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest is a patch: only supplied fields change, and at least
// one of them has to be supplied.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required_without=Password,omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}
