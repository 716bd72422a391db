package types

// User is an account row. Username is the primary identity; Token holds the
// opaque bearer token while the user is logged in and is NULL otherwise.
type User struct {
	Username string  `gorm:"primaryKey;size:100;column:username" json:"username"`
	Password string  `gorm:"not null;size:100;column:password" json:"-"`
	Name     string  `gorm:"not null;size:100;column:name" json:"name"`
	Token    *string `gorm:"uniqueIndex;size:100;column:token" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the public projection of a user. Credential columns never
// leave the service layer.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}

// TokenResponse is returned by login only.
type TokenResponse struct {
	Token string `json:"token"`
}
