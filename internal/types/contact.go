package types

// Contact belongs to exactly one user, fixed at creation. Optional scalar
// fields are pointers so a replace-style update can null them out.
type Contact struct {
	ID        uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username  string  `gorm:"not null;size:100;index;column:username" json:"-"`
	User      *User   `gorm:"constraint:OnDelete:CASCADE;foreignKey:Username;references:Username" json:"-"`
	FirstName string  `gorm:"not null;size:100;column:first_name" json:"first_name"`
	LastName  *string `gorm:"size:100;column:last_name" json:"last_name"`
	Email     *string `gorm:"size:200;column:email" json:"email"`
	Phone     *string `gorm:"size:200;column:phone" json:"phone"`
}

func (Contact) TableName() string {
	return "contacts"
}

type ContactResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (c *Contact) ToResponse() ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
