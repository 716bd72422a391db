package types

// Address belongs to exactly one contact. It is only ever reachable through
// a contact the caller owns; there is no direct address-to-user link.
type Address struct {
	ID         uint     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ContactID  uint     `gorm:"not null;index;column:contact_id" json:"-"`
	Contact    *Contact `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContactID;references:ID" json:"-"`
	Street     *string  `gorm:"size:255;column:street" json:"street"`
	City       *string  `gorm:"size:100;column:city" json:"city"`
	Province   *string  `gorm:"size:100;column:province" json:"province"`
	Country    string   `gorm:"not null;size:100;column:country" json:"country"`
	PostalCode string   `gorm:"not null;size:10;column:postal_code" json:"postal_code"`
}

func (Address) TableName() string {
	return "addresses"
}

type AddressResponse struct {
	ID         uint    `json:"id"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

func (a *Address) ToResponse() AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
