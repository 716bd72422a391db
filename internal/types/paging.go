package types

// Paging is the page metadata returned next to a search result page.
type Paging struct {
	Page      int `json:"page"`
	TotalItem int `json:"total_item"`
	TotalPage int `json:"total_page"`
}

// ContactPage is one window of a contact search.
type ContactPage struct {
	Data   []ContactResponse `json:"data"`
	Paging Paging            `json:"paging"`
}
