package entity

import "time"

// Note is a titled piece of text content tagged with a category.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ImageItem references stored image content, typically a data URI, tagged
// with a category. Images carry no update timestamp.
type ImageItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// User identifies the logged-in account. It never carries a password.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credential is the full signup record backing login, including the plaintext
// password. Passwords are stored and compared in cleartext: this is a demo
// authentication layer, not a real one.
type Credential struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User strips the password from a credential record for use as a session.
func (c Credential) User() User {
	return User{ID: c.ID, Username: c.Username, Email: c.Email}
}
