package model

// User represents a registered patient account. Password material never
// leaves the repository layer in API responses.
type User struct {
	ID           string  `json:"id" db:"id"`
	Email        string  `json:"email" db:"email"`
	Name         *string `json:"name" db:"name"`
	Phone        *string `json:"phone" db:"phone"`
	Address      *string `json:"address" db:"address"`
	BirthDate    *string `json:"birth_date" db:"birth_date"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Salt         string  `json:"-" db:"salt"`
}

// UpdateProfileRequest represents profile edit parameters. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	BirthDate *string `json:"birth_date"`
}
