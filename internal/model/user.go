package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User is one of the fixed console accounts seeded at startup
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Name     string `gorm:"type:varchar(100)" json:"name"`
	Phone    string `gorm:"type:varchar(20);index" json:"phone"`
	Role     string `gorm:"type:varchar(20)" json:"role"`
	Avatar   string `gorm:"type:varchar(255)" json:"avatar"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Phone:    u.Phone,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}

// Login types accepted by the login operation
const (
	LoginAccount = "account"
	LoginMobile  = "mobile"
	LoginQR      = "qr"
)

// LoginRequest is the login payload. Which credential fields matter depends on LoginType.
type LoginRequest struct {
	LoginType string `json:"loginType" validate:"required"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Code      string `json:"code"`
}
