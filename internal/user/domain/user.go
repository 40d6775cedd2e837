package domain

import "time"

// Role types
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultPageSize is the admin user listing page size.
const DefaultPageSize = 15

// User represents a storefront account.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never expose password in JSON
	Role      string    `json:"role" gorm:"not null;default:'user'"`
	Age       int       `json:"age"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	Count() (int64, error)
}
