package entity

import "golang.org/x/crypto/bcrypt"

// Operator is an account allowed to use the system. The table keeps the
// original `users` layout, except that the password column now holds a bcrypt
// hash instead of the plaintext secret the legacy store carried.
type Operator struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Username string `gorm:"column:username;type:varchar(64);uniqueIndex:uq_users_username;not null"`
	Password string `gorm:"column:password;type:varchar(128);not null"` // bcrypt hash
}

func (Operator) TableName() string {
	return "users"
}

// SetPassword hashes and sets the operator's password
func (o *Operator) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	o.Password = string(hashed)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (o *Operator) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.Password), []byte(password)) == nil
}
