package entity

type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}

type AdminRole string

const RoleAdmin AdminRole = "admin"

type AdminUser struct {
	Base
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Role         AdminRole `db:"role"`
}
