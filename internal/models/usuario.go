package models

import "time"

// Usuario es tanto el cliente como el dueño del estudio; el rol los distingue.
type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre   string `gorm:"size:100" json:"nombre"`
	Apellido string `gorm:"size:100" json:"apellido"`
	Celular  string `gorm:"size:20" json:"celular"`

	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Role string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Usuario) TableName() string { return "usuario" }
