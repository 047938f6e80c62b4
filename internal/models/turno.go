package models

import "time"

type Turno struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FechaHora time.Time `json:"fechaHora"`

	Estado string `gorm:"size:20;not null;default:'SOLICITADO'" json:"estado"`

	Descripcion string `gorm:"size:500" json:"descripcion"`

	ClienteID uint    `gorm:"not null" json:"cliente_id"`
	Cliente   Usuario `gorm:"foreignKey:ClienteID;constraint:OnUpdate:CASCADE;" json:"cliente"`

	DuenoID uint    `gorm:"not null" json:"dueno_id"`
	Dueno   Usuario `gorm:"foreignKey:DuenoID;constraint:OnUpdate:CASCADE;" json:"dueno"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Turno) TableName() string { return "turno" }
