package model

import "time"

type Note struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    int64     `gorm:"not null;index:idx_notes_user_status,priority:1"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	Status    string    `gorm:"type:note_status;not null;default:draft;index:idx_notes_user_status,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Note) TableName() string {
	return "notes"
}
