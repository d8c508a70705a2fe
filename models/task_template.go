package models

type TaskTemplate struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	Key         string `json:"key" gorm:"column:template_key;uniqueIndex;size:64;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Category    string `json:"category"`
	Emoji       string `json:"emoji"`
	Position    int    `json:"-"`
}
