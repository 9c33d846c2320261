package models

// Question.Category holds the referenced category id in its string form.
// The column is text so the same comparison works for the category listing
// and the quiz selection paths.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   string `gorm:"size:64;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}
