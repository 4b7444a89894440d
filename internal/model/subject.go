package model

// Subject maps to subjects.
type Subject struct {
	SubjectID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name      string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel
}

// TableName sets the table name.
func (Subject) TableName() string { return "subjects" }
