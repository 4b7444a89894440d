package model

// Teacher maps to teachers.
type Teacher struct {
	TeacherID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	Name      string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email     string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Teacher) TableName() string { return "teachers" }
