package model

// SectionTeacher maps to section_teachers: one ordered subject-teacher
// assignment within a section. Position drives the round-robin order the
// timetable builder walks through.
type SectionTeacher struct {
	SectionTeacherID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"section_teacher_id"`
	SectionID        string `gorm:"type:uuid;not null"                             json:"section_id"`
	SubjectID        string `gorm:"type:uuid;not null"                             json:"subject_id"`
	TeacherID        string `gorm:"type:uuid;not null"                             json:"teacher_id"`
	Position         int    `gorm:"type:smallint;not null;default:0"               json:"position"`
	BaseModel

	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
}

// TableName sets the table name.
func (SectionTeacher) TableName() string { return "section_teachers" }
