package model

// Section maps to sections.
type Section struct {
	SectionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"section_id"`
	ClassID   string `gorm:"type:uuid;not null"                             json:"class_id"`
	Name      string `gorm:"type:varchar(50);not null"                      json:"name"`
	BaseModel
}

// TableName sets the table name.
func (Section) TableName() string { return "sections" }
