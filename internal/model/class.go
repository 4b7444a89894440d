package model

// Class maps to classes. PeriodsPerDay and PeriodLength are the class's
// scheduling parameters; both must be positive for timetable generation.
type Class struct {
	ClassID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Name          string `gorm:"type:varchar(100);not null"                     json:"name"`
	PeriodsPerDay int    `gorm:"type:smallint;not null"                         json:"periods_per_day"`
	PeriodLength  int    `gorm:"type:smallint;not null"                         json:"period_length"` // minutes
	BaseModel

	Sections []Section `gorm:"foreignKey:ClassID;references:ClassID" json:"sections,omitempty"`
}

// TableName sets the table name.
func (Class) TableName() string { return "classes" }
