package model

// Timetable maps to timetables: one header per generation run and section.
// Regeneration always appends a fresh row; there is no upsert on
// (class_id, section_id), so multiple timetables can coexist for a section
// and readers pick the most recent one.
//
// TeacherID is a denormalized default copied from the first roster entry.
// It is not an ownership relation.
type Timetable struct {
	TimetableID            string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timetable_id"`
	ClassID                string           `gorm:"type:uuid;not null"                             json:"class_id"`
	SectionID              string           `gorm:"type:uuid;not null"                             json:"section_id"`
	TeacherID              string           `gorm:"type:uuid"                                      json:"teacher_id,omitempty"`
	PeriodsPerDay          int              `gorm:"type:smallint;not null"                         json:"periods_per_day"`
	PeriodsPerDayOverrides WeekdayOverrides `gorm:"type:jsonb"                                     json:"periods_per_day_overrides,omitempty"`
	BreakStartTime         *string          `gorm:"type:varchar(5)"                                json:"break_start_time,omitempty"` // "HH:MM"
	BreakEndTime           *string          `gorm:"type:varchar(5)"                                json:"break_end_time,omitempty"`   // "HH:MM"
	BaseModel

	Section *Section         `gorm:"foreignKey:SectionID;references:SectionID"    json:"section,omitempty"`
	Class   *Class           `gorm:"foreignKey:ClassID;references:ClassID"        json:"class,omitempty"`
	Entries []TimetableEntry `gorm:"foreignKey:TimetableID;references:TimetableID" json:"entries,omitempty"`
}

// TableName sets the table name.
func (Timetable) TableName() string { return "timetables" }

// TimetableEntry maps to timetable_entries: one scheduled period.
// (timetable_id, day_of_week, period_number) is unique within a timetable.
// Entries are created in bulk during generation and never mutated in place.
type TimetableEntry struct {
	TimetableEntryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timetable_entry_id"`
	TimetableID      string `gorm:"type:uuid;not null"                             json:"timetable_id"`
	ClassID          string `gorm:"type:uuid;not null"                             json:"class_id"`
	SectionID        string `gorm:"type:uuid;not null"                             json:"section_id"`
	SubjectID        string `gorm:"type:uuid;not null"                             json:"subject_id"`
	TeacherID        string `gorm:"type:uuid;not null"                             json:"teacher_id"`
	DayOfWeek        string `gorm:"type:varchar(9);not null"                       json:"day_of_week"` // Monday..Sunday
	PeriodNumber     int    `gorm:"type:smallint;not null"                         json:"period_number"`
	StartTime        string `gorm:"type:varchar(5);not null"                       json:"start_time"` // "HH:MM"
	EndTime          string `gorm:"type:varchar(5);not null"                       json:"end_time"`   // "HH:MM"
	BaseModel

	Subject   *Subject   `gorm:"foreignKey:SubjectID;references:SubjectID"       json:"subject,omitempty"`
	Teacher   *Teacher   `gorm:"foreignKey:TeacherID;references:TeacherID"       json:"teacher,omitempty"`
	Timetable *Timetable `gorm:"foreignKey:TimetableID;references:TimetableID"   json:"timetable,omitempty"`
}

// TableName sets the table name.
func (TimetableEntry) TableName() string { return "timetable_entries" }
