package repository

import "gorm.io/gorm"

// Repository aggregates every repository interface.
type Repository struct {
	Class          ClassRepository
	SectionTeacher SectionTeacherRepository
	Timetable      TimetableRepository
	TimetableEntry TimetableEntryRepository
	TimeSlot       TimeSlotRepository
}

// NewRepository builds the aggregate backed by a shared gorm.DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Class:          NewClassRepo(db),
		SectionTeacher: NewSectionTeacherRepo(db),
		Timetable:      NewTimetableRepo(db),
		TimetableEntry: NewTimetableEntryRepo(db),
		TimeSlot:       NewTimeSlotRepo(db),
	}
}
