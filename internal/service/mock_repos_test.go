package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
)

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[string]*model.Class
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.Class)}
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock SectionTeacherRepository ──

type mockSectionTeacherRepo struct {
	rosters map[string][]model.SectionTeacher
}

func newMockSectionTeacherRepo() *mockSectionTeacherRepo {
	return &mockSectionTeacherRepo{rosters: make(map[string][]model.SectionTeacher)}
}

func (m *mockSectionTeacherRepo) ListBySection(_ context.Context, sectionID string) ([]model.SectionTeacher, error) {
	roster := append([]model.SectionTeacher(nil), m.rosters[sectionID]...)
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Position < roster[j].Position
	})
	return roster, nil
}

// ── Mock TimetableRepository ──

type mockTimetableRepo struct {
	created []*model.Timetable
	failErr error // forces the whole batch to fail when set
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{}
}

func (m *mockTimetableRepo) CreateBatch(_ context.Context, timetables []*model.Timetable) error {
	if m.failErr != nil {
		return m.failErr
	}
	for i, t := range timetables {
		if t.TimetableID == "" {
			t.TimetableID = fmt.Sprintf("tt-%03d", len(m.created)+i+1)
		}
		for j := range t.Entries {
			t.Entries[j].TimetableID = t.TimetableID
		}
	}
	m.created = append(m.created, timetables...)
	return nil
}

func (m *mockTimetableRepo) GetBySection(_ context.Context, classID, sectionID string) (*model.Timetable, error) {
	// latest wins, mirroring the created_at DESC ordering
	for i := len(m.created) - 1; i >= 0; i-- {
		t := m.created[i]
		if t.ClassID == classID && t.SectionID == sectionID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock TimetableEntryRepository ──

type mockTimetableEntryRepo struct {
	entries []model.TimetableEntry
}

func newMockTimetableEntryRepo() *mockTimetableEntryRepo {
	return &mockTimetableEntryRepo{}
}

func (m *mockTimetableEntryRepo) ListByTeacher(_ context.Context, teacherID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.TeacherID == teacherID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockTimetableEntryRepo) ListBySection(_ context.Context, classID, sectionID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.ClassID == classID && e.SectionID == sectionID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockTimetableEntryRepo) ListByClassAndTeacher(_ context.Context, classID, teacherID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.ClassID == classID && e.TeacherID == teacherID {
			result = append(result, e)
		}
	}
	return result, nil
}

// ── Mock TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots []model.TimeSlot
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{}
}

func (m *mockTimeSlotRepo) BatchCreate(_ context.Context, slots []model.TimeSlot) error {
	for i := range slots {
		if slots[i].TimeSlotID == "" {
			slots[i].TimeSlotID = fmt.Sprintf("slot-%03d", len(m.slots)+i+1)
		}
	}
	m.slots = append(m.slots, slots...)
	return nil
}

func (m *mockTimeSlotRepo) ListByClass(_ context.Context, classID string, day string) ([]model.TimeSlot, error) {
	var result []model.TimeSlot
	for _, s := range m.slots {
		if s.ClassID != classID {
			continue
		}
		if day != "" && s.Day != day {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}
