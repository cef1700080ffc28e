package services

import (
	"context"
	"sort"

	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
)

// memStore is an in-memory implementation of all four store
// interfaces, mirroring the constraints the real schema enforces:
// unique usernames/emails, unique module codes, idempotent
// registrations, append-only grades in insertion order.
type memStore struct {
	students     map[int64]models.Student
	studentOrder []int64
	modules      map[string]models.Module
	regs         map[int64][]models.Module
	grades       map[int64][]models.Grade

	nextStudentID int64
	nextModuleID  int64
	nextGradeID   int64
}

func newMemStore() *memStore {
	return &memStore{
		students: make(map[int64]models.Student),
		modules:  make(map[string]models.Module),
		regs:     make(map[int64][]models.Module),
		grades:   make(map[int64][]models.Grade),
	}
}

func (m *memStore) CreateStudent(_ context.Context, student *models.Student) (int64, error) {
	for _, existing := range m.students {
		if existing.Username == student.Username || existing.Email == student.Email {
			return 0, apperrors.ErrStudentAlreadyExists
		}
	}
	m.nextStudentID++
	student.ID = m.nextStudentID
	m.students[student.ID] = *student
	m.studentOrder = append(m.studentOrder, student.ID)
	return student.ID, nil
}

func (m *memStore) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	out := student
	return &out, nil
}

func (m *memStore) GetAllStudents(_ context.Context, page, size int) ([]*models.Student, int64, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}

	start := (page - 1) * size
	end := start + size
	if start > len(m.studentOrder) {
		start = len(m.studentOrder)
	}
	if end > len(m.studentOrder) {
		end = len(m.studentOrder)
	}

	out := []*models.Student{}
	for _, id := range m.studentOrder[start:end] {
		student := m.students[id]
		out = append(out, &student)
	}
	return out, int64(len(m.studentOrder)), nil
}

func (m *memStore) DeleteStudent(_ context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.students, id)
	delete(m.regs, id)
	delete(m.grades, id)
	for i, sid := range m.studentOrder {
		if sid == id {
			m.studentOrder = append(m.studentOrder[:i], m.studentOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) CreateModule(_ context.Context, module *models.Module) (int64, error) {
	if _, ok := m.modules[module.Code]; ok {
		return 0, apperrors.ErrModuleAlreadyExists
	}
	m.nextModuleID++
	module.ID = m.nextModuleID
	m.modules[module.Code] = *module
	return module.ID, nil
}

func (m *memStore) GetModuleByCode(_ context.Context, code string) (*models.Module, error) {
	module, ok := m.modules[code]
	if !ok {
		return nil, apperrors.ErrModuleNotFound
	}
	out := module
	return &out, nil
}

func (m *memStore) GetAllModules(_ context.Context) ([]models.Module, error) {
	out := []models.Module{}
	for _, module := range m.modules {
		out = append(out, module)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *memStore) DeleteModuleByCode(_ context.Context, code string) error {
	if _, ok := m.modules[code]; !ok {
		return apperrors.ErrModuleNotFound
	}
	delete(m.modules, code)
	return nil
}

func (m *memStore) CreateRegistration(_ context.Context, studentID, moduleID int64) error {
	for _, registered := range m.regs[studentID] {
		if registered.ID == moduleID {
			return nil // ON CONFLICT DO NOTHING
		}
	}
	for _, module := range m.modules {
		if module.ID == moduleID {
			m.regs[studentID] = append(m.regs[studentID], module)
			return nil
		}
	}
	return apperrors.ErrModuleNotFound
}

func (m *memStore) GetStudentModules(_ context.Context, studentID int64) ([]models.Module, error) {
	out := make([]models.Module, len(m.regs[studentID]))
	copy(out, m.regs[studentID])
	return out, nil
}

func (m *memStore) CreateGrade(_ context.Context, grade *models.Grade) (int64, error) {
	m.nextGradeID++
	grade.ID = m.nextGradeID
	m.grades[grade.StudentID] = append(m.grades[grade.StudentID], *grade)
	return grade.ID, nil
}

func (m *memStore) GetStudentGrades(_ context.Context, studentID int64) ([]models.Grade, error) {
	out := make([]models.Grade, len(m.grades[studentID]))
	copy(out, m.grades[studentID])
	return out, nil
}

// seedStudent inserts a student directly into the fake, bypassing
// service validation.
func (m *memStore) seedStudent(s models.Student) int64 {
	m.nextStudentID++
	s.ID = m.nextStudentID
	m.students[s.ID] = s
	m.studentOrder = append(m.studentOrder, s.ID)
	return s.ID
}

// seedModule inserts a module directly into the fake.
func (m *memStore) seedModule(module models.Module) models.Module {
	m.nextModuleID++
	module.ID = m.nextModuleID
	m.modules[module.Code] = module
	return module
}
