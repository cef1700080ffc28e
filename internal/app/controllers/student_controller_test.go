package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
)

type stubStudentService struct {
	createStudent        func(ctx context.Context, student *models.Student) (int64, error)
	getStudentByID       func(ctx context.Context, id int64) (*models.Student, error)
	getAllStudents       func(ctx context.Context, page, size int) ([]*models.Student, int64, error)
	deleteStudent        func(ctx context.Context, id int64) error
	registerModule       func(ctx context.Context, studentID int64, moduleCode string) (*models.Module, error)
	getRegisteredModules func(ctx context.Context, studentID int64) ([]models.Module, error)
	computeAverage       func(ctx context.Context, studentID int64) (float64, int, error)
}

func (s *stubStudentService) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	return s.createStudent(ctx, student)
}

func (s *stubStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.getStudentByID(ctx, id)
}

func (s *stubStudentService) GetAllStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error) {
	return s.getAllStudents(ctx, page, size)
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.deleteStudent(ctx, id)
}

func (s *stubStudentService) RegisterModule(ctx context.Context, studentID int64, moduleCode string) (*models.Module, error) {
	return s.registerModule(ctx, studentID, moduleCode)
}

func (s *stubStudentService) GetRegisteredModules(ctx context.Context, studentID int64) ([]models.Module, error) {
	return s.getRegisteredModules(ctx, studentID)
}

func (s *stubStudentService) ComputeAverage(ctx context.Context, studentID int64) (float64, int, error) {
	return s.computeAverage(ctx, studentID)
}

// studentWorld scripts a fixed world: student 1 is Krishna Dattani with
// two grades averaging 77.5, student 2 exists with no grades, CS101 is
// the only known module, and the username TAKEN1 is already in use.
func studentWorld() *stubStudentService {
	krishna := &models.Student{
		ID:        1,
		FirstName: "Krishna",
		LastName:  "Dattani",
		Username:  "ZMAC267",
		Email:     "ZMAC267@live.rhul.ac.uk",
	}
	introModule := models.Module{ID: 1, Code: "CS101", Name: "Intro to Programming", Mandatory: true}

	return &stubStudentService{
		createStudent: func(_ context.Context, student *models.Student) (int64, error) {
			if student.Username == "TAKEN1" {
				return 0, fmt.Errorf("%w: username already in use", apperrors.ErrStudentAlreadyExists)
			}
			return 7, nil
		},
		getStudentByID: func(_ context.Context, id int64) (*models.Student, error) {
			if id != 1 {
				return nil, apperrors.ErrStudentNotFound
			}
			return krishna, nil
		},
		getAllStudents: func(_ context.Context, page, size int) ([]*models.Student, int64, error) {
			return []*models.Student{krishna}, 1, nil
		},
		deleteStudent: func(_ context.Context, id int64) error {
			if id != 1 {
				return apperrors.ErrStudentNotFound
			}
			return nil
		},
		registerModule: func(_ context.Context, studentID int64, moduleCode string) (*models.Module, error) {
			if studentID != 1 && studentID != 2 {
				return nil, apperrors.ErrStudentNotFound
			}
			if moduleCode != "CS101" {
				return nil, apperrors.ErrModuleNotFound
			}
			return &introModule, nil
		},
		getRegisteredModules: func(_ context.Context, studentID int64) ([]models.Module, error) {
			if studentID != 1 {
				return nil, apperrors.ErrStudentNotFound
			}
			return []models.Module{introModule}, nil
		},
		computeAverage: func(_ context.Context, studentID int64) (float64, int, error) {
			switch studentID {
			case 1:
				return 77.5, 2, nil
			case 2:
				return 0, 0, nil
			default:
				return 0, 0, apperrors.ErrStudentNotFound
			}
		},
	}
}

func newStudentRouter(svc *stubStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewStudentController(svc)
	router.POST("/api/v1/students", controller.CreateStudent)
	router.GET("/api/v1/students/:id", controller.GetStudentByID)
	router.DELETE("/api/v1/students/:id", controller.DeleteStudent)
	router.POST("/api/v1/students/:id/modules", controller.RegisterModule)
	router.GET("/api/v1/students/:id/modules", controller.GetRegisteredModules)
	router.GET("/api/v1/students/:id/average", controller.GetAverage)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateStudentEndpoint(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/students",
		`{"firstName": "Krishna", "lastName": "Dattani", "username": "ZMAC267", "email": "ZMAC267@live.rhul.ac.uk"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var body struct {
		Data struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got, want := body.Data.ID, int64(7); got != want {
		t.Errorf("data.id = %d, want %d", got, want)
	}
	if got, want := body.Data.Username, "ZMAC267"; got != want {
		t.Errorf("data.username = %q, want %q", got, want)
	}
}

func TestCreateStudentEndpointInvalidBody(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/students",
		`{"firstName": "Krishna", "lastName": "Dattani", "username": "ZMAC267", "email": "not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "VAL_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestCreateStudentEndpointDuplicateUsername(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/students",
		`{"firstName": "Krishna", "lastName": "Dattani", "username": "TAKEN1", "email": "taken@live.rhul.ac.uk"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusConflict, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "RES_002"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestGetStudentEndpointNotFound(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/students/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusNotFound, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "RES_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestDeleteStudentEndpoint(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/students/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got, want := body.Data.Message, "Student deleted successfully"; got != want {
		t.Errorf("data.message = %q, want %q", got, want)
	}
}

func TestRegisterModuleEndpoint(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/students/1/modules", `{"moduleCode": "CS101"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var body struct {
		Data struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got, want := body.Data.Code, "CS101"; got != want {
		t.Errorf("data.code = %q, want %q", got, want)
	}
	if got, want := body.Data.Name, "Intro to Programming"; got != want {
		t.Errorf("data.name = %q, want %q", got, want)
	}
}

func TestRegisterModuleEndpointUnknownModule(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/students/1/modules", `{"moduleCode": "CS999"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusNotFound, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "RES_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestGetAverageEndpoint(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/students/1/average", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Data struct {
			StudentID  int64   `json:"studentId"`
			Average    float64 `json:"average"`
			GradeCount int     `json:"gradeCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got, want := body.Data.Average, 77.5; got != want {
		t.Errorf("data.average = %v, want %v", got, want)
	}
	if got, want := body.Data.GradeCount, 2; got != want {
		t.Errorf("data.gradeCount = %d, want %d", got, want)
	}
}

func TestGetAverageEndpointNoGrades(t *testing.T) {
	router := newStudentRouter(studentWorld())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/students/2/average", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Data struct {
			Average    float64 `json:"average"`
			GradeCount int     `json:"gradeCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got := body.Data.Average; got != 0 {
		t.Errorf("data.average = %v, want 0", got)
	}
	if got := body.Data.GradeCount; got != 0 {
		t.Errorf("data.gradeCount = %d, want 0", got)
	}
}
