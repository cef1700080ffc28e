package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
)

// stubGradeService lets each test script the service layer directly.
type stubGradeService struct {
	addGrade         func(ctx context.Context, studentID int64, moduleCode string, score int) (*models.Grade, error)
	getGrade         func(ctx context.Context, studentID int64, moduleCode string) (*models.Grade, error)
	getStudentGrades func(ctx context.Context, studentID int64) ([]models.Grade, error)
}

func (s *stubGradeService) AddGrade(ctx context.Context, studentID int64, moduleCode string, score int) (*models.Grade, error) {
	return s.addGrade(ctx, studentID, moduleCode, score)
}

func (s *stubGradeService) GetGrade(ctx context.Context, studentID int64, moduleCode string) (*models.Grade, error) {
	return s.getGrade(ctx, studentID, moduleCode)
}

func (s *stubGradeService) GetStudentGrades(ctx context.Context, studentID int64) ([]models.Grade, error) {
	return s.getStudentGrades(ctx, studentID)
}

// gradingWorld scripts a fixed world: student 1 exists and is registered
// on CS101, CS102 exists but the student is not registered on it, and
// nothing else exists.
func gradingWorld() *stubGradeService {
	introModule := models.Module{ID: 1, Code: "CS101", Name: "Intro to Programming", Mandatory: true}

	resolve := func(studentID int64, moduleCode string) (*models.Module, error) {
		if studentID != 1 {
			return nil, apperrors.ErrStudentNotFound
		}
		switch moduleCode {
		case "CS101":
			return &introModule, nil
		case "CS102":
			return nil, &apperrors.NotRegisteredError{ModuleName: "Data Structures"}
		default:
			return nil, apperrors.ErrModuleNotFound
		}
	}

	return &stubGradeService{
		addGrade: func(_ context.Context, studentID int64, moduleCode string, score int) (*models.Grade, error) {
			module, err := resolve(studentID, moduleCode)
			if err != nil {
				return nil, err
			}
			return &models.Grade{ID: 1, StudentID: studentID, Score: score, Module: *module}, nil
		},
		getGrade: func(_ context.Context, studentID int64, moduleCode string) (*models.Grade, error) {
			if _, err := resolve(studentID, moduleCode); err != nil {
				return nil, err
			}
			return nil, &apperrors.NoGradeRecordedError{ModuleName: "Intro to Programming"}
		},
		getStudentGrades: func(_ context.Context, studentID int64) ([]models.Grade, error) {
			if studentID != 1 {
				return nil, apperrors.ErrStudentNotFound
			}
			return []models.Grade{
				{ID: 1, StudentID: 1, Score: 70, Module: introModule},
				{ID: 2, StudentID: 1, Score: 90, Module: introModule},
			}, nil
		},
	}
}

func newGradeRouter(svc *stubGradeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewGradeController(svc)
	router.POST("/api/v1/grades", controller.AddGrade)
	router.GET("/api/v1/students/:id/grades", controller.GetStudentGrades)
	router.GET("/api/v1/students/:id/grades/:code", controller.GetGrade)
	return router
}

func postGrade(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/grades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// errorEnvelope is the subset of the error payload the tests assert on.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding error body %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestAddGradeEndpoint(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "1", "module_code": "CS101", "score": "85"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var body struct {
		Data struct {
			Score  int `json:"score"`
			Module struct {
				Code string `json:"code"`
				Name string `json:"name"`
			} `json:"module"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got, want := body.Data.Score, 85; got != want {
		t.Errorf("data.score = %d, want %d", got, want)
	}
	if got, want := body.Data.Module.Code, "CS101"; got != want {
		t.Errorf("data.module.code = %q, want %q", got, want)
	}
}

func TestAddGradeEndpointMissingFields(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "1", "module_code": "CS101"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "VAL_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestAddGradeEndpointUnknownStudent(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "999", "module_code": "CS101", "score": "85"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusNotFound, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "RES_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestAddGradeEndpointUnknownModule(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "1", "module_code": "NON_EXISTENT", "score": "85"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusNotFound, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "RES_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestAddGradeEndpointNotRegistered(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "1", "module_code": "CS102", "score": "85"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusConflict, rec.Body.String())
	}

	env := decodeError(t, rec)
	if got, want := env.Error.Code, "GRD_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
	if got, want := env.Error.Message, "student is not registered in the module: Data Structures"; got != want {
		t.Errorf("error.message = %q, want %q", got, want)
	}
}

func TestAddGradeEndpointNegativeScore(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "1", "module_code": "CS101", "score": "-10"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	env := decodeError(t, rec)
	if got, want := env.Error.Code, "VAL_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
	if got, want := env.Error.Field, "score"; got != want {
		t.Errorf("error.field = %q, want %q", got, want)
	}
}

func TestAddGradeEndpointNonNumericScore(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "1", "module_code": "CS101", "score": "eighty-five"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Field, "score"; got != want {
		t.Errorf("error.field = %q, want %q", got, want)
	}
}

func TestAddGradeEndpointNonNumericStudentID(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	rec := postGrade(t, router, `{"student_id": "abc", "module_code": "CS101", "score": "85"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Field, "student_id"; got != want {
		t.Errorf("error.field = %q, want %q", got, want)
	}
}

func TestGetGradeEndpointNotRegistered(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/1/grades/CS102", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusConflict, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "GRD_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}

func TestGetGradeEndpointNoGradeRecorded(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/1/grades/CS101", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusNotFound, rec.Body.String())
	}

	env := decodeError(t, rec)
	if got, want := env.Error.Code, "GRD_002"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
	if got, want := env.Error.Message, "no grade available for module: Intro to Programming"; got != want {
		t.Errorf("error.message = %q, want %q", got, want)
	}
}

func TestGetStudentGradesEndpoint(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/1/grades", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Data struct {
			Grades []struct {
				Score int `json:"score"`
			} `json:"grades"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got, want := len(body.Data.Grades), 2; got != want {
		t.Fatalf("len(grades) = %d, want %d", got, want)
	}
	if got, want := body.Data.Grades[0].Score, 70; got != want {
		t.Errorf("grades[0].score = %d, want %d (recorded first)", got, want)
	}
}

func TestGetStudentGradesEndpointInvalidID(t *testing.T) {
	router := newGradeRouter(gradingWorld())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/abc/grades", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if got, want := decodeError(t, rec).Error.Code, "VAL_001"; got != want {
		t.Errorf("error.code = %q, want %q", got, want)
	}
}
