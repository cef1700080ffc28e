package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
)

func TestCreateModule(t *testing.T) {
	store := newMemStore()
	svc := NewModuleService(store)

	id, err := svc.CreateModule(context.Background(), &models.Module{
		Code:      "CS101",
		Name:      "Intro to Programming",
		Mandatory: true,
	})
	if err != nil {
		t.Fatalf("CreateModule() error = %v, want nil", err)
	}
	if id == 0 {
		t.Error("CreateModule() id = 0, want assigned id")
	}
}

func TestCreateModuleValidation(t *testing.T) {
	tests := []struct {
		name   string
		module models.Module
	}{
		{name: "empty code", module: models.Module{Code: " ", Name: "Intro to Programming"}},
		{name: "lowercase code", module: models.Module{Code: "cs101", Name: "Intro to Programming"}},
		{name: "code too long", module: models.Module{Code: "CS101CS101X", Name: "Intro to Programming"}},
		{name: "code with symbols", module: models.Module{Code: "CS-101", Name: "Intro to Programming"}},
		{name: "empty name", module: models.Module{Code: "CS101", Name: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewModuleService(newMemStore())

			_, err := svc.CreateModule(context.Background(), &tt.module)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateModule() error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestCreateModuleDuplicateCode(t *testing.T) {
	svc := NewModuleService(newMemStore())
	ctx := context.Background()

	if _, err := svc.CreateModule(ctx, &models.Module{Code: "CS101", Name: "Intro to Programming"}); err != nil {
		t.Fatalf("CreateModule() error = %v", err)
	}

	_, err := svc.CreateModule(ctx, &models.Module{Code: "CS101", Name: "Introduction to Computer Science"})
	if !errors.Is(err, apperrors.ErrModuleAlreadyExists) {
		t.Errorf("CreateModule() duplicate error = %v, want ErrModuleAlreadyExists", err)
	}
}

func TestGetModuleByCode(t *testing.T) {
	store := newMemStore()
	svc := NewModuleService(store)
	store.seedModule(models.Module{Code: "CS101", Name: "Intro to Programming", Mandatory: true})

	module, err := svc.GetModuleByCode(context.Background(), "CS101")
	if err != nil {
		t.Fatalf("GetModuleByCode() error = %v, want nil", err)
	}
	if got, want := module.Name, "Intro to Programming"; got != want {
		t.Errorf("module.Name = %q, want %q", got, want)
	}

	if _, err := svc.GetModuleByCode(context.Background(), "CS999"); !errors.Is(err, apperrors.ErrModuleNotFound) {
		t.Errorf("GetModuleByCode(CS999) error = %v, want ErrModuleNotFound", err)
	}
}

func TestGetAllModules(t *testing.T) {
	store := newMemStore()
	svc := NewModuleService(store)
	store.seedModule(models.Module{Code: "CS102", Name: "Data Structures"})
	store.seedModule(models.Module{Code: "CS101", Name: "Intro to Programming"})

	modules, err := svc.GetAllModules(context.Background())
	if err != nil {
		t.Fatalf("GetAllModules() error = %v, want nil", err)
	}
	if got, want := len(modules), 2; got != want {
		t.Fatalf("len(modules) = %d, want %d", got, want)
	}
	if got, want := modules[0].Code, "CS101"; got != want {
		t.Errorf("modules[0].Code = %q, want %q (code order)", got, want)
	}
}

func TestDeleteModuleByCode(t *testing.T) {
	store := newMemStore()
	svc := NewModuleService(store)
	store.seedModule(models.Module{Code: "CS101", Name: "Intro to Programming"})
	ctx := context.Background()

	if err := svc.DeleteModuleByCode(ctx, "CS101"); err != nil {
		t.Fatalf("DeleteModuleByCode() error = %v, want nil", err)
	}
	if _, err := svc.GetModuleByCode(ctx, "CS101"); !errors.Is(err, apperrors.ErrModuleNotFound) {
		t.Errorf("GetModuleByCode() after delete error = %v, want ErrModuleNotFound", err)
	}
	if err := svc.DeleteModuleByCode(ctx, "CS101"); !errors.Is(err, apperrors.ErrModuleNotFound) {
		t.Errorf("DeleteModuleByCode() repeat error = %v, want ErrModuleNotFound", err)
	}
}
