package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tms_gruas/internal/adapter/http/handlers/mocks"
	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase"
	"tms_gruas/internal/usecase/interfaces"
	mock_interfaces "tms_gruas/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newServiceRouter(h *ServiceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/services", h.CreateService)
	r.GET("/v1/services", h.ListServices)
	r.GET("/v1/services/:id", h.GetService)
	r.PATCH("/v1/services/:id/status", h.TransitionService)
	r.POST("/v1/services/:id/start", h.StartService)
	r.PUT("/v1/services/:id/inspection", h.SubmitInspection)
	return r
}

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable service date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		body := `{"client_id":"cli-1","crane_id":"cr-1","operator_id":"op-1","origin":"Santiago","destination":"Rancagua","service_date":"next tuesday"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.Service) (entities.Service, error) {
				if s.ClientID != "cli-1" || s.Origin != "Santiago" {
					t.Fatalf("unexpected input: %+v", s)
				}
				s.ID = "svc-1"
				s.Folio = 1042
				s.Status = entities.ServiceStatusPending
				return s, nil
			})

		body := `{"client_id":"cli-1","crane_id":"cr-1","operator_id":"op-1","origin":"Santiago","destination":"Rancagua","service_date":"2026-08-20","value":450000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["folio"].(float64) != 1042 {
			t.Fatalf("expected folio 1042, got %v", resp["folio"])
		}
		if resp["status"] != "pending" {
			t.Fatalf("expected pending status, got %v", resp["status"])
		}
	})
}

func TestServiceHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/nope", nil)
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services?status=paused", nil)
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("date filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, filter interfaces.ServiceFilter) ([]entities.Service, error) {
				if filter.ClientID != "cli-1" {
					t.Fatalf("expected client filter, got %q", filter.ClientID)
				}
				if filter.From.IsZero() || filter.From.Day() != 1 {
					t.Fatalf("unexpected from filter: %v", filter.From)
				}
				return []entities.Service{{ID: "svc-1", Status: entities.ServiceStatusCompleted}}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/services?client_id=cli-1&status=completed&from=2026-08-01&to=2026-08-31", nil)
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceHandler_TransitionService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("disallowed transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		uc.EXPECT().Transition(gomock.Any(), "svc-1", entities.ServiceStatusPending).
			Return(entities.Service{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/services/svc-1/status", bytes.NewBufferString(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceHandler_StartService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("collects progress and warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		starter := mocks.NewMockIStartServiceUseCase(ctrl)
		h := NewServiceHandler(nil, starter, nil)

		starter.EXPECT().Start(gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, onProgress interfaces.ProgressFunc) (usecase.StartServiceResult, error) {
				onProgress(10, "header")
				onProgress(100, "done")
				return usecase.StartServiceResult{
					Service:     entities.Service{ID: "svc-1", Folio: 1042, Status: entities.ServiceStatusInProgress},
					PDF:         []byte("%PDF-1.4"),
					PDFFileName: "inspeccion-1042.pdf",
					Warnings:    []string{"report email could not be sent; download remains available"},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/start", nil)
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			PDFFileName string `json:"pdf_file_name"`
			PDFBase64   string `json:"pdf_base64"`
			Progress    []struct {
				Percent int    `json:"percent"`
				Stage   string `json:"stage"`
			} `json:"progress"`
			Warnings []string `json:"warnings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.PDFFileName != "inspeccion-1042.pdf" {
			t.Fatalf("unexpected pdf file name: %q", resp.PDFFileName)
		}
		if resp.PDFBase64 == "" {
			t.Fatalf("expected base64 pdf in response")
		}
		if len(resp.Progress) != 2 || resp.Progress[1].Percent != 100 {
			t.Fatalf("unexpected progress events: %+v", resp.Progress)
		}
		if len(resp.Warnings) != 1 {
			t.Fatalf("expected one warning, got %v", resp.Warnings)
		}
	})

	t.Run("not startable maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		starter := mocks.NewMockIStartServiceUseCase(ctrl)
		h := NewServiceHandler(nil, starter, nil)

		starter.EXPECT().Start(gomock.Any(), "svc-1", gomock.Any()).
			Return(usecase.StartServiceResult{}, usecase.ErrServiceNotStartable)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/start", nil)
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

// newInspectionUseCase builds a real inspection use case over repository
// mocks; FormSession cannot be constructed outside its package.
func newInspectionUseCase(
	ctrl *gomock.Controller,
	serviceRepo *mock_interfaces.MockIServiceRepository,
	settingsRepo *mock_interfaces.MockISettingsRepository,
	cache *mock_interfaces.MockIFormCache,
	saver *mock_interfaces.MockIDraftSaver,
) *usecase.InspectionUseCase {
	factory := interfaces.DraftSaverFactory(func(string) interfaces.IDraftSaver { return saver })
	return usecase.NewInspectionUseCase(serviceRepo, settingsRepo, cache, factory)
}

func TestServiceHandler_SubmitInspection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure returns every rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		inspection := newInspectionUseCase(ctrl, serviceRepo, settingsRepo, cache, saver)
		h := NewServiceHandler(nil, nil, inspection)

		cache.EXPECT().Load("inspection-form-svc-1", gomock.Any()).Return(false, nil)
		saver.EXPECT().Save(gomock.Any())
		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, nil)

		body := `{"equipment_checked":[],"operator_signature":"","photo_sets":{}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/services/svc-1/inspection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Code   string   `json:"code"`
			Errors []string `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "INSPECTION_VALIDATION_FAILED" {
			t.Fatalf("unexpected code: %q", resp.Code)
		}
		if len(resp.Errors) != 3 {
			t.Fatalf("expected 3 collected errors, got %v", resp.Errors)
		}
	})

	t.Run("submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		inspection := newInspectionUseCase(ctrl, serviceRepo, settingsRepo, cache, saver)
		h := NewServiceHandler(nil, nil, inspection)

		cache.EXPECT().Load("inspection-form-svc-1", gomock.Any()).Return(false, nil)
		saver.EXPECT().Save(gomock.Any())
		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, nil)
		serviceRepo.EXPECT().UpdateInspection(gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
			func(_ any, id string, form entities.InspectionForm) (entities.Service, error) {
				if form.CompletedAt.IsZero() {
					t.Fatalf("expected completion timestamp on submit")
				}
				return entities.Service{
					ID:         id,
					Folio:      1042,
					Status:     entities.ServiceStatusPending,
					Inspection: &form,
					UpdatedAt:  time.Now().UTC(),
				}, nil
			})
		saver.EXPECT().Stop()
		cache.EXPECT().Clear("inspection-form-svc-1").Return(nil)

		body := `{
			"equipment_checked":["gancho","eslinga"],
			"operator_signature":"data:image/png;base64,iVBOR",
			"photo_sets":{"frontal":[{"name":"frontal-1.jpg","data_url":"data:image/jpeg;base64,/9j/"}]}
		}`
		req := httptest.NewRequest(http.MethodPut, "/v1/services/svc-1/inspection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Inspection *struct {
				PhotoCounts map[string]int `json:"photo_counts"`
			} `json:"inspection"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Inspection == nil || resp.Inspection.PhotoCounts["frontal"] != 1 {
			t.Fatalf("expected inspection summary with photo counts, got %+v", resp.Inspection)
		}
	})

	t.Run("repository failure keeps 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		inspection := newInspectionUseCase(ctrl, serviceRepo, settingsRepo, cache, saver)
		h := NewServiceHandler(nil, nil, inspection)

		cache.EXPECT().Load("inspection-form-svc-1", gomock.Any()).Return(false, nil)
		saver.EXPECT().Save(gomock.Any())
		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, nil)
		serviceRepo.EXPECT().UpdateInspection(gomock.Any(), "svc-1", gomock.Any()).
			Return(entities.Service{}, errors.New("dynamo down"))

		body := `{
			"equipment_checked":["gancho"],
			"operator_signature":"data:image/png;base64,iVBOR",
			"photo_sets":{"frontal":[{"name":"frontal-1.jpg","data_url":"data:image/jpeg;base64,/9j/"}]}
		}`
		req := httptest.NewRequest(http.MethodPut, "/v1/services/svc-1/inspection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
