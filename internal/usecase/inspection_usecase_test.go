package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
	mock_interfaces "tms_gruas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validInspectionForm() entities.InspectionForm {
	return entities.InspectionForm{
		EquipmentChecked:  []string{"gancho", "eslinga"},
		OperatorSignature: entities.SignatureData("data:image/png;base64,AAAA"),
		PhotoSets: map[string][]entities.PhotoData{
			"frontal": {{Name: "frontal-1.jpg", DataURL: "data:image/jpeg;base64,BBBB"}},
		},
	}
}

func newSaverFactory(saver interfaces.IDraftSaver) interfaces.DraftSaverFactory {
	return func(key string) interfaces.IDraftSaver { return saver }
}

func TestInspectionUseCase_OpenSession(t *testing.T) {
	t.Run("invalid service id", func(t *testing.T) {
		uc := NewInspectionUseCase(nil, nil, nil, nil)
		_, err := uc.OpenSession("   ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("restores stored draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		uc := NewInspectionUseCase(nil, nil, cache, newSaverFactory(saver))

		draft := validInspectionForm()
		cache.EXPECT().Load(CacheKey("svc-1"), gomock.Any()).DoAndReturn(func(key string, v any) (bool, error) {
			*(v.(*entities.InspectionForm)) = draft
			return true, nil
		})

		session, err := uc.OpenSession("svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.State() != SessionEditing {
			t.Fatalf("expected editing state, got %s", session.State())
		}
		if got := session.Form(); len(got.EquipmentChecked) != 2 {
			t.Fatalf("expected restored draft, got %+v", got)
		}
	})

	t.Run("load error starts empty session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		uc := NewInspectionUseCase(nil, nil, cache, newSaverFactory(saver))

		cache.EXPECT().Load(CacheKey("svc-1"), gomock.Any()).Return(false, errors.New("disk"))

		session, err := uc.OpenSession("svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := session.Form(); got.PhotoCount() != 0 || len(got.EquipmentChecked) != 0 {
			t.Fatalf("expected empty form, got %+v", got)
		}
	})
}

func TestInspectionUseCase_Validate(t *testing.T) {
	t.Run("collects every failure without network calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewInspectionUseCase(nil, settingsRepo, nil, nil)

		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{MaxPhotosPerSet: 6}, nil)

		form := validInspectionForm()
		form.EquipmentChecked = nil
		form.OperatorSignature = ""

		errs := uc.Validate(context.Background(), form)
		if errs == nil {
			t.Fatal("expected validation errors")
		}
		if len(errs.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d: %v", len(errs.Messages), errs.Messages)
		}
		if !strings.Contains(errs.Error(), "operator signature") {
			t.Fatalf("expected signature message, got %q", errs.Error())
		}
		if !strings.Contains(errs.Error(), "checklist") {
			t.Fatalf("expected checklist message, got %q", errs.Error())
		}
	})

	t.Run("photo set over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewInspectionUseCase(nil, settingsRepo, nil, nil)

		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{MaxPhotosPerSet: 2}, nil)

		form := validInspectionForm()
		form.PhotoSets["frontal"] = []entities.PhotoData{
			{Name: "a.jpg"}, {Name: "b.jpg"}, {Name: "c.jpg"},
		}

		errs := uc.Validate(context.Background(), form)
		if errs == nil || len(errs.Messages) != 1 {
			t.Fatalf("expected one message, got %v", errs)
		}
		if !strings.Contains(errs.Messages[0], "maximum of 2") {
			t.Fatalf("expected limit message, got %q", errs.Messages[0])
		}
	})

	t.Run("settings failure falls back to default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewInspectionUseCase(nil, settingsRepo, nil, nil)

		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, errors.New("db"))

		form := validInspectionForm()
		if errs := uc.Validate(context.Background(), form); errs != nil {
			t.Fatalf("expected valid form, got %v", errs.Messages)
		}
	})
}

func TestFormSession_Submit(t *testing.T) {
	openSession := func(t *testing.T, uc *InspectionUseCase, cache *mock_interfaces.MockIFormCache) *FormSession {
		t.Helper()
		cache.EXPECT().Load(CacheKey("svc-1"), gomock.Any()).Return(false, nil)
		session, err := uc.OpenSession("svc-1")
		if err != nil {
			t.Fatalf("open session: %v", err)
		}
		return session
	}

	t.Run("validation failure keeps draft and session editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		uc := NewInspectionUseCase(serviceRepo, settingsRepo, cache, newSaverFactory(saver))

		session := openSession(t, uc, cache)
		saver.EXPECT().Save(gomock.Any())

		form := validInspectionForm()
		form.EquipmentChecked = nil
		session.Update(form)

		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{MaxPhotosPerSet: 6}, nil)
		// No UpdateInspection, no Clear, no Stop: the draft survives.

		_, err := session.Submit(context.Background())
		var verrs *ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected ValidationErrors, got %v", err)
		}
		if session.State() != SessionEditing {
			t.Fatalf("expected editing state after failure, got %s", session.State())
		}
	})

	t.Run("success clears draft and closes session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		uc := NewInspectionUseCase(serviceRepo, settingsRepo, cache, newSaverFactory(saver))

		session := openSession(t, uc, cache)
		saver.EXPECT().Save(gomock.Any())
		session.Update(validInspectionForm())

		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{MaxPhotosPerSet: 6}, nil)
		serviceRepo.EXPECT().UpdateInspection(gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, id string, form entities.InspectionForm) (entities.Service, error) {
				if form.CompletedAt.IsZero() {
					t.Fatal("expected completed_at to be stamped")
				}
				return entities.Service{ID: id, Inspection: &form}, nil
			})
		saver.EXPECT().Stop()
		cache.EXPECT().Clear(CacheKey("svc-1")).Return(nil)

		svc, err := session.Submit(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.ID != "svc-1" {
			t.Fatalf("expected updated service, got %+v", svc)
		}
		if session.State() != SessionSubmitted {
			t.Fatalf("expected submitted state, got %s", session.State())
		}

		if _, err := session.Submit(context.Background()); !errors.Is(err, ErrSessionClosed) {
			t.Fatalf("expected ErrSessionClosed on resubmit, got %v", err)
		}
	})

	t.Run("repository failure keeps draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		uc := NewInspectionUseCase(serviceRepo, settingsRepo, cache, newSaverFactory(saver))

		session := openSession(t, uc, cache)
		saver.EXPECT().Save(gomock.Any())
		session.Update(validInspectionForm())

		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{MaxPhotosPerSet: 6}, nil)
		serviceRepo.EXPECT().UpdateInspection(gomock.Any(), "svc-1", gomock.Any()).Return(entities.Service{}, errors.New("db"))

		_, err := session.Submit(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if session.State() != SessionEditing {
			t.Fatalf("expected editing state after failure, got %s", session.State())
		}
	})

	t.Run("service missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		uc := NewInspectionUseCase(serviceRepo, settingsRepo, cache, newSaverFactory(saver))

		session := openSession(t, uc, cache)
		saver.EXPECT().Save(gomock.Any())
		session.Update(validInspectionForm())

		settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.Settings{MaxPhotosPerSet: 6}, nil)
		serviceRepo.EXPECT().UpdateInspection(gomock.Any(), "svc-1", gomock.Any()).Return(entities.Service{}, nil)

		if _, err := session.Submit(context.Background()); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestFormSession_UpdateAndFlush(t *testing.T) {
	t.Run("update schedules debounced save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIFormCache(ctrl)
		saver := mock_interfaces.NewMockIDraftSaver(ctrl)
		uc := NewInspectionUseCase(nil, nil, cache, newSaverFactory(saver))

		cache.EXPECT().Load(gomock.Any(), gomock.Any()).Return(false, nil)
		session, err := uc.OpenSession("svc-1")
		if err != nil {
			t.Fatalf("open session: %v", err)
		}

		form := validInspectionForm()
		saver.EXPECT().Save(gomock.Any()).Times(2)
		session.Update(form)
		session.Update(form)

		saver.EXPECT().Flush()
		session.Flush()
	})
}
