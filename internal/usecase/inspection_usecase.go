package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var (
	ErrSessionClosed = errors.New("inspection session already submitted")
)

// FormCacheKeyPrefix namespaces inspection drafts in the form cache.
const FormCacheKeyPrefix = "inspection-form-"

// SessionState tracks the form controller lifecycle.

type SessionState string

const (
	SessionEditing    SessionState = "editing"
	SessionValidating SessionState = "validating"
	SessionSubmitting SessionState = "submitting"
	SessionSubmitted  SessionState = "submitted"
)

// ValidationErrors collects every failed pre-submit rule so they can be
// surfaced together instead of one at a time.
type ValidationErrors struct {
	Messages []string
}

func (e *ValidationErrors) Error() string {
	return "inspection validation failed: " + strings.Join(e.Messages, "; ")
}

// IInspectionUseCase owns the inspection form lifecycle: draft restore,
// debounced autosave, collected validation and submission.

type IInspectionUseCase interface {
	OpenSession(serviceID string) (*FormSession, error)
	Validate(ctx context.Context, form entities.InspectionForm) *ValidationErrors
}

type InspectionUseCase struct {
	serviceRepo  interfaces.IServiceRepository
	settingsRepo interfaces.ISettingsRepository
	cache        interfaces.IFormCache
	newSaver     interfaces.DraftSaverFactory
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(
	serviceRepo interfaces.IServiceRepository,
	settingsRepo interfaces.ISettingsRepository,
	cache interfaces.IFormCache,
	newSaver interfaces.DraftSaverFactory,
) *InspectionUseCase {
	return &InspectionUseCase{serviceRepo: serviceRepo, settingsRepo: settingsRepo, cache: cache, newSaver: newSaver}
}

func CacheKey(serviceID string) string {
	return FormCacheKeyPrefix + serviceID
}

// OpenSession starts (or resumes) the form session for a service. A stored
// draft, if parseable, becomes the session's working copy.
func (u *InspectionUseCase) OpenSession(serviceID string) (*FormSession, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}

	key := CacheKey(serviceID)
	session := &FormSession{
		usecase:   u,
		serviceID: serviceID,
		key:       key,
		state:     SessionEditing,
		saver:     u.newSaver(key),
	}

	var draft entities.InspectionForm
	found, err := u.cache.Load(key, &draft)
	if err != nil {
		// Draft persistence is advisory; the session starts empty.
		log.Printf("[inspection][usecase] draft restore failed service_id=%s err=%v", serviceID, err)
	} else if found {
		session.form = draft
		log.Printf("[inspection][usecase] draft restored service_id=%s photos=%d", serviceID, draft.PhotoCount())
	}
	return session, nil
}

// Validate applies the pre-submit rules, collecting every failure:
// (a) operator signature present, (b) checklist non-empty, (c) at least one
// photo, plus the settings-driven per-set photo limit. Returns nil when the
// form is submittable.
func (u *InspectionUseCase) Validate(ctx context.Context, form entities.InspectionForm) *ValidationErrors {
	var messages []string
	if form.OperatorSignature.IsEmpty() {
		messages = append(messages, "operator signature is required")
	}
	if len(form.EquipmentChecked) == 0 {
		messages = append(messages, "equipment checklist must have at least one item")
	}
	if form.PhotoCount() == 0 {
		messages = append(messages, "at least one photo is required")
	}

	maxPerSet := entities.DefaultMaxPhotosPerSet
	if settings, err := u.settingsRepo.Get(ctx); err == nil && settings.MaxPhotosPerSet > 0 {
		maxPerSet = settings.MaxPhotosPerSet
	}
	for setName, set := range form.PhotoSets {
		if len(set) > maxPerSet {
			messages = append(messages, fmt.Sprintf("photo set %q exceeds the maximum of %d photos", setName, maxPerSet))
		}
	}

	if len(messages) == 0 {
		return nil
	}
	return &ValidationErrors{Messages: messages}
}

// FormSession is one operator's in-progress inspection for one service.
// State machine: editing -> validating -> submitting -> submitted; any
// failure returns to editing with the draft intact.
type FormSession struct {
	usecase   *InspectionUseCase
	serviceID string
	key       string
	state     SessionState
	form      entities.InspectionForm
	saver     interfaces.IDraftSaver
}

func (s *FormSession) ServiceID() string             { return s.serviceID }
func (s *FormSession) State() SessionState           { return s.state }
func (s *FormSession) Form() entities.InspectionForm { return s.form }

// Update replaces the working copy and schedules a debounced autosave.
func (s *FormSession) Update(form entities.InspectionForm) {
	if s.state == SessionSubmitted {
		return
	}
	s.form = form
	s.saver.Save(form)
}

// Flush persists the working copy immediately (the page-hide path).
func (s *FormSession) Flush() {
	if s.state == SessionSubmitted {
		return
	}
	s.saver.Flush()
}

// Submit validates and persists the inspection on the service row. On
// success the draft entry is cleared and the session becomes terminal; on
// any failure the draft is deliberately kept so no work is lost.
func (s *FormSession) Submit(ctx context.Context) (entities.Service, error) {
	if s.state == SessionSubmitted {
		return entities.Service{}, ErrSessionClosed
	}

	s.state = SessionValidating
	if errs := s.usecase.Validate(ctx, s.form); errs != nil {
		s.state = SessionEditing
		log.Printf("[inspection][usecase] validation failed service_id=%s errors=%d", s.serviceID, len(errs.Messages))
		return entities.Service{}, errs
	}

	s.state = SessionSubmitting
	form := s.form
	form.CompletedAt = time.Now().UTC()

	svc, err := s.usecase.serviceRepo.UpdateInspection(ctx, s.serviceID, form)
	if err != nil {
		s.state = SessionEditing
		return entities.Service{}, err
	}
	if svc.ID == "" {
		s.state = SessionEditing
		return entities.Service{}, ErrServiceNotFound
	}

	s.saver.Stop()
	if err := s.usecase.cache.Clear(s.key); err != nil {
		// Draft cleanup is best-effort; a stale draft is dropped on the
		// next corrupt/complete check.
		log.Printf("[inspection][usecase] draft clear failed service_id=%s err=%v", s.serviceID, err)
	}
	s.state = SessionSubmitted
	s.form = form
	log.Printf("[inspection][usecase] submitted service_id=%s photos=%d", s.serviceID, form.PhotoCount())
	return svc, nil
}
