// Package operationmap содержит бизнес-логику карты операций: чтение каталога
// шагов под тариф клиента, upsert прогресса по паре (client_id, step_id)
// с проставлением completed_at и материалы шагов.
package operationmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/steps"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

var (
	// ErrUnknownStep возвращается для step_id вне каталога.
	ErrUnknownStep = errors.New("unknown step")
	// ErrStepNotInPlan возвращается, когда шаг недоступен на тарифе клиента.
	ErrStepNotInPlan = errors.New("step is not available on client plan")
)

// Repository описывает контракт хранилища прогресса по шагам.
type Repository interface {
	UpsertStepProgress(ctx context.Context, progress models.StepProgress) (*models.StepProgress, error)
	ListStepProgress(ctx context.Context, clientID string) ([]models.StepProgress, error)
	GetStepProgress(ctx context.Context, clientID, stepID string) (*models.StepProgress, error)
	ListStepLinks(ctx context.Context) ([]models.StepLink, error)
}

// ClientRepository описывает контракт загрузки клиента для проверки тарифа.
type ClientRepository interface {
	GetClientByID(ctx context.Context, id string) (*models.Client, error)
}

// MapEntry — шаг каталога вместе с текущим прогрессом клиента.
// Progress == nil означает, что прогресс по шагу ещё не записывался.
type MapEntry struct {
	Step     steps.Step           `json:"step"`
	Progress *models.StepProgress `json:"progress"`
}

// Service отвечает за операции над картой операций.
type Service struct {
	repo    Repository
	clients ClientRepository
	policy  steps.TransitionPolicy
	now     func() time.Time
}

// New создает новый Service с заданной политикой переходов статусов.
func New(repo Repository, clients ClientRepository, policy steps.TransitionPolicy) *Service {
	if policy == nil {
		policy = steps.AllowAll
	}
	return &Service{repo: repo, clients: clients, policy: policy, now: time.Now}
}

// Map возвращает шаги, доступные на тарифе клиента, вместе с прогрессом.
// Записи прогресса по шагам вне тарифа (после даунгрейда) не показываются,
// но и не удаляются.
func (s *Service) Map(ctx context.Context, clientID string) ([]MapEntry, error) {
	const op = "operationmap.Map"

	client, err := s.clients.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	progress, err := s.repo.ListStepProgress(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byStep := make(map[string]*models.StepProgress, len(progress))
	for i := range progress {
		byStep[progress[i].StepID] = &progress[i]
	}

	available := steps.ForPlan(client.Plan)
	entries := make([]MapEntry, 0, len(available))
	for _, step := range available {
		entries = append(entries, MapEntry{Step: step, Progress: byStep[step.ID]})
	}
	return entries, nil
}

// Upsert записывает статус шага для клиента. Шаг должен существовать в
// каталоге и быть доступным на тарифе клиента; переход статуса проверяется
// политикой. CompletedAt проставляется при входе в completed и очищается
// при выходе из него.
func (s *Service) Upsert(ctx context.Context, req models.DummyStepProgress) (*models.StepProgress, error) {
	const op = "operationmap.Upsert"

	step, ok := steps.Lookup(req.StepID)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownStep, req.StepID)
	}

	client, err := s.clients.GetClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !step.AvailableOn(client.Plan) {
		return nil, fmt.Errorf("%s: %w: %s on %s", op, ErrStepNotInPlan, req.StepID, client.Plan)
	}

	from := models.StepPending
	var completedAt *time.Time
	current, err := s.repo.GetStepProgress(ctx, req.ClientID, req.StepID)
	switch {
	case err == nil:
		from = current.Status
		completedAt = current.CompletedAt
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.policy(from, req.Status); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case req.Status == models.StepCompleted && from != models.StepCompleted:
		now := s.now()
		completedAt = &now
	case req.Status != models.StepCompleted:
		completedAt = nil
	}

	result, err := s.repo.UpsertStepProgress(ctx, models.StepProgress{
		ClientID:    req.ClientID,
		StepID:      req.StepID,
		Status:      req.Status,
		CompletedAt: completedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// StepLinks возвращает материалы, привязанные к шагам карты.
func (s *Service) StepLinks(ctx context.Context) ([]models.StepLink, error) {
	return s.repo.ListStepLinks(ctx)
}
