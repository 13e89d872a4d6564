package commands

import (
	"context"

	"leadpipe/internal/domain/lead"
	reqdto "leadpipe/internal/handler/dto/request"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"
	"leadpipe/internal/pkg/clock"
	"leadpipe/internal/pkg/errs"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLeadNotFound            = errs.New("lead not found")
	ErrInvalidStatus           = errs.New("invalid lead status")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type LeadRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *lead.Lead) error
	// FindByID loads the full aggregate for mutation.
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*lead.Lead, error)
	// Update persists status, history, notes and updatedAt in a single
	// statement so no reader can see a status without its history entry.
	Update(ctx context.Context, tx db.DBTX, l *lead.Lead) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type LeadCommands interface {
	Create(ctx context.Context, req reqdto.CreateLeadRequest) (*queries.LeadView, error)
	// Update reports whether the status actually moved; a PATCH that
	// repeats the current status is accepted but not a transition.
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateLeadRequest) (*queries.LeadView, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type leadCommandsImpl struct {
	repo        LeadRepository
	leadQueries queries.LeadQueries
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewLeadCommands(
	repo LeadRepository,
	leadQueries queries.LeadQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) LeadCommands {
	return &leadCommandsImpl{
		repo:        repo,
		leadQueries: leadQueries,
		pool:        pool,
		clock:       clock,
	}
}

func (c *leadCommandsImpl) Create(ctx context.Context, req reqdto.CreateLeadRequest) (*queries.LeadView, error) {
	contact, err := lead.NewContactInfo(
		req.Name, req.Role, req.Company, req.Phone, req.Email, req.Service, req.Message,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity := lead.NewLead(contact, c.clock.Now())
	if err := c.repo.Create(ctx, c.pool, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.leadQueries.Get(ctx, entity.ID())
}

func (c *leadCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateLeadRequest) (*queries.LeadView, bool, error) {
	// Reject a malformed status before touching the store so the caller
	// gets a validation error even when the lead does not exist.
	var status lead.Status
	if req.Status != nil {
		parsed, statusErr := lead.NewStatus(*req.Status)
		if statusErr != nil {
			return nil, false, errs.Mark(statusErr, ErrInvalidStatus)
		}
		status = parsed
	}

	entity, err := c.repo.FindByID(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, ErrLeadNotFound
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	mutated := false
	statusChanged := false

	if req.Status != nil {
		changed, changeErr := entity.ChangeStatus(status, c.clock.Now())
		if changeErr != nil {
			return nil, false, errs.Mark(changeErr, ErrInvalidStatus)
		}
		statusChanged = changed
		mutated = mutated || changed
	}

	if req.Notes != nil {
		entity.Annotate(*req.Notes, c.clock.Now())
		mutated = true
	}

	if mutated {
		if err := c.repo.Update(ctx, c.pool, entity); err != nil {
			return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	view, err := c.leadQueries.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return view, statusChanged, nil
}

func (c *leadCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLeadNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
