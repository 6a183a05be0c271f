package usecase

import (
	"context"

	"secops-console/internal/audit"
	"secops-console/internal/audit/repository"
	"secops-console/internal/model"
	"secops-console/internal/role"

	"github.com/google/uuid"
)

// Log appends one entry to the trail. A failing sink is swallowed here:
// the caller's dispatch or acknowledge path must not observe it.
func (uc *implUseCase) Log(ctx context.Context, entry model.AuditEntry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = uc.clock()
	}

	if err := uc.repo.Insert(ctx, entry); err != nil {
		uc.dropped.Add(1)
		uc.unhealthy.Store(true)
		uc.l.Errorf(ctx, "internal.audit.usecase.Log: %v", err)
		return
	}
	uc.unhealthy.Store(false)
}

// Trail returns a page of the audit trail, newest first. Admin only.
func (uc *implUseCase) Trail(ctx context.Context, sc model.Scope, ip audit.TrailInput) (audit.TrailOutput, error) {
	if !role.CanViewAudit(sc.Role) {
		uc.Log(ctx, model.AuditEntry{
			ActorID: sc.UserID,
			Action:  model.AuditActionAuditView,
			Outcome: model.AuditOutcomeDenied,
		})
		return audit.TrailOutput{}, audit.ErrPermissionDenied
	}

	entries, pag, err := uc.repo.Get(ctx, repository.GetOptions{
		Filter:        ip.Filter,
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.audit.usecase.Trail: %v", err)
		return audit.TrailOutput{}, err
	}

	uc.Log(ctx, model.AuditEntry{
		ActorID: sc.UserID,
		Action:  model.AuditActionAuditView,
		Outcome: model.AuditOutcomeOK,
	})

	return audit.TrailOutput{Entries: entries, Paginator: pag}, nil
}

// Healthy reports whether the most recent sink write succeeded.
func (uc *implUseCase) Healthy() bool {
	return !uc.unhealthy.Load()
}
