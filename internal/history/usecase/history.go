package usecase

import (
	"context"

	"secops-console/internal/history"
	"secops-console/internal/history/repository"
	"secops-console/internal/model"

	"github.com/google/uuid"
)

func (uc *implUseCase) Record(ctx context.Context, rec model.AlertRecord) (model.AlertRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = uc.clock()
	}

	mu := uc.stripe(rec.UserID)
	mu.Lock()
	defer mu.Unlock()

	if err := uc.repo.Insert(ctx, rec); err != nil {
		uc.l.Errorf(ctx, "internal.history.usecase.Record: %v", err)
		return model.AlertRecord{}, err
	}
	if err := uc.repo.EvictOldest(ctx, rec.UserID, history.RetentionCap); err != nil {
		// The record is stored; a failed eviction only delays trimming
		// until the next insert.
		uc.l.Errorf(ctx, "internal.history.usecase.Record.evict: %v", err)
	}
	return rec, nil
}

func (uc *implUseCase) Acknowledge(ctx context.Context, sc model.Scope, recordID string) (model.AlertRecord, error) {
	rec, err := uc.repo.Get(ctx, recordID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.AlertRecord{}, history.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.history.usecase.Acknowledge: %v", err)
		return model.AlertRecord{}, err
	}

	if rec.UserID != sc.UserID && !sc.IsAdmin() {
		uc.audit.Log(ctx, model.AuditEntry{
			ActorID: sc.UserID,
			Action:  model.AuditActionAcknowledge,
			Target:  recordID,
			Outcome: model.AuditOutcomeDenied,
		})
		return model.AlertRecord{}, history.ErrPermissionDenied
	}

	if rec.Acknowledged {
		return rec, nil
	}

	now := uc.clock()
	changed, err := uc.repo.Acknowledge(ctx, recordID, now)
	if err != nil {
		uc.l.Errorf(ctx, "internal.history.usecase.Acknowledge: %v", err)
		return model.AlertRecord{}, err
	}
	if changed {
		rec.Acknowledged = true
		rec.AcknowledgedAt = &now
		uc.audit.Log(ctx, model.AuditEntry{
			ActorID: sc.UserID,
			Action:  model.AuditActionAcknowledge,
			Target:  recordID,
			Outcome: model.AuditOutcomeOK,
		})
	}
	return rec, nil
}

func (uc *implUseCase) AcknowledgeAll(ctx context.Context, sc model.Scope) (int64, error) {
	count, err := uc.repo.AcknowledgeAll(ctx, sc.UserID, uc.clock())
	if err != nil {
		uc.l.Errorf(ctx, "internal.history.usecase.AcknowledgeAll: %v", err)
		return 0, err
	}
	uc.audit.Log(ctx, model.AuditEntry{
		ActorID: sc.UserID,
		Action:  model.AuditActionAcknowledgeAll,
		Target:  sc.UserID,
		Outcome: model.AuditOutcomeOK,
	})
	return count, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, ip history.ListInput) (history.ListOutput, error) {
	records, pag, err := uc.repo.List(ctx, repository.ListOptions{
		UserID:        sc.UserID,
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.history.usecase.List: %v", err)
		return history.ListOutput{}, err
	}
	return history.ListOutput{Records: records, Paginator: pag}, nil
}
