package usecase

import (
	"secops-console/internal/model"
	pkgErrors "secops-console/pkg/errors"

	"github.com/google/uuid"
)

// Classify validates a raw event and derives the canonical alert. Unknown
// categories are kept as-is: they still score (with zero category weight)
// but no role's capability table covers them, so they reach nobody.
func (uc *implUseCase) Classify(event model.RawEvent) (model.Alert, error) {
	collector := pkgErrors.NewValidationErrorCollector()
	if event.Type == "" {
		collector.Add(pkgErrors.NewValidationError(400, "type", "is required"))
	}
	sev, err := model.ParseSeverity(event.Severity)
	if err != nil {
		collector.Add(pkgErrors.NewValidationError(400, "severity", err.Error()))
	}
	if collector.HasError() {
		return model.Alert{}, collector
	}

	createdAt := event.DetectedAt
	if createdAt.IsZero() {
		createdAt = uc.clock()
	}

	return model.Alert{
		ID:            uuid.NewString(),
		EventID:       event.ID,
		Type:          event.Type,
		Category:      event.Category,
		Severity:      sev,
		PriorityScore: model.PriorityScore(sev, event.Category),
		Source:        event.Source,
		CreatedAt:     createdAt,
	}, nil
}
