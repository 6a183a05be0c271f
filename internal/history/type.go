package history

import (
	"secops-console/internal/model"
	"secops-console/pkg/paginator"
)

// RetentionCap is the maximum number of records kept per user. The oldest
// records are evicted first once the cap is exceeded.
const RetentionCap = 200

type ListInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Records   []model.AlertRecord
	Paginator paginator.Paginator
}
