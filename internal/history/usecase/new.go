package usecase

import (
	"hash/fnv"
	"sync"
	"time"

	"secops-console/internal/audit"
	"secops-console/internal/history"
	"secops-console/internal/history/repository"
	pkgLog "secops-console/pkg/log"
)

// lockStripes is the number of mutexes user IDs hash onto. Inserts for
// one user always take the same stripe, which serializes the
// insert-then-evict sequence without a global lock.
const lockStripes = 64

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	audit   audit.UseCase
	stripes [lockStripes]sync.Mutex
	clock   func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, auditUC audit.UseCase) history.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		audit: auditUC,
		clock: time.Now,
	}
}

func (uc *implUseCase) stripe(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &uc.stripes[h.Sum32()%lockStripes]
}
