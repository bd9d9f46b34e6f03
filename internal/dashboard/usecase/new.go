package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"my-daily-planner/internal/dashboard"
	"my-daily-planner/internal/store"
	"my-daily-planner/pkg/datemath"
	"my-daily-planner/pkg/gemini"
	pkgLog "my-daily-planner/pkg/log"
)

const (
	stateCacheSize = 16
	stateTTL       = 24 * time.Hour
)

// viewState is what the dashboard remembers about one range on one day.
type viewState struct {
	version        uint64
	summary        dashboard.SummaryOutput
	analysis       string
	analysisFailed bool
}

type implUseCase struct {
	l     pkgLog.Logger
	store *store.Store
	clock *datemath.Clock
	ai    gemini.IGemini

	mu        sync.Mutex
	states    *expirable.LRU[string, viewState]
	version   uint64
	analyzing atomic.Bool
}

// New creates a new dashboard UseCase instance. ai may be nil when no API
// key is configured; Analyze then reports the missing key.
func New(l pkgLog.Logger, st *store.Store, clock *datemath.Clock, ai gemini.IGemini) dashboard.UseCase {
	return &implUseCase{
		l:      l,
		store:  st,
		clock:  clock,
		ai:     ai,
		states: expirable.NewLRU[string, viewState](stateCacheSize, nil, stateTTL),
	}
}

// stateKey scopes cached state to the civil day so a new day starts clean.
func (uc *implUseCase) stateKey(r datemath.Range) string {
	return string(r) + "@" + uc.clock.TodayKey()
}
