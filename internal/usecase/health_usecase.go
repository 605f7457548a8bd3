package usecase

import (
	"context"
	"time"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	// Check pings every dependency. ok is false when any of them failed.
	Check(ctx context.Context) (status map[string]string, ok bool)
}

type healthUsecase struct {
	deps map[string]Pinger
}

// NewHealthUsecase takes named dependencies; nil entries are reported as "disabled".
func NewHealthUsecase(deps map[string]Pinger) HealthUsecase {
	return &healthUsecase{deps: deps}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	ok := true
	for name, dep := range u.deps {
		if dep == nil {
			status[name] = "disabled"
			continue
		}
		if err := dep.Ping(ctx); err != nil {
			status[name] = "error: " + err.Error()
			ok = false
			continue
		}
		status[name] = "ok"
	}
	if !ok {
		status["status"] = "degraded"
	}
	return status, ok
}
