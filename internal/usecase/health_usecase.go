package usecase

import "context"

// HealthProbe reports the state of one dependency.
type HealthProbe func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	probes map[string]HealthProbe
}

// NewHealthUsecase builds a health check over the named probes. A nil
// probe marks a dependency that is not configured.
func NewHealthUsecase(probes map[string]HealthProbe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status": "ok",
	}
	for name, probe := range u.probes {
		switch {
		case probe == nil:
			result[name] = "disabled"
		case probe(ctx) != nil:
			result[name] = "down"
			result["status"] = "degraded"
		default:
			result[name] = "up"
		}
	}
	return result
}
