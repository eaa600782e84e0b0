package selector

import (
	"context"
	"fmt"

	"location-selector/models"
)

// Source loads option lists. *api.Client satisfies it.
type Source interface {
	Countries(ctx context.Context) ([]models.LocationName, error)
	States(ctx context.Context, country models.LocationName) ([]models.LocationName, error)
	Cities(ctx context.Context, country, state models.LocationName) ([]models.LocationName, error)
}

// Fetch performs req against src. It blocks; callers on an event loop run
// it off the loop and feed the Result back through Apply.
func Fetch(ctx context.Context, src Source, req Request) Result {
	var (
		names []models.LocationName
		err   error
	)

	switch req.Level {
	case models.LevelCountry:
		names, err = src.Countries(ctx)
	case models.LevelState:
		names, err = src.States(ctx, req.Country)
	case models.LevelCity:
		names, err = src.Cities(ctx, req.Country, req.State)
	default:
		err = fmt.Errorf("unknown level %d", req.Level)
	}

	return Result{Request: req, Names: names, Err: err}
}
