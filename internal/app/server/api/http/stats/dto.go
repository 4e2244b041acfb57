package stats

import "sharevault/internal/domain/stats"

type getInput struct{}

type getOutput struct {
	Body stats.Stats
}
