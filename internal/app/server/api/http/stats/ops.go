package stats

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "stats-get",
		Method:      http.MethodGet,
		Path:        "/vault/stats",
		Summary:     "Aggregate counts for the owning user",
		Tags:        []string{"stats"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
