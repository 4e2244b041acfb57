package audit

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listForItemOp() huma.Operation {
	return huma.Operation{
		OperationID: "audit-list-for-item",
		Method:      http.MethodGet,
		Path:        "/vault/items/{id}/logs",
		Summary:     "Audit trail of an item's share links",
		Description: "Every access attempt against the item's links, newest first, including links that were since soft-deleted.",
		Tags:        []string{"audit"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
