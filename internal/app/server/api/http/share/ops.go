package share

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "shares-create",
		Method:      http.MethodPost,
		Path:        "/vault/share",
		Summary:     "Create a share link for an owned item",
		Tags:        []string{"shares"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listForItemOp() huma.Operation {
	return huma.Operation{
		OperationID: "shares-list-for-item",
		Method:      http.MethodGet,
		Path:        "/vault/items/{id}/shares",
		Summary:     "List share links of an item with derived status",
		Tags:        []string{"shares"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "shares-update",
		Method:      http.MethodPut,
		Path:        "/vault/shares/{id}",
		Summary:     "Update share link fields",
		Description: "Partial update: only supplied fields change. Setting is_active to false revokes the link.",
		Tags:        []string{"shares"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "shares-delete",
		Method:      http.MethodDelete,
		Path:        "/vault/shares/{id}",
		Summary:     "Soft-delete a share link",
		Description: "Hides the link from every future lookup. Its audit history is retained.",
		Tags:        []string{"shares"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
