package public

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) metadataOp() huma.Operation {
	return huma.Operation{
		OperationID: "shared-metadata",
		Method:      http.MethodGet,
		Path:        "/vault/shared/{token}",
		Summary:     "Public link metadata",
		Description: "Safe to show to anyone holding the link: title, password flag, expiry and lock state. Never the content.",
		Tags:        []string{"public"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) accessOp() huma.Operation {
	return huma.Operation{
		OperationID: "shared-access",
		Method:      http.MethodPost,
		Path:        "/vault/shared/{token}/access",
		Summary:     "Attempt to unlock shared content",
		Tags:        []string{"public"},
		Middlewares: h.middleware,
	}
}
