package public

import (
	"sharevault/internal/domain/access"
	"sharevault/internal/domain/share"
)

type metadataInput struct {
	Token string `path:"token" doc:"Share link token"`
}

type metadataOutput struct {
	Body share.Metadata
}

type accessInput struct {
	Token string `path:"token" doc:"Share link token"`
	Body  accessRequest
}

type accessRequest struct {
	Password string `json:"password,omitempty" doc:"Link password, when the link is protected"`
}

type accessOutput struct {
	Body access.Content
}
