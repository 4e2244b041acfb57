package audit

import "sharevault/internal/domain/audit"

type listForItemInput struct {
	ID int `path:"id" doc:"Item ID"`
}

type listForItemOutput struct {
	Body listForItemResponse
}

type listForItemResponse struct {
	Logs  []audit.Entry `json:"logs"`
	Total int           `json:"total"`
}
