package item

import "sharevault/internal/domain/item"

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Title   string `json:"title" minLength:"1" doc:"Item title"`
	Content string `json:"content" minLength:"1" doc:"Sensitive text payload"`
}

type itemOutput struct {
	Body item.Item
}

type listInput struct {
	Skip  int `query:"skip" minimum:"0" doc:"Number of items to skip"`
	Limit int `query:"limit" minimum:"0" maximum:"500" doc:"Page size, defaults to 100"`
}

type listOutput struct {
	Body item.ListResponse
}

type updateInput struct {
	ID   int `path:"id" doc:"Item ID"`
	Body updateRequest
}

type updateRequest struct {
	Title   *string `json:"title,omitempty" doc:"New title"`
	Content *string `json:"content,omitempty" doc:"New content"`
}
