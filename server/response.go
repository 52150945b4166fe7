package server

import (
	"github.com/tsawler/minidock"
	"github.com/tsawler/minidock/model"
	"github.com/tsawler/minidock/render"
)

// extractResponse is the document schema shared with the command-line
// tool, plus the request id and warnings.
type extractResponse struct {
	RequestID string `json:"request_id"`
	render.DocumentJSON
	Warnings []warningJSON `json:"warnings"`
}

type warningJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newExtractResponse(id string, doc *model.Document, warnings []minidock.Warning) extractResponse {
	resp := extractResponse{
		RequestID:    id,
		DocumentJSON: render.NewDocumentJSON(doc),
		Warnings:     make([]warningJSON, 0, len(warnings)),
	}
	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, warningJSON{Code: string(w.Code), Message: w.Message})
	}
	return resp
}
