// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

// CommandResponse is one page mutation in HTTP responses.
type CommandResponse struct {
	Op      string            `json:"op"`
	Target  string            `json:"target,omitempty"`
	Name    string            `json:"name,omitempty"`
	Value   string            `json:"value,omitempty"`
	HTML    string            `json:"html,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	DelayMS int64             `json:"delay_ms,omitempty"`
	Then    []CommandResponse `json:"then,omitempty"`
}

// PatchResponse is the ordered command list returned for every event.
type PatchResponse struct {
	Commands []CommandResponse `json:"commands"`
}

// ToPatchResponse converts a domain patch to an HTTP response DTO. The
// command list is never null so the browser adapter can iterate it directly.
func ToPatchResponse(p ui.Patch) PatchResponse {
	return PatchResponse{Commands: toCommandResponses(p)}
}

func toCommandResponses(cmds []ui.Command) []CommandResponse {
	out := make([]CommandResponse, len(cmds))
	for i, c := range cmds {
		out[i] = CommandResponse{
			Op:      string(c.Op),
			Target:  c.Target,
			Name:    c.Name,
			Value:   c.Value,
			HTML:    c.HTML,
			Attrs:   c.Attrs,
			DelayMS: c.Delay.Milliseconds(),
		}
		if len(c.Then) > 0 {
			out[i].Then = toCommandResponses(c.Then)
		}
	}
	return out
}

// EntryResponse represents one catalog entry in HTTP responses.
type EntryResponse struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Markup string `json:"markup"`
}

// ToEntryResponse converts a catalog entry to an HTTP response DTO.
func ToEntryResponse(e catalog.Entry) EntryResponse {
	return EntryResponse{
		Key:    e.Key,
		Title:  e.Title,
		Markup: e.Markup,
	}
}

// Readiness states.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// ReadinessResponse is the body of GET /health/ready. Each check maps to
// "ok" or its failure message.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Ready reports whether every check passed.
func (r ReadinessResponse) Ready() bool { return r.Status == StatusReady }

// ToReadinessResponse summarizes health check results.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{Status: StatusReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = StatusNotReady
			continue
		}
		resp.Checks[name] = StatusOK
	}
	return resp
}
