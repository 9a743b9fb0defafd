package handler

import "github.com/KasumiMercury/primind-calendar-notify/internal/app"

type ChangeResponse struct {
	Outcome        string `json:"outcome"`
	Action         string `json:"action,omitempty"`
	RecipientCount int    `json:"recipient_count"`
	EndpointCount  int    `json:"endpoint_count"`
	LookupFailures int    `json:"lookup_failures"`
	AcceptedCount  int    `json:"accepted_count"`
	RejectedCount  int    `json:"rejected_count"`
	InvalidCount   int    `json:"invalid_count"`
}

func FromChangeOutput(output app.ChangeOutput) ChangeResponse {
	return ChangeResponse{
		Outcome:        string(output.Outcome),
		Action:         output.Action,
		RecipientCount: output.RecipientCount,
		EndpointCount:  output.EndpointCount,
		LookupFailures: output.LookupFailures,
		AcceptedCount:  output.AcceptedCount,
		RejectedCount:  output.RejectedCount,
		InvalidCount:   output.InvalidCount,
	}
}
