package app

type ChangeOutcome string

const (
	OutcomeDispatched          ChangeOutcome = "dispatched"
	OutcomeSkippedNoRecipients ChangeOutcome = "skipped_no_recipients"
	OutcomeSkippedNoEndpoints  ChangeOutcome = "skipped_no_endpoints"
	OutcomeLookupFailed        ChangeOutcome = "lookup_failed"
	OutcomeTransportFailed     ChangeOutcome = "transport_failed"
)

type ChangeOutput struct {
	Outcome        ChangeOutcome
	Action         string
	RecipientCount int
	EndpointCount  int
	LookupFailures int
	AcceptedCount  int
	RejectedCount  int
	InvalidCount   int
}
