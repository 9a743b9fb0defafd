package domain

type SendStatus string

const (
	SendAccepted        SendStatus = "accepted"
	SendRejected        SendStatus = "rejected"
	SendEndpointInvalid SendStatus = "invalid"
)

type EndpointResult struct {
	Endpoint  Endpoint
	Status    SendStatus
	MessageID string
	Err       error
}

// MulticastMessage is a single transport request covering every endpoint.
type MulticastMessage struct {
	Endpoints []Endpoint
	Title     string
	Body      string
	Data      map[string]string
}

type DispatchReport struct {
	Results []EndpointResult
}

func NewDispatchReport(results []EndpointResult) DispatchReport {
	return DispatchReport{Results: results}
}

func (r DispatchReport) IsEmpty() bool {
	return len(r.Results) == 0
}

func (r DispatchReport) Count(status SendStatus) int {
	n := 0

	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}

	return n
}

func (r DispatchReport) AcceptedCount() int {
	return r.Count(SendAccepted)
}

func (r DispatchReport) RejectedCount() int {
	return r.Count(SendRejected)
}

func (r DispatchReport) InvalidEndpoints() []Endpoint {
	var invalid []Endpoint

	for _, res := range r.Results {
		if res.Status == SendEndpointInvalid {
			invalid = append(invalid, res.Endpoint)
		}
	}

	return invalid
}
