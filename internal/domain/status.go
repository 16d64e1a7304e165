package domain

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// transitions is the forward-only order lifecycle. Cancelled is reachable
// from every non-terminal state; delivered and cancelled are absorbing.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
