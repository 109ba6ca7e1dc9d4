package domain

import "fmt"

// allowedTransitions is the single source of truth for legal status edges.
// paid and rejected are terminal.
var allowedTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusPending:  {TicketStatusApproved, TicketStatusRejected},
	TicketStatusApproved: {TicketStatusPaid, TicketStatusRejected},
	TicketStatusPaid:     {},
	TicketStatusRejected: {},
}

// TransitionError reports an illegal status edge. It always carries both
// endpoints so callers can branch on the cause.
type TransitionError struct {
	From TicketStatus
	To   TicketStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal ticket transition: %s -> %s", e.From, e.To)
}

func CanTransition(from, to TicketStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func AssertTransition(from, to TicketStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// TransitionSources returns every status from which `to` is reachable.
// Repositories use it to re-validate an edge inside the UPDATE itself.
func TransitionSources(to TicketStatus) []TicketStatus {
	var res []TicketStatus
	for _, from := range AllStatuses {
		if CanTransition(from, to) {
			res = append(res, from)
		}
	}
	return res
}

// Transition returns a copy of the ticket with the new status. It never
// mutates its argument and never persists anything.
func Transition(t *Ticket, to TicketStatus) (*Ticket, error) {
	if err := AssertTransition(t.Status, to); err != nil {
		return nil, err
	}
	next := *t
	next.Status = to
	return &next, nil
}

func Approve(t *Ticket) (*Ticket, error) {
	return Transition(t, TicketStatusApproved)
}

func Reject(t *Ticket) (*Ticket, error) {
	return Transition(t, TicketStatusRejected)
}

func MarkPaid(t *Ticket) (*Ticket, error) {
	return Transition(t, TicketStatusPaid)
}

// MarkPaidIdempotent returns the ticket unchanged if it is already paid,
// otherwise applies the normal paid transition. This is what makes webhook
// redelivery safe.
func MarkPaidIdempotent(t *Ticket) (*Ticket, error) {
	if t.Status == TicketStatusPaid {
		return t, nil
	}
	return MarkPaid(t)
}
