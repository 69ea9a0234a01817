package domain

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusPreparing BookingStatus = "preparing"
	StatusReady     BookingStatus = "ready"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentFullyPaid   PaymentStatus = "fully_paid"
)

// statusTransitions encodes the forward-only fulfillment lifecycle:
// pending -> confirmed -> preparing -> ready -> completed, with cancelled
// reachable from any non-terminal state.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:     {PaymentDepositPaid, PaymentFullyPaid},
	PaymentDepositPaid: {PaymentFullyPaid},
	PaymentFullyPaid:   {},
}

func (s BookingStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the fulfillment machine allows moving from
// s to next. Unknown values never transition.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
