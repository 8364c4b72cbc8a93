package lifecycle

// Status represents an invoice's position in its lifecycle
type Status string

const (
	StatusCreated   Status = "created"
	StatusInvoiced  Status = "invoiced"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

var validStatuses = map[Status]bool{
	StatusCreated:   true,
	StatusInvoiced:  true,
	StatusCompleted: true,
	StatusPaid:      true,
	StatusCancelled: true,
}

var terminalStatuses = map[Status]bool{
	StatusCompleted: true,
	StatusPaid:      true,
	StatusCancelled: true,
}

// IsTerminal returns true if no further transitions are allowed from the status
func (s Status) IsTerminal() bool {
	return terminalStatuses[s]
}

// IsValid returns true if the status is a known lifecycle status
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}
