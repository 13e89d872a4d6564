package lead

type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusNegotiating Status = "negotiating"
	StatusClosed      Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusNegotiating, StatusClosed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// AllStatuses returns every pipeline stage in board-column order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusContacted, StatusNegotiating, StatusClosed}
}
