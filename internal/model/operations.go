package model

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

// Ticket states.
const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "InProgress"
	TicketClosed     TicketStatus = "Closed"
)

// Ticket is an active support ticket.
type Ticket struct {
	ID              string       `json:"id" yaml:"id"`
	Subject         string       `json:"subject" yaml:"subject"`
	Status          TicketStatus `json:"status" yaml:"status"`
	Agent           string       `json:"agent" yaml:"agent"`
	ResponseMinutes int          `json:"response_minutes" yaml:"response_minutes"`
}

// AccessStatus classifies a login to the back office.
type AccessStatus string

// Access outcomes.
const (
	AccessAllowed    AccessStatus = "Allowed"
	AccessSuspicious AccessStatus = "Suspicious"
)

// AccessEvent is a recent access to the system by a known user.
type AccessEvent struct {
	UserID string       `json:"user_id" yaml:"user_id"`
	City   string       `json:"city" yaml:"city"`
	IP     string       `json:"ip" yaml:"ip"`
	Status AccessStatus `json:"status" yaml:"status"`
}

// UserAccount is a back-office user and the role it holds.
type UserAccount struct {
	Username string `json:"username" yaml:"username"`
	Role     string `json:"role" yaml:"role"`
	Access   string `json:"access" yaml:"access"`
	Active   bool   `json:"active" yaml:"active"`
}
