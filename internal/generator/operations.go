package generator

import (
	"fmt"

	"github.com/Veraticus/finsecure-hub/internal/catalog"
	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
)

// TicketParams configures the support ticket table.
type TicketParams struct {
	StatusWeights   []float64
	ResponseMinutes IntRange
	Count           int
}

// DefaultTicketParams returns 15 tickets, 40% open, 40% in progress,
// 20% closed, answered within 5 to 59 minutes.
func DefaultTicketParams() TicketParams {
	return TicketParams{
		Count:           15,
		StatusWeights:   []float64{0.4, 0.4, 0.2},
		ResponseMinutes: IntRange{Min: 5, Max: 59},
	}
}

// Validate checks the parameters without drawing anything.
func (p TicketParams) Validate() error {
	if err := validateCount("ticket count", p.Count); err != nil {
		return err
	}
	if err := p.ResponseMinutes.Validate("response minutes"); err != nil {
		return err
	}
	if p.ResponseMinutes.Min <= 0 {
		return fmt.Errorf("%w: response minutes must be positive, got %d", common.ErrInvalidParameter, p.ResponseMinutes.Min)
	}
	if len(p.StatusWeights) != len(catalog.MustAll(catalog.TicketStatus)) {
		return fmt.Errorf("%w: need one status weight per ticket status", common.ErrInvalidParameter)
	}
	return nil
}

// GenerateTickets draws Count tickets with ids TKT-001, TKT-002, ...
func GenerateTickets(src *randsrc.Source, p TicketParams) ([]model.Ticket, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	subjects := catalog.MustAll(catalog.TicketSubject)
	agents := catalog.MustAll(catalog.Agent)

	rows := make([]model.Ticket, 0, p.Count)
	for i := 1; i <= p.Count; i++ {
		subject, err := randsrc.Pick(src, subjects)
		if err != nil {
			return nil, err
		}
		status, err := catalog.WeightedChoice(catalog.TicketStatus, p.StatusWeights, src)
		if err != nil {
			return nil, err
		}
		agent, err := randsrc.Pick(src, agents)
		if err != nil {
			return nil, err
		}
		minutes, err := src.IntRange(p.ResponseMinutes.Min, p.ResponseMinutes.Max)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.Ticket{
			ID:              fmt.Sprintf("TKT-%03d", i),
			Subject:         subject,
			Status:          model.TicketStatus(status),
			Agent:           agent,
			ResponseMinutes: minutes,
		})
	}
	return rows, nil
}

// accessSubnet is the /24 every generated access comes from.
const accessSubnet = "187.23.45"

// AccessParams configures the recent access log.
type AccessParams struct {
	Users                 []string
	HostOctets            IntRange
	Count                 int
	SuspiciousProbability float64
}

// DefaultAccessParams returns 15 accesses by the default users, 20% suspicious.
func DefaultAccessParams() AccessParams {
	return AccessParams{
		Count:                 15,
		Users:                 Usernames(DefaultUsers()),
		HostOctets:            IntRange{Min: 10, Max: 249},
		SuspiciousProbability: 0.2,
	}
}

// Validate checks the parameters without drawing anything.
func (p AccessParams) Validate() error {
	if err := validateCount("access count", p.Count); err != nil {
		return err
	}
	if p.Count > 0 && len(p.Users) == 0 {
		return fmt.Errorf("%w: access events need at least one known user", common.ErrInvalidParameter)
	}
	if err := p.HostOctets.Validate("host octets"); err != nil {
		return err
	}
	if p.HostOctets.Min < 0 || p.HostOctets.Max > 255 {
		return fmt.Errorf("%w: host octets must lie in 0..255", common.ErrInvalidParameter)
	}
	return randsrc.ValidateProbability("suspicious probability", p.SuspiciousProbability)
}

// GenerateAccessEvents draws Count access events by the given users.
func GenerateAccessEvents(src *randsrc.Source, p AccessParams) ([]model.AccessEvent, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cities := catalog.MustAll(catalog.AccessCity)

	rows := make([]model.AccessEvent, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		user, err := randsrc.Pick(src, p.Users)
		if err != nil {
			return nil, err
		}
		city, err := randsrc.Pick(src, cities)
		if err != nil {
			return nil, err
		}
		host, err := src.IntRange(p.HostOctets.Min, p.HostOctets.Max)
		if err != nil {
			return nil, err
		}
		suspicious, err := src.Bernoulli(p.SuspiciousProbability)
		if err != nil {
			return nil, err
		}

		status := model.AccessAllowed
		if suspicious {
			status = model.AccessSuspicious
		}
		rows = append(rows, model.AccessEvent{
			UserID: user,
			City:   city,
			IP:     fmt.Sprintf("%s.%d", accessSubnet, host),
			Status: status,
		})
	}
	return rows, nil
}

// DefaultUsers is the fixed back-office user table.
func DefaultUsers() []model.UserAccount {
	return []model.UserAccount{
		{Username: "admin01", Role: "Administrador", Access: "Total", Active: true},
		{Username: "soporte02", Role: "Soporte", Access: "Tickets y alertas", Active: true},
		{Username: "fraude03", Role: "SOC", Access: "Fraudes", Active: false},
		{Username: "analista04", Role: "Analista", Access: "ML y reportes", Active: true},
		{Username: "gerente05", Role: "Gerente", Access: "General", Active: true},
	}
}

// Usernames lists the usernames of accounts in order.
func Usernames(accounts []model.UserAccount) []string {
	names := make([]string, 0, len(accounts))
	for _, a := range accounts {
		names = append(names, a.Username)
	}
	return names
}
