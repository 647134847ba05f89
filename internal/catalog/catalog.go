// Package catalog holds the fixed value sets the generators sample from.
package catalog

import (
	"fmt"
	"sort"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
)

// Category names a registered value set.
type Category string

// Registered categories.
const (
	City          Category = "city"
	AccessCity    Category = "access_city"
	Institution   Category = "institution"
	TicketSubject Category = "ticket_subject"
	TicketStatus  Category = "ticket_status"
	Agent         Category = "agent"
	MLModel       Category = "ml_model"
	UsageLevel    Category = "usage_level"
	AccessStatus  Category = "access_status"
	SOCAlert      Category = "soc_alert"
)

var registry = map[Category][]string{
	City:        {"CDMX", "Guadalajara", "Monterrey", "Querétaro", "Cancún", "Tijuana"},
	AccessCity:  {"CDMX", "Monterrey", "Guadalajara", "Toluca"},
	Institution: {"Banco Azteca", "BBVA", "Santander", "Banorte", "HSBC", "Scotiabank"},
	TicketSubject: {
		"Acceso bloqueado",
		"Tarjeta clonada",
		"Error en app móvil",
		"Consulta de saldo",
		"Transferencia rechazada",
		"Fraude en e-commerce",
	},
	TicketStatus: {"Open", "InProgress", "Closed"},
	Agent:        {"Ana", "Luis", "Marta", "Carlos", "Rocío"},
	MLModel: {
		"Regresión logística",
		"Árbol de decisión",
		"Random Forest",
		"KMeans",
		"XGBoost",
	},
	UsageLevel:   {"High", "Medium", "Low"},
	AccessStatus: {"Allowed", "Suspicious"},
	SOCAlert: {
		"Múltiples accesos sospechosos desde el mismo dispositivo",
		"Intentos de retiro fallidos en cajeros CDMX",
		"Compra internacional en horario atípico",
		"Transferencia repetitiva en cuentas relacionadas",
		"Fraude recurrente detectado en tarjetas virtuales",
	},
}

// All returns the ordered values of a category. The slice is a copy.
func All(category Category) ([]string, error) {
	values, ok := registry[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}

// MustAll is All for categories known at compile time.
// It panics on an unregistered category, which is a programming error.
func MustAll(category Category) []string {
	values, err := All(category)
	if err != nil {
		panic(err)
	}
	return values
}

// Categories lists the registered category names in sorted order.
func Categories() []Category {
	names := make([]Category, 0, len(registry))
	for c := range registry {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Choice draws a value uniformly from a category.
func Choice(category Category, src *randsrc.Source) (string, error) {
	values, ok := registry[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}
	return randsrc.Pick(src, values)
}

// WeightedChoice draws a value from a category with one weight per value.
func WeightedChoice(category Category, weights []float64, src *randsrc.Source) (string, error) {
	values, ok := registry[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}
	if len(weights) != len(values) {
		return "", fmt.Errorf("%w: %d weights for %d %s values",
			common.ErrInvalidParameter, len(weights), len(values), category)
	}

	idx, err := src.Choice(weights)
	if err != nil {
		return "", fmt.Errorf("choosing %s: %w", category, err)
	}
	return values[idx], nil
}
