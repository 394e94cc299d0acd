package entity

import "time"

// ClientInfo cabecera del documento: referencia del presupuesto y datos del
// cliente. Es puramente descriptiva; no interviene en la aritmética.
type ClientInfo struct {
	Reference    string // número/referencia del presupuesto
	Name         string
	Address      string
	City         string
	Date         time.Time
	ValidityDays int
}

// DefaultValidityDays validez del presupuesto cuando no se indica otra.
const DefaultValidityDays = 30
