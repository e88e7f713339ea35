package models

import (
	"encoding/json"
)

// AccountKind selects the index namespace in the store and the identifier
// format used for validation. Values match what the store holds in the
// tipoCuenta field.
type AccountKind string

const (
	KindSavings  AccountKind = "ahorro"
	KindChecking AccountKind = "corriente"
	KindCard     AccountKind = "tarjeta"
)

// storedFields is the fixed schema of a movement hash. Anything else on the
// record is an optional extension.
var storedFields = map[string]struct{}{
	"id":              {},
	"tipoCuenta":      {},
	"cuenta":          {},
	"fecha":           {},
	"descripcion":     {},
	"monto":           {},
	"tipo":            {},
	"referencia":      {},
	"establecimiento": {},
	"saldoPosterior":  {},
}

// IsStoredField reports whether name belongs to the fixed movement schema.
func IsStoredField(name string) bool {
	_, ok := storedFields[name]
	return ok
}

// MovementSummary is the list projection: no balance, reference truncated.
type MovementSummary struct {
	ID          string  `json:"id"`
	Fecha       string  `json:"fecha"`
	Descripcion string  `json:"descripcion"`
	Monto       float64 `json:"monto"`
	Tipo        string  `json:"tipo"`
	Referencia  string  `json:"referencia"`
}

// MovementDetail is the full projection of one movement. The owning account
// fields (tipoCuenta, cuenta) are checked by the service and never exposed.
//
// Extras carries optional stored fields outside the fixed schema; they are
// merged into the JSON object at serialization time and can never shadow a
// schema field.
type MovementDetail struct {
	ID              string  `json:"id"`
	Fecha           string  `json:"fecha"`
	Descripcion     string  `json:"descripcion"`
	Monto           float64 `json:"monto"`
	Tipo            string  `json:"tipo"`
	Referencia      string  `json:"referencia"`
	Establecimiento string  `json:"establecimiento,omitempty"`
	SaldoPosterior  float64 `json:"saldoPosterior"`

	Extras map[string]string `json:"-"`
}

func (d MovementDetail) MarshalJSON() ([]byte, error) {
	type alias MovementDetail
	b, err := json.Marshal(alias(d))
	if err != nil || len(d.Extras) == 0 {
		return b, err
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	for k, v := range d.Extras {
		if IsStoredField(k) {
			continue
		}
		obj[k] = v
	}
	return json.Marshal(obj)
}
