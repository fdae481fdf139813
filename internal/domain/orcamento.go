package domain

import (
	"fmt"
	"time"
)

// ErrMissingGrauEsferico is returned when either eye's spherical power
// is absent from an orcamento.
var ErrMissingGrauEsferico = fmt.Errorf("%w: graus esféricos are required", ErrValidation)

// Orcamento is a lens/frame price quote tied to a patient's
// prescription. It is owned by a single user and is only visible or
// mutable through that user's session.
//
// Prescription and price fields are free-form strings: beyond the two
// mandatory spherical powers they carry whatever the caller sent, with
// no typing or normalization applied.
type Orcamento struct {
	ID               int64     `json:"id"`
	UsuarioID        int64     `json:"usuario_id"`
	GrauEsfericoOD   string    `json:"grau_esferico_od"`
	GrauEsfericoOE   string    `json:"grau_esferico_oe"`
	GrauCilindricoOD string    `json:"grau_cilindrico_od"`
	GrauCilindricoOE string    `json:"grau_cilindrico_oe"`
	EixoOD           string    `json:"eixo_od"`
	EixoOE           string    `json:"eixo_oe"`
	DnpOD            string    `json:"dnp_od"`
	DnpOE            string    `json:"dnp_oe"`
	Adicao           string    `json:"adicao"`
	TipoLente        string    `json:"tipo_lente"`
	MaterialLente    string    `json:"material_lente"`
	TratamentoLente  string    `json:"tratamento_lente"`
	Observacoes      string    `json:"observacoes"`
	ValorLente       string    `json:"valor_lente"`
	ValorArmacao     string    `json:"valor_armacao"`
	NomeCliente      string    `json:"nome_cliente"`
	CpfCliente       string    `json:"cpf_cliente"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Validate checks that both spherical powers are present. No other
// field-level validation is performed.
func (o *Orcamento) Validate() error {
	if o.GrauEsfericoOD == "" || o.GrauEsfericoOE == "" {
		return ErrMissingGrauEsferico
	}
	return nil
}
