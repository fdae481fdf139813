package domain

import (
	"fmt"
	"time"
)

// Profile validation errors.
var (
	ErrEmptyTipoPessoa   = fmt.Errorf("%w: tipo_pessoa cannot be empty", ErrValidation)
	ErrEmptyNomeCompleto = fmt.Errorf("%w: nome_completo cannot be empty", ErrValidation)
	ErrEmptyCpfCnpj      = fmt.Errorf("%w: cpf_cnpj cannot be empty", ErrValidation)
)

// Profile holds the identity, contact and address data for a user.
// Each user owns exactly one profile, created atomically with the
// account at registration. CpfCnpj (the national taxpayer identifier)
// is unique across all profiles.
//
// JSON field names are the Portuguese names the frontend consumes.
type Profile struct {
	ID                    int64     `json:"id"`
	UsuarioID             int64     `json:"usuario_id"`
	TipoPessoa            string    `json:"tipo_pessoa"`
	NomeCompleto          string    `json:"nome_completo"`
	CpfCnpj               string    `json:"cpf_cnpj"`
	Endereco              string    `json:"endereco"`
	Numero                string    `json:"numero"`
	Complemento           string    `json:"complemento"`
	Bairro                string    `json:"bairro"`
	Cidade                string    `json:"cidade"`
	Estado                string    `json:"estado"`
	Cep                   string    `json:"cep"`
	Telefone              string    `json:"telefone"`
	TelefoneEmpresa       string    `json:"telefone_empresa"`
	Whatsapp              string    `json:"whatsapp"`
	MostrarDadosOrcamento bool      `json:"mostrar_dados_orcamento"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ValidateForRegistration checks the identity fields required when the
// profile is created alongside a new account.
func (p *Profile) ValidateForRegistration() error {
	if p.TipoPessoa == "" {
		return ErrEmptyTipoPessoa
	}
	if p.NomeCompleto == "" {
		return ErrEmptyNomeCompleto
	}
	if p.CpfCnpj == "" {
		return ErrEmptyCpfCnpj
	}
	return nil
}

// ValidateForUpdate checks the fields required on a profile overwrite.
// Only nome_completo is mandatory.
func (p *Profile) ValidateForUpdate() error {
	if p.NomeCompleto == "" {
		return ErrEmptyNomeCompleto
	}
	return nil
}
