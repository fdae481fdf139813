package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("otica@example.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "otica@example.com", user.Email)
	assert.Equal(t, "senha123", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewUser_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewUser("", "senha123")
	assert.ErrorIs(t, err, ErrEmptyEmail)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewUser("otica@example.com", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestUserValidate_HashedPasswordSuffices(t *testing.T) {
	t.Parallel()

	// After registration the plaintext is discarded; the digest alone
	// must keep the user valid.
	user := &User{Email: "otica@example.com", HashedPassword: "$2a$10$digest"}
	assert.NoError(t, user.Validate())
}

func TestProfileValidateForRegistration(t *testing.T) {
	t.Parallel()

	valid := Profile{
		TipoPessoa:   "fisica",
		NomeCompleto: "Maria Souza",
		CpfCnpj:      "12345678901",
	}

	testCases := []struct {
		name    string
		mutate  func(*Profile)
		wantErr error
	}{
		{name: "valid", mutate: func(p *Profile) {}, wantErr: nil},
		{
			name:    "missing tipo_pessoa",
			mutate:  func(p *Profile) { p.TipoPessoa = "" },
			wantErr: ErrEmptyTipoPessoa,
		},
		{
			name:    "missing nome_completo",
			mutate:  func(p *Profile) { p.NomeCompleto = "" },
			wantErr: ErrEmptyNomeCompleto,
		},
		{
			name:    "missing cpf_cnpj",
			mutate:  func(p *Profile) { p.CpfCnpj = "" },
			wantErr: ErrEmptyCpfCnpj,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := valid
			tc.mutate(&p)

			err := p.ValidateForRegistration()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestProfileValidateForUpdate(t *testing.T) {
	t.Parallel()

	// Only nome_completo matters on update; identity fields may be
	// empty because they are not part of the update payload.
	p := Profile{NomeCompleto: "Maria Souza"}
	assert.NoError(t, p.ValidateForUpdate())

	p.NomeCompleto = ""
	assert.ErrorIs(t, p.ValidateForUpdate(), ErrEmptyNomeCompleto)
}

func TestOrcamentoValidate(t *testing.T) {
	t.Parallel()

	o := Orcamento{GrauEsfericoOD: "-2.00", GrauEsfericoOE: "-1.75"}
	assert.NoError(t, o.Validate())

	o.GrauEsfericoOD = ""
	assert.ErrorIs(t, o.Validate(), ErrMissingGrauEsferico)

	o = Orcamento{GrauEsfericoOD: "-2.00"}
	assert.ErrorIs(t, o.Validate(), ErrMissingGrauEsferico)
}
