package api

import (
	"errors"
	"net/http"

	"github.com/optiq-app/optiq-api/internal/service/auth"
	"github.com/optiq-app/optiq-api/internal/store"
)

// User-facing messages. Every failure maps to one of these; raw error
// detail never leaves the server.
const (
	msgCamposFaltando         = "Campos obrigatórios faltando."
	msgEmailJaCadastrado      = "E-mail já cadastrado."
	msgCpfCnpjJaCadastrado    = "CPF/CNPJ já cadastrado."
	msgCredenciaisInvalidas   = "Credenciais inválidas."
	msgNaoAutenticado         = "Não autenticado."
	msgErroInterno            = "Erro interno do servidor."
	msgPerfilNaoEncontrado    = "Perfil não encontrado."
	msgPerfilNaoAtualizado    = "Perfil não encontrado ou dados não alterados."
	msgNomeCompletoFaltando   = "O nome completo é obrigatório."
	msgGrausObrigatorios      = "Graus esféricos são obrigatórios."
	msgOrcamentoNaoEncontrado = "Orçamento não encontrado ou não pertence ao usuário."
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// This prevents leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrSessionInvalid),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized, user-facing message for
// the given error.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrSessionInvalid):
		return msgNaoAutenticado

	case errors.Is(err, auth.ErrInvalidCredentials):
		return msgCredenciaisInvalidas

	case errors.Is(err, store.ErrEmailExists):
		return msgEmailJaCadastrado

	case errors.Is(err, store.ErrCpfCnpjExists):
		return msgCpfCnpjJaCadastrado

	case errors.Is(err, store.ErrProfileNotFound):
		return msgPerfilNaoEncontrado

	case errors.Is(err, store.ErrOrcamentoNotFound):
		return msgOrcamentoNaoEncontrado

	default:
		return msgErroInterno
	}
}
