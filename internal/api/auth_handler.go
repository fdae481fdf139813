// Package api provides HTTP handlers for the API.
package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/optiq-app/optiq-api/internal/api/middleware"
	"github.com/optiq-app/optiq-api/internal/api/shared"
	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/platform/logger"
	"github.com/optiq-app/optiq-api/internal/service/auth"
	"github.com/optiq-app/optiq-api/internal/store"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	userStore       store.UserStore
	profileStore    store.ProfileStore
	transactor      store.Transactor
	hasher          auth.PasswordHasher
	verifier        auth.PasswordVerifier
	sessions        auth.SessionService
	sessionLifetime time.Duration
	logger          *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	profileStore store.ProfileStore,
	transactor store.Transactor,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	sessions auth.SessionService,
	sessionLifetime time.Duration,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		userStore:       userStore,
		profileStore:    profileStore,
		transactor:      transactor,
		hasher:          hasher,
		verifier:        verifier,
		sessions:        sessions,
		sessionLifetime: sessionLifetime,
		logger:          log.With(slog.String("component", "auth_handler")),
	}
}

// Cadastro handles POST /api/cadastro. It creates the user and its
// profile in one transaction. The duplicate pre-checks give a friendly
// 409 for the common case; the unique constraints remain the
// authoritative guard, and a constraint violation on the insert path
// produces the same 409.
func (h *AuthHandler) Cadastro(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CadastroRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCamposFaltando)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCamposFaltando)
		return
	}

	// Advisory duplicate pre-checks.
	emailTaken, err := h.userStore.ExistsByEmail(r.Context(), req.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}
	if emailTaken {
		shared.RespondWithError(w, r, http.StatusConflict, msgEmailJaCadastrado)
		return
	}

	cpfTaken, err := h.profileStore.ExistsByCpfCnpj(r.Context(), req.CpfCnpj)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}
	if cpfTaken {
		shared.RespondWithError(w, r, http.StatusConflict, msgCpfCnpjJaCadastrado)
		return
	}

	user, err := domain.NewUser(req.Email, req.Senha)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCamposFaltando)
		return
	}

	digest, err := h.hasher.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}
	user.HashedPassword = digest
	user.Password = ""

	profile := profileFromCadastro(&req)
	if err := profile.ValidateForRegistration(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCamposFaltando)
		return
	}

	// User and profile are created atomically: a failed profile insert
	// must not leave an orphaned account behind.
	err = h.transactor.Transact(r.Context(), func(ctx context.Context, tx *sql.Tx) error {
		if err := h.userStore.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		profile.UsuarioID = user.ID
		return h.profileStore.WithTx(tx).Create(ctx, profile)
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, msgErroInterno, err)
			return
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CadastroResponse{
		Message: "Usuário cadastrado com sucesso!",
		UserID:  user.ID,
	})
}

// Login handles POST /api/login. Unknown email and wrong password
// produce byte-identical responses so nothing leaks about which one
// failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCamposFaltando)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCamposFaltando)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgCredenciaisInvalidas)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Senha); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgCredenciaisInvalidas)
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	http.SetCookie(w, newSessionCookie(token, h.sessionLifetime))

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Login realizado com sucesso!",
	})
}

// Logout handles POST /api/logout. The route is unprotected so the
// handler itself decides between 200 and 401: a request without a live
// session is not authenticated and must not pretend the logout worked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
		if errors.Is(err, auth.ErrSessionInvalid) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Erro ao fazer logout.", err)
		return
	}

	http.SetCookie(w, expiredSessionCookie())

	log.Debug("user logged out")
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Logout realizado com sucesso!",
	})
}

// profileFromCadastro maps the registration payload onto a new profile.
func profileFromCadastro(req *CadastroRequest) *domain.Profile {
	now := time.Now().UTC()
	return &domain.Profile{
		TipoPessoa:            req.TipoPessoa,
		NomeCompleto:          req.NomeCompleto,
		CpfCnpj:               req.CpfCnpj,
		Endereco:              req.Endereco,
		Numero:                req.Numero,
		Complemento:           req.Complemento,
		Bairro:                req.Bairro,
		Cidade:                req.Cidade,
		Estado:                req.Estado,
		Cep:                   req.Cep,
		Telefone:              req.Telefone,
		TelefoneEmpresa:       req.TelefoneEmpresa,
		Whatsapp:              req.Whatsapp,
		MostrarDadosOrcamento: req.MostrarDadosOrcamento,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
