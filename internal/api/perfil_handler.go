package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/optiq-app/optiq-api/internal/api/middleware"
	"github.com/optiq-app/optiq-api/internal/api/shared"
	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/platform/logger"
	"github.com/optiq-app/optiq-api/internal/store"
)

// PerfilHandler handles profile retrieval and updates for the
// authenticated user. The user ID always comes from the session, never
// from the request payload.
type PerfilHandler struct {
	profileStore store.ProfileStore
	logger       *slog.Logger
}

// NewPerfilHandler creates a new PerfilHandler with the given dependencies.
func NewPerfilHandler(profileStore store.ProfileStore, log *slog.Logger) *PerfilHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PerfilHandler{
		profileStore: profileStore,
		logger:       log.With(slog.String("component", "perfil_handler")),
	}
}

// Get handles GET /api/perfil.
func (h *PerfilHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	profile, err := h.profileStore.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgPerfilNaoEncontrado)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Update handles PUT /api/perfil. It is a full overwrite of the profile
// row: every updatable field takes the value from the payload, absent
// fields included.
func (h *PerfilHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	var req PerfilUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNomeCompletoFaltando)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNomeCompletoFaltando)
		return
	}

	profile := profileFromUpdate(&req)
	if err := profile.ValidateForUpdate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNomeCompletoFaltando)
		return
	}

	if err := h.profileStore.Update(r.Context(), userID, profile); err != nil {
		switch {
		case errors.Is(err, store.ErrProfileNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, msgPerfilNaoAtualizado)
		case errors.Is(err, store.ErrCpfCnpjExists):
			shared.RespondWithError(w, r, http.StatusConflict, msgCpfCnpjJaCadastrado)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		}
		return
	}

	log.Info("profile updated", slog.Int64("user_id", userID))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Perfil atualizado com sucesso!",
	})
}

func profileFromUpdate(req *PerfilUpdateRequest) *domain.Profile {
	return &domain.Profile{
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
		UpdatedAt:             time.Now().UTC(),
	}
}
