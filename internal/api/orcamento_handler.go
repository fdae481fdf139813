package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/optiq-app/optiq-api/internal/api/middleware"
	"github.com/optiq-app/optiq-api/internal/api/shared"
	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/platform/logger"
	"github.com/optiq-app/optiq-api/internal/store"
)

// OrcamentoHandler handles CRUD operations over lens quotes. Every
// operation is scoped to the authenticated user; a quote owned by
// someone else is reported as not found, never as forbidden.
type OrcamentoHandler struct {
	orcamentoStore store.OrcamentoStore
	logger         *slog.Logger
}

// NewOrcamentoHandler creates a new OrcamentoHandler with the given dependencies.
func NewOrcamentoHandler(orcamentoStore store.OrcamentoStore, log *slog.Logger) *OrcamentoHandler {
	if log == nil {
		log = slog.Default()
	}
	return &OrcamentoHandler{
		orcamentoStore: orcamentoStore,
		logger:         log.With(slog.String("component", "orcamento_handler")),
	}
}

// Create handles POST /api/orcamentos.
func (h *OrcamentoHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	var req OrcamentoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgGrausObrigatorios)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgGrausObrigatorios)
		return
	}

	orcamento := orcamentoFromRequest(&req)
	orcamento.UsuarioID = userID
	if err := orcamento.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgGrausObrigatorios)
		return
	}

	if err := h.orcamentoStore.Create(r.Context(), orcamento); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	log.Info("orcamento created",
		slog.Int64("orcamento_id", orcamento.ID),
		slog.Int64("user_id", userID))
	shared.RespondWithJSON(w, r, http.StatusCreated, OrcamentoCreateResponse{
		Message:     "Orçamento criado com sucesso!",
		OrcamentoID: orcamento.ID,
	})
}

// List handles GET /api/orcamentos. Always 200, with [] when the user
// has no quotes.
func (h *OrcamentoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	orcamentos, err := h.orcamentoStore.ListByUserID(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orcamentos)
}

// Get handles GET /api/orcamentos/{id}.
func (h *OrcamentoHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	id, err := orcamentoIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, msgOrcamentoNaoEncontrado)
		return
	}

	orcamento, err := h.orcamentoStore.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrOrcamentoNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgOrcamentoNaoEncontrado)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orcamento)
}

// Update handles PUT /api/orcamentos/{id}. Full overwrite of every quote
// field, scoped to the authenticated owner. Unlike Create, no field is
// required: absent fields are stored as empty values.
func (h *OrcamentoHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	id, err := orcamentoIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, msgOrcamentoNaoEncontrado)
		return
	}

	var req OrcamentoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCamposFaltando)
		return
	}

	orcamento := orcamentoFromRequest(&req)
	if err := h.orcamentoStore.Update(r.Context(), userID, id, orcamento); err != nil {
		if errors.Is(err, store.ErrOrcamentoNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgOrcamentoNaoEncontrado)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	log.Info("orcamento updated",
		slog.Int64("orcamento_id", id),
		slog.Int64("user_id", userID))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Orçamento atualizado com sucesso!",
	})
}

// Delete handles DELETE /api/orcamentos/{id}. A second delete of the
// same quote is a 404, not a silent success.
func (h *OrcamentoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
		return
	}

	id, err := orcamentoIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, msgOrcamentoNaoEncontrado)
		return
	}

	if err := h.orcamentoStore.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, store.ErrOrcamentoNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgOrcamentoNaoEncontrado)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgErroInterno, err)
		return
	}

	log.Info("orcamento deleted",
		slog.Int64("orcamento_id", id),
		slog.Int64("user_id", userID))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Orçamento excluído com sucesso!",
	})
}

// orcamentoIDParam parses the {id} route parameter. A non-numeric or
// non-positive id can never match a row, so callers treat the error as
// not found.
func orcamentoIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	if id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func orcamentoFromRequest(req *OrcamentoRequest) *domain.Orcamento {
	now := time.Now().UTC()
	return &domain.Orcamento{
		GrauEsfericoOD:   req.GrauEsfericoOD,
		GrauEsfericoOE:   req.GrauEsfericoOE,
		GrauCilindricoOD: req.GrauCilindricoOD,
		GrauCilindricoOE: req.GrauCilindricoOE,
		EixoOD:           req.EixoOD,
		EixoOE:           req.EixoOE,
		DnpOD:            req.DnpOD,
		DnpOE:            req.DnpOE,
		Adicao:           req.Adicao,
		TipoLente:        req.TipoLente,
		MaterialLente:    req.MaterialLente,
		TratamentoLente:  req.TratamentoLente,
		Observacoes:      req.Observacoes,
		ValorLente:       req.ValorLente,
		ValorArmacao:     req.ValorArmacao,
		NomeCliente:      req.NomeCliente,
		CpfCliente:       req.CpfCliente,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
