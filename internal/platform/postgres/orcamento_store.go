package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/platform/logger"
	"github.com/optiq-app/optiq-api/internal/store"
)

// OrcamentoStore implements the store.OrcamentoStore interface using a
// PostgreSQL database as the storage backend. Every query filters by
// usuario_id so that ownership is enforced at the data-access layer.
type OrcamentoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewOrcamentoStore creates a new PostgreSQL implementation of the
// store.OrcamentoStore interface.
func NewOrcamentoStore(db store.DBTX, log *slog.Logger) *OrcamentoStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &OrcamentoStore{
		db:     db,
		logger: log.With(slog.String("component", "orcamento_store")),
	}
}

// Ensure OrcamentoStore implements store.OrcamentoStore.
var _ store.OrcamentoStore = (*OrcamentoStore)(nil)

const orcamentoColumns = `
	id, usuario_id,
	grau_esferico_od, grau_esferico_oe, grau_cilindrico_od, grau_cilindrico_oe,
	eixo_od, eixo_oe, dnp_od, dnp_oe, adicao,
	tipo_lente, material_lente, tratamento_lente, observacoes,
	valor_lente, valor_armacao, nome_cliente, cpf_cliente,
	created_at, updated_at
`

// scanOrcamento scans one row into a domain.Orcamento, in the order of
// orcamentoColumns.
func scanOrcamento(row interface{ Scan(dest ...any) error }) (*domain.Orcamento, error) {
	var o domain.Orcamento
	err := row.Scan(
		&o.ID,
		&o.UsuarioID,
		&o.GrauEsfericoOD,
		&o.GrauEsfericoOE,
		&o.GrauCilindricoOD,
		&o.GrauCilindricoOE,
		&o.EixoOD,
		&o.EixoOE,
		&o.DnpOD,
		&o.DnpOE,
		&o.Adicao,
		&o.TipoLente,
		&o.MaterialLente,
		&o.TratamentoLente,
		&o.Observacoes,
		&o.ValorLente,
		&o.ValorArmacao,
		&o.NomeCliente,
		&o.CpfCliente,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create implements store.OrcamentoStore.Create.
func (s *OrcamentoStore) Create(ctx context.Context, orcamento *domain.Orcamento) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO orcamentos (
			usuario_id,
			grau_esferico_od, grau_esferico_oe, grau_cilindrico_od, grau_cilindrico_oe,
			eixo_od, eixo_oe, dnp_od, dnp_oe, adicao,
			tipo_lente, material_lente, tratamento_lente, observacoes,
			valor_lente, valor_armacao, nome_cliente, cpf_cliente,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		orcamento.UsuarioID,
		orcamento.GrauEsfericoOD,
		orcamento.GrauEsfericoOE,
		orcamento.GrauCilindricoOD,
		orcamento.GrauCilindricoOE,
		orcamento.EixoOD,
		orcamento.EixoOE,
		orcamento.DnpOD,
		orcamento.DnpOE,
		orcamento.Adicao,
		orcamento.TipoLente,
		orcamento.MaterialLente,
		orcamento.TratamentoLente,
		orcamento.Observacoes,
		orcamento.ValorLente,
		orcamento.ValorArmacao,
		orcamento.NomeCliente,
		orcamento.CpfCliente,
		orcamento.CreatedAt,
		orcamento.UpdatedAt,
	).Scan(&orcamento.ID)

	if err != nil {
		log.Error("failed to create orcamento",
			slog.String("error", err.Error()),
			slog.Int64("user_id", orcamento.UsuarioID))
		return MapError(err)
	}

	log.Info("orcamento created",
		slog.Int64("orcamento_id", orcamento.ID),
		slog.Int64("user_id", orcamento.UsuarioID))
	return nil
}

// ListByUserID implements store.OrcamentoStore.ListByUserID.
func (s *OrcamentoStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Orcamento, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + orcamentoColumns + ` FROM orcamentos WHERE usuario_id = $1`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list orcamentos",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var orcamentos []*domain.Orcamento
	for rows.Next() {
		o, err := scanOrcamento(rows)
		if err != nil {
			log.Error("failed to scan orcamento row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		orcamentos = append(orcamentos, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil so the JSON response is [].
	if orcamentos == nil {
		orcamentos = []*domain.Orcamento{}
	}

	return orcamentos, nil
}

// GetByID implements store.OrcamentoStore.GetByID. The (id, usuario_id)
// filter makes an ownership mismatch indistinguishable from a missing
// row.
func (s *OrcamentoStore) GetByID(ctx context.Context, userID, id int64) (*domain.Orcamento, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + orcamentoColumns + ` FROM orcamentos WHERE id = $1 AND usuario_id = $2`

	o, err := scanOrcamento(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("orcamento not found",
				slog.Int64("orcamento_id", id),
				slog.Int64("user_id", userID))
			return nil, store.ErrOrcamentoNotFound
		}
		log.Error("failed to get orcamento",
			slog.String("error", err.Error()),
			slog.Int64("orcamento_id", id))
		return nil, MapError(err)
	}

	return o, nil
}

// Update implements store.OrcamentoStore.Update. Full overwrite of all
// fields scoped to (id, usuario_id).
func (s *OrcamentoStore) Update(ctx context.Context, userID, id int64, orcamento *domain.Orcamento) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE orcamentos SET
			grau_esferico_od = $1, grau_esferico_oe = $2,
			grau_cilindrico_od = $3, grau_cilindrico_oe = $4,
			eixo_od = $5, eixo_oe = $6, dnp_od = $7, dnp_oe = $8, adicao = $9,
			tipo_lente = $10, material_lente = $11, tratamento_lente = $12,
			observacoes = $13, valor_lente = $14, valor_armacao = $15,
			nome_cliente = $16, cpf_cliente = $17, updated_at = $18
		WHERE id = $19 AND usuario_id = $20
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		orcamento.GrauEsfericoOD,
		orcamento.GrauEsfericoOE,
		orcamento.GrauCilindricoOD,
		orcamento.GrauCilindricoOE,
		orcamento.EixoOD,
		orcamento.EixoOE,
		orcamento.DnpOD,
		orcamento.DnpOE,
		orcamento.Adicao,
		orcamento.TipoLente,
		orcamento.MaterialLente,
		orcamento.TratamentoLente,
		orcamento.Observacoes,
		orcamento.ValorLente,
		orcamento.ValorArmacao,
		orcamento.NomeCliente,
		orcamento.CpfCliente,
		time.Now().UTC(),
		id,
		userID,
	)

	if err != nil {
		log.Error("failed to update orcamento",
			slog.String("error", err.Error()),
			slog.Int64("orcamento_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrOrcamentoNotFound); err != nil {
		log.Debug("orcamento update affected no rows",
			slog.Int64("orcamento_id", id),
			slog.Int64("user_id", userID))
		return err
	}

	log.Info("orcamento updated",
		slog.Int64("orcamento_id", id),
		slog.Int64("user_id", userID))
	return nil
}

// Delete implements store.OrcamentoStore.Delete.
func (s *OrcamentoStore) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM orcamentos WHERE id = $1 AND usuario_id = $2`,
		id,
		userID,
	)

	if err != nil {
		log.Error("failed to delete orcamento",
			slog.String("error", err.Error()),
			slog.Int64("orcamento_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrOrcamentoNotFound); err != nil {
		log.Debug("orcamento delete affected no rows",
			slog.Int64("orcamento_id", id),
			slog.Int64("user_id", userID))
		return err
	}

	log.Info("orcamento deleted",
		slog.Int64("orcamento_id", id),
		slog.Int64("user_id", userID))
	return nil
}
