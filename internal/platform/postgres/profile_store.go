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

// ProfileStore implements the store.ProfileStore interface using a
// PostgreSQL database as the storage backend.
type ProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProfileStore creates a new PostgreSQL implementation of the
// store.ProfileStore interface.
func NewProfileStore(db store.DBTX, log *slog.Logger) *ProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ProfileStore{
		db:     db,
		logger: log.With(slog.String("component", "profile_store")),
	}
}

// Ensure ProfileStore implements store.ProfileStore.
var _ store.ProfileStore = (*ProfileStore)(nil)

const profileColumns = `
	id, usuario_id, tipo_pessoa, nome_completo, cpf_cnpj,
	endereco, numero, complemento, bairro, cidade, estado, cep,
	telefone, telefone_empresa, whatsapp, mostrar_dados_orcamento,
	created_at, updated_at
`

// Create implements store.ProfileStore.Create.
// Returns store.ErrCpfCnpjExists when the unique constraint on
// cpf_cnpj fires.
func (s *ProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO perfis (
			usuario_id, tipo_pessoa, nome_completo, cpf_cnpj,
			endereco, numero, complemento, bairro, cidade, estado, cep,
			telefone, telefone_empresa, whatsapp, mostrar_dados_orcamento,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		profile.UsuarioID,
		profile.TipoPessoa,
		profile.NomeCompleto,
		profile.CpfCnpj,
		profile.Endereco,
		profile.Numero,
		profile.Complemento,
		profile.Bairro,
		profile.Cidade,
		profile.Estado,
		profile.Cep,
		profile.Telefone,
		profile.TelefoneEmpresa,
		profile.Whatsapp,
		profile.MostrarDadosOrcamento,
		profile.CreatedAt,
		profile.UpdatedAt,
	).Scan(&profile.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate cpf_cnpj on profile insert",
				slog.Int64("user_id", profile.UsuarioID))
			return MapUniqueViolation(err, store.ErrCpfCnpjExists)
		}
		log.Error("failed to create profile",
			slog.String("error", err.Error()),
			slog.Int64("user_id", profile.UsuarioID))
		return MapError(err)
	}

	log.Info("profile created",
		slog.Int64("profile_id", profile.ID),
		slog.Int64("user_id", profile.UsuarioID))
	return nil
}

// GetByUserID implements store.ProfileStore.GetByUserID.
func (s *ProfileStore) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + profileColumns + ` FROM perfis WHERE usuario_id = $1`

	var p domain.Profile
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID,
		&p.UsuarioID,
		&p.TipoPessoa,
		&p.NomeCompleto,
		&p.CpfCnpj,
		&p.Endereco,
		&p.Numero,
		&p.Complemento,
		&p.Bairro,
		&p.Cidade,
		&p.Estado,
		&p.Cep,
		&p.Telefone,
		&p.TelefoneEmpresa,
		&p.Whatsapp,
		&p.MostrarDadosOrcamento,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.Int64("user_id", userID))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}

	return &p, nil
}

// Update implements store.ProfileStore.Update. It is a full-field
// overwrite scoped by usuario_id, never a partial patch.
func (s *ProfileStore) Update(ctx context.Context, userID int64, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE perfis SET
			nome_completo = $1, cpf_cnpj = $2, endereco = $3, numero = $4,
			complemento = $5, bairro = $6, cidade = $7, estado = $8, cep = $9,
			telefone = $10, telefone_empresa = $11, whatsapp = $12,
			mostrar_dados_orcamento = $13, updated_at = $14
		WHERE usuario_id = $15
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		profile.NomeCompleto,
		profile.CpfCnpj,
		profile.Endereco,
		profile.Numero,
		profile.Complemento,
		profile.Bairro,
		profile.Cidade,
		profile.Estado,
		profile.Cep,
		profile.Telefone,
		profile.TelefoneEmpresa,
		profile.Whatsapp,
		profile.MostrarDadosOrcamento,
		time.Now().UTC(),
		userID,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate cpf_cnpj on profile update",
				slog.Int64("user_id", userID))
			return MapUniqueViolation(err, store.ErrCpfCnpjExists)
		}
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProfileNotFound); err != nil {
		log.Debug("profile update affected no rows", slog.Int64("user_id", userID))
		return err
	}

	log.Info("profile updated", slog.Int64("user_id", userID))
	return nil
}

// ExistsByCpfCnpj implements store.ProfileStore.ExistsByCpfCnpj.
func (s *ProfileStore) ExistsByCpfCnpj(ctx context.Context, cpfCnpj string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM perfis WHERE cpf_cnpj = $1)`,
		cpfCnpj,
	).Scan(&exists)

	if err != nil {
		log.Error("failed to check cpf_cnpj existence", slog.String("error", err.Error()))
		return false, MapError(err)
	}

	return exists, nil
}

// WithTx implements store.ProfileStore.WithTx.
func (s *ProfileStore) WithTx(tx store.DBTX) store.ProfileStore {
	return &ProfileStore{db: tx, logger: s.logger}
}
