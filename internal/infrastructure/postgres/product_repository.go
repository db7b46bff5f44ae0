package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, codigo, nome, valor, filial_id, data_cadastro`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. La unicidad (codigo, filial_id) la garantiza la base.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO produtos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Code, product.Name, product.UnitPrice, product.BranchID, product.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert product: filial %d: %w", product.BranchID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM produtos WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Serializa las Saídas concurrentes del mismo producto cuando se usa dentro de TxRunner.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM produtos WHERE id = $1 FOR UPDATE`, id)
}

// GetByBranchAndCode obtiene un producto por filial y código (exacto).
func (r *ProductRepo) GetByBranchAndCode(ctx context.Context, branchID int, code string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM produtos WHERE filial_id = $1 AND codigo = $2`, branchID, code)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Code, &p.Name, &p.UnitPrice, &p.BranchID, &p.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos (de una filial o de todas) por fecha de registro descendente.
func (r *ProductRepo) List(ctx context.Context, branchID *int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos`
	var args []any
	if branchID != nil {
		query += ` WHERE filial_id = $1`
		args = append(args, *branchID)
	}
	query += ` ORDER BY data_cadastro DESC, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.UnitPrice, &p.BranchID, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DeleteWithMovements elimina movimientos y productos en una misma transacción
// (o savepoint si ya se está dentro de una). El ON DELETE CASCADE cubre instalaciones
// antiguas; el DELETE explícito deja la regla visible en el código.
func (r *ProductRepo) DeleteWithMovements(ctx context.Context, ids []string) (int64, error) {
	uuids := parseUUIDs(ids)
	if len(uuids) == 0 {
		return 0, nil
	}
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete products: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM movimentacoes WHERE produto_id = ANY($1)`, uuids); err != nil {
		return 0, fmt.Errorf("delete product movements: %w", err)
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM produtos WHERE id = ANY($1)`, uuids)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("delete products: commit: %w", err)
	}
	return cmd.RowsAffected(), nil
}
