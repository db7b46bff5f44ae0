package postgres

import (
	"context"
	"fmt"

	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del libro.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movimentacoes (id, produto_id, tipo, quantidade, setor, observacao, filial_id, data_movimentacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, string(movement.Kind), movement.Quantity,
		movement.Sector, note, movement.BranchID, movement.OccurredAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("create movement: producto %s: %w", movement.ProductID, domain.ErrNotFound)
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List lista movimientos unidos con su producto, del más reciente al más antiguo.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.MovementDetail, error) {
	query := `
		SELECT m.id, m.produto_id, m.tipo, m.quantidade, m.setor, m.observacao,
		       m.filial_id, m.data_movimentacao, p.codigo, p.nome
		FROM movimentacoes m
		JOIN produtos p ON m.produto_id = p.id
		WHERE 1 = 1`
	var args []any
	pos := 1
	if filter.BranchID != nil {
		query += fmt.Sprintf(" AND m.filial_id = $%d", pos)
		args = append(args, *filter.BranchID)
		pos++
	}
	if filter.ProductID != "" {
		if !isUUID(filter.ProductID) {
			return []*entity.MovementDetail{}, nil
		}
		query += fmt.Sprintf(" AND m.produto_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, string(filter.Kind))
	}
	query += " ORDER BY m.data_movimentacao DESC, m.id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.MovementDetail, 0)
	for rows.Next() {
		var d entity.MovementDetail
		var kind string
		var note *string
		if err := rows.Scan(&d.ID, &d.ProductID, &kind, &d.Quantity, &d.Sector, &note,
			&d.BranchID, &d.OccurredAt, &d.ProductCode, &d.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		d.Kind = entity.MovementKind(kind)
		if note != nil {
			d.Note = *note
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina los movimientos indicados; ids inexistentes no cuentan.
func (r *MovementRepo) Delete(ctx context.Context, ids []string) (int64, error) {
	uuids := parseUUIDs(ids)
	if len(uuids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM movimentacoes WHERE id = ANY($1)`, uuids)
	if err != nil {
		return 0, fmt.Errorf("delete movements: %w", err)
	}
	return cmd.RowsAffected(), nil
}
