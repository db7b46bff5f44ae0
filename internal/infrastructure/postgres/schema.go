package postgres

import (
	"context"
	"fmt"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
)

// El esquema conserva los nombres de tablas y columnas de las instalaciones existentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS filiais (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS produtos (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		codigo VARCHAR(50) NOT NULL,
		nome VARCHAR(200) NOT NULL,
		valor DECIMAL(10,2) NOT NULL,
		filial_id INTEGER REFERENCES filiais(id),
		data_cadastro TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(codigo, filial_id)
	)`,
	`CREATE TABLE IF NOT EXISTS movimentacoes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		produto_id UUID REFERENCES produtos(id) ON DELETE CASCADE,
		tipo VARCHAR(10) NOT NULL CHECK (tipo IN ('Entrada', 'Saída')),
		quantidade INTEGER NOT NULL CHECK (quantidade > 0),
		setor VARCHAR(100) NOT NULL,
		observacao TEXT,
		filial_id INTEGER REFERENCES filiais(id),
		data_movimentacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movimentacoes_produto ON movimentacoes(produto_id)`,
	`CREATE INDEX IF NOT EXISTS idx_movimentacoes_filial_data ON movimentacoes(filial_id, data_movimentacao DESC)`,
}

// Migrate crea las tablas si no existen y siembra las filiales (idempotente).
func Migrate(ctx context.Context, q Querier, branches []entity.Branch) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("migrate: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	for _, b := range branches {
		if _, err := tx.Exec(ctx,
			`INSERT INTO filiais (id, nome) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			b.ID, b.Name,
		); err != nil {
			return fmt.Errorf("migrate: seed filial %d: %w", b.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}
	return nil
}
