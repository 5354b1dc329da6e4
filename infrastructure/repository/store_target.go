package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/renezit0/goalflow-api/infrastructure/database/postgres"
	"github.com/renezit0/goalflow-api/internal/domain"
)

const (
	storeTargetsTable    = "metas_loja m"
	categoryTargetsTable = "metas_loja_categorias mc"
)

type StoreTargetRepository interface {
	// ListByStoreAndPeriod retorna as metas da loja para o período, ordenadas
	// por criação. O chamador decide a política quando há mais de uma.
	ListByStoreAndPeriod(storeID, periodID int) ([]*domain.StoreTarget, error)
}

type storeTargetRepository struct {
	conn *postgres.Connection
}

func NewStoreTargetRepository(conn *postgres.Connection) StoreTargetRepository {
	return &storeTargetRepository{
		conn: conn,
	}
}

func (r *storeTargetRepository) ListByStoreAndPeriod(storeID, periodID int) ([]*domain.StoreTarget, error) {
	query, args, err := squirrel.
		Select("m.id, m.loja_id, m.periodo_meta_id, m.meta_valor_total, m.created_at").
		From(storeTargetsTable).
		Where(squirrel.Eq{"m.loja_id": storeID, "m.periodo_meta_id": periodID}).
		OrderBy("m.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.StoreTarget, 0)
	for rows.Next() {
		target := &domain.StoreTarget{}
		err := rows.Scan(&target.ID, &target.StoreID, &target.PeriodID, &target.TotalAmount, &target.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	for _, target := range targets {
		categories, err := r.listCategoryTargets(target.ID)
		if err != nil {
			return nil, err
		}
		target.Categories = categories
	}

	return targets, nil
}

func (r *storeTargetRepository) listCategoryTargets(targetID int) ([]*domain.CategoryTarget, error) {
	query, args, err := squirrel.
		Select("mc.id, mc.categoria, mc.meta_valor").
		From(categoryTargetsTable).
		Where(squirrel.Eq{"mc.meta_loja_id": targetID}).
		OrderBy("mc.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.CategoryTarget, 0)
	for rows.Next() {
		category := &domain.CategoryTarget{}
		if err := rows.Scan(&category.ID, &category.RawCode, &category.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta de categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}
