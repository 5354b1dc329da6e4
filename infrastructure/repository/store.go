package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/renezit0/goalflow-api/infrastructure/database/postgres"
	"github.com/renezit0/goalflow-api/internal/domain"
)

const storesTable = "lojas l"

type StoreRepository interface {
	GetByID(id int) (*domain.Store, error)
	List() ([]*domain.Store, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetByID(id int) (*domain.Store, error) {
	query, args, err := squirrel.
		Select("l.id, l.nome, l.regiao").
		From(storesTable).
		Where(squirrel.Eq{"l.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store := &domain.Store{}
	err = r.conn.QueryRow(query, args...).Scan(&store.ID, &store.Name, &store.Region)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}

func (r *storeRepository) List() ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("l.id, l.nome, l.regiao").
		From(storesTable).
		OrderBy("l.nome ASC").
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.Region); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}
