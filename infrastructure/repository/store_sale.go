package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/renezit0/goalflow-api/infrastructure/database/postgres"
	"github.com/renezit0/goalflow-api/internal/domain"
)

const storeSalesTable = "vendas_loja v"

type StoreSaleRepository interface {
	// ListByStoreAndDateRange retorna as vendas da loja com data entre
	// startDate e endDate, inclusivos. Intervalo invertido retorna vazio.
	ListByStoreAndDateRange(storeID int, startDate, endDate time.Time) ([]*domain.StoreSale, error)
	// ListByStoreAndDate retorna as vendas da loja em uma data exata.
	ListByStoreAndDate(storeID int, date time.Time) ([]*domain.StoreSale, error)
}

type storeSaleRepository struct {
	conn *postgres.Connection
}

func NewStoreSaleRepository(conn *postgres.Connection) StoreSaleRepository {
	return &storeSaleRepository{
		conn: conn,
	}
}

func (r *storeSaleRepository) ListByStoreAndDateRange(storeID int, startDate, endDate time.Time) ([]*domain.StoreSale, error) {
	query, args, err := squirrel.
		Select("v.id, v.loja_id, v.categoria, v.valor_venda, v.data_venda").
		From(storeSalesTable).
		Where(squirrel.Eq{"v.loja_id": storeID}).
		Where(squirrel.GtOrEq{"v.data_venda": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"v.data_venda": endDate.Format(time.DateOnly)}).
		OrderBy("v.data_venda ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *storeSaleRepository) ListByStoreAndDate(storeID int, date time.Time) ([]*domain.StoreSale, error) {
	query, args, err := squirrel.
		Select("v.id, v.loja_id, v.categoria, v.valor_venda, v.data_venda").
		From(storeSalesTable).
		Where(squirrel.Eq{"v.loja_id": storeID, "v.data_venda": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *storeSaleRepository) querySales(query string, args ...interface{}) ([]*domain.StoreSale, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.StoreSale, 0)
	for rows.Next() {
		sale := &domain.StoreSale{}
		err := rows.Scan(&sale.ID, &sale.StoreID, &sale.RawCategory, &sale.Amount, &sale.Date)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
