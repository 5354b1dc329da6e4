package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/renezit0/goalflow-api/infrastructure/database/postgres"
	"github.com/renezit0/goalflow-api/internal/domain"
)

const periodsTable = "periodos_meta p"

type PeriodRepository interface {
	GetByID(id int) (*domain.Period, error)
	GetActive() (*domain.Period, error)
	List() ([]*domain.Period, error)
}

type periodRepository struct {
	conn *postgres.Connection
}

func NewPeriodRepository(conn *postgres.Connection) PeriodRepository {
	return &periodRepository{
		conn: conn,
	}
}

func (r *periodRepository) GetByID(id int) (*domain.Period, error) {
	query, args, err := squirrel.
		Select("p.id, p.nome, p.data_inicio, p.data_fim, p.ativo").
		From(periodsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	period, err := r.scanPeriod(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear período: %w", err)
	}

	return period, nil
}

// GetActive retorna o período ativo mais recente, usado como padrão pelo
// agendador de snapshots quando nenhum período é informado.
func (r *periodRepository) GetActive() (*domain.Period, error) {
	query, args, err := squirrel.
		Select("p.id, p.nome, p.data_inicio, p.data_fim, p.ativo").
		From(periodsTable).
		Where(squirrel.Eq{"p.ativo": true}).
		OrderBy("p.data_inicio DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	period, err := r.scanPeriod(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear período: %w", err)
	}

	return period, nil
}

func (r *periodRepository) List() ([]*domain.Period, error) {
	query, args, err := squirrel.
		Select("p.id, p.nome, p.data_inicio, p.data_fim, p.ativo").
		From(periodsTable).
		OrderBy("p.data_inicio DESC").
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

	periods := make([]*domain.Period, 0)
	for rows.Next() {
		period := &domain.Period{}
		err := rows.Scan(&period.ID, &period.Name, &period.StartDate, &period.EndDate, &period.Active)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *periodRepository) scanPeriod(row *sql.Row) (*domain.Period, error) {
	period := &domain.Period{}
	err := row.Scan(&period.ID, &period.Name, &period.StartDate, &period.EndDate, &period.Active)
	if err != nil {
		return nil, err
	}

	return period, nil
}
