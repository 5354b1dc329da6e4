package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/renezit0/goalflow-api/infrastructure/database/postgres"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/renezit0/goalflow-api/pkg/utils"
)

const metricSnapshotsTable = "metricas_snapshot ms"

type MetricSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.MetricSnapshot) error
	GetByStoreAndDate(storeID int, date time.Time) (*domain.MetricSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

func (r *metricSnapshotRepository) SaveOrUpdate(snapshot *domain.MetricSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("metricas_snapshot").
		Columns("id", "loja_id", "periodo_meta_id", "data", "metricas").
		Values(
			snapshot.ID,
			snapshot.StoreID,
			snapshot.PeriodID,
			snapshot.Date.Format(time.DateOnly),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (loja_id, periodo_meta_id, data) DO UPDATE SET
				metricas = EXCLUDED.metricas,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metricSnapshotRepository) GetByStoreAndDate(storeID int, date time.Time) (*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.loja_id, ms.periodo_meta_id, ms.data, ms.metricas, ms.created_at, ms.updated_at").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.loja_id": storeID, "ms.data": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.MetricSnapshot{}
	var metricsJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.StoreID,
		&snapshot.PeriodID,
		&snapshot.Date,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if metricsJSON != nil {
		metrics := make([]*domain.MetricResult, 0)
		if err := json.Unmarshal(metricsJSON, &metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		snapshot.Metrics = metrics
	}

	return snapshot, nil
}

func (r *metricSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("metricas_snapshot").
		Where(squirrel.Lt{"data": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
