package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/renezit0/goalflow-api/infrastructure/database/postgres"
	"github.com/renezit0/goalflow-api/internal/domain"
)

const usersTable = "usuarios u"

type UserRepository interface {
	GetUserByID(id int) (*domain.User, error)
	GetUserByLogin(login string) (*domain.User, error)
	UpdatePassword(userID int, passwordHash string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id, u.nome, u.login, u.senha_hash, u.ativo, u.role_id, u.loja_id, u.created_at, u.updated_at").
		From(usersTable).
		Where(squirrel.Eq{"u.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := r.scanUser(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByLogin(login string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id, u.nome, u.login, u.senha_hash, u.ativo, u.role_id, u.loja_id, u.created_at, u.updated_at").
		From(usersTable).
		Where(squirrel.Eq{"u.login": login}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := r.scanUser(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(userID int, passwordHash string) error {
	query, args, err := squirrel.
		Update("usuarios").
		Set("senha_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var storeID sql.NullInt64

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Login,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&storeID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if storeID.Valid {
		id := int(storeID.Int64)
		user.StoreID = &id
	}

	return user, nil
}
