package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/campuskit/leave-tracker/internal/model"
)

type SessionDAO struct {
	Logger *slog.Logger
	*DB
}

func NewSessionDAO(logger *slog.Logger, db *DB) *SessionDAO {
	return &SessionDAO{
		Logger: logger.With("dao", "session"),
		DB:     db,
	}
}

func (dao *SessionDAO) Get(ctx context.Context, token string) (model.Session, error) {
	query, args, err := dao.Builder.
		Select("*").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}

		return model.Session{}, err
	}

	return session, nil
}

func (dao *SessionDAO) Insert(ctx context.Context, session model.Session) error {
	query, args, err := dao.Builder.
		Insert("sessions").
		Columns("token", "user_id", "email", "role", "display_name", "department", "roll_number").
		Values(
			session.Token, session.UserID, session.Email, session.Role,
			session.DisplayName, session.Department, session.RollNumber,
		).
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	if _, err := dao.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return model.NewError("session", model.ErrExists)
		}

		return err
	}

	return nil
}

func (dao *SessionDAO) Delete(ctx context.Context, token string) error {
	query, args, err := dao.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}
