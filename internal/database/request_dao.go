package database

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/campuskit/leave-tracker/internal/model"
	"github.com/jmoiron/sqlx"
)

// Storage keys, one collection of requests per kind. Each collection
// lives in a single storage_entries row as a serialized JSON array and
// is rewritten wholesale on every mutation.
const (
	_odStorageKey    = "od-requests"
	_leaveStorageKey = "leave-requests"
)

// RequestDAO is the repository for one request collection. Mutations
// are read-modify-write transactions over the collection's row,
// serialized with FOR UPDATE so concurrent writers cannot lose updates.
type RequestDAO struct {
	Logger *slog.Logger
	*DB

	key string
}

func NewRequestDAO(logger *slog.Logger, db *DB, kind model.RequestKind) *RequestDAO {
	key := _odStorageKey
	if kind == model.KindLeave {
		key = _leaveStorageKey
	}

	return &RequestDAO{
		Logger: logger.With("dao", "request", "collection", key),
		DB:     db,
		key:    key,
	}
}

// LoadAll returns the collection in insertion order. An absent storage
// row means an empty collection, never an error.
func (dao *RequestDAO) LoadAll(ctx context.Context) ([]model.Request, error) {
	query, args, err := dao.Builder.
		Select("value").
		From("storage_entries").
		Where(squirrel.Eq{"key": dao.key}).
		ToSql()
	if err != nil {
		return []model.Request{}, err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	var raw string
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&raw); err != nil {
		if IsNoRows(err) {
			return []model.Request{}, nil
		}

		return []model.Request{}, err
	}

	return dao.decode(raw)
}

// Append adds one record to the end of the collection.
func (dao *RequestDAO) Append(ctx context.Context, request model.Request) error {
	tx, err := dao.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := dao.ensureRow(ctx, tx); err != nil {
		return err
	}

	requests, err := dao.loadForUpdate(ctx, tx)
	if err != nil {
		return err
	}

	requests = append(requests, request)

	if err := dao.save(ctx, tx, requests); err != nil {
		return err
	}

	return tx.Commit()
}

type UpdateStatusDTO struct {
	Status   model.Status
	Comments *string

	// Department scopes the update to the reviewer's own department; a
	// record outside it is treated as not found.
	Department string
}

// UpdateStatus rewrites one record's status and, if supplied, the
// reviewer's comments, leaving every other field untouched. A record
// that already left pending is refused with ErrAlreadyDecided.
func (dao *RequestDAO) UpdateStatus(ctx context.Context, id string, dto UpdateStatusDTO) (model.Request, error) {
	tx, err := dao.BeginTxx(ctx, nil)
	if err != nil {
		return model.Request{}, err
	}
	defer tx.Rollback()

	if err := dao.ensureRow(ctx, tx); err != nil {
		return model.Request{}, err
	}

	requests, err := dao.loadForUpdate(ctx, tx)
	if err != nil {
		return model.Request{}, err
	}

	idx := -1
	for i, request := range requests {
		if request.ID == id && request.Department == dto.Department {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Request{}, model.NewError("request", model.ErrNotFound)
	}

	if requests[idx].Status.Terminal() {
		return model.Request{}, model.NewError("request", model.ErrAlreadyDecided)
	}

	requests[idx].Status = dto.Status
	if dto.Comments != nil {
		requests[idx].HodComments = dto.Comments
	}

	if err := dao.save(ctx, tx, requests); err != nil {
		return model.Request{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Request{}, err
	}

	return requests[idx], nil
}

// ensureRow materializes the collection's row as an empty array. The
// locking select cannot lock an absent row, so without this two
// first-ever appends could both read empty and the later commit would
// silently drop the earlier one.
func (dao *RequestDAO) ensureRow(ctx context.Context, tx *sqlx.Tx) error {
	query, args, err := dao.Builder.
		Insert("storage_entries").
		Columns("key", "value").
		Values(dao.key, "[]").
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (dao *RequestDAO) loadForUpdate(ctx context.Context, tx *sqlx.Tx) ([]model.Request, error) {
	query, args, err := dao.Builder.
		Select("value").
		From("storage_entries").
		Where(squirrel.Eq{"key": dao.key}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return []model.Request{}, err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	var raw string
	row := tx.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&raw); err != nil {
		if IsNoRows(err) {
			return []model.Request{}, nil
		}

		return []model.Request{}, err
	}

	return dao.decode(raw)
}

func (dao *RequestDAO) save(ctx context.Context, tx *sqlx.Tx, requests []model.Request) error {
	raw, err := json.Marshal(requests)
	if err != nil {
		return err
	}

	query, args, err := dao.Builder.
		Insert("storage_entries").
		Columns("key", "value").
		Values(dao.key, string(raw)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (dao *RequestDAO) decode(raw string) ([]model.Request, error) {
	requests := make([]model.Request, 0)
	if err := json.Unmarshal([]byte(raw), &requests); err != nil {
		return []model.Request{}, err
	}
	return requests, nil
}
