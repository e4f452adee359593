package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/docflow/docflow-backend/models"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SqlToListOfModels executes the query and returns a list of models using the
// provided adapter.
func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec TransactionOrPool,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	defer rows.Close()

	out := make([]Model, 0)
	for rows.Next() {
		dbModel, err := pgx.RowToStructByName[DBModel](rows)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		model, err := adapter(dbModel)
		if err != nil {
			return nil, err
		}
		out = append(out, model)
	}
	return out, errors.Wrap(rows.Err(), "error iterating over rows")
}

// SqlToModel executes the query and returns a single model using the provided
// adapter. If the query returns no row, returns a NotFoundError.
func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec TransactionOrPool,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	var zero Model

	results, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return zero, err
	}
	if len(results) == 0 {
		return zero, errors.WithStack(models.NotFoundError)
	}
	return results[0], nil
}

// SqlToOptionalModel is SqlToModel, except an absent row yields nil instead of
// a NotFoundError.
func SqlToOptionalModel[DBModel, Model any](
	ctx context.Context,
	exec TransactionOrPool,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	results, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

type AnyBuilder interface {
	ToSql() (string, []interface{}, error)
}

// ExecBuilder builds and executes a non-select statement, returning the number
// of affected rows.
func ExecBuilder(ctx context.Context, exec TransactionOrPool, builder AnyBuilder) (int64, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return 0, errors.Wrap(err, fmt.Sprintf("error executing sql query: %s", sql))
	}
	return tag.RowsAffected(), nil
}
