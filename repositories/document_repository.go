package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories/dbmodels"
)

// DocumentRepository stores documents redundantly under several composite
// (pk, sk) keys, one row per query pattern:
//
//   - (AUTHOR#<author_id>, DOC#<doc_id>)                   author's full list
//   - (AUTHOR#<author_id>#STATUS#<status>, DOC#<doc_id>)   author's list filtered by status
//   - (APPROVER#ALL, DOC#<doc_id>)                         global approver view, canonical row
//   - (APPROVER#STATUS#<status>, DOC#<doc_id>)             approver's list filtered by status
//
// Invariant: every mutation must keep all four projections in step. Adding a
// new access pattern means auditing CreateDocument and UpdateStatus to write
// its projection.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, tx Transaction, document models.Document) error
	GetDocuments(ctx context.Context, exec Executor, requesterRole models.Role,
		requesterId string, statusFilter *models.DocumentStatus) ([]models.Document, error)
	GetDocumentById(ctx context.Context, exec Executor, documentId string) (models.Document, error)
	UpdateDocumentStatus(ctx context.Context, tx Transaction, document models.Document,
		newStatus models.DocumentStatus, comment *string, now time.Time) (models.Document, error)
}

type DocumentRepositoryPostgresql struct{}

func (repo DocumentRepositoryPostgresql) CreateDocument(
	ctx context.Context,
	tx Transaction,
	document models.Document,
) error {
	projectionKeys := []string{
		dbmodels.DocumentAuthorKey(document.AuthorId),
		dbmodels.DocumentAuthorStatusKey(document.AuthorId, document.Status),
		dbmodels.DocumentApproverAllKey,
		dbmodels.DocumentApproverStatusKey(document.Status),
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_DOCUMENTS).
		Columns(dbmodels.SelectDocumentColumns...)
	for _, pk := range projectionKeys {
		query = query.Values(
			pk,
			dbmodels.DocumentSortKey(document.Id),
			document.Id,
			document.AuthorId,
			string(document.Status),
			document.BlobPath,
			document.Comment,
			document.CreatedAt,
			document.UpdatedAt,
		)
	}

	_, err := ExecBuilder(ctx, tx, query)
	return errors.Wrap(err, "failed to create document projections")
}

func (repo DocumentRepositoryPostgresql) GetDocuments(
	ctx context.Context,
	exec Executor,
	requesterRole models.Role,
	requesterId string,
	statusFilter *models.DocumentStatus,
) ([]models.Document, error) {
	var pk string
	switch {
	case requesterRole == models.RoleAuthor && statusFilter != nil:
		pk = dbmodels.DocumentAuthorStatusKey(requesterId, *statusFilter)
	case requesterRole == models.RoleAuthor:
		pk = dbmodels.DocumentAuthorKey(requesterId)
	case statusFilter != nil:
		pk = dbmodels.DocumentApproverStatusKey(*statusFilter)
	default:
		pk = dbmodels.DocumentApproverAllKey
	}

	documents, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectDocumentColumns...).
			From(dbmodels.TABLE_DOCUMENTS).
			Where(squirrel.Eq{"pk": pk}).
			OrderBy("created_at DESC, sk"),
		dbmodels.AdaptDocument,
	)
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, errors.Wrap(models.NotFoundError, "no documents found")
	}
	return documents, nil
}

// GetDocumentById reads the APPROVER#ALL projection, the canonical source of
// truth for single-document lookups.
func (repo DocumentRepositoryPostgresql) GetDocumentById(
	ctx context.Context,
	exec Executor,
	documentId string,
) (models.Document, error) {
	document, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectDocumentColumns...).
			From(dbmodels.TABLE_DOCUMENTS).
			Where(squirrel.Eq{
				"pk": dbmodels.DocumentApproverAllKey,
				"sk": dbmodels.DocumentSortKey(documentId),
			}),
		dbmodels.AdaptDocument,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.Document{}, errors.WithStack(models.ErrDocumentNotFound)
	}
	return document, err
}

// UpdateDocumentStatus rewrites all four projections in one transaction. The
// canonical APPROVER#ALL row is updated conditionally on the status the caller
// read (compare-and-swap); a concurrent transition makes that update match
// zero rows and the whole transaction fails with ErrConcurrentStatusUpdate.
func (repo DocumentRepositoryPostgresql) UpdateDocumentStatus(
	ctx context.Context,
	tx Transaction,
	document models.Document,
	newStatus models.DocumentStatus,
	comment *string,
	now time.Time,
) (models.Document, error) {
	sk := dbmodels.DocumentSortKey(document.Id)

	rowsAffected, err := ExecBuilder(ctx, tx, NewQueryBuilder().
		Update(dbmodels.TABLE_DOCUMENTS).
		Set("status", string(newStatus)).
		Set("comment", comment).
		Set("updated_at", now).
		Where(squirrel.Eq{
			"pk":     dbmodels.DocumentApproverAllKey,
			"sk":     sk,
			"status": string(document.Status),
		}))
	if err != nil {
		return models.Document{}, errors.Wrap(err, "transaction failed")
	}
	if rowsAffected == 0 {
		return models.Document{}, errors.WithStack(models.ErrConcurrentStatusUpdate)
	}

	if _, err := ExecBuilder(ctx, tx, NewQueryBuilder().
		Update(dbmodels.TABLE_DOCUMENTS).
		Set("status", string(newStatus)).
		Set("comment", comment).
		Set("updated_at", now).
		Where(squirrel.Eq{
			"pk": dbmodels.DocumentAuthorKey(document.AuthorId),
			"sk": sk,
		})); err != nil {
		return models.Document{}, errors.Wrap(err, "transaction failed")
	}

	// The status-filtered projections have the old status embedded in their
	// partition key: move the rows instead of updating them in place.
	if _, err := ExecBuilder(ctx, tx, NewQueryBuilder().
		Delete(dbmodels.TABLE_DOCUMENTS).
		Where(squirrel.Eq{
			"pk": []string{
				dbmodels.DocumentAuthorStatusKey(document.AuthorId, document.Status),
				dbmodels.DocumentApproverStatusKey(document.Status),
			},
			"sk": sk,
		})); err != nil {
		return models.Document{}, errors.Wrap(err, "transaction failed")
	}

	updated := models.Document{
		Id:        document.Id,
		AuthorId:  document.AuthorId,
		Status:    newStatus,
		BlobPath:  document.BlobPath,
		Comment:   comment,
		CreatedAt: document.CreatedAt,
		UpdatedAt: now,
	}

	insert := NewQueryBuilder().
		Insert(dbmodels.TABLE_DOCUMENTS).
		Columns(dbmodels.SelectDocumentColumns...)
	for _, pk := range []string{
		dbmodels.DocumentAuthorStatusKey(updated.AuthorId, updated.Status),
		dbmodels.DocumentApproverStatusKey(updated.Status),
	} {
		insert = insert.Values(
			pk,
			sk,
			updated.Id,
			updated.AuthorId,
			string(updated.Status),
			updated.BlobPath,
			updated.Comment,
			updated.CreatedAt,
			updated.UpdatedAt,
		)
	}
	if _, err := ExecBuilder(ctx, tx, insert); err != nil {
		return models.Document{}, errors.Wrap(err, "transaction failed")
	}

	return updated, nil
}
