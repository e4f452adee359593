package dbmodels

import (
	"fmt"
	"time"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

// DbDocument is one projection row of a document. The same document is written
// under several (pk, sk) composite keys, one per query pattern.
type DbDocument struct {
	Pk        string    `db:"pk"`
	Sk        string    `db:"sk"`
	Id        string    `db:"id"`
	AuthorId  string    `db:"author_id"`
	Status    string    `db:"status"`
	BlobPath  string    `db:"blob_path"`
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_DOCUMENTS = "documents"

var SelectDocumentColumns = utils.ColumnList[DbDocument]()

func AdaptDocument(db DbDocument) (models.Document, error) {
	status, err := models.DocumentStatusFrom(db.Status)
	if err != nil {
		return models.Document{}, err
	}

	return models.Document{
		Id:        db.Id,
		AuthorId:  db.AuthorId,
		Status:    status,
		BlobPath:  db.BlobPath,
		Comment:   db.Comment,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}

// Partition keys of the document projections. Every mutation of a document
// must account for each of these; see DocumentRepository.
func DocumentAuthorKey(authorId string) string {
	return fmt.Sprintf("AUTHOR#%s", authorId)
}

func DocumentAuthorStatusKey(authorId string, status models.DocumentStatus) string {
	return fmt.Sprintf("AUTHOR#%s#STATUS#%s", authorId, status)
}

const DocumentApproverAllKey = "APPROVER#ALL"

func DocumentApproverStatusKey(status models.DocumentStatus) string {
	return fmt.Sprintf("APPROVER#STATUS#%s", status)
}

func DocumentSortKey(docId string) string {
	return fmt.Sprintf("DOC#%s", docId)
}
