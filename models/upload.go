package models

// PresignedUpload is a time-limited handle permitting a single-request upload
// of a document's binary content, without routing bytes through the API.
type PresignedUpload struct {
	DocumentId string
	UploadUrl  string
	FileKey    string
}

// MultipartUpload is the handle for the large-file upload path.
type MultipartUpload struct {
	DocumentId string
	UploadId   string
	FileKey    string
}

// UploadedPart identifies one uploaded part when completing a multipart
// upload.
type UploadedPart struct {
	PartNumber int32
	ETag       string
}
