package models

import "time"

// FileRecord is the metadata row describing one uploaded document.
//
// A record is written in two phases: the row is inserted with a null
// DownloadURL, then patched with the capability link once the server-assigned
// FileID is known (the link encrypts that id). A crash between the phases
// leaves a record without a usable link, which is a degraded state rather
// than corruption. Records are immutable after the patch.
type FileRecord struct {
	// FileID is the server-assigned identifier. The capability link encodes
	// this value, so it must exist before the link can be minted.
	FileID int64 `json:"id"`

	// Filename is the original, user-supplied name. Returned as the
	// download attachment name.
	Filename string `json:"filename"`

	// FilePath is the server-assigned location inside the blob store.
	// Internal detail: never included in client-facing projections.
	FilePath string `json:"file_path"`

	// FileType is the media type declared at upload time after passing
	// the document allow-list.
	FileType string `json:"file_type"`

	// UploadedBy references the operator account that uploaded the file.
	UploadedBy int64 `json:"uploaded_by"`

	// UploadDate is the server-side timestamp of the upload.
	UploadDate time.Time `json:"upload_date"`

	// FileSize is the number of bytes actually written to the blob store,
	// not a client-supplied claim.
	FileSize int64 `json:"file_size"`

	// DownloadURL is the encrypted capability link string, unique per
	// record. Nil until the phase-two patch completes.
	DownloadURL *string `json:"download_url"`
}

// TableName returns the name of the database table
// associated with the FileRecord model.
func (f FileRecord) TableName() string {
	return "files"
}

// ClientFileView is the reduced projection of a FileRecord returned to
// client-role users. It deliberately omits the storage path and the uploader
// identity.
type ClientFileView struct {
	Filename    string    `json:"filename"`
	UploadDate  time.Time `json:"upload_date"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	DownloadURL string    `json:"download_url"`
}

// ClientView converts a full record into its client-facing projection.
// Records still waiting for their phase-two link patch render with an empty
// download URL.
func (f FileRecord) ClientView() ClientFileView {
	view := ClientFileView{
		Filename:   f.Filename,
		UploadDate: f.UploadDate,
		FileType:   f.FileType,
		FileSize:   f.FileSize,
	}
	if f.DownloadURL != nil {
		view.DownloadURL = *f.DownloadURL
	}

	return view
}
