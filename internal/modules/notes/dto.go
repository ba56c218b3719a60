package notes

// UploadForm mirrors the upload page fields. The file itself arrives as a
// multipart part and is validated separately.
type UploadForm struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"max=2000"`
	SubjectID   int64  `form:"subject" validate:"required"`
}
