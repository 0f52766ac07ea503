package models

import "io"

// ResumeContentType is the only accepted resume media type.
const ResumeContentType = "application/pdf"

// ResumeFile is an open resume download. The caller must close Body.
type ResumeFile struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
