package requests

import "io"

// RequestOptions carries the per-call settings of a body-carrying request. An empty
// ContentType means no Content-Type header is sent.
type RequestOptions struct {
	ContentType string
	Headers     map[string]string
}

type RequestOption func(*RequestOptions)

// FileUpload is one file part of a multipart body.
type FileUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// StoredObject is a file read from object storage, ready to be sent as an upload part.
type StoredObject struct {
	FileUpload
	Size   int64
	Closer io.Closer
}

func (o *StoredObject) Close() error {
	if o == nil || o.Closer == nil {
		return nil
	}
	return o.Closer.Close()
}
