package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"legal-workspace-backend/internal/service"
)

// readUpload reads a multipart file, refusing files larger than maxBytes
func readUpload(header *multipart.FileHeader, maxBytes int64) (service.UploadFile, error) {
	if maxBytes > 0 && header.Size > maxBytes {
		return service.UploadFile{}, fmt.Errorf("%s exceeds the upload size limit", header.Filename)
	}

	f, err := header.Open()
	if err != nil {
		return service.UploadFile{}, err
	}
	defer f.Close()

	reader := io.Reader(f)
	if maxBytes > 0 {
		reader = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return service.UploadFile{}, err
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return service.UploadFile{}, fmt.Errorf("%s exceeds the upload size limit", header.Filename)
	}

	return service.UploadFile{Filename: header.Filename, Data: data}, nil
}
