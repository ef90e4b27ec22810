package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	apperrors "legal-workspace-backend/internal/errors"
)

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var supportedUploads = map[string]string{
	".txt":  "text/plain; charset=utf-8",
	".md":   "text/markdown; charset=utf-8",
	".pdf":  "application/pdf",
	".docx": docxMimeType,
}

// ConvertedFile is the derived copy of an upload
type ConvertedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TextConverter stores text formats as they are and turns .docx into markdown text
type TextConverter struct{}

// NewTextConverter creates a new converter
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// UploadContentType returns the MIME type of a supported upload
func UploadContentType(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := supportedUploads[ext]
	if !ok {
		return "", apperrors.NewValidationError("files", fmt.Sprintf("unsupported file type %q", ext))
	}
	return contentType, nil
}

// Convert returns the converted copy of the file
func (c *TextConverter) Convert(filename string, data []byte) (*ConvertedFile, error) {
	contentType, err := UploadContentType(filename)
	if err != nil {
		return nil, err
	}

	if contentType != docxMimeType {
		return &ConvertedFile{Filename: filename, ContentType: contentType, Data: data}, nil
	}

	text, err := docxText(data)
	if err != nil {
		return nil, apperrors.NewValidationError("files", fmt.Sprintf("could not read %s: %v", filename, err))
	}
	return &ConvertedFile{
		Filename:    strings.TrimSuffix(filename, filepath.Ext(filename)) + ".md",
		ContentType: supportedUploads[".md"],
		Data:        []byte(text),
	}, nil
}

// docxText extracts the paragraphs of word/document.xml, one per line
func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range archive.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return paragraphs(rc)
	}
	return "", fmt.Errorf("word/document.xml missing")
}

func paragraphs(r io.Reader) (string, error) {
	var out strings.Builder
	inText := false
	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return strings.TrimSpace(out.String()), nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				out.WriteByte('\t')
			case "br":
				out.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				out.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				out.Write(t)
			}
		}
	}
}
