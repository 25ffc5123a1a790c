// Package loader parses OpenAPI 3.x and Swagger 2.0 documents and converts
// them into the version-neutral document model the rest of the pipeline
// works on.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"

	"github.com/specslice/specslice/internal/model"
	"github.com/specslice/specslice/internal/specerr"
)

// LoadFile reads and parses a document from disk. Relative file references
// resolve against the document's directory.
func LoadFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	config := &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	}

	return loadWithConfig(data, config)
}

// Load parses an in-memory OpenAPI 3.x or Swagger 2.0 document.
func Load(data []byte) (*model.Document, error) {
	return loadWithConfig(data, nil)
}

func loadWithConfig(data []byte, config *datamodel.DocumentConfiguration) (*model.Document, error) {
	var doc libopenapi.Document
	var err error

	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(data, config)
	} else {
		doc, err = libopenapi.NewDocument(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	version := doc.GetVersion()
	switch {
	case strings.HasPrefix(version, "3."):
		m, err := doc.BuildV3Model()
		if err != nil {
			return nil, fmt.Errorf("building OpenAPI model: %w", err)
		}
		return transformV3(version, &m.Model), nil
	case strings.HasPrefix(version, "2."):
		m, err := doc.BuildV2Model()
		if err != nil {
			return nil, fmt.Errorf("building Swagger model: %w", err)
		}
		return transformV2(version, &m.Model), nil
	}

	return nil, fmt.Errorf("%w: %s", specerr.ErrUnsupportedVersion, version)
}
