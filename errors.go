package autop

import (
	"errors"

	"github.com/alnah/go-autop/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrTemplateParse  = errors.New("document template parsing failed")
	ErrDocumentRender = pipeline.ErrDocumentRender
)
