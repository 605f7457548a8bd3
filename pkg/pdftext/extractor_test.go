package pdftext_test

import (
	"testing"

	"skillmatch-backend/pkg/pdftext"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsBadInput(t *testing.T) {
	ex := pdftext.NewExtractor()

	t.Run("Should fail on empty input", func(t *testing.T) {
		_, err := ex.ExtractText(nil)
		assert.ErrorIs(t, err, pdftext.ErrEmptyDocument)
	})

	t.Run("Should fail without panicking on garbage", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_, err := ex.ExtractText([]byte("%PDF-1.4 this is not really a pdf"))
			assert.Error(t, err)
		})
	})
}
