package pdfwriter

import (
	"bytes"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textPage(label string) core.Page {
	return page.New().Add(
		row.New(10).Add(text.NewCol(12, label, props.Text{Size: 10})),
	)
}

func TestAssembleEmptyDocument(t *testing.T) {
	pdf, err := New().Assemble(nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestAssemblePreservesPageCount(t *testing.T) {
	pages := []core.Page{
		textPage("station 10"),
		textPage("station 20"),
		textPage("station 30"),
	}

	pdf, err := New().Assemble(pages)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.True(t, bytes.Contains(pdf, []byte("%%EOF")))

	// More pages means a strictly larger stream.
	single, err := New().Assemble([]core.Page{textPage("station 10")})
	require.NoError(t, err)
	assert.Greater(t, len(pdf), len(single))
}
