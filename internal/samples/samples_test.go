package samples

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/mcncl/jobj/internal/errors"
	"github.com/mcncl/jobj/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"catalog", "duplicates", "growth", "nested"}, Names())
}

func TestBuild_Output(t *testing.T) {
	tests := []struct {
		name     string
		kind     models.Kind
		length   int
		capacity int
		expected string
	}{
		{
			name:     "catalog",
			kind:     models.KindObject,
			length:   5,
			capacity: 8,
			expected: "id: 42\n" +
				"name: widget\n" +
				"price: 9.990000\n" +
				"tags: red\nblue\n\n" +
				"dimensions: width: 1.500000\nheight: 2.000000\nunit: cm\n\n",
		},
		{
			name:     "nested",
			kind:     models.KindObject,
			length:   2,
			capacity: 2,
			expected: "a: 1\nb: 10\n20\n\n",
		},
		{
			name:     "growth",
			kind:     models.KindArray,
			length:   9,
			capacity: 16,
			expected: "1\n4\n9\n16\n25\n36\n49\n64\n81\n",
		},
		{
			name:     "duplicates",
			kind:     models.KindObject,
			length:   2,
			capacity: 2,
			expected: "x: 1\nx: 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Build(tt.name)
			require.NoError(t, err)
			defer doc.Destroy()

			assert.Equal(t, tt.kind, doc.Kind())
			assert.Equal(t, tt.length, doc.Len())
			assert.Equal(t, tt.capacity, doc.Cap())

			var buf bytes.Buffer
			require.NoError(t, models.NewPrinter(&buf, models.DefaultPrintOptions()).Print(doc))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestBuild_FreshDocumentEachTime(t *testing.T) {
	first, err := Build("nested")
	require.NoError(t, err)
	second, err := Build("nested")
	require.NoError(t, err)

	assert.NotSame(t, first, second)

	first.Destroy()
	assert.NotPanics(t, second.Destroy)
}

func TestBuild_Unknown(t *testing.T) {
	doc, err := Build("missing")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, stderrors.Is(err, errors.ErrUnknownSample))
	assert.Equal(t, "Input error: unknown sample 'missing'", errors.UserFriendlyError(err))
}
