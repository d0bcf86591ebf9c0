package dataset

import (
	"context"
	"testing"

	"ebook-library/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		aggressive bool
		want       string
	}{
		{"brackets", "Suç ve Ceza (Tam Metin) [PDF]", false, "Suç ve Ceza"},
		{"every bracket kind", "Başlık (bir) {iki} <üç>", false, "Başlık"},
		{"math symbols", "E = mc² + Evren", false, "E mc² Evren"},
		{"hyphenated name kept", "Jean-Paul Sartre", false, "Jean-Paul Sartre"},
		{"trailing separators", "- Kürk Mantolu Madonna -", false, "Kürk Mantolu Madonna"},
		{"whitespace", "  Çalıkuşu   \t Roman ", false, "Çalıkuşu Roman"},
		{"aggressive punctuation", "Dr. Jekyll & Mr. Hyde!", true, "Dr Jekyll Mr Hyde"},
		{"aggressive quotes", "“Sefiller” #1", true, "Sefiller 1"},
		{"only brackets", "(2019)", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in, tt.aggressive))
		})
	}
}

func TestCleaner(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	seed(t, store,
		catalog.Book{Title: "Suç ve Ceza (Tam Metin)", Author: "Dostoyevski", FilePath: "/lib/1.pdf"},
		catalog.Book{Title: "(2019)", Author: "Yazar [Çev.]", FilePath: "/lib/2.pdf"},
		catalog.Book{Title: "Temiz", Author: "Yazar", FilePath: "/lib/3.pdf"},
	)
	c := NewCleaner(store, zap.NewNop())

	preview, err := c.Run(ctx, CleanOptions{Preview: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, preview.Total)
	assert.Equal(t, 2, preview.Changed)
	assert.Equal(t, 1, preview.TitlesChanged)
	assert.Equal(t, 1, preview.AuthorsChanged)
	assert.False(t, preview.Applied)
	require.Len(t, preview.Preview, 1)
	assert.Equal(t, "Suç ve Ceza", preview.Preview[0].NewTitle)

	b, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Suç ve Ceza (Tam Metin)", b.Title)

	applied, err := c.Run(ctx, CleanOptions{Apply: true})
	require.NoError(t, err)
	assert.True(t, applied.Applied)

	b, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Suç ve Ceza", b.Title)

	b, err = store.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "(2019)", b.Title)
	assert.Equal(t, "Yazar", b.Author)

	again, err := c.Run(ctx, CleanOptions{})
	require.NoError(t, err)
	assert.Zero(t, again.Changed)
}
