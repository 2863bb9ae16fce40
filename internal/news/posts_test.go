package news

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Fichaje bomba en el mercado", "fichaje-bomba-en-el-mercado"},
		{"¡El Clásico termina 3-2!", "el-clasico-termina-3-2"},
		{"  Espacios   múltiples  ", "espacios-multiples"},
		{"Año nuevo, campeón nuevo", "ano-nuevo-campeon-nuevo"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestToPostUsesExplicitExcerpt(t *testing.T) {
	n := NewsItem{
		Title:   "Mercado abierto",
		Excerpt: "Resumen corto",
		Content: "Cuerpo completo de la noticia.",
		Author:  "Redacción",
		Date:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	n.ID = 7

	p := ToPost(n)
	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, "Resumen corto", p.Excerpt)
	assert.Equal(t, "mercado-abierto", p.Slug)
	assert.Equal(t, n.Date, p.Date)
}

func TestToPostCutsExcerptFromContent(t *testing.T) {
	long := strings.Repeat("palabra ", 50)
	p := ToPost(NewsItem{Title: "T", Content: long})

	assert.True(t, strings.HasSuffix(p.Excerpt, "…"))
	assert.LessOrEqual(t, len(p.Excerpt), excerptLength+len("…"))
	// Cut on a word boundary, not mid-word.
	trimmed := strings.TrimSuffix(p.Excerpt, "…")
	assert.False(t, strings.HasSuffix(trimmed, " "))
	assert.True(t, strings.HasPrefix(long, trimmed))
}

func TestToPostShortContentKeptWhole(t *testing.T) {
	p := ToPost(NewsItem{Title: "T", Content: "Breve."})
	assert.Equal(t, "Breve.", p.Excerpt)
}

func TestToPostsProjectsAll(t *testing.T) {
	items := []NewsItem{
		{Title: "Uno", Content: "a"},
		{Title: "Dos", Content: "b"},
	}
	posts := ToPosts(items)
	require.Len(t, posts, 2)
	assert.Equal(t, "uno", posts[0].Slug)
	assert.Equal(t, "dos", posts[1].Slug)
}
