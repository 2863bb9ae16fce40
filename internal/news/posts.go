package news

import (
	"strings"
	"time"
	"unicode"
)

// Post is the fan-facing projection of a NewsItem. It is computed on read;
// there is no posts table to keep in sync.
type Post struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Slug    string    `json:"slug"`
}

const excerptLength = 160

// ToPost projects a single news item into its feed representation. When the
// article carries no explicit excerpt, one is cut from the content.
func ToPost(n NewsItem) Post {
	excerpt := n.Excerpt
	if excerpt == "" {
		excerpt = makeExcerpt(n.Content)
	}
	return Post{
		ID:      n.ID,
		Title:   n.Title,
		Excerpt: excerpt,
		Content: n.Content,
		Author:  n.Author,
		Date:    n.Date,
		Slug:    Slugify(n.Title),
	}
}

// ToPosts projects a news collection into the feed shape.
func ToPosts(items []NewsItem) []Post {
	posts := make([]Post, 0, len(items))
	for _, n := range items {
		posts = append(posts, ToPost(n))
	}
	return posts
}

func makeExcerpt(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= excerptLength {
		return content
	}
	cut := content[:excerptLength]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}

// Slugify lowercases a title and reduces it to hyphen-separated ASCII words.
// Accented Spanish vowels are folded so slugs stay URL-safe.
func Slugify(title string) string {
	var b strings.Builder
	prevHyphen := true
	for _, r := range strings.ToLower(title) {
		switch r {
		case 'á':
			r = 'a'
		case 'é':
			r = 'e'
		case 'í':
			r = 'i'
		case 'ó':
			r = 'o'
		case 'ú', 'ü':
			r = 'u'
		case 'ñ':
			r = 'n'
		}
		if unicode.IsLetter(r) && r <= unicode.MaxASCII || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
