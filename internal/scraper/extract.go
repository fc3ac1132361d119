package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors name the regions likely to hold the page's main content,
// tried in order.
var contentSelectors = []string{
	"main", `[role="main"]`, ".content", "#content",
	"article", ".documentation-content",
}

// Page is the extracted form of one documentation page.
type Page struct {
	Title       string
	Text        string
	ContentHTML string
}

// ExtractPage parses the HTML and pulls out the title and the main content
// region. Falls back to the whole body when no content selector matches.
func ExtractPage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	title := "Untitled"
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		title = strings.TrimSpace(h1.Text())
	} else if t := doc.Find("title").First(); t.Length() > 0 {
		title = strings.TrimSpace(t.Text())
	}

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = sel
			break
		}
	}
	if content == nil {
		content = doc.Find("body").First()
	}

	// Scripts and styles contribute no prose.
	content.Find("script, style").Remove()

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &Page{
		Title:       title,
		Text:        normalizeText(content.Text()),
		ContentHTML: contentHTML,
	}, nil
}

// normalizeText collapses blank lines and trims each line of the extracted
// text.
func normalizeText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
