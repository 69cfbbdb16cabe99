package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nao1215/markdown"
)

// pageSection is one anchored block of the page converted to markdown.
type pageSection struct {
	ID       string // Anchor id, e.g. "benefits"
	Title    string // First heading inside the section
	Markdown string
}

// extractSections walks the rendered page and converts every anchored section,
// in document order, into markdown.
func extractSections(r io.Reader) ([]pageSection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	// Scripts and styles carry no reading content
	doc.Find("script, style, noscript").Remove()

	var sections []pageSection
	doc.Find("main > section[id], footer[id]").Each(func(i int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		sections = append(sections, pageSection{
			ID:       id,
			Title:    collapseSpace(s.Find("h1, h2").First().Text()),
			Markdown: sectionMarkdown(s),
		})
	})

	if len(sections) == 0 {
		return nil, errors.New("page has no anchored sections")
	}
	return sections, nil
}

// sectionMarkdown converts the readable elements of one section to markdown.
func sectionMarkdown(sel *goquery.Selection) string {
	md := markdown.NewMarkdown(io.Discard)

	inList := false
	sel.Find("h1, h2, h3, h4, p, li, blockquote, img, a.button").Each(func(i int, s *goquery.Selection) {
		tagName := goquery.NodeName(s)
		text := collapseSpace(s.Text())

		// Close a running bullet list before any other block
		if inList && tagName != "li" {
			md.PlainText("")
			inList = false
		}

		switch tagName {
		case "h1":
			md.H1(text)
		case "h2":
			md.H2(text)
		case "h3", "h4":
			md.H3(text)
		case "li":
			md.BulletList(text)
			inList = true
			return
		case "blockquote":
			md.Blockquote(text)
		case "img":
			// Avatars are decoration
			if s.HasClass("avatar") {
				return
			}
			alt, _ := s.Attr("alt")
			if alt == "" {
				return
			}
			md.PlainText(markdown.Italic("🖼 " + alt))
		case "a":
			md.PlainText(markdown.Bold("[ " + text + " ]"))
		default: // paragraphs
			if text == "" {
				return
			}
			if s.HasClass("badge") {
				md.PlainText(markdown.Bold(strings.ToUpper(text)))
			} else {
				md.PlainText(text)
			}
		}
		md.PlainText("")
	})

	return md.String()
}

// inspectHTML checks a rendered page: every header link must point at exactly
// one element id and exactly one plan card must be featured.
func inspectHTML(r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	ids := make(map[string]int)
	doc.Find("[id]").Each(func(i int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids[id]++
	})

	var errs []error
	for id, n := range ids {
		if n > 1 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateSection, id))
		}
	}

	doc.Find("nav a[href^='#']").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if ids[strings.TrimPrefix(href, "#")] == 0 {
			errs = append(errs, fmt.Errorf("%w: %s -> %q", ErrAnchor, collapseSpace(s.Text()), href))
		}
	})

	if n := doc.Find(".plan.featured").Length(); n != 1 {
		errs = append(errs, fmt.Errorf("%w: found %d", ErrFeaturedPlan, n))
	}

	return errors.Join(errs...)
}

// collapseSpace trims text and folds internal runs of whitespace into one space.
func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
