package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSections(t *testing.T) []pageSection {
	t.Helper()
	html, err := pageHTML(defaultPage(), defaultCompactThreshold)
	require.NoError(t, err)
	sections, err := extractSections(bytes.NewReader(html))
	require.NoError(t, err)
	return sections
}

func TestExtractSectionsInPageOrder(t *testing.T) {
	sections := defaultSections(t)

	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	assert.Equal(t, sectionIDs, ids)

	assert.Equal(t, "Ignite Your Natural Power.", sections[0].Title)
	assert.Equal(t, "Why Ginger Shot?", sections[1].Title)
	assert.Equal(t, "Choose Your Power", sections[3].Title)
}

func TestExtractSectionsMarkdown(t *testing.T) {
	sections := defaultSections(t)
	byID := make(map[string]pageSection, len(sections))
	for _, s := range sections {
		byID[s.ID] = s
	}

	benefits := byID["benefits"].Markdown
	assert.Contains(t, benefits, "## Why Ginger Shot?")
	assert.Contains(t, benefits, "Immunity Shield")

	ingredients := byID["ingredients"].Markdown
	assert.Contains(t, ingredients, "- Organic Ginger: Sourced from Kaduna")
	assert.Contains(t, ingredients, "🖼 Fresh Ginger")
	assert.Contains(t, ingredients, "[ LEARN ABOUT OUR SOURCING ]")

	pricing := byID["pricing"].Markdown
	assert.Equal(t, 1, strings.Count(pricing, "MOST POPULAR"))
	assert.Contains(t, pricing, "₦7,500 / 7 Shots")
	assert.Less(t, strings.Index(pricing, "MOST POPULAR"), strings.Index(pricing, "Power Bundle"))

	reviews := byID["reviews"].Markdown
	assert.Contains(t, reviews, "> I used to drink 4 coffees a day.")
	assert.Contains(t, reviews, "Chidi O., Tech Lead, Lagos")

	hero := byID["hero"].Markdown
	assert.NotContains(t, hero, "🖼 User", "avatars are skipped")
	assert.Contains(t, hero, "🖼 Ginger Shot Bottle")
}

func TestExtractSectionsDropsScripts(t *testing.T) {
	for _, s := range defaultSections(t) {
		assert.NotContains(t, s.Markdown, "addEventListener")
	}
}

func TestExtractSectionsEmptyDocument(t *testing.T) {
	_, err := extractSections(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	assert.Error(t, err)
}

func TestInspectHTML(t *testing.T) {
	html, err := pageHTML(defaultPage(), defaultCompactThreshold)
	require.NoError(t, err)
	assert.NoError(t, inspectHTML(bytes.NewReader(html)))
}

func TestInspectHTMLBrokenPage(t *testing.T) {
	const doc = `<html><body>
<nav><a href="#benefits">Benefits</a><a href="#missing">Missing</a></nav>
<main>
  <section id="benefits"></section>
  <section id="benefits"></section>
  <section id="pricing"><div class="plan"></div><div class="plan"></div></section>
</main>
</body></html>`

	err := inspectHTML(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnchor)
	assert.ErrorIs(t, err, ErrDuplicateSection)
	assert.ErrorIs(t, err, ErrFeaturedPlan)
	assert.Contains(t, err.Error(), `"#missing"`)
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", collapseSpace("  a\n\t b   c \n"))
	assert.Empty(t, collapseSpace(" \n "))
}
