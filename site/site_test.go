package site_test

import (
	"testing"

	"docsite/docx"
	"docsite/site"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleDocument mirrors the structure of a real source document: home
// title, menu, site title block, home content, home preview marker, footer,
// and two dynamic sections.
func sampleDocument() []docx.Paragraph {
	return []docx.Paragraph{
		para("Title", "Главная"),
		para("2", "Меню"),
		para("3", "Новости"),
		para("3", "Документы"),
		para("2", "Название"),
		para("", "Школа №1"),
		para("", "г. Светлый"),
		para("", "", "rId1"),
		para("2", "Контент"),
		para("", "Добро пожаловать."),
		para("2", "Новости"),
		para("2", "Нижний колонтитул"),
		para("", "ул. Школьная, 1"),
		para("1", "Новости"),
		para("3", "Событие A"),
		para("4", "Дата: 11.08.2024"),
		para("", "Текст A.", "rId2"),
		para("3", "Событие B"),
		para("4", "Дата: 12.08.2024"),
		para("", "Текст B."),
		para("1", "Документы"),
		para("", "Устав школы."),
	}
}

// TestBuild_Sections verifies menu-driven sections with the fixed news
// slug and a transliterated slug for everything else.
func TestBuild_Sections(t *testing.T) {
	s, err := site.Build(sampleDocument())
	require.NoError(t, err)

	require.Len(t, s.Sections, 2)
	assert.Equal(t, "Новости", s.Sections[0].Title)
	assert.Equal(t, "news", s.Sections[0].Slug)
	assert.Equal(t, "Документы", s.Sections[1].Title)
	assert.Equal(t, "dokumenty", s.Sections[1].Slug)

	news := s.NewsSection()
	require.NotNil(t, news)
	assert.Len(t, news.Items, 2)
}

// TestBuild_NewsSortedByDateDescending verifies listing order is newest
// first even though the document lists the older entry first.
func TestBuild_NewsSortedByDateDescending(t *testing.T) {
	s, err := site.Build(sampleDocument())
	require.NoError(t, err)

	news := s.NewsSection()
	require.Len(t, news.Items, 2)
	assert.Equal(t, "Событие B", news.Items[0].Title)
	assert.Equal(t, "Событие A", news.Items[1].Title)
}

// TestBuild_SiteChrome verifies title block, footer, logo, and home
// preview keys.
func TestBuild_SiteChrome(t *testing.T) {
	s, err := site.Build(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, "Главная", s.HomeTitle)
	assert.Equal(t, "Школа №1", s.Title)
	assert.Equal(t, "Школа №1", s.HeaderMain)
	assert.Equal(t, "г. Светлый", s.HeaderSub)
	assert.Equal(t, "ул. Школьная, 1", s.FooterText)
	assert.Equal(t, "rId1", s.LogoID)
	assert.Equal(t, []string{"новости"}, s.HomePreviewKeys)

	require.Len(t, s.HomeBlocks, 1)
	assert.Equal(t, "Добро пожаловать.", s.HomeBlocks[0].Text)
}

// TestBuild_PreambleDiscarded verifies blocks before any section heading
// are dropped.
func TestBuild_PreambleDiscarded(t *testing.T) {
	s, err := site.Build([]docx.Paragraph{
		para("Title", "Главная"),
		para("", "Случайный текст без раздела."),
		para("2", "Меню"),
		para("3", "Новости"),
		para("1", "Новости"),
		para("3", "Событие"),
		para("", "Текст."),
	})
	require.NoError(t, err)

	news := s.NewsSection()
	require.NotNil(t, news)
	require.Len(t, news.Items, 1)
	assert.Equal(t, "Текст.", news.Items[0].Body)
}

// TestBuild_NoHeadings verifies a document with only a title yields a
// valid, empty site.
func TestBuild_NoHeadings(t *testing.T) {
	s, err := site.Build([]docx.Paragraph{para("", "Главная")})
	require.NoError(t, err)
	assert.Empty(t, s.Sections)
	assert.Nil(t, s.NewsSection())
}

// TestBuild_EmptyDocument verifies an empty document is the one fatal
// condition.
func TestBuild_EmptyDocument(t *testing.T) {
	_, err := site.Build(nil)
	assert.Error(t, err)
}

// TestBuild_MenuFallsBackToSectionOrder verifies that without a «Меню»
// section the menu follows section order.
func TestBuild_MenuFallsBackToSectionOrder(t *testing.T) {
	s, err := site.Build([]docx.Paragraph{
		para("Title", "Главная"),
		para("1", "Новости"),
		para("3", "Событие"),
		para("", "Текст."),
		para("1", "Контакты"),
		para("", "Телефон."),
	})
	require.NoError(t, err)

	require.Len(t, s.Sections, 2)
	assert.Equal(t, "news", s.Sections[0].Slug)
	assert.Equal(t, "kontakty", s.Sections[1].Slug)
}

// TestBuild_SlugCollisions verifies identical titles get deterministic
// numeric suffixes in document order.
func TestBuild_SlugCollisions(t *testing.T) {
	doc := []docx.Paragraph{
		para("Title", "Главная"),
		para("1", "Новости"),
		para("3", "Событие"),
		para("", "Первый."),
		para("3", "Событие"),
		para("", "Второй."),
		para("3", "Событие"),
		para("", "Третий."),
	}

	s, err := site.Build(doc)
	require.NoError(t, err)
	news := s.NewsSection()
	require.Len(t, news.Items, 3)

	slugs := map[string]string{}
	for _, it := range news.Items {
		slugs[it.Body] = it.Slug
	}
	assert.Equal(t, "sobytie", slugs["Первый."])
	assert.Equal(t, "sobytie-2", slugs["Второй."])
	assert.Equal(t, "sobytie-3", slugs["Третий."])

	// Re-running on the same input reproduces the same slugs.
	again, err := site.Build(doc)
	require.NoError(t, err)
	for i := range news.Items {
		assert.Equal(t, news.Items[i].Slug, again.NewsSection().Items[i].Slug)
	}
}

// TestBuild_UndatedAfterDated verifies undated items sort after dated ones
// in document order, and equal dates keep document order.
func TestBuild_UndatedAfterDated(t *testing.T) {
	s, err := site.Build([]docx.Paragraph{
		para("Title", "Главная"),
		para("1", "Новости"),
		para("3", "Без даты 1"),
		para("", "a."),
		para("3", "Датированное"),
		para("4", "Дата: 01.01.2024"),
		para("", "b."),
		para("3", "Без даты 2"),
		para("", "c."),
		para("3", "Тоже 01.01"),
		para("4", "Дата: 01.01.2024"),
		para("", "d."),
	})
	require.NoError(t, err)

	news := s.NewsSection()
	require.Len(t, news.Items, 4)
	assert.Equal(t, "Датированное", news.Items[0].Title)
	assert.Equal(t, "Тоже 01.01", news.Items[1].Title, "equal dates keep document order")
	assert.Equal(t, "Без даты 1", news.Items[2].Title)
	assert.Equal(t, "Без даты 2", news.Items[3].Title)
}
