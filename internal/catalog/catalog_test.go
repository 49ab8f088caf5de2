package catalog_test

import (
	"testing"

	"github.com/ekralade/ministry-api/internal/catalog"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func dynamicItem(title, category string) catalog.Item {
	return catalog.Item{
		Title:     title,
		MediaType: models.MediaTypeAudio,
		FileURL:   "/uploads/audio/1.mp3",
		Category:  category,
		Source:    catalog.SourceDynamic,
	}
}

func TestMergePhotosAppendsUploads(t *testing.T) {
	uploads := []catalog.Item{{
		Title:     "Nouvelle photo",
		MediaType: models.MediaTypeImage,
		FileURL:   "/uploads/photos/1.png",
		Category:  "Admin",
		Source:    catalog.SourceDynamic,
	}}

	merged := catalog.Merge(models.MediaTypeImage, uploads)

	assert.Greater(t, len(merged), 1)
	assert.Equal(t, catalog.SourceStatic, merged[0].Source)
	assert.Equal(t, "Nouvelle photo", merged[len(merged)-1].Title)
}

func TestMergeAudioPrefersUploads(t *testing.T) {
	uploads := []catalog.Item{dynamicItem("Prédication récente", "Prédications")}

	merged := catalog.Merge(models.MediaTypeAudio, uploads)
	assert.Equal(t, uploads, merged)

	// With no uploads the editorial set takes over.
	fallback := catalog.Merge(models.MediaTypeAudio, nil)
	assert.NotEmpty(t, fallback)
	assert.Equal(t, catalog.SourceStatic, fallback[0].Source)
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	items := []catalog.Item{
		dynamicItem("a", "Prédications"),
		dynamicItem("b", "Prières"),
		dynamicItem("c", "Prédications"),
		dynamicItem("d", "Témoignages"),
	}

	categories := catalog.Categories(items)
	assert.Equal(t, []string{"Tous", "Prédications", "Prières", "Témoignages"}, categories)
}

func TestFilterIsPure(t *testing.T) {
	items := []catalog.Item{
		dynamicItem("a", "Prédications"),
		dynamicItem("b", "Prières"),
	}

	all := catalog.Filter(items, "Tous")
	assert.Len(t, all, 2)

	empty := catalog.Filter(items, "")
	assert.Len(t, empty, 2)

	prayers := catalog.Filter(items, "Prières")
	assert.Len(t, prayers, 1)
	assert.Equal(t, "b", prayers[0].Title)

	none := catalog.Filter(items, "Inexistant")
	assert.Empty(t, none)
}

func TestListCatalogEndpoint(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/catalog/audio", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	assert.True(t, result.Success)

	data, ok := result.Data.(map[string]interface{})
	assert.True(t, ok)

	items, _ := data["items"].([]interface{})
	assert.NotEmpty(t, items, "empty table must fall back to editorial audio")

	categories, _ := data["categories"].([]interface{})
	assert.Equal(t, "Tous", categories[0])
}

func TestListCatalogCategoryFilter(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/catalog/audio?category=TikTok", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	data, _ := result.Data.(map[string]interface{})

	items, _ := data["items"].([]interface{})
	assert.Len(t, items, 3)
	for _, raw := range items {
		item, _ := raw.(map[string]interface{})
		assert.Equal(t, "TikTok", item["category"])
	}

	// Categories describe the full merged list, not the filtered slice.
	categories, _ := data["categories"].([]interface{})
	assert.Greater(t, len(categories), 2)
}

func TestListCatalogUnknownKind(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/catalog/documents", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.Code)
}
