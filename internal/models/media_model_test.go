package models_test

import (
	"testing"

	"github.com/ekralade/ministry-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTagListRoundTrip(t *testing.T) {
	record := models.MediaRecord{
		Tags: models.EncodeTags([]string{"Prières", "Admin"}),
	}
	assert.Equal(t, []string{"Prières", "Admin"}, record.TagList())
}

func TestTagListEmptyAndMalformed(t *testing.T) {
	assert.Nil(t, (&models.MediaRecord{}).TagList())

	record := models.MediaRecord{Tags: []byte("{not json")}
	assert.Nil(t, record.TagList())
}

func TestCategoryFromFirstTag(t *testing.T) {
	record := models.MediaRecord{
		MediaType: models.MediaTypeAudio,
		Tags:      models.EncodeTags([]string{"Témoignages", "Admin"}),
	}
	assert.Equal(t, "Témoignages", record.Category())
}

func TestCategoryFallsBackToTypeLabel(t *testing.T) {
	cases := map[string]string{
		models.MediaTypeImage:    "Photo",
		models.MediaTypeVideo:    "Vidéo",
		models.MediaTypeAudio:    "Audio",
		models.MediaTypeDocument: "Autre",
	}
	for mediaType, label := range cases {
		record := models.MediaRecord{MediaType: mediaType}
		assert.Equal(t, label, record.Category())
	}
}

func TestEncodeTagsEmpty(t *testing.T) {
	assert.Nil(t, models.EncodeTags(nil))
}
