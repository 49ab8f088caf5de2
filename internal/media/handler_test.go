package media_test

import (
	"bytes"
	"testing"

	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/storage"
	"github.com/ekralade/ministry-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestUploadAudioSuccess(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	content := bytes.Repeat([]byte("a"), 32000)
	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/audio", map[string]string{
		"title":       "Prière du matin",
		"description": "Moment de prière",
		"group":       "Prières",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "priere.mp3",
		ContentType: "audio/mpeg",
		Content:     content,
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)
	testutils.AssertSuccess(t, resp)

	var record models.MediaRecord
	assert.NoError(t, database.DB.First(&record).Error)
	assert.Equal(t, "Prière du matin", record.Title)
	assert.Equal(t, models.MediaTypeAudio, record.MediaType)
	assert.Equal(t, []string{"Prières", "Admin"}, record.TagList())
	assert.Equal(t, "Prières", record.Category())
	assert.NotEmpty(t, record.FileURL)
	if assert.NotNil(t, record.Duration) {
		assert.Equal(t, 2, *record.Duration)
	}
}

func TestUploadPhotoSetsThumbnail(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/photos", map[string]string{
		"title": "Portrait officiel",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "portrait.png",
		ContentType: "image/png",
		Content:     []byte("fake png bytes"),
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var record models.MediaRecord
	assert.NoError(t, database.DB.First(&record).Error)
	assert.Equal(t, record.FileURL, record.ThumbnailURL)
	assert.Equal(t, []string{"Admin"}, record.TagList())
	assert.Nil(t, record.Duration)
}

func TestUploadRejectsWrongMimeType(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/audio", map[string]string{
		"title": "Pas un audio",
		"group": "Prières",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "video.mp4",
		ContentType: "video/mp4",
		Content:     []byte("mp4 bytes"),
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, 400, resp.Code)
	testutils.AssertError(t, resp, "BAD_REQUEST")

	// A rejected upload must leave no trace behind.
	var count int64
	database.DB.Model(&models.MediaRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUploadRequiresTitle(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/photos", map[string]string{}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		Content:     []byte("jpeg bytes"),
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, 422, resp.Code)
	testutils.AssertError(t, resp, "VALIDATION_ERROR")
}

func TestUploadAudioRequiresGroup(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/audio", map[string]string{
		"title": "Sans groupe",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "audio.mp3",
		ContentType: "audio/mpeg",
		Content:     []byte("mp3 bytes"),
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, 422, resp.Code)
	testutils.AssertError(t, resp, "VALIDATION_ERROR")
}

func TestUploadAudioRejectsUnknownGroup(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/audio", map[string]string{
		"title": "Mauvais groupe",
		"group": "Podcasts",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "audio.mp3",
		ContentType: "audio/mpeg",
		Content:     []byte("mp3 bytes"),
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, 400, resp.Code)
	testutils.AssertError(t, resp, "BAD_REQUEST")
}

func TestUploadRequiresAuth(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/photos", map[string]string{
		"title": "Sans jeton",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		Content:     []byte("jpeg bytes"),
	}, "")

	assert.NoError(t, err)
	assert.Equal(t, 401, resp.Code)
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/photos", map[string]string{
		"title": "Trop lourd",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "huge.png",
		ContentType: "image/png",
		Content:     bytes.Repeat([]byte("x"), 10*1024*1024+1),
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, 400, resp.Code)
	testutils.AssertError(t, resp, "BAD_REQUEST")
}

func TestListMediaNewestFirst(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	for _, title := range []string{"Premier", "Deuxième"} {
		resp, err := testutils.MakeUploadRequest(app, "POST", "/media/audio", map[string]string{
			"title": title,
			"group": "Prédications",
		}, &testutils.FileUpload{
			FieldName:   "file",
			FileName:    "audio.mp3",
			ContentType: "audio/mpeg",
			Content:     []byte("mp3 bytes"),
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)
	}

	resp, err := testutils.MakeRequest(app, "GET", "/media/?type=audio", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	records, ok := result.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, records, 2)

	first, _ := records[0].(map[string]interface{})
	assert.Equal(t, "Deuxième", first["title"])
}

func TestDeleteKeepsStoredObject(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeUploadRequest(app, "POST", "/media/photos", map[string]string{
		"title": "À supprimer",
	}, &testutils.FileUpload{
		FieldName:   "file",
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		Content:     []byte("jpeg bytes"),
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var record models.MediaRecord
	assert.NoError(t, database.DB.First(&record).Error)
	assert.True(t, storage.ObjectExists(record.FileURL))

	del, err := testutils.MakeRequest(app, "DELETE", "/media/"+record.ID, nil, token)
	assert.NoError(t, err)
	assert.Equal(t, 204, del.Code)

	var count int64
	database.DB.Model(&models.MediaRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// The row is gone but the stored file still resolves.
	assert.True(t, storage.ObjectExists(record.FileURL))
}

func TestDeleteUnknownMedia(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeRequest(app, "DELETE", "/media/does-not-exist", nil, token)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.Code)
	testutils.AssertError(t, resp, "NOT_FOUND")
}

func TestListGroups(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/media/groups", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	data, ok := result.Data.(map[string]interface{})
	assert.True(t, ok)
	audio, _ := data["audio"].([]interface{})
	assert.Contains(t, audio, "Séminaires BARA")
}
