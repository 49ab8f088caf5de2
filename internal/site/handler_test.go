package site_test

import (
	"testing"

	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestGetBiography(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/site/biography", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	data, _ := result.Data.(map[string]interface{})
	assert.Equal(t, "Abel Fabrice Ekra", data["name"])

	milestones, _ := data["milestones"].([]interface{})
	assert.Len(t, milestones, 5)
	first, _ := milestones[0].(map[string]interface{})
	assert.Equal(t, "2020", first["year"])

	qualities, _ := data["qualities"].([]interface{})
	assert.Len(t, qualities, 6)
}

func TestGetFAQ(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/site/faq", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	entries, _ := result.Data.([]interface{})
	assert.Len(t, entries, 6)

	first, _ := entries[0].(map[string]interface{})
	assert.Equal(t, "Qui est le Pasteur Abel Fabrice Ekra ?", first["question"])
}

func TestGetLinks(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/site/links", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	data, _ := result.Data.(map[string]interface{})

	assert.Equal(t, "tel:+2250757480317", data["phone"])
	whatsapp, _ := data["whatsapp"].(string)
	assert.Contains(t, whatsapp, "https://wa.me/2250757480317?text=")
	assert.Equal(t, "https://facebook.com/fabrice.ekra.754", data["facebook"])
	assert.Equal(t, "https://www.tiktok.com/@abelfabriceekra", data["tiktok"])
	assert.Equal(t, "https://www.instagram.com/abelfabriceekra", data["instagram"])
}

func TestSubmitContact(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "POST", "/contact", map[string]string{
		"name":    "Jean Kouassi",
		"email":   "jean@example.com",
		"subject": "Séminaire BARA",
		"message": "Comment participer à la prochaine session ?",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var message models.ContactMessage
	assert.NoError(t, database.DB.First(&message).Error)
	assert.Equal(t, "Jean Kouassi", message.Name)
	assert.Equal(t, "Comment participer à la prochaine session ?", message.Message)
}

func TestSubmitContactSanitizesMarkup(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "POST", "/contact", map[string]string{
		"name":    "Jean",
		"email":   "jean@example.com",
		"message": `Bonjour <script>alert("x")</script>`,
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var message models.ContactMessage
	assert.NoError(t, database.DB.First(&message).Error)
	assert.NotContains(t, message.Message, "<script>")
	assert.Contains(t, message.Message, "Bonjour")
}

func TestSubmitContactValidation(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "POST", "/contact", map[string]string{
		"name":  "",
		"email": "pas-un-email",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 422, resp.Code)
	testutils.AssertError(t, resp, "VALIDATION_ERROR")

	var count int64
	database.DB.Model(&models.ContactMessage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListContactMessagesRequiresAuth(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/contact/messages", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.Code)
}

func TestListContactMessagesNewestFirst(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	for _, msg := range []string{"premier", "deuxième"} {
		resp, err := testutils.MakeRequest(app, "POST", "/contact", map[string]string{
			"name":    "Jean",
			"email":   "jean@example.com",
			"message": msg,
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)
	}

	resp, err := testutils.MakeRequest(app, "GET", "/contact/messages", nil, token)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	messages, _ := result.Data.([]interface{})
	assert.Len(t, messages, 2)

	first, _ := messages[0].(map[string]interface{})
	assert.Equal(t, "deuxième", first["message"])
}
