package catalog

import (
	"time"

	"github.com/ekralade/ministry-api/internal/models"
)

// Editorial fallback content, curated before the admin panel existed.

func staticDate(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// clock converts a m:ss or h:mm:ss display duration into seconds.
func clock(parts ...int) *int {
	total := 0
	for _, p := range parts {
		total = total*60 + p
	}
	return &total
}

var photoFallback = []Item{
	{Title: "Abel Fabrice Ekra avec son équipe", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/0b2b9071-159f-4de4-9703-9e080ec9976a.png", Category: "Équipe", Source: SourceStatic},
	{Title: "Séminaire et formation", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/64aa1a73-7b7a-47eb-aee1-bf9bafa9b402.png", Category: "Formation", Source: SourceStatic},
	{Title: "Événement ministériel", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/d6dcb6a9-5f5e-4bad-8541-2269cc7ae657.png", Category: "Événement", Source: SourceStatic},
	{Title: "Moment de prédication", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/f163ef52-7f5d-4eff-9a59-07f9ee9e1787.png", Category: "Prédication", Source: SourceStatic},
	{Title: "Abel Fabrice Ekra en action", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/99ddb8ed-4bc0-4f9d-beea-3fa0fb683523.png", Category: "Ministère", Source: SourceStatic},
	{Title: "Conférence spirituelle", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/fad91b84-bf23-47c6-b0a2-681e6b8c638e.png", Category: "Conférence", Source: SourceStatic},
	{Title: "Média et interview", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/7bc07e4f-c190-4b8a-984b-620e78ef8966.png", Category: "Média", Source: SourceStatic},
	{Title: "Intervention publique", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/a1f224e8-7c76-448d-b698-160f36e46932.png", Category: "Public", Source: SourceStatic},
	{Title: "Portrait officiel", MediaType: models.MediaTypeImage, FileURL: "/lovable-uploads/e6076b8f-9dc0-46f8-bbd7-419a3ff88b03.png", Category: "Portrait", Source: SourceStatic},
}

var audioFallback = []Item{
	{
		Title:       "La Foi au Quotidien",
		Description: "Audio extrait de vidéo TikTok - Message inspirant sur la foi quotidienne",
		MediaType:   models.MediaTypeAudio,
		Category:    "TikTok",
		Duration:    clock(3, 45),
		Date:        staticDate("2024-01-20"),
		ExternalURL: "https://www.tiktok.com/@abelfabriceekra/video/7486104899072150790",
		Source:      SourceStatic,
	},
	{
		Title:       "Transformation Spirituelle",
		Description: "Audio extrait de vidéo TikTok - Témoignage de transformation",
		MediaType:   models.MediaTypeAudio,
		Category:    "TikTok",
		Duration:    clock(2, 15),
		Date:        staticDate("2024-01-18"),
		ExternalURL: "https://www.tiktok.com/@abelfabriceekra/video/7486837785354145029",
		Source:      SourceStatic,
	},
	{
		Title:       "Miracle et Délivrance",
		Description: "Audio extrait de vidéo TikTok - Message sur les miracles de Dieu",
		MediaType:   models.MediaTypeAudio,
		Category:    "TikTok",
		Duration:    clock(4, 30),
		Date:        staticDate("2024-01-15"),
		ExternalURL: "https://www.tiktok.com/@abelfabriceekra/video/7536265953848429880",
		Source:      SourceStatic,
	},
	{
		Title:       "La Puissance de la Foi",
		Description: "Prédication sur l'importance de la foi dans nos vies",
		MediaType:   models.MediaTypeAudio,
		Category:    "Prédication",
		Duration:    clock(45, 30),
		Date:        staticDate("2024-01-15"),
		Source:      SourceStatic,
	},
	{
		Title:       "Témoignage de Transformation",
		Description: "Histoire inspirante de changement spirituel",
		MediaType:   models.MediaTypeAudio,
		Category:    "Témoignage",
		Duration:    clock(25, 15),
		Date:        staticDate("2024-01-10"),
		Source:      SourceStatic,
	},
	{
		Title:       "Séminaire BARA - Session 1",
		Description: "Première session du séminaire de formation",
		MediaType:   models.MediaTypeAudio,
		Category:    "Formation",
		Duration:    clock(1, 12, 45),
		Date:        staticDate("2024-01-05"),
		Source:      SourceStatic,
	},
	{
		Title:       "Prière de Délivrance",
		Description: "Moment de prière puissant pour la libération",
		MediaType:   models.MediaTypeAudio,
		Category:    "Prière",
		Duration:    clock(30, 20),
		Date:        staticDate("2023-12-28"),
		Source:      SourceStatic,
	},
	{
		Title:       "Vision du Ministère LADÉ",
		Description: "Partage de la vision et mission du ministère",
		MediaType:   models.MediaTypeAudio,
		Category:    "Vision",
		Duration:    clock(38, 45),
		Date:        staticDate("2023-12-20"),
		Source:      SourceStatic,
	},
	{
		Title:       "Guérison et Miracles",
		Description: "Enseignement sur les dons spirituels",
		MediaType:   models.MediaTypeAudio,
		Category:    "Enseignement",
		Duration:    clock(42, 10),
		Date:        staticDate("2023-12-15"),
		Source:      SourceStatic,
	},
}

var videoFallback = []Item{
	{
		Title:       "Message spirituel inspirant",
		Description: "Enseignement sur la foi et la transformation",
		MediaType:   models.MediaTypeVideo,
		Category:    "TikTok",
		ExternalURL: "https://www.tiktok.com/@abelfabriceekra/video/7486104899072150790",
		Source:      SourceStatic,
	},
	{
		Title:       "Prédication puissante",
		Description: "Message de délivrance et de miracles",
		MediaType:   models.MediaTypeVideo,
		Category:    "TikTok",
		ExternalURL: "https://www.tiktok.com/@abelfabriceekra/video/7486837785354145029",
		Source:      SourceStatic,
	},
	{
		Title:       "Témoignage de foi",
		Description: "Partage d'expérience spirituelle édifiante",
		MediaType:   models.MediaTypeVideo,
		Category:    "TikTok",
		ExternalURL: "https://www.tiktok.com/@abelfabriceekra/video/7542886098343628037",
		Source:      SourceStatic,
	},
}
