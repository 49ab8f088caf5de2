// Package site serves the editorial site content: biography, FAQ, outbound
// contact links and the contact form. Everything except the form is static
// content assembled at boot.
package site

import (
	"net/url"
	"strings"

	"github.com/ekralade/ministry-api/internal/config"
)

type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Quality struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Achievement struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type Biography struct {
	Name         string        `json:"name"`
	Summary      []string      `json:"summary"`
	Vision       string        `json:"vision"`
	Milestones   []Milestone   `json:"milestones"`
	Qualities    []Quality     `json:"qualities"`
	Achievements []Achievement `json:"achievements"`
}

type FAQEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Links struct {
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Email     string `json:"email"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
	Instagram string `json:"instagram"`
}

var biography = Biography{
	Name: "Abel Fabrice Ekra",
	Summary: []string{
		"Homme de qualité et d'intégrité, de délivrance et de miracles, l'évangéliste et prophète Abel Ekra est le président du ministère LADÉ et le visionnaire du séminaire BARA qui pendant 3 ans n'a cessé de transformer et d'impacter le corps de Christ.",
		"Amoureux des âmes et du prophétique, il continue depuis plusieurs années d'user de la grâce de Dieu sur sa vie pour rassembler et proclamer les merveilles de la bonne nouvelle en Christ.",
		"En tant que coach, entrepreneur et pasteur, Abel Fabrice Ekra combine sa vision spirituelle avec un leadership moderne pour impacter positivement les communautés à travers l'Afrique et au-delà.",
	},
	Vision: "Rassembler les âmes, proclamer les merveilles de Dieu et transformer les cœurs par la puissance de l'Évangile. Notre mission est de voir chaque personne découvrir sa destinée en Christ et marcher dans la plénitude de sa grâce.",
	Milestones: []Milestone{
		{Year: "2020", Title: "Fondation du Ministère LADÉ", Description: "Création du ministère 'Les Anges De L'Évangile' avec une vision claire de transformation spirituelle"},
		{Year: "2021", Title: "Lancement du Séminaire BARA", Description: "Début des formations intensives qui ont transformé des centaines de vies pendant 3 années consécutives"},
		{Year: "2022", Title: "Expansion du Ministère", Description: "Élargissement des activités avec des événements d'envergure et des partenariats stratégiques"},
		{Year: "2023", Title: "Reconnaissance Internationale", Description: "Participation à des conférences internationales et établissement de partenariats globaux"},
		{Year: "2024", Title: "Vision Numérique", Description: "Développement de la présence digitale pour toucher plus d'âmes à travers le monde"},
	},
	Qualities: []Quality{
		{Title: "Intégrité", Description: "Homme de principes et de valeurs"},
		{Title: "Délivrance", Description: "Don de libération spirituelle"},
		{Title: "Miracles", Description: "Témoignages de guérisons"},
		{Title: "Prophétique", Description: "Révélations et visions"},
		{Title: "Leadership", Description: "Guide spirituel inspirant"},
		{Title: "Enseignement", Description: "Formateur et mentor"},
	},
	Achievements: []Achievement{
		{Number: "1000+", Label: "Vies Transformées"},
		{Number: "3", Label: "Années BARA"},
		{Number: "50+", Label: "Événements"},
		{Number: "5", Label: "Pays Touchés"},
	},
}

var faqs = []FAQEntry{
	{ID: "q1", Question: "Qui est le Pasteur Abel Fabrice Ekra ?", Answer: "Le Pasteur Abel Fabrice Ekra est un leader spirituel, coach et entrepreneur chrétien, fondateur du ministère LADÉ (Les Anges de l'Évangile) en Côte d'Ivoire."},
	{ID: "q2", Question: "Qu'est-ce que le Ministère LADÉ ?", Answer: "Le Ministère LADÉ signifie \"Les Anges de l'Évangile\". C'est une mission chrétienne qui œuvre pour la délivrance, l'évangélisation et l'édification spirituelle."},
	{ID: "q3", Question: "Qu'est-ce que le Séminaire BARA ?", Answer: "Le Séminaire BARA est une conférence spirituelle annuelle initiée par le Pasteur Abel Fabrice Ekra. Depuis plus de 3 ans, elle impacte des milliers de vies en Côte d'Ivoire et à l'international."},
	{ID: "q4", Question: "Comment participer aux événements du Pasteur Abel Fabrice Ekra ?", Answer: "Vous pouvez suivre le calendrier des activités directement sur le site, et vous inscrire via le formulaire de contact ou en rejoignant la communauté WhatsApp officielle."},
	{ID: "q5", Question: "Comment entrer en contact avec le Pasteur Abel Fabrice Ekra ?", Answer: "Vous pouvez utiliser la page Contact du site, envoyer un e-mail, ou écrire directement via WhatsApp en cliquant sur l'icône dédiée."},
	{ID: "q6", Question: "Le Pasteur Abel Fabrice Ekra propose-t-il des ressources en ligne ?", Answer: "Oui. Vous trouverez des enseignements, vidéos, audios et publications du Pasteur disponibles dans les sections Ressources et Médias du site."},
}

const whatsAppGreeting = "Bonjour, bienvenue, bénie de Dieu. Comment puis-je t'aider ?"

// BuildLinks derives the outbound contact links from the configured handles.
func BuildLinks(cfg *config.Config) Links {
	digits := strings.TrimPrefix(cfg.ContactPhone, "+")

	return Links{
		Phone:     "tel:" + cfg.ContactPhone,
		WhatsApp:  "https://wa.me/" + digits + "?text=" + url.QueryEscape(whatsAppGreeting),
		Email:     "mailto:" + cfg.ContactEmail,
		Facebook:  "https://facebook.com/" + cfg.FacebookHandle,
		TikTok:    "https://www.tiktok.com/@" + cfg.TikTokHandle,
		Instagram: "https://www.instagram.com/" + cfg.InstagramHandle,
	}
}
