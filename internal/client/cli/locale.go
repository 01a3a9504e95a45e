package cli

import "strings"

// headings holds the localized screen titles. Only titles are localized;
// the content itself is the same in every locale.
type headings struct {
	Welcome    string
	Login      string
	Home       string
	Give       string
	Events     string
	EventInfo  string
	CheckIn    string
	More       string
	Groups     string
	Worship    string
	Schedule   string
	Kids       string
	Devotional string
	Profile    string
}

var locales = map[string]headings{
	"en": {
		Welcome:    "Welcome",
		Login:      "Sign in",
		Home:       "Home",
		Give:       "Tithes & Offerings",
		Events:     "Events",
		EventInfo:  "Event Details",
		CheckIn:    "Check-in",
		More:       "More",
		Groups:     "Groups",
		Worship:    "Worship Ministry",
		Schedule:   "Worship Schedule",
		Kids:       "Kids Ministry",
		Devotional: "Daily Devotional",
		Profile:    "Profile",
	},
	"pt": {
		Welcome:    "Bem-vindo",
		Login:      "Entrar",
		Home:       "Início",
		Give:       "Dízimos e Ofertas",
		Events:     "Eventos",
		EventInfo:  "Detalhes do Evento",
		CheckIn:    "Check-in",
		More:       "Mais",
		Groups:     "Grupos",
		Worship:    "Ministério de Louvor",
		Schedule:   "Escala de Louvor",
		Kids:       "Ministério Infantil",
		Devotional: "Devocional Diário",
		Profile:    "Perfil",
	},
}

// headingsFor falls back to English for unknown locales.
func headingsFor(locale string) headings {
	if h, ok := locales[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return h
	}
	return locales["en"]
}
