// Package content provides the built-in demo pages: home with the click
// counter, about, the not-found fallback, and the bootstrap error panel.
// Page text is localized; English is the default and Italian is bundled.
package content

import (
	"fmt"
	"html"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Pages renders the built-in pages for one locale.
type Pages struct {
	loc *i18n.Localizer
}

// NewPages builds the message bundle and a localizer for the given locale,
// which must be a well-formed BCP 47 tag like "en" or "it". Tags without
// bundled messages fall back to English.
func NewPages(locale string) (*Pages, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("content: parsing locale %q: %w", locale, err)
	}

	bundle := i18n.NewBundle(language.English)

	err = bundle.AddMessages(language.English,
		&i18n.Message{ID: "home_title", Other: "Welcome"},
		&i18n.Message{ID: "home_body", Other: "This page is swapped in place, no reloads."},
		&i18n.Message{ID: "count_clicks", Other: "Count clicks"},
		&i18n.Message{ID: "about_title", Other: "About"},
		&i18n.Message{ID: "about_body", Other: "A tiny client-side navigator."},
		&i18n.Message{ID: "back_home", Other: "Back home"},
		&i18n.Message{ID: "not_found_title", Other: "Not Found"},
		&i18n.Message{ID: "not_found_body", Other: "No page is registered for {{.Path}}"},
		&i18n.Message{ID: "error_title", Other: "Something went wrong"},
		&i18n.Message{ID: "reload", Other: "Reload"},
	)
	if err != nil {
		return nil, fmt.Errorf("content: adding english messages: %w", err)
	}

	err = bundle.AddMessages(language.Italian,
		&i18n.Message{ID: "home_title", Other: "Benvenuto"},
		&i18n.Message{ID: "home_body", Other: "Questa pagina viene sostituita sul posto, senza ricaricare."},
		&i18n.Message{ID: "count_clicks", Other: "Conta i clic"},
		&i18n.Message{ID: "about_title", Other: "Informazioni"},
		&i18n.Message{ID: "about_body", Other: "Un piccolo navigatore lato client."},
		&i18n.Message{ID: "back_home", Other: "Torna alla home"},
		&i18n.Message{ID: "not_found_title", Other: "Pagina non trovata"},
		&i18n.Message{ID: "not_found_body", Other: "Nessuna pagina registrata per {{.Path}}"},
		&i18n.Message{ID: "error_title", Other: "Qualcosa è andato storto"},
		&i18n.Message{ID: "reload", Other: "Ricarica"},
	)
	if err != nil {
		return nil, fmt.Errorf("content: adding italian messages: %w", err)
	}

	return &Pages{loc: i18n.NewLocalizer(bundle, tag.String())}, nil
}

// Home renders the home page, including the click-counter demo elements.
func (p *Pages) Home() string {
	return fmt.Sprintf(
		`<h1>%s</h1><p>%s</p><p><a href="/about">%s</a></p>`+
			`<p><button id=%q>%s</button> <span id=%q>0</span></p>`,
		p.t("home_title"), p.t("home_body"), p.t("about_title"),
		constants.CounterButtonID, p.t("count_clicks"), constants.CounterValueID,
	)
}

// About renders the about page.
func (p *Pages) About() string {
	return fmt.Sprintf(
		`<h1>%s</h1><p>%s</p><p><a href="/">%s</a></p>`,
		p.t("about_title"), p.t("about_body"), p.t("back_home"),
	)
}

// NotFound renders the fallback page. The output always contains the
// literal requested path.
func (p *Pages) NotFound(path string) string {
	body := p.loc.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    "not_found_body",
		TemplateData: map[string]string{"Path": html.EscapeString(path)},
	})
	return fmt.Sprintf(`<h1>%s</h1><p>%s</p>`, p.t("not_found_title"), body)
}

// ErrorPanel renders the bootstrap failure page with a manual reload
// control. It accepts a nil error.
func (p *Pages) ErrorPanel(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf(
		`<h1>%s</h1><p>%s</p><p><button onclick="location.reload()">%s</button></p>`,
		p.t("error_title"), html.EscapeString(msg), p.t("reload"),
	)
}

func (p *Pages) t(id string) string {
	return p.loc.MustLocalize(&i18n.LocalizeConfig{MessageID: id})
}
