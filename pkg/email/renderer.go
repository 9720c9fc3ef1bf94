package email

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// maxSubjectText bounds the user-supplied part of a subject line.
const maxSubjectText = 50

// Rendered is the subject and HTML body of one notification.
type Rendered struct {
	Subject string
	HTML    string
}

// CustomerEmailData is the contact block shared by checkout and quote emails.
type CustomerEmailData struct {
	Name       string
	Phone      string
	Email      string
	PostalCode string
	Address    string
}

// OrderLine is one cart entry.
type OrderLine struct {
	Name      string
	Quantity  float64
	UnitPrice float64
}

type CheckoutEmailData struct {
	Customer CustomerEmailData
	Items    []OrderLine
	TotalTTC any
}

type ConfiguratorEmailData struct {
	Name     string
	Price    any
	Material string
	Details  map[string]any
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Phone       string
	Subject     string
	Message     string
}

type QuoteEmailData struct {
	Customer             CustomerEmailData
	ManufacturingProcess string
	PhotoMontage         bool
	ProjectDescription   string
	HasAttachment        bool
}

// configuratorKeyOrder lists the sign attributes in the order the configurator
// shows them; any other key follows alphabetically.
var configuratorKeyOrder = []string{
	"font",
	"height",
	"estimatedWidth",
	"textColor",
	"backgroundColor",
	"ledColor",
	"intensity",
	"neonEffect",
	"fixationType",
	"additionalOptions",
}

// Renderer builds notification bodies by direct interpolation. User text is
// inserted verbatim unless sanitizing is enabled.
type Renderer struct {
	policy *bluemonday.Policy
}

func NewRenderer(sanitize bool) *Renderer {
	r := &Renderer{}
	if sanitize {
		r.policy = bluemonday.StrictPolicy()
	}
	return r
}

// text prepares a user-supplied value for interpolation.
func (r *Renderer) text(s string) string {
	if r.policy == nil {
		return s
	}
	return r.policy.Sanitize(s)
}

func (r *Renderer) Checkout(d CheckoutEmailData) Rendered {
	var b strings.Builder
	b.WriteString("<h1>Nouvelle Commande Reçue</h1>\n")
	r.writeCustomer(&b, d.Customer, "Non fournie")
	b.WriteString("<br>\n<h2>Détails de la Commande</h2>\n")
	b.WriteString(`<ul style="list-style-type: none; padding: 0;">` + "\n")
	for _, item := range d.Items {
		fmt.Fprintf(&b, "<li>%s (%sx) - %.2f€</li>\n",
			r.text(item.Name), formatNumber(item.Quantity), roundCents(item.Quantity*item.UnitPrice))
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, "<p><strong>Total TTC:</strong> %s€</p>\n", r.text(formatScalar(d.TotalTTC)))

	return Rendered{
		Subject: "Nouvelle Commande de " + truncate(d.Customer.Name, maxSubjectText),
		HTML:    b.String(),
	}
}

func (r *Renderer) Configurator(d ConfiguratorEmailData) Rendered {
	style := "Lettres découpées"
	if strings.Contains(d.Name, "lumineuse") {
		style = "Lettres lumineuses"
	}

	var b strings.Builder
	b.WriteString("<h1>Nouvelle demande de devis personnalisé</h1>\n")
	b.WriteString("<p>Un client a utilisé le configurateur pour créer une enseigne.</p>\n<br>\n")
	b.WriteString("<h2>Détails de la configuration :</h2>\n")
	b.WriteString(`<ul style="list-style-type: none; padding: 0;">` + "\n")
	writeItem(&b, "Nom du produit", r.text(d.Name))
	writeItem(&b, "Style", style)
	writeItem(&b, "Prix estimé HT", r.text(orPlaceholder(formatScalar(d.Price), "Non fourni"))+" MAD")
	writeItem(&b, "Matériau", r.text(orPlaceholder(d.Material, "Non fourni")))
	for _, key := range orderedKeys(d.Details) {
		value, ok := formatDetail(d.Details[key])
		if !ok {
			continue
		}
		writeItem(&b, HumanizeKey(key), r.text(value))
	}
	b.WriteString("</ul>\n")

	return Rendered{
		Subject: "Demande de Devis Configurator - " + truncate(d.Name, maxSubjectText),
		HTML:    b.String(),
	}
}

func (r *Renderer) Contact(d ContactEmailData) Rendered {
	var b strings.Builder
	b.WriteString("<h1>Nouveau message de contact</h1>\n")
	b.WriteString("<p>Vous avez reçu un nouveau message via le formulaire de contact de votre site web.</p>\n<br>\n")
	writeField(&b, "Nom", r.text(d.SenderName))
	writeField(&b, "E-mail", r.text(d.SenderEmail))
	writeField(&b, "Téléphone", r.text(orPlaceholder(d.Phone, "Non fourni")))
	writeField(&b, "Sujet", r.text(d.Subject))
	b.WriteString("<br>\n<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", r.text(d.Message))

	return Rendered{
		Subject: "Nouveau Message : " + truncate(d.Subject, maxSubjectText),
		HTML:    b.String(),
	}
}

func (r *Renderer) Quote(d QuoteEmailData) Rendered {
	photoMontage := "Non"
	if d.PhotoMontage {
		photoMontage = "Oui"
	}

	var b strings.Builder
	b.WriteString("<h1>Nouvelle Demande de Devis</h1>\n")
	b.WriteString("<p>Une nouvelle demande de devis a été soumise via le formulaire de devis personnalisé.</p>\n<br>\n")
	b.WriteString("<h2>Informations du demandeur</h2>\n")
	r.writeCustomer(&b, d.Customer, "Non fournie")
	b.WriteString("<br>\n<h2>Détails du projet</h2>\n")
	writeField(&b, "Type d'enseigne", r.text(d.ManufacturingProcess))
	writeField(&b, "Photo montage souhaité", photoMontage)
	writeField(&b, "Description du projet", r.text(orPlaceholder(d.ProjectDescription, "Aucune description fournie")))
	if d.HasAttachment {
		b.WriteString("<br>\n<p>Un fichier de logo a été joint à cet e-mail.</p>\n")
	}

	return Rendered{
		Subject: "Nouvelle Demande de Devis de " + truncate(d.Customer.Name, maxSubjectText),
		HTML:    b.String(),
	}
}

func (r *Renderer) writeCustomer(b *strings.Builder, c CustomerEmailData, missingAddress string) {
	writeField(b, "Nom Complet", r.text(c.Name))
	writeField(b, "Téléphone", r.text(c.Phone))
	writeField(b, "Adresse E-mail", r.text(c.Email))
	writeField(b, "Code Postal", r.text(c.PostalCode))
	writeField(b, "Adresse Complète", r.text(orPlaceholder(c.Address, missingAddress)))
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>\n", label, value)
}

func writeItem(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<li><strong>%s:</strong> %s</li>\n", label, value)
}

// HumanizeKey turns an identifier such as "estimatedWidth" into "Estimated Width".
func HumanizeKey(key string) string {
	var result strings.Builder
	for i, r := range key {
		if i == 0 {
			result.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

func orderedKeys(details map[string]any) []string {
	keys := make([]string, 0, len(details))
	known := make(map[string]bool, len(configuratorKeyOrder))
	for _, k := range configuratorKeyOrder {
		known[k] = true
		if _, ok := details[k]; ok {
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range details {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// formatDetail renders a configurator attribute; ok is false for absent or
// empty values so they produce no list entry.
func formatDetail(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, strings.TrimSpace(val) != ""
	case bool:
		if val {
			return "Oui", true
		}
		return "Non", true
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := formatDetail(item); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), len(parts) > 0
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s, ok := formatDetail(val[k]); ok {
				parts = append(parts, HumanizeKey(k)+": "+s)
			}
		}
		return strings.Join(parts, ", "), len(parts) > 0
	default:
		return formatScalar(val), true
	}
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatNumber(val)
	default:
		return fmt.Sprint(val)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// roundCents rounds half away from zero, so 0.125 shows as 0.13 rather than
// the 0.12 that %.2f alone would print.
func roundCents(f float64) float64 {
	return math.Round(f*100) / 100
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// truncate keeps at most limit runes so a subject header stays bounded.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:limit]))
}
