package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererCheckoutLineTotals(t *testing.T) {
	r := NewRenderer(false)
	out := r.Checkout(CheckoutEmailData{
		Customer: CustomerEmailData{Name: "Jean Dupont", Phone: "0600000000", Email: "jean@example.com", PostalCode: "75001"},
		Items: []OrderLine{
			{Name: "Enseigne LED", Quantity: 2, UnitPrice: 19.995},
			{Name: "Plaque", Quantity: 3, UnitPrice: 10},
			{Name: "Support", Quantity: 1, UnitPrice: 0.1},
		},
		TotalTTC: 99.99,
	})

	first := strings.Index(out.HTML, "<li>Enseigne LED (2x) - 39.99€</li>")
	second := strings.Index(out.HTML, "<li>Plaque (3x) - 30.00€</li>")
	third := strings.Index(out.HTML, "<li>Support (1x) - 0.10€</li>")
	assert.True(t, first >= 0 && second > first && third > second, out.HTML)
	assert.Equal(t, 3, strings.Count(out.HTML, "<li>"))
	assert.Contains(t, out.HTML, "<strong>Total TTC:</strong> 99.99€")
	assert.Contains(t, out.HTML, "<strong>Adresse Complète:</strong> Non fournie")
	assert.Equal(t, "Nouvelle Commande de Jean Dupont", out.Subject)
}

func TestRendererConfiguratorRendersPresentKeysOnly(t *testing.T) {
	r := NewRenderer(false)
	out := r.Configurator(ConfiguratorEmailData{
		Name:     "Enseigne lumineuse",
		Price:    1500.0,
		Material: "PVC",
		Details: map[string]any{
			"fixationType":   "Entretoises",
			"font":           "Montserrat",
			"estimatedWidth": "120cm",
			"ledColor":       "",
			"intensity":      nil,
			"neonEffect":     true,
			"textColor":      "   ",
			"colors":         []any{"rouge", "", "blanc"},
			"email":          "client@example.com",
		},
	})

	assert.Contains(t, out.HTML, "<li><strong>Style:</strong> Lettres lumineuses</li>")
	assert.Contains(t, out.HTML, "<li><strong>Prix estimé HT:</strong> 1500 MAD</li>")
	assert.Contains(t, out.HTML, "<li><strong>Font:</strong> Montserrat</li>")
	assert.Contains(t, out.HTML, "<li><strong>Estimated Width:</strong> 120cm</li>")
	assert.Contains(t, out.HTML, "<li><strong>Neon Effect:</strong> Oui</li>")
	assert.Contains(t, out.HTML, "<li><strong>Fixation Type:</strong> Entretoises</li>")
	assert.Contains(t, out.HTML, "<li><strong>Colors:</strong> rouge, blanc</li>")
	assert.NotContains(t, out.HTML, "Led Color")
	assert.NotContains(t, out.HTML, "Intensity")
	assert.NotContains(t, out.HTML, "Text Color")

	// 4 fixed entries + 6 present detail keys
	assert.Equal(t, 10, strings.Count(out.HTML, "<li>"))
	assert.Less(t, strings.Index(out.HTML, "Font"), strings.Index(out.HTML, "Estimated Width"))
	assert.Less(t, strings.Index(out.HTML, "Fixation Type"), strings.Index(out.HTML, "Colors"))
	assert.Equal(t, "Demande de Devis Configurator - Enseigne lumineuse", out.Subject)
}

func TestRendererConfiguratorIsOrderIndependent(t *testing.T) {
	r := NewRenderer(false)
	a := map[string]any{"font": "Arial", "zeta": "z", "alpha": "a", "height": "40cm"}
	b := map[string]any{"alpha": "a", "height": "40cm", "zeta": "z", "font": "Arial"}

	outA := r.Configurator(ConfiguratorEmailData{Name: "Lettres", Details: a})
	outB := r.Configurator(ConfiguratorEmailData{Name: "Lettres", Details: b})

	assert.Equal(t, outA.HTML, outB.HTML)
	assert.Contains(t, outA.HTML, "Lettres découpées")
	assert.Contains(t, outA.HTML, "<li><strong>Matériau:</strong> Non fourni</li>")
}

func TestRendererContact(t *testing.T) {
	r := NewRenderer(false)
	out := r.Contact(ContactEmailData{SenderName: "A", SenderEmail: "a@x.com", Subject: "S", Message: "M"})

	assert.Equal(t, "Nouveau Message : S", out.Subject)
	assert.Contains(t, out.HTML, "<strong>Téléphone:</strong> Non fourni")
	assert.Contains(t, out.HTML, "<p>M</p>")
}

func TestRendererQuoteAttachmentSentence(t *testing.T) {
	r := NewRenderer(false)
	data := QuoteEmailData{
		Customer:             CustomerEmailData{Name: "Marie", Phone: "06", Email: "m@x.com", PostalCode: "69000"},
		ManufacturingProcess: "Lettres découpées",
		PhotoMontage:         true,
	}

	without := r.Quote(data)
	assert.NotContains(t, without.HTML, "Un fichier de logo a été joint")
	assert.Contains(t, without.HTML, "<strong>Photo montage souhaité:</strong> Oui")
	assert.Contains(t, without.HTML, "Aucune description fournie")

	data.HasAttachment = true
	with := r.Quote(data)
	assert.Contains(t, with.HTML, "Un fichier de logo a été joint à cet e-mail.")
	assert.Equal(t, "Nouvelle Demande de Devis de Marie", with.Subject)
}

func TestRendererDoesNotEscapeByDefault(t *testing.T) {
	out := NewRenderer(false).Contact(ContactEmailData{SenderName: "<b>A</b>", SenderEmail: "a@x.com", Subject: "S", Message: "<script>x</script>"})
	assert.Contains(t, out.HTML, "<script>x</script>")
	assert.Contains(t, out.HTML, "<b>A</b>")
}

func TestRendererSanitizesWhenEnabled(t *testing.T) {
	out := NewRenderer(true).Contact(ContactEmailData{SenderName: "<b>A</b>", SenderEmail: "a@x.com", Subject: "S", Message: "<script>alert(1)</script>Bonjour"})
	assert.NotContains(t, out.HTML, "<script>")
	assert.NotContains(t, out.HTML, "<b>A</b>")
	assert.Contains(t, out.HTML, "Bonjour")
}

func TestSubjectTruncation(t *testing.T) {
	long := strings.Repeat("é", 80)
	out := NewRenderer(false).Contact(ContactEmailData{SenderName: "A", SenderEmail: "a@x.com", Subject: long, Message: "M"})

	assert.Equal(t, "Nouveau Message : "+strings.Repeat("é", maxSubjectText), out.Subject)
}

func TestHumanizeKey(t *testing.T) {
	assert.Equal(t, "Estimated Width", HumanizeKey("estimatedWidth"))
	assert.Equal(t, "Background Color", HumanizeKey("backgroundColor"))
	assert.Equal(t, "Font", HumanizeKey("font"))
	assert.Equal(t, "", HumanizeKey(""))
}

func TestRendererCheckoutRoundsHalfCentUp(t *testing.T) {
	out := NewRenderer(false).Checkout(CheckoutEmailData{
		Customer: CustomerEmailData{Name: "A"},
		Items:    []OrderLine{{Name: "A", Quantity: 1, UnitPrice: 0.125}},
	})

	assert.Contains(t, out.HTML, "<li>A (1x) - 0.13€</li>")
}

func TestRendererConfiguratorStyleIsCaseSensitive(t *testing.T) {
	r := NewRenderer(false)

	lit := r.Configurator(ConfiguratorEmailData{Name: "Enseigne lumineuse", Details: map[string]any{}})
	cut := r.Configurator(ConfiguratorEmailData{Name: "ENSEIGNE LUMINEUSE", Details: map[string]any{}})

	assert.Contains(t, lit.HTML, "<li><strong>Style:</strong> Lettres lumineuses</li>")
	assert.Contains(t, cut.HTML, "<li><strong>Style:</strong> Lettres découpées</li>")
}
