package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHeader(t *testing.T) {
	assert.Equal(t, "Formulaire Site Web <shop@example.com>", fromHeader("Formulaire Site Web", "shop@example.com"))
	assert.Equal(t, "shop@example.com", fromHeader("", "shop@example.com"))
}

func TestConvertAttachments(t *testing.T) {
	logo := []byte{0x89, 'P', 'N', 'G'}

	got := convertAttachments([]Attachment{
		{Filename: "logo.png", ContentType: "image/png", Content: logo},
		{Filename: "plan.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "logo.png", got[0].Filename)
	assert.Equal(t, "image/png", got[0].ContentType)
	assert.Equal(t, logo, got[0].Content)
	assert.Equal(t, "plan.pdf", got[1].Filename)
}

func TestResendTransportHandle(t *testing.T) {
	tr := NewResendTransport("")
	assert.Equal(t, "resend", tr.Name())
	assert.False(t, tr.Configured())
	assert.False(t, tr.Ready())

	tr = NewResendTransport("re_test")
	assert.True(t, tr.Configured())

	first := tr.handle()
	assert.True(t, tr.Ready())
	assert.Same(t, first, tr.handle())

	tr.Reset()
	assert.NotSame(t, first, tr.handle())
}
