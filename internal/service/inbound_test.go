package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/rural_health_triage/internal/models"
)

func TestNormalizeInbound_HTMLOnlyBody(t *testing.T) {
	msg, err := normalizeInbound(models.InboundEmail{
		From:     "patient@example.org",
		Subject:  " Feeling unwell ",
		HTMLBody: `<html><head><style>p{}</style></head><body><p>I have a <b>fever</b></p><div>near   Springfield</div><script>x()</script></body></html>`,
	})

	require.NoError(t, err)
	assert.Equal(t, "Feeling unwell", msg.Subject)
	assert.Equal(t, "I have a fever\nnear Springfield", msg.Body)
}

func TestNormalizeInbound_Names(t *testing.T) {
	msg, err := normalizeInbound(models.InboundEmail{
		From:     `"Doe, Jane" <jane@example.org>`,
		FromName: "Jane D.",
		Subject:  "s",
		TextBody: "my name is Someone Else",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", msg.Name)
	assert.Equal(t, "jane@example.org", msg.Email)

	msg, err = normalizeInbound(models.InboundEmail{
		From:     "john@example.org",
		Subject:  "s",
		TextBody: "Hello, my name is John Smith and I have a cough",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Smith", msg.Name)
}

func TestNormalizeInbound_ReportsMissingFields(t *testing.T) {
	_, err := normalizeInbound(models.InboundEmail{})
	require.ErrorIs(t, err, ErrInvalidInbound)
	assert.Contains(t, err.Error(), "sender, subject, body")
}
