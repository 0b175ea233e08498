package session

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/doc-query/models"
)

func encodeSegment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func makeToken(payload string) models.Credential {
	return models.Credential(encodeSegment(`{"alg":"HS256","typ":"JWT"}`) + "." + encodeSegment(payload) + ".sig")
}

func TestDecodeProfile_Claims(t *testing.T) {
	token := makeToken(`{"sub":"1098","name":"Ann Lee","email":"ann@example.com","exp":1893456000}`)

	got := DecodeProfile(token)
	assert.Equal(t, models.UserProfile{ID: "1098", Name: "Ann Lee", Email: "ann@example.com"}, got)
}

func TestDecodeProfile_URLSafeAlphabet(t *testing.T) {
	// "?>" and "~~" encode to "_" and "-" in the URL alphabet
	token := makeToken(`{"sub":"1","name":"a?>~~b"}`)

	assert.Equal(t, "a?>~~b", DecodeProfile(token).Name)
}

func TestDecodeProfile_PaddedPayload(t *testing.T) {
	payload := base64.URLEncoding.EncodeToString([]byte(`{"name":"Bo"}`))
	token := models.Credential("h." + payload + ".s")

	assert.Equal(t, "Bo", DecodeProfile(token).Name)
}

func TestDecodeProfile_MalformedYieldsEmptyProfile(t *testing.T) {
	inputs := []models.Credential{
		"",
		"no-separator",
		"only.two",
		"a..c",
		"a.!!!not-base64!!!.c",
		models.Credential("a." + encodeSegment("not json") + ".c"),
		models.Credential("a." + encodeSegment(`["array"]`) + ".c"),
		"a.b.c.d",
	}
	for _, in := range inputs {
		t.Run(string(in), func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.True(t, DecodeProfile(in).IsEmpty())
			})
		})
	}
}

func TestDecodeProfile_WrongClaimTypes(t *testing.T) {
	token := makeToken(`{"sub":42,"name":["x"],"email":"e@x.io"}`)

	got := DecodeProfile(token)
	assert.Equal(t, models.UserProfile{Email: "e@x.io"}, got)
	assert.Equal(t, models.GuestName, got.DisplayName())
}
