package session

import (
	"github.com/MKhiriev/doc-query/internal/utils"
	"github.com/MKhiriev/doc-query/models"
)

// DecodeProfile extracts the display profile from the payload of cred.
//
// The credential is not verified. Any decoding failure yields an empty
// profile; the credential itself stays usable for requests.
func DecodeProfile(cred models.Credential) models.UserProfile {
	claims, err := utils.DecodeClaimsUnverified(cred.String())
	if err != nil {
		return models.UserProfile{}
	}

	return models.UserProfile{
		ID:    claimString(claims, "sub"),
		Name:  claimString(claims, "name"),
		Email: claimString(claims, "email"),
	}
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)
	return v
}
