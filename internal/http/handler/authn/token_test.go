package authn

import (
	"encoding/base64"
	"encoding/json"
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func encodeToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("could not marshal payload: %v", err)
	}

	return header + "." + base64.RawURLEncoding.EncodeToString(data) + "."
}

func TestDecodeAccessToken(t *testing.T) {
	token := encodeToken(t, map[string]any{
		"sub":                "7a6bfd52-9965-4b5b-9e1f-004195a4c01e",
		"preferred_username": "alice",
		"realm_access": map[string]any{
			"roles": []string{"standard-user-role", "offline_access"},
		},
		"resource_access": map[string]any{
			"banter": map[string]any{
				"roles": []string{"elevated-editor-role", "standard-user-role"},
			},
			"other-client": map[string]any{
				"roles": []string{"elevated-admin-role"},
			},
		},
	})

	claims, err := DecodeAccessToken(token, "banter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.Subject != "7a6bfd52-9965-4b5b-9e1f-004195a4c01e" {
		t.Errorf("subject = %q", claims.Subject)
	}

	if claims.PreferredUsername != "alice" {
		t.Errorf("preferred username = %q", claims.PreferredUsername)
	}

	merged := claims.MergedRoles()

	expected := []string{"elevated-editor-role", "standard-user-role", "offline_access"}
	if !slices.Equal(merged, expected) {
		t.Errorf("merged roles = %v, expected %v", merged, expected)
	}

	// Roles of other clients never leak in.
	if slices.Contains(merged, "elevated-admin-role") {
		t.Error("merged roles contain another client's role")
	}
}

func TestDecodeAccessTokenMissingRoleClaims(t *testing.T) {
	token := encodeToken(t, map[string]any{
		"sub":                "7a6bfd52-9965-4b5b-9e1f-004195a4c01e",
		"preferred_username": "bob",
	})

	claims, err := DecodeAccessToken(token, "banter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if merged := claims.MergedRoles(); len(merged) != 0 {
		t.Errorf("merged roles = %v, expected none", merged)
	}
}

func TestDecodeAccessTokenMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separators", "not-a-token"},
		{"missing payload", "a..c"},
		{"payload not base64", "a.→→→.c"},
		{"payload not json", "a." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAccessToken(tc.token, "banter")
			if err == nil {
				t.Fatal("expected an error")
			}

			if !errors.Is(err, ErrMalformedToken) {
				t.Errorf("error = %v, expected ErrMalformedToken", err)
			}
		})
	}
}
