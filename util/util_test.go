package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/util"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "John Doe", util.NormalizeName("  John   Doe  "))
	assert.Equal(t, "John Doe", util.NormalizeName("John Doe"))
	assert.Equal(t, "", util.NormalizeName("   "))
}

func TestContains(t *testing.T) {
	list := []string{"gentle", "digital", "bell"}
	assert.True(t, util.Contains("bell", list))
	assert.False(t, util.Contains("urgent", list))
	assert.False(t, util.Contains("bell", nil))
}

func TestHashPasswordIsDeterministicPerSecret(t *testing.T) {
	util.SetJWTSecret("test-secret-123")

	first := util.HashPassword("secret123")
	second := util.HashPassword("secret123")
	assert.Equal(t, first, second)
	assert.NotEqual(t, "secret123", first)
	assert.NotEqual(t, first, util.HashPassword("other"))

	util.SetJWTSecret("another-secret")
	assert.NotEqual(t, first, util.HashPassword("secret123"), "hash must depend on the secret")

	util.SetJWTSecret("test-secret-123")
}

func TestIssueAndParseToken(t *testing.T) {
	util.SetJWTSecret("test-secret-123")

	token, err := util.IssueToken("u1", "John Doe", "john@example.com")
	require.NoError(t, err)

	claims, err := util.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "John Doe", claims.Username)
	assert.Equal(t, "john@example.com", claims.Email)

	_, err = util.ParseToken(token + "tampered")
	assert.Error(t, err)

	util.SetJWTSecret("different-secret")
	_, err = util.ParseToken(token)
	assert.Error(t, err, "token signed with the old secret must be rejected")
	util.SetJWTSecret("test-secret-123")
}

func TestNewsCacheRoundTrip(t *testing.T) {
	util.FlushNewsCache()

	_, ok := util.GetCachedNews(model.LanguageEnglish, "", "")
	assert.False(t, ok)

	items := []model.NewsItem{{ID: "n1", Title: "Headline"}}
	util.SetCachedNews(model.LanguageEnglish, "", "", items)

	got, ok := util.GetCachedNews(model.LanguageEnglish, "", "")
	require.True(t, ok)
	assert.Equal(t, items, got)

	// The cache is keyed by language, focus, and region together.
	_, ok = util.GetCachedNews(model.LanguageHindi, "", "")
	assert.False(t, ok)
	_, ok = util.GetCachedNews(model.LanguageEnglish, "malaria", "")
	assert.False(t, ok)

	util.FlushNewsCache()
	_, ok = util.GetCachedNews(model.LanguageEnglish, "", "")
	assert.False(t, ok)
}

func TestGetIPLocationSkipsPrivateRanges(t *testing.T) {
	for _, ip := range []string{"", "127.0.0.1", "::1", "10.1.2.3", "192.168.1.5"} {
		city, country := util.GetIPLocation(ip)
		assert.Empty(t, city, "ip %q", ip)
		assert.Empty(t, country, "ip %q", ip)
	}
}
