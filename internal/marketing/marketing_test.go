package marketing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizforge/internal/models"
)

func TestFindIndustryProfileKeywordPriority(t *testing.T) {
	profile := FindIndustryProfile("plumber repair", "Acme", nil)
	assert.Equal(t, "plumbing", profile.Name)
}

func TestFindIndustryProfileScansNameAndServices(t *testing.T) {
	byName := FindIndustryProfile("", "Joe's Drain Pros", nil)
	assert.Equal(t, "plumbing", byName.Name)

	byService := FindIndustryProfile("", "Acme", []string{"Panel Upgrades", "Wiring"})
	assert.Equal(t, "electrical", byService.Name)
}

func TestFindIndustryProfileGeneralFallback(t *testing.T) {
	profile := FindIndustryProfile("bookstore", "Chapter One", nil)
	assert.Equal(t, "general", profile.Name)
	assert.Equal(t, GeneralProfile().Name, profile.Name)
}

func TestEveryProfileIsReachableByItsOwnKeywords(t *testing.T) {
	for _, profile := range industryProfiles {
		for _, keyword := range profile.Keywords {
			matched := FindIndustryProfile(keyword, "", nil)
			// Earlier profiles may legitimately claim a shared keyword,
			// but a keyword must never fall through to general.
			assert.NotEqual(t, "general", matched.Name, "keyword %q unmatched", keyword)
		}
	}
}

func TestSeedIndexDeterministicAndBounded(t *testing.T) {
	assert.Equal(t, seedIndex("Acme", 3), seedIndex("Acme", 3))
	assert.Equal(t, 1, seedIndex("Acme", 3)) // len 4 % 3
	assert.Equal(t, 0, seedIndex("Acme", 0))

	for i := 1; i < 10; i++ {
		idx := seedIndex("Some Business Name", i)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, i)
	}
}

func TestGenerateAdCopyDeterministic(t *testing.T) {
	profile := FindIndustryProfile("plumber", "", nil)

	a := GenerateAdCopy(profile, "Joe's Plumbing", []string{"Drains"}, "Austin", PlatformFacebook)
	b := GenerateAdCopy(profile, "Joe's Plumbing", []string{"Drains"}, "Austin", PlatformFacebook)
	assert.Equal(t, a, b)
}

func TestGenerateAdCopyFacebookChecklist(t *testing.T) {
	profile := FindIndustryProfile("plumber", "", nil)
	services := []string{"Drain Cleaning", "Water Heaters", "Leak Detection", "Repiping"}

	copy := GenerateAdCopy(profile, "Joe's Plumbing", services, "Austin", PlatformFacebook)

	require.NotEmpty(t, copy.Headline)
	assert.Equal(t, 3, strings.Count(copy.Body, "✅"))
	assert.Contains(t, copy.Body, "Drain Cleaning")
	assert.NotContains(t, copy.Body, "Repiping")
	assert.Contains(t, copy.Body, "Austin")
}

func TestGenerateAdCopyInstagramIncludesHashtags(t *testing.T) {
	profile := FindIndustryProfile("salon", "", nil)

	copy := GenerateAdCopy(profile, "Shear Style", nil, "Austin", PlatformInstagram)
	assert.Contains(t, copy.Body, "#")
	assert.Equal(t, profile.Hashtags, copy.Hashtags)
}

func TestGenerateAdCopyTikTokSingleLine(t *testing.T) {
	profile := FindIndustryProfile("gym", "", nil)

	copy := GenerateAdCopy(profile, "Iron Works", nil, "Austin", PlatformTikTok)
	assert.NotContains(t, copy.Body, "\n")
}

func TestGenerateAdCopyYouTubeNarrativeIsLongest(t *testing.T) {
	profile := FindIndustryProfile("plumber", "", nil)
	services := []string{"Drain Cleaning"}

	youtube := GenerateAdCopy(profile, "Joe's Plumbing", services, "Austin", PlatformYouTube)
	tiktok := GenerateAdCopy(profile, "Joe's Plumbing", services, "Austin", PlatformTikTok)
	assert.Greater(t, len(youtube.Body), len(tiktok.Body))
}

func TestGenerateAdCopyEmptyCityFallback(t *testing.T) {
	profile := GeneralProfile()

	copy := GenerateAdCopy(profile, "Acme", nil, "", PlatformGoogle)
	assert.Contains(t, copy.Body, "your area")
}

func TestGenerateImagePrompt(t *testing.T) {
	biz := models.BusinessInfo{
		Name:     "Joe's Plumbing",
		City:     "Austin",
		Services: []string{"Drain Cleaning"},
		Branding: &models.BrandingConfig{BrandTone: "friendly and approachable"},
	}
	profile := FindIndustryProfile("plumber", biz.Name, biz.Services)

	prompt := GenerateImagePrompt(profile, biz, PlatformInstagram)

	assert.Contains(t, prompt, "Joe's Plumbing")
	assert.Contains(t, prompt, profile.VisualStyle)
	assert.Contains(t, prompt, "friendly and approachable")
	assert.Contains(t, prompt, "No text overlays")
}

func TestGenerateVideoScriptStructure(t *testing.T) {
	biz := models.BusinessInfo{Name: "Joe's Plumbing", City: "Austin"}
	profile := FindIndustryProfile("plumber", biz.Name, nil)

	script := GenerateVideoScript(profile, biz, PlatformTikTok)

	for _, marker := range []string{"HOOK", "PROBLEM", "SOLUTION", "CTA"} {
		assert.Contains(t, script, marker)
	}
	assert.Equal(t, script, GenerateVideoScript(profile, biz, PlatformTikTok))
}

func TestUnknownPlatformFallsBackToSearchPsychology(t *testing.T) {
	psych := psychologyFor("myspace")
	assert.Equal(t, platformPsychologies[PlatformGoogle], psych)
}
