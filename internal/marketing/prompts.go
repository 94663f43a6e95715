package marketing

import (
	"fmt"
	"strings"

	"bizforge/internal/models"
)

// platformPsychology captures the fixed audience, visual and copy-tone
// descriptors each ad platform rewards. These feed the prompt builders, not
// the rendered site.
type platformPsychology struct {
	Audience string
	Visual   string
	Tone     string
}

var platformPsychologies = map[string]platformPsychology{
	PlatformFacebook: {
		Audience: "adults 30-65 browsing casually, responsive to trust signals and social proof",
		Visual:   "authentic, well-lit photography that looks real rather than stock",
		Tone:     "warm, conversational, community-minded",
	},
	PlatformInstagram: {
		Audience: "visually-driven 20-45 year olds who stop scrolling for striking imagery",
		Visual:   "high-contrast, aesthetic composition with a strong single subject",
		Tone:     "aspirational, punchy, emoji-friendly",
	},
	PlatformTikTok: {
		Audience: "short-attention viewers 16-35 who reward authenticity over polish",
		Visual:   "handheld, fast-cut, caption-heavy vertical video energy",
		Tone:     "casual, playful, hook within the first second",
	},
	PlatformYouTube: {
		Audience: "intent-driven viewers researching before they buy",
		Visual:   "steady, documentary-style footage with real people and real work",
		Tone:     "informative, credible, story-led",
	},
	PlatformGoogle: {
		Audience: "high-intent searchers comparing providers right now",
		Visual:   "clean, professional, benefit-forward",
		Tone:     "direct, specific, zero fluff",
	},
}

func psychologyFor(platform string) platformPsychology {
	if p, ok := platformPsychologies[strings.ToLower(platform)]; ok {
		return p
	}
	return platformPsychologies[PlatformGoogle]
}

// GenerateImagePrompt composes the full natural-language prompt handed to an
// external image model. Pure text assembly, nothing is generated here.
func GenerateImagePrompt(profile IndustryProfile, biz models.BusinessInfo, platform string) string {
	psych := psychologyFor(platform)

	tone := "professional and trustworthy"
	if biz.Branding != nil && biz.Branding.BrandTone != "" {
		tone = biz.Branding.BrandTone
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a marketing image for %s, a %s business in %s.\n\n",
		biz.Name, profile.Name, placeOrFallback(biz.City))
	fmt.Fprintf(&sb, "Visual direction: %s.\n", profile.VisualStyle)
	fmt.Fprintf(&sb, "Platform: %s. Audience: %s. Visual treatment: %s.\n",
		strings.ToLower(platform), psych.Audience, psych.Visual)
	fmt.Fprintf(&sb, "Brand tone: %s.\n", tone)
	if len(biz.Services) > 0 {
		fmt.Fprintf(&sb, "Feature the business's core work: %s.\n",
			strings.Join(topServices(biz.Services, 3), ", "))
	}
	sb.WriteString("No text overlays, no logos, no watermarks. Photorealistic, suitable for paid social placement.")
	return sb.String()
}

// GenerateVideoScript composes a short-form video script outline for an
// external video tool, shaped by the platform's pacing expectations.
func GenerateVideoScript(profile IndustryProfile, biz models.BusinessInfo, platform string) string {
	psych := psychologyFor(platform)
	hook := profile.Hooks[seedIndex(biz.Name, len(profile.Hooks))]
	cta := profile.CTAs[seedIndex(biz.Name, len(profile.CTAs))]

	var sb strings.Builder
	fmt.Fprintf(&sb, "Video script for %s (%s) targeting %s.\n\n", biz.Name, profile.Name, strings.ToLower(platform))
	fmt.Fprintf(&sb, "Tone: %s. Audience: %s.\n\n", psych.Tone, psych.Audience)
	fmt.Fprintf(&sb, "HOOK (0-3s): %s\n", hook)
	fmt.Fprintf(&sb, "PROBLEM (3-10s): Show the everyday frustration %s customers face, filmed in the style of: %s.\n",
		profile.Name, psych.Visual)
	fmt.Fprintf(&sb, "SOLUTION (10-20s): Introduce %s at work. Visuals: %s.\n", biz.Name, profile.VisualStyle)
	if len(biz.Services) > 0 {
		fmt.Fprintf(&sb, "PROOF (20-25s): Quick cuts of %s.\n",
			strings.ToLower(strings.Join(topServices(biz.Services, 3), ", ")))
	}
	fmt.Fprintf(&sb, "CTA (25-30s): %s. End card with the business name and %s.\n",
		cta, placeOrFallback(biz.City))
	return sb.String()
}
