package marketing

import (
	"fmt"
	"strings"
)

// AdCopy is one rendered ad variant for a single platform.
type AdCopy struct {
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	CTA      string   `json:"cta"`
	Hashtags []string `json:"hashtags"`
}

// Platform identifiers accepted by the copy and prompt builders.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformGoogle    = "google"
)

// GenerateAdCopy renders one ad for the platform. Variant selection is
// seeded from the business name so repeated calls return identical copy.
func GenerateAdCopy(profile IndustryProfile, businessName string, services []string, city, platform string) AdCopy {
	headline := profile.Headlines[seedIndex(businessName, len(profile.Headlines))]
	hook := profile.Hooks[seedIndex(businessName, len(profile.Hooks))]
	cta := profile.CTAs[seedIndex(businessName, len(profile.CTAs))]

	return AdCopy{
		Headline: headline,
		Body:     buildBody(platform, hook, businessName, services, city, profile),
		CTA:      cta,
		Hashtags: profile.Hashtags,
	}
}

// buildBody assembles the platform-specific body text. Each platform has a
// distinct shape: Facebook gets a checklist, Instagram a hook plus hashtag
// call-out, YouTube a longer narrative, TikTok one compressed line, and
// Google a concise description.
func buildBody(platform, hook, businessName string, services []string, city string, profile IndustryProfile) string {
	switch strings.ToLower(platform) {
	case PlatformFacebook:
		var sb strings.Builder
		sb.WriteString(hook + "\n\n")
		for _, service := range topServices(services, 3) {
			sb.WriteString("✅ " + service + "\n")
		}
		fmt.Fprintf(&sb, "\nProudly serving %s. Message us today!", placeOrFallback(city))
		return sb.String()

	case PlatformInstagram:
		return fmt.Sprintf("%s\n\n%s has %s covered. 📍\n\n%s",
			hook, businessName, placeOrFallback(city), strings.Join(profile.Hashtags, " "))

	case PlatformYouTube:
		return fmt.Sprintf(
			"%s For years, %s has been the name %s trusts for %s. "+
				"Our team shows up on time, does the work right, and stands behind every job. "+
				"%s and see the difference a local team that cares actually makes.",
			hook, businessName, placeOrFallback(city), serviceSummary(services),
			profile.CTAs[seedIndex(businessName, len(profile.CTAs))])

	case PlatformTikTok:
		return fmt.Sprintf("%s %s in %s 🔥", hook, businessName, placeOrFallback(city))

	default: // google and anything unrecognized: concise search copy
		return fmt.Sprintf("%s %s in %s. %s.",
			hook, serviceSummaryTitle(services), placeOrFallback(city),
			profile.CTAs[seedIndex(businessName, len(profile.CTAs))])
	}
}

func topServices(services []string, n int) []string {
	if len(services) == 0 {
		return []string{"Quality workmanship", "Fair, upfront pricing", "Friendly local service"}
	}
	if len(services) > n {
		services = services[:n]
	}
	return services
}

func serviceSummary(services []string) string {
	if len(services) == 0 {
		return "dependable service"
	}
	return strings.ToLower(strings.Join(topServices(services, 2), " and "))
}

func serviceSummaryTitle(services []string) string {
	if len(services) == 0 {
		return "Trusted Local Service"
	}
	return services[0]
}

func placeOrFallback(city string) string {
	if city == "" {
		return "your area"
	}
	return city
}
