package staticgen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"bizforge/internal/branding"
	"bizforge/internal/models"
	"bizforge/internal/seo"
)

// fontStylesheetURL builds the Google Fonts request for the resolved font
// pairing. A shared heading/body family is requested once.
func fontStylesheetURL(cfg *models.BrandingConfig) string {
	fonts := branding.ResolveFonts(cfg)

	families := []string{fonts.Heading}
	if fonts.Body != fonts.Heading {
		families = append(families, fonts.Body)
	}

	params := make([]string, 0, len(families))
	for _, family := range families {
		params = append(params, "family="+strings.ReplaceAll(family, " ", "+")+":wght@400;700")
	}
	return "https://fonts.googleapis.com/css2?" + strings.Join(params, "&") + "&display=swap"
}

// pageShell wraps a page body in the shared document chrome: head with SEO
// tags and inline JSON-LD, the nav bar, the footer and the script include.
func pageShell(biz models.BusinessInfo, meta seo.Meta, jsonLD map[string]interface{}, pageTitle, body string) string {
	title := meta.Title
	if pageTitle != "" {
		title = pageTitle + " | " + biz.Name
	}

	// encoding/json sorts map keys, so the schema block is byte-stable
	// across runs.
	schema, _ := json.MarshalIndent(jsonLD, "    ", "  ")

	var head strings.Builder
	fmt.Fprintf(&head, `  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <meta name="description" content="%s" />
  <meta name="keywords" content="%s" />
`, esc(title), esc(meta.Description), esc(strings.Join(meta.Keywords, ", ")))

	for _, key := range sortedKeys(meta.OpenGraph) {
		fmt.Fprintf(&head, `  <meta property="%s" content="%s" />
`, key, esc(meta.OpenGraph[key]))
	}
	for _, key := range sortedKeys(meta.Twitter) {
		fmt.Fprintf(&head, `  <meta name="%s" content="%s" />
`, key, esc(meta.Twitter[key]))
	}

	fmt.Fprintf(&head, `  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin />
  <link rel="stylesheet" href="%s" />
  <link rel="stylesheet" href="css/styles.css" />
  <script type="application/ld+json">
    %s
  </script>
`, fontStylesheetURL(biz.Branding), schema)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
%s</head>
<body>
%s
%s
%s
  <script src="js/main.js"></script>
</body>
</html>
`, head.String(), navBar(biz), body, footer(biz))
}

func navBar(biz models.BusinessInfo) string {
	return fmt.Sprintf(`  <header class="site-header">
    <nav class="nav container">
      <a class="nav-brand" href="index.html">%s</a>
      <button class="nav-toggle" aria-label="Toggle menu" aria-expanded="false">&#9776;</button>
      <ul class="nav-links">
        <li><a href="index.html">Home</a></li>
        <li><a href="services.html">Services</a></li>
        <li><a href="about.html">About</a></li>
        <li><a href="contact.html" class="nav-cta">Contact</a></li>
      </ul>
    </nav>
  </header>`, esc(biz.Name))
}

func footer(biz models.BusinessInfo) string {
	var contact strings.Builder
	if biz.Phone != "" {
		fmt.Fprintf(&contact, `        <p><a href="tel:%s">%s</a></p>
`, esc(biz.Phone), esc(biz.Phone))
	}
	if biz.Email != "" {
		fmt.Fprintf(&contact, `        <p><a href="mailto:%s">%s</a></p>
`, esc(biz.Email), esc(biz.Email))
	}
	if biz.Address != "" {
		fmt.Fprintf(&contact, `        <p>%s, %s, %s %s</p>
`, esc(biz.Address), esc(biz.City), esc(biz.State), esc(biz.ZipCode))
	}

	var hours strings.Builder
	if len(biz.OpeningHours) > 0 {
		hours.WriteString(`      <div class="footer-col">
        <h3>Hours</h3>
`)
		for _, day := range models.DayNames {
			if value, ok := biz.OpeningHours[day]; ok {
				fmt.Fprintf(&hours, `        <p><span class="day">%s</span> %s</p>
`, esc(titleDay(day)), esc(value))
			}
		}
		hours.WriteString(`      </div>
`)
	}

	var socials strings.Builder
	for _, link := range socialLinks(biz) {
		fmt.Fprintf(&socials, `        <a href="%s" target="_blank" rel="noopener">%s</a>
`, esc(link.URL), link.Label)
	}

	return fmt.Sprintf(`  <footer class="site-footer">
    <div class="container footer-grid">
      <div class="footer-col">
        <h3>%s</h3>
%s      </div>
%s      <div class="footer-col">
        <h3>Find Us</h3>
%s      </div>
    </div>
    <p class="footer-copy">&copy; %d %s. All rights reserved.</p>
  </footer>`, esc(biz.Name), contact.String(), hours.String(), socials.String(), time.Now().Year(), esc(biz.Name))
}

type socialLink struct {
	Label string
	URL   string
}

func socialLinks(biz models.BusinessInfo) []socialLink {
	candidates := []socialLink{
		{"Google", biz.GoogleURL},
		{"Facebook", biz.FacebookURL},
		{"Instagram", biz.InstagramURL},
		{"LinkedIn", biz.LinkedInURL},
		{"Yelp", biz.YelpURL},
		{"TikTok", biz.TikTokURL},
		{"YouTube", biz.YouTubeURL},
	}
	var links []socialLink
	for _, c := range candidates {
		if c.URL != "" {
			links = append(links, c)
		}
	}
	return links
}

func titleDay(day string) string {
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
