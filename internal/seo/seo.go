// Package seo derives page titles, meta descriptions, keyword lists, social
// tag maps and JSON-LD structured data from a business profile, plus the
// robots.txt and sitemap.xml text both site generators embed.
package seo

import (
	"fmt"
	"strings"
	"time"

	"bizforge/internal/models"
)

// Meta is the render-ready SEO bundle for a generated site.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	OpenGraph   map[string]string
	Twitter     map[string]string
}

// schemaTypes maps a business type to its Schema.org LocalBusiness subtype.
// Unmapped types fall back to plain LocalBusiness.
var schemaTypes = map[string]string{
	"restaurant":  "Restaurant",
	"cafe":        "CafeOrCoffeeShop",
	"bakery":      "Bakery",
	"bar":         "BarOrPub",
	"plumber":     "Plumber",
	"electrician": "Electrician",
	"hvac":        "HVACBusiness",
	"roofing":     "RoofingContractor",
	"contractor":  "GeneralContractor",
	"landscaping": "LandscapingBusiness",
	"cleaning":    "HousePainter",
	"dentist":     "Dentist",
	"doctor":      "Physician",
	"medical":     "MedicalBusiness",
	"salon":       "BeautySalon",
	"spa":         "DaySpa",
	"barber":      "HairSalon",
	"gym":         "ExerciseGym",
	"lawyer":      "LegalService",
	"accountant":  "AccountingService",
	"realestate":  "RealEstateAgent",
	"auto":        "AutoRepair",
	"hotel":       "LodgingBusiness",
	"retail":      "Store",
	"pet":         "PetStore",
}

// typeDisplayNames give keyword-friendly names for common business types.
var typeDisplayNames = map[string]string{
	"hvac":       "HVAC services",
	"realestate": "real estate",
	"auto":       "auto repair",
}

// SchemaType resolves the JSON-LD @type for a business type.
func SchemaType(businessType string) string {
	if t, ok := schemaTypes[strings.ToLower(strings.TrimSpace(businessType))]; ok {
		return t
	}
	return "LocalBusiness"
}

func displayType(businessType string) string {
	key := strings.ToLower(strings.TrimSpace(businessType))
	if name, ok := typeDisplayNames[key]; ok {
		return name
	}
	if key == "" {
		return "local business"
	}
	return key
}

// BuildMeta derives the full SEO bundle for a business at siteURL.
func BuildMeta(biz models.BusinessInfo, siteURL string) Meta {
	title := buildTitle(biz)
	description := buildDescription(biz)

	og := map[string]string{
		"og:type":        "website",
		"og:title":       title,
		"og:description": description,
		"og:url":         siteURL,
		"og:site_name":   biz.Name,
	}
	if biz.HeroImage != "" {
		og["og:image"] = biz.HeroImage
	}

	twitter := map[string]string{
		"twitter:card":        "summary_large_image",
		"twitter:title":       title,
		"twitter:description": description,
	}
	if biz.HeroImage != "" {
		twitter["twitter:image"] = biz.HeroImage
	}

	return Meta{
		Title:       title,
		Description: description,
		Keywords:    BuildKeywords(biz),
		OpenGraph:   og,
		Twitter:     twitter,
	}
}

func buildTitle(biz models.BusinessInfo) string {
	if biz.Tagline != "" {
		return fmt.Sprintf("%s | %s", biz.Name, biz.Tagline)
	}
	if biz.City != "" {
		return fmt.Sprintf("%s | %s in %s, %s", biz.Name, titleCase(displayType(biz.BusinessType)), biz.City, biz.State)
	}
	return biz.Name
}

// buildDescription templates the meta description: the years clause only
// appears for an established business, and the services clause falls back to
// a generic trust sentence when no services are listed.
func buildDescription(biz models.BusinessInfo) string {
	var sb strings.Builder

	sb.WriteString(biz.Name)
	if biz.City != "" {
		fmt.Fprintf(&sb, " serves %s, %s", biz.City, biz.State)
	}
	if biz.YearsInBusiness > 0 {
		fmt.Fprintf(&sb, " with over %d years of experience", biz.YearsInBusiness)
	}
	sb.WriteString(". ")

	if len(biz.Services) > 0 {
		top := biz.Services
		if len(top) > 3 {
			top = top[:3]
		}
		fmt.Fprintf(&sb, "We offer %s. ", joinNatural(top))
	} else {
		sb.WriteString("Trusted, reliable service from a local team that cares. ")
	}

	sb.WriteString("Contact us today for a free consultation.")
	return sb.String()
}

// BuildKeywords assembles the keyword list: name, type display name, up to
// five services, city, and composed "near me"/"best X in Y" variants.
func BuildKeywords(biz models.BusinessInfo) []string {
	keywords := []string{biz.Name, displayType(biz.BusinessType)}

	services := biz.Services
	if len(services) > 5 {
		services = services[:5]
	}
	keywords = append(keywords, services...)

	if biz.City != "" {
		keywords = append(keywords,
			biz.City,
			fmt.Sprintf("%s near me", displayType(biz.BusinessType)),
			fmt.Sprintf("best %s in %s", displayType(biz.BusinessType), biz.City),
		)
	}
	return keywords
}

// BuildJSONLD builds the schema.org structured data object emitted inline as
// application/ld+json. sameAs only includes social URLs that are present.
func BuildJSONLD(biz models.BusinessInfo, siteURL string) map[string]interface{} {
	schema := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       SchemaType(biz.BusinessType),
		"name":        biz.Name,
		"description": biz.Description,
		"url":         siteURL,
	}

	if biz.Phone != "" {
		schema["telephone"] = biz.Phone
	}
	if biz.Email != "" {
		schema["email"] = biz.Email
	}
	if biz.Logo != "" {
		schema["image"] = biz.Logo
	}

	if biz.Address != "" || biz.City != "" {
		schema["address"] = map[string]interface{}{
			"@type":           "PostalAddress",
			"streetAddress":   biz.Address,
			"addressLocality": biz.City,
			"addressRegion":   biz.State,
			"postalCode":      biz.ZipCode,
		}
	}

	if hours := openingHoursList(biz.OpeningHours); len(hours) > 0 {
		schema["openingHours"] = hours
	}

	sameAs := []string{}
	for _, u := range []string{
		biz.GoogleURL, biz.FacebookURL, biz.InstagramURL,
		biz.LinkedInURL, biz.YelpURL, biz.TikTokURL, biz.YouTubeURL,
	} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		schema["sameAs"] = sameAs
	}

	return schema
}

func openingHoursList(hours map[string]string) []string {
	if len(hours) == 0 {
		return nil
	}
	out := []string{}
	for _, day := range models.DayNames {
		if h, ok := hours[day]; ok && h != "" {
			out = append(out, fmt.Sprintf("%s: %s", titleCase(day), h))
		}
	}
	return out
}

// sitePages is the priority table for sitemap generation.
var sitePages = []struct {
	Path     string
	Priority string
}{
	{"/", "1.0"},
	{"/services", "0.9"},
	{"/about", "0.8"},
	{"/contact", "0.8"},
}

// RobotsTxt renders the plain-text robots file for a deployed base URL.
func RobotsTxt(baseURL string) string {
	return fmt.Sprintf(`User-agent: *
Allow: /

Sitemap: %s/sitemap.xml
`, strings.TrimRight(baseURL, "/"))
}

// Sitemap renders sitemap.xml for the base pages plus any extra paths the
// caller materialized (shop, menu). Extra paths get the "others" priority.
func Sitemap(baseURL string, extraPaths []string) string {
	base := strings.TrimRight(baseURL, "/")
	today := time.Now().Format("2006-01-02")

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range sitePages {
		writeSitemapURL(&sb, base+strings.TrimSuffix(p.Path, "/"), today, p.Priority)
	}
	for _, path := range extraPaths {
		writeSitemapURL(&sb, base+"/"+strings.Trim(path, "/"), today, "0.8")
	}
	sb.WriteString("</urlset>\n")
	return sb.String()
}

func writeSitemapURL(sb *strings.Builder, loc, lastmod, priority string) {
	fmt.Fprintf(sb, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <priority>%s</priority>\n  </url>\n",
		loc, lastmod, priority)
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
