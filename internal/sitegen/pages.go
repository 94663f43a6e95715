package sitegen

import (
	"encoding/json"
	"fmt"
	"strings"

	"bizforge/internal/branding"
	"bizforge/internal/models"
	"bizforge/internal/seo"
)

func layoutPage(safe models.BusinessInfo, meta seo.Meta, jsonLD map[string]interface{}) string {
	fonts := branding.ResolveFonts(safe.Branding)
	headingIdent := fontImportIdent(fonts.Heading)
	bodyIdent := fontImportIdent(fonts.Body)

	fontImport := headingIdent
	fontConsts := fmt.Sprintf(`const heading = %s({ subsets: ['latin'], variable: '--font-heading' });`, headingIdent)
	bodyClass := "heading.variable"
	if bodyIdent != headingIdent {
		fontImport = headingIdent + ", " + bodyIdent
		fontConsts += fmt.Sprintf(`
const body = %s({ subsets: ['latin'], variable: '--font-body' });`, bodyIdent)
		bodyClass = "heading.variable + ' ' + body.variable"
	}

	// Map key order in encoding/json is sorted, so the emitted schema block
	// is stable across runs.
	ldBytes, _ := json.MarshalIndent(jsonLD, "  ", "  ")

	return fmt.Sprintf(`import type { Metadata } from 'next';
import { %s } from 'next/font/google';
import Nav from '@/components/Nav';
import Footer from '@/components/Footer';
import './globals.css';

%s

export const metadata: Metadata = {
  title: '%s',
  description: '%s',
  keywords: [%s],
  openGraph: {
    title: '%s',
    description: '%s',
    type: 'website',
  },
};

const schema = %s;

export default function RootLayout({ children }: { children: React.ReactNode }) {
  return (
    <html lang="en">
      <head>
        <script
          type="application/ld+json"
          dangerouslySetInnerHTML={{ __html: JSON.stringify(schema) }}
        />
      </head>
      <body className={%s}>
        <Nav />
        <main>{children}</main>
        <Footer />
      </body>
    </html>
  );
}
`, fontImport, fontConsts,
		meta.Title, meta.Description, quoteList(meta.Keywords),
		meta.Title, meta.Description,
		string(ldBytes), bodyClass)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}

// homePage composes the fixed section order: Hero, Services, AboutPreview,
// Pricing?, Testimonials, FAQ?, CTA. Optional sections slot into their fixed
// position regardless of data order.
func homePage(safe models.BusinessInfo) string {
	var imports, sections strings.Builder

	imports.WriteString("import Hero from '@/components/Hero';\n")
	imports.WriteString("import Services from '@/components/Services';\n")
	imports.WriteString("import AboutPreview from '@/components/AboutPreview';\n")
	if safe.HasPricing() {
		imports.WriteString("import Pricing from '@/components/Pricing';\n")
	}
	imports.WriteString("import Testimonials from '@/components/Testimonials';\n")
	if safe.HasFAQs() {
		imports.WriteString("import FAQ from '@/components/FAQ';\n")
	}
	imports.WriteString("import CTASection from '@/components/CTASection';\n")

	sections.WriteString("      <Hero />\n")
	sections.WriteString("      <Services />\n")
	sections.WriteString("      <AboutPreview />\n")
	if safe.HasPricing() {
		sections.WriteString("      <Pricing />\n")
	}
	sections.WriteString("      <Testimonials />\n")
	if safe.HasFAQs() {
		sections.WriteString("      <FAQ />\n")
	}
	sections.WriteString("      <CTASection />\n")

	return fmt.Sprintf(`%s
export default function HomePage() {
  return (
    <>
%s    </>
  );
}
`, imports.String(), sections.String())
}

func aboutPage(safe models.BusinessInfo) string {
	years := ""
	if safe.YearsInBusiness > 0 {
		years = fmt.Sprintf(`
        <p className="text-lg text-gray-600">
          Proudly serving our community for over %d years.
        </p>`, safe.YearsInBusiness)
	}

	areas := ""
	if len(safe.ServiceAreas) > 0 {
		items := make([]string, len(safe.ServiceAreas))
		for i, area := range safe.ServiceAreas {
			items[i] = fmt.Sprintf(`          <li className="rounded bg-brand-50 px-4 py-2">%s</li>`, area)
		}
		areas = fmt.Sprintf(`
        <h2 className="mt-12 text-2xl font-bold">Areas We Serve</h2>
        <ul className="mt-4 grid grid-cols-2 gap-2 md:grid-cols-3">
%s
        </ul>`, strings.Join(items, "\n"))
	}

	return fmt.Sprintf(`export default function AboutPage() {
  return (
    <section className="mx-auto max-w-4xl px-6 py-16">
      <h1 className="text-4xl font-bold">About %s</h1>
      <div className="mt-6 space-y-4">
        <p className="text-lg text-gray-600">%s</p>%s%s
      </div>
    </section>
  );
}
`, safe.Name, safe.Description, years, areas)
}

func servicesPage(safe models.BusinessInfo) string {
	var cards strings.Builder
	for _, svc := range safe.Services {
		fmt.Fprintf(&cards, `        <div className="rounded-lg border border-gray-200 p-6 shadow-sm">
          <h2 className="text-xl font-semibold text-brand-700">%s</h2>
        </div>
`, svc)
	}
	if cards.Len() == 0 {
		cards.WriteString(`        <p className="text-gray-600">Contact us to learn about everything we offer.</p>
`)
	}

	return fmt.Sprintf(`export default function ServicesPage() {
  return (
    <section className="mx-auto max-w-5xl px-6 py-16">
      <h1 className="text-4xl font-bold">Our Services</h1>
      <div className="mt-8 grid gap-6 md:grid-cols-2 lg:grid-cols-3">
%s      </div>
    </section>
  );
}
`, cards.String())
}

// contactPage varies with the profile's primaryCTA selector. The booking
// variant embeds a scheduling iframe only when a Calendly URL exists;
// a missing URL silently degrades to the generic form.
func contactPage(safe models.BusinessInfo) string {
	var feature string

	switch safe.PrimaryCTA {
	case models.CTACall:
		feature = fmt.Sprintf(`      <a
        href="tel:%s"
        className="mb-10 block rounded-xl bg-brand-600 p-8 text-center text-2xl font-bold text-white hover:bg-brand-700"
      >
        Call us now: %s
      </a>
`, safe.Phone, safe.Phone)
	case models.CTABook:
		if safe.CalendlyURL != "" {
			feature = fmt.Sprintf(`      <div className="mb-10">
        <h2 className="mb-4 text-2xl font-bold">Book an Appointment</h2>
        <iframe
          src="%s"
          className="h-[640px] w-full rounded-lg border border-gray-200"
          title="Schedule an appointment"
        />
      </div>
`, safe.CalendlyURL)
		}
	case models.CTAVisit:
		feature = fmt.Sprintf(`      <div className="mb-10 rounded-xl bg-brand-50 p-8">
        <h2 className="text-2xl font-bold">Visit Us</h2>
        <p className="mt-2 text-lg">%s, %s, %s %s</p>
        <a
          href="https://maps.google.com/?q=%s"
          className="mt-4 inline-block rounded bg-brand-600 px-6 py-3 font-semibold text-white"
        >
          Get Directions
        </a>
      </div>
`, safe.Address, safe.City, safe.State, safe.ZipCode, mapQuery(safe))
	}

	return fmt.Sprintf(`export default function ContactPage() {
  return (
    <section className="mx-auto max-w-3xl px-6 py-16">
      <h1 className="mb-8 text-4xl font-bold">Contact %s</h1>
%s      <form className="space-y-4">
        <input type="text" placeholder="Your name" className="w-full rounded border border-gray-300 p-3" />
        <input type="email" placeholder="Email address" className="w-full rounded border border-gray-300 p-3" />
        <input type="tel" placeholder="Phone number" className="w-full rounded border border-gray-300 p-3" />
%s        <textarea placeholder="How can we help?" rows={5} className="w-full rounded border border-gray-300 p-3" />
        <button type="submit" className="rounded bg-brand-600 px-8 py-3 font-semibold text-white hover:bg-brand-700">
          Send Message
        </button>
      </form>
    </section>
  );
}
`, safe.Name, feature, quoteFormFields(safe))
}

// quoteFormFields adds the service selector and project details pair for the
// quote CTA variant.
func quoteFormFields(safe models.BusinessInfo) string {
	if safe.PrimaryCTA != models.CTAQuote {
		return ""
	}

	var options strings.Builder
	options.WriteString(`          <option value="">Select a service</option>
`)
	for _, svc := range safe.Services {
		fmt.Fprintf(&options, `          <option value="%s">%s</option>
`, svc, svc)
	}

	return fmt.Sprintf(`        <select className="w-full rounded border border-gray-300 p-3">
%s        </select>
        <textarea placeholder="Tell us about your project" rows={3} className="w-full rounded border border-gray-300 p-3" />
`, options.String())
}

func mapQuery(safe models.BusinessInfo) string {
	parts := []string{safe.Address, safe.City, safe.State}
	return strings.ReplaceAll(strings.Join(parts, ", "), " ", "+")
}

func shopPage(safe models.BusinessInfo) string {
	var cards strings.Builder
	for _, p := range safe.Products {
		img := ""
		if p.Image != "" {
			img = fmt.Sprintf(`          <img src="%s" alt="%s" className="h-48 w-full rounded-t-lg object-cover" />
`, p.Image, p.Name)
		}
		fmt.Fprintf(&cards, `        <div className="rounded-lg border border-gray-200 shadow-sm">
%s          <div className="p-4">
            <h2 className="text-lg font-semibold">%s</h2>
            <p className="text-sm text-gray-600">%s</p>
            <p className="mt-2 font-bold text-brand-700">%s</p>
          </div>
        </div>
`, img, p.Name, p.Description, p.Price)
	}

	return fmt.Sprintf(`export default function ShopPage() {
  return (
    <section className="mx-auto max-w-6xl px-6 py-16">
      <h1 className="text-4xl font-bold">Shop</h1>
      <div className="mt-8 grid gap-6 sm:grid-cols-2 lg:grid-cols-3">
%s      </div>
    </section>
  );
}
`, cards.String())
}

func menuPage(safe models.BusinessInfo) string {
	var body strings.Builder

	for _, cat := range safe.Menu.Categories {
		fmt.Fprintf(&body, `      <h2 className="mt-10 text-2xl font-bold text-brand-700">%s</h2>
`, cat.Name)
		for _, item := range cat.Items {
			fmt.Fprintf(&body, `      <div className="mt-4 flex justify-between border-b border-gray-100 pb-2">
        <div>
          <h3 className="font-semibold">%s</h3>
          <p className="text-sm text-gray-600">%s</p>
        </div>
        <span className="font-bold">%s</span>
      </div>
`, item.Name, item.Description, item.Price)
		}
	}

	if safe.Menu.MenuPDFURL != "" {
		fmt.Fprintf(&body, `      <a
        href="%s"
        className="mt-10 inline-block rounded bg-brand-600 px-6 py-3 font-semibold text-white"
      >
        Download Full Menu (PDF)
      </a>
`, safe.Menu.MenuPDFURL)
	}

	return fmt.Sprintf(`export default function MenuPage() {
  return (
    <section className="mx-auto max-w-3xl px-6 py-16">
      <h1 className="text-4xl font-bold">Our Menu</h1>
%s    </section>
  );
}
`, body.String())
}
