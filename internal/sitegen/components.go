package sitegen

import (
	"fmt"
	"strings"
	"time"

	"bizforge/internal/models"
)

func navComponent(safe models.BusinessInfo) string {
	links := []string{
		navLink("/", "Home"),
		navLink("/services", "Services"),
	}
	if safe.HasShop() {
		links = append(links, navLink("/shop", "Shop"))
	}
	if safe.HasMenu() {
		links = append(links, navLink("/menu", "Menu"))
	}
	links = append(links, navLink("/about", "About"), navLink("/contact", "Contact"))

	return fmt.Sprintf(`'use client';

import { useState } from 'react';
import Link from 'next/link';

export default function Nav() {
  const [open, setOpen] = useState(false);

  return (
    <nav className="sticky top-0 z-50 bg-white shadow-sm">
      <div className="mx-auto flex max-w-6xl items-center justify-between px-6 py-4">
        <Link href="/" className="text-xl font-bold text-brand-700">%s</Link>
        <button className="md:hidden" onClick={() => setOpen(!open)} aria-label="Toggle menu">
          ☰
        </button>
        <div className={(open ? 'block' : 'hidden') + ' absolute left-0 top-full w-full bg-white p-6 shadow md:static md:block md:w-auto md:p-0 md:shadow-none'}>
          <div className="flex flex-col gap-4 md:flex-row md:gap-6">
%s
          </div>
        </div>
      </div>
    </nav>
  );
}
`, safe.Name, strings.Join(links, "\n"))
}

func navLink(href, label string) string {
	return fmt.Sprintf(`            <Link href="%s" className="hover:text-brand-600">%s</Link>`, href, label)
}

func footerComponent(safe models.BusinessInfo) string {
	var socials strings.Builder
	for _, s := range []struct{ url, label string }{
		{safe.FacebookURL, "Facebook"},
		{safe.InstagramURL, "Instagram"},
		{safe.LinkedInURL, "LinkedIn"},
		{safe.YelpURL, "Yelp"},
		{safe.TikTokURL, "TikTok"},
		{safe.YouTubeURL, "YouTube"},
	} {
		if s.url != "" {
			fmt.Fprintf(&socials, `          <a href="%s" className="hover:text-white">%s</a>
`, s.url, s.label)
		}
	}

	var hours strings.Builder
	for _, day := range models.DayNames {
		if h, ok := safe.OpeningHours[day]; ok && h != "" {
			fmt.Fprintf(&hours, `          <li>%s: %s</li>
`, strings.ToUpper(day[:1])+day[1:], h)
		}
	}

	return fmt.Sprintf(`export default function Footer() {
  return (
    <footer className="bg-gray-900 py-12 text-gray-300">
      <div className="mx-auto grid max-w-6xl gap-8 px-6 md:grid-cols-3">
        <div>
          <h3 className="mb-3 font-bold text-white">%s</h3>
          <p className="text-sm">%s, %s, %s %s</p>
          <p className="text-sm">%s</p>
        </div>
        <div>
          <h3 className="mb-3 font-bold text-white">Hours</h3>
          <ul className="space-y-1 text-sm">
%s          </ul>
        </div>
        <div className="flex flex-col gap-2 text-sm">
%s        </div>
      </div>
      <p className="mt-10 text-center text-sm text-gray-500">
        © %d %s. All rights reserved.
      </p>
    </footer>
  );
}
`, safe.Name, safe.Address, safe.City, safe.State, safe.ZipCode, safe.Phone,
		hours.String(), socials.String(), time.Now().Year(), safe.Name)
}

func heroComponent(safe models.BusinessInfo) string {
	labels := labelsFor(safe.PrimaryCTA)
	primaryHref := "/contact"
	if safe.PrimaryCTA == models.CTACall && safe.Phone != "" {
		primaryHref = "tel:" + safe.Phone
	}
	if safe.PrimaryCTA == models.CTAShop && safe.HasShop() {
		primaryHref = "/shop"
	}

	bg := ""
	if safe.HeroImage != "" {
		bg = fmt.Sprintf(` style={{ backgroundImage: "url('%s')", backgroundSize: 'cover', backgroundPosition: 'center' }}`, safe.HeroImage)
	}

	tagline := safe.Tagline
	if tagline == "" {
		tagline = safe.Description
	}

	return fmt.Sprintf(`import Link from 'next/link';

export default function Hero() {
  return (
    <section className="relative bg-brand-900 py-24 text-white"%s>
      <div className="absolute inset-0 bg-black/50" />
      <div className="relative mx-auto max-w-4xl px-6 text-center">
        <h1 className="text-5xl font-bold">%s</h1>
        <p className="mt-4 text-xl text-gray-200">%s</p>
        <div className="mt-8 flex justify-center gap-4">
          <Link href="%s" className="rounded bg-brand-500 px-8 py-3 font-semibold hover:bg-brand-600">
            %s
          </Link>
          <Link href="/services" className="rounded border border-white px-8 py-3 font-semibold hover:bg-white/10">
            %s
          </Link>
        </div>
      </div>
    </section>
  );
}
`, bg, safe.Name, tagline, primaryHref, labels.Primary, labels.Secondary)
}

func servicesComponent(safe models.BusinessInfo) string {
	var cards strings.Builder
	for _, svc := range safe.Services {
		fmt.Fprintf(&cards, `          <div className="rounded-lg bg-white p-6 shadow">
            <h3 className="font-semibold text-brand-700">%s</h3>
          </div>
`, svc)
	}
	if cards.Len() == 0 {
		cards.WriteString(`          <p className="text-gray-600">Reach out to learn what we can do for you.</p>
`)
	}

	return fmt.Sprintf(`export default function Services() {
  return (
    <section className="bg-gray-50 py-16">
      <div className="mx-auto max-w-5xl px-6">
        <h2 className="text-center text-3xl font-bold">What We Do</h2>
        <div className="mt-8 grid gap-6 md:grid-cols-3">
%s        </div>
      </div>
    </section>
  );
}
`, cards.String())
}

func aboutPreviewComponent(safe models.BusinessInfo) string {
	return fmt.Sprintf(`import Link from 'next/link';

export default function AboutPreview() {
  return (
    <section className="py-16">
      <div className="mx-auto max-w-4xl px-6 text-center">
        <h2 className="text-3xl font-bold">About %s</h2>
        <p className="mt-4 text-lg text-gray-600">%s</p>
        <Link href="/about" className="mt-6 inline-block font-semibold text-brand-600 hover:underline">
          Learn more about us →
        </Link>
      </div>
    </section>
  );
}
`, safe.Name, safe.Description)
}

func testimonialsComponent(safe models.BusinessInfo) string {
	if len(safe.Testimonials) == 0 {
		// Keep the section in the composition but render nothing, so the
		// home page order stays fixed without an empty visual block.
		return `export default function Testimonials() {
  return null;
}
`
	}

	var cards strings.Builder
	for _, tm := range safe.Testimonials {
		stars := strings.Repeat("★", clampRating(tm.Rating))
		fmt.Fprintf(&cards, `          <blockquote className="rounded-lg bg-white p-6 shadow">
            <p className="text-yellow-500">%s</p>
            <p className="mt-2 text-gray-700">"%s"</p>
            <footer className="mt-4 font-semibold">— %s</footer>
          </blockquote>
`, stars, tm.Text, tm.Name)
	}

	return fmt.Sprintf(`export default function Testimonials() {
  return (
    <section className="bg-gray-50 py-16">
      <div className="mx-auto max-w-5xl px-6">
        <h2 className="text-center text-3xl font-bold">What Our Customers Say</h2>
        <div className="mt-8 grid gap-6 md:grid-cols-2">
%s        </div>
      </div>
    </section>
  );
}
`, cards.String())
}

func clampRating(r int) int {
	if r <= 0 || r > 5 {
		return 5
	}
	return r
}

func ctaSectionComponent(safe models.BusinessInfo) string {
	labels := labelsFor(safe.PrimaryCTA)

	return fmt.Sprintf(`import Link from 'next/link';

export default function CTASection() {
  return (
    <section className="bg-brand-700 py-16 text-center text-white">
      <h2 className="text-3xl font-bold">Ready to get started?</h2>
      <p className="mt-2 text-lg text-brand-100">%s is here to help.</p>
      <Link href="/contact" className="mt-6 inline-block rounded bg-white px-8 py-3 font-semibold text-brand-700 hover:bg-gray-100">
        %s
      </Link>
    </section>
  );
}
`, safe.Name, labels.Primary)
}

// pricingComponent highlights every package flagged popular. More than one
// flag is allowed; each flagged card renders its own badge.
func pricingComponent(safe models.BusinessInfo) string {
	var cards strings.Builder
	for _, p := range safe.Pricing {
		badge := ""
		ring := "border-gray-200"
		if p.IsPopular {
			badge = `            <span className="mb-2 inline-block rounded-full bg-brand-600 px-3 py-1 text-xs font-bold text-white">Most Popular</span>
`
			ring = "border-brand-500 ring-2 ring-brand-200"
		}

		var features strings.Builder
		for _, f := range p.Features {
			fmt.Fprintf(&features, `              <li>✓ %s</li>
`, f)
		}

		fmt.Fprintf(&cards, `          <div className="rounded-xl border %s p-6">
%s            <h3 className="text-xl font-bold">%s</h3>
            <p className="mt-1 text-3xl font-bold text-brand-700">%s</p>
            <p className="mt-2 text-sm text-gray-600">%s</p>
            <ul className="mt-4 space-y-1 text-sm">
%s            </ul>
          </div>
`, ring, badge, p.Name, p.Price, p.Description, features.String())
	}

	return fmt.Sprintf(`export default function Pricing() {
  return (
    <section className="py-16">
      <div className="mx-auto max-w-5xl px-6">
        <h2 className="text-center text-3xl font-bold">Pricing</h2>
        <div className="mt-8 grid gap-6 md:grid-cols-3">
%s        </div>
      </div>
    </section>
  );
}
`, cards.String())
}

func faqComponent(safe models.BusinessInfo) string {
	var items strings.Builder
	for _, f := range safe.FAQs {
		fmt.Fprintf(&items, `          <details className="rounded-lg border border-gray-200 p-4">
            <summary className="cursor-pointer font-semibold">%s</summary>
            <p className="mt-2 text-gray-600">%s</p>
          </details>
`, f.Question, f.Answer)
	}

	return fmt.Sprintf(`export default function FAQ() {
  return (
    <section className="bg-gray-50 py-16">
      <div className="mx-auto max-w-3xl px-6">
        <h2 className="text-center text-3xl font-bold">Frequently Asked Questions</h2>
        <div className="mt-8 space-y-4">
%s        </div>
      </div>
    </section>
  );
}
`, items.String())
}

func bookingComponent(safe models.BusinessInfo) string {
	instructions := safe.Booking.Instructions
	if instructions == "" {
		instructions = "Choose a time that works for you and we will confirm right away."
	}

	return fmt.Sprintf(`import Link from 'next/link';

export default function BookingSection() {
  return (
    <section className="bg-brand-50 py-16">
      <div className="mx-auto max-w-3xl px-6 text-center">
        <h2 className="text-3xl font-bold">Book Online</h2>
        <p className="mt-2 text-gray-600">%s</p>
        <Link href="/contact" className="mt-6 inline-block rounded bg-brand-600 px-8 py-3 font-semibold text-white">
          Schedule Now
        </Link>
      </div>
    </section>
  );
}
`, instructions)
}

func medicalComponent(safe models.BusinessInfo) string {
	var insurance, certs strings.Builder
	for _, ins := range safe.Medical.InsuranceAccepted {
		fmt.Fprintf(&insurance, `            <li>%s</li>
`, ins)
	}
	for _, c := range safe.Medical.Certifications {
		fmt.Fprintf(&certs, `            <li>%s</li>
`, c)
	}

	emergency := ""
	if safe.Medical.EmergencyInfo != "" {
		emergency = fmt.Sprintf(`        <p className="mt-6 rounded bg-red-50 p-4 text-red-800">%s</p>
`, safe.Medical.EmergencyInfo)
	}

	return fmt.Sprintf(`export default function MedicalInfo() {
  return (
    <section className="py-16">
      <div className="mx-auto max-w-4xl px-6">
        <h2 className="text-3xl font-bold">Patient Information</h2>
        <div className="mt-6 grid gap-8 md:grid-cols-2">
          <div>
            <h3 className="font-semibold">Insurance Accepted</h3>
            <ul className="mt-2 list-disc pl-5 text-gray-600">
%s            </ul>
          </div>
          <div>
            <h3 className="font-semibold">Certifications</h3>
            <ul className="mt-2 list-disc pl-5 text-gray-600">
%s            </ul>
          </div>
        </div>
%s      </div>
    </section>
  );
}
`, insurance.String(), certs.String(), emergency)
}
