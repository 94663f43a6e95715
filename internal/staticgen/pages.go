package staticgen

import (
	"fmt"
	"strings"

	"bizforge/internal/models"
	"bizforge/internal/seo"
)

func indexPage(biz models.BusinessInfo, meta seo.Meta, jsonLD map[string]interface{}) string {
	body := strings.Join([]string{
		heroSection(biz),
		servicesSection(biz),
		aboutPreviewSection(biz),
		portfolioSection(biz),
		testimonialsSection(biz),
		ctaSection(biz),
	}, "")
	return pageShell(biz, meta, jsonLD, "", body)
}

func heroSection(biz models.BusinessInfo) string {
	labels := labelsFor(biz.PrimaryCTA)

	tagline := biz.Tagline
	if tagline == "" {
		tagline = biz.Description
	}

	primaryHref := "contact.html"
	if biz.PrimaryCTA == models.CTACall && biz.Phone != "" {
		primaryHref = "tel:" + biz.Phone
	}

	style := ""
	if biz.HeroImage != "" {
		style = fmt.Sprintf(` style="background-image: url('%s')"`, esc(biz.HeroImage))
	}

	return fmt.Sprintf(`  <section class="hero"%s>
    <div class="container hero-inner">
      <h1>%s</h1>
      <p class="hero-tagline">%s</p>
      <div class="hero-actions">
        <a class="btn btn-primary" href="%s">%s</a>
        <a class="btn btn-secondary" href="services.html">%s</a>
      </div>
    </div>
  </section>
`, style, esc(biz.Name), esc(tagline), primaryHref, labels.Primary, labels.Secondary)
}

// servicesSection renders nothing at all when the profile lists no services.
func servicesSection(biz models.BusinessInfo) string {
	if len(biz.Services) == 0 {
		return ""
	}

	var cards strings.Builder
	for _, service := range biz.Services {
		fmt.Fprintf(&cards, `        <div class="card">
          <h3>%s</h3>
        </div>
`, esc(service))
	}

	return fmt.Sprintf(`  <section class="section services">
    <div class="container">
      <h2>Our Services</h2>
      <div class="card-grid">
%s      </div>
    </div>
  </section>
`, cards.String())
}

func aboutPreviewSection(biz models.BusinessInfo) string {
	years := ""
	if biz.YearsInBusiness > 0 {
		years = fmt.Sprintf(`      <p class="about-years">Proudly serving %s for over %d years.</p>
`, esc(biz.City), biz.YearsInBusiness)
	}

	return fmt.Sprintf(`  <section class="section about-preview">
    <div class="container">
      <h2>About %s</h2>
      <p>%s</p>
%s      <a class="link-arrow" href="about.html">Learn more about us</a>
    </div>
  </section>
`, esc(biz.Name), esc(biz.Description), years)
}

func portfolioSection(biz models.BusinessInfo) string {
	images := flattenPortfolio(biz.PortfolioSections)
	if len(images) == 0 {
		return ""
	}

	var gallery strings.Builder
	for _, img := range images {
		fmt.Fprintf(&gallery, `        <img src="%s" alt="Our work" loading="lazy" />
`, esc(img))
	}

	return fmt.Sprintf(`  <section class="section portfolio">
    <div class="container">
      <h2>Our Work</h2>
      <div class="gallery">
%s      </div>
    </div>
  </section>
`, gallery.String())
}

func testimonialsSection(biz models.BusinessInfo) string {
	if len(biz.Testimonials) == 0 {
		return ""
	}

	var cards strings.Builder
	for _, t := range biz.Testimonials {
		fmt.Fprintf(&cards, `        <blockquote class="testimonial">
          <p>&ldquo;%s&rdquo;</p>
          <cite>%s</cite>
        </blockquote>
`, esc(t.Text), esc(t.Name))
	}

	return fmt.Sprintf(`  <section class="section testimonials">
    <div class="container">
      <h2>What Our Customers Say</h2>
      <div class="card-grid">
%s      </div>
    </div>
  </section>
`, cards.String())
}

func ctaSection(biz models.BusinessInfo) string {
	labels := labelsFor(biz.PrimaryCTA)
	return fmt.Sprintf(`  <section class="section cta-banner">
    <div class="container">
      <h2>Ready to get started?</h2>
      <a class="btn btn-light" href="contact.html">%s</a>
    </div>
  </section>
`, labels.Primary)
}

func aboutPage(biz models.BusinessInfo, meta seo.Meta, jsonLD map[string]interface{}) string {
	var extra strings.Builder
	if biz.YearsInBusiness > 0 {
		fmt.Fprintf(&extra, `      <p>With %d years of experience, we know what it takes to do the job right.</p>
`, biz.YearsInBusiness)
	}
	if len(biz.ServiceAreas) > 0 {
		areas := make([]string, len(biz.ServiceAreas))
		for i, a := range biz.ServiceAreas {
			areas[i] = esc(a)
		}
		fmt.Fprintf(&extra, `      <h2>Areas We Serve</h2>
      <p>%s</p>
`, strings.Join(areas, ", "))
	}

	body := fmt.Sprintf(`  <section class="section page">
    <div class="container narrow">
      <h1>About %s</h1>
      <p>%s</p>
%s    </div>
  </section>
`, esc(biz.Name), esc(biz.Description), extra.String())

	return pageShell(biz, meta, jsonLD, "About", body)
}

func servicesPage(biz models.BusinessInfo, meta seo.Meta, jsonLD map[string]interface{}) string {
	var cards strings.Builder
	if len(biz.Services) == 0 {
		fmt.Fprintf(&cards, `      <p>Contact us to learn about everything %s can do for you.</p>
`, esc(biz.Name))
	} else {
		cards.WriteString(`      <div class="card-grid">
`)
		for _, service := range biz.Services {
			fmt.Fprintf(&cards, `        <div class="card">
          <h3>%s</h3>
          <a href="contact.html">Request this service</a>
        </div>
`, esc(service))
		}
		cards.WriteString(`      </div>
`)
	}

	body := fmt.Sprintf(`  <section class="section page">
    <div class="container">
      <h1>Our Services</h1>
%s    </div>
  </section>
`, cards.String())

	return pageShell(biz, meta, jsonLD, "Services", body)
}

func contactPage(biz models.BusinessInfo, meta seo.Meta, jsonLD map[string]interface{}) string {
	var banner string
	if biz.PrimaryCTA == models.CTACall && biz.Phone != "" {
		banner = fmt.Sprintf(`      <div class="call-banner">
        <p>Fastest way to reach us:</p>
        <a class="btn btn-primary" href="tel:%s">Call %s</a>
      </div>
`, esc(biz.Phone), esc(biz.Phone))
	}

	var details strings.Builder
	if biz.Phone != "" {
		fmt.Fprintf(&details, `        <p><strong>Phone:</strong> <a href="tel:%s">%s</a></p>
`, esc(biz.Phone), esc(biz.Phone))
	}
	if biz.Email != "" {
		fmt.Fprintf(&details, `        <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
`, esc(biz.Email), esc(biz.Email))
	}
	if biz.Address != "" {
		fmt.Fprintf(&details, `        <p><strong>Address:</strong> %s, %s, %s %s</p>
`, esc(biz.Address), esc(biz.City), esc(biz.State), esc(biz.ZipCode))
	}

	body := fmt.Sprintf(`  <section class="section page">
    <div class="container narrow">
      <h1>Contact %s</h1>
%s      <div class="contact-details">
%s      </div>
      <form id="contact-form" class="contact-form">
        <label>Name<input type="text" name="name" required /></label>
        <label>Email<input type="email" name="email" required /></label>
        <label>Phone<input type="tel" name="phone" /></label>
        <label>Message<textarea name="message" rows="4" required></textarea></label>
        <button type="submit" class="btn btn-primary">Send Message</button>
      </form>
    </div>
  </section>
`, esc(biz.Name), banner, details.String())

	return pageShell(biz, meta, jsonLD, "Contact", body)
}
