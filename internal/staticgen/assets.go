package staticgen

import (
	"fmt"
	"strings"

	"bizforge/internal/branding"
	"bizforge/internal/models"
)

// stylesheet builds the single global stylesheet with the resolved brand
// palette baked in as CSS custom properties.
func stylesheet(cfg *models.BrandingConfig) string {
	colors := branding.ResolveColors(cfg)
	fonts := branding.ResolveFonts(cfg)
	shades := branding.DeriveShades(colors.Primary)

	var vars strings.Builder
	fmt.Fprintf(&vars, "  --color-primary: %s;\n", colors.Primary)
	fmt.Fprintf(&vars, "  --color-secondary: %s;\n", colors.Secondary)
	for _, key := range branding.ShadeKeys {
		fmt.Fprintf(&vars, "  --brand-%d: %s;\n", key, shades[key])
	}
	fmt.Fprintf(&vars, "  --font-heading: '%s', sans-serif;\n", fonts.Heading)
	fmt.Fprintf(&vars, "  --font-body: '%s', sans-serif;\n", fonts.Body)

	return fmt.Sprintf(`:root {
%s}

* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: var(--font-body);
  color: #1f2937;
  line-height: 1.6;
}

h1, h2, h3 { font-family: var(--font-heading); line-height: 1.2; }

.container { max-width: 1100px; margin: 0 auto; padding: 0 1.25rem; }
.container.narrow { max-width: 720px; }

.site-header {
  position: sticky;
  top: 0;
  background: #fff;
  border-bottom: 1px solid #e5e7eb;
  z-index: 10;
}

.nav { display: flex; align-items: center; justify-content: space-between; height: 64px; }
.nav-brand { font-family: var(--font-heading); font-weight: 700; font-size: 1.25rem; color: var(--brand-700); text-decoration: none; }
.nav-toggle { display: none; background: none; border: none; font-size: 1.5rem; cursor: pointer; }
.nav-links { display: flex; gap: 1.5rem; list-style: none; }
.nav-links a { color: #374151; text-decoration: none; }
.nav-links a:hover { color: var(--brand-600); }
.nav-links .nav-cta { color: var(--brand-600); font-weight: 600; }

.hero {
  background-color: var(--brand-800);
  background-size: cover;
  background-position: center;
  color: #fff;
  text-align: center;
  padding: 6rem 0;
}
.hero h1 { font-size: 2.75rem; margin-bottom: 1rem; }
.hero-tagline { font-size: 1.25rem; opacity: 0.9; max-width: 640px; margin: 0 auto 2rem; }
.hero-actions { display: flex; gap: 1rem; justify-content: center; flex-wrap: wrap; }

.btn {
  display: inline-block;
  padding: 0.75rem 1.75rem;
  border-radius: 0.5rem;
  font-weight: 600;
  text-decoration: none;
  border: none;
  cursor: pointer;
  font-size: 1rem;
}
.btn-primary { background: var(--brand-500); color: #fff; }
.btn-primary:hover { background: var(--brand-600); }
.btn-secondary { background: transparent; color: #fff; border: 2px solid #fff; }
.btn-light { background: #fff; color: var(--brand-700); }

.section { padding: 4rem 0; }
.section h2 { font-size: 2rem; margin-bottom: 2rem; text-align: center; }

.card-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1.5rem; }
.card {
  background: #fff;
  border: 1px solid #e5e7eb;
  border-radius: 0.75rem;
  padding: 1.75rem;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.06);
}
.card h3 { margin-bottom: 0.5rem; color: var(--brand-800); }
.card a { color: var(--brand-600); text-decoration: none; }

.services { background: var(--brand-50); }

.about-preview { text-align: center; }
.about-preview p { max-width: 640px; margin: 0 auto 1rem; }
.about-years { color: var(--brand-700); font-weight: 600; }
.link-arrow { color: var(--brand-600); font-weight: 600; text-decoration: none; }

.gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; }
.gallery img { width: 100%%; height: 200px; object-fit: cover; border-radius: 0.5rem; }

.testimonial { background: var(--brand-50); border-radius: 0.75rem; padding: 1.75rem; }
.testimonial cite { display: block; margin-top: 1rem; font-style: normal; font-weight: 600; color: var(--brand-800); }

.cta-banner { background: var(--brand-700); color: #fff; text-align: center; }
.cta-banner h2 { margin-bottom: 1.5rem; }

.page h1 { font-size: 2.25rem; margin-bottom: 1.5rem; }

.call-banner {
  background: var(--brand-50);
  border: 1px solid var(--brand-200);
  border-radius: 0.75rem;
  padding: 1.5rem;
  text-align: center;
  margin-bottom: 2rem;
}
.call-banner p { margin-bottom: 0.75rem; font-weight: 600; }

.contact-details { margin-bottom: 2rem; }
.contact-details a { color: var(--brand-600); }

.contact-form { display: grid; gap: 1rem; }
.contact-form label { display: grid; gap: 0.35rem; font-weight: 600; }
.contact-form input, .contact-form textarea {
  font: inherit;
  font-weight: 400;
  padding: 0.6rem 0.75rem;
  border: 1px solid #d1d5db;
  border-radius: 0.5rem;
}

.site-footer { background: #111827; color: #d1d5db; padding: 3rem 0 1.5rem; }
.footer-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 2rem; }
.footer-col h3 { color: #fff; margin-bottom: 0.75rem; }
.footer-col a { color: var(--brand-300); text-decoration: none; display: inline-block; margin-right: 0.75rem; }
.footer-col .day { display: inline-block; min-width: 6.5rem; font-weight: 600; }
.footer-copy { text-align: center; margin-top: 2.5rem; font-size: 0.875rem; color: #6b7280; }

@media (max-width: 768px) {
  .nav-toggle { display: block; }
  .nav-links {
    display: none;
    position: absolute;
    top: 64px;
    left: 0;
    right: 0;
    background: #fff;
    flex-direction: column;
    padding: 1rem 1.25rem;
    border-bottom: 1px solid #e5e7eb;
  }
  .nav-links.open { display: flex; }
  .hero h1 { font-size: 2rem; }
}
`, vars.String())
}

// mainScript is the only JavaScript on the static target: the mobile menu
// toggle and a form stub that acknowledges and resets without a network
// call.
func mainScript() string {
	return `document.addEventListener('DOMContentLoaded', function () {
  var toggle = document.querySelector('.nav-toggle');
  var links = document.querySelector('.nav-links');
  if (toggle && links) {
    toggle.addEventListener('click', function () {
      var open = links.classList.toggle('open');
      toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
  }

  var form = document.getElementById('contact-form');
  if (form) {
    form.addEventListener('submit', function (event) {
      event.preventDefault();
      alert('Thanks for reaching out! We will get back to you soon.');
      form.reset();
    });
  }
});
`
}
