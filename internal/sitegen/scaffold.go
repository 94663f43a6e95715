package sitegen

import (
	"fmt"
	"sort"
	"strings"

	"bizforge/internal/branding"
	"bizforge/internal/models"
)

// fontImports maps resolved font family names to their next/font/google
// import identifiers. Unknown families fall back to the default font so the
// generated import never breaks.
var fontImports = map[string]string{
	"Inter":            "Inter",
	"Playfair Display": "Playfair_Display",
	"Lato":             "Lato",
	"Montserrat":       "Montserrat",
	"Open Sans":        "Open_Sans",
	"Poppins":          "Poppins",
	"Nunito":           "Nunito",
}

func fontImportIdent(family string) string {
	if ident, ok := fontImports[family]; ok {
		return ident
	}
	return fontImports[branding.DefaultFont]
}

func packageJSON(rawName string) string {
	return fmt.Sprintf(`{
  "name": "%s-website",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "next": "14.2.5",
    "react": "^18.3.1",
    "react-dom": "^18.3.1"
  },
  "devDependencies": {
    "@types/node": "^20",
    "@types/react": "^18",
    "autoprefixer": "^10.4.19",
    "postcss": "^8.4.38",
    "tailwindcss": "^3.4.4",
    "typescript": "^5"
  }
}
`, packageSlug(rawName))
}

// packageSlug lowercases and strips the name down to npm-safe characters.
// It must run on the unescaped name: sanitization would turn a control
// character into a backslash sequence whose letters leak into the slug.
func packageSlug(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-':
			sb.WriteRune('-')
		}
	}
	slug := strings.Trim(sb.String(), "-")
	if slug == "" {
		return "business"
	}
	return slug
}

func nextConfig() string {
	return `/** @type {import('next').NextConfig} */
const nextConfig = {
  output: 'export',
  images: { unoptimized: true },
};

export default nextConfig;
`
}

func postcssConfig() string {
	return `/** @type {import('postcss-load-config').Config} */
const config = {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
};

export default config;
`
}

func tsConfig() string {
	return `{
  "compilerOptions": {
    "lib": ["dom", "dom.iterable", "esnext"],
    "allowJs": true,
    "skipLibCheck": true,
    "strict": true,
    "noEmit": true,
    "esModuleInterop": true,
    "module": "esnext",
    "moduleResolution": "bundler",
    "resolveJsonModule": true,
    "isolatedModules": true,
    "jsx": "preserve",
    "incremental": true,
    "plugins": [{ "name": "next" }],
    "paths": { "@/*": ["./*"] }
  },
  "include": ["next-env.d.ts", "**/*.ts", "**/*.tsx", ".next/types/**/*.ts"],
  "exclude": ["node_modules"]
}
`
}

// tailwindConfig bakes the derived shade ramp into the theme as literal hex
// values. The generated site never recomputes colors at runtime.
func tailwindConfig(cfg *models.BrandingConfig) string {
	colors := branding.ResolveColors(cfg)
	fonts := branding.ResolveFonts(cfg)
	shades := branding.DeriveShades(colors.Primary)

	keys := make([]int, 0, len(shades))
	for k := range shades {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var ramp strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&ramp, "          %d: '%s',\n", k, shades[k])
	}

	return fmt.Sprintf(`import type { Config } from 'tailwindcss';

const config: Config = {
  content: ['./app/**/*.{ts,tsx}', './components/**/*.{ts,tsx}'],
  theme: {
    extend: {
      colors: {
        brand: {
%s        },
        secondary: '%s',
      },
      fontFamily: {
        heading: ['%s', 'sans-serif'],
        body: ['%s', 'sans-serif'],
      },
    },
  },
  plugins: [],
};

export default config;
`, ramp.String(), colors.Secondary, fonts.Heading, fonts.Body)
}

func globalStylesheet(cfg *models.BrandingConfig) string {
	colors := branding.ResolveColors(cfg)

	return fmt.Sprintf(`@tailwind base;
@tailwind components;
@tailwind utilities;

:root {
  --color-primary: %s;
  --color-secondary: %s;
}

html {
  scroll-behavior: smooth;
}

body {
  @apply font-body text-gray-800 antialiased;
}

h1, h2, h3, h4 {
  @apply font-heading;
}
`, colors.Primary, colors.Secondary)
}
