// Package marketing assembles ad copy, image prompts and video scripts for
// a business from fixed industry and platform template tables. Everything
// here is pure string assembly: the same inputs always produce the same
// output, and no external generation service is called.
package marketing

import "strings"

// IndustryProfile carries the copy templates and visual descriptors for one
// industry vertical.
type IndustryProfile struct {
	Name        string
	Keywords    []string
	Headlines   []string
	Hooks       []string
	CTAs        []string
	VisualStyle string
	Hashtags    []string
}

// industryProfiles is scanned in order and the first keyword match wins, so
// the list order is a priority ranking. The general profile never matches by
// keyword; it is the fallback.
var industryProfiles = []IndustryProfile{
	{
		Name:     "plumbing",
		Keywords: []string{"plumb", "plumber", "drain", "pipe", "water heater", "leak"},
		Headlines: []string{
			"Fast, Reliable Plumbing When You Need It Most",
			"Your Local Plumbing Experts",
			"Leaks Fixed Right the First Time",
		},
		Hooks: []string{
			"That drip is costing you more than you think.",
			"Plumbing emergencies don't wait. Neither do we.",
			"When water goes where it shouldn't, call us.",
		},
		CTAs:        []string{"Call now for same-day service", "Get your free estimate today", "Book your inspection"},
		VisualStyle: "clean work trucks, uniformed technicians, before-and-after pipe repairs, bright residential settings",
		Hashtags:    []string{"#plumbing", "#plumber", "#homerepair", "#localbusiness"},
	},
	{
		Name:     "electrical",
		Keywords: []string{"electric", "electrician", "wiring", "panel"},
		Headlines: []string{
			"Licensed Electricians You Can Trust",
			"Safe, Code-Compliant Electrical Work",
			"Powering Homes Across Town",
		},
		Hooks: []string{
			"Flickering lights are trying to tell you something.",
			"Old wiring is a risk you can't see.",
			"One call handles every outlet, panel and fixture.",
		},
		CTAs:        []string{"Schedule your safety inspection", "Call for a free quote", "Book an electrician today"},
		VisualStyle: "precise panel work, clean installs, safety gear, well-lit interiors",
		Hashtags:    []string{"#electrician", "#electrical", "#homesafety", "#localbusiness"},
	},
	{
		Name:     "hvac",
		Keywords: []string{"hvac", "heating", "cooling", "air condition", "furnace"},
		Headlines: []string{
			"Stay Comfortable All Year Long",
			"Heating and Cooling Done Right",
			"Your Comfort Is Our Business",
		},
		Hooks: []string{
			"Summer heat shouldn't live in your living room.",
			"A tune-up today beats a breakdown in July.",
			"Comfort is one phone call away.",
		},
		CTAs:        []string{"Book your seasonal tune-up", "Get a free system quote", "Call before the heat does"},
		VisualStyle: "technicians at outdoor units, digital thermostats, comfortable families at home",
		Hashtags:    []string{"#hvac", "#airconditioning", "#heating", "#homecomfort"},
	},
	{
		Name:     "landscaping",
		Keywords: []string{"landscap", "lawn", "garden", "tree service", "mowing"},
		Headlines: []string{
			"Your Yard, Transformed",
			"Beautiful Lawns Start Here",
			"Outdoor Spaces Worth Coming Home To",
		},
		Hooks: []string{
			"Your neighbors are going to ask who did your yard.",
			"A great lawn doesn't happen by accident.",
			"Less weekend mowing. More weekend.",
		},
		CTAs:        []string{"Get your free design consult", "Book spring cleanup now", "Request a lawn quote"},
		VisualStyle: "lush green lawns, manicured beds, drone shots of finished yards, golden-hour lighting",
		Hashtags:    []string{"#landscaping", "#lawncare", "#curbappeal", "#outdoorliving"},
	},
	{
		Name:     "cleaning",
		Keywords: []string{"clean", "maid", "janitorial"},
		Headlines: []string{
			"Come Home to Spotless",
			"Cleaning You Can Count On",
			"More Free Time, Less Housework",
		},
		Hooks: []string{
			"Imagine walking into a freshly cleaned home every week.",
			"Your time is worth more than scrubbing grout.",
			"Spotless, without lifting a finger.",
		},
		CTAs:        []string{"Book your first clean", "Get an instant quote", "Claim your new-client discount"},
		VisualStyle: "sparkling kitchens and baths, satisfying before-and-after shots, bright natural light",
		Hashtags:    []string{"#cleaningservice", "#sparklingclean", "#homecleaning", "#satisfying"},
	},
	{
		Name:     "restaurant",
		Keywords: []string{"restaurant", "cafe", "bakery", "bar", "food", "pizzeria", "catering"},
		Headlines: []string{
			"Made Fresh, Served with Pride",
			"Your New Favorite Table in Town",
			"Flavor Worth Talking About",
		},
		Hooks: []string{
			"You can taste the difference fresh makes.",
			"Tonight deserves better than leftovers.",
			"The locals already know. Now you do too.",
		},
		CTAs:        []string{"Reserve your table", "Order online now", "See today's menu"},
		VisualStyle: "close-up plated dishes, steam and texture, warm dining room ambiance, chef action shots",
		Hashtags:    []string{"#foodie", "#eatlocal", "#freshfood", "#supportlocal"},
	},
	{
		Name:     "beauty",
		Keywords: []string{"salon", "spa", "barber", "beauty", "hair", "nails"},
		Headlines: []string{
			"Look Good. Feel Better.",
			"Your Best Look Starts Here",
			"Self-Care, Scheduled",
		},
		Hooks: []string{
			"You deserve an hour that's all about you.",
			"Great hair changes the whole week.",
			"Walk out feeling brand new.",
		},
		CTAs:        []string{"Book your appointment", "Reserve your spot today", "Treat yourself now"},
		VisualStyle: "transformation reveals, styling close-ups, calm spa textures, confident client portraits",
		Hashtags:    []string{"#selfcare", "#salonlife", "#beauty", "#bookedandbusy"},
	},
	{
		Name:     "fitness",
		Keywords: []string{"gym", "fitness", "trainer", "yoga", "crossfit"},
		Headlines: []string{
			"Stronger Starts Today",
			"Train with a Team Behind You",
			"Results You Can Measure",
		},
		Hooks: []string{
			"The hardest part is walking in the door. We make it easy.",
			"Twelve weeks from now you'll wish you started today.",
			"No judgment. Just progress.",
		},
		CTAs:        []string{"Claim your free first session", "Start your trial week", "Join today"},
		VisualStyle: "energetic training moments, real members not models, chalk and sweat, community high-fives",
		Hashtags:    []string{"#fitness", "#gymlife", "#training", "#fitfam"},
	},
	{
		Name:     "automotive",
		Keywords: []string{"auto", "mechanic", "car repair", "tire", "detailing"},
		Headlines: []string{
			"Honest Auto Repair, No Surprises",
			"Keep Your Car Running Like New",
			"Mechanics Your Neighbors Recommend",
		},
		Hooks: []string{
			"That check-engine light won't fix itself.",
			"Straight answers and fair prices. That's it.",
			"Your car knows when it's in good hands.",
		},
		CTAs:        []string{"Book your service today", "Get a free diagnostic", "Schedule an oil change"},
		VisualStyle: "clean shop bays, lifts and diagnostics, handshake with keys, gleaming finished vehicles",
		Hashtags:    []string{"#autorepair", "#mechanic", "#carcare", "#trustworthy"},
	},
	{
		Name:     "legal",
		Keywords: []string{"law", "lawyer", "attorney", "legal"},
		Headlines: []string{
			"Experienced Counsel in Your Corner",
			"Protecting What Matters Most",
			"Straight Talk. Strong Representation.",
		},
		Hooks: []string{
			"The right lawyer changes everything.",
			"Don't face this alone.",
			"Know your options before you decide.",
		},
		CTAs:        []string{"Schedule a free consultation", "Talk to an attorney today", "Get your case reviewed"},
		VisualStyle: "confident professional portraits, office settings, handshake moments, muted authoritative tones",
		Hashtags:    []string{"#lawyer", "#legalhelp", "#knowyourrights", "#attorney"},
	},
	{
		Name:     "medical",
		Keywords: []string{"dentist", "dental", "doctor", "medical", "clinic", "chiropract", "physical therapy"},
		Headlines: []string{
			"Care That Puts You First",
			"Healthy Starts with a Visit",
			"Gentle, Modern, Local Care",
		},
		Hooks: []string{
			"When was your last check-up?",
			"Feel better, faster, closer to home.",
			"Your health shouldn't wait for convenient.",
		},
		CTAs:        []string{"Book your appointment", "New patients welcome, call today", "Schedule your visit"},
		VisualStyle: "warm welcoming front desk, smiling providers, bright modern treatment rooms, reassuring tone",
		Hashtags:    []string{"#healthcare", "#wellness", "#newpatientswelcome", "#localcare"},
	},
	{
		Name:     "realestate",
		Keywords: []string{"real estate", "realtor", "realty", "property"},
		Headlines: []string{
			"Your Next Move Starts Here",
			"Homes Sold. Dreams Found.",
			"Local Market Knowledge That Pays",
		},
		Hooks: []string{
			"The right agent is worth thousands at closing.",
			"Your dream home is on the market right now.",
			"Selling? Timing is everything.",
		},
		CTAs:        []string{"Get your free home valuation", "Browse current listings", "Talk to an agent today"},
		VisualStyle: "bright listing photography, sold signs, happy handover of keys, neighborhood lifestyle shots",
		Hashtags:    []string{"#realestate", "#dreamhome", "#justlisted", "#homesweethome"},
	},
	{
		Name:     "general",
		Keywords: nil,
		Headlines: []string{
			"Quality Service from a Local Team",
			"Your Neighbors' Favorite Choice",
			"Service Done Right, Every Time",
		},
		Hooks: []string{
			"Local, reliable and ready to help.",
			"Great service starts with people who care.",
			"See why your neighbors keep coming back.",
		},
		CTAs:        []string{"Contact us today", "Get in touch for a quote", "Reach out now"},
		VisualStyle: "friendly team photos, storefront shots, authentic working moments, local community feel",
		Hashtags:    []string{"#localbusiness", "#supportlocal", "#shopsmall", "#community"},
	},
}

// FindIndustryProfile scans the ordered profile list and returns the first
// whose keywords substring-match the lowercased type, name and services.
// List position is the priority ranking. No match returns the general
// fallback.
func FindIndustryProfile(businessType, businessName string, services []string) IndustryProfile {
	haystack := strings.ToLower(businessType + " " + businessName + " " + strings.Join(services, " "))

	for _, profile := range industryProfiles {
		for _, keyword := range profile.Keywords {
			if strings.Contains(haystack, keyword) {
				return profile
			}
		}
	}
	return industryProfiles[len(industryProfiles)-1]
}

// GeneralProfile returns the fallback profile directly.
func GeneralProfile() IndustryProfile {
	return industryProfiles[len(industryProfiles)-1]
}

// seedIndex picks a deterministic list index from the business name. The
// same name always selects the same variant, which keeps generated copy
// stable across runs. Replace the seeding strategy here, nowhere else.
func seedIndex(businessName string, listLen int) int {
	if listLen == 0 {
		return 0
	}
	return len(businessName) % listLen
}
