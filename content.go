package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ============================================================================
// PAGE CONTENT
// ============================================================================
// Everything the page shows is declared here. Nothing is loaded or mutated at
// runtime; every surface (terminal, HTML, dumps) renders the same Page value.

// NavLink is an entry of the header navigation.
type NavLink struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"` // In-page anchor, e.g. "#benefits"
}

// Anchor returns the section id the link points at.
func (l NavLink) Anchor() string {
	return strings.TrimPrefix(l.Target, "#")
}

// Image is a placeholder picture referenced by URL only.
type Image struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt" yaml:"alt"`
}

type Hero struct {
	Badge           string   `json:"badge" yaml:"badge"`
	HeadlineLead    string   `json:"headlineLead" yaml:"headlineLead"`
	HeadlineAccent  string   `json:"headlineAccent" yaml:"headlineAccent"`
	Body            string   `json:"body" yaml:"body"`
	PrimaryAction   string   `json:"primaryAction" yaml:"primaryAction"`
	SecondaryAction string   `json:"secondaryAction" yaml:"secondaryAction"`
	SocialProof     string   `json:"socialProof" yaml:"socialProof"`
	QuoteLabel      string   `json:"quoteLabel" yaml:"quoteLabel"`
	Quote           string   `json:"quote" yaml:"quote"`
	Image           Image    `json:"image" yaml:"image"`
	Avatars         []string `json:"avatars" yaml:"avatars"`
}

// BenefitCard is one of the "why" cards. Icon is a glyph name, see iconGlyph.
type BenefitCard struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type IngredientItem struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// PricingPlan is a bundle on the pricing table. Price is in whole naira.
type PricingPlan struct {
	Name        string   `json:"name" yaml:"name"`
	Price       int      `json:"price" yaml:"price"`
	UnitCount   string   `json:"unitCount" yaml:"unitCount"`
	Description string   `json:"description" yaml:"description"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Features    []string `json:"features" yaml:"features"`
}

// DisplayPrice formats the plan price with the naira sign and grouped thousands.
func (p PricingPlan) DisplayPrice() string {
	return formatNaira(p.Price)
}

type Review struct {
	AuthorName string `json:"authorName" yaml:"authorName"`
	Role       string `json:"role" yaml:"role"`
	Content    string `json:"content" yaml:"content"`
	Rating     int    `json:"rating" yaml:"rating"`
}

// Stars renders the rating as filled stars.
func (r Review) Stars() string {
	if r.Rating <= 0 {
		return ""
	}
	return strings.Repeat("★", r.Rating)
}

type Benefits struct {
	Heading string        `json:"heading" yaml:"heading"`
	Intro   string        `json:"intro" yaml:"intro"`
	Cards   []BenefitCard `json:"cards" yaml:"cards"`
}

type Ingredients struct {
	HeadingLead   string           `json:"headingLead" yaml:"headingLead"`
	HeadingAccent string           `json:"headingAccent" yaml:"headingAccent"`
	Items         []IngredientItem `json:"items" yaml:"items"`
	Images        []Image          `json:"images" yaml:"images"`
	Action        string           `json:"action" yaml:"action"`
}

type Pricing struct {
	Heading string        `json:"heading" yaml:"heading"`
	Intro   string        `json:"intro" yaml:"intro"`
	Badge   string        `json:"badge" yaml:"badge"`
	Action  string        `json:"action" yaml:"action"`
	Plans   []PricingPlan `json:"plans" yaml:"plans"`
}

type Testimonials struct {
	Heading string   `json:"heading" yaml:"heading"`
	Summary string   `json:"summary" yaml:"summary"`
	Reviews []Review `json:"reviews" yaml:"reviews"`
}

type CallToAction struct {
	HeadingLead     string `json:"headingLead" yaml:"headingLead"`
	HeadingAccent   string `json:"headingAccent" yaml:"headingAccent"`
	Body            string `json:"body" yaml:"body"`
	PrimaryAction   string `json:"primaryAction" yaml:"primaryAction"`
	SecondaryAction string `json:"secondaryAction" yaml:"secondaryAction"`
}

type FooterColumn struct {
	Title string   `json:"title" yaml:"title"`
	Links []string `json:"links" yaml:"links"`
}

type Footer struct {
	Blurb     string         `json:"blurb" yaml:"blurb"`
	Socials   []string       `json:"socials" yaml:"socials"`
	Columns   []FooterColumn `json:"columns" yaml:"columns"`
	Legal     []string       `json:"legal" yaml:"legal"`
	Copyright string         `json:"copyright" yaml:"copyright"`
}

// Page is the whole site.
type Page struct {
	Brand        string       `json:"brand" yaml:"brand"`
	OrderAction  string       `json:"orderAction" yaml:"orderAction"`
	Nav          []NavLink    `json:"nav" yaml:"nav"`
	Hero         Hero         `json:"hero" yaml:"hero"`
	Benefits     Benefits     `json:"benefits" yaml:"benefits"`
	Ingredients  Ingredients  `json:"ingredients" yaml:"ingredients"`
	Pricing      Pricing      `json:"pricing" yaml:"pricing"`
	Testimonials Testimonials `json:"testimonials" yaml:"testimonials"`
	CallToAction CallToAction `json:"callToAction" yaml:"callToAction"`
	Footer       Footer       `json:"footer" yaml:"footer"`
}

// Section ids in the order they appear on the page.
var sectionIDs = []string{"hero", "benefits", "ingredients", "pricing", "reviews", "order", "footer"}

// iconGlyph maps BenefitCard icon names to terminal glyphs.
var iconGlyph = map[string]string{
	"zap":          "⚡",
	"shield-check": "🛡",
	"leaf":         "🍃",
}

func placeholder(seed string, w, h int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", seed, w, h)
}

// defaultPage returns the Ginger Shot landing page.
func defaultPage() Page {
	avatars := make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		avatars = append(avatars, placeholder(fmt.Sprintf("user%d", i), 120, 120))
	}

	return Page{
		Brand:       "GINGER SHOT",
		OrderAction: "ORDER NOW",
		Nav: []NavLink{
			{Label: "Benefits", Target: "#benefits"},
			{Label: "Ingredients", Target: "#ingredients"},
			{Label: "Pricing", Target: "#pricing"},
			{Label: "Reviews", Target: "#reviews"},
		},
		Hero: Hero{
			Badge:           "100% Organic Nigerian Ginger",
			HeadlineLead:    "Ignite Your",
			HeadlineAccent:  "Natural Power.",
			Body:            "Hand-crafted in small batches using premium, sun-dried ginger. A concentrated burst of immunity, energy, and vitality in every 60ml shot.",
			PrimaryAction:   "GET YOUR PACK",
			SecondaryAction: "VIEW BUNDLES",
			SocialProof:     "Trusted by 10,000+ Nigerians",
			QuoteLabel:      "Daily Ritual",
			Quote:           "The morning kick that changed my energy levels forever.",
			Image:           Image{URL: placeholder("ginger-shot-bottle", 1000, 1250), Alt: "Ginger Shot Bottle"},
			Avatars:         avatars,
		},
		Benefits: Benefits{
			Heading: "Why Ginger Shot?",
			Intro:   "We don't just make drinks; we bottle the ancient power of Nigerian soil to fuel your modern lifestyle.",
			Cards: []BenefitCard{
				{Icon: "zap", Title: "Instant Energy", Description: "Natural caffeine-free boost that keeps you sharp all day without the crash."},
				{Icon: "shield-check", Title: "Immunity Shield", Description: "Packed with antioxidants and gingerol to fight off seasonal illnesses."},
				{Icon: "leaf", Title: "Gut Health", Description: "Soothes digestion and reduces inflammation naturally from the inside out."},
			},
		},
		Ingredients: Ingredients{
			HeadingLead:   "Nothing But",
			HeadingAccent: "Pure Nature.",
			Items: []IngredientItem{
				{Name: "Organic Ginger", Description: "Sourced from Kaduna, high in gingerol for that signature burn."},
				{Name: "Fresh Lemon", Description: "A Vitamin C burst for skin health and metabolic support."},
				{Name: "Wild Honey", Description: "Natural sweetness with powerful antibacterial properties."},
				{Name: "Turmeric Root", Description: "The ultimate anti-inflammatory agent for joint health."},
			},
			Images: []Image{
				{URL: placeholder("ginger-root", 500, 700), Alt: "Fresh Ginger"},
				{URL: placeholder("citrus", 500, 500), Alt: "Lemon"},
				{URL: placeholder("pure-honey", 500, 500), Alt: "Honey"},
				{URL: placeholder("turmeric-root", 500, 700), Alt: "Turmeric"},
			},
			Action: "LEARN ABOUT OUR SOURCING",
		},
		Pricing: Pricing{
			Heading: "Choose Your Power",
			Intro:   "Freshly pressed and delivered to your doorstep. No preservatives, no shortcuts.",
			Badge:   "Most Popular",
			Action:  "ORDER NOW",
			Plans: []PricingPlan{
				{
					Name:        "Starter Pack",
					Price:       7500,
					UnitCount:   "7 Shots",
					Description: "Perfect for a week of wellness.",
					Features:    []string{"7 x 60ml Ginger Shots", "Freshly Pressed", "Lagos Delivery Only"},
				},
				{
					Name:        "Power Bundle",
					Price:       18000,
					UnitCount:   "21 Shots",
					Description: "Our most popular choice.",
					Featured:    true,
					Features:    []string{"21 x 60ml Ginger Shots", "Free Delivery in Lagos", "Priority Small Batch", "10% Savings"},
				},
				{
					Name:        "Family Pack",
					Price:       32000,
					UnitCount:   "42 Shots",
					Description: "Wellness for the whole home.",
					Features:    []string{"42 x 60ml Ginger Shots", "Free Nationwide Delivery", "Eco-Friendly Cooler Bag", "20% Savings"},
				},
			},
		},
		Testimonials: Testimonials{
			Heading: "The Community",
			Summary: "4.9/5 Average Rating from 500+ Reviews",
			Reviews: []Review{
				{
					AuthorName: "Chidi O.",
					Role:       "Tech Lead, Lagos",
					Content:    "I used to drink 4 coffees a day. Now, one Ginger Shot in the morning keeps me focused until evening. It's a game changer.",
					Rating:     5,
				},
				{
					AuthorName: "Amina B.",
					Role:       "Fitness Coach",
					Content:    "The best recovery drink. I feel the inflammation leaving my body. Plus, the taste is actually incredible, spicy and sweet!",
					Rating:     5,
				},
				{
					AuthorName: "Tunde E.",
					Role:       "Entrepreneur",
					Content:    "Finally, a Nigerian brand that prioritizes quality and aesthetics. The packaging is premium and the product is even better.",
					Rating:     5,
				},
			},
		},
		CallToAction: CallToAction{
			HeadingLead:     "Ready to feel",
			HeadingAccent:   "the burn?",
			Body:            "Join thousands of Nigerians who start their day with Ginger Shot. Order your first pack today and get 10% off your first order.",
			PrimaryAction:   "SHOP NOW",
			SecondaryAction: "SUBSCRIBE & SAVE",
		},
		Footer: Footer{
			Blurb:   "Premium wellness crafted in Nigeria. Empowering your daily life with the purest natural ingredients from our soil.",
			Socials: []string{"Instagram", "Twitter", "Facebook"},
			Columns: []FooterColumn{
				{Title: "Shop", Links: []string{"Single Shots", "Weekly Packs", "Monthly Subscription", "Gift Cards"}},
				{Title: "Company", Links: []string{"Our Story", "Sourcing", "Contact Us", "FAQs"}},
			},
			Legal:     []string{"Privacy Policy", "Terms of Service"},
			Copyright: "© 2024 Ginger Shot Wellness Ltd. Handcrafted in Lagos.",
		},
	}
}

// ============================================================================
// CONTENT CHECKS
// ============================================================================

var (
	ErrFeaturedPlan     = errors.New("exactly one pricing plan must be featured")
	ErrRating           = errors.New("review rating out of range")
	ErrAnchor           = errors.New("navigation target does not resolve")
	ErrDuplicateSection = errors.New("duplicate section id")
)

const maxRating = 5

// FeaturedPlan returns the featured plan. ok is false unless exactly one plan is featured.
func (p Page) FeaturedPlan() (plan PricingPlan, ok bool) {
	count := 0
	for _, candidate := range p.Pricing.Plans {
		if candidate.Featured {
			plan = candidate
			count++
		}
	}
	if count != 1 {
		return PricingPlan{}, false
	}
	return plan, true
}

// Validate reports every broken content invariant joined into one error.
func (p Page) Validate() error {
	var errs []error

	if _, ok := p.FeaturedPlan(); !ok {
		errs = append(errs, ErrFeaturedPlan)
	}

	for _, r := range p.Testimonials.Reviews {
		if r.Rating < 1 || r.Rating > maxRating {
			errs = append(errs, fmt.Errorf("%w: %s has %d", ErrRating, r.AuthorName, r.Rating))
		}
	}

	seen := make(map[string]bool, len(sectionIDs))
	for _, id := range sectionIDs {
		if seen[id] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateSection, id))
		}
		seen[id] = true
	}

	for _, link := range p.Nav {
		if !strings.HasPrefix(link.Target, "#") || !seen[link.Anchor()] {
			errs = append(errs, fmt.Errorf("%w: %s -> %q", ErrAnchor, link.Label, link.Target))
		}
	}

	return errors.Join(errs...)
}

// ============================================================================
// FORMATTING
// ============================================================================

var pricePrinter = message.NewPrinter(language.English)

// formatNaira renders 18000 as "₦18,000".
func formatNaira(amount int) string {
	return pricePrinter.Sprintf("₦%d", amount)
}
