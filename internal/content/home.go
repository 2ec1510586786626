package content

// HeroWords rotate in the hero headline.
func HeroWords() []string {
	return []string{"Technology", "Creativity", "Innovation", "Excellence"}
}

// Chip is a small icon link in the hero halves.
type Chip struct {
	Icon  string
	Label string
	Href  string
}

// HeroHalf is one side of the split hero.
type HeroHalf struct {
	Accent string
	Title  string
	Chips  []Chip
}

// Hero returns the print and design halves of the home hero.
func Hero() (printing, design HeroHalf) {
	printing = HeroHalf{
		Accent: "PRINTING",
		Title:  "SERVICES",
		Chips: []Chip{
			{Icon: "🖨️", Label: "Digital Print", Href: "/services/printing"},
			{Icon: "📄", Label: "Offset", Href: "/services/printing"},
			{Icon: "✨", Label: "UV Coating", Href: "/services/printing"},
			{Icon: "✂️", Label: "Finishing", Href: "/services/printing"},
		},
	}
	design = HeroHalf{
		Accent: "DESIGN",
		Title:  "SERVICES",
		Chips: []Chip{
			{Icon: "🎨", Label: "Graphic Design", Href: "/services/design"},
			{Icon: "💻", Label: "Web Dev", Href: "/services/design"},
			{Icon: "🎬", Label: "Video", Href: "/services/design"},
			{Icon: "🚀", Label: "Branding", Href: "/services/design"},
		},
	}

	return printing, design
}

// Stat is a counted-up number with a suffix such as "+" or "%".
type Stat struct {
	Value  int
	Suffix string
	Label  string
	Icon   string
}

// Section headings shared by several pages.
type Section struct {
	Title  string
	Accent string
	Intro  string
}

// StatsSection returns the heading of the home page numbers block.
func StatsSection() Section {
	return Section{
		Title:  "Our Journey in",
		Accent: "Numbers",
		Intro:  "A decade of dedication to quality and innovation has earned us the trust of hundreds of satisfied clients",
	}
}

// HomeStats returns the home page numbers.
func HomeStats() []Stat {
	return []Stat{
		{Value: 10, Suffix: "+", Label: "Years of Excellence", Icon: "📅"},
		{Value: 500, Suffix: "+", Label: "Happy Clients", Icon: "😊"},
		{Value: 1000, Suffix: "+", Label: "Projects Completed", Icon: "🎯"},
		{Value: 98, Suffix: "%", Label: "Client Satisfaction", Icon: "⭐"},
	}
}

// Feature is a titled card with a short feature list.
type Feature struct {
	Icon        string
	Title       string
	Description string
	Features    []string
	Href        string
}

// FeaturedSection returns the heading of the featured services block.
func FeaturedSection() Section {
	return Section{
		Title:  "Services That",
		Accent: "Deliver Results",
		Intro:  "From concept to completion, we offer comprehensive solutions tailored to your unique needs",
	}
}

// FeaturedServices returns the home page service cards.
func FeaturedServices() []Feature {
	return []Feature{
		{
			Icon:        "🖨️",
			Title:       "Digital Printing",
			Description: "High-quality digital printing with vibrant colors and sharp details for all your needs.",
			Features:    []string{"Fast Turnaround", "Small to Large Runs", "Variable Data"},
			Href:        "/services/printing",
		},
		{
			Icon:        "🎨",
			Title:       "Brand Design",
			Description: "Complete brand identity solutions that make your business stand out from the crowd.",
			Features:    []string{"Logo Design", "Brand Guidelines", "Marketing Materials"},
			Href:        "/services/design",
		},
		{
			Icon:        "💻",
			Title:       "Web Development",
			Description: "Modern, responsive websites that convert visitors into customers.",
			Features:    []string{"Responsive Design", "E-commerce", "SEO Optimized"},
			Href:        "/services/design",
		},
		{
			Icon:        "📦",
			Title:       "Packaging Solutions",
			Description: "Custom packaging that protects your products and elevates your brand.",
			Features:    []string{"Custom Shapes", "Eco-Friendly Options", "Premium Finishes"},
			Href:        "/services/printing",
		},
	}
}

// ValuePropsSection returns the heading of the value propositions block.
func ValuePropsSection() Section {
	return Section{
		Title:  "Why Choose",
		Accent: "Fusion Print & Design?",
		Intro:  "We combine cutting-edge technology with expert craftsmanship to deliver exceptional results",
	}
}

// ValueProps returns the reasons to choose the business.
func ValueProps() []Feature {
	return []Feature{
		{Icon: "🏢", Title: "Complete Solutions Under One Roof", Description: "From initial design concepts to finished printed products, we handle every step without multiple vendors"},
		{Icon: "⭐", Title: "Premium Quality Standards", Description: "State-of-the-art equipment and experienced professionals ensure consistent, high-quality results"},
		{Icon: "⚡", Title: "Quick Project Completion", Description: "Our integrated workflow means faster project completion and reliable on-time delivery"},
		{Icon: "💰", Title: "Cost-Effective Solutions", Description: "Direct printing capabilities and streamlined processes offer competitive rates without compromising quality"},
	}
}

// ValuePropsCTA closes the value propositions block.
func ValuePropsCTA() CallToAction {
	return CallToAction{
		Title:  "Ready to Start Your Project?",
		Text:   "Get a free consultation and quote for your printing and design needs. Our expert team is ready to bring your vision to life.",
		Button: Link{Label: "Get Free Quote", Href: "/contact"},
	}
}

// Testimonial is a client quote.
type Testimonial struct {
	Name    string
	Company string
	Quote   string
	Rating  int
}

// TestimonialsSection returns the heading of the testimonials block.
func TestimonialsSection() Section {
	return Section{
		Title: "What Our Clients Say",
		Intro: "Don't just take our word for it - hear from businesses who trust us with their print and design needs",
	}
}

// Testimonials returns the client quotes.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Name:    "Sarah Johnson",
			Company: "Tech Innovations Inc.",
			Quote:   "Fusion Print & Design exceeded our expectations! They handled our complete rebrand from logo design to business cards and marketing materials. The quality is outstanding and the turnaround was incredibly fast.",
			Rating:  5,
		},
		{
			Name:    "Michael Chen",
			Company: "Green Earth Solutions",
			Quote:   "Working with one company for both design and printing saved us so much time and hassle. Their team is professional, creative, and always delivers on time. Highly recommended!",
			Rating:  5,
		},
		{
			Name:    "Emily Rodriguez",
			Company: "Boutique Fashion House",
			Quote:   "The attention to detail in our product catalogues and promotional materials is exceptional. The gold foiling on our business cards gives them such a premium feel. Worth every penny!",
			Rating:  5,
		},
		{
			Name:    "David Thompson",
			Company: "Local Restaurant Group",
			Quote:   "From our website to our printed menus and promotional videos, Fusion handles it all. It's like having an entire marketing department at our fingertips. Great service and competitive prices.",
			Rating:  5,
		},
	}
}

// TestimonialsCTA closes the testimonials block.
func TestimonialsCTA() CallToAction {
	return CallToAction{
		Title:  "Join 500+ Satisfied Clients",
		Text:   "Experience the difference of working with a partner who understands your vision and delivers results",
		Button: Link{Label: "Start Your Project", Href: "/contact"},
	}
}

// ClientsSection returns the heading of the client logo marquee.
func ClientsSection() Section {
	return Section{
		Title:  "Trusted by",
		Accent: "Leading Brands",
		Intro:  "We're proud to work with companies that value quality and innovation",
	}
}

// ClientLogos returns the client names shown in the marquee.
func ClientLogos() []string {
	return []string{
		"TechCorp", "Global Industries", "Creative Studio", "Digital Agency",
		"StartUp Inc", "Business Solutions", "Media Group", "Innovation Labs",
	}
}
