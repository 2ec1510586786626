package content

// ServiceCard is a top-level service category on the services overview.
type ServiceCard struct {
	Title       string
	Description string
	Icon        string
	Features    []string
	Href        string
}

// ServicesIntro is the lead paragraph of the services overview.
const ServicesIntro = "Complete print and design solutions under one roof. Choose your path and discover how we can transform your ideas into reality."

// ServiceCards returns the two service categories.
func ServiceCards() []ServiceCard {
	return []ServiceCard{
		{
			Title:       "Printing Services",
			Description: "State-of-the-art printing solutions with premium finishing options",
			Icon:        "🖨️",
			Features:    []string{"Multicolour Offset", "UV Printing", "Large Format", "Finishing Services"},
			Href:        "/services/printing",
		},
		{
			Title:       "Design Services",
			Description: "Creative design solutions that bring your vision to life",
			Icon:        "🎨",
			Features:    []string{"Graphic Design", "Web Development", "Video Production", "UI/UX Design"},
			Href:        "/services/design",
		},
	}
}

// ServicesCTA closes the services overview.
func ServicesCTA() CallToAction {
	return CallToAction{
		Title:  "Not Sure Which Service You Need?",
		Text:   "Our experts are here to help you choose the right solution for your project. Get a free consultation and discover the possibilities.",
		Button: Link{Label: "Get Free Consultation", Href: "/contact"},
	}
}

// Spec is a labelled technical specification.
type Spec struct {
	Label string
	Value string
}

// PrintingService is one detail panel on the printing page.
type PrintingService struct {
	Slug        string
	Title       string
	Description string
	Icon        string
	Features    []string
	Specs       []Spec
}

// PrintingIntro is the lead paragraph of the printing page.
const PrintingIntro = "Precision. Quality. Innovation. Experience the future of printing with our state-of-the-art technology and expert craftsmanship."

// PrintingServices returns the printing detail panels.
func PrintingServices() []PrintingService {
	return []PrintingService{
		{
			Slug:        "digital-offset",
			Title:       "Digital & Offset Printing",
			Description: "State-of-the-art printing technology for exceptional quality and precision.",
			Icon:        "🖨️",
			Features: []string{
				"Multi-color and black & white printing",
				"High-volume offset printing solutions",
				"Quick turnaround for urgent projects",
				"Cost-effective for large quantities",
			},
			Specs: []Spec{
				{Label: "Max Resolution", Value: "2400 DPI"},
				{Label: "Print Speed", Value: "15000 pages/hr"},
				{Label: "Max Size", Value: "Customer preference"},
				{Label: "Color Options", Value: "CMYK + RGB"},
			},
		},
		{
			Slug:        "uv",
			Title:       "UV Printing & Coating",
			Description: "Premium finishing with enhanced durability and visual appeal.",
			Icon:        "✨",
			Features: []string{
				"Instant drying UV technology",
				"Enhanced color vibrancy",
				"Scratch-resistant coating",
				"Waterproof and weatherproof options",
			},
			Specs: []Spec{
				{Label: "UV Types", Value: "Spot UV, Full UV"},
				{Label: "Thickness", Value: "5-50 microns"},
				{Label: "Finish", Value: "Glossy, Matte"},
				{Label: "Durability", Value: "5+ years outdoor"},
			},
		},
		{
			Slug:        "finishing",
			Title:       "Finishing Services",
			Description: "Professional finishing touches that make your prints stand out.",
			Icon:        "✂️",
			Features: []string{
				"Precision cutting and die cutting",
				"Thermal lamination",
				"Perfect binding and stitching",
				"Folding tri bi folds",
				"Scoring",
				"Holes and corner cut",
				"Perforation",
			},
			Specs: []Spec{
				{Label: "Cutting", Value: "All types of papers and boards"},
				{Label: "Lamination Types", Value: "Gloss, Matte, Thermal"},
				{Label: "Folding Options", Value: "Bi-fold, Tri-fold"},
				{Label: "Same-day", Value: "Available"},
			},
		},
		{
			Slug:        "specialty",
			Title:       "Specialty Printing",
			Description: "Unique printing solutions for special requirements.",
			Icon:        "🎯",
			Features: []string{
				"Custom cup and promotional items",
				"Customized Rubber stamp manufacturing",
				"Any size banner printing",
				"Id card with tag",
				"Gold foiling",
			},
			Specs: []Spec{
				{Label: "Cup Types", Value: "Ceramic, Glass"},
				{Label: "Stamp Materials", Value: "Rubber"},
				{Label: "ID Card Size", Value: "85.60 mm x 53.98 mm"},
				{Label: "Materials", Value: "50+ options"},
			},
		},
	}
}

// Material is a substrate group printed on.
type Material struct {
	Name  string
	Types []string
}

// MaterialsSection returns the heading of the materials grid.
func MaterialsSection() Section {
	return Section{
		Title: "Materials We Work With",
		Intro: "From standard paper to specialty materials, we handle it all with precision",
	}
}

// Materials returns the substrates grid.
func Materials() []Material {
	return []Material{
		{Name: "Sticker Paper", Types: []string{"Vinyl", "Paper-based", "Waterproof"}},
		{Name: "Board Materials", Types: []string{"Cardboard", "Mounting Board"}},
		{Name: "Synthetic Paper", Types: []string{"Waterproof", "Tear-resistant"}},
	}
}

// PrintingCTA closes the printing page.
func PrintingCTA() CallToAction {
	return CallToAction{
		Title:  "Ready to Start Your Printing Project?",
		Text:   "Get a free consultation and quote for your printing needs. Our experts are ready to help.",
		Button: Link{Label: "Get Your Quote", Href: "/contact"},
	}
}

// ProcessStep is one stage of a workflow.
type ProcessStep struct {
	Step        string
	Description string
}

// Discipline is one tab on the design page.
type Discipline struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Services    []string
	Process     []ProcessStep
	Stats       []Stat
}

// DesignIntro is the lead paragraph of the design page.
const DesignIntro = "Creativity Without Limits. Transform your vision into reality with our comprehensive design solutions."

// Disciplines returns the design page tabs; the first is shown initially.
func Disciplines() []Discipline {
	return []Discipline{
		{
			ID:          "graphic",
			Title:       "Graphic Design",
			Subtitle:    "Visual Communication Excellence",
			Description: "Transform your ideas into stunning visual narratives that captivate and inspire.",
			Services: []string{
				"Logo", "Letter head", "Visiting card", "Invitation card", "Greeting card", "Brochure",
				"Invoice", "Label and tags", "Catalogue", "Pamphlet", "Pagination", "Packaging",
				"Business card", "Banner", "Id card", "Certificates", "Customized Cup printing", "Printed t-shirt",
			},
			Process: []ProcessStep{
				{Step: "Discovery", Description: "Understanding your vision and requirements"},
				{Step: "Conceptualization", Description: "Creating initial design concepts"},
				{Step: "Refinement", Description: "Perfecting the chosen direction"},
				{Step: "Delivery", Description: "Final files in all required formats"},
			},
		},
		{
			ID:          "web",
			Title:       "Web Development",
			Subtitle:    "Digital Experiences That Convert",
			Description: "Build powerful online presence with modern, responsive, and user-centric websites.",
			Services: []string{
				"Custom Website Design", "E-commerce Solutions", "Web Application Development",
				"Content Management Systems", "Mobile-First Design", "SEO Optimization",
				"Performance Enhancement", "Maintenance & Support",
			},
			Process: []ProcessStep{
				{Step: "Strategy", Description: "Defining goals and user experience"},
				{Step: "Design", Description: "Creating beautiful, functional interfaces"},
				{Step: "Development", Description: "Building with cutting-edge technology"},
				{Step: "Launch", Description: "Going live with ongoing support"},
			},
			Stats: []Stat{
				{Value: 200, Suffix: "+", Label: "Websites Launched"},
				{Value: 99, Suffix: "%", Label: "Uptime Guarantee"},
				{Value: 3, Suffix: "s", Label: "Second Load Time"},
			},
		},
		{
			ID:          "uiux",
			Title:       "UI/UX Design",
			Subtitle:    "User-Centered Digital Experiences",
			Description: "Create intuitive and engaging interfaces that delight users and drive business results.",
			Services: []string{
				"User Research & Analysis", "Information Architecture", "Wireframing & Prototyping",
				"Visual Design & Branding", "Interaction Design", "Usability Testing", "Design Systems",
				"Mobile App Design", "Web App Design", "Dashboard & Analytics Design",
				"Responsive Design", "Accessibility Compliance",
			},
			Process: []ProcessStep{
				{Step: "Research", Description: "Understanding users and their needs"},
				{Step: "Ideation", Description: "Generating creative solutions"},
				{Step: "Prototyping", Description: "Building interactive mockups"},
				{Step: "Testing", Description: "Validating with real users"},
			},
			Stats: []Stat{
				{Value: 150, Suffix: "+", Label: "Apps Designed"},
				{Value: 95, Suffix: "%", Label: "User Satisfaction"},
				{Value: 40, Suffix: "%", Label: "Conversion Increase"},
			},
		},
		{
			ID:          "video",
			Title:       "Video Production",
			Subtitle:    "Compelling Visual Stories",
			Description: "Professional video production services that captivate audiences and convey your message powerfully.",
			Services: []string{
				"Corporate Videos", "Product Demos", "Explainer Videos", "Social Media Content",
				"Motion Graphics", "2D/3D Animation", "Video Editing", "Color Grading",
				"Sound Design", "Promotional Videos", "Event Coverage", "Documentary Production",
			},
			Process: []ProcessStep{
				{Step: "Planning", Description: "Concept development and scripting"},
				{Step: "Production", Description: "Professional filming and recording"},
				{Step: "Post-Production", Description: "Editing and enhancement"},
				{Step: "Delivery", Description: "Final output in required formats"},
			},
			Stats: []Stat{
				{Value: 500, Suffix: "+", Label: "Videos Produced"},
				{Value: 10, Suffix: "M+", Label: "Million Views"},
				{Value: 4, Suffix: "K", Label: "Video Quality"},
			},
		},
	}
}

// DesignCTA closes the design page.
func DesignCTA() CallToAction {
	return CallToAction{
		Title:  "Ready to Bring Your Vision to Life?",
		Text:   "Let's create something extraordinary together. Get in touch for a free consultation.",
		Button: Link{Label: "Start Your Project", Href: "/contact"},
	}
}
