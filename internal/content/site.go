// Package content holds the copy and catalogues rendered by the site: company
// details, navigation, section data for every page and the option lists used
// by the contact wizard.
package content

// Link is a labelled internal or external target.
type Link struct {
	Label string
	Href  string
}

// Company describes the business.
type Company struct {
	Name      string
	Tagline   string
	Founded   int
	Copyright string
}

// ContactInfo is shown in the footer and on the contact page.
type ContactInfo struct {
	Phone   string
	Email   string
	Address string
}

// Hours is one line of the opening hours table.
type Hours struct {
	Days  string
	Times string
}

// Business returns the company details.
func Business() Company {
	return Company{
		Name:      "Fusion Print & Design",
		Tagline:   "Where Technology Meets Creativity",
		Founded:   2014,
		Copyright: "© 2024 Fusion Print & Design. All rights reserved.",
	}
}

// Navigation returns the header menu in display order.
func Navigation() []Link {
	return []Link{
		{Label: "Home", Href: "/"},
		{Label: "About", Href: "/about"},
		{Label: "Services", Href: "/services"},
		{Label: "Contact", Href: "/contact"},
	}
}

// FooterServices returns the service links listed in the footer.
func FooterServices() []Link {
	return []Link{
		{Label: "Printing Services", Href: "/services/printing"},
		{Label: "Design Services", Href: "/services/design"},
		{Label: "Request a Quote", Href: "/contact"},
	}
}

// Contact returns the public contact details.
func Contact() ContactInfo {
	return ContactInfo{
		Phone:   "(123) 456-7890",
		Email:   "info@fusionprintdesign.com",
		Address: "123 Business Park, Suite 100, Your City, State 12345",
	}
}

// BusinessHours returns the opening hours.
func BusinessHours() []Hours {
	return []Hours{
		{Days: "Monday - Friday", Times: "9:00 AM - 6:00 PM"},
		{Days: "Saturday", Times: "10:00 AM - 4:00 PM"},
		{Days: "Sunday", Times: "Closed"},
	}
}

// WhyChooseUs returns the selling points listed beside the contact form.
func WhyChooseUs() []string {
	return []string{
		"One-stop solution for all your needs",
		"10+ years of industry experience",
		"500+ satisfied clients",
		"24-hour response guarantee",
	}
}

// CallToAction is a closing banner with a single button.
type CallToAction struct {
	Title  string
	Text   string
	Button Link
}
