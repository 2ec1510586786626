package content

// ServiceCategory groups selectable services in the quote wizard.
type ServiceCategory struct {
	ID       string
	Label    string
	Services []string
}

// QuoteIntro is the lead paragraph of the contact page.
const QuoteIntro = "Share your project details and requirements with us. We'll get back to you within 24 hours to discuss how we can bring your vision to life."

// SuccessMessage is shown after a quote request has been submitted.
const SuccessMessage = "Thank you for your inquiry! We'll get back to you within 24 hours."

// QuoteCategories returns the services offered in the wizard's second step.
func QuoteCategories() []ServiceCategory {
	return []ServiceCategory{
		{
			ID:    "printing",
			Label: "Printing Services",
			Services: []string{
				"Digital & Offset Printing", "UV Printing & Coating", "Thermal lamination",
				"Folding tri bi folds", "Scoring", "Holes and corner cut", "Perforation",
				"Custom cup printing", "Rubber stamp manufacturing", "Banner printing",
				"Id card with tag", "Gold foiling",
			},
		},
		{
			ID:    "design",
			Label: "Graphic Design Services",
			Services: []string{
				"Logo", "Letter head", "Visiting card", "Invitation/greeting card", "Brochure",
				"Invoice", "Label and tags", "Catalogue", "Pamphlet", "Packaging", "Business card",
				"Banner design", "Id card design", "Certificates", "Customized Cup printing design",
				"Printed t-shirt design",
			},
		},
		{
			ID:    "web",
			Label: "Web Development",
			Services: []string{
				"Custom Website Design", "E-commerce Solutions", "Web Application Development",
				"Content Management Systems", "Mobile-First Design", "SEO Optimization",
				"Performance Enhancement", "Maintenance & Support",
			},
		},
	}
}

// ServiceLabels flattens QuoteCategories in display order.
func ServiceLabels() []string {
	var out []string
	for _, c := range QuoteCategories() {
		out = append(out, c.Services...)
	}

	return out
}

// Timelines returns the delivery timeline options.
func Timelines() []string {
	return []string{"ASAP (Rush)", "1 Week", "2-3 Weeks", "1 Month", "2+ Months", "Flexible"}
}

// Budgets returns the optional budget ranges.
func Budgets() []string {
	return []string{"Under $500", "$500 - $1,000", "$1,000 - $5,000", "$5,000 - $10,000", "Above $10,000"}
}
