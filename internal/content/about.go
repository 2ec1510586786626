package content

// AboutIntro is the lead paragraph of the about page.
const AboutIntro = "Where technology meets creativity. We're not just a print and design company, we're your creative partners in building brands that matter."

// Story returns the "Our Story" paragraphs.
func Story() []string {
	return []string{
		"Fusion Print & Design was born from the vision of two industry veterans who saw an opportunity to revolutionize how businesses approach their print and design needs.",
		"We recognized the frustration of coordinating between multiple vendors, the inconsistency in quality, and the communication gaps that often led to delays and compromised results. Our solution? Create a one-stop destination where creativity seamlessly meets production.",
		"Today, we're proud to be the trusted partner for over 500 businesses, from startups to Fortune 500 companies, delivering exceptional results that drive real business impact.",
	}
}

// AboutStats returns the about page numbers.
func AboutStats() []Stat {
	return []Stat{
		{Value: 10, Suffix: "+", Label: "Years Combined Experience"},
		{Value: 500, Suffix: "+", Label: "Happy Clients"},
		{Value: 1000, Suffix: "+", Label: "Projects Completed"},
		{Value: 98, Suffix: "%", Label: "Client Satisfaction"},
	}
}

// Values returns the core values.
func Values() []Feature {
	return []Feature{
		{Icon: "🚀", Title: "Innovation", Description: "Pushing boundaries with cutting-edge technology and creative solutions."},
		{Icon: "⭐", Title: "Quality", Description: "Uncompromising commitment to excellence in every project we undertake."},
		{Icon: "🤝", Title: "Partnership", Description: "Building lasting relationships through trust, transparency, and results."},
		{Icon: "⚡", Title: "Efficiency", Description: "Streamlined processes that save time and deliver value."},
	}
}

// Milestone is one entry of the company timeline.
type Milestone struct {
	Year  string
	Event string
}

// Timeline returns the company history, oldest first.
func Timeline() []Milestone {
	return []Milestone{
		{Year: "2014", Event: "Founded with a vision to revolutionize print and design"},
		{Year: "2016", Event: "Expanded services to include web development"},
		{Year: "2018", Event: "Launched video production division"},
		{Year: "2020", Event: "Upgraded to state-of-the-art printing technology"},
		{Year: "2023", Event: "Opened new facility with expanded capabilities"},
		{Year: "2024", Event: "Celebrating 10 years of excellence"},
	}
}

// AboutCTA closes the about page.
func AboutCTA() CallToAction {
	return CallToAction{
		Title:  "Ready to Join Our Success Story?",
		Text:   "Let's create something extraordinary together. Your vision, our expertise, unlimited possibilities.",
		Button: Link{Label: "Start Your Project", Href: "/contact"},
	}
}
