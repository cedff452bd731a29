package fleet

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Stat struct {
	Value  int
	Suffix string
	Label  string
}

type Testimonial struct {
	Quote   string
	Author  string
	Company string
}

type FooterColumn struct {
	Title string
	Items []string
}

// Landing is the marketing page content.
type Landing struct {
	NavItems     []string
	Features     []Feature
	Technology   []Feature
	Stats        []Stat
	Testimonials []Testimonial
	Footer       []FooterColumn
}

func DefaultLanding() *Landing {
	return &Landing{
		NavItems: []string{"Features", "Pricing", "About", "Contact"},
		Features: []Feature{
			{Icon: "truck", Title: "Real-time Tracking", Description: "Monitor your fleet's location and status in real-time"},
			{Icon: "chart", Title: "Performance Analytics", Description: "Gain insights to optimize your fleet's efficiency"},
			{Icon: "clock", Title: "Maintenance Scheduling", Description: "Automate maintenance to reduce downtime"},
		},
		Technology: []Feature{
			{Icon: "zap", Title: "AI-Powered Optimization", Description: "Advanced algorithms for route planning and resource allocation"},
			{Icon: "wifi", Title: "IoT Integration", Description: "Seamless connectivity with various sensors and devices"},
			{Icon: "battery", Title: "Energy Management", Description: "Optimize fuel consumption and support electric vehicle fleets"},
		},
		Stats: []Stat{
			{Value: 500, Suffix: "+", Label: "Fleet Vehicles Managed"},
			{Value: 98, Suffix: "%", Label: "Customer Satisfaction"},
			{Value: 30, Suffix: "%", Label: "Fuel Savings"},
		},
		Testimonials: []Testimonial{
			{
				Quote:   "This fleet management system has transformed our operations. We've seen a 30% increase in efficiency and significant cost savings.",
				Author:  "John Doe",
				Company: "TransportCo",
			},
			{
				Quote:   "The real-time tracking and analytics have given us unprecedented visibility into our fleet's performance. It's been a game-changer for our business.",
				Author:  "Jane Smith",
				Company: "Logistics Plus",
			},
			{
				Quote:   "The customer support team is exceptional. They've been there every step of the way, ensuring we get the most out of the platform.",
				Author:  "Mike Johnson",
				Company: "City Express",
			},
		},
		Footer: []FooterColumn{
			{Title: "Product", Items: []string{"Features", "Pricing", "Integrations"}},
			{Title: "Company", Items: []string{"About Us", "Careers", "Contact"}},
			{Title: "Connect", Items: []string{"Twitter", "LinkedIn", "Facebook"}},
		},
	}
}
