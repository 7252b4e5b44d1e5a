package sitecontent

var defaultPillarPoints = []string{
	"Point one",
	"Point two",
	"Point three",
}

var defaultContent = SiteContent{
	Hero: Hero{
		Title:       "Strategy that survives contact with reality",
		Subtitle:    "STRATRI",
		Description: "We help leadership teams turn ambition into a plan people can actually execute.",
		PrimaryButton: Button{
			Text: "Work with us",
			Link: "#contact",
		},
		SecondaryButton: Button{
			Text: "Explore services",
			Link: "#services",
		},
	},
	ThreeRoads: ThreeRoads{
		Title:        "Every organisation stands at a fork",
		Description1: "Growth stalls, priorities multiply and teams pull in different directions.",
		Description2: "At that point there are only three roads to take.",
		Conclusion:   "We help you choose the third road and walk it with confidence.",
		Roads: []Road{
			{Name: "Drift", Description: "Keep doing what worked before and hope the market waits."},
			{Name: "Overhaul", Description: "Tear everything down and bet the company on a rebuild."},
			{Name: "Realign", Description: "Keep what works, fix what does not, and move deliberately."},
		},
	},
	Services: Services{
		Title: "What we do",
		Pillars: []Pillar{
			{
				ID:       "strategy",
				Title:    "Strategy",
				Subtitle: "Direction that fits your context",
				Icon:     "compass",
				Points: []string{
					"Market and capability assessment",
					"Strategic options and trade-offs",
					"Roadmaps with clear ownership",
				},
				Link: "#strategy",
			},
			{
				ID:       "transformation",
				Title:    "Transformation",
				Subtitle: "Change that sticks",
				Icon:     "layers",
				Points: []string{
					"Operating model design",
					"Portfolio and initiative governance",
					"Change management support",
				},
				Link: "#transformation",
			},
			{
				ID:       "training",
				Title:    "Training",
				Subtitle: "Skills your teams keep",
				Icon:     "users",
				Points: []string{
					"Strategic thinking workshops",
					"OKR and planning clinics",
					"Leadership coaching",
				},
				Link: "#trainings",
			},
		},
	},
	HowWeWork: HowWeWork{
		Title: "How we work",
		Steps: []Step{
			{Number: "01", Title: "Listen", Description: "We start with interviews and data, not slides."},
			{Number: "02", Title: "Frame", Description: "We agree on the real problem and what success looks like."},
			{Number: "03", Title: "Design", Description: "We build options together with the people who will run them."},
			{Number: "04", Title: "Deliver", Description: "We stay through execution until the change holds."},
		},
	},
	ForTeams: ForTeams{
		Title: "For teams",
		Intro: "Our programmes are built for teams who carry strategy day to day.",
		Audiences: []string{
			"Leadership teams",
			"Product and portfolio managers",
			"Transformation offices",
		},
		Conclusion: "Every programme is tailored to where your team is today.",
		ButtonText: "Plan a session",
	},
	Insights: Insights{
		Title:    "Insights",
		Subtitle: "Notes from the field",
		Posts: []Post{
			{
				ID:               "post-1",
				Title:            "Why strategies fail in the second quarter",
				Summary:          "Most plans do not fail at launch. They fade when the first trade-off arrives.",
				Category:         "Strategy",
				Date:             "2024-03-12",
				Slug:             "why-strategies-fail-in-the-second-quarter",
				ReadingTime:      "5 min",
				IllustrationType: "compass",
			},
			{
				ID:               "post-2",
				Title:            "Three questions before any transformation",
				Summary:          "A short checklist we use before recommending a change programme.",
				Category:         "Transformation",
				Date:             "2024-04-02",
				Slug:             "three-questions-before-any-transformation",
				ReadingTime:      "4 min",
				IllustrationType: "roads",
			},
		},
	},
	Trainings: Trainings{
		Title: "Trainings",
		Items: []TrainingItem{
			{Title: "Strategic Thinking", Outcome: "Frame problems and options with clarity.", Icon: "lightbulb"},
			{Title: "OKRs in Practice", Outcome: "Set goals teams actually use.", Icon: "target"},
			{Title: "Leading Change", Outcome: "Guide people through uncertainty.", Icon: "flag"},
		},
		ButtonText: "See all trainings",
	},
	Newsletter: Newsletter{
		Title:       "Stay sharp",
		Description: "One practical strategy note a month. No noise.",
		Placeholder: "your@email.com",
		ButtonText:  "Subscribe",
	},
	Navigation: Navigation{
		Links: []NavLink{
			{Name: "Home", Path: "/"},
			{Name: "Services", Path: "/services"},
			{Name: "Insights", Path: "/insights"},
			{Name: "Trainings", Path: "/trainings"},
			{Name: "Contact", Path: "/contact"},
		},
	},
	Settings: Settings{
		SiteName:    "STRATRI",
		Tagline:     "Strategy, transformation, training",
		Email:       "hello@stratri.com",
		LinkedinURL: "https://www.linkedin.com/company/stratri",
		LogoText:    "STRATRI",
	},
	Colors: Colors{
		Cream:  "#f5f0e8",
		Dark:   "#1a1a1a",
		Accent: "#c4622d",
		Light:  "#ffffff",
	},
	Images: ImageSet{Items: []ImageItem{}},
	Users: UserSet{
		Users: []AdminUser{
			{ID: "admin", Name: "Administrator", Email: "admin@stratri.com", Role: "admin"},
		},
	},
}

// DefaultContent returns a fully populated copy of the built-in site content.
func DefaultContent() SiteContent {
	return defaultContent.Clone()
}

// DefaultPillarPoints returns the placeholder points given to new pillars.
func DefaultPillarPoints() []string {
	out := make([]string, len(defaultPillarPoints))
	copy(out, defaultPillarPoints)
	return out
}
