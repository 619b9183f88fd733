package chatbot

import "encoding/json"

// Program describes one offering in the knowledge base.
type Program struct {
	Name          string `json:"name"`
	Duration      string `json:"duration"`
	Format        string `json:"format"`
	Description   string `json:"description"`
	Certification string `json:"certification"`
}

// KnowledgeBase is the fixed fact set the assistant answers from.
type KnowledgeBase struct {
	Programs  []Program         `json:"programs"`
	Mentors   []string          `json:"mentors"`
	Locations map[string]string `json:"locations"`
	Mission   string            `json:"mission"`
	Contact   string            `json:"contact"`
	Website   string            `json:"website"`
}

// DefaultKnowledgeBase returns the built-in program catalog.
func DefaultKnowledgeBase() KnowledgeBase {
	return KnowledgeBase{
		Programs: []Program{
			{
				Name:          "Executive Leadership Program",
				Duration:      "6 months",
				Format:        "Hybrid (online + offline)",
				Description:   "Comprehensive leadership development for senior professionals",
				Certification: "Yes, industry-recognized",
			},
			{
				Name:          "Women in Leadership Certification",
				Duration:      "3 months",
				Format:        "Online with virtual workshops",
				Description:   "Specialized program empowering women leaders",
				Certification: "Professional certification included",
			},
			{
				Name:          "Professional Development Workshop Series",
				Duration:      "2 months",
				Format:        "Weekend workshops (offline)",
				Description:   "Skill-building workshops for career advancement",
				Certification: "Completion certificates",
			},
			{
				Name:          "Mentorship & Coaching Programs",
				Duration:      "Ongoing",
				Format:        "One-on-one sessions",
				Description:   "Personalized guidance from industry experts",
				Certification: "Progress tracking certificates",
			},
		},
		Mentors: []string{
			"Senior executives from Fortune 500 companies",
			"Successful women entrepreneurs and business leaders",
			"Industry experts with 15+ years of experience",
			"ICF-accredited professional coaches",
			"Subject matter experts across various domains",
		},
		Locations: map[string]string{
			"online":  "Live virtual sessions with interactive features",
			"offline": "City-center campus with modern facilities",
			"hybrid":  "Combination of online and in-person sessions",
		},
		Mission: "Empowering professionals to become confident leaders",
		Contact: "careers@coursehub.example",
		Website: "coursehub.example",
	}
}

// JSON renders the knowledge base for the remote backend's system
// prompt.
func (kb KnowledgeBase) JSON() string {
	data, err := json.MarshalIndent(kb, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
