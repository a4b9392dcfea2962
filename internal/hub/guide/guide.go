// Package guide holds the static crisis and safety-planning content.
package guide

// CrisisBanner is shown on every page.
const CrisisBanner = "In immediate danger? Call 911 | National Crisis Line: 988 | Crisis Text Line: Text HOME to 741741"

type Hotline struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Hours   string `json:"hours"`
}

type Section struct {
	Title string   `json:"title"`
	Tips  []string `json:"tips"`
}

type Guide struct {
	Banner   string    `json:"banner"`
	Hotlines []Hotline `json:"hotlines"`
	Sections []Section `json:"sections"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormOptions are the labelled choices of the help request form.
type FormOptions struct {
	SupportTypes []Option `json:"supportTypes"`
	Urgencies    []Option `json:"urgencies"`
}

var hotlines = []Hotline{
	{Name: "Emergency services", Contact: "Call 911", Hours: "24/7"},
	{Name: "988 Suicide & Crisis Lifeline", Contact: "Call or text 988", Hours: "24/7"},
	{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Hours: "24/7"},
	{Name: "National Domestic Violence Hotline", Contact: "1-800-799-7233", Hours: "24/7"},
}

var sections = []Section{
	{
		Title: "If you are in danger right now",
		Tips: []string{
			"Call 911 or get to a public place with other people around.",
			"If you cannot speak, text 911 where available or stay on the line.",
			"Move away from rooms with only one exit or with objects that can be used as weapons.",
		},
	},
	{
		Title: "Making a safety plan",
		Tips: []string{
			"Pick one or two people you trust and agree on a code word that means you need help.",
			"Keep ID, medication, keys, some cash and important phone numbers in one place you can grab quickly.",
			"Know two ways out of your home and a safe place you can go at any hour.",
			"Write down local shelter and hotline numbers in case your phone is lost or taken.",
		},
	},
	{
		Title: "After violence",
		Tips: []string{
			"Seek medical care even if injuries seem minor.",
			"Write down what happened, when, and who saw it while you remember it clearly.",
			"Victim services can help with compensation, protective orders and court accompaniment at no cost.",
			"Feeling numb, on edge or unable to sleep is common. Trauma counselors and peer groups can help.",
		},
	},
}

var formOptions = FormOptions{
	SupportTypes: []Option{
		{Value: "trauma", Label: "Trauma counseling or therapy"},
		{Value: "housing", Label: "Housing assistance"},
		{Value: "legal", Label: "Legal aid"},
		{Value: "financial", Label: "Financial assistance"},
		{Value: "safety", Label: "Safety planning"},
		{Value: "peer", Label: "Peer support group"},
		{Value: "medical", Label: "Medical care"},
		{Value: "other", Label: "Other"},
	},
	Urgencies: []Option{
		{Value: "immediate", Label: "Immediate (within 24 hours)"},
		{Value: "soon", Label: "Soon (within a week)"},
		{Value: "planning", Label: "Planning ahead"},
	},
}

// Safety returns the safety guide. The result is a fresh copy.
func Safety() Guide {
	g := Guide{
		Banner:   CrisisBanner,
		Hotlines: append([]Hotline(nil), hotlines...),
		Sections: make([]Section, len(sections)),
	}
	for i, s := range sections {
		g.Sections[i] = Section{Title: s.Title, Tips: append([]string(nil), s.Tips...)}
	}
	return g
}

// RequestForm returns the help request form choices.
func RequestForm() FormOptions {
	return FormOptions{
		SupportTypes: append([]Option(nil), formOptions.SupportTypes...),
		Urgencies:    append([]Option(nil), formOptions.Urgencies...),
	}
}
