package model

import "strings"

// ServiceOption is an opening quick reply of the assistant. Categories is the
// set used to narrow matches once the visitor picked this option.
type ServiceOption struct {
	Label      string
	Tag        ServiceTag
	Categories []ServiceTag
	// Keywords are lowercase substrings that select this option from free text.
	Keywords []string
}

var ServiceOptions = []ServiceOption{
	{
		Label:      "Trauma therapy",
		Tag:        TagTrauma,
		Categories: []ServiceTag{TagTrauma, TagVictims},
		Keywords:   []string{"trauma", "therapy", "counsel", "mental health"},
	},
	{
		Label:      "Housing assistance",
		Tag:        TagHousing,
		Categories: []ServiceTag{TagHousing},
		Keywords:   []string{"housing", "shelter", "homeless"},
	},
	{
		Label:      "Legal help",
		Tag:        TagLegal,
		Categories: []ServiceTag{TagLegal, TagVictims},
		Keywords:   []string{"legal", "lawyer", "court"},
	},
	{
		Label:      "Violence prevention programs",
		Tag:        TagViolencePrevention,
		Categories: []ServiceTag{TagViolencePrevention},
		Keywords:   []string{"violence prevention", "prevention", "outreach"},
	},
	{
		Label:      "Youth services",
		Tag:        TagYouth,
		Categories: []ServiceTag{TagYouth},
		Keywords:   []string{"youth", "teen", "kid"},
	},
}

// ServiceOptionLabels returns the opening quick replies in order.
func ServiceOptionLabels() []string {
	labels := make([]string, 0, len(ServiceOptions))
	for _, o := range ServiceOptions {
		labels = append(labels, o.Label)
	}
	return labels
}

// ServiceOptionByTag looks up the option for a tag.
func ServiceOptionByTag(tag ServiceTag) (ServiceOption, bool) {
	for _, o := range ServiceOptions {
		if o.Tag == tag {
			return o, true
		}
	}
	return ServiceOption{}, false
}

// ServiceOptionByLabel matches a quick-reply label case-insensitively.
func ServiceOptionByLabel(label string) (ServiceOption, bool) {
	label = strings.TrimSpace(label)
	for _, o := range ServiceOptions {
		if strings.EqualFold(o.Label, label) {
			return o, true
		}
	}
	return ServiceOption{}, false
}

// DetectServiceOption finds the first option whose keyword occurs in text.
func DetectServiceOption(text string) (ServiceOption, bool) {
	lower := strings.ToLower(text)
	for _, o := range ServiceOptions {
		for _, kw := range o.Keywords {
			if strings.Contains(lower, kw) {
				return o, true
			}
		}
	}
	return ServiceOption{}, false
}

// CategoriesFor returns the narrowing set for a selected tag. A tag without
// an option narrows to itself; an empty tag does not narrow.
func CategoriesFor(tag ServiceTag) []ServiceTag {
	if tag == "" {
		return nil
	}
	if o, ok := ServiceOptionByTag(tag); ok {
		return o.Categories
	}
	return []ServiceTag{tag}
}
