package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ServiceTag is one of the fixed catalog categories.
type ServiceTag string

const (
	TagTrauma             ServiceTag = "trauma"
	TagHousing            ServiceTag = "housing"
	TagLegal              ServiceTag = "legal"
	TagViolencePrevention ServiceTag = "violence-prevention"
	TagYouth              ServiceTag = "youth"
	TagVictims            ServiceTag = "victims"
)

// ServiceTags lists the vocabulary in display order.
var ServiceTags = []ServiceTag{
	TagTrauma, TagHousing, TagLegal, TagViolencePrevention, TagYouth, TagVictims,
}

// Valid reports whether t belongs to the fixed vocabulary.
func (t ServiceTag) Valid() bool {
	for _, known := range ServiceTags {
		if t == known {
			return true
		}
	}
	return false
}

// Resource is one catalog entry describing a support organization.
type Resource struct {
	ID          ResourceID   `json:"id"`
	Name        string       `json:"name"`
	Type        []ServiceTag `json:"type"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	Website     string       `json:"website,omitempty"`
	Verified    bool         `json:"verified"`
}

// HasAnyType reports whether the resource carries at least one of tags.
// Resources without tags match nothing.
func (r Resource) HasAnyType(tags ...ServiceTag) bool {
	for _, own := range r.Type {
		for _, t := range tags {
			if own == t {
				return true
			}
		}
	}
	return false
}

// IsNationwide reports whether the resource serves beyond a single place.
func (r Resource) IsNationwide() bool {
	loc := strings.ToLower(r.Location)
	return strings.Contains(loc, "nationwide") || strings.Contains(loc, "multiple states")
}

// UnmarshalJSON accepts the remote backend's `_id` field when `id` is absent.
func (r *Resource) UnmarshalJSON(data []byte) error {
	type plain Resource
	var aux struct {
		plain
		MongoID ResourceID `json:"_id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Resource(aux.plain)
	if r.ID == "" {
		r.ID = aux.MongoID
	}
	return nil
}

// ResourceID is stable within a session. Bundled records use numbers, the
// remote backend uses opaque strings; both decode into the same string form.
type ResourceID string

func (id *ResourceID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ResourceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ResourceID(n.String())
	return nil
}

// NumericID builds an id for bundled records.
func NumericID(n int) ResourceID {
	return ResourceID(strconv.Itoa(n))
}

// FilterOption is a directory category button.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryAll disables category restriction in the directory filter.
const CategoryAll = "all"

var FilterOptions = []FilterOption{
	{Value: CategoryAll, Label: "All Services"},
	{Value: string(TagTrauma), Label: "Trauma Therapy"},
	{Value: string(TagHousing), Label: "Housing"},
	{Value: string(TagLegal), Label: "Legal Aid"},
	{Value: string(TagViolencePrevention), Label: "Violence Prevention"},
	{Value: string(TagYouth), Label: "Youth Programs"},
	{Value: string(TagVictims), Label: "Victim Services"},
}
