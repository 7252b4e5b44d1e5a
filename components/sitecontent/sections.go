package sitecontent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionID tags one top-level field of SiteContent.
type SectionID string

const (
	SectionHero       SectionID = "hero"
	SectionThreeRoads SectionID = "threeRoads"
	SectionServices   SectionID = "services"
	SectionHowWeWork  SectionID = "howWeWork"
	SectionForTeams   SectionID = "forTeams"
	SectionInsights   SectionID = "insights"
	SectionTrainings  SectionID = "trainings"
	SectionNewsletter SectionID = "newsletter"
	SectionNavigation SectionID = "navigation"
	SectionSettings   SectionID = "settings"
	SectionColors     SectionID = "colors"
	SectionImages     SectionID = "images"
	SectionUsers      SectionID = "users"
)

var sectionOrder = []SectionID{
	SectionHero,
	SectionThreeRoads,
	SectionServices,
	SectionHowWeWork,
	SectionForTeams,
	SectionInsights,
	SectionTrainings,
	SectionNewsletter,
	SectionNavigation,
	SectionSettings,
	SectionColors,
	SectionImages,
	SectionUsers,
}

// SectionIDs returns every section tag in navigation order.
func SectionIDs() []SectionID {
	return append([]SectionID(nil), sectionOrder...)
}

// Valid reports whether id is one of the known section tags.
func (id SectionID) Valid() bool {
	for _, known := range sectionOrder {
		if known == id {
			return true
		}
	}
	return false
}

func (id SectionID) String() string { return string(id) }

// SectionValue is implemented by the value type of each section. The set is
// closed: only the section types in this package satisfy it.
type SectionValue interface {
	Section() SectionID
	cloneSection() SectionValue
}

func (Hero) Section() SectionID       { return SectionHero }
func (ThreeRoads) Section() SectionID { return SectionThreeRoads }
func (Services) Section() SectionID   { return SectionServices }
func (HowWeWork) Section() SectionID  { return SectionHowWeWork }
func (ForTeams) Section() SectionID   { return SectionForTeams }
func (Insights) Section() SectionID   { return SectionInsights }
func (Trainings) Section() SectionID  { return SectionTrainings }
func (Newsletter) Section() SectionID { return SectionNewsletter }
func (Navigation) Section() SectionID { return SectionNavigation }
func (Settings) Section() SectionID   { return SectionSettings }
func (Colors) Section() SectionID     { return SectionColors }
func (ImageSet) Section() SectionID   { return SectionImages }
func (UserSet) Section() SectionID    { return SectionUsers }

func (v Hero) cloneSection() SectionValue       { return v.clone() }
func (v ThreeRoads) cloneSection() SectionValue { return v.clone() }
func (v Services) cloneSection() SectionValue   { return v.clone() }
func (v HowWeWork) cloneSection() SectionValue  { return v.clone() }
func (v ForTeams) cloneSection() SectionValue   { return v.clone() }
func (v Insights) cloneSection() SectionValue   { return v.clone() }
func (v Trainings) cloneSection() SectionValue  { return v.clone() }
func (v Newsletter) cloneSection() SectionValue { return v.clone() }
func (v Navigation) cloneSection() SectionValue { return v.clone() }
func (v Settings) cloneSection() SectionValue   { return v.clone() }
func (v Colors) cloneSection() SectionValue     { return v.clone() }
func (v ImageSet) cloneSection() SectionValue   { return v.clone() }
func (v UserSet) cloneSection() SectionValue    { return v.clone() }

// Section returns a copy of the slice for id.
func (c SiteContent) Section(id SectionID) (SectionValue, error) {
	switch id {
	case SectionHero:
		return c.Hero.clone(), nil
	case SectionThreeRoads:
		return c.ThreeRoads.clone(), nil
	case SectionServices:
		return c.Services.clone(), nil
	case SectionHowWeWork:
		return c.HowWeWork.clone(), nil
	case SectionForTeams:
		return c.ForTeams.clone(), nil
	case SectionInsights:
		return c.Insights.clone(), nil
	case SectionTrainings:
		return c.Trainings.clone(), nil
	case SectionNewsletter:
		return c.Newsletter.clone(), nil
	case SectionNavigation:
		return c.Navigation.clone(), nil
	case SectionSettings:
		return c.Settings.clone(), nil
	case SectionColors:
		return c.Colors.clone(), nil
	case SectionImages:
		return c.Images.clone(), nil
	case SectionUsers:
		return c.Users.clone(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}

// With returns a new SiteContent where the section carried by value replaces
// the previous one in full. The receiver is left untouched.
func (c SiteContent) With(value SectionValue) SiteContent {
	next := c.Clone()
	switch v := value.(type) {
	case Hero:
		next.Hero = v.clone()
	case ThreeRoads:
		next.ThreeRoads = v.clone()
	case Services:
		next.Services = v.clone()
	case HowWeWork:
		next.HowWeWork = v.clone()
	case ForTeams:
		next.ForTeams = v.clone()
	case Insights:
		next.Insights = v.clone()
	case Trainings:
		next.Trainings = v.clone()
	case Newsletter:
		next.Newsletter = v.clone()
	case Navigation:
		next.Navigation = v.clone()
	case Settings:
		next.Settings = v.clone()
	case Colors:
		next.Colors = v.clone()
	case ImageSet:
		next.Images = v.clone()
	case UserSet:
		next.Users = v.clone()
	}
	return next
}

// DecodeSection builds the typed value for id from a JSON payload. Unknown
// keys are rejected so a misspelt field never silently drops an edit.
func DecodeSection(id SectionID, data []byte) (SectionValue, error) {
	switch id {
	case SectionHero:
		return decodeStrict[Hero](id, data)
	case SectionThreeRoads:
		return decodeStrict[ThreeRoads](id, data)
	case SectionServices:
		return decodeStrict[Services](id, data)
	case SectionHowWeWork:
		return decodeStrict[HowWeWork](id, data)
	case SectionForTeams:
		return decodeStrict[ForTeams](id, data)
	case SectionInsights:
		return decodeStrict[Insights](id, data)
	case SectionTrainings:
		return decodeStrict[Trainings](id, data)
	case SectionNewsletter:
		return decodeStrict[Newsletter](id, data)
	case SectionNavigation:
		return decodeStrict[Navigation](id, data)
	case SectionSettings:
		return decodeStrict[Settings](id, data)
	case SectionColors:
		return decodeStrict[Colors](id, data)
	case SectionImages:
		return decodeStrict[ImageSet](id, data)
	case SectionUsers:
		return decodeStrict[UserSet](id, data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}

func decodeStrict[T SectionValue](id SectionID, data []byte) (SectionValue, error) {
	var value T
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: section %s: %v", ErrInvalidPayload, id, err)
	}
	return value, nil
}
