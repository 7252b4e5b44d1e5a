package sitecontent

import (
	"slices"
	"time"
)

// SiteContent is the editable content aggregate for the public site. Every
// section is always present; the Service replaces the whole value on each edit.
type SiteContent struct {
	Hero       Hero       `json:"hero" yaml:"hero"`
	ThreeRoads ThreeRoads `json:"threeRoads" yaml:"threeRoads"`
	Services   Services   `json:"services" yaml:"services"`
	HowWeWork  HowWeWork  `json:"howWeWork" yaml:"howWeWork"`
	ForTeams   ForTeams   `json:"forTeams" yaml:"forTeams"`
	Insights   Insights   `json:"insights" yaml:"insights"`
	Trainings  Trainings  `json:"trainings" yaml:"trainings"`
	Newsletter Newsletter `json:"newsletter" yaml:"newsletter"`
	Navigation Navigation `json:"navigation" yaml:"navigation"`
	Settings   Settings   `json:"settings" yaml:"settings"`
	Colors     Colors     `json:"colors" yaml:"colors"`
	Images     ImageSet   `json:"images" yaml:"images"`
	Users      UserSet    `json:"users" yaml:"users"`
}

// Button is a call-to-action label/target pair.
type Button struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// Hero is the landing banner.
type Hero struct {
	Title           string `json:"title" yaml:"title"`
	Subtitle        string `json:"subtitle" yaml:"subtitle"`
	Description     string `json:"description" yaml:"description"`
	BackgroundImage string `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
	PrimaryButton   Button `json:"primaryButton" yaml:"primaryButton"`
	SecondaryButton Button `json:"secondaryButton" yaml:"secondaryButton"`
}

// Road is one of the three paths presented by the ThreeRoads section.
type Road struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ThreeRoads frames the three options a client can take.
type ThreeRoads struct {
	Title        string `json:"title" yaml:"title"`
	Description1 string `json:"description1" yaml:"description1"`
	Description2 string `json:"description2" yaml:"description2"`
	Conclusion   string `json:"conclusion" yaml:"conclusion"`
	Roads        []Road `json:"roads" yaml:"roads"`
}

// Pillar is a service offering.
type Pillar struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Subtitle    string   `json:"subtitle" yaml:"subtitle"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	CustomImage string   `json:"customImage,omitempty" yaml:"customImage,omitempty"`
	Points      []string `json:"points" yaml:"points"`
	Link        string   `json:"link" yaml:"link"`
}

// Services lists the service pillars.
type Services struct {
	Title           string   `json:"title" yaml:"title"`
	BackgroundImage string   `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
	Pillars         []Pillar `json:"pillars" yaml:"pillars"`
}

// Step is one stage of the engagement process.
type Step struct {
	Number      string `json:"number" yaml:"number"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
}

// HowWeWork describes the engagement process.
type HowWeWork struct {
	Title           string `json:"title" yaml:"title"`
	BackgroundImage string `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
	Steps           []Step `json:"steps" yaml:"steps"`
}

// ForTeams targets team audiences.
type ForTeams struct {
	Title           string   `json:"title" yaml:"title"`
	Intro           string   `json:"intro" yaml:"intro"`
	Audiences       []string `json:"audiences" yaml:"audiences"`
	Conclusion      string   `json:"conclusion" yaml:"conclusion"`
	ButtonText      string   `json:"buttonText" yaml:"buttonText"`
	BackgroundImage string   `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
}

// Post is an insight article teaser.
type Post struct {
	ID               string `json:"id" yaml:"id"`
	Title            string `json:"title" yaml:"title"`
	Summary          string `json:"summary" yaml:"summary"`
	Category         string `json:"category" yaml:"category"`
	Date             string `json:"date" yaml:"date"`
	Slug             string `json:"slug" yaml:"slug"`
	ReadingTime      string `json:"readingTime" yaml:"readingTime"`
	FeaturedImage    string `json:"featuredImage,omitempty" yaml:"featuredImage,omitempty"`
	IllustrationType string `json:"illustrationType" yaml:"illustrationType"`
}

// Insights lists published posts.
type Insights struct {
	Title           string `json:"title" yaml:"title"`
	Subtitle        string `json:"subtitle" yaml:"subtitle"`
	BackgroundImage string `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
	Posts           []Post `json:"posts" yaml:"posts"`
}

// TrainingItem is a training offering with its expected outcome.
type TrainingItem struct {
	Title   string `json:"title" yaml:"title"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Trainings lists training offerings.
type Trainings struct {
	Title           string         `json:"title" yaml:"title"`
	BackgroundImage string         `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
	Items           []TrainingItem `json:"items" yaml:"items"`
	ButtonText      string         `json:"buttonText" yaml:"buttonText"`
}

// Newsletter is the signup block.
type Newsletter struct {
	Title           string `json:"title" yaml:"title"`
	Description     string `json:"description" yaml:"description"`
	Placeholder     string `json:"placeholder" yaml:"placeholder"`
	ButtonText      string `json:"buttonText" yaml:"buttonText"`
	BackgroundImage string `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
}

// NavLink is a top navigation entry.
type NavLink struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Navigation holds the ordered navigation links.
type Navigation struct {
	Links []NavLink `json:"links" yaml:"links"`
}

// Settings are site-wide identity settings.
type Settings struct {
	SiteName    string `json:"siteName" yaml:"siteName"`
	Tagline     string `json:"tagline" yaml:"tagline"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
	Favicon     string `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	Email       string `json:"email" yaml:"email"`
	LinkedinURL string `json:"linkedinUrl" yaml:"linkedinUrl"`
	LogoText    string `json:"logoText" yaml:"logoText"`
}

// Colors is the brand palette.
type Colors struct {
	Cream  string `json:"cream" yaml:"cream"`
	Dark   string `json:"dark" yaml:"dark"`
	Accent string `json:"accent" yaml:"accent"`
	Light  string `json:"light" yaml:"light"`
}

// ImageItem is an entry of the media library. URL is an opaque image reference
// (remote URL or inline data URL).
type ImageItem struct {
	ID         string    `json:"id" yaml:"id"`
	URL        string    `json:"url" yaml:"url"`
	Name       string    `json:"name" yaml:"name"`
	Alt        string    `json:"alt" yaml:"alt"`
	UploadedAt time.Time `json:"uploadedAt" yaml:"uploadedAt"`
}

// ImageSet is the media library collection.
type ImageSet struct {
	Items []ImageItem `json:"items" yaml:"items"`
}

// AdminUser is an account listed by the user management editor.
type AdminUser struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role" yaml:"role"`
}

// UserSet holds the admin users.
type UserSet struct {
	Users []AdminUser `json:"users" yaml:"users"`
}

// Clone returns a deep copy so callers never share slices with the Service.
func (c SiteContent) Clone() SiteContent {
	out := c
	out.Hero = c.Hero.clone()
	out.ThreeRoads = c.ThreeRoads.clone()
	out.Services = c.Services.clone()
	out.HowWeWork = c.HowWeWork.clone()
	out.ForTeams = c.ForTeams.clone()
	out.Insights = c.Insights.clone()
	out.Trainings = c.Trainings.clone()
	out.Newsletter = c.Newsletter.clone()
	out.Navigation = c.Navigation.clone()
	out.Settings = c.Settings.clone()
	out.Colors = c.Colors.clone()
	out.Images = c.Images.clone()
	out.Users = c.Users.clone()
	return out
}

func (h Hero) clone() Hero { return h }

func (t ThreeRoads) clone() ThreeRoads {
	t.Roads = slices.Clone(t.Roads)
	return t
}

func (s Services) clone() Services {
	if s.Pillars == nil {
		return s
	}
	pillars := make([]Pillar, len(s.Pillars))
	for i, p := range s.Pillars {
		p.Points = slices.Clone(p.Points)
		pillars[i] = p
	}
	s.Pillars = pillars
	return s
}

func (h HowWeWork) clone() HowWeWork {
	h.Steps = slices.Clone(h.Steps)
	return h
}

func (f ForTeams) clone() ForTeams {
	f.Audiences = slices.Clone(f.Audiences)
	return f
}

func (i Insights) clone() Insights {
	i.Posts = slices.Clone(i.Posts)
	return i
}

func (t Trainings) clone() Trainings {
	t.Items = slices.Clone(t.Items)
	return t
}

func (n Newsletter) clone() Newsletter { return n }

func (n Navigation) clone() Navigation {
	n.Links = slices.Clone(n.Links)
	return n
}

func (s Settings) clone() Settings { return s }

func (c Colors) clone() Colors { return c }

func (s ImageSet) clone() ImageSet {
	s.Items = slices.Clone(s.Items)
	return s
}

func (u UserSet) clone() UserSet {
	u.Users = slices.Clone(u.Users)
	return u
}

// Find returns the image with the given id.
func (s ImageSet) Find(id string) (ImageItem, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return ImageItem{}, false
}

// ImageOrDefault returns ref, or fallback when ref is empty.
func ImageOrDefault(ref, fallback string) string {
	if ref == "" {
		return fallback
	}
	return ref
}
