package sitecontent

import (
	"context"
	"fmt"

	"github.com/ettle/strcase"
	"github.com/google/uuid"
)

const (
	newPillarTitle   = "New Service"
	newPillarLink    = "#"
	newStepTitle     = "New Step"
	newPostTitle     = "New Post"
	newPostReading   = "5 min"
	newPostArt       = "compass"
	newLinkName      = "New Link"
	newLinkPath      = "/"
	newTrainingTitle = "New Training"
	newAudience      = "New audience"
	newPoint         = "New point"
	newUserName      = "New User"
	newUserRole      = "editor"
)

// newID generates identifiers for appended items. Swapped in tests.
var newID = uuid.NewString

// Slugify derives a URL slug from a post title.
func Slugify(title string) string {
	return strcase.ToKebab(title)
}

// HeroEditor edits the hero banner.
type HeroEditor struct{ *Editor[Hero] }

// NewHeroEditor binds a hero editor to onUpdate.
func NewHeroEditor(value Hero, onUpdate func(context.Context, Hero) error) *HeroEditor {
	return &HeroEditor{newEditor(value, onUpdate,
		bind("title", "Title", FieldText, func(h *Hero) *string { return &h.Title }),
		bind("subtitle", "Subtitle", FieldText, func(h *Hero) *string { return &h.Subtitle }),
		bind("description", "Description", FieldTextarea, func(h *Hero) *string { return &h.Description }),
		bind("backgroundImage", "Background image", FieldImage, func(h *Hero) *string { return &h.BackgroundImage }),
		bind("primaryButton.text", "Primary button text", FieldText, func(h *Hero) *string { return &h.PrimaryButton.Text }),
		bind("primaryButton.link", "Primary button link", FieldText, func(h *Hero) *string { return &h.PrimaryButton.Link }),
		bind("secondaryButton.text", "Secondary button text", FieldText, func(h *Hero) *string { return &h.SecondaryButton.Text }),
		bind("secondaryButton.link", "Secondary button link", FieldText, func(h *Hero) *string { return &h.SecondaryButton.Link }),
	)}
}

// ThreeRoadsEditor edits the three roads block. Roads are edited in place
// only; the collection always holds exactly three entries.
type ThreeRoadsEditor struct{ *Editor[ThreeRoads] }

// NewThreeRoadsEditor binds a three roads editor to onUpdate.
func NewThreeRoadsEditor(value ThreeRoads, onUpdate func(context.Context, ThreeRoads) error) *ThreeRoadsEditor {
	return &ThreeRoadsEditor{newEditor(value, onUpdate,
		bind("title", "Title", FieldText, func(t *ThreeRoads) *string { return &t.Title }),
		bind("description1", "First paragraph", FieldTextarea, func(t *ThreeRoads) *string { return &t.Description1 }),
		bind("description2", "Second paragraph", FieldTextarea, func(t *ThreeRoads) *string { return &t.Description2 }),
		bind("conclusion", "Conclusion", FieldTextarea, func(t *ThreeRoads) *string { return &t.Conclusion }),
	)}
}

// UpdateRoad edits the road at index.
func (e *ThreeRoadsEditor) UpdateRoad(ctx context.Context, index int, fn func(*Road)) error {
	return e.Edit(ctx, func(t *ThreeRoads) error {
		roads, err := UpdateAt(t.Roads, index, fn)
		if err != nil {
			return err
		}
		t.Roads = roads
		return nil
	})
}

// ServicesEditor edits the service pillars and their points.
type ServicesEditor struct{ *Editor[Services] }

// NewServicesEditor binds a services editor to onUpdate.
func NewServicesEditor(value Services, onUpdate func(context.Context, Services) error) *ServicesEditor {
	return &ServicesEditor{newEditor(value, onUpdate,
		bind("title", "Title", FieldText, func(s *Services) *string { return &s.Title }),
		bind("backgroundImage", "Background image", FieldImage, func(s *Services) *string { return &s.BackgroundImage }),
	)}
}

// NewPillar returns the shape appended by AddPillar.
func NewPillar() Pillar {
	return Pillar{
		ID:     newID(),
		Title:  newPillarTitle,
		Points: DefaultPillarPoints(),
		Link:   newPillarLink,
	}
}

// AddPillar appends a default pillar and returns it.
func (e *ServicesEditor) AddPillar(ctx context.Context) (Pillar, error) {
	pillar := NewPillar()
	err := e.Edit(ctx, func(s *Services) error {
		s.Pillars = AppendItem(s.Pillars, pillar)
		return nil
	})
	return pillar, err
}

// RemovePillar drops the pillar at index.
func (e *ServicesEditor) RemovePillar(ctx context.Context, index int) error {
	return e.Edit(ctx, func(s *Services) error {
		pillars, err := RemoveAt(s.Pillars, index)
		if err != nil {
			return err
		}
		s.Pillars = pillars
		return nil
	})
}

// RemovePillarByID drops the pillar with id; unknown ids change nothing.
func (e *ServicesEditor) RemovePillarByID(ctx context.Context, id string) error {
	return e.Edit(ctx, func(s *Services) error {
		s.Pillars = RemoveByID(s.Pillars, id, func(p Pillar) string { return p.ID })
		return nil
	})
}

// UpdatePillar edits the pillar at index.
func (e *ServicesEditor) UpdatePillar(ctx context.Context, index int, fn func(*Pillar)) error {
	return e.Edit(ctx, func(s *Services) error {
		pillars, err := UpdateAt(s.Pillars, index, fn)
		if err != nil {
			return err
		}
		s.Pillars = pillars
		return nil
	})
}

// MovePillar reorders pillars.
func (e *ServicesEditor) MovePillar(ctx context.Context, from, to int) error {
	return e.Edit(ctx, func(s *Services) error {
		pillars, err := MoveItem(s.Pillars, from, to)
		if err != nil {
			return err
		}
		s.Pillars = pillars
		return nil
	})
}

// AddPoint appends a placeholder point to the pillar at index.
func (e *ServicesEditor) AddPoint(ctx context.Context, pillar int) error {
	return e.editPoints(ctx, pillar, func(points []string) ([]string, error) {
		return AppendItem(points, newPoint), nil
	})
}

// RemovePoint drops one point of a pillar.
func (e *ServicesEditor) RemovePoint(ctx context.Context, pillar, point int) error {
	return e.editPoints(ctx, pillar, func(points []string) ([]string, error) {
		return RemoveAt(points, point)
	})
}

// SetPoint rewrites one point of a pillar.
func (e *ServicesEditor) SetPoint(ctx context.Context, pillar, point int, text string) error {
	return e.editPoints(ctx, pillar, func(points []string) ([]string, error) {
		return UpdateAt(points, point, func(p *string) { *p = text })
	})
}

func (e *ServicesEditor) editPoints(ctx context.Context, pillar int, fn func([]string) ([]string, error)) error {
	return e.Edit(ctx, func(s *Services) error {
		if pillar < 0 || pillar >= len(s.Pillars) {
			return fmt.Errorf("%w: pillar %d of %d", ErrIndexOutOfRange, pillar, len(s.Pillars))
		}
		points, err := fn(s.Pillars[pillar].Points)
		if err != nil {
			return err
		}
		pillars, _ := UpdateAt(s.Pillars, pillar, func(p *Pillar) { p.Points = points })
		s.Pillars = pillars
		return nil
	})
}

// HowWeWorkEditor edits the process steps.
type HowWeWorkEditor struct{ *Editor[HowWeWork] }

// NewHowWeWorkEditor binds a process editor to onUpdate.
func NewHowWeWorkEditor(value HowWeWork, onUpdate func(context.Context, HowWeWork) error) *HowWeWorkEditor {
	return &HowWeWorkEditor{newEditor(value, onUpdate,
		bind("title", "Title", FieldText, func(h *HowWeWork) *string { return &h.Title }),
		bind("backgroundImage", "Background image", FieldImage, func(h *HowWeWork) *string { return &h.BackgroundImage }),
	)}
}

// StepNumber formats the display number of the step at position n (1-based).
func StepNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

// AddStep appends a step numbered after the current last one.
func (e *HowWeWorkEditor) AddStep(ctx context.Context) (Step, error) {
	var step Step
	err := e.Edit(ctx, func(h *HowWeWork) error {
		step = Step{Number: StepNumber(len(h.Steps) + 1), Title: newStepTitle}
		h.Steps = AppendItem(h.Steps, step)
		return nil
	})
	return step, err
}

// RemoveStep drops the step at index. Remaining numbers are left as typed.
func (e *HowWeWorkEditor) RemoveStep(ctx context.Context, index int) error {
	return e.Edit(ctx, func(h *HowWeWork) error {
		steps, err := RemoveAt(h.Steps, index)
		if err != nil {
			return err
		}
		h.Steps = steps
		return nil
	})
}

// UpdateStep edits the step at index.
func (e *HowWeWorkEditor) UpdateStep(ctx context.Context, index int, fn func(*Step)) error {
	return e.Edit(ctx, func(h *HowWeWork) error {
		steps, err := UpdateAt(h.Steps, index, fn)
		if err != nil {
			return err
		}
		h.Steps = steps
		return nil
	})
}

// MoveStep reorders steps.
func (e *HowWeWorkEditor) MoveStep(ctx context.Context, from, to int) error {
	return e.Edit(ctx, func(h *HowWeWork) error {
		steps, err := MoveItem(h.Steps, from, to)
		if err != nil {
			return err
		}
		h.Steps = steps
		return nil
	})
}

// ForTeamsEditor edits the team audiences block.
type ForTeamsEditor struct{ *Editor[ForTeams] }

// NewForTeamsEditor binds a for-teams editor to onUpdate.
func NewForTeamsEditor(value ForTeams, onUpdate func(context.Context, ForTeams) error) *ForTeamsEditor {
	return &ForTeamsEditor{newEditor(value, onUpdate,
		bind("title", "Title", FieldText, func(f *ForTeams) *string { return &f.Title }),
		bind("intro", "Intro", FieldTextarea, func(f *ForTeams) *string { return &f.Intro }),
		bind("conclusion", "Conclusion", FieldTextarea, func(f *ForTeams) *string { return &f.Conclusion }),
		bind("buttonText", "Button text", FieldText, func(f *ForTeams) *string { return &f.ButtonText }),
		bind("backgroundImage", "Background image", FieldImage, func(f *ForTeams) *string { return &f.BackgroundImage }),
	)}
}

// AddAudience appends a placeholder audience.
func (e *ForTeamsEditor) AddAudience(ctx context.Context) error {
	return e.Edit(ctx, func(f *ForTeams) error {
		f.Audiences = AppendItem(f.Audiences, newAudience)
		return nil
	})
}

// RemoveAudience drops the audience at index.
func (e *ForTeamsEditor) RemoveAudience(ctx context.Context, index int) error {
	return e.Edit(ctx, func(f *ForTeams) error {
		audiences, err := RemoveAt(f.Audiences, index)
		if err != nil {
			return err
		}
		f.Audiences = audiences
		return nil
	})
}

// SetAudience rewrites the audience at index.
func (e *ForTeamsEditor) SetAudience(ctx context.Context, index int, text string) error {
	return e.Edit(ctx, func(f *ForTeams) error {
		audiences, err := UpdateAt(f.Audiences, index, func(a *string) { *a = text })
		if err != nil {
			return err
		}
		f.Audiences = audiences
		return nil
	})
}

// InsightsEditor edits the published posts.
type InsightsEditor struct {
	*Editor[Insights]
	clock Clock
}

// NewInsightsEditor binds an insights editor to onUpdate.
func NewInsightsEditor(value Insights, onUpdate func(context.Context, Insights) error) *InsightsEditor {
	return &InsightsEditor{
		Editor: newEditor(value, onUpdate,
			bind("title", "Title", FieldText, func(i *Insights) *string { return &i.Title }),
			bind("subtitle", "Subtitle", FieldText, func(i *Insights) *string { return &i.Subtitle }),
			bind("backgroundImage", "Background image", FieldImage, func(i *Insights) *string { return &i.BackgroundImage }),
		),
	}
}

// AddPost appends a draft post with a fresh id and a slug derived from its title.
func (e *InsightsEditor) AddPost(ctx context.Context) (Post, error) {
	now := defaultClock(e.clock)()
	post := Post{
		ID:               newID(),
		Title:            newPostTitle,
		Slug:             Slugify(newPostTitle),
		Date:             now.Format("2006-01-02"),
		ReadingTime:      newPostReading,
		IllustrationType: newPostArt,
	}
	err := e.Edit(ctx, func(i *Insights) error {
		i.Posts = AppendItem(i.Posts, post)
		return nil
	})
	return post, err
}

// RemovePost drops the post at index.
func (e *InsightsEditor) RemovePost(ctx context.Context, index int) error {
	return e.Edit(ctx, func(i *Insights) error {
		posts, err := RemoveAt(i.Posts, index)
		if err != nil {
			return err
		}
		i.Posts = posts
		return nil
	})
}

// RemovePostByID drops the post with id; unknown ids change nothing.
func (e *InsightsEditor) RemovePostByID(ctx context.Context, id string) error {
	return e.Edit(ctx, func(i *Insights) error {
		i.Posts = RemoveByID(i.Posts, id, func(p Post) string { return p.ID })
		return nil
	})
}

// UpdatePost edits the post at index. While the slug is still the one derived
// from the title, a title change carries the slug along; a slug set by hand,
// now or earlier, is kept.
func (e *InsightsEditor) UpdatePost(ctx context.Context, index int, fn func(*Post)) error {
	return e.Edit(ctx, func(i *Insights) error {
		posts, err := UpdateAt(i.Posts, index, func(p *Post) {
			before := *p
			fn(p)
			if p.Title != before.Title && p.Slug == before.Slug && before.Slug == Slugify(before.Title) {
				p.Slug = Slugify(p.Title)
			}
		})
		if err != nil {
			return err
		}
		i.Posts = posts
		return nil
	})
}

// TrainingsEditor edits the training offerings.
type TrainingsEditor struct{ *Editor[Trainings] }

// NewTrainingsEditor binds a trainings editor to onUpdate.
func NewTrainingsEditor(value Trainings, onUpdate func(context.Context, Trainings) error) *TrainingsEditor {
	return &TrainingsEditor{newEditor(value, onUpdate,
		bind("title", "Title", FieldText, func(t *Trainings) *string { return &t.Title }),
		bind("buttonText", "Button text", FieldText, func(t *Trainings) *string { return &t.ButtonText }),
		bind("backgroundImage", "Background image", FieldImage, func(t *Trainings) *string { return &t.BackgroundImage }),
	)}
}

// AddTraining appends a default training item.
func (e *TrainingsEditor) AddTraining(ctx context.Context) error {
	return e.Edit(ctx, func(t *Trainings) error {
		t.Items = AppendItem(t.Items, TrainingItem{Title: newTrainingTitle})
		return nil
	})
}

// RemoveTraining drops the training at index.
func (e *TrainingsEditor) RemoveTraining(ctx context.Context, index int) error {
	return e.Edit(ctx, func(t *Trainings) error {
		items, err := RemoveAt(t.Items, index)
		if err != nil {
			return err
		}
		t.Items = items
		return nil
	})
}

// UpdateTraining edits the training at index.
func (e *TrainingsEditor) UpdateTraining(ctx context.Context, index int, fn func(*TrainingItem)) error {
	return e.Edit(ctx, func(t *Trainings) error {
		items, err := UpdateAt(t.Items, index, fn)
		if err != nil {
			return err
		}
		t.Items = items
		return nil
	})
}

// NewsletterEditor edits the signup block.
type NewsletterEditor struct{ *Editor[Newsletter] }

// NewNewsletterEditor binds a newsletter editor to onUpdate.
func NewNewsletterEditor(value Newsletter, onUpdate func(context.Context, Newsletter) error) *NewsletterEditor {
	return &NewsletterEditor{newEditor(value, onUpdate,
		bind("title", "Title", FieldText, func(n *Newsletter) *string { return &n.Title }),
		bind("description", "Description", FieldTextarea, func(n *Newsletter) *string { return &n.Description }),
		bind("placeholder", "Placeholder", FieldText, func(n *Newsletter) *string { return &n.Placeholder }),
		bind("buttonText", "Button text", FieldText, func(n *Newsletter) *string { return &n.ButtonText }),
		bind("backgroundImage", "Background image", FieldImage, func(n *Newsletter) *string { return &n.BackgroundImage }),
	)}
}

// NavigationEditor edits the top navigation links.
type NavigationEditor struct{ *Editor[Navigation] }

// NewNavigationEditor binds a navigation editor to onUpdate.
func NewNavigationEditor(value Navigation, onUpdate func(context.Context, Navigation) error) *NavigationEditor {
	return &NavigationEditor{newEditor(value, onUpdate)}
}

// AddLink appends a default link.
func (e *NavigationEditor) AddLink(ctx context.Context) error {
	return e.Edit(ctx, func(n *Navigation) error {
		n.Links = AppendItem(n.Links, NavLink{Name: newLinkName, Path: newLinkPath})
		return nil
	})
}

// RemoveLink drops the link at index.
func (e *NavigationEditor) RemoveLink(ctx context.Context, index int) error {
	return e.Edit(ctx, func(n *Navigation) error {
		links, err := RemoveAt(n.Links, index)
		if err != nil {
			return err
		}
		n.Links = links
		return nil
	})
}

// UpdateLink edits the link at index.
func (e *NavigationEditor) UpdateLink(ctx context.Context, index int, fn func(*NavLink)) error {
	return e.Edit(ctx, func(n *Navigation) error {
		links, err := UpdateAt(n.Links, index, fn)
		if err != nil {
			return err
		}
		n.Links = links
		return nil
	})
}

// MoveLink reorders links.
func (e *NavigationEditor) MoveLink(ctx context.Context, from, to int) error {
	return e.Edit(ctx, func(n *Navigation) error {
		links, err := MoveItem(n.Links, from, to)
		if err != nil {
			return err
		}
		n.Links = links
		return nil
	})
}

// SettingsEditor edits site identity.
type SettingsEditor struct{ *Editor[Settings] }

// NewSettingsEditor binds a settings editor to onUpdate.
func NewSettingsEditor(value Settings, onUpdate func(context.Context, Settings) error) *SettingsEditor {
	return &SettingsEditor{newEditor(value, onUpdate,
		bind("siteName", "Site name", FieldText, func(s *Settings) *string { return &s.SiteName }),
		bind("tagline", "Tagline", FieldText, func(s *Settings) *string { return &s.Tagline }),
		bind("logo", "Logo", FieldImage, func(s *Settings) *string { return &s.Logo }),
		bind("favicon", "Favicon", FieldImage, func(s *Settings) *string { return &s.Favicon }),
		bind("email", "Email", FieldText, func(s *Settings) *string { return &s.Email }),
		bind("linkedinUrl", "LinkedIn URL", FieldText, func(s *Settings) *string { return &s.LinkedinURL }),
		bind("logoText", "Logo text", FieldText, func(s *Settings) *string { return &s.LogoText }),
	)}
}

// ColorsEditor edits the brand palette.
type ColorsEditor struct{ *Editor[Colors] }

// NewColorsEditor binds a palette editor to onUpdate.
func NewColorsEditor(value Colors, onUpdate func(context.Context, Colors) error) *ColorsEditor {
	return &ColorsEditor{newEditor(value, onUpdate,
		bind("cream", "Cream", FieldColor, func(c *Colors) *string { return &c.Cream }),
		bind("dark", "Dark", FieldColor, func(c *Colors) *string { return &c.Dark }),
		bind("accent", "Accent", FieldColor, func(c *Colors) *string { return &c.Accent }),
		bind("light", "Light", FieldColor, func(c *Colors) *string { return &c.Light }),
	)}
}

// UsersEditor manages admin accounts.
type UsersEditor struct{ *Editor[UserSet] }

// NewUsersEditor binds a user management editor to onUpdate.
func NewUsersEditor(value UserSet, onUpdate func(context.Context, UserSet) error) *UsersEditor {
	return &UsersEditor{newEditor(value, onUpdate)}
}

// AddUser appends a placeholder account with a fresh id.
func (e *UsersEditor) AddUser(ctx context.Context) (AdminUser, error) {
	user := AdminUser{ID: newID(), Name: newUserName, Role: newUserRole}
	err := e.Edit(ctx, func(u *UserSet) error {
		u.Users = AppendItem(u.Users, user)
		return nil
	})
	return user, err
}

// RemoveUser drops the account with id; unknown ids change nothing.
func (e *UsersEditor) RemoveUser(ctx context.Context, id string) error {
	return e.Edit(ctx, func(u *UserSet) error {
		u.Users = RemoveByID(u.Users, id, func(a AdminUser) string { return a.ID })
		return nil
	})
}

// UpdateUser edits the account at index.
func (e *UsersEditor) UpdateUser(ctx context.Context, index int, fn func(*AdminUser)) error {
	return e.Edit(ctx, func(u *UserSet) error {
		users, err := UpdateAt(u.Users, index, fn)
		if err != nil {
			return err
		}
		u.Users = users
		return nil
	})
}

// NewSectionEditor builds the editor for value. Every update is forwarded to
// onUpdate as a complete section replacement.
func NewSectionEditor(value SectionValue, onUpdate func(context.Context, SectionValue) error) (SectionEditor, error) {
	if onUpdate == nil {
		onUpdate = func(context.Context, SectionValue) error { return nil }
	}
	switch v := value.(type) {
	case Hero:
		return NewHeroEditor(v, forward[Hero](onUpdate)), nil
	case ThreeRoads:
		return NewThreeRoadsEditor(v, forward[ThreeRoads](onUpdate)), nil
	case Services:
		return NewServicesEditor(v, forward[Services](onUpdate)), nil
	case HowWeWork:
		return NewHowWeWorkEditor(v, forward[HowWeWork](onUpdate)), nil
	case ForTeams:
		return NewForTeamsEditor(v, forward[ForTeams](onUpdate)), nil
	case Insights:
		return NewInsightsEditor(v, forward[Insights](onUpdate)), nil
	case Trainings:
		return NewTrainingsEditor(v, forward[Trainings](onUpdate)), nil
	case Newsletter:
		return NewNewsletterEditor(v, forward[Newsletter](onUpdate)), nil
	case Navigation:
		return NewNavigationEditor(v, forward[Navigation](onUpdate)), nil
	case Settings:
		return NewSettingsEditor(v, forward[Settings](onUpdate)), nil
	case Colors:
		return NewColorsEditor(v, forward[Colors](onUpdate)), nil
	case ImageSet:
		return NewEditor(v, forward[ImageSet](onUpdate)), nil
	case UserSet:
		return NewUsersEditor(v, forward[UserSet](onUpdate)), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownSection, value)
}

func forward[T SectionValue](onUpdate func(context.Context, SectionValue) error) func(context.Context, T) error {
	return func(ctx context.Context, value T) error {
		return onUpdate(ctx, value)
	}
}

// Editor returns an editor for id seeded with the current content and bound
// to ApplySectionUpdate.
func (s *Service) Editor(id SectionID) (SectionEditor, error) {
	value, err := s.Section(id)
	if err != nil {
		return nil, err
	}
	editor, err := NewSectionEditor(value, s.ApplySectionUpdate)
	if err != nil {
		return nil, err
	}
	if insights, ok := editor.(*InsightsEditor); ok {
		insights.clock = s.opts.Clock
	}
	return editor, nil
}

func defaultClock(c Clock) Clock {
	if c == nil {
		return timeNow
	}
	return c
}
