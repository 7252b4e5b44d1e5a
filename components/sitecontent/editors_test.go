package sitecontent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubIDs(t *testing.T, ids ...string) {
	t.Helper()
	prev := newID
	next := 0
	newID = func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}
	t.Cleanup(func() { newID = prev })
}

func servicesEditor(t *testing.T, service *Service) *ServicesEditor {
	t.Helper()
	editor, err := service.Editor(SectionServices)
	require.NoError(t, err)
	typed, ok := editor.(*ServicesEditor)
	require.True(t, ok, "expected *ServicesEditor, got %T", editor)
	return typed
}

func TestAddPillarAppendsDefaults(t *testing.T) {
	stubIDs(t, "pillar-new")
	service := NewService(Options{})
	editor := servicesEditor(t, service)
	before := len(service.Content().Services.Pillars)

	pillar, err := editor.AddPillar(context.Background())
	require.NoError(t, err)

	pillars := service.Content().Services.Pillars
	require.Len(t, pillars, before+1)
	last := pillars[len(pillars)-1]
	assert.Equal(t, pillar, last)
	assert.Equal(t, "pillar-new", last.ID)
	assert.Equal(t, "New Service", last.Title)
	assert.Equal(t, "#", last.Link)
	assert.Equal(t, DefaultPillarPoints(), last.Points)
}

func TestEditorEmitsFreshCopies(t *testing.T) {
	var emitted []Services
	editor := NewServicesEditor(DefaultContent().Services, func(_ context.Context, v Services) error {
		emitted = append(emitted, v)
		return nil
	})
	ctx := context.Background()
	require.NoError(t, editor.SetPoint(ctx, 0, 0, "first edit"))
	require.NoError(t, editor.SetPoint(ctx, 0, 0, "second edit"))

	require.Len(t, emitted, 2)
	assert.Equal(t, "first edit", emitted[0].Pillars[0].Points[0])
	assert.Equal(t, "second edit", emitted[1].Pillars[0].Points[0])

	emitted[1].Pillars[0].Points[0] = "tampered"
	assert.Equal(t, "second edit", editor.Value().Pillars[0].Points[0])
}

func TestEditorKeepsValueWhenUpdateRejected(t *testing.T) {
	reject := errors.New("rejected")
	editor := NewHeroEditor(DefaultContent().Hero, func(context.Context, Hero) error { return reject })

	err := editor.SetField(context.Background(), "title", "Nope")
	require.ErrorIs(t, err, reject)
	assert.Equal(t, DefaultContent().Hero.Title, editor.Value().Title)
}

func TestEditorFields(t *testing.T) {
	editor := NewHeroEditor(DefaultContent().Hero, nil)
	ctx := context.Background()

	keys := make([]string, 0)
	for _, spec := range editor.Fields() {
		keys = append(keys, spec.Key)
	}
	assert.Contains(t, keys, "primaryButton.text")

	require.NoError(t, editor.SetField(ctx, "primaryButton.text", "Call us"))
	value, err := editor.Field("primaryButton.text")
	require.NoError(t, err)
	assert.Equal(t, "Call us", value)
	assert.Equal(t, "Call us", editor.Value().PrimaryButton.Text)

	_, err = editor.Field("missing")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.ErrorIs(t, editor.SetField(ctx, "missing", "x"), ErrUnknownField)
}

func TestColorsEditorNormalizesHex(t *testing.T) {
	var got Colors
	editor := NewColorsEditor(DefaultContent().Colors, func(_ context.Context, c Colors) error {
		got = c
		return nil
	})
	require.NoError(t, editor.SetField(context.Background(), "accent", "ABC"))
	assert.Equal(t, "#aabbcc", got.Accent)
}

func TestServicesPointsAndMoves(t *testing.T) {
	editor := NewServicesEditor(DefaultContent().Services, nil)
	ctx := context.Background()

	require.NoError(t, editor.AddPoint(ctx, 1))
	points := editor.Value().Pillars[1].Points
	assert.Equal(t, "New point", points[len(points)-1])

	require.NoError(t, editor.RemovePoint(ctx, 1, 0))
	assert.Len(t, editor.Value().Pillars[1].Points, len(points)-1)

	first := editor.Value().Pillars[0].ID
	require.NoError(t, editor.MovePillar(ctx, 0, 2))
	assert.Equal(t, first, editor.Value().Pillars[2].ID)

	require.NoError(t, editor.RemovePillarByID(ctx, first))
	for _, p := range editor.Value().Pillars {
		assert.NotEqual(t, first, p.ID)
	}

	assert.ErrorIs(t, editor.RemovePillar(ctx, 10), ErrIndexOutOfRange)
	assert.ErrorIs(t, editor.SetPoint(ctx, 0, 99, "x"), ErrIndexOutOfRange)
}

func TestHowWeWorkStepNumbering(t *testing.T) {
	editor := NewHowWeWorkEditor(DefaultContent().HowWeWork, nil)
	ctx := context.Background()

	step, err := editor.AddStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, "05", step.Number)
	assert.Equal(t, "New Step", step.Title)

	require.NoError(t, editor.RemoveStep(ctx, 0))
	steps := editor.Value().Steps
	assert.Equal(t, "02", steps[0].Number)

	step, err = editor.AddStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, "05", step.Number)

	require.NoError(t, editor.MoveStep(ctx, 0, 1))
	assert.Equal(t, "03", editor.Value().Steps[0].Number)
}

func TestInsightsAddPostAndSlug(t *testing.T) {
	stubIDs(t, "post-new")
	service := NewService(Options{Clock: fixedClock()})
	editor, err := service.Editor(SectionInsights)
	require.NoError(t, err)
	insights := editor.(*InsightsEditor)
	ctx := context.Background()

	post, err := insights.AddPost(ctx)
	require.NoError(t, err)
	assert.Equal(t, "post-new", post.ID)
	assert.Equal(t, "new-post", post.Slug)
	assert.Equal(t, "2025-06-01", post.Date)
	assert.Equal(t, "5 min", post.ReadingTime)
	assert.Equal(t, "compass", post.IllustrationType)

	index := len(insights.Value().Posts) - 1
	require.NoError(t, insights.UpdatePost(ctx, index, func(p *Post) { p.Title = "Strategy In Practice" }))
	assert.Equal(t, "strategy-in-practice", insights.Value().Posts[index].Slug)

	require.NoError(t, insights.UpdatePost(ctx, index, func(p *Post) {
		p.Title = "Renamed"
		p.Slug = "custom"
	}))
	assert.Equal(t, "custom", insights.Value().Posts[index].Slug)

	require.NoError(t, insights.UpdatePost(ctx, index, func(p *Post) { p.Title = "Renamed Again" }))
	assert.Equal(t, "custom", insights.Value().Posts[index].Slug)

	require.NoError(t, insights.RemovePostByID(ctx, "post-new"))
	assert.Len(t, service.Content().Insights.Posts, index)
}

func TestListEditorsAppendDefaults(t *testing.T) {
	ctx := context.Background()

	teams := NewForTeamsEditor(DefaultContent().ForTeams, nil)
	require.NoError(t, teams.AddAudience(ctx))
	require.NoError(t, teams.SetAudience(ctx, 0, "Boards"))
	audiences := teams.Value().Audiences
	assert.Equal(t, "Boards", audiences[0])
	assert.Equal(t, "New audience", audiences[len(audiences)-1])

	trainings := NewTrainingsEditor(DefaultContent().Trainings, nil)
	require.NoError(t, trainings.AddTraining(ctx))
	items := trainings.Value().Items
	assert.Equal(t, "New Training", items[len(items)-1].Title)

	nav := NewNavigationEditor(DefaultContent().Navigation, nil)
	require.NoError(t, nav.AddLink(ctx))
	links := nav.Value().Links
	assert.Equal(t, NavLink{Name: "New Link", Path: "/"}, links[len(links)-1])
	require.NoError(t, nav.MoveLink(ctx, len(links)-1, 0))
	assert.Equal(t, "New Link", nav.Value().Links[0].Name)

	stubIDs(t, "user-new")
	users := NewUsersEditor(DefaultContent().Users, nil)
	user, err := users.AddUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, AdminUser{ID: "user-new", Name: "New User", Role: "editor"}, user)
	require.NoError(t, users.RemoveUser(ctx, "user-new"))
	assert.Len(t, users.Value().Users, len(DefaultContent().Users.Users))
}

func TestThreeRoadsUpdateRoad(t *testing.T) {
	service := NewService(Options{})
	editor, err := service.Editor(SectionThreeRoads)
	require.NoError(t, err)
	roads := editor.(*ThreeRoadsEditor)

	require.NoError(t, roads.UpdateRoad(context.Background(), 2, func(r *Road) { r.Name = "Reinvent" }))
	assert.Equal(t, "Reinvent", service.Content().ThreeRoads.Roads[2].Name)
	assert.ErrorIs(t, roads.UpdateRoad(context.Background(), 3, func(*Road) {}), ErrIndexOutOfRange)
}

func TestNewSectionEditorCoversEverySection(t *testing.T) {
	content := DefaultContent()
	for _, id := range SectionIDs() {
		value, err := content.Section(id)
		require.NoError(t, err)
		editor, err := NewSectionEditor(value, nil)
		require.NoError(t, err, id)
		assert.Equal(t, id, editor.Section())
	}
}

func TestSliceHelpers(t *testing.T) {
	items := []string{"a", "b", "c"}

	moved, err := MoveItem(items, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, moved)
	assert.Equal(t, []string{"a", "b", "c"}, items)

	removed, err := RemoveAt(items, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, removed)

	appended := AppendItem(items[:1], "z")
	assert.Equal(t, []string{"a", "z"}, appended)
	assert.Equal(t, "b", items[1])

	_, err = MoveItem(items, 0, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "new-post", Slugify("New Post"))
	assert.Equal(t, "leading-change-well", Slugify("Leading Change Well"))
}
