package skin_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/skinuse/internal/skin"
	"github.com/roach88/skinuse/internal/testutil"
)

func never(skin.Facts) bool { return false }

func quietBuilder() *skin.Builder {
	return skin.NewBuilder(skin.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
}

func TestTable_UnknownNameIsUnused(t *testing.T) {
	table := quietBuilder().Add("a", nil, "known.png").Build()

	assert.False(t, table.IsUsed("unknown.png", testutil.Everything()))
	_, _, ok := table.Resolve("unknown.png")
	assert.False(t, ok)
	_, ok = table.ResolvePattern("unknown.png")
	assert.False(t, ok)
}

func TestTable_NilPredicateAlwaysUsed(t *testing.T) {
	table := quietBuilder().Add("a", nil, "known.png").Build()

	assert.True(t, table.IsUsed("known.png", &testutil.Facts{}))
	assert.True(t, table.IsUsed("known.png", testutil.Everything()))
	assert.True(t, table.IsUsed("known.png", nil))
}

func TestTable_NilFactsBehaveAsEmpty(t *testing.T) {
	table := quietBuilder().
		Add("slider", skin.HasSlider, "s.png").
		Add("negated", skin.Not(skin.HasSlider), "n.png").
		Build()

	assert.False(t, table.IsUsed("s.png", nil))
	assert.True(t, table.IsUsed("n.png", nil))
}

func TestTable_CaseInsensitiveLiteral(t *testing.T) {
	table := quietBuilder().Add("a", nil, "scorebar-bg.png").Build()

	pattern, ok := table.ResolvePattern("Scorebar-BG.PNG")
	require.True(t, ok)
	assert.Equal(t, "scorebar-bg.png", pattern)
	assert.True(t, table.IsUsed("SCOREBAR-BG.PNG", nil))
}

func TestTable_FirstRegisteredLiteralWins(t *testing.T) {
	table := quietBuilder().
		Add("first", nil, "x.png").
		Add("second", never, "X.PNG").
		Build()

	r, pattern, ok := table.Resolve("x.png")
	require.True(t, ok)
	assert.Equal(t, "first", r.Category)
	assert.Equal(t, "x.png", pattern)
	assert.True(t, table.IsUsed("x.png", nil))
}

func TestTable_FirstRegisteredTemplateWins(t *testing.T) {
	table := quietBuilder().
		Add("first", never, "foo-{n}.png").
		Add("second", nil, "foo-{n}.png").
		Build()

	r, _, ok := table.Resolve("foo-3.png")
	require.True(t, ok)
	assert.Equal(t, "first", r.Category)
	assert.False(t, table.IsUsed("foo-3.png", nil))
}

func TestTable_LiteralBeforeTemplate(t *testing.T) {
	table := quietBuilder().
		Add("template", never, "sliderb{n}.png").
		Add("literal", nil, "sliderb.png").
		Build()

	r, pattern, ok := table.Resolve("sliderb.png")
	require.True(t, ok)
	assert.Equal(t, "literal", r.Category)
	assert.Equal(t, "sliderb.png", pattern)

	r, pattern, ok = table.Resolve("sliderb4.png")
	require.True(t, ok)
	assert.Equal(t, "template", r.Category)
	assert.Equal(t, "sliderb{n}.png", pattern)
}

func TestTable_AnimationOverridesStillFrame(t *testing.T) {
	table := quietBuilder().Add("hits", skin.Always, "hit300-{n}.png").Build()

	withFrame := testutil.WithAssets("hit300-5.png")
	assert.False(t, table.IsUsed("hit300.png", withFrame), "still frame suppressed by animation")
	assert.True(t, table.IsUsed("hit300-5.png", withFrame))

	assert.True(t, table.IsUsed("hit300.png", testutil.WithAssets("hit300.png", "bg.jpg")))
	assert.True(t, table.IsUsed("hit300.png", testutil.WithAssets("sb/hit300-5.png")),
		"frames inside a folder are not skin animations")
	assert.False(t, table.IsUsed("hit300.png", testutil.WithAssets("HIT300-0.PNG")))
}

func TestTable_StillFrameRequiresTemplateCondition(t *testing.T) {
	table := quietBuilder().Add("sliders", skin.HasSlider, "x-{n}.png").Build()

	assert.False(t, table.IsUsed("x.png", &testutil.Facts{}))
	assert.True(t, table.IsUsed("x.png", &testutil.Facts{Slider: true}))
	assert.False(t, table.IsUsed("x.png", &testutil.Facts{Slider: true, Assets: []string{"x-1.png"}}))
}

func TestTable_DerivedRuleShape(t *testing.T) {
	table := quietBuilder().Add("hits", nil, "hit0-{n}.png").Build()

	require.Equal(t, 2, table.Len())
	r, pattern, ok := table.Resolve("hit0.png")
	require.True(t, ok)
	assert.Equal(t, "hit0.png", pattern)
	assert.Equal(t, skin.CategoryStillFrame, r.Category)
	assert.Equal(t, "hit0-{n}.png", r.StillFrameOf)
}

func TestTable_TemplateStringIsNotAFrame(t *testing.T) {
	table := quietBuilder().Add("hits", nil, "hit0-{n}.png").Build()

	assert.False(t, table.IsUsed("hit0-{n}.png", nil))
}

func TestBuilder_BuildIsRepeatable(t *testing.T) {
	b := quietBuilder().Add("hits", nil, "a-{n}.png", "b.png")

	first := b.Build()
	second := b.Build()
	assert.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Patterns(), second.Patterns())
	assert.Equal(t, []string{"a-{n}.png", "b.png", "a.png"}, first.Patterns())
}

func TestBuilder_EmptyAddIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	b := skin.NewBuilder(skin.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	table := b.Add("empty", nil).Build()
	assert.Equal(t, 0, table.Len())
	assert.Contains(t, buf.String(), "skin rule has no names")
}

func TestBuilder_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	skin.NewBuilder(skin.WithLogger(logger)).
		Add("a", nil, "x.png", "X.png", "y-{n}.png").
		Build()

	out := buf.String()
	assert.Contains(t, out, "skin rule table built")
	assert.Contains(t, out, "still_frames=1")
	assert.Contains(t, out, "shadowed=1")
}

func TestTable_RulesReturnsCopy(t *testing.T) {
	table := quietBuilder().Add("a", nil, "x.png").Build()

	rules := table.Rules()
	rules[0].Names[0] = "mutated.png"

	assert.True(t, table.IsUsed("x.png", nil))
	assert.Equal(t, []string{"x.png"}, table.Patterns())
}

func TestTable_LiteralNamesDeduplicated(t *testing.T) {
	table := quietBuilder().
		Add("a", nil, "x.png", "y-{n}.png").
		Add("b", nil, "X.PNG", "z.png").
		Build()

	assert.Equal(t, []string{"x.png", "z.png", "y.png"}, table.LiteralNames())
}

func TestPredicates(t *testing.T) {
	f := &testutil.Facts{Modes: []skin.Mode{skin.ModeTaiko}, Assets: []string{"sliderb.png"}}

	assert.True(t, skin.AnyMode(skin.ModeStandard, skin.ModeTaiko)(f))
	assert.False(t, skin.AnyMode(skin.ModeMania)(f))
	assert.False(t, skin.AnyMode()(f))
	assert.True(t, skin.AnyModeExcept(skin.ModeMania)(f))
	assert.False(t, skin.AnyModeExcept(skin.ModeMania)(testutil.WithModes(skin.ModeMania)))
	assert.True(t, skin.References("sliderb.png")(f))
	assert.False(t, skin.Not(skin.References("sliderb.png"))(f))
	assert.False(t, skin.Not(nil)(f))
	assert.True(t, skin.All()(f))
	assert.True(t, skin.All(nil, skin.Always)(f))
	assert.False(t, skin.All(skin.Always, skin.HasSlider)(f))
}
