package modal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluentfield.org/boardgame-web/internal/catalog"
	"fluentfield.org/boardgame-web/internal/speech"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Card{
		{Slug: "Vocab:A1:Cat", Type: catalog.TypeVocabulary, Name: "Cat", Image: "cat.webp", Desc: "A small *pet* animal.", Pronounce: "/kæt/", Audio: "/audio/cat.mp3", Meaning: "Con mèo", Example: "The cat is sleeping.", Level: "a1"},
		{Slug: "Idiom:PieceOfCake", Type: catalog.TypeIdioms, Name: "A piece of cake", Image: "cake.webp", Desc: "Very easy.", Meaning: "Dễ như ăn bánh", Example: "The test was a piece of cake."},
		{Slug: "Dare:Sing", Type: catalog.TypeDare, Name: "Sing it out", Image: "sing.webp", Desc: "Challenge card.", Detail: "Sing a chorus.", Hint: "Nursery rhymes count."},
		{Slug: "Func:SkipTurn", Type: catalog.TypeFunction, Name: "Skip turn", Image: "skip.webp", Desc: "Game function.", Detail: "Next player skips."},
	})
	require.NoError(t, err)
	return cat
}

func TestOpenVocabularyDetail(t *testing.T) {
	c := NewController()
	v, ok := c.Open(testCatalog(t), 0, true, speech.DefaultOptions())
	require.True(t, ok)
	require.True(t, c.IsOpen())

	assert.Equal(t, "Cat", v.Title)
	assert.Equal(t, "/kæt/", v.Pronounce)
	assert.Equal(t, "Con mèo", v.Meaning)
	assert.Equal(t, "The cat is sleeping.", v.Example)
	assert.Equal(t, "A1", v.Level)
	assert.Equal(t, "/audio/cat.mp3", v.Audio)
	assert.True(t, v.VoiceControls)
	assert.True(t, v.VoiceEnabled)
	assert.Equal(t, "Cat", v.SpeakText)
	assert.Equal(t, "Cat. The cat is sleeping.", v.SpeakLongText)
	require.NotNil(t, v.Settings)
	assert.Equal(t, speech.PrefAuto, v.Settings.Preference)
	// markdown in desc renders and survives sanitization
	assert.Contains(t, string(v.Body), "<em>pet</em>")
}

func TestOpenIdiomDetailPrefersMeaning(t *testing.T) {
	c := NewController()
	v, ok := c.Open(testCatalog(t), 1, true, speech.DefaultOptions())
	require.True(t, ok)
	assert.Contains(t, string(v.Body), "Dễ như ăn bánh")
	assert.Equal(t, "Very easy.", v.Description)
	assert.Equal(t, "The test was a piece of cake.", v.Example)
	assert.False(t, v.VoiceControls)
}

func TestOpenDareDetail(t *testing.T) {
	c := NewController()
	v, ok := c.Open(testCatalog(t), 2, true, speech.DefaultOptions())
	require.True(t, ok)
	assert.Contains(t, string(v.Body), "Sing a chorus.")
	assert.Equal(t, "Challenge card.", v.Description)
	assert.Equal(t, "Nursery rhymes count.", v.Hint)
}

func TestOpenFunctionDetailFallsBackToDetail(t *testing.T) {
	c := NewController()
	v, ok := c.Open(testCatalog(t), 3, true, speech.DefaultOptions())
	require.True(t, ok)
	assert.Contains(t, string(v.Body), "Next player skips.")
	assert.Equal(t, "Game function.", v.Description)
}

func TestOpenClearsPreviousFields(t *testing.T) {
	c := NewController()
	_, ok := c.Open(testCatalog(t), 0, true, speech.DefaultOptions())
	require.True(t, ok)

	v, ok := c.Open(testCatalog(t), 3, true, speech.DefaultOptions())
	require.True(t, ok)
	// vocabulary-only fields from the previous card are gone
	assert.Empty(t, v.Pronounce)
	assert.Empty(t, v.Audio)
	assert.Empty(t, v.Example)
	assert.Nil(t, v.Settings)
	assert.False(t, v.VoiceControls)
}

func TestOpenOutOfRangeIsNoOp(t *testing.T) {
	c := NewController()
	cat := testCatalog(t)
	_, ok := c.Open(cat, -1, true, speech.DefaultOptions())
	assert.False(t, ok)
	_, ok = c.Open(cat, cat.Len(), true, speech.DefaultOptions())
	assert.False(t, ok)
	assert.False(t, c.IsOpen())
}

func TestCloseResetsState(t *testing.T) {
	c := NewController()
	_, ok := c.Open(testCatalog(t), 0, true, speech.DefaultOptions())
	require.True(t, ok)
	c.Close()
	assert.False(t, c.IsOpen())
	assert.Empty(t, c.View().Title)
}

func TestVoiceUnavailableDisablesControl(t *testing.T) {
	c := NewController()
	v, ok := c.Open(testCatalog(t), 0, false, speech.DefaultOptions())
	require.True(t, ok)
	assert.True(t, v.VoiceControls)
	assert.False(t, v.VoiceEnabled)
	assert.NotEmpty(t, v.VoiceLabel)
}

func TestLongUtteranceFallsBackToName(t *testing.T) {
	card := catalog.Card{Name: "Bridge", Type: catalog.TypeVocabulary}
	assert.Equal(t, "Bridge", LongUtterance(card))

	card.Example = "We crossed the *old* bridge."
	got := LongUtterance(card)
	assert.Equal(t, "Bridge. We crossed the old bridge.", got)
	assert.False(t, strings.Contains(got, "*"))
}

func TestFlattenStripsMarkup(t *testing.T) {
	assert.Equal(t, "a b c", Flatten("<p>a <b>b</b>\n c</p>"))
	assert.Equal(t, "", Flatten("  "))
}

func TestSanitizerDropsScripts(t *testing.T) {
	v := Build(catalog.Card{
		Slug: "x", Type: catalog.TypeFunction, Name: "X",
		Detail: `hello <script>alert(1)</script> world`,
	}, 0, true, speech.DefaultOptions())
	assert.NotContains(t, string(v.Body), "<script>")
	assert.Contains(t, string(v.Body), "hello")
}
