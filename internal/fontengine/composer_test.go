package fontengine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/fontengine"
	"github.com/bnema/fontkeeper/internal/infrastructure/document"
	"github.com/bnema/fontkeeper/internal/infrastructure/storage"
)

type composerFixture struct {
	doc      *document.Memory
	catalog  *fontengine.Catalog
	composer *fontengine.StyleComposer
	loader   *gatedLoader
	fonts    *document.RecordingFontLoader
	profile  fontengine.HostProfile
}

func newComposerFixture(roots map[string]float64) *composerFixture {
	f := &composerFixture{
		doc:     document.NewMemory(roots),
		loader:  newGatedLoader(),
		fonts:   &document.RecordingFontLoader{},
		profile: fontengine.DefaultHostProfile(),
	}
	f.catalog = fontengine.NewCatalog(nil, f.loader)
	f.composer = fontengine.NewStyleComposer(fontengine.ComposerOptions{
		Document: f.doc,
		Loader:   f.loader,
		Fonts:    f.fonts,
		Profile:  f.profile,
		Source:   f.catalog.Snapshot,
	})
	f.catalog.OnChange(func(ctx context.Context, _ entity.Settings) {
		f.composer.Recompose(ctx)
	})
	return f
}

func computed(t *testing.T, el port.Element) float64 {
	t.Helper()
	px, err := el.ComputedFontSize()
	require.NoError(t, err)
	return px
}

func TestStyleComposer_SizeDeltaDoesNotCompound(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	text := document.NewNode("p", 14)
	code := document.NewNode("pre", 16).WithSizeProperty("--b3-font-size-editor")
	f.doc.Append(f.doc.BodyNode(), text)
	f.doc.Append(f.doc.BodyNode(), code)

	f.catalog.SetFontSizeDelta(ctx, 4)
	assert.Equal(t, 18.0, computed(t, text))
	assert.Equal(t, 20.0, computed(t, code))
	ui, _ := f.doc.RootPropertyPx("--b3-font-size")
	assert.Equal(t, 18.0, ui)

	f.catalog.SetFontSizeDelta(ctx, 4)
	assert.Equal(t, 18.0, computed(t, text))
	assert.Equal(t, 20.0, computed(t, code))
	assert.Len(t, f.doc.Styles(), 1)

	f.catalog.SetFontSizeDelta(ctx, 8)
	assert.Equal(t, 22.0, computed(t, text))
	assert.Equal(t, 24.0, computed(t, code))
	editor, _ := f.doc.RootPropertyPx("--b3-font-size-editor")
	assert.Equal(t, 24.0, editor)

	f.catalog.SetFontSizeDelta(ctx, 0)
	assert.Equal(t, 14.0, computed(t, text))
	assert.Equal(t, 16.0, computed(t, code))
	assert.Empty(t, f.doc.Styles())
	assert.Empty(t, f.doc.QueryByAttr(f.profile.BaseSizeAttribute, "1"))
	assert.Zero(t, f.doc.ObserverCount())
	assert.Empty(t, f.composer.CSS())
}

func TestStyleComposer_NegativeDeltaClampsRootSizes(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	text := document.NewNode("p", 12)
	f.doc.Append(f.doc.BodyNode(), text)

	f.catalog.SetFontSizeDelta(ctx, -10)

	css := f.composer.CSS()
	assert.Contains(t, css, "--b3-font-size: 8px !important;")
	assert.Contains(t, css, "--b3-font-size-editor: 8px !important;")
	assert.Equal(t, 2.0, computed(t, text))
}

func TestStyleComposer_CapturesInsertedElements(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	f.catalog.SetFontSizeDelta(ctx, 4)
	require.True(t, f.composer.Tracker().Ready())
	assert.Equal(t, 1, f.doc.ObserverCount())

	added := document.NewNode("div", 14)
	child := document.NewNode("span", 14)
	f.doc.Append(added, child)
	f.doc.Append(f.doc.BodyNode(), added)

	base, ok := added.StyleProperty(f.profile.BaseSizeProperty)
	require.True(t, ok)
	assert.Equal(t, "14px", base)
	base, ok = child.StyleProperty(f.profile.BaseSizeProperty)
	require.True(t, ok)
	assert.Equal(t, "14px", base)
	assert.Equal(t, 18.0, computed(t, added))

	f.catalog.SetFontSizeDelta(ctx, 6)
	assert.Equal(t, 20.0, computed(t, added))
	assert.Equal(t, 20.0, computed(t, child))
}

func TestStyleComposer_InsertWithoutDeltaIsIgnored(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	f.catalog.Load(entity.Settings{InstalledFonts: []entity.FontRecord{record("a", "Inter", ".ttf")}, ActiveFont: "Inter"})
	require.True(t, f.composer.Recompose(ctx))

	added := document.NewNode("div", 14)
	f.doc.Append(f.doc.BodyNode(), added)
	_, marked := added.Attr(f.profile.BaseSizeAttribute)
	assert.False(t, marked)
	assert.Zero(t, f.doc.ObserverCount())
}

func TestStyleComposer_ActiveFontFace(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	f.catalog.Load(entity.Settings{InstalledFonts: []entity.FontRecord{record("a", "Inter", ".otf")}, ActiveFont: "Inter"})

	require.True(t, f.composer.Recompose(ctx))

	styles := f.doc.Styles()
	require.Len(t, styles, 1)
	assert.Equal(t, "snippetCSS-fontkeeper", styles[0].ID)
	assert.Equal(t, f.profile.StyleMarker, styles[0].Marker)
	assert.Contains(t, styles[0].CSS, "src: url('blob:a') format('opentype');")
	assert.Contains(t, styles[0].CSS, "--b3-font-family: 'Inter', 'Emojis Additional'")
	assert.NotContains(t, styles[0].CSS, "calc(")
	assert.Equal(t, []string{`16px "Inter"`}, f.fonts.Specs())
}

func TestStyleComposer_UnavailableAssetFallsBackToDefault(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	f.catalog.Load(entity.Settings{
		InstalledFonts: []entity.FontRecord{record("a", "Broken", ".ttf")},
		ActiveFont:     "Broken",
		FontSizeDelta:  2,
	})

	require.True(t, f.composer.Recompose(ctx))
	css := f.doc.CSS()
	assert.NotContains(t, css, "@font-face")
	assert.Contains(t, css, "--b3-font-size: 16px !important;")
	assert.Empty(t, f.fonts.Specs())
}

func TestStyleComposer_RootSizeFallback(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(nil)
	f.catalog.SetFontSizeDelta(ctx, 2)

	css := f.composer.CSS()
	assert.Contains(t, css, "--b3-font-size: 16px !important;")
	assert.Contains(t, css, "--b3-font-size-editor: 18px !important;")
	assert.Contains(t, css, "calc(var(--fm-base-font-size) + 2px)")
}

func TestStyleComposer_LastCompositionWins(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	f.catalog.Load(entity.Settings{
		InstalledFonts: []entity.FontRecord{record("a", "Alpha", ".ttf"), record("b", "Beta", ".ttf")},
		ActiveFont:     "Alpha",
	})

	entered, release := f.loader.gate("Alpha")
	first := make(chan bool, 1)
	go func() { first <- f.composer.Recompose(ctx) }()
	<-entered

	f.catalog.Load(entity.Settings{
		InstalledFonts: []entity.FontRecord{record("a", "Alpha", ".ttf"), record("b", "Beta", ".ttf")},
		ActiveFont:     "Beta",
	})
	assert.True(t, f.composer.Recompose(ctx))

	release()
	assert.False(t, <-first)

	styles := f.doc.Styles()
	require.Len(t, styles, 1)
	assert.Contains(t, styles[0].CSS, "font-family: 'Beta';")
	assert.NotContains(t, styles[0].CSS, "Alpha")
	assert.Equal(t, []string{`16px "Beta"`}, f.fonts.Specs())
}

func TestStyleComposer_RemovesLegacyArtifacts(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	require.NoError(t, f.doc.InsertStyle(ctx, port.StyleBlock{
		ID:     "legacy",
		Marker: "data-font-store-injected",
		CSS:    ":root { --b3-font-size: 30px !important; }",
	}))
	require.NoError(t, f.doc.InsertStyle(ctx, port.StyleBlock{ID: "theme", CSS: "body { color: red; }"}))
	f.doc.Root().SetStyleProperty("--b3-font-family", "'Old'")
	f.doc.Root().SetStyleProperty("--b3-font-size", "30px")

	require.True(t, f.composer.Recompose(ctx))

	styles := f.doc.Styles()
	require.Len(t, styles, 1)
	assert.Equal(t, "theme", styles[0].ID)
	_, ok := f.doc.Root().StyleProperty("--b3-font-family")
	assert.False(t, ok)
	size, _ := f.doc.RootPropertyPx("--b3-font-size")
	assert.Equal(t, 14.0, size)
}

func TestStyleComposer_Teardown(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	f.catalog.Load(entity.Settings{InstalledFonts: []entity.FontRecord{record("a", "Inter", ".ttf")}, ActiveFont: "Inter"})
	f.catalog.SetFontSizeDelta(ctx, 3)
	require.NotEmpty(t, f.composer.CSS())

	f.composer.Teardown(ctx)

	assert.Empty(t, f.doc.Styles())
	assert.Empty(t, f.composer.CSS())
	assert.Empty(t, f.doc.QueryByAttr(f.profile.BaseSizeAttribute, "1"))
	assert.Zero(t, f.doc.ObserverCount())
	assert.Equal(t, 1, f.loader.all)
	assert.Equal(t, 14.0, computed(t, f.doc.Body()))
}

func TestStyleComposer_SetFallbackStack(t *testing.T) {
	ctx := testContext()
	f := newComposerFixture(hostRoots())
	f.catalog.Load(entity.Settings{InstalledFonts: []entity.FontRecord{record("a", "Inter", ".ttf")}, ActiveFont: "Inter"})

	f.composer.SetFallbackStack([]string{"Noto Sans", "sans-serif"})
	require.True(t, f.composer.Recompose(ctx))

	assert.True(t, strings.Contains(f.composer.CSS(), "'Inter', 'Noto Sans', sans-serif !important;"))
}

// pathGatedStorage blocks Get for one path until release is closed.
type pathGatedStorage struct {
	port.ObjectStorage
	path    string
	entered chan struct{}
	release chan struct{}
}

func (s *pathGatedStorage) Get(ctx context.Context, p string) ([]byte, error) {
	if p == s.path {
		close(s.entered)
		<-s.release
	}
	return s.ObjectStorage.Get(ctx, p)
}

func TestStyleComposer_SupersededFetchKeepsLiveHandle(t *testing.T) {
	ctx := testContext()
	xenon, yew := record("x", "Xenon", ".ttf"), record("y", "Yew", ".ttf")
	fonts := []entity.FontRecord{xenon, yew}

	inner := storage.New(afero.NewMemMapFs())
	for _, rec := range fonts {
		require.NoError(t, inner.Put(ctx, rec.StoragePath, []byte("\x00\x01\x00\x00data")))
	}
	gated := &pathGatedStorage{
		ObjectStorage: inner,
		path:          xenon.StoragePath,
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	urls := document.NewMemoryURLs()
	loader := fontengine.NewFetchLoader(gated, urls, 1)
	doc := document.NewMemory(hostRoots())
	catalog := fontengine.NewCatalog(nil, loader)
	composer := fontengine.NewStyleComposer(fontengine.ComposerOptions{
		Document: doc,
		Loader:   loader,
		Profile:  fontengine.DefaultHostProfile(),
		Source:   catalog.Snapshot,
	})

	catalog.Load(entity.Settings{InstalledFonts: fonts, ActiveFont: "Xenon"})
	first := make(chan bool, 1)
	go func() { first <- composer.Recompose(ctx) }()
	<-gated.entered

	catalog.Load(entity.Settings{InstalledFonts: fonts, ActiveFont: "Yew"})
	require.True(t, composer.Recompose(ctx))

	close(gated.release)
	assert.False(t, <-first)

	live, err := loader.Resolve(ctx, yew)
	require.NoError(t, err)
	assert.Equal(t, 2, urls.Created())

	styles := doc.Styles()
	require.Len(t, styles, 1)
	assert.Contains(t, styles[0].CSS, live)
	assert.Zero(t, urls.RevokeCount(live))
	assert.Equal(t, 2, urls.Live())

	catalog.Load(entity.Settings{InstalledFonts: fonts, ActiveFont: "Xenon"})
	require.True(t, composer.Recompose(ctx))
	assert.Equal(t, 1, urls.RevokeCount(live))
	assert.Equal(t, 1, urls.Live())
}

// publishedFs records the stylesheet content each rename makes visible.
type publishedFs struct {
	afero.Fs
	published []string
}

func (p *publishedFs) Rename(oldname, newname string) error {
	data, err := afero.ReadFile(p.Fs, oldname)
	if err == nil {
		p.published = append(p.published, string(data))
	}
	return p.Fs.Rename(oldname, newname)
}

func TestStyleComposer_FileDocumentNeverPublishesEmptySwap(t *testing.T) {
	ctx := testContext()
	fsys := &publishedFs{Fs: afero.NewMemMapFs()}
	doc := document.NewFile(fsys, "/out/fontkeeper.css")
	loader := newGatedLoader()
	fonts := []entity.FontRecord{record("a", "Alpha", ".ttf"), record("b", "Beta", ".ttf")}
	catalog := fontengine.NewCatalog(nil, loader)
	composer := fontengine.NewStyleComposer(fontengine.ComposerOptions{
		Document: doc,
		Loader:   loader,
		Profile:  fontengine.DefaultHostProfile(),
		Source:   catalog.Snapshot,
	})

	catalog.Load(entity.Settings{InstalledFonts: fonts, ActiveFont: "Alpha"})
	require.True(t, composer.Recompose(ctx))
	catalog.Load(entity.Settings{InstalledFonts: fonts, ActiveFont: "Beta"})
	require.True(t, composer.Recompose(ctx))

	require.Len(t, fsys.published, 2)
	assert.Contains(t, fsys.published[0], "font-family: 'Alpha';")
	assert.Contains(t, fsys.published[1], "font-family: 'Beta';")
	assert.Equal(t, []string{"blob:a", "blob:b"}, loader.pinned)

	catalog.Load(entity.Settings{InstalledFonts: fonts})
	require.True(t, composer.Recompose(ctx))
	require.Len(t, fsys.published, 3)
	assert.Empty(t, fsys.published[2])
	assert.Equal(t, "", loader.pinned[len(loader.pinned)-1])
}
