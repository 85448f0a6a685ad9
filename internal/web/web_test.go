package web

import (
	"io/fs"
	"strings"
	"testing"

	"fix_syndicate_site/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLanding(t *testing.T) {
	site := config.Default().SiteConfig
	site.CopyrightYear = 2027

	page, err := RenderLanding(site)
	require.NoError(t, err)
	html := string(page)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Fix Syndicate | Property Maintenance &amp; Management</title>")
	assert.Contains(t, html, "font-awesome/6.4.0/css/all.min.css")
	assert.Contains(t, html, "family=Montserrat")

	for _, id := range []string{`id="home"`, `id="portfolio"`, `id="services"`, `id="about"`, `id="contact"`, `id="scrollTop"`, `id="navbar"`} {
		assert.Contains(t, html, id)
	}

	assert.Contains(t, html, `href="tel:0416493356"`)
	assert.Equal(t, 16, strings.Count(html, `class="carousel-item"`))
	assert.Equal(t, 8, strings.Count(html, `class="service-card"`))
	assert.Equal(t, 4, strings.Count(html, `class="stat-item"`))
	assert.Contains(t, html, `data-target="500"`)

	for _, name := range []string{`name="name"`, `name="email"`, `name="phone"`, `name="service"`, `name="message"`} {
		assert.Contains(t, html, name)
	}
	assert.Contains(t, html, `<option value="Emergency Services">`)

	assert.Contains(t, html, "123 Main Street, Hometown, USA")
	assert.Contains(t, html, "info@fixsyndicate.com")
	assert.Contains(t, html, "2027 Fix Syndicate Property Maintenance &amp; Management. All Rights Reserved.")
	assert.Contains(t, html, "/static/js/site.js")
}

func TestRenderLandingEscapesSiteConfig(t *testing.T) {
	site := config.Default().SiteConfig
	site.Address = "<script>x</script>"

	page, err := RenderLanding(site)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script>x</script>")
}

func TestSplitBrand(t *testing.T) {
	first, rest := splitBrand("Fix Syndicate")
	assert.Equal(t, "Fix", first)
	assert.Equal(t, "Syndicate", rest)

	first, rest = splitBrand("Acme")
	assert.Equal(t, "Acme", first)
	assert.Equal(t, "", rest)

	first, rest = splitBrand("  ")
	assert.Equal(t, "Fix", first)
	assert.Equal(t, "Syndicate", rest)
}

func TestStatic(t *testing.T) {
	static, err := Static()
	require.NoError(t, err)

	for _, name := range []string{"styles.css", "js/site.js"} {
		_, err := fs.Stat(static, name)
		assert.NoError(t, err, name)
	}
}

func TestStaticHidesDirectories(t *testing.T) {
	static, err := Static()
	require.NoError(t, err)

	for _, name := range []string{".", "js"} {
		_, err := static.Open(name)
		assert.ErrorIs(t, err, fs.ErrNotExist, name)
	}

	f, err := static.Open("js/site.js")
	require.NoError(t, err)
	assert.NoError(t, f.Close())
}
