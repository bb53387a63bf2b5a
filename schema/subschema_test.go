package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressmark/schemagen/content"
)

func TestPersonObject(t *testing.T) {
	assert.Nil(t, PersonObject(nil))
	assert.Nil(t, PersonObject(&content.Author{}))

	o := PersonObject(&content.Author{Name: "Dana", URL: "https://example.com/dana"})
	require.NotNil(t, o)
	assert.Equal(t, "Person", o.Type())
	name, _ := o.Get("name")
	assert.Equal(t, "Dana", name)
	_, hasImage := o.Get("image")
	assert.False(t, hasImage)
}

func TestOrganizationObject(t *testing.T) {
	assert.Nil(t, OrganizationObject(content.Site{}))

	site := buildSite()
	site.Profiles = []string{"https://social.example/acme"}
	o := OrganizationObject(site)
	require.NotNil(t, o)

	logo, ok := o.Get("logo")
	require.True(t, ok)
	logoURL, _ := logo.(*Object).Get("url")
	assert.Equal(t, "https://example.com/logo.png", logoURL)

	sameAs, _ := o.Get("sameAs")
	assert.Equal(t, []string{"https://social.example/acme"}, sameAs)
}

func TestNormalizeAvailability(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"instock", "https://schema.org/InStock"},
		{"out_of_stock", "https://schema.org/OutOfStock"},
		{" PreOrder ", "https://schema.org/PreOrder"},
		{"https://schema.org/SoldOut", "https://schema.org/SoldOut"},
		{"whatever", "https://schema.org/InStock"},
		{"", "https://schema.org/InStock"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAvailability(tt.in), "input %q", tt.in)
	}
}

func TestOfferObject(t *testing.T) {
	t.Run("nil without price", func(t *testing.T) {
		assert.Nil(t, OfferObject(map[string]any{"priceCurrency": "EUR"}, "EUR"))
		assert.Nil(t, OfferObject(nil, "EUR"))
	})

	t.Run("currency synonym keys", func(t *testing.T) {
		o := OfferObject(map[string]any{"price": "10", "currency": "GBP"}, "EUR")
		require.NotNil(t, o)
		currency, _ := o.Get("priceCurrency")
		assert.Equal(t, "GBP", currency)
	})

	t.Run("default currency applies", func(t *testing.T) {
		o := OfferObject(map[string]any{"price": "10"}, "EUR")
		require.NotNil(t, o)
		currency, _ := o.Get("priceCurrency")
		assert.Equal(t, "EUR", currency)
	})
}

func TestAggregateRatingObject(t *testing.T) {
	assert.Nil(t, AggregateRatingObject(nil, 10))
	assert.Nil(t, AggregateRatingObject(4.5, nil))

	o := AggregateRatingObject(4.5, 10)
	require.NotNil(t, o)
	best, _ := o.Get("bestRating")
	assert.Equal(t, 5.0, best)
	worst, _ := o.Get("worstRating")
	assert.Equal(t, 1.0, worst)
}

func TestPostalAddressObject(t *testing.T) {
	t.Run("normalizes synonyms in fixed order", func(t *testing.T) {
		o := PostalAddressObject(map[string]any{
			"zip":     "10115",
			"street":  "Main St 1",
			"country": "DE",
			"city":    "Berlin",
		})
		require.NotNil(t, o)
		assert.Equal(t,
			[]string{"@type", "streetAddress", "addressLocality", "postalCode", "addressCountry"},
			o.Keys())
	})

	t.Run("unknown keys only yields nil", func(t *testing.T) {
		assert.Nil(t, PostalAddressObject(map[string]any{"phone": "12345"}))
	})
}

func TestPlaceObject(t *testing.T) {
	o := PlaceObject(map[string]any{
		"name": "Community Hall",
		"city": "Berlin",
		"lat":  52.52,
		"lng":  13.405,
	})
	require.NotNil(t, o)
	assert.Equal(t, "Place", o.Type())

	addr, ok := o.Get("address")
	require.True(t, ok)
	locality, _ := addr.(*Object).Get("addressLocality")
	assert.Equal(t, "Berlin", locality)

	geo, ok := o.Get("geo")
	require.True(t, ok)
	lat, _ := geo.(*Object).Get("latitude")
	assert.Equal(t, 52.52, lat)

	assert.Nil(t, PlaceObject(nil))
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, "PT5M", DurationMinutes(5))
}

func TestMainEntityObject(t *testing.T) {
	assert.Nil(t, MainEntityObject(""))
	o := MainEntityObject("https://example.com/p")
	require.NotNil(t, o)
	id, _ := o.Get("@id")
	assert.Equal(t, "https://example.com/p", id)
}
