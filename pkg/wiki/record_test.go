package wiki_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirthatlas/tirthdb/pkg/wiki"
)

const itemQ2517 = `{"pageid":2547,"ns":120,"title":"Item:Q2517",
"type":"item","id":"Q2517",
"labels":{"en":{"language":"en","value":"Shri Digambar Jain Atishay Kshetra"}},
"aliases":{"en":[{"language":"en","value":"Thana"}]},
"descriptions":{"en":{"language":"en","value":", Piplon Kalan, Madhya Pradesh"}},
"claims":{
 "P1":[{"mainsnak":{"snaktype":"value","property":"P1","datavalue":{"value":{"entity-type":"item","numeric-id":3,"id":"Q3"},"type":"wikibase-entityid"}},"type":"statement","rank":"normal"}],
 "P4":[{"mainsnak":{"snaktype":"value","property":"P4","datavalue":{"value":{"entity-type":"item","numeric-id":57,"id":"Q57"},"type":"wikibase-entityid"}},"type":"statement"},
       {"mainsnak":{"snaktype":"value","property":"P4","datavalue":{"value":{"entity-type":"item","numeric-id":2221,"id":"Q2221"},"type":"wikibase-entityid"}},"type":"statement"}],
 "P14":[{"mainsnak":{"snaktype":"value","property":"P14","datavalue":{"value":"JVRF+QCJ, Piplon Kalan, Madhya Pradesh 465441, India","type":"string"}},"type":"statement"}],
 "P28":[{"mainsnak":{"snaktype":"value","property":"P28","datavalue":{"value":{"amount":"+36","unit":"1"},"type":"quantity"}},"type":"statement"}],
 "P2":[{"mainsnak":{"snaktype":"value","property":"P2","datavalue":{"value":{"latitude":23.641955,"longitude":75.873522,"altitude":null,"precision":0.000001},"type":"globecoordinate"}},"type":"statement"}]
}}`

func TestShrink(t *testing.T) {
	it, err := wiki.Parse([]byte(itemQ2517))
	require.NoError(t, err)

	rec, err := it.Shrink()
	require.NoError(t, err)

	assert.Equal(t, 2517, rec.ID)
	assert.Equal(t, "Shri Digambar Jain Atishay Kshetra Thana", rec.Name)
	assert.Equal(t, ", Piplon Kalan, Madhya Pradesh", rec.Description)
	assert.Equal(t, "Thana", rec.Aliases)

	require.NotNil(t, rec.Location)
	assert.InDelta(t, 23.641955, rec.Location.Latitude, 1e-9)
	assert.InDelta(t, 75.873522, rec.Location.Longitude, 1e-9)

	assert.Equal(t, []string{"Q3"}, rec.Claims[wiki.PropTypeOf])
	assert.Equal(t, []string{"Q57", "Q2221"}, rec.Claims[wiki.PropPlace])
	assert.Equal(t, []string{"+36"}, rec.Claims["P28"])
	assert.NotContains(t, rec.Claims, wiki.PropLocation,
		"location property must not leak into claims")
}

func TestShrinkNoLocation(t *testing.T) {
	line := `{"id":"Q7","labels":{"en":{"language":"en","value":"Kund"}},
	"claims":{"P2":[{"mainsnak":{"snaktype":"novalue"}}]}}`

	it, err := wiki.Parse([]byte(line))
	require.NoError(t, err)

	rec, err := it.Shrink()
	require.NoError(t, err)

	assert.Nil(t, rec.Location)
	assert.NotContains(t, rec.Claims, wiki.PropLocation,
		"reserved property removed even without a usable value")
}

func TestShrinkLastCoordinateWins(t *testing.T) {
	line := `{"id":"Q8","labels":{"en":{"language":"en","value":"Twin"}},
	"claims":{"P2":[
	 {"mainsnak":{"snaktype":"value","datavalue":{"value":{"latitude":10.0,"longitude":20.0},"type":"globecoordinate"}}},
	 {"mainsnak":{"snaktype":"value","datavalue":{"value":{"latitude":30.0,"longitude":40.0},"type":"globecoordinate"}}}
	]}}`

	it, err := wiki.Parse([]byte(line))
	require.NoError(t, err)

	rec, err := it.Shrink()
	require.NoError(t, err)

	require.NotNil(t, rec.Location)
	assert.InDelta(t, 30.0, rec.Location.Latitude, 1e-9)
	assert.InDelta(t, 40.0, rec.Location.Longitude, 1e-9)
}

func TestShrinkClampsCoordinates(t *testing.T) {
	line := `{"id":"Q9","labels":{"en":{"language":"en","value":"Precise"}},
	"claims":{"P2":[{"mainsnak":{"snaktype":"value","datavalue":{"value":{"latitude":23.64195549,"longitude":75.87352219},"type":"globecoordinate"}}}]}}`

	it, err := wiki.Parse([]byte(line))
	require.NoError(t, err)

	rec, err := it.Shrink()
	require.NoError(t, err)

	require.NotNil(t, rec.Location)
	assert.InDelta(t, 23.641955, rec.Location.Latitude, 1e-9)
	assert.InDelta(t, 75.873522, rec.Location.Longitude, 1e-9)
}

func TestShrinkBadID(t *testing.T) {
	line := `{"id":"weird-id","labels":{"en":{"language":"en","value":"X"}}}`

	it, err := wiki.Parse([]byte(line))
	require.NoError(t, err)

	_, err = it.Shrink()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weird-id")
}

func TestItemIDToNumber(t *testing.T) {
	tests := []struct {
		msg     string
		in      string
		out     int
		wantErr bool
	}{
		{"standard id", "Q2517", 2517, false},
		{"bare digits", "42", 42, false},
		{"no digits", "Q", 0, true},
		{"garbage", "temple", 0, true},
		{"negative", "Q-5", 0, true},
	}

	for _, v := range tests {
		n, err := wiki.ItemIDToNumber(v.in)
		if v.wantErr {
			assert.Error(t, err, v.msg)
			continue
		}
		assert.NoError(t, err, v.msg)
		assert.Equal(t, v.out, n, v.msg)
	}
}

func TestParseBadJSON(t *testing.T) {
	_, err := wiki.Parse([]byte(`{"id":"Q1",`))
	assert.Error(t, err)
}
