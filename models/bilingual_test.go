package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBilingualPickRoundTrip(t *testing.T) {
	name := Bilingual{EN: "Gyeongbokgung", KO: "경복궁"}

	// Switching languages back and forth is a pure projection.
	assert.Equal(t, "Gyeongbokgung", name.Pick("en"))
	assert.Equal(t, "경복궁", name.Pick("ko"))
	assert.Equal(t, "Gyeongbokgung", name.Pick("en"))
	assert.Equal(t, Bilingual{EN: "Gyeongbokgung", KO: "경복궁"}, name)
}

func TestBilingualPickFallback(t *testing.T) {
	assert.Equal(t, "Seoul", Bilingual{EN: "Seoul"}.Pick("ko"))
	assert.Equal(t, "서울", Bilingual{KO: "서울"}.Pick("en"))
}

func TestBilingualUnmarshalJSON(t *testing.T) {
	t.Run("legacy bare string", func(t *testing.T) {
		var b Bilingual
		require.NoError(t, json.Unmarshal([]byte(`"Hongdae"`), &b))
		assert.Equal(t, "Hongdae", b.EN)
		assert.Equal(t, "Hongdae", b.KO)
	})

	t.Run("suffixed keys", func(t *testing.T) {
		var b Bilingual
		require.NoError(t, json.Unmarshal([]byte(`{"subName_en":"BTS","subName_ko":"방탄소년단"}`), &b))
		assert.Equal(t, "BTS", b.EN)
		assert.Equal(t, "방탄소년단", b.KO)
	})

	t.Run("canonical keys", func(t *testing.T) {
		var b Bilingual
		require.NoError(t, json.Unmarshal([]byte(`{"en":"Busan","ko":"부산"}`), &b))
		assert.Equal(t, "Busan", b.EN)
		assert.Equal(t, "부산", b.KO)
	})
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Kpop ")
	require.NoError(t, err)
	assert.Equal(t, CategoryKpop, c)

	_, err = ParseCategory("ktrot")
	assert.Error(t, err)
}
