package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Understanding Heart Health: Prevention & Care!!", "understanding-heart-health-prevention-care"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"Already-a-slug", "already-a-slug"},
		{"COVID-19 Vaccines 2024", "covid-19-vaccines-2024"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	once := Slugify("Winter Flu: 5 Tips for Families")
	assert.Equal(t, once, Slugify(once))
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("ECG & Echocardiography\r\n\n  Heart Surgery  \n\n")
	assert.Equal(t, []string{"ECG & Echocardiography", "Heart Surgery"}, got)
	assert.Empty(t, SplitLines("\n \n"))
}
