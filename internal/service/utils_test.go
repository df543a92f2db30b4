package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Pizza Roma", want: "pizza-roma"},
		{name: "punctuation", in: "Joe's Diner & Grill", want: "joe-s-diner-grill"},
		{name: "trailing junk", in: "  Sushi Bar!  ", want: "sushi-bar"},
		{name: "digits", in: "Burger 24/7", want: "burger-24-7"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, slugify(c.in))
		})
	}
}

func TestSlugifyEmpty(t *testing.T) {
	// Пустой результат заменяется uuid.
	slug := slugify("!!!")
	assert.NotEmpty(t, slug)
	assert.NotContains(t, slug, "!")
}
