package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Chanel", "chanel"},
		{"spaces", "Tom Ford Noir", "tom-ford-noir"},
		{"trailing whitespace", "CHANEL ", "chanel"},
		{"punctuation", "L'Eau d'Issey", "leau-dissey"},
		{"ampersand run", "Dolce && Gabbana", "dolce-gabbana"},
		{"numbers", "212 VIP Men", "212-vip-men"},
		{"underscores and slashes", "oud_wood/intense", "oud-wood-intense"},
		{"leading hyphens", "--Rose--", "rose"},
		{"symbols only", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.input))
		})
	}
}

func TestGenerateSlugIsDeterministicAndClean(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Baccarat Rouge 540", "  NO. 5  ", "Terre d'Hermès",
		"A*Men Pure Malt", "1 Million", "oud", "Ambre   Nuit",
	}

	for _, in := range inputs {
		first := GenerateSlug(in)
		second := GenerateSlug(in)
		assert.Equal(t, first, second, "slug must be deterministic for %q", in)

		if first != "" {
			assert.Regexp(t, valid, first,
				"slug for %q must have no leading/trailing/doubled hyphens", in)
		}
	}
}
