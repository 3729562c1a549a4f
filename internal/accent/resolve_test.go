package accent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

func TestEffectiveFromBase(t *testing.T) {
	cfg := Normalize(map[string]any{FieldBase: "#336699"})

	assert.Equal(t, "#336699", cfg.Effective(GroupTitleBar))
	assert.Equal(t, "#336699", cfg.Effective(GroupNotifications))
	assert.Equal(t, colormath.VividBoost("#336699", DefaultHighlightBoost), cfg.Effective(GroupEditor))
}

func TestEffectiveNothingSet(t *testing.T) {
	cfg := NewConfig()
	for _, g := range Groups() {
		assert.Equal(t, "", cfg.Effective(g.ID), g.ID)
	}
	assert.Empty(t, Resolve(cfg))
	assert.Equal(t, "", cfg.Effective("nope"))
}

func TestEffectivePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		group GroupID
		want  string
	}{
		{
			name: "group explicit beats section and base",
			raw: map[string]any{
				FieldBase:     "#111111",
				FieldSections: map[string]any{"window": "#222222"},
				FieldGroups:   map[string]any{"titleBar": "#333333"},
			},
			group: GroupTitleBar,
			want:  "#333333",
		},
		{
			name: "section explicit beats base",
			raw: map[string]any{
				FieldBase:     "#111111",
				FieldSections: map[string]any{"window": "#222222"},
			},
			group: GroupPanel,
			want:  "#222222",
		},
		{
			name: "group inherit flag wins over stale explicit",
			raw: map[string]any{
				FieldBase:         "#112233",
				FieldGroups:       map[string]any{"titleBar": "#445566"},
				FieldGroupInherit: map[string]any{"titleBar": true},
			},
			group: GroupTitleBar,
			want:  "#112233",
		},
		{
			name: "section inherit flag passes base through",
			raw: map[string]any{
				FieldBase:           "#112233",
				FieldSections:       map[string]any{"other": "#445566"},
				FieldSectionInherit: map[string]any{"other": true},
			},
			group: GroupNotifications,
			want:  "#112233",
		},
		{
			name: "inheriting group under explicit section",
			raw: map[string]any{
				FieldSections:     map[string]any{"other": "#445566"},
				FieldGroups:       map[string]any{"notifications": "#778899"},
				FieldGroupInherit: map[string]any{"notifications": true},
			},
			group: GroupNotifications,
			want:  "#445566",
		},
		{
			name: "explicit group without base",
			raw: map[string]any{
				FieldGroups: map[string]any{"badges": "#778899"},
			},
			group: GroupBadges,
			want:  "#778899",
		},
		{
			name: "explicit highlights section is not boosted",
			raw: map[string]any{
				FieldBase:     "#202020",
				FieldSections: map[string]any{"highlights": "#202020"},
			},
			group: GroupLists,
			want:  "#202020",
		},
		{
			name: "inherit flag with nothing above yields nothing",
			raw: map[string]any{
				FieldGroups:       map[string]any{"tabs": "#445566"},
				FieldGroupInherit: map[string]any{"tabs": true},
			},
			group: GroupTabs,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Normalize(tt.raw)
			assert.Equal(t, tt.want, cfg.Effective(tt.group))
		})
	}
}

func TestHighlightBoostOnlyAffectsHighlights(t *testing.T) {
	withBoost := func(b float64) Config {
		return SetHighlightBoost(Normalize(map[string]any{FieldBase: "#202020"}), b)
	}

	cfg := withBoost(0.3)
	window := cfg.Effective(GroupTitleBar)
	highlights := cfg.Effective(GroupEditor)
	assert.Equal(t, "#202020", window)
	assert.Equal(t, "#814545", highlights)
	assert.NotEqual(t, window, highlights)

	other := withBoost(0.05)
	assert.Equal(t, cfg.Effective(GroupTitleBar), other.Effective(GroupTitleBar))
	assert.Equal(t, cfg.Effective(GroupActivityBar), other.Effective(GroupActivityBar))
	assert.NotEqual(t, cfg.Effective(GroupEditor), other.Effective(GroupEditor))

	zero := withBoost(0)
	assert.Equal(t, "#202020", zero.Effective(GroupButtons))
}

func TestSectionColor(t *testing.T) {
	cfg := Normalize(map[string]any{
		FieldBase:     "#336699",
		FieldSections: map[string]any{"other": "#AABBCC"},
	})
	assert.Equal(t, "#336699", cfg.SectionColor(SectionWindow))
	assert.Equal(t, "#AABBCC", cfg.SectionColor(SectionOther))
	assert.Equal(t, colormath.VividBoost("#336699", DefaultHighlightBoost), cfg.SectionColor(SectionHighlights))
}

func TestResolveIncludesChrome(t *testing.T) {
	cfg := Normalize(map[string]any{FieldGroups: map[string]any{"harbormaster": "#123456"}})
	assert.Equal(t, map[GroupID]string{GroupHarbormaster: "#123456"}, Resolve(cfg))
}
