package accent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		input  string
		want   Scope
		wantOK bool
	}{
		{input: "base", want: BaseScope, wantOK: true},
		{input: " base ", want: BaseScope, wantOK: true},
		{input: "section:window", want: SectionScope(SectionWindow), wantOK: true},
		{input: "group:statusBar", want: GroupScope(GroupStatusBar), wantOK: true},
		{input: "group:harbormaster", want: GroupScope(GroupHarbormaster), wantOK: true},
		{input: "section:titleBar", wantOK: false},
		{input: "group:nope", wantOK: false},
		{input: "window", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseScope(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, strings.TrimSpace(tt.input), got.String())
			}
		})
	}
}

func TestScopeHistoryKeyIsShared(t *testing.T) {
	assert.Equal(t, "base", BaseScope.HistoryKey())
	assert.Equal(t, "harbormaster", SectionScope(SectionHarbormaster).HistoryKey())
	assert.Equal(t, SectionScope(SectionHarbormaster).HistoryKey(), GroupScope(GroupHarbormaster).HistoryKey())
}

func TestScopeGroups(t *testing.T) {
	assert.Len(t, BaseScope.Groups(), len(Groups()))

	hl := SectionScope(SectionHighlights).Groups()
	require.Len(t, hl, 4)
	assert.Equal(t, GroupEditor, hl[0].ID)

	assert.Len(t, GroupScope(GroupTabs).Groups(), 1)
	assert.Empty(t, Scope{Kind: ScopeGroup, ID: "nope"}.Groups())
}

func TestScopesOrder(t *testing.T) {
	all := Scopes()
	assert.Equal(t, BaseScope, all[0])
	assert.Equal(t, SectionScope(SectionWindow), all[1])
	assert.Equal(t, GroupScope(GroupTitleBar), all[2])
	assert.Len(t, all, 1+len(Sections())+len(Groups()))
	assert.Equal(t, "Status bar", GroupScope(GroupStatusBar).Label())
	assert.Equal(t, "Base accent", BaseScope.Label())
}
