package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_DistinguishesAbsentNullAndValue(t *testing.T) {
	var p ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{"liveUrl": null, "image": "a.png"}`), &p))

	assert.True(t, p.LiveURL.Set)
	assert.Nil(t, p.LiveURL.Value)
	assert.True(t, p.Image.Set)
	require.NotNil(t, p.Image.Value)
	assert.Equal(t, "a.png", *p.Image.Value)
	assert.False(t, p.GithubURL.Set)
}

func TestProjectPatch_ApplyKeepsOmittedFields(t *testing.T) {
	live := "https://live.example.com"
	gh := "https://github.com/x/y"
	dst := Project{
		ID:           7,
		Title:        "old",
		Description:  "desc",
		Technologies: StringList{"go"},
		LiveURL:      &live,
		GithubURL:    &gh,
		Status:       ProjectDraft,
	}

	var p ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"new","liveUrl":null,"featured":true}`), &p))
	p.Apply(&dst)

	assert.Equal(t, "new", dst.Title)
	assert.Equal(t, "desc", dst.Description)
	assert.Nil(t, dst.LiveURL)
	require.NotNil(t, dst.GithubURL)
	assert.Equal(t, gh, *dst.GithubURL)
	assert.True(t, dst.Featured)
	assert.Equal(t, ProjectDraft, dst.Status)
	assert.Equal(t, StringList{"go"}, dst.Technologies)
}

func TestStringList_ScanAndValue(t *testing.T) {
	v, err := StringList{"go", "sql"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["go","sql"]`, v)

	nilValue, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", nilValue)

	var l StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	assert.Error(t, l.Scan(42))
}

func TestStringList_MarshalNilAsEmptyArray(t *testing.T) {
	b, err := json.Marshal(Experience{})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"technologies":[]`)
}

func TestClone_DoesNotShareTechnologies(t *testing.T) {
	p := Project{Technologies: StringList{"go"}}
	c := p.Clone()
	c.Technologies[0] = "rust"
	assert.Equal(t, "go", p.Technologies[0])
}

func TestInsertProject_DefaultsToDraft(t *testing.T) {
	p := InsertProject{Title: "t"}.ToProject()
	assert.Equal(t, ProjectDraft, p.Status)
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, CategoryCloud.Valid())
	assert.False(t, SkillCategory("design").Valid())
	assert.True(t, LevelExpert.Valid())
	assert.False(t, SkillLevel("guru").Valid())
	assert.True(t, ProjectPublished.Valid())
	assert.False(t, ProjectStatus("archived").Valid())
}
