package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	ID   string
	Name string
}

func idOf(p payload) string   { return p.ID }
func nameOf(p payload) string { return p.Name }

func TestBuild(t *testing.T) {
	t.Run("empty desired deletes everything", func(t *testing.T) {
		plan := Build([]string{"a", "b"}, nil, idOf)

		assert.Empty(t, plan.Create)
		assert.Empty(t, plan.Keep)
		assert.Equal(t, []string{"a", "b"}, plan.Delete)
	})

	t.Run("keeping every id is a no-op", func(t *testing.T) {
		desired := []payload{{ID: "a"}, {ID: "b"}}
		plan := Build([]string{"a", "b"}, desired, idOf)

		assert.Empty(t, plan.Create)
		assert.Equal(t, []string{"a", "b"}, plan.Keep)
		assert.Empty(t, plan.Delete)
	})

	t.Run("mixed create keep delete", func(t *testing.T) {
		desired := []payload{{ID: "x"}, {Name: "new"}}
		plan := Build([]string{"x", "y"}, desired, idOf)

		assert.Equal(t, []payload{{Name: "new"}}, plan.Create)
		assert.Equal(t, []string{"x"}, plan.Keep)
		assert.Equal(t, []string{"y"}, plan.Delete)
	})

	t.Run("duplicate id references kept once", func(t *testing.T) {
		desired := []payload{{ID: "a"}, {ID: "a"}}
		plan := Build([]string{"a"}, desired, idOf)

		assert.Equal(t, []string{"a"}, plan.Keep)
		assert.Empty(t, plan.Delete)
	})

	t.Run("unknown kept id still appears in keep", func(t *testing.T) {
		// the planner is pure; existence is verified at apply time
		plan := Build([]string{"a"}, []payload{{ID: "ghost"}}, idOf)

		assert.Equal(t, []string{"ghost"}, plan.Keep)
		assert.Equal(t, []string{"a"}, plan.Delete)
	})

	t.Run("applying the same desired set twice plans no changes", func(t *testing.T) {
		desired := []payload{{ID: "a"}, {Name: "fresh"}}
		first := Build([]string{"a"}, desired, idOf)
		assert.Len(t, first.Create, 1)

		// after the first apply the created child has an id, so the second
		// desired set references it
		second := Build([]string{"a", "fresh-id"}, []payload{{ID: "a"}, {ID: "fresh-id"}}, idOf)
		assert.Empty(t, second.Create)
		assert.Empty(t, second.Delete)
	})
}

func TestDedupeByName(t *testing.T) {
	t.Run("last occurrence wins", func(t *testing.T) {
		items := []payload{
			{ID: "1", Name: "talk"},
			{ID: "2", Name: "lunch"},
			{ID: "3", Name: "talk"},
		}
		out := DedupeByName(items, nameOf)

		assert.Equal(t, []payload{{ID: "3", Name: "talk"}, {ID: "2", Name: "lunch"}}, out)
	})

	t.Run("no duplicates passes through", func(t *testing.T) {
		items := []payload{{Name: "a"}, {Name: "b"}}
		assert.Equal(t, items, DedupeByName(items, nameOf))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, DedupeByName(nil, nameOf))
	})

	t.Run("unnamed id references are never collapsed", func(t *testing.T) {
		items := []payload{{ID: "1"}, {ID: "2"}, {ID: "3"}}
		assert.Equal(t, items, DedupeByName(items, nameOf))
	})

	t.Run("unnamed references survive alongside named duplicates", func(t *testing.T) {
		items := []payload{
			{ID: "1"},
			{Name: "talk"},
			{ID: "2"},
			{Name: "talk"},
		}
		out := DedupeByName(items, nameOf)

		assert.Equal(t, []payload{{ID: "1"}, {Name: "talk"}, {ID: "2"}}, out)
	})
}

type filePayload struct {
	ID       string
	Category string
}

func fileID(p filePayload) string       { return p.ID }
func fileCategory(p filePayload) string { return p.Category }

func TestBuildByCategory(t *testing.T) {
	t.Run("replacement displaces the category", func(t *testing.T) {
		old := []Labeled{{ID: "old-profile", Category: "profile_image"}}
		desired := []filePayload{{Category: "profile_image"}}

		plan := BuildByCategory(old, desired, fileID, fileCategory)

		assert.Len(t, plan.Create, 1)
		assert.Empty(t, plan.Keep)
		assert.Equal(t, []string{"old-profile"}, plan.Delete)
	})

	t.Run("last replacement wins within a category", func(t *testing.T) {
		desired := []filePayload{
			{Category: "cover_image", ID: ""},
			{Category: "cover_image", ID: ""},
		}
		plan := BuildByCategory(nil, desired, fileID, fileCategory)

		assert.Len(t, plan.Create, 1)
	})

	t.Run("replacement beats id references in the same category", func(t *testing.T) {
		old := []Labeled{{ID: "keep-me", Category: "profile_image"}}
		desired := []filePayload{
			{ID: "keep-me", Category: "profile_image"},
			{Category: "profile_image"},
		}
		plan := BuildByCategory(old, desired, fileID, fileCategory)

		assert.Len(t, plan.Create, 1)
		assert.Empty(t, plan.Keep)
		assert.Equal(t, []string{"keep-me"}, plan.Delete)
	})

	t.Run("id-only category keeps the file", func(t *testing.T) {
		old := []Labeled{{ID: "a", Category: "profile_image"}}
		desired := []filePayload{{ID: "a", Category: "profile_image"}}

		plan := BuildByCategory(old, desired, fileID, fileCategory)

		assert.Empty(t, plan.Create)
		assert.Equal(t, []string{"a"}, plan.Keep)
		assert.Empty(t, plan.Delete)
	})

	t.Run("unmentioned categories are deleted", func(t *testing.T) {
		old := []Labeled{
			{ID: "profile", Category: "profile_image"},
			{ID: "cover", Category: "cover_image"},
		}
		desired := []filePayload{{ID: "profile", Category: "profile_image"}}

		plan := BuildByCategory(old, desired, fileID, fileCategory)

		assert.Equal(t, []string{"profile"}, plan.Keep)
		assert.Equal(t, []string{"cover"}, plan.Delete)
	})

	t.Run("empty desired deletes everything", func(t *testing.T) {
		old := []Labeled{{ID: "a", Category: "profile_image"}}
		plan := BuildByCategory(old, nil, fileID, fileCategory)

		assert.Empty(t, plan.Create)
		assert.Empty(t, plan.Keep)
		assert.Equal(t, []string{"a"}, plan.Delete)
	})
}
