// Package reconcile diffs a parent's persisted child collection against the
// desired collection supplied by a client. A desired element either references
// an existing child by id (keep it) or carries no id (create it); persisted
// children absent from the desired set are deleted.
//
// The planner is pure: it never touches storage. Callers apply the plan inside
// a single transaction so a failure mid-apply cannot leave the parent with a
// mixed child set.
package reconcile

// Plan describes how to turn the old child collection into the desired one.
type Plan[P any] struct {
	Create []P      // payloads without an id, to be materialized
	Keep   []string // existing child ids to retain
	Delete []string // existing child ids to remove
}

// Build computes the plan. idOf returns the existing child id referenced by a
// payload, or "" when the payload describes a new child.
//
// An empty desired set deletes every old child. Ids referenced twice are kept
// once.
func Build[P any](oldIDs []string, desired []P, idOf func(P) string) Plan[P] {
	var plan Plan[P]
	kept := make(map[string]struct{}, len(desired))

	for _, payload := range desired {
		id := idOf(payload)
		if id == "" {
			plan.Create = append(plan.Create, payload)
			continue
		}
		if _, dup := kept[id]; dup {
			continue
		}
		kept[id] = struct{}{}
		plan.Keep = append(plan.Keep, id)
	}

	for _, id := range oldIDs {
		if _, ok := kept[id]; !ok {
			plan.Delete = append(plan.Delete, id)
		}
	}

	return plan
}

// DedupeByName collapses desired payloads that share a name, keeping the last
// occurrence. Used for children whose name is unique within the parent
// (activities, tickets). Payloads without a name pass through untouched: an
// id-only element references a persisted child whose name is not repeated in
// the request, so it takes no part in the dedupe.
func DedupeByName[P any](items []P, nameOf func(P) string) []P {
	index := make(map[string]int, len(items))
	result := make([]P, 0, len(items))

	for _, item := range items {
		name := nameOf(item)
		if name == "" {
			result = append(result, item)
			continue
		}
		if at, seen := index[name]; seen {
			result[at] = item
			continue
		}
		index[name] = len(result)
		result = append(result, item)
	}

	return result
}

// Labeled identifies a persisted child by id and category.
type Labeled struct {
	ID       string
	Category string
}

// BuildByCategory plans file children, where a parent holds at most one file
// per category (profile image, cover image), so desired payloads are grouped
// by category before diffing. Within a category a payload without an id is the
// authoritative replacement: the last such payload is created and every other
// file of that category is dropped. Categories referenced only by id keep
// those files. Old files whose category is absent from the desired set are
// deleted, as in Build.
func BuildByCategory[P any](old []Labeled, desired []P, idOf func(P) string, categoryOf func(P) string) Plan[P] {
	type group struct {
		replacement *P       // last no-id payload, wins the category
		keepIDs     []string // id references, honored only without a replacement
	}

	groups := make(map[string]*group)
	order := make([]string, 0, len(desired))

	for _, payload := range desired {
		category := categoryOf(payload)
		g, ok := groups[category]
		if !ok {
			g = &group{}
			groups[category] = g
			order = append(order, category)
		}
		if id := idOf(payload); id == "" {
			p := payload
			g.replacement = &p
		} else {
			g.keepIDs = append(g.keepIDs, id)
		}
	}

	var plan Plan[P]
	kept := make(map[string]struct{})

	for _, category := range order {
		g := groups[category]
		if g.replacement != nil {
			plan.Create = append(plan.Create, *g.replacement)
			continue
		}
		for _, id := range g.keepIDs {
			if _, dup := kept[id]; dup {
				continue
			}
			kept[id] = struct{}{}
			plan.Keep = append(plan.Keep, id)
		}
	}

	for _, child := range old {
		if _, ok := kept[child.ID]; !ok {
			plan.Delete = append(plan.Delete, child.ID)
		}
	}

	return plan
}
