package schedule

import "sort"

// RoomGroup is the events of a single room, chronologically sorted, with
// display metadata. Groups are recomputed on every filter change.
type RoomGroup struct {
	RoomID string
	Room   string
	Meta   RoomMeta
	Events Events
}

// GroupByRoom partitions events into RoomGroups. The first-seen event of a
// room defines the group's display name; metadata comes from the lookup
// (nil means no metadata anywhere). Events inside a group are sorted
// ascending by start, ties keeping their original relative order; groups
// are sorted by display name, case-sensitive.
func GroupByRoom(events Events, meta MetadataLookup) []RoomGroup {
	byRoom := make(map[string]int)
	groups := make([]RoomGroup, 0)

	for _, ev := range events {
		i, ok := byRoom[ev.RoomID]
		if !ok {
			g := RoomGroup{
				RoomID: ev.RoomID,
				Room:   ev.RoomName,
				Events: make(Events, 0),
			}
			if meta != nil {
				g.Meta = meta.RoomMeta(ev.RoomID)
			}
			groups = append(groups, g)
			i = len(groups) - 1
			byRoom[ev.RoomID] = i
		}
		groups[i].Events = append(groups[i].Events, ev)
	}

	for i := range groups {
		evs := groups[i].Events
		sort.SliceStable(evs, func(a, b int) bool {
			return evs[a].StartTime.Before(evs[b].StartTime)
		})
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Room < groups[b].Room
	})

	return groups
}

// Flatten concatenates the groups' events back into a single collection.
func Flatten(groups []RoomGroup) Events {
	events := make(Events, 0)
	for _, g := range groups {
		events = append(events, g.Events...)
	}
	return events
}
