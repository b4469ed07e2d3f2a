package schedule

// RoomMeta carries the static display metadata of a room. The zero value
// means "no metadata" and is what a lookup miss resolves to.
type RoomMeta struct {
	Capacity string
	Area     string
}

func (m RoomMeta) IsZero() bool {
	return len(m.Capacity) == 0 && len(m.Area) == 0
}

// MetadataLookup resolves a room id to its display metadata. A miss returns
// the zero RoomMeta, never an error.
type MetadataLookup interface {
	RoomMeta(roomID string) RoomMeta
}

// StaticRooms is a fixed roomID to metadata table.
type StaticRooms map[string]RoomMeta

func (r StaticRooms) RoomMeta(roomID string) RoomMeta {
	return r[roomID]
}

// DefaultRooms is the venue's built-in room table; deployments can replace
// or extend it through configuration.
var DefaultRooms = StaticRooms{
	"plenary-amazonas":  {Capacity: "1600 / 596", Area: "Area E"},
	"plenary-tocantins": {Capacity: "808 / 404", Area: "Area D"},
	"press-1":           {Capacity: "Press Room 1", Area: "Area D"},
	"press-2":           {Capacity: "Press Conference Room 2", Area: "Area D"},
	"meeting-19":        {Capacity: "380 / 120", Area: "Area D"},
	"meeting-5":         {Capacity: "120 / 60", Area: "Area C"},
	"pavilion-a":        {Capacity: "Pavilion A", Area: "Blue Zone"},
	"pavilion-b":        {Capacity: "Pavilion B", Area: "Blue Zone"},
	"media-stakeout":    {Capacity: "Media Stakeout", Area: "Press Area"},
	"un-room":           {Capacity: "UN / UNFCCC", Area: "UN Hub"},
	"coordination":      {Capacity: "120 / 80", Area: "Coordination Area"},
	"bilateral":         {Capacity: "Bilateral", Area: "Area B"},
}
