package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/urfave/cli"

	"confsched/schedule"
)

var RoomsCmd = cli.Command{
	Name:               "rooms",
	Usage:              "Lists known rooms, use --help to see their metadata",
	Action:             showRooms,
	CustomHelpTemplate: roomsHelp(),
}

func writeRoomLine(w io.StringWriter, id string, meta schedule.RoomMeta) {
	w.WriteString("\t\t")
	w.WriteString(id)
	if meta.IsZero() {
		w.WriteString("\n")
		return
	}
	w.WriteString(": ")
	if len(meta.Capacity) > 0 {
		w.WriteString(meta.Capacity)
	}
	if len(meta.Capacity) > 0 && len(meta.Area) > 0 {
		w.WriteString(" — ")
	}
	if len(meta.Area) > 0 {
		w.WriteString(meta.Area)
	}
	w.WriteString("\n")
}

func sortedRoomIDs(rooms schedule.StaticRooms) []string {
	ids := make([]string, 0, len(rooms))
	for id := range rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func roomsHelp() string {
	h := strings.Builder{}
	h.WriteString("Known rooms:\n")
	for _, id := range sortedRoomIDs(schedule.DefaultRooms) {
		writeRoomLine(&h, id, schedule.DefaultRooms[id])
	}
	return h.String()
}

func showRooms(c *cli.Context) error {
	fmt.Printf("%s\n", strings.Join(sortedRoomIDs(schedule.DefaultRooms), ", "))
	return nil
}
