package trolley

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agilomatrix/Trolley-List/internal/types"
)

func manifestTable() *types.Table {
	row := func(station, trolleyID, model, part string) types.PartRow {
		return types.PartRow{
			types.ColStationNo:   station,
			types.ColTrolleyID:   trolleyID,
			types.ColBusModel:    model,
			types.ColStationName: "",
			types.ColPartNo:      part,
		}
	}

	// Deliberately unsorted input.
	return &types.Table{
		Headers: []string{
			types.ColStationNo, types.ColTrolleyID, types.ColBusModel,
			types.ColStationName, types.ColPartNo,
		},
		Rows: []types.PartRow{
			row("20", "TL-02", "9M", "P-3"),
			row("10", "TL-01", "9M", "P-1"),
			row("20", "TL-01", "9M", "P-4"),
			row("10", "TL-01", "9M", "P-2"),
			row("20", "TL-02", "12M", "P-5"),
		},
	}
}

func TestPartitionIsAPartition(t *testing.T) {
	table := manifestTable()

	groups := Partition(table)

	// Concatenating all groups reproduces the full row set, no loss, no
	// duplication.
	total := 0
	seen := map[string]int{}
	for _, g := range groups {
		total += len(g.Rows)
		for _, row := range g.Rows {
			seen[row.Get(types.ColPartNo)]++
		}
	}

	assert.Equal(t, len(table.Rows), total)
	for _, row := range table.Rows {
		assert.Equal(t, 1, seen[row.Get(types.ColPartNo)], "part %s", row.Get(types.ColPartNo))
	}
}

func TestPartitionGroupsAndOrder(t *testing.T) {
	groups := Partition(manifestTable())

	require.Len(t, groups, 3)

	// Lexicographic order of (station no, trolley id, model, station name).
	assert.Equal(t, types.GroupKey{StationNo: "10", TrolleyID: "TL-01", Model: "9M"}, groups[0].Key)
	assert.Equal(t, types.GroupKey{StationNo: "20", TrolleyID: "TL-01", Model: "9M"}, groups[1].Key)
	assert.Equal(t, types.GroupKey{StationNo: "20", TrolleyID: "TL-02", Model: "12M"}, groups[2].Key)

	// Note "12M" < "9M" lexicographically inside station 20's trolleys:
	// TL-02/12M sorts after TL-01/9M because the trolley id dominates.
	assert.Len(t, groups[0].Rows, 2)
	assert.Len(t, groups[1].Rows, 1)
	assert.Len(t, groups[2].Rows, 2)
}

func TestPartitionDeterministic(t *testing.T) {
	first := Partition(manifestTable())
	second := Partition(manifestTable())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.Equal(t, len(first[i].Rows), len(second[i].Rows))
	}
}

func TestPartitionNoKeyColumnsSingleGroup(t *testing.T) {
	table := &types.Table{
		Headers: []string{types.ColPartNo},
		Rows: []types.PartRow{
			{types.ColPartNo: "P-1"},
			{types.ColPartNo: "P-2"},
		},
	}

	groups := Partition(table)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, types.GroupKey{}, groups[0].Key)
}

func TestPartitionEmptyTable(t *testing.T) {
	table := &types.Table{Headers: types.KeyColumns()}
	assert.Empty(t, Partition(table))
}

func TestPartitionStableWithinGroup(t *testing.T) {
	table := &types.Table{
		Headers: []string{types.ColStationNo, types.ColPartNo},
		Rows:    make([]types.PartRow, 0, 10),
	}
	for i := 0; i < 10; i++ {
		table.Rows = append(table.Rows, types.PartRow{
			types.ColStationNo: "10",
			types.ColPartNo:    fmt.Sprintf("P-%d", i),
		})
	}

	groups := Partition(table)

	require.Len(t, groups, 1)
	for i, row := range groups[0].Rows {
		assert.Equal(t, fmt.Sprintf("P-%d", i), row.Get(types.ColPartNo))
	}
}
